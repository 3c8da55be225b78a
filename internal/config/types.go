package config

import "github.com/Shershaah24/kuiper-v2/internal/wisdom"

// Config is the top-level configuration carrier.
type Config struct {
	App    AppConfig         `mapstructure:"app"`
	Market MarketConfig      `mapstructure:"market"`
	Risk   wisdom.RiskConfig `mapstructure:"risk"`
}

type AppConfig struct {
	Env                 string  `mapstructure:"env"`
	LogLevel            string  `mapstructure:"log_level"`
	HTTPAddr            string  `mapstructure:"http_addr"`
	AccountEquity       float64 `mapstructure:"account_equity"`
	ScanIntervalSeconds int     `mapstructure:"scan_interval_seconds"`
}

type MarketConfig struct {
	Name               string   `mapstructure:"name"`
	RESTBaseURL        string   `mapstructure:"rest_base_url"`
	Symbols            []string `mapstructure:"symbols"`
	Interval           string   `mapstructure:"interval"`
	HistoryLimit       int      `mapstructure:"history_limit"`
	MaxCached          int      `mapstructure:"max_cached"`
	HTTPTimeoutSeconds int      `mapstructure:"http_timeout_seconds"`
	MaxRetries         int      `mapstructure:"max_retries"`
}
