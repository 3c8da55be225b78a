package config

const (
	defaultAppEnv          = "dev"
	defaultAppLogLevel     = "info"
	defaultAppHTTPAddr     = ":9980"
	defaultAppEquity       = 10000.0
	defaultAppScanInterval = 300
	defaultMarketName      = "binance"
	defaultMarketInterval  = "1h"
	defaultMarketHistory   = 300
	defaultMarketMaxCached = 500
	defaultMarketTimeout   = 15
	defaultMarketRetries   = 3
)

func (c *Config) applyDefaults() {
	c.App.applyDefaults()
	c.Market.applyDefaults()
	c.Risk = c.Risk.WithDefaults()
}

func (a *AppConfig) applyDefaults() {
	if a.Env == "" {
		a.Env = defaultAppEnv
	}
	if a.LogLevel == "" {
		a.LogLevel = defaultAppLogLevel
	}
	if a.HTTPAddr == "" {
		a.HTTPAddr = defaultAppHTTPAddr
	}
	if a.AccountEquity <= 0 {
		a.AccountEquity = defaultAppEquity
	}
	if a.ScanIntervalSeconds <= 0 {
		a.ScanIntervalSeconds = defaultAppScanInterval
	}
}

func (m *MarketConfig) applyDefaults() {
	if m.Name == "" {
		m.Name = defaultMarketName
	}
	if len(m.Symbols) == 0 {
		m.Symbols = []string{"BTCUSDT"}
	}
	if m.Interval == "" {
		m.Interval = defaultMarketInterval
	}
	if m.HistoryLimit <= 0 {
		m.HistoryLimit = defaultMarketHistory
	}
	if m.MaxCached <= 0 {
		m.MaxCached = defaultMarketMaxCached
	}
	if m.HTTPTimeoutSeconds <= 0 {
		m.HTTPTimeoutSeconds = defaultMarketTimeout
	}
	if m.MaxRetries <= 0 {
		m.MaxRetries = defaultMarketRetries
	}
}
