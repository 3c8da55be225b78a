package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/Shershaah24/kuiper-v2/internal/wisdom"
)

// writeConfig marshals the document to a YAML file under a test dir.
func writeConfig(t *testing.T, doc map[string]any) string {
	t.Helper()
	data, err := yaml.Marshal(doc)
	require.NoError(t, err)
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, data, 0o644))
	return path
}

func TestLoad_AppliesDefaults(t *testing.T) {
	path := writeConfig(t, map[string]any{
		"market": map[string]any{"symbols": []string{"BTCUSDT", "ETHUSDT"}},
	})

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "dev", cfg.App.Env)
	assert.Equal(t, ":9980", cfg.App.HTTPAddr)
	assert.InDelta(t, 10000, cfg.App.AccountEquity, 1e-9)
	assert.Equal(t, 300, cfg.App.ScanIntervalSeconds)
	assert.Equal(t, "binance", cfg.Market.Name)
	assert.Equal(t, []string{"BTCUSDT", "ETHUSDT"}, cfg.Market.Symbols)
	assert.Equal(t, "1h", cfg.Market.Interval)
	assert.InDelta(t, 1.5, cfg.Risk.ATRSLMultiplier, 1e-9)
	assert.InDelta(t, 2.5, cfg.Risk.ATRTPMultiplier, 1e-9)
	assert.InDelta(t, 0.8, cfg.Risk.HighConvictionThreshold, 1e-9)
}

func TestLoad_ReadsAllSections(t *testing.T) {
	path := writeConfig(t, map[string]any{
		"app": map[string]any{
			"env":            "prod",
			"log_level":      "debug",
			"account_equity": 25000,
		},
		"market": map[string]any{
			"symbols":  []string{"SOLUSDT"},
			"interval": "4h",
		},
		"risk": map[string]any{
			"atr_sl_multiplier":         2.0,
			"atr_tp_multiplier":         4.0,
			"natr_volatility_threshold": 1.5,
		},
	})

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "prod", cfg.App.Env)
	assert.InDelta(t, 25000, cfg.App.AccountEquity, 1e-9)
	assert.Equal(t, "4h", cfg.Market.Interval)
	assert.InDelta(t, 2.0, cfg.Risk.ATRSLMultiplier, 1e-9)
	assert.InDelta(t, 4.0, cfg.Risk.ATRTPMultiplier, 1e-9)
	assert.InDelta(t, 1.5, cfg.Risk.NATRVolatilityThreshold, 1e-9)
}

func TestLoad_RejectsConflictingRiskOptions(t *testing.T) {
	path := writeConfig(t, map[string]any{
		"risk": map[string]any{
			"adx_range_threshold": 30,
			"adx_trend_threshold": 25,
		},
	})

	_, err := Load(path)
	var conflict *wisdom.ConflictingConfigurationError
	require.ErrorAs(t, err, &conflict)
	assert.Equal(t, "adx_range_threshold", conflict.Option)
}

func TestLoad_RejectsBadMarketSection(t *testing.T) {
	t.Run("unsupported exchange", func(t *testing.T) {
		path := writeConfig(t, map[string]any{
			"market": map[string]any{"name": "kraken"},
		})
		_, err := Load(path)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "not supported")
	})

	t.Run("history larger than cache", func(t *testing.T) {
		path := writeConfig(t, map[string]any{
			"market": map[string]any{"history_limit": 1000, "max_cached": 500},
		})
		_, err := Load(path)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "exceeds market.max_cached")
	})
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)

	_, err = Load("")
	assert.Error(t, err)
}
