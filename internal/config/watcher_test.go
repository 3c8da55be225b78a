package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Shershaah24/kuiper-v2/internal/wisdom"
)

func TestNewWatcher_LoadsInitialRisk(t *testing.T) {
	path := writeConfig(t, map[string]any{
		"risk": map[string]any{
			"atr_sl_multiplier": 2.0,
			"atr_tp_multiplier": 4.0,
		},
	})

	w, err := NewWatcher(path)
	require.NoError(t, err)

	risk := w.Risk()
	assert.InDelta(t, 2.0, risk.ATRSLMultiplier, 1e-9)
	assert.InDelta(t, 4.0, risk.ATRTPMultiplier, 1e-9)
	assert.InDelta(t, 0.8, risk.HighConvictionThreshold, 1e-9, "unset tunables take defaults")
}

func TestNewWatcher_RejectsInvalidInitialConfig(t *testing.T) {
	path := writeConfig(t, map[string]any{
		"risk": map[string]any{
			"adx_range_threshold": 30,
			"adx_trend_threshold": 25,
		},
	})

	_, err := NewWatcher(path)
	assert.Error(t, err)
}

func TestNewWatcher_RequiresPath(t *testing.T) {
	_, err := NewWatcher("  ")
	assert.Error(t, err)
}

func TestWatcher_SubscribeIgnoresNil(t *testing.T) {
	path := writeConfig(t, map[string]any{})
	w, err := NewWatcher(path)
	require.NoError(t, err)

	w.Subscribe(nil)
	w.Subscribe(func(_ wisdom.RiskConfig) {})
	w.notify() // must not panic with a live listener registered
}
