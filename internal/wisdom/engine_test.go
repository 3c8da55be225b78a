package wisdom

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Shershaah24/kuiper-v2/internal/indicator"
)

func TestEngine_AnalyzeUptrendPullback(t *testing.T) {
	// Strong uptrend with RSI pulled back: trend and momentum both lean
	// long, volume and patterns sit out.
	eng := NewEngine()
	snap := snapshotWith(t, nil)

	dec, err := eng.Analyze(snap, 50000, 10000, RiskConfig{})
	require.NoError(t, err)

	assert.Equal(t, Long, dec.Direction)
	assert.Equal(t, TrendingUp, dec.Regime)
	assert.NotEmpty(t, dec.TraceID)
	assert.Equal(t, "BTCUSDT", dec.Symbol)
	assert.Equal(t, "1h", dec.Interval)
	assert.Greater(t, dec.Confidence, 0.0)
	assert.Greater(t, dec.StopLossDistance, 0.0)
	assert.Greater(t, dec.TakeProfitDistance, dec.StopLossDistance)
	assert.Greater(t, dec.PositionSizeFraction, 0.0)

	joined := strings.Join(dec.Reasoning, "\n")
	assert.Contains(t, joined, "REGIME: TRENDING_UP")
	assert.Contains(t, joined, "pullback in uptrend")
	assert.Contains(t, joined, "DECISION: LONG")
	assert.Contains(t, joined, "RISK:")
}

func TestEngine_AnalyzeRangeFade(t *testing.T) {
	eng := NewEngine()
	snap := snapshotWith(t, map[string]indicator.Value{
		"ADX_14":  indicator.Scalar(15),
		"NATR_14": indicator.Scalar(0.4),
		"RSI_14":  indicator.Scalar(72),
		"SMA_20":  indicator.Scalar(100),
		"SMA_50":  indicator.Scalar(101),
		"SMA_200": indicator.Scalar(100.5),
		"EMA_12":  indicator.Scalar(100.2),
		"EMA_26":  indicator.Scalar(100.8),
	})

	dec, err := eng.Analyze(snap, 50000, 10000, RiskConfig{})
	require.NoError(t, err)

	assert.Equal(t, Short, dec.Direction)
	assert.Equal(t, Ranging, dec.Regime)
	joined := strings.Join(dec.Reasoning, "\n")
	assert.Contains(t, joined, "overbought at range top, sell")
	assert.Contains(t, joined, "ranging regime, position size halved")
}

func TestEngine_AnalyzeVolatileStaysFlat(t *testing.T) {
	eng := NewEngine()
	snap := snapshotWith(t, map[string]indicator.Value{
		"NATR_14": indicator.Scalar(1.8),
	})

	dec, err := eng.Analyze(snap, 50000, 10000, RiskConfig{})
	require.NoError(t, err)

	assert.Equal(t, Flat, dec.Direction)
	assert.Equal(t, Volatile, dec.Regime)
	assert.Zero(t, dec.PositionSizeFraction)
	joined := strings.Join(dec.Reasoning, "\n")
	assert.Contains(t, joined, "volatility-spike")
	assert.Contains(t, joined, "no risk sizing applied")
}

func TestEngine_AnalyzeRejectsBadRewardRisk(t *testing.T) {
	// The per-call floor turns the trade into a well-formed FLAT, not an
	// error: the caller still gets the full trace.
	eng := NewEngine()
	snap := snapshotWith(t, nil)

	dec, err := eng.Analyze(snap, 50000, 10000, RiskConfig{MinRewardRiskRatio: 1.8})
	require.NoError(t, err)

	assert.Equal(t, Flat, dec.Direction)
	assert.Zero(t, dec.Confidence)
	assert.Zero(t, dec.PositionSizeFraction)
	assert.Contains(t, strings.Join(dec.Reasoning, "\n"), "RISK: trade rejected")
}

func TestEngine_AnalyzeMissingRegimeInput(t *testing.T) {
	eng := NewEngine()
	snap := snapshotWithout(t, "ADX_14")

	_, err := eng.Analyze(snap, 50000, 10000, RiskConfig{})
	var missing *MissingIndicatorError
	require.ErrorAs(t, err, &missing)
	assert.Equal(t, "ADX_14", missing.Key)
}

func TestEngine_AnalyzeNilSnapshot(t *testing.T) {
	_, err := NewEngine().Analyze(nil, 50000, 10000, RiskConfig{})
	assert.Error(t, err)
}

func TestEngine_AnalyzeDeterministic(t *testing.T) {
	// Same snapshot, same config: everything but the trace id must match.
	eng := NewEngine()
	snap := snapshotWith(t, nil)

	first, err := eng.Analyze(snap, 50000, 10000, RiskConfig{})
	require.NoError(t, err)
	second, err := eng.Analyze(snap, 50000, 10000, RiskConfig{})
	require.NoError(t, err)

	assert.NotEqual(t, first.TraceID, second.TraceID)
	second.TraceID = first.TraceID
	assert.Equal(t, first, second)
}
