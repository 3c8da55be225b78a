package wisdom

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSizeRisk_Defaults(t *testing.T) {
	out, err := SizeRisk(TrendingUp, false, 100, 1000, RiskConfig{})
	require.NoError(t, err)

	assert.InDelta(t, 150, out.StopLossDistance, 1e-9)   // 1.5x ATR
	assert.InDelta(t, 250, out.TakeProfitDistance, 1e-9) // 2.5x ATR
	// 2% budget over a 15% relative stop.
	assert.InDelta(t, 0.02/0.15, out.PositionSizeFraction, 1e-9)
	assert.Contains(t, strings.Join(out.Reasoning, "\n"), "reward:risk 1.67")
}

func TestSizeRisk_RegimeAdjustments(t *testing.T) {
	base, err := SizeRisk(TrendingUp, false, 100, 1000, RiskConfig{})
	require.NoError(t, err)

	t.Run("ranging halves the size", func(t *testing.T) {
		out, err := SizeRisk(Ranging, false, 100, 1000, RiskConfig{})
		require.NoError(t, err)
		assert.InDelta(t, base.PositionSizeFraction/2, out.PositionSizeFraction, 1e-9)
		assert.Contains(t, strings.Join(out.Reasoning, "\n"), "ranging regime, position size halved")
	})

	t.Run("volatility override halves again", func(t *testing.T) {
		out, err := SizeRisk(Volatile, true, 100, 1000, RiskConfig{})
		require.NoError(t, err)
		assert.InDelta(t, base.PositionSizeFraction/2, out.PositionSizeFraction, 1e-9)
		assert.Contains(t, strings.Join(out.Reasoning, "\n"), "volatility override")
	})

	t.Run("both adjustments stack", func(t *testing.T) {
		out, err := SizeRisk(Ranging, true, 100, 1000, RiskConfig{})
		require.NoError(t, err)
		assert.InDelta(t, base.PositionSizeFraction/4, out.PositionSizeFraction, 1e-9)
	})
}

func TestSizeRisk_FractionCappedAtFullEquity(t *testing.T) {
	// A tight relative stop implies a huge position; the cap holds it at 1.
	out, err := SizeRisk(TrendingUp, false, 100, 100000, RiskConfig{})
	require.NoError(t, err)
	assert.InDelta(t, 1.0, out.PositionSizeFraction, 1e-9)
	assert.Contains(t, strings.Join(out.Reasoning, "\n"), "capped at full equity")
}

func TestSizeRisk_RewardRiskFloor(t *testing.T) {
	cfg := RiskConfig{MinRewardRiskRatio: 2.0}
	_, err := SizeRisk(TrendingUp, false, 100, 1000, cfg)

	var ratioErr *InvalidRiskRatioError
	require.ErrorAs(t, err, &ratioErr)
	assert.InDelta(t, 2.5/1.5, ratioErr.Ratio, 1e-6)
	assert.InDelta(t, 2.0, ratioErr.Minimum, 1e-9)
}

func TestSizeRisk_InvalidInputs(t *testing.T) {
	t.Run("non-positive ATR", func(t *testing.T) {
		_, err := SizeRisk(TrendingUp, false, 0, 1000, RiskConfig{})
		var missing *MissingIndicatorError
		require.ErrorAs(t, err, &missing)
		assert.Equal(t, "ATR_14", missing.Key)
	})

	t.Run("non-positive price", func(t *testing.T) {
		_, err := SizeRisk(TrendingUp, false, 100, 0, RiskConfig{})
		require.Error(t, err)
	})
}

func TestSizeRisk_Deterministic(t *testing.T) {
	first, err := SizeRisk(Ranging, true, 123.456789, 54321.123456, RiskConfig{})
	require.NoError(t, err)
	second, err := SizeRisk(Ranging, true, 123.456789, 54321.123456, RiskConfig{})
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestRiskConfig_Validate(t *testing.T) {
	t.Run("defaults pass", func(t *testing.T) {
		assert.NoError(t, RiskConfig{}.Validate())
	})

	t.Run("ADX thresholds must not overlap", func(t *testing.T) {
		err := RiskConfig{ADXRangeThreshold: 30, ADXTrendThreshold: 25}.Validate()
		var conflict *ConflictingConfigurationError
		require.ErrorAs(t, err, &conflict)
		assert.Equal(t, "adx_range_threshold", conflict.Option)
	})

	t.Run("multipliers must honor the reward:risk floor", func(t *testing.T) {
		err := RiskConfig{ATRSLMultiplier: 2.0, ATRTPMultiplier: 2.5}.Validate()
		var conflict *ConflictingConfigurationError
		require.ErrorAs(t, err, &conflict)
		assert.Equal(t, "atr_tp_multiplier", conflict.Option)
	})

	t.Run("conviction threshold bounded", func(t *testing.T) {
		err := RiskConfig{HighConvictionThreshold: 1.2}.Validate()
		var conflict *ConflictingConfigurationError
		require.ErrorAs(t, err, &conflict)
		assert.Equal(t, "high_conviction_threshold", conflict.Option)
	})
}
