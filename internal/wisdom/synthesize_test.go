package wisdom

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func cat(tier Tier, dir SignalDirection, strength float64) CategorySignal {
	return CategorySignal{Tier: tier, Direction: dir, Strength: strength, Rationale: string(tier) + " members"}
}

func tiers(trend, momentum, volume, pattern CategorySignal) map[Tier]CategorySignal {
	return map[Tier]CategorySignal{
		TierTrend:    trend,
		TierMomentum: momentum,
		TierVolume:   volume,
		TierPattern:  pattern,
	}
}

func rangingResult() RegimeResult {
	return RegimeResult{Regime: Ranging, Fallback: Ranging, Rule: "adx-no-trend", Evidence: []string{"ADX=15.0 < 20.0"}}
}

func TestSynthesize_HigherTierWinsDirection(t *testing.T) {
	// TREND and MOMENTUM at equal strength but opposite lean: the higher
	// tier sets the direction, the lower one can only drag confidence.
	cats := tiers(
		cat(TierTrend, Bullish, 0.9),
		cat(TierMomentum, Bearish, 0.9),
		cat(TierVolume, Neutral, 0),
		cat(TierPattern, Neutral, 0),
	)
	syn := Synthesize(rangingResult(), cats, cats, RiskConfig{})

	assert.Equal(t, Long, syn.Direction)
	assert.InDelta(t, 0.9-0.2*0.9, syn.Confidence, 1e-9)
	assert.Contains(t, strings.Join(syn.Reasoning, "\n"), "disagrees, confidence reduced")
}

func TestSynthesize_AgreementRaisesConfidence(t *testing.T) {
	cats := tiers(
		cat(TierTrend, Bearish, 0.8),
		cat(TierMomentum, Bearish, 0.6),
		cat(TierVolume, Bearish, 0.4),
		cat(TierPattern, Neutral, 0),
	)
	syn := Synthesize(rangingResult(), cats, cats, RiskConfig{})

	assert.Equal(t, Short, syn.Direction)
	assert.InDelta(t, (0.8+0.6+0.4)/3, syn.Confidence, 1e-9)
}

func TestSynthesize_RegimeGatesDirection(t *testing.T) {
	regime := RegimeResult{Regime: TrendingDown, Fallback: TrendingDown, Rule: "adx-trend-down"}
	cats := tiers(
		cat(TierTrend, Bullish, 0.9), // counter-trend, must be discarded
		cat(TierMomentum, Bearish, 0.6),
		cat(TierVolume, Neutral, 0),
		cat(TierPattern, Neutral, 0),
	)
	syn := Synthesize(regime, cats, cats, RiskConfig{})

	assert.Equal(t, Short, syn.Direction)
	assert.InDelta(t, 0.6, syn.Confidence, 1e-9)
	assert.Contains(t, strings.Join(syn.Reasoning, "\n"), "direction not permitted under TRENDING_DOWN regime")
}

func TestSynthesize_UnreliableTopTierLocksFlat(t *testing.T) {
	cats := tiers(
		cat(TierTrend, Unreliable, 0),
		cat(TierMomentum, Bullish, 0.9),
		cat(TierVolume, Bullish, 0.9),
		cat(TierPattern, Bullish, 0.9),
	)
	syn := Synthesize(rangingResult(), cats, cats, RiskConfig{})

	assert.Equal(t, Flat, syn.Direction)
	assert.Zero(t, syn.Confidence)
	joined := strings.Join(syn.Reasoning, "\n")
	assert.Contains(t, joined, "locking FLAT")
	assert.Contains(t, joined, "ignored, decision already locked FLAT")
}

func TestSynthesize_UnreliableAfterDirectionDoesNotLock(t *testing.T) {
	cats := tiers(
		cat(TierTrend, Bullish, 0.8),
		cat(TierMomentum, Unreliable, 0),
		cat(TierVolume, Neutral, 0),
		cat(TierPattern, Neutral, 0),
	)
	syn := Synthesize(rangingResult(), cats, cats, RiskConfig{})

	assert.Equal(t, Long, syn.Direction)
	assert.InDelta(t, 0.8, syn.Confidence, 1e-9)
}

func TestSynthesize_AllNeutralIsFlat(t *testing.T) {
	cats := tiers(
		cat(TierTrend, Neutral, 0),
		cat(TierMomentum, Neutral, 0),
		cat(TierVolume, Neutral, 0),
		cat(TierPattern, Neutral, 0),
	)
	syn := Synthesize(rangingResult(), cats, cats, RiskConfig{})

	assert.Equal(t, Flat, syn.Direction)
	assert.Contains(t, strings.Join(syn.Reasoning, "\n"), "no tier set a direction")
}

func TestSynthesize_VolatileSuppression(t *testing.T) {
	regime := RegimeResult{Regime: Volatile, Fallback: Ranging, Rule: "volatility-spike"}
	suppressed := tiers(
		cat(TierTrend, Unreliable, 0),
		cat(TierMomentum, Unreliable, 0),
		cat(TierVolume, Unreliable, 0),
		cat(TierPattern, Unreliable, 0),
	)

	t.Run("mixed shadow stays flat", func(t *testing.T) {
		shadow := tiers(
			cat(TierTrend, Bullish, 0.9),
			cat(TierMomentum, Bearish, 0.9),
			cat(TierVolume, Bullish, 0.9),
			cat(TierPattern, Bullish, 0.9),
		)
		syn := Synthesize(regime, suppressed, shadow, RiskConfig{})
		assert.Equal(t, Flat, syn.Direction)
		assert.False(t, syn.VolatilityOverride)
		assert.Contains(t, strings.Join(syn.Reasoning, "\n"), "all signals suppressed as unreliable")
	})

	t.Run("one weak tier breaks the override", func(t *testing.T) {
		shadow := tiers(
			cat(TierTrend, Bullish, 0.9),
			cat(TierMomentum, Bullish, 0.9),
			cat(TierVolume, Bullish, 0.7), // below the conviction floor
			cat(TierPattern, Bullish, 0.9),
		)
		syn := Synthesize(regime, suppressed, shadow, RiskConfig{})
		assert.Equal(t, Flat, syn.Direction)
		assert.False(t, syn.VolatilityOverride)
	})

	t.Run("unanimous high conviction trades at half size", func(t *testing.T) {
		shadow := tiers(
			cat(TierTrend, Bearish, 0.95),
			cat(TierMomentum, Bearish, 0.85),
			cat(TierVolume, Bearish, 0.9),
			cat(TierPattern, Bearish, 0.88),
		)
		syn := Synthesize(regime, suppressed, shadow, RiskConfig{})
		assert.Equal(t, Short, syn.Direction)
		assert.True(t, syn.VolatilityOverride)
		assert.InDelta(t, 0.85, syn.Confidence, 1e-9) // weakest tier bounds it
		assert.Contains(t, strings.Join(syn.Reasoning, "\n"), "high-conviction override")
	})

	t.Run("raised threshold tightens the override", func(t *testing.T) {
		shadow := tiers(
			cat(TierTrend, Bearish, 0.95),
			cat(TierMomentum, Bearish, 0.85),
			cat(TierVolume, Bearish, 0.9),
			cat(TierPattern, Bearish, 0.88),
		)
		syn := Synthesize(regime, suppressed, shadow, RiskConfig{HighConvictionThreshold: 0.9})
		assert.Equal(t, Flat, syn.Direction)
	})
}

func TestSynthesize_TraceStartsWithRegime(t *testing.T) {
	cats := tiers(
		cat(TierTrend, Neutral, 0),
		cat(TierMomentum, Neutral, 0),
		cat(TierVolume, Neutral, 0),
		cat(TierPattern, Neutral, 0),
	)
	syn := Synthesize(rangingResult(), cats, cats, RiskConfig{})
	assert.NotEmpty(t, syn.Reasoning)
	assert.Contains(t, syn.Reasoning[0], "REGIME: RANGING (rule adx-no-trend")
}
