package wisdom

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Shershaah24/kuiper-v2/internal/indicator"
)

func TestInterpret_RSIDependsOnRegime(t *testing.T) {
	it := NewInterpreter()

	cases := []struct {
		name      string
		rsi       float64
		regime    Regime
		direction SignalDirection
		strength  float64
		rationale string
	}{
		{"oversold in uptrend is a buy", 28, TrendingUp, Bullish, 0.8, "pullback in uptrend, buying opportunity"},
		{"oversold in downtrend is trend strength", 28, TrendingDown, Bearish, 0.8, "trend strength, no buy"},
		{"overbought in range is a sell", 72, Ranging, Bearish, 0.8, "overbought at range top, sell"},
		{"oversold in range is a buy", 25, Ranging, Bullish, 0.8, "oversold at range bottom"},
		{"overbought in uptrend can stay overbought", 72, TrendingUp, Bullish, 0.4, "may stay overbought"},
		{"mid-range is neutral", 55, Ranging, Neutral, 0, "mid-range, wait for extremes"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			snap := snapshotWith(t, map[string]indicator.Value{
				"RSI_14": indicator.Scalar(tc.rsi),
			})
			sig, err := it.Interpret("rsi", snap, tc.regime)
			require.NoError(t, err)
			assert.Equal(t, tc.direction, sig.Direction)
			assert.InDelta(t, tc.strength, sig.Strength, 1e-9)
			assert.Contains(t, sig.Rationale, tc.rationale)
			assert.Equal(t, TierMomentum, sig.Tier)
		})
	}
}

func TestInterpret_StochasticCrossovers(t *testing.T) {
	it := NewInterpreter()

	t.Run("oversold bullish crossover in range", func(t *testing.T) {
		snap := snapshotWith(t, map[string]indicator.Value{
			"STOCH": indicator.Tuple(map[string]float64{"slowk": 15, "slowd": 12}),
		})
		sig, err := it.Interpret("stochastic", snap, Ranging)
		require.NoError(t, err)
		assert.Equal(t, Bullish, sig.Direction)
		assert.InDelta(t, 0.7, sig.Strength, 1e-9)
	})

	t.Run("oversold in downtrend stays weakly bearish", func(t *testing.T) {
		snap := snapshotWith(t, map[string]indicator.Value{
			"STOCH": indicator.Tuple(map[string]float64{"slowk": 15, "slowd": 12}),
		})
		sig, err := it.Interpret("stochastic", snap, TrendingDown)
		require.NoError(t, err)
		assert.Equal(t, Bearish, sig.Direction)
		assert.Contains(t, sig.Rationale, "may stay oversold")
	})
}

func TestInterpret_VolatileSuppressesEverything(t *testing.T) {
	it := NewInterpreter()
	snap := snapshotWith(t, map[string]indicator.Value{
		"RSI_14":         indicator.Scalar(15), // would be a strong call elsewhere
		"CDLENGULFING":   indicator.Scalar(100),
		"CDLMORNINGSTAR": indicator.Scalar(200),
	})

	signals := it.InterpretAll(snap, Volatile)
	require.NotEmpty(t, signals)
	for _, sig := range signals {
		assert.Equal(t, Unreliable, sig.Direction, sig.Family)
		assert.Zero(t, sig.Strength)
		assert.Contains(t, sig.Rationale, "less reliable in volatile conditions")
	}
}

func TestInterpret_UnknownFamily(t *testing.T) {
	it := NewInterpreter()
	_, err := it.Interpret("no_such_family", snapshotWith(t, nil), Ranging)
	var unknown *indicator.UnknownIndicatorError
	require.ErrorAs(t, err, &unknown)
	assert.Equal(t, "no_such_family", unknown.Key)
}

func TestInterpret_MissingInputsFallBackNeutral(t *testing.T) {
	// Families whose inputs are absent must degrade to neutral, never
	// fabricate a direction from zero values.
	it := NewInterpreter()
	snap := snapshotWith(t, nil)
	for _, name := range []string{"macd", "aroon", "cci", "rate_of_change"} {
		sig, err := it.Interpret(name, snap, TrendingUp)
		require.NoError(t, err)
		assert.Equal(t, Neutral, sig.Direction, name)
	}
}

func TestInterpret_DeterministicOverRepeatedCalls(t *testing.T) {
	it := NewInterpreter()
	snap := snapshotWith(t, nil)
	first := it.InterpretAll(snap, TrendingUp)
	second := it.InterpretAll(snap, TrendingUp)
	assert.Equal(t, first, second)
}

func TestFoldPatterns(t *testing.T) {
	t.Run("net vote with double-weight confirmations", func(t *testing.T) {
		snap := snapshotWith(t, map[string]indicator.Value{
			"CDLENGULFING":   indicator.Scalar(100),
			"CDLHAMMER":      indicator.Scalar(200),
			"CDL3BLACKCROWS": indicator.Scalar(-100),
		})
		sig := foldPatterns(snap, TrendingUp)
		assert.Equal(t, Bullish, sig.Direction)
		assert.InDelta(t, 0.5, sig.Strength, 1e-9) // net 2 over total 4
		assert.Contains(t, sig.Rationale, "bullish candlestick patterns lead 3:1")
		assert.Contains(t, sig.Rationale, "HAMMER")
		assert.Equal(t, TierPattern, sig.Tier)
	})

	t.Run("no hits is neutral", func(t *testing.T) {
		sig := foldPatterns(snapshotWith(t, nil), Ranging)
		assert.Equal(t, Neutral, sig.Direction)
		assert.Contains(t, sig.Rationale, "no significant candlestick patterns")
	})

	t.Run("even split is neutral", func(t *testing.T) {
		snap := snapshotWith(t, map[string]indicator.Value{
			"CDLHAMMER":     indicator.Scalar(100),
			"CDLHANGINGMAN": indicator.Scalar(-100),
		})
		sig := foldPatterns(snap, Ranging)
		assert.Equal(t, Neutral, sig.Direction)
		assert.Zero(t, sig.Strength)
	})

	t.Run("volatile regime suppresses the fold", func(t *testing.T) {
		snap := snapshotWith(t, map[string]indicator.Value{
			"CDLHAMMER": indicator.Scalar(200),
		})
		sig := foldPatterns(snap, Volatile)
		assert.Equal(t, Unreliable, sig.Direction)
	})
}
