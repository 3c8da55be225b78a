package wisdom

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Shershaah24/kuiper-v2/internal/indicator"
)

// baseReadings is a clean uptrend snapshot: strong ADX with +DI leading,
// ascending moving averages, calm volatility, RSI pulled back.
func baseReadings() map[string]indicator.Value {
	return map[string]indicator.Value{
		"NATR_14":     indicator.Scalar(0.5),
		"ATR_14":      indicator.Scalar(120),
		"ATR_14_AVG":  indicator.Scalar(110),
		"ADX_14":      indicator.Scalar(35),
		"PLUS_DI_14":  indicator.Scalar(30),
		"MINUS_DI_14": indicator.Scalar(10),
		"SMA_20":      indicator.Scalar(105),
		"SMA_50":      indicator.Scalar(100),
		"SMA_200":     indicator.Scalar(95),
		"EMA_12":      indicator.Scalar(106),
		"EMA_26":      indicator.Scalar(101),
		"RSI_14":      indicator.Scalar(28),
	}
}

func snapshotWith(t *testing.T, overrides map[string]indicator.Value) *indicator.Snapshot {
	t.Helper()
	values := baseReadings()
	for k, v := range overrides {
		values[k] = v
	}
	snap, err := indicator.NewSnapshot("BTCUSDT", "1h", values)
	require.NoError(t, err)
	return snap
}

func snapshotWithout(t *testing.T, dropped string) *indicator.Snapshot {
	t.Helper()
	values := baseReadings()
	delete(values, dropped)
	snap, err := indicator.NewSnapshot("BTCUSDT", "1h", values)
	require.NoError(t, err)
	return snap
}
