package indicator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSnapshot(t *testing.T) {
	t.Run("accepts catalog keys", func(t *testing.T) {
		snap, err := NewSnapshot("BTCUSDT", "1h", map[string]Value{
			"RSI_14": Scalar(42.5),
			"MACD":   Tuple(map[string]float64{"line": 1, "signal": 0.5, "hist": 0.5}),
		})
		require.NoError(t, err)
		assert.Equal(t, "BTCUSDT", snap.Symbol)
		assert.Equal(t, 2, snap.Len())
	})

	t.Run("rejects keys outside the documented set", func(t *testing.T) {
		_, err := NewSnapshot("BTCUSDT", "1h", map[string]Value{
			"MY_SECRET_SIGNAL": Scalar(1),
		})
		var unknown *UnknownIndicatorError
		require.ErrorAs(t, err, &unknown)
		assert.Equal(t, "MY_SECRET_SIGNAL", unknown.Key)
	})

	t.Run("copies the value map", func(t *testing.T) {
		values := map[string]Value{"RSI_14": Scalar(42.5)}
		snap, err := NewSnapshot("BTCUSDT", "1h", values)
		require.NoError(t, err)
		delete(values, "RSI_14")
		assert.True(t, snap.Has("RSI_14"))
	})
}

func TestSnapshot_Accessors(t *testing.T) {
	snap, err := NewSnapshot("ETHUSDT", "4h", map[string]Value{
		"RSI_14": Scalar(61.2),
		"BBANDS": Tuple(map[string]float64{"upper": 110, "middle": 100, "lower": 90}),
	})
	require.NoError(t, err)

	t.Run("Float", func(t *testing.T) {
		assert.InDelta(t, 61.2, snap.Float("RSI_14", 0), 1e-9)
		assert.InDelta(t, 50, snap.Float("CMO_14", 50), 1e-9, "absent key takes the fallback")
		assert.InDelta(t, 7, snap.Float("BBANDS", 7), 1e-9, "tuple read as scalar takes the fallback")
	})

	t.Run("Part", func(t *testing.T) {
		assert.InDelta(t, 100, snap.Part("BBANDS", "middle", 0), 1e-9)
		assert.InDelta(t, -1, snap.Part("BBANDS", "nope", -1), 1e-9)
		assert.InDelta(t, -1, snap.Part("MACD", "line", -1), 1e-9)
	})

	t.Run("Keys sorted", func(t *testing.T) {
		assert.Equal(t, []string{"BBANDS", "RSI_14"}, snap.Keys())
	})
}

func TestValue_Parts(t *testing.T) {
	v := Tuple(map[string]float64{"sine": -0.4, "leadsine": -0.2})
	assert.True(t, v.IsTuple())
	assert.Equal(t, []string{"leadsine", "sine"}, v.PartNames())

	f, ok := v.Part("sine")
	require.True(t, ok)
	assert.InDelta(t, -0.4, f, 1e-9)

	s := Scalar(3.14)
	assert.False(t, s.IsTuple())
	assert.Nil(t, s.PartNames())
}
