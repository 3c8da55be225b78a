package app

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Shershaah24/kuiper-v2/internal/market"
)

func TestNewApp_BuildsTheFullGraph(t *testing.T) {
	source := &fakeSource{series: map[string][]market.Candle{
		"BTCUSDT": trendingCandles(250, 100),
	}}

	application, err := NewApp(testConfig("BTCUSDT"), WithMarketSource(source))
	require.NoError(t, err)
	require.NotNil(t, application)
	assert.NotNil(t, application.Scan())
}

func TestNewApp_NilConfig(t *testing.T) {
	_, err := NewApp(nil)
	assert.Error(t, err)
}
