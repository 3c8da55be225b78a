package indicator

import (
	"math"

	"github.com/Shershaah24/kuiper-v2/internal/market"
)

// recognizePatterns evaluates the candlestick recognisers over the tail of
// the candle series and returns a vote per CDL key: +100/-100 for a hit,
// +200/-200 for the stronger multi-candle confirmations, 0 otherwise. The
// talib port carries no candle functions, so the high-signal formations are
// detected natively; recognisers without a native detector report 0.
func recognizePatterns(candles []market.Candle) map[string]int {
	votes := make(map[string]int, len(patternNames))
	for _, name := range patternNames {
		votes[name] = 0
	}
	if len(candles) < 5 {
		return votes
	}
	n := len(candles)
	c0 := candles[n-1] // current bar
	c1 := candles[n-2]
	c2 := candles[n-3]

	// Single-candle formations.
	if isDoji(c0) {
		votes["CDLDOJI"] = 100
		switch {
		case lowerShadow(c0) > 2*bodySize(c0) && upperShadow(c0) < 0.1*candleRange(c0):
			votes["CDLDRAGONFLYDOJI"] = 100
			votes["CDLTAKURI"] = 100
		case upperShadow(c0) > 2*bodySize(c0) && lowerShadow(c0) < 0.1*candleRange(c0):
			votes["CDLGRAVESTONEDOJI"] = -100
		case lowerShadow(c0) > bodySize(c0) && upperShadow(c0) > bodySize(c0):
			votes["CDLLONGLEGGEDDOJI"] = 100
			votes["CDLRICKSHAWMAN"] = 100
		}
	}
	if isHammer(c0) {
		if isBullish(c1) {
			votes["CDLHANGINGMAN"] = -100
		} else {
			votes["CDLHAMMER"] = 100
		}
	}
	if isInvertedHammer(c0) {
		if isBullish(c1) {
			votes["CDLSHOOTINGSTAR"] = -100
		} else {
			votes["CDLINVERTEDHAMMER"] = 100
		}
	}
	if isMarubozu(c0) {
		if isBullish(c0) {
			votes["CDLMARUBOZU"] = 100
			votes["CDLCLOSINGMARUBOZU"] = 100
		} else {
			votes["CDLMARUBOZU"] = -100
			votes["CDLCLOSINGMARUBOZU"] = -100
		}
	}
	if isSpinningTop(c0) {
		if isBullish(c0) {
			votes["CDLSPINNINGTOP"] = 100
		} else {
			votes["CDLSPINNINGTOP"] = -100
		}
	}
	if isHighWave(c0) {
		if isBullish(c0) {
			votes["CDLHIGHWAVE"] = 100
		} else {
			votes["CDLHIGHWAVE"] = -100
		}
	}
	if isLongLine(c0) {
		if isBullish(c0) {
			votes["CDLLONGLINE"] = 100
		} else {
			votes["CDLLONGLINE"] = -100
		}
	} else if isShortLine(c0) {
		if isBullish(c0) {
			votes["CDLSHORTLINE"] = 100
		} else {
			votes["CDLSHORTLINE"] = -100
		}
	}
	if isBullish(c0) && bodySize(c0) > 0.5*candleRange(c0) && c0.Open <= c1.Low {
		votes["CDLBELTHOLD"] = 100
	} else if isBearish(c0) && bodySize(c0) > 0.5*candleRange(c0) && c0.Open >= c1.High {
		votes["CDLBELTHOLD"] = -100
	}

	// Two-candle formations.
	if isBearish(c1) && isBullish(c0) && engulfs(c0, c1) {
		votes["CDLENGULFING"] = 100
	} else if isBullish(c1) && isBearish(c0) && engulfs(c0, c1) {
		votes["CDLENGULFING"] = -100
	}
	if insideBody(c0, c1) && bodySize(c0) < 0.6*bodySize(c1) {
		if isDoji(c0) {
			if isBullish(c1) {
				votes["CDLHARAMICROSS"] = -100
			} else {
				votes["CDLHARAMICROSS"] = 100
			}
		} else if isBullish(c1) && isBearish(c0) {
			votes["CDLHARAMI"] = -100
		} else if isBearish(c1) && isBullish(c0) {
			votes["CDLHARAMI"] = 100
		}
	}
	if isBearish(c1) && isBullish(c0) &&
		c0.Open < c1.Close && c0.Close > midBody(c1) && c0.Close < c1.Open {
		votes["CDLPIERCING"] = 100
	}
	if isBullish(c1) && isBearish(c0) &&
		c0.Open > c1.Close && c0.Close < midBody(c1) && c0.Close > c1.Open {
		votes["CDLDARKCLOUDCOVER"] = -100
	}
	if isDoji(c0) && !isDoji(c1) && gapsAwayFromBody(c0, c1) {
		if isBullish(c1) {
			votes["CDLDOJISTAR"] = -100
		} else {
			votes["CDLDOJISTAR"] = 100
		}
	}
	if isBearish(c1) && isBearish(c0) && c0.Close >= c1.Close &&
		math.Abs(c0.Close-c1.Close) < 0.1*bodySize(c1) {
		votes["CDLMATCHINGLOW"] = 100
	}

	// Three-candle formations.
	if isBearish(c2) && smallBody(c1) && isBullish(c0) &&
		bodyBelow(c1, c2) && c0.Close > midBody(c2) {
		if isDoji(c1) {
			votes["CDLMORNINGDOJISTAR"] = 100
		} else {
			votes["CDLMORNINGSTAR"] = 100
		}
	}
	if isBullish(c2) && smallBody(c1) && isBearish(c0) &&
		bodyAbove(c1, c2) && c0.Close < midBody(c2) {
		if isDoji(c1) {
			votes["CDLEVENINGDOJISTAR"] = -100
		} else {
			votes["CDLEVENINGSTAR"] = -100
		}
	}
	if isBullish(c2) && isBullish(c1) && isBullish(c0) &&
		c1.Close > c2.Close && c0.Close > c1.Close &&
		c1.Open > c2.Open && c0.Open > c1.Open &&
		upperShadow(c0) < 0.2*bodySize(c0) {
		votes["CDL3WHITESOLDIERS"] = 200
	}
	if isBearish(c2) && isBearish(c1) && isBearish(c0) &&
		c1.Close < c2.Close && c0.Close < c1.Close &&
		c1.Open < c2.Open && c0.Open < c1.Open &&
		lowerShadow(c0) < 0.2*bodySize(c0) {
		votes["CDL3BLACKCROWS"] = -200
		if math.Abs(c1.Open-c2.Close) < 0.05*bodySize(c2) &&
			math.Abs(c0.Open-c1.Close) < 0.05*bodySize(c1) {
			votes["CDLIDENTICAL3CROWS"] = -200
		}
	}
	if isDoji(c2) && isDoji(c1) && isDoji(c0) {
		if c1.High < c2.Low && c1.High < c0.Low {
			votes["CDLTRISTAR"] = 100
		} else if c1.Low > c2.High && c1.Low > c0.High {
			votes["CDLTRISTAR"] = -100
		}
	}
	if insideBody(c1, c2) && bodySize(c1) < 0.6*bodySize(c2) {
		if isBearish(c2) && isBullish(c0) && c0.Close > c2.Open {
			votes["CDL3INSIDE"] = 100
		} else if isBullish(c2) && isBearish(c0) && c0.Close < c2.Open {
			votes["CDL3INSIDE"] = -100
		}
	}
	if isBearish(c1) && isBullish(c0) && engulfs(c0, c1) && c0.Close > c1.High {
		votes["CDL3OUTSIDE"] = 100
	} else if isBullish(c1) && isBearish(c0) && engulfs(c0, c1) && c0.Close < c1.Low {
		votes["CDL3OUTSIDE"] = -100
	}

	return votes
}

func bodySize(c market.Candle) float64    { return math.Abs(c.Close - c.Open) }
func candleRange(c market.Candle) float64 { return c.High - c.Low }
func isBullish(c market.Candle) bool      { return c.Close > c.Open }
func isBearish(c market.Candle) bool      { return c.Close < c.Open }
func midBody(c market.Candle) float64     { return (c.Open + c.Close) / 2 }

func upperShadow(c market.Candle) float64 {
	return c.High - math.Max(c.Open, c.Close)
}

func lowerShadow(c market.Candle) float64 {
	return math.Min(c.Open, c.Close) - c.Low
}

func isDoji(c market.Candle) bool {
	rng := candleRange(c)
	return rng > 0 && bodySize(c) <= 0.1*rng
}

func smallBody(c market.Candle) bool {
	rng := candleRange(c)
	return rng > 0 && bodySize(c) <= 0.3*rng
}

func isHammer(c market.Candle) bool {
	return smallBody(c) &&
		lowerShadow(c) > 2*bodySize(c) &&
		upperShadow(c) < 0.1*candleRange(c)
}

func isInvertedHammer(c market.Candle) bool {
	return smallBody(c) &&
		upperShadow(c) > 2*bodySize(c) &&
		lowerShadow(c) < 0.1*candleRange(c)
}

func isMarubozu(c market.Candle) bool {
	rng := candleRange(c)
	return rng > 0 && bodySize(c) >= 0.95*rng
}

func isSpinningTop(c market.Candle) bool {
	return smallBody(c) && !isDoji(c) &&
		upperShadow(c) > bodySize(c) && lowerShadow(c) > bodySize(c)
}

func isHighWave(c market.Candle) bool {
	return smallBody(c) &&
		upperShadow(c) > 2*bodySize(c) && lowerShadow(c) > 2*bodySize(c)
}

func isLongLine(c market.Candle) bool {
	rng := candleRange(c)
	return rng > 0 && bodySize(c) > 0.7*rng
}

func isShortLine(c market.Candle) bool {
	rng := candleRange(c)
	return rng > 0 && bodySize(c) < 0.25*rng && !isDoji(c)
}

func engulfs(outer, inner market.Candle) bool {
	return math.Max(outer.Open, outer.Close) > math.Max(inner.Open, inner.Close) &&
		math.Min(outer.Open, outer.Close) < math.Min(inner.Open, inner.Close)
}

func insideBody(inner, outer market.Candle) bool {
	return math.Max(inner.Open, inner.Close) <= math.Max(outer.Open, outer.Close) &&
		math.Min(inner.Open, inner.Close) >= math.Min(outer.Open, outer.Close)
}

func bodyBelow(c, ref market.Candle) bool {
	return math.Max(c.Open, c.Close) < math.Min(ref.Open, ref.Close)
}

func bodyAbove(c, ref market.Candle) bool {
	return math.Min(c.Open, c.Close) > math.Max(ref.Open, ref.Close)
}

func gapsAwayFromBody(c, ref market.Candle) bool {
	return bodyBelow(c, ref) || bodyAbove(c, ref)
}
