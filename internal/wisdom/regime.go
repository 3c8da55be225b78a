package wisdom

import (
	"fmt"

	"github.com/Shershaah24/kuiper-v2/internal/indicator"
)

// regimeInputs are the snapshot keys classification cannot proceed without.
var regimeInputs = []string{
	"NATR_14", "ATR_14", "ADX_14", "PLUS_DI_14", "MINUS_DI_14",
	"SMA_20", "SMA_50", "SMA_200",
}

// ClassifyRegime runs the ordered decision list over the snapshot; the
// first matching rule wins. Classification is total over well-formed input:
// it always yields exactly one regime. Missing required inputs abort the
// whole call with a MissingIndicatorError.
func ClassifyRegime(snap *indicator.Snapshot, cfg RiskConfig) (RegimeResult, error) {
	cfg = cfg.WithDefaults()
	for _, key := range regimeInputs {
		if !snap.Has(key) {
			return RegimeResult{}, &MissingIndicatorError{Key: key}
		}
	}

	natr := snap.Float("NATR_14", 0)
	atr := snap.Float("ATR_14", 0)
	atrAvg := snap.Float("ATR_14_AVG", atr)
	adx := snap.Float("ADX_14", 0)
	plusDI := snap.Float("PLUS_DI_14", 0)
	minusDI := snap.Float("MINUS_DI_14", 0)
	smaFast := snap.Float("SMA_20", 0)
	smaMid := snap.Float("SMA_50", 0)
	smaSlow := snap.Float("SMA_200", 0)

	ascending := smaFast > smaMid && smaMid > smaSlow
	descending := smaFast < smaMid && smaMid < smaSlow

	fallback := classifyTrend(cfg, adx, plusDI, minusDI, ascending, descending)

	// Rule 1: volatility spike suppresses everything else.
	if natr > cfg.NATRVolatilityThreshold || (atrAvg > 0 && atr > 2*atrAvg) {
		return RegimeResult{
			Regime:   Volatile,
			Fallback: fallback,
			Rule:     "volatility-spike",
			Evidence: []string{
				fmt.Sprintf("NATR=%.2f (threshold %.2f)", natr, cfg.NATRVolatilityThreshold),
				fmt.Sprintf("ATR=%.6f vs trailing avg %.6f", atr, atrAvg),
			},
		}, nil
	}

	res := RegimeResult{Regime: fallback, Fallback: fallback}
	switch {
	case fallback == TrendingUp:
		res.Rule = "adx-trend-up"
		res.Evidence = []string{
			fmt.Sprintf("ADX=%.1f >= %.1f", adx, cfg.ADXTrendThreshold),
			fmt.Sprintf("+DI=%.1f > -DI=%.1f", plusDI, minusDI),
			fmt.Sprintf("SMA20=%.6f > SMA50=%.6f > SMA200=%.6f", smaFast, smaMid, smaSlow),
		}
	case fallback == TrendingDown:
		res.Rule = "adx-trend-down"
		res.Evidence = []string{
			fmt.Sprintf("ADX=%.1f >= %.1f", adx, cfg.ADXTrendThreshold),
			fmt.Sprintf("-DI=%.1f > +DI=%.1f", minusDI, plusDI),
			fmt.Sprintf("SMA20=%.6f < SMA50=%.6f < SMA200=%.6f", smaFast, smaMid, smaSlow),
		}
	case adx < cfg.ADXRangeThreshold:
		res.Rule = "adx-no-trend"
		res.Evidence = []string{
			fmt.Sprintf("ADX=%.1f < %.1f", adx, cfg.ADXRangeThreshold),
		}
	default:
		// Ambiguous middle band: treat uncertain trend strength as
		// range-bound rather than risk a false trend call.
		res.Rule = "ambiguous-default-ranging"
		res.Evidence = []string{
			fmt.Sprintf("ADX=%.1f in [%.1f, %.1f) with no confirming MA order",
				adx, cfg.ADXRangeThreshold, cfg.ADXTrendThreshold),
		}
	}
	return res, nil
}

func classifyTrend(cfg RiskConfig, adx, plusDI, minusDI float64, ascending, descending bool) Regime {
	switch {
	case adx >= cfg.ADXTrendThreshold && plusDI > minusDI && ascending:
		return TrendingUp
	case adx >= cfg.ADXTrendThreshold && minusDI > plusDI && descending:
		return TrendingDown
	default:
		return Ranging
	}
}
