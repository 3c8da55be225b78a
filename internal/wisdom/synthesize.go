package wisdom

import (
	"fmt"
	"strings"
)

// disagreePenalty scales how hard a dissenting lower tier pulls confidence
// down. Dissent can never flip the direction set by a higher tier.
const disagreePenalty = 0.2

// Synthesis is the outcome of the tier walk, before risk sizing.
type Synthesis struct {
	Direction          TradeDirection
	Confidence         float64
	VolatilityOverride bool
	Reasoning          []string
}

// Synthesize reduces the tier hierarchy REGIME, TREND, MOMENTUM, VOLUME,
// PATTERN to a direction, a confidence, and the ordered reasoning trace.
// The shadow signals are the aggregation the non-volatile fallback regime
// would have produced; they only matter for the high-conviction override.
func Synthesize(regime RegimeResult, cats, shadow map[Tier]CategorySignal, cfg RiskConfig) Synthesis {
	cfg = cfg.WithDefaults()
	syn := Synthesis{Direction: Flat}
	syn.Reasoning = append(syn.Reasoning, fmt.Sprintf(
		"REGIME: %s (rule %s; %s)", regime.Regime, regime.Rule, strings.Join(regime.Evidence, "; ")))

	if regime.Regime == Volatile {
		return synthesizeVolatile(syn, shadow, cfg)
	}

	switch regime.Regime {
	case TrendingUp:
		syn.Reasoning = append(syn.Reasoning, "REGIME: uptrend confirmed, LONG candidates only")
	case TrendingDown:
		syn.Reasoning = append(syn.Reasoning, "REGIME: downtrend confirmed, SHORT candidates only")
	case Ranging:
		syn.Reasoning = append(syn.Reasoning, "REGIME: range-bound, mean-reversion mode, both directions permitted")
	}

	var (
		working  SignalDirection
		agreeSum float64
		agreeN   int
		penalty  float64
		flatLock bool
	)
	for _, tier := range categoryTiers {
		cs := cats[tier]
		switch {
		case flatLock:
			syn.Reasoning = append(syn.Reasoning, fmt.Sprintf(
				"%s: %s (strength %.2f) ignored, decision already locked FLAT", tier, cs.Direction, cs.Strength))

		case cs.Direction == Unreliable:
			if working == "" {
				// The top-priority non-neutral signal is unreliable:
				// nothing below it may set a direction.
				flatLock = true
				syn.Reasoning = append(syn.Reasoning, fmt.Sprintf(
					"%s: UNRELIABLE before any direction was set, locking FLAT (%s)", tier, cs.Rationale))
				continue
			}
			syn.Reasoning = append(syn.Reasoning, fmt.Sprintf(
				"%s: UNRELIABLE, no contribution (%s)", tier, cs.Rationale))

		case cs.Direction == Neutral:
			syn.Reasoning = append(syn.Reasoning, fmt.Sprintf(
				"%s: NEUTRAL, no contribution (%s)", tier, cs.Rationale))

		case working == "" && directionAllowed(regime.Regime, cs.Direction):
			working = cs.Direction
			agreeSum += cs.Strength
			agreeN++
			syn.Reasoning = append(syn.Reasoning, fmt.Sprintf(
				"%s: %s (strength %.2f) sets the working direction: %s", tier, cs.Direction, cs.Strength, cs.Rationale))

		case working == "":
			syn.Reasoning = append(syn.Reasoning, fmt.Sprintf(
				"%s: %s (strength %.2f) discarded, direction not permitted under %s regime",
				tier, cs.Direction, cs.Strength, regime.Regime))

		case cs.Direction == working:
			agreeSum += cs.Strength
			agreeN++
			syn.Reasoning = append(syn.Reasoning, fmt.Sprintf(
				"%s: %s (strength %.2f) agrees, confidence raised: %s", tier, cs.Direction, cs.Strength, cs.Rationale))

		default:
			penalty += disagreePenalty * cs.Strength
			syn.Reasoning = append(syn.Reasoning, fmt.Sprintf(
				"%s: %s (strength %.2f) disagrees, confidence reduced: %s", tier, cs.Direction, cs.Strength, cs.Rationale))
		}
	}

	if working == "" {
		syn.Reasoning = append(syn.Reasoning, "no tier set a direction, decision is FLAT")
		return syn
	}

	syn.Direction = toTradeDirection(working)
	syn.Confidence = clamp01(agreeSum/float64(agreeN) - penalty)
	syn.Reasoning = append(syn.Reasoning, fmt.Sprintf(
		"DECISION: %s with confidence %.2f (%d agreeing tiers)", syn.Direction, syn.Confidence, agreeN))
	return syn
}

// synthesizeVolatile applies the sole override of volatility suppression:
// every lower tier must agree on one direction with high conviction, in
// which case the trade is allowed at half size.
func synthesizeVolatile(syn Synthesis, shadow map[Tier]CategorySignal, cfg RiskConfig) Synthesis {
	dir := SignalDirection("")
	unanimous := true
	for _, tier := range categoryTiers {
		cs := shadow[tier]
		if cs.Direction != Bullish && cs.Direction != Bearish {
			unanimous = false
			break
		}
		if cs.Strength < cfg.HighConvictionThreshold {
			unanimous = false
			break
		}
		if dir == "" {
			dir = cs.Direction
		} else if cs.Direction != dir {
			unanimous = false
			break
		}
	}

	if !unanimous || dir == "" {
		syn.Reasoning = append(syn.Reasoning,
			"REGIME: volatile market, all signals suppressed as unreliable, decision is FLAT")
		return syn
	}

	minStrength := 1.0
	for _, tier := range categoryTiers {
		if s := shadow[tier].Strength; s < minStrength {
			minStrength = s
		}
		cs := shadow[tier]
		syn.Reasoning = append(syn.Reasoning, fmt.Sprintf(
			"%s: %s (strength %.2f) despite volatility: %s", tier, cs.Direction, cs.Strength, cs.Rationale))
	}

	syn.Direction = toTradeDirection(dir)
	syn.Confidence = clamp01(minStrength)
	syn.VolatilityOverride = true
	syn.Reasoning = append(syn.Reasoning, fmt.Sprintf(
		"DECISION: high-conviction override in volatile regime, %s at half size (all tiers >= %.2f)",
		syn.Direction, cfg.HighConvictionThreshold))
	return syn
}

func directionAllowed(regime Regime, dir SignalDirection) bool {
	switch regime {
	case TrendingUp:
		return dir == Bullish
	case TrendingDown:
		return dir == Bearish
	default:
		return dir == Bullish || dir == Bearish
	}
}

func toTradeDirection(dir SignalDirection) TradeDirection {
	switch dir {
	case Bullish:
		return Long
	case Bearish:
		return Short
	default:
		return Flat
	}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
