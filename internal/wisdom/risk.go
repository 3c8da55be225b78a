package wisdom

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// RiskNumbers are the sized outputs of a non-flat decision, in
// price-relative units. The executor converts them to absolute levels.
type RiskNumbers struct {
	StopLossDistance     float64
	TakeProfitDistance   float64
	PositionSizeFraction float64
	Reasoning            []string
}

// SizeRisk computes stop/take-profit distances and the equity fraction to
// commit. The arithmetic runs on decimals so repeated calls over the same
// inputs produce identical, drift-free fractions. A reward:risk ratio below
// the configured floor returns an InvalidRiskRatioError; callers treat that
// as a policy rejection, not a crash.
func SizeRisk(regime Regime, volatilityOverride bool, atr, currentPrice float64, cfg RiskConfig) (RiskNumbers, error) {
	cfg = cfg.WithDefaults()
	if atr <= 0 {
		return RiskNumbers{}, &MissingIndicatorError{Key: "ATR_14"}
	}
	if currentPrice <= 0 {
		return RiskNumbers{}, fmt.Errorf("current price must be positive, got %v", currentPrice)
	}

	atrD := decimal.NewFromFloat(atr)
	price := decimal.NewFromFloat(currentPrice)
	sl := atrD.Mul(decimal.NewFromFloat(cfg.ATRSLMultiplier))
	tp := atrD.Mul(decimal.NewFromFloat(cfg.ATRTPMultiplier))

	ratio := tp.Div(sl)
	minRatio := decimal.NewFromFloat(cfg.MinRewardRiskRatio)
	if ratio.LessThan(minRatio) {
		rf, _ := ratio.Float64()
		return RiskNumbers{}, &InvalidRiskRatioError{Ratio: rf, Minimum: cfg.MinRewardRiskRatio}
	}

	// Fraction of equity at risk divided by the relative stop distance:
	// losing the stop costs exactly max_risk_percent of equity.
	riskBudget := decimal.NewFromFloat(cfg.MaxRiskPercent).Div(decimal.NewFromInt(100))
	relStop := sl.Div(price)
	fraction := riskBudget.Div(relStop)

	out := RiskNumbers{}
	slF, _ := sl.Float64()
	tpF, _ := tp.Float64()
	ratioF, _ := ratio.Float64()
	out.StopLossDistance = slF
	out.TakeProfitDistance = tpF
	out.Reasoning = append(out.Reasoning, fmt.Sprintf(
		"RISK: stop %.6f (%.1fx ATR), target %.6f (%.1fx ATR), reward:risk %.2f",
		slF, cfg.ATRSLMultiplier, tpF, cfg.ATRTPMultiplier, ratioF))

	if regime == Ranging {
		fraction = fraction.Div(decimal.NewFromInt(2))
		out.Reasoning = append(out.Reasoning, "RISK: ranging regime, position size halved")
	}
	if volatilityOverride {
		fraction = fraction.Div(decimal.NewFromInt(2))
		out.Reasoning = append(out.Reasoning, "RISK: volatility override, position size halved again")
	}
	if fraction.GreaterThan(decimal.NewFromInt(1)) {
		fraction = decimal.NewFromInt(1)
		out.Reasoning = append(out.Reasoning, "RISK: size fraction capped at full equity")
	}

	fracF, _ := fraction.Float64()
	out.PositionSizeFraction = fracF
	out.Reasoning = append(out.Reasoning, fmt.Sprintf(
		"RISK: committing %.4f of equity (%.1f%% risk budget over a %.4f relative stop)",
		fracF, cfg.MaxRiskPercent, mustFloat(relStop)))
	return out, nil
}

func mustFloat(d decimal.Decimal) float64 {
	f, _ := d.Float64()
	return f
}
