// Package wisdom is the decision core: it classifies the market regime,
// reinterprets every indicator family in that context, folds the families
// into category votes, and walks the fixed tier hierarchy to a single
// directional decision with sized risk and a full reasoning trace. Every
// call is a pure function of its inputs; nothing is shared between calls.
package wisdom

import (
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/Shershaah24/kuiper-v2/internal/indicator"
	"github.com/Shershaah24/kuiper-v2/internal/logger"
)

// Engine wires the pipeline stages together. It is stateless and safe for
// concurrent use; analyses for different symbols never interact.
type Engine struct {
	interp *Interpreter
}

func NewEngine() *Engine {
	return &Engine{interp: NewInterpreter()}
}

// Analyze runs the full pipeline over one snapshot:
// classify regime, interpret, aggregate, synthesize, size risk.
func (e *Engine) Analyze(snap *indicator.Snapshot, currentPrice, accountEquity float64, cfg RiskConfig) (*TradeDecision, error) {
	if snap == nil {
		return nil, fmt.Errorf("snapshot is required")
	}
	cfg = cfg.WithDefaults()
	traceID := uuid.NewString()

	regime, err := ClassifyRegime(snap, cfg)
	if err != nil {
		return nil, err
	}

	signals := e.interp.InterpretAll(snap, regime.Regime)
	cats := Aggregate(signals)

	shadow := cats
	if regime.Regime == Volatile {
		// The override needs the directions volatility suppressed:
		// re-read the snapshot under the fallback regime.
		shadow = Aggregate(e.interp.InterpretAll(snap, regime.Fallback))
	}

	syn := Synthesize(regime, cats, shadow, cfg)

	decision := &TradeDecision{
		TraceID:    traceID,
		Symbol:     snap.Symbol,
		Interval:   snap.Interval,
		Direction:  syn.Direction,
		Regime:     regime.Regime,
		Confidence: syn.Confidence,
		Reasoning:  append([]string{fmt.Sprintf("equity=%.2f price=%.6f", accountEquity, currentPrice)}, syn.Reasoning...),
	}

	if syn.Direction == Flat {
		decision.Reasoning = append(decision.Reasoning, "RISK: flat decision, no risk sizing applied")
		logger.Debugf("[%s] %s %s: FLAT (%s)", traceID, snap.Symbol, snap.Interval, regime.Regime)
		return decision, nil
	}

	atr := snap.Float("ATR_14", 0)
	risk, err := SizeRisk(regime.Regime, syn.VolatilityOverride, atr, currentPrice, cfg)
	if err != nil {
		var ratioErr *InvalidRiskRatioError
		if errors.As(err, &ratioErr) {
			// Policy rejection: the decision stays well-formed, it just
			// refuses the trade and says why.
			decision.Direction = Flat
			decision.Confidence = 0
			decision.StopLossDistance = 0
			decision.TakeProfitDistance = 0
			decision.PositionSizeFraction = 0
			decision.Reasoning = append(decision.Reasoning,
				fmt.Sprintf("RISK: trade rejected, %s", ratioErr.Error()))
			logger.Infof("[%s] %s %s: rejected on reward:risk floor", traceID, snap.Symbol, snap.Interval)
			return decision, nil
		}
		return nil, err
	}

	decision.StopLossDistance = risk.StopLossDistance
	decision.TakeProfitDistance = risk.TakeProfitDistance
	decision.PositionSizeFraction = risk.PositionSizeFraction
	decision.Reasoning = append(decision.Reasoning, risk.Reasoning...)

	logger.Infof("[%s] %s %s: %s confidence=%.2f size=%.4f",
		traceID, snap.Symbol, snap.Interval, decision.Direction, decision.Confidence, decision.PositionSizeFraction)
	return decision, nil
}
