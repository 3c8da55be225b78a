// Package executor turns decisions into orders. Only a paper executor is
// shipped: it converts the price-relative distances to absolute levels and
// records the intended order, no real routing.
package executor

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/Shershaah24/kuiper-v2/internal/logger"
	"github.com/Shershaah24/kuiper-v2/internal/wisdom"
)

// Order is one intended trade derived from a decision.
type Order struct {
	TraceID    string    `json:"trace_id"`
	Symbol     string    `json:"symbol"`
	Direction  string    `json:"direction"`
	EntryPrice float64   `json:"entry_price"`
	StopLoss   float64   `json:"stop_loss"`
	TakeProfit float64   `json:"take_profit"`
	Stake      float64   `json:"stake"`
	PlacedAt   time.Time `json:"placed_at"`
}

// Executor consumes decisions at a known price and equity.
type Executor interface {
	Execute(ctx context.Context, decision *wisdom.TradeDecision, currentPrice, accountEquity float64) (*Order, error)
}

// PaperExecutor logs intended orders and keeps the most recent one per
// symbol for inspection. Safe for concurrent use.
type PaperExecutor struct {
	mu     sync.Mutex
	orders map[string]Order
}

func NewPaperExecutor() *PaperExecutor {
	return &PaperExecutor{orders: make(map[string]Order)}
}

// Execute converts the decision's relative distances to absolute SL/TP
// levels. FLAT decisions produce no order and no error.
func (p *PaperExecutor) Execute(ctx context.Context, d *wisdom.TradeDecision, currentPrice, accountEquity float64) (*Order, error) {
	if d == nil {
		return nil, fmt.Errorf("decision is required")
	}
	if d.Direction == wisdom.Flat {
		logger.Debugf("[%s] %s: flat decision, nothing to execute", d.TraceID, d.Symbol)
		return nil, nil
	}
	if currentPrice <= 0 {
		return nil, fmt.Errorf("current price must be positive, got %v", currentPrice)
	}

	order := Order{
		TraceID:    d.TraceID,
		Symbol:     d.Symbol,
		Direction:  string(d.Direction),
		EntryPrice: currentPrice,
		Stake:      accountEquity * d.PositionSizeFraction,
		PlacedAt:   time.Now().UTC(),
	}
	switch d.Direction {
	case wisdom.Long:
		order.StopLoss = currentPrice - d.StopLossDistance
		order.TakeProfit = currentPrice + d.TakeProfitDistance
	case wisdom.Short:
		order.StopLoss = currentPrice + d.StopLossDistance
		order.TakeProfit = currentPrice - d.TakeProfitDistance
	}

	p.mu.Lock()
	p.orders[d.Symbol] = order
	p.mu.Unlock()

	logger.Infof("[%s] paper order %s %s entry=%.6f sl=%.6f tp=%.6f stake=%.2f",
		d.TraceID, order.Direction, order.Symbol, order.EntryPrice, order.StopLoss, order.TakeProfit, order.Stake)
	return &order, nil
}

// LastOrder returns the most recent paper order for symbol, if any.
func (p *PaperExecutor) LastOrder(symbol string) (Order, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	o, ok := p.orders[symbol]
	return o, ok
}
