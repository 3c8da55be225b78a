package app

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/Shershaah24/kuiper-v2/internal/config"
	"github.com/Shershaah24/kuiper-v2/internal/executor"
	"github.com/Shershaah24/kuiper-v2/internal/indicator"
	"github.com/Shershaah24/kuiper-v2/internal/logger"
	"github.com/Shershaah24/kuiper-v2/internal/market"
	"github.com/Shershaah24/kuiper-v2/internal/wisdom"
)

// ScanService drives the fetch → compute → analyze → execute loop over the
// configured symbols. Each analysis is a pure computation over its own
// snapshot, so symbols run concurrently without locking.
type ScanService struct {
	cfg      *config.Config
	source   market.Source
	store    market.CandleStore
	inds     *indicator.Engine
	engine   *wisdom.Engine
	executor executor.Executor

	mu   sync.RWMutex
	risk wisdom.RiskConfig
	last map[string]*wisdom.TradeDecision
}

func NewScanService(cfg *config.Config, source market.Source, store market.CandleStore,
	inds *indicator.Engine, engine *wisdom.Engine, exec executor.Executor) *ScanService {
	return &ScanService{
		cfg:      cfg,
		source:   source,
		store:    store,
		inds:     inds,
		engine:   engine,
		executor: exec,
		risk:     cfg.Risk.WithDefaults(),
		last:     make(map[string]*wisdom.TradeDecision),
	}
}

// SetRisk swaps in hot-reloaded risk tunables for subsequent scans.
func (s *ScanService) SetRisk(risk wisdom.RiskConfig) {
	s.mu.Lock()
	s.risk = risk
	s.mu.Unlock()
	logger.Infof("scan service picked up new risk tunables")
}

func (s *ScanService) riskConfig() wisdom.RiskConfig {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.risk
}

// AnalyzeSymbol fetches history for one symbol, computes its snapshot, and
// runs the decision core. The candles used are returned for reporting.
func (s *ScanService) AnalyzeSymbol(ctx context.Context, symbol string) (*wisdom.TradeDecision, []market.Candle, float64, error) {
	interval := s.cfg.Market.Interval
	candles, err := s.source.FetchHistory(ctx, symbol, interval, s.cfg.Market.HistoryLimit)
	if err != nil {
		return nil, nil, 0, fmt.Errorf("fetching history for %s: %w", symbol, err)
	}
	if err := s.store.Put(ctx, symbol, interval, candles, s.cfg.Market.MaxCached); err != nil {
		return nil, nil, 0, err
	}

	snap, err := s.inds.Compute(symbol, interval, candles)
	if err != nil {
		return nil, nil, 0, fmt.Errorf("computing indicators for %s: %w", symbol, err)
	}
	price := market.LastClose(candles)

	decision, err := s.AnalyzeSnapshot(snap, price, s.cfg.App.AccountEquity)
	if err != nil {
		return nil, nil, 0, err
	}
	return decision, candles, price, nil
}

// AnalyzeSnapshot runs the decision core over an already-built snapshot and
// hands non-flat decisions to the executor.
func (s *ScanService) AnalyzeSnapshot(snap *indicator.Snapshot, price, equity float64) (*wisdom.TradeDecision, error) {
	decision, err := s.engine.Analyze(snap, price, equity, s.riskConfig())
	if err != nil {
		return nil, err
	}
	if decision.Direction != wisdom.Flat {
		logger.InfoBlock(strings.Join(decision.Reasoning, "\n"))
		if s.executor != nil {
			if _, err := s.executor.Execute(context.Background(), decision, price, equity); err != nil {
				logger.Errorf("[%s] executing %s failed: %v", decision.TraceID, decision.Symbol, err)
			}
		}
	}
	s.mu.Lock()
	s.last[snap.Symbol] = decision
	s.mu.Unlock()
	return decision, nil
}

// ScanAll analyzes every configured symbol concurrently and returns the
// decisions sorted by symbol. One failing symbol fails the scan.
func (s *ScanService) ScanAll(ctx context.Context) ([]*wisdom.TradeDecision, error) {
	symbols := s.cfg.Market.Symbols
	decisions := make([]*wisdom.TradeDecision, len(symbols))

	group, ctx := errgroup.WithContext(ctx)
	for i, symbol := range symbols {
		group.Go(func() error {
			d, _, _, err := s.AnalyzeSymbol(ctx, symbol)
			if err != nil {
				return err
			}
			decisions[i] = d
			return nil
		})
	}
	if err := group.Wait(); err != nil {
		return nil, err
	}

	sort.Slice(decisions, func(i, j int) bool { return decisions[i].Symbol < decisions[j].Symbol })
	return decisions, nil
}

// LastDecision returns the most recent decision for symbol, if any.
func (s *ScanService) LastDecision(symbol string) (*wisdom.TradeDecision, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	d, ok := s.last[symbol]
	return d, ok
}

// Run scans on a fixed interval until the context is canceled. The first
// scan fires immediately.
func (s *ScanService) Run(ctx context.Context) error {
	interval := time.Duration(s.cfg.App.ScanIntervalSeconds) * time.Second
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		if _, err := s.ScanAll(ctx); err != nil {
			if ctx.Err() != nil {
				return nil
			}
			logger.Errorf("scan cycle failed: %v", err)
		}
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
		}
	}
}
