package app

import (
	"context"
	"fmt"
	"time"

	"github.com/Shershaah24/kuiper-v2/internal/config"
	"github.com/Shershaah24/kuiper-v2/internal/executor"
	"github.com/Shershaah24/kuiper-v2/internal/indicator"
	"github.com/Shershaah24/kuiper-v2/internal/market"
	kuiperhttp "github.com/Shershaah24/kuiper-v2/internal/transport/http"
	"github.com/Shershaah24/kuiper-v2/internal/wisdom"
)

// AppBuilder assembles the dependency graph. The constructor functions are
// swappable so tests can inject fakes without touching the wiring.
type AppBuilder struct {
	cfg *config.Config

	sourceFn   func(config.MarketConfig) market.Source
	executorFn func() executor.Executor
	httpFn     func(config.AppConfig, kuiperhttp.ScanBackend) (*kuiperhttp.Server, error)
	watcherFn  func(string) (*config.Watcher, error)

	configPath string
}

type AppBuilderOption func(*AppBuilder)

func NewAppBuilder(cfg *config.Config, opts ...AppBuilderOption) *AppBuilder {
	b := &AppBuilder{
		cfg:        cfg,
		sourceFn:   buildMarketSource,
		executorFn: func() executor.Executor { return executor.NewPaperExecutor() },
		httpFn:     buildHTTPServer,
		watcherFn:  config.NewWatcher,
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// WithMarketSource overrides the kline source (tests, replay harnesses).
func WithMarketSource(source market.Source) AppBuilderOption {
	return func(b *AppBuilder) {
		b.sourceFn = func(config.MarketConfig) market.Source { return source }
	}
}

// WithConfigPath enables hot reload of the risk tunables from the file.
func WithConfigPath(path string) AppBuilderOption {
	return func(b *AppBuilder) { b.configPath = path }
}

func (b *AppBuilder) Build(ctx context.Context) (*App, error) {
	if b.cfg == nil {
		return nil, fmt.Errorf("nil config")
	}

	source := b.sourceFn(b.cfg.Market)
	store := market.NewMemoryCandleStore()
	inds := indicator.NewEngine(indicator.Params{RSIPeriod: b.cfg.Risk.RSIPeriod})
	engine := wisdom.NewEngine()
	exec := b.executorFn()

	scan := NewScanService(b.cfg, source, store, inds, engine, exec)

	var watcher *config.Watcher
	if b.configPath != "" {
		w, err := b.watcherFn(b.configPath)
		if err != nil {
			return nil, fmt.Errorf("starting config watcher: %w", err)
		}
		w.Subscribe(scan.SetRisk)
		watcher = w
	}

	httpSrv, err := b.httpFn(b.cfg.App, scan)
	if err != nil {
		return nil, fmt.Errorf("building http server: %w", err)
	}

	return &App{cfg: b.cfg, scan: scan, httpSrv: httpSrv, watcher: watcher}, nil
}

func buildMarketSource(cfg config.MarketConfig) market.Source {
	return market.NewBinanceSource(market.BinanceConfig{
		BaseURL:     cfg.RESTBaseURL,
		HTTPTimeout: time.Duration(cfg.HTTPTimeoutSeconds) * time.Second,
		MaxRetries:  cfg.MaxRetries,
	})
}

func buildHTTPServer(cfg config.AppConfig, scan kuiperhttp.ScanBackend) (*kuiperhttp.Server, error) {
	return kuiperhttp.NewServer(kuiperhttp.ServerConfig{Addr: cfg.HTTPAddr, Scan: scan})
}
