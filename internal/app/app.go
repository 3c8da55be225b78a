package app

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/Shershaah24/kuiper-v2/internal/config"
	"github.com/Shershaah24/kuiper-v2/internal/logger"
	kuiperhttp "github.com/Shershaah24/kuiper-v2/internal/transport/http"
)

// App owns application-level orchestration: config in, scan loop and HTTP
// server out.
type App struct {
	cfg     *config.Config
	scan    *ScanService
	httpSrv *kuiperhttp.Server
	watcher *config.Watcher
}

// NewApp builds the application from config without starting it.
func NewApp(cfg *config.Config, opts ...AppBuilderOption) (*App, error) {
	if cfg == nil {
		return nil, fmt.Errorf("nil config")
	}
	logger.SetLevel(cfg.App.LogLevel)
	return buildAppWithWire(context.Background(), cfg, opts...)
}

// Run starts the scan loop and the HTTP server, returning when the context
// is canceled or either part fails.
func (a *App) Run(ctx context.Context) error {
	if a == nil || a.cfg == nil {
		return fmt.Errorf("app not initialized")
	}

	logger.Infof("kuiper starting: %d symbols on %s, scan every %ds, http %s",
		len(a.cfg.Market.Symbols), a.cfg.Market.Interval,
		a.cfg.App.ScanIntervalSeconds, a.httpSrv.Addr())

	group, ctx := errgroup.WithContext(ctx)
	group.Go(func() error {
		if err := a.httpSrv.Start(ctx); err != nil {
			return fmt.Errorf("http server error: %w", err)
		}
		return nil
	})
	group.Go(func() error {
		return a.scan.Run(ctx)
	})
	return group.Wait()
}

// Scan exposes the underlying scan service (for testing and replay).
func (a *App) Scan() *ScanService {
	if a == nil {
		return nil
	}
	return a.scan
}
