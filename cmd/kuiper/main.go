package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/Shershaah24/kuiper-v2/internal/app"
	"github.com/Shershaah24/kuiper-v2/internal/config"
	"github.com/Shershaah24/kuiper-v2/internal/logger"
)

func main() {
	cfgPath := os.Getenv("KUIPER_CONFIG")
	if cfgPath == "" {
		cfgPath = "configs/config.yaml"
	}

	cfg, err := config.Load(cfgPath)
	if err != nil {
		log.Fatalf("loading config failed: %v", err)
	}
	logger.SetLevel(cfg.App.LogLevel)
	logger.Infof("config loaded (env=%s, %d symbols)", cfg.App.Env, len(cfg.Market.Symbols))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	application, err := app.NewApp(cfg, app.WithConfigPath(cfgPath))
	if err != nil {
		log.Fatalf("building app failed: %v", err)
	}
	if err := application.Run(ctx); err != nil {
		log.Fatalf("run failed: %v", err)
	}
}
