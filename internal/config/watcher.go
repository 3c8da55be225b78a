package config

import (
	"fmt"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"

	"github.com/Shershaah24/kuiper-v2/internal/logger"
	"github.com/Shershaah24/kuiper-v2/internal/wisdom"
)

// ChangeListener is called with the new risk tunables after a hot reload.
type ChangeListener func(wisdom.RiskConfig)

// Watcher reloads the risk section of the config file on filesystem
// changes. Only the risk tunables are hot; everything else requires a
// restart. The core still receives an immutable RiskConfig per call.
type Watcher struct {
	path string
	v    *viper.Viper

	mu        sync.RWMutex
	risk      wisdom.RiskConfig
	loadedAt  time.Time
	listeners []ChangeListener
}

// NewWatcher reads the file once and starts listening for FS events.
// Reloads that fail validation are dropped; the previous tunables stay in
// effect.
func NewWatcher(path string) (*Watcher, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("config watcher requires path")
	}
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("read config failed: %w", err)
	}
	w := &Watcher{path: path, v: v}
	if err := w.reload(); err != nil {
		return nil, err
	}
	v.OnConfigChange(func(evt fsnotify.Event) {
		if err := w.reload(); err != nil {
			logger.Errorf("risk config reload failed (%s): %v", evt.Name, err)
			return
		}
		w.notify()
	})
	v.WatchConfig()
	return w, nil
}

// Risk returns the current risk tunables.
func (w *Watcher) Risk() wisdom.RiskConfig {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.risk
}

// Subscribe registers a listener for future reloads.
func (w *Watcher) Subscribe(fn ChangeListener) {
	if fn == nil {
		return
	}
	w.mu.Lock()
	w.listeners = append(w.listeners, fn)
	w.mu.Unlock()
}

func (w *Watcher) notify() {
	w.mu.RLock()
	risk := w.risk
	listeners := append([]ChangeListener(nil), w.listeners...)
	w.mu.RUnlock()
	for _, fn := range listeners {
		go func(cb ChangeListener) {
			defer func() {
				if r := recover(); r != nil {
					logger.Errorf("risk config listener panic: %v", r)
				}
			}()
			cb(risk)
		}(fn)
	}
}

func (w *Watcher) reload() error {
	var cfg Config
	if err := w.v.Unmarshal(&cfg); err != nil {
		return fmt.Errorf("parse config failed: %w", err)
	}
	risk := cfg.Risk.WithDefaults()
	if err := risk.Validate(); err != nil {
		return err
	}
	w.mu.Lock()
	w.risk = risk
	w.loadedAt = time.Now()
	w.mu.Unlock()
	logger.Infof("risk tunables reloaded from %s", filepath.Base(w.path))
	return nil
}
