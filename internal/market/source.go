package market

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	binance "github.com/adshao/go-binance/v2"

	"github.com/Shershaah24/kuiper-v2/internal/logger"
)

// Source supplies historical candles. Retries and timeouts live here, never
// in the analysis core, which only ever sees already-resolved inputs.
type Source interface {
	FetchHistory(ctx context.Context, symbol, interval string, limit int) ([]Candle, error)
}

const maxHistoryLimit = 1000

// BinanceSource implements Source over the Binance spot REST API.
type BinanceSource struct {
	client     *binance.Client
	maxRetries int
	backoff    time.Duration
	breaker    *fetchBreaker
}

type BinanceConfig struct {
	BaseURL     string
	HTTPTimeout time.Duration
	MaxRetries  int
	Backoff     time.Duration
}

func NewBinanceSource(cfg BinanceConfig) *BinanceSource {
	client := binance.NewClient("", "")
	if strings.TrimSpace(cfg.BaseURL) != "" {
		client.BaseURL = strings.TrimSpace(cfg.BaseURL)
	}
	timeout := cfg.HTTPTimeout
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	client.HTTPClient = &http.Client{Timeout: timeout}
	retries := cfg.MaxRetries
	if retries <= 0 {
		retries = 3
	}
	backoff := cfg.Backoff
	if backoff <= 0 {
		backoff = 2 * time.Second
	}
	return &BinanceSource{
		client:     client,
		maxRetries: retries,
		backoff:    backoff,
		breaker:    newFetchBreaker("binance-klines", 5, 30*time.Second),
	}
}

func (s *BinanceSource) FetchHistory(ctx context.Context, symbol, interval string, limit int) ([]Candle, error) {
	symbol = strings.ToUpper(strings.ReplaceAll(strings.TrimSpace(symbol), "/", ""))
	if symbol == "" {
		return nil, fmt.Errorf("symbol is required")
	}
	interval = strings.ToLower(strings.TrimSpace(interval))
	if interval == "" {
		return nil, fmt.Errorf("interval is required")
	}
	if limit <= 0 {
		limit = 500
	}
	if limit > maxHistoryLimit {
		limit = maxHistoryLimit
	}

	if !s.breaker.allow() {
		return nil, fmt.Errorf("fetching %s@%s klines: upstream circuit open", symbol, interval)
	}

	var kls []*binance.Kline
	var err error
	for attempt := 0; attempt <= s.maxRetries; attempt++ {
		if attempt > 0 {
			wait := s.backoff * time.Duration(1<<(attempt-1))
			logger.Warnf("kline fetch %s@%s failed (attempt %d/%d), retrying in %s: %v",
				symbol, interval, attempt, s.maxRetries, wait, err)
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(wait):
			}
		}
		kls, err = s.client.NewKlinesService().
			Symbol(symbol).Interval(interval).Limit(limit).Do(ctx)
		if err == nil {
			break
		}
	}
	if err != nil {
		s.breaker.recordFailure()
		return nil, fmt.Errorf("fetching %s@%s klines: %w", symbol, interval, err)
	}
	s.breaker.recordSuccess()

	out := make([]Candle, 0, len(kls))
	for _, kl := range kls {
		if kl == nil {
			continue
		}
		out = append(out, Candle{
			OpenTime:  kl.OpenTime,
			CloseTime: kl.CloseTime,
			Open:      parseFloat(kl.Open),
			High:      parseFloat(kl.High),
			Low:       parseFloat(kl.Low),
			Close:     parseFloat(kl.Close),
			Volume:    parseFloat(kl.Volume),
			Trades:    kl.TradeNum,
		})
	}
	return out, nil
}

func parseFloat(s string) float64 {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0
	}
	return f
}
