package market

import (
	"context"
	"errors"
	"sync"
)

type CandleStore interface {
	Put(ctx context.Context, symbol, interval string, cs []Candle, max int) error
	Get(ctx context.Context, symbol, interval string) ([]Candle, error)
}

// MemoryCandleStore keeps per-symbol candle tails in memory, sharded to keep
// lock contention low when many symbols refresh concurrently.
type MemoryCandleStore struct {
	shards []candleShard
}

type candleShard struct {
	mu   sync.RWMutex
	data map[string][]Candle
}

const defaultShardCount = 32

func NewMemoryCandleStore() *MemoryCandleStore {
	out := &MemoryCandleStore{
		shards: make([]candleShard, defaultShardCount),
	}
	for i := range out.shards {
		out.shards[i] = candleShard{data: make(map[string][]Candle)}
	}
	return out
}

func (s *MemoryCandleStore) shardFor(key string) *candleShard {
	idx := hashKey(key) % uint32(len(s.shards))
	return &s.shards[idx]
}

func storeKey(symbol, interval string) string { return symbol + "@" + interval }

// Put appends candles to the series, replacing the tail candle when the new
// batch re-delivers the still-open bar, and trims the series to max entries.
func (s *MemoryCandleStore) Put(ctx context.Context, symbol, interval string, cs []Candle, max int) error {
	if symbol == "" || interval == "" {
		return errors.New("symbol and interval are required")
	}
	if len(cs) == 0 {
		return nil
	}
	if max <= 0 {
		max = 500
	}
	k := storeKey(symbol, interval)
	sh := s.shardFor(k)
	sh.mu.Lock()
	defer sh.mu.Unlock()
	cur := sh.data[k]
	for _, candle := range cs {
		n := len(cur)
		if n > 0 && cur[n-1].OpenTime == candle.OpenTime {
			cur[n-1] = candle
			continue
		}
		cur = append(cur, candle)
	}
	if len(cur) > max {
		cur = cur[len(cur)-max:]
	}
	sh.data[k] = cur
	return nil
}

func (s *MemoryCandleStore) Set(ctx context.Context, symbol, interval string, cs []Candle) error {
	if symbol == "" || interval == "" {
		return errors.New("symbol and interval are required")
	}
	k := storeKey(symbol, interval)
	sh := s.shardFor(k)
	sh.mu.Lock()
	defer sh.mu.Unlock()
	dst := make([]Candle, len(cs))
	copy(dst, cs)
	sh.data[k] = dst
	return nil
}

func (s *MemoryCandleStore) Get(ctx context.Context, symbol, interval string) ([]Candle, error) {
	k := storeKey(symbol, interval)
	sh := s.shardFor(k)
	sh.mu.RLock()
	defer sh.mu.RUnlock()
	cur := sh.data[k]
	out := make([]Candle, len(cur))
	copy(out, cur)
	return out, nil
}

func hashKey(s string) uint32 {
	const (
		offset32 = 2166136261
		prime32  = 16777619
	)
	var h uint32 = offset32
	for i := 0; i < len(s); i++ {
		h ^= uint32(s[i])
		h *= prime32
	}
	return h
}
