package market

import (
	"sync"
	"time"

	"github.com/Shershaah24/kuiper-v2/internal/logger"
)

type breakerState int

const (
	breakerClosed breakerState = iota
	breakerOpen
	breakerHalfOpen
)

func (s breakerState) String() string {
	switch s {
	case breakerClosed:
		return "CLOSED"
	case breakerOpen:
		return "OPEN"
	case breakerHalfOpen:
		return "HALF-OPEN"
	default:
		return "UNKNOWN"
	}
}

// fetchBreaker trips the kline fetch path open after consecutive upstream
// failures, then probes again after the cool-off. Keeps a flapping exchange
// from stalling every scan cycle on timeouts.
type fetchBreaker struct {
	mu          sync.Mutex
	state       breakerState
	failures    int
	threshold   int
	cooloff     time.Duration
	lastFailure time.Time
	name        string
}

func newFetchBreaker(name string, threshold int, cooloff time.Duration) *fetchBreaker {
	if threshold <= 0 {
		threshold = 5
	}
	if cooloff <= 0 {
		cooloff = 30 * time.Second
	}
	return &fetchBreaker{name: name, threshold: threshold, cooloff: cooloff}
}

func (b *fetchBreaker) allow() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	switch b.state {
	case breakerOpen:
		if time.Since(b.lastFailure) > b.cooloff {
			b.transition(breakerHalfOpen)
			return true
		}
		return false
	default:
		return true
	}
}

func (b *fetchBreaker) recordSuccess() {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.state == breakerHalfOpen {
		b.transition(breakerClosed)
	}
	b.failures = 0
}

func (b *fetchBreaker) recordFailure() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.failures++
	b.lastFailure = time.Now()
	switch b.state {
	case breakerClosed:
		if b.failures >= b.threshold {
			b.transition(breakerOpen)
		}
	case breakerHalfOpen:
		b.transition(breakerOpen)
	}
}

func (b *fetchBreaker) transition(to breakerState) {
	from := b.state
	b.state = to
	logger.Warnf("fetch breaker %s: %s -> %s (failures=%d/%d)",
		b.name, from, to, b.failures, b.threshold)
}
