package indicator

import (
	"fmt"
	"sort"
)

// UnknownIndicatorError is returned by Snapshot/interpreter lookups when a
// key falls outside the documented indicator set. It signals an integration
// bug, not bad market data.
type UnknownIndicatorError struct {
	Key string
}

func (e *UnknownIndicatorError) Error() string {
	return fmt.Sprintf("unknown indicator %q: not part of the documented set", e.Key)
}

// Snapshot is the read-only indicator reading set for one symbol+interval,
// produced once per analysis call. Keys follow the catalog (RSI_14, MACD,
// BBANDS, CDL*, ...). The pipeline never mutates a snapshot.
type Snapshot struct {
	Symbol   string
	Interval string
	values   map[string]Value
}

// NewSnapshot builds a snapshot, rejecting keys outside the catalog.
func NewSnapshot(symbol, interval string, values map[string]Value) (*Snapshot, error) {
	for k := range values {
		if _, ok := Lookup(k); !ok {
			return nil, &UnknownIndicatorError{Key: k}
		}
	}
	cp := make(map[string]Value, len(values))
	for k, v := range values {
		cp[k] = v
	}
	return &Snapshot{Symbol: symbol, Interval: interval, values: cp}, nil
}

// Get returns the reading for key; ok is false when the snapshot has none.
func (s *Snapshot) Get(key string) (Value, bool) {
	v, ok := s.values[key]
	return v, ok
}

// Float returns a scalar reading, or fallback when the key is absent.
func (s *Snapshot) Float(key string, fallback float64) float64 {
	v, ok := s.values[key]
	if !ok || v.IsTuple() {
		return fallback
	}
	return v.Float()
}

// Part returns one component of a tuple reading, or fallback when absent.
func (s *Snapshot) Part(key, part string, fallback float64) float64 {
	v, ok := s.values[key]
	if !ok {
		return fallback
	}
	f, ok := v.Part(part)
	if !ok {
		return fallback
	}
	return f
}

// Has reports whether the snapshot carries a reading for key.
func (s *Snapshot) Has(key string) bool {
	_, ok := s.values[key]
	return ok
}

// Keys returns the snapshot's keys in stable order.
func (s *Snapshot) Keys() []string {
	keys := make([]string, 0, len(s.values))
	for k := range s.values {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Len reports the number of readings.
func (s *Snapshot) Len() int { return len(s.values) }
