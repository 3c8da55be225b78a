package wisdom

import (
	"fmt"
	"sort"
	"strings"

	"github.com/Shershaah24/kuiper-v2/internal/indicator"
)

const patternFamilyName = "candlestick_patterns"

// foldPatterns reduces the 61 candlestick recognisers to one PATTERN-tier
// signal by net vote. Each recogniser reads 0 (no hit) or a directional hit
// scaled ±100/±200; the ±200 confirmations count double. The 61 readings
// never reach the aggregator as independent members.
func foldPatterns(snap *indicator.Snapshot, regime Regime) Signal {
	if regime == Volatile {
		return Signal{
			Family:    patternFamilyName,
			Tier:      TierPattern,
			Direction: Unreliable,
			Strength:  0,
			Rationale: "candlestick patterns less reliable in volatile conditions",
		}
	}

	type hit struct {
		name   string
		weight int
	}
	var bullish, bearish []hit
	for _, key := range indicator.PatternKeys() {
		v := snap.Float(key, 0)
		if v == 0 {
			continue
		}
		weight := 1
		if v >= 200 || v <= -200 {
			weight = 2
		}
		name := strings.TrimPrefix(key, "CDL")
		if v > 0 {
			bullish = append(bullish, hit{name, weight})
		} else {
			bearish = append(bearish, hit{name, weight})
		}
	}

	bullVotes, bearVotes := 0, 0
	for _, h := range bullish {
		bullVotes += h.weight
	}
	for _, h := range bearish {
		bearVotes += h.weight
	}
	total := bullVotes + bearVotes
	if total == 0 {
		return Signal{
			Family:    patternFamilyName,
			Tier:      TierPattern,
			Direction: Neutral,
			Strength:  0,
			Rationale: "no significant candlestick patterns detected",
		}
	}

	net := bullVotes - bearVotes
	dir := Neutral
	strength := 0.0
	switch {
	case net > 0:
		dir = Bullish
		strength = float64(net) / float64(total)
	case net < 0:
		dir = Bearish
		strength = float64(-net) / float64(total)
	}

	names := func(hits []hit) string {
		sort.Slice(hits, func(i, j int) bool {
			if hits[i].weight != hits[j].weight {
				return hits[i].weight > hits[j].weight
			}
			return hits[i].name < hits[j].name
		})
		parts := make([]string, 0, 3)
		for i, h := range hits {
			if i == 3 {
				break
			}
			parts = append(parts, h.name)
		}
		return strings.Join(parts, ", ")
	}

	var rationale string
	switch dir {
	case Bullish:
		rationale = fmt.Sprintf("bullish candlestick patterns lead %d:%d (%s)", bullVotes, bearVotes, names(bullish))
	case Bearish:
		rationale = fmt.Sprintf("bearish candlestick patterns lead %d:%d (%s)", bearVotes, bullVotes, names(bearish))
	default:
		rationale = fmt.Sprintf("candlestick patterns split evenly %d:%d", bullVotes, bearVotes)
	}

	return Signal{
		Family:    patternFamilyName,
		Tier:      TierPattern,
		Direction: dir,
		Strength:  strength,
		Rationale: rationale,
	}
}
