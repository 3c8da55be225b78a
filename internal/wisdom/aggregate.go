package wisdom

import (
	"sort"
	"strings"
)

// Aggregate reduces the member signals of each tier to one CategorySignal
// by majority vote. UNRELIABLE and NEUTRAL members are excluded from the
// count but still recorded in Members; strength is the vote margin over the
// full membership. A tier whose members are all UNRELIABLE propagates
// UNRELIABLE so volatility suppression survives aggregation.
func Aggregate(signals []Signal) map[Tier]CategorySignal {
	byTier := make(map[Tier][]Signal, len(categoryTiers))
	for _, s := range signals {
		byTier[s.Tier] = append(byTier[s.Tier], s)
	}

	out := make(map[Tier]CategorySignal, len(categoryTiers))
	for _, tier := range categoryTiers {
		out[tier] = reduceTier(tier, byTier[tier])
	}
	return out
}

func reduceTier(tier Tier, members []Signal) CategorySignal {
	cs := CategorySignal{Tier: tier, Direction: Neutral, Members: len(members)}
	if len(members) == 0 {
		cs.Rationale = "no members"
		return cs
	}

	unreliable := 0
	var bullMembers, bearMembers []Signal
	for _, m := range members {
		switch m.Direction {
		case Bullish:
			cs.Bullish++
			bullMembers = append(bullMembers, m)
		case Bearish:
			cs.Bearish++
			bearMembers = append(bearMembers, m)
		case Unreliable:
			unreliable++
		}
	}

	if unreliable == len(members) {
		cs.Direction = Unreliable
		cs.Rationale = "all members suppressed by volatile regime"
		return cs
	}

	var deciders []Signal
	switch {
	case cs.Bullish > cs.Bearish:
		cs.Direction = Bullish
		cs.Strength = float64(cs.Bullish-cs.Bearish) / float64(len(members))
		deciders = bullMembers
	case cs.Bearish > cs.Bullish:
		cs.Direction = Bearish
		cs.Strength = float64(cs.Bearish-cs.Bullish) / float64(len(members))
		deciders = bearMembers
	default:
		cs.Direction = Neutral
		cs.Strength = 0
		cs.Rationale = "members split evenly"
		return cs
	}

	// Cap the trace at the three strongest contributors.
	sort.SliceStable(deciders, func(i, j int) bool {
		return deciders[i].Strength > deciders[j].Strength
	})
	parts := make([]string, 0, 3)
	for i, d := range deciders {
		if i == 3 {
			break
		}
		parts = append(parts, d.Rationale)
	}
	cs.Rationale = strings.Join(parts, "; ")
	return cs
}
