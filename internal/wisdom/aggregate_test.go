package wisdom

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func sig(tier Tier, dir SignalDirection, strength float64, rationale string) Signal {
	return Signal{Family: rationale, Tier: tier, Direction: dir, Strength: strength, Rationale: rationale}
}

func TestAggregate_MajorityVote(t *testing.T) {
	cats := Aggregate([]Signal{
		sig(TierTrend, Bullish, 0.9, "a"),
		sig(TierTrend, Bullish, 0.6, "b"),
		sig(TierTrend, Bearish, 0.7, "c"),
	})

	cs := cats[TierTrend]
	assert.Equal(t, Bullish, cs.Direction)
	assert.Equal(t, 2, cs.Bullish)
	assert.Equal(t, 1, cs.Bearish)
	assert.Equal(t, 3, cs.Members)
	assert.InDelta(t, 1.0/3.0, cs.Strength, 1e-9) // margin over full membership
}

func TestAggregate_NeutralMembersDiluteStrength(t *testing.T) {
	cats := Aggregate([]Signal{
		sig(TierMomentum, Bullish, 0.8, "a"),
		sig(TierMomentum, Neutral, 0, "b"),
		sig(TierMomentum, Neutral, 0, "c"),
		sig(TierMomentum, Neutral, 0, "d"),
	})

	cs := cats[TierMomentum]
	assert.Equal(t, Bullish, cs.Direction)
	assert.InDelta(t, 0.25, cs.Strength, 1e-9)
}

func TestAggregate_TieIsNeutral(t *testing.T) {
	cats := Aggregate([]Signal{
		sig(TierVolume, Bullish, 0.9, "a"),
		sig(TierVolume, Bearish, 0.9, "b"),
	})

	cs := cats[TierVolume]
	assert.Equal(t, Neutral, cs.Direction)
	assert.Zero(t, cs.Strength)
	assert.Equal(t, "members split evenly", cs.Rationale)
}

func TestAggregate_AllUnreliablePropagates(t *testing.T) {
	cats := Aggregate([]Signal{
		sig(TierTrend, Unreliable, 0, "a"),
		sig(TierTrend, Unreliable, 0, "b"),
	})

	cs := cats[TierTrend]
	assert.Equal(t, Unreliable, cs.Direction)
	assert.Contains(t, cs.Rationale, "suppressed by volatile regime")
}

func TestAggregate_MixedUnreliableStillCounts(t *testing.T) {
	// One live member is enough; suppression only propagates when total.
	cats := Aggregate([]Signal{
		sig(TierPattern, Unreliable, 0, "a"),
		sig(TierPattern, Bearish, 0.6, "b"),
	})

	cs := cats[TierPattern]
	assert.Equal(t, Bearish, cs.Direction)
	assert.InDelta(t, 0.5, cs.Strength, 1e-9)
}

func TestAggregate_RationaleCapsAtThreeStrongest(t *testing.T) {
	cats := Aggregate([]Signal{
		sig(TierMomentum, Bullish, 0.9, "strongest"),
		sig(TierMomentum, Bullish, 0.8, "second"),
		sig(TierMomentum, Bullish, 0.7, "third"),
		sig(TierMomentum, Bullish, 0.1, "weakest"),
	})

	cs := cats[TierMomentum]
	assert.Contains(t, cs.Rationale, "strongest")
	assert.Contains(t, cs.Rationale, "third")
	assert.NotContains(t, cs.Rationale, "weakest")
}

func TestAggregate_EmptyTiers(t *testing.T) {
	cats := Aggregate(nil)
	for _, tier := range categoryTiers {
		cs, ok := cats[tier]
		assert.True(t, ok)
		assert.Equal(t, Neutral, cs.Direction)
		assert.Equal(t, "no members", cs.Rationale)
	}
}
