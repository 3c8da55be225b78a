package wisdom

import (
	"fmt"

	"github.com/Shershaah24/kuiper-v2/internal/indicator"
)

// Interpreter turns raw indicator readings into regime-contextual signals.
// It is stateless; the same inputs always produce the same signals.
type Interpreter struct{}

func NewInterpreter() *Interpreter { return &Interpreter{} }

// Interpret evaluates one named family under the given regime. Names
// outside the documented set fail with an UnknownIndicatorError.
func (it *Interpreter) Interpret(name string, snap *indicator.Snapshot, regime Regime) (Signal, error) {
	for i := range families {
		if families[i].name == name {
			return evalFamily(&families[i], snap, regime), nil
		}
	}
	if name == patternFamilyName {
		return foldPatterns(snap, regime), nil
	}
	return Signal{}, &indicator.UnknownIndicatorError{Key: name}
}

// InterpretAll runs every family plus the candlestick fold and returns the
// signals in table order. Under VOLATILE every signal comes back
// UNRELIABLE: the regime suppresses interpretation rather than overriding
// direction.
func (it *Interpreter) InterpretAll(snap *indicator.Snapshot, regime Regime) []Signal {
	out := make([]Signal, 0, len(families)+1)
	for i := range families {
		out = append(out, evalFamily(&families[i], snap, regime))
	}
	out = append(out, foldPatterns(snap, regime))
	return out
}

func evalFamily(f *family, snap *indicator.Snapshot, regime Regime) Signal {
	if regime == Volatile {
		return Signal{
			Family:    f.name,
			Tier:      f.tier,
			Direction: Unreliable,
			Strength:  0,
			Rationale: fmt.Sprintf("%s less reliable in volatile conditions", f.name),
		}
	}

	v := make(map[string]float64, len(f.inputs))
	for _, in := range f.inputs {
		if in.part != "" {
			v[in.alias] = snap.Part(in.key, in.part, in.fallback)
			continue
		}
		v[in.alias] = snap.Float(in.key, in.fallback)
	}

	for _, r := range f.rules {
		if !regimeMatches(r.regimes, regime) {
			continue
		}
		if r.when != nil && !r.when(v) {
			continue
		}
		args := make([]any, len(r.args))
		for i, alias := range r.args {
			args[i] = v[alias]
		}
		return Signal{
			Family:    f.name,
			Tier:      f.tier,
			Direction: r.dir,
			Strength:  r.strength,
			Rationale: fmt.Sprintf(r.text, args...),
		}
	}

	return Signal{
		Family:    f.name,
		Tier:      f.tier,
		Direction: Neutral,
		Strength:  0,
		Rationale: fmt.Sprintf("%s shows no directional edge", f.name),
	}
}

func regimeMatches(regimes []Regime, regime Regime) bool {
	if len(regimes) == 0 {
		return true
	}
	for _, r := range regimes {
		if r == regime {
			return true
		}
	}
	return false
}
