package indicator

import "sort"

// Value holds the latest reading of one indicator: either a scalar or a
// small fixed-arity tuple (MACD carries line/signal/hist, BBANDS carries
// upper/middle/lower). Values are immutable once placed in a Snapshot.
type Value struct {
	scalar float64
	parts  map[string]float64
}

func Scalar(v float64) Value {
	return Value{scalar: v}
}

func Tuple(parts map[string]float64) Value {
	cp := make(map[string]float64, len(parts))
	for k, v := range parts {
		cp[k] = v
	}
	return Value{parts: cp}
}

// IsTuple reports whether the value carries named components.
func (v Value) IsTuple() bool { return v.parts != nil }

// Float returns the scalar reading. For tuples it returns 0; use Part.
func (v Value) Float() float64 { return v.scalar }

// Part returns one named component of a tuple value.
func (v Value) Part(name string) (float64, bool) {
	if v.parts == nil {
		return 0, false
	}
	f, ok := v.parts[name]
	return f, ok
}

// PartNames returns the tuple component names in stable order.
func (v Value) PartNames() []string {
	if v.parts == nil {
		return nil
	}
	names := make([]string, 0, len(v.parts))
	for k := range v.parts {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}
