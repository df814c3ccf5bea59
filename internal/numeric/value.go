// Package numeric provides the tagged integer-or-float value stored on the
// Grok stack and held in the register.
package numeric

import "strconv"

// ----------------------------
// ----- Type definitions -----
// ----------------------------

// Value is a numeric value that is either an integer or a float. Grok
// programs mix code points, counters and computed floats freely; Value keeps
// integer values exact across push/pop cycles instead of collapsing
// everything to float64.
type Value struct {
	f float64
	i int64
	isInt bool
}

// ---------------------
// ----- functions -----
// ---------------------

// Int returns an integer-tagged Value.
func Int(i int64) Value {
	return Value{i: i, isInt: true}
}

// Float returns a float-tagged Value.
func Float(f float64) Value {
	return Value{f: f, isInt: false}
}

// Float64 returns the value as a float64 regardless of its tag.
func (v Value) Float64() float64 {
	if v.isInt {
		return float64(v.i)
	}
	return v.f
}

// Int64 returns the value truncated to an int64 regardless of its tag.
func (v Value) Int64() int64 {
	if v.isInt {
		return v.i
	}
	return int64(v.f)
}

// IsInt reports whether v currently carries the integer tag.
func (v Value) IsInt() bool {
	return v.isInt
}

// Normalize returns v re-tagged as an integer if its float representation
// has no fractional part, and unchanged otherwise. This is the single place
// the integer-normalization rule (spec: "any value equal to its integer
// truncation is normalized to integer on pop/copy") is applied.
func (v Value) Normalize() Value {
	if v.isInt {
		return v
	}
	if float64(int64(v.f)) == v.f {
		return Int(int64(v.f))
	}
	return v
}

// String renders v the way the `z`/`Z` instructions emit it: as a bare
// integer if it normalizes to one, otherwise as Go's default float format.
func (v Value) String() string {
	n := v.Normalize()
	if n.isInt {
		return strconv.FormatInt(n.i, 10)
	}
	return strconv.FormatFloat(n.f, 'g', -1, 64)
}
