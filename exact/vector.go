package exact

import (
	"strconv"
	"strings"

	"golang.org/x/exp/constraints"
)

// IntVec is an integer vector over T. Values are immutable by
// convention: operations allocate, callers must not mutate results
// they have shared.
type IntVec[T constraints.Signed] []T

// RatVec is a vector of exact rationals over T.
type RatVec[T constraints.Signed] []Ratio[T]

// ZeroRatVec returns the zero rational vector of length n.
func ZeroRatVec[T constraints.Signed](n int) RatVec[T] {
	return make(RatVec[T], n) // zero Ratio is 0/1
}

// Clone returns an independent copy of v.
func (v IntVec[T]) Clone() IntVec[T] {
	out := make(IntVec[T], len(v))
	copy(out, v)

	return out
}

// Neg returns -v.
func (v IntVec[T]) Neg() IntVec[T] {
	out := make(IntVec[T], len(v))
	for i, x := range v {
		out[i] = -x
	}

	return out
}

// Equal reports componentwise equality.
func (v IntVec[T]) Equal(o IntVec[T]) bool {
	if len(v) != len(o) {
		return false
	}
	for i := range v {
		if v[i] != o[i] {
			return false
		}
	}

	return true
}

// Key returns a canonical, injective text encoding of v, suitable as a
// map key ("1,-1,0").
func (v IntVec[T]) Key() string {
	var sb strings.Builder
	for i, x := range v {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(strconv.FormatInt(int64(x), 10))
	}

	return sb.String()
}

// String renders v as "(1,-1,0)".
func (v IntVec[T]) String() string { return "(" + v.Key() + ")" }

// Clone returns an independent copy of v.
func (v RatVec[T]) Clone() RatVec[T] {
	out := make(RatVec[T], len(v))
	copy(out, v)

	return out
}

// Add returns v + o. Panics if lengths differ.
func (v RatVec[T]) Add(o RatVec[T]) RatVec[T] {
	mustSameLen(len(v), len(o))
	out := make(RatVec[T], len(v))
	for i := range v {
		out[i] = v[i].Add(o[i])
	}

	return out
}

// Sub returns v - o. Panics if lengths differ.
func (v RatVec[T]) Sub(o RatVec[T]) RatVec[T] {
	mustSameLen(len(v), len(o))
	out := make(RatVec[T], len(v))
	for i := range v {
		out[i] = v[i].Sub(o[i])
	}

	return out
}

// Floor returns the componentwise floor of v as an integer vector.
func (v RatVec[T]) Floor() IntVec[T] {
	out := make(IntVec[T], len(v))
	for i := range v {
		out[i] = v[i].Floor()
	}

	return out
}

// Frac returns the componentwise fractional part of v; every component
// of the result lies in [0, 1).
func (v RatVec[T]) Frac() RatVec[T] {
	out := make(RatVec[T], len(v))
	for i := range v {
		out[i] = v[i].Frac()
	}

	return out
}

// IsZero reports whether every component of v is zero.
func (v RatVec[T]) IsZero() bool {
	for i := range v {
		if !v[i].IsZero() {
			return false
		}
	}

	return true
}

// Equal reports componentwise equality.
func (v RatVec[T]) Equal(o RatVec[T]) bool {
	if len(v) != len(o) {
		return false
	}
	for i := range v {
		if v[i] != o[i] { // canonical form: == is structural equality
			return false
		}
	}

	return true
}

// Key returns a canonical, injective text encoding of v ("0,1/2").
func (v RatVec[T]) Key() string {
	var sb strings.Builder
	for i := range v {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(v[i].String())
	}

	return sb.String()
}

// String renders v as "(0,1/2)".
func (v RatVec[T]) String() string { return "(" + v.Key() + ")" }

// Dot returns the exact dot product of an integer vector with a rational
// vector. Panics if lengths differ.
func Dot[T constraints.Signed](k IntVec[T], b RatVec[T]) Ratio[T] {
	mustSameLen(len(k), len(b))
	sum := Zero[T]()
	for i := range k {
		sum = sum.Add(b[i].MulInt(k[i]))
	}

	return sum
}

// mustSameLen panics unless a == b. Shape mismatches at this level are
// programmer errors; see the package error policy.
func mustSameLen(a, b int) {
	if a != b {
		panic("exact: vector length mismatch")
	}
}
