package exact

import (
	"strconv"

	"golang.org/x/exp/constraints"
)

// Ratio is an exact rational number num/den over a signed integer base
// type T, always held in canonical form: den > 0 and gcd(|num|, den) == 1.
// Canonical form makes == structural equality, so Ratio values may be
// compared directly and used as map keys.
//
// The zero value of Ratio is the number 0 (the denominator is stored
// offset by one so that the zero value decodes to 0/1, the same
// convention math/big.Rat uses for its zero value).
type Ratio[T constraints.Signed] struct {
	num T
	den T // stored as den-1, so the zero value is exactly 0/1
}

// New returns the canonical rational num/den.
// It returns ErrZeroDenominator when den == 0.
func New[T constraints.Signed](num, den T) (Ratio[T], error) {
	if den == 0 {
		return Ratio[T]{}, ErrZeroDenominator
	}

	return canon(num, den), nil
}

// Must is New for literals: it panics on a zero denominator.
// Intended for constants, examples and tests where den is written by hand.
func Must[T constraints.Signed](num, den T) Ratio[T] {
	r, err := New(num, den)
	if err != nil {
		panic(err)
	}

	return r
}

// FromInt returns the rational n/1.
func FromInt[T constraints.Signed](n T) Ratio[T] {
	return Ratio[T]{num: n}
}

// Zero returns the rational 0.
func Zero[T constraints.Signed]() Ratio[T] { return Ratio[T]{} }

// One returns the rational 1.
func One[T constraints.Signed]() Ratio[T] { return Ratio[T]{num: 1} }

// canon reduces num/den to canonical form. den must be non-zero.
func canon[T constraints.Signed](num, den T) Ratio[T] {
	if den < 0 {
		num, den = -num, -den
	}
	if g := gcd(num, den); g > 1 {
		num /= g
		den /= g
	}

	return Ratio[T]{num: num, den: den - 1}
}

// gcd returns the non-negative greatest common divisor of a and b.
// gcd(0, b) == |b|.
func gcd[T constraints.Signed](a, b T) T {
	if a < 0 {
		a = -a
	}
	if b < 0 {
		b = -b
	}
	for b != 0 {
		a, b = b, a%b
	}

	return a
}

// Num returns the (sign-carrying) numerator.
func (r Ratio[T]) Num() T { return r.num }

// Den returns the denominator; it is always positive.
func (r Ratio[T]) Den() T { return r.den + 1 }

// IsZero reports whether r == 0.
func (r Ratio[T]) IsZero() bool { return r.num == 0 }

// Sign returns -1, 0 or +1 according to the sign of r.
func (r Ratio[T]) Sign() int {
	switch {
	case r.num < 0:
		return -1
	case r.num > 0:
		return 1
	default:
		return 0
	}
}

// Neg returns -r.
func (r Ratio[T]) Neg() Ratio[T] {
	return Ratio[T]{num: -r.num, den: r.den}
}

// Add returns r + o.
func (r Ratio[T]) Add(o Ratio[T]) Ratio[T] {
	return canon(r.num*o.Den()+o.num*r.Den(), r.Den()*o.Den())
}

// Sub returns r - o.
func (r Ratio[T]) Sub(o Ratio[T]) Ratio[T] {
	return canon(r.num*o.Den()-o.num*r.Den(), r.Den()*o.Den())
}

// Mul returns r * o.
func (r Ratio[T]) Mul(o Ratio[T]) Ratio[T] {
	return canon(r.num*o.num, r.Den()*o.Den())
}

// MulInt returns r * n.
func (r Ratio[T]) MulInt(n T) Ratio[T] {
	return canon(r.num*n, r.Den())
}

// Div returns r / o, or ErrDivisionByZero when o == 0.
func (r Ratio[T]) Div(o Ratio[T]) (Ratio[T], error) {
	if o.num == 0 {
		return Ratio[T]{}, ErrDivisionByZero
	}

	return canon(r.num*o.Den(), r.Den()*o.num), nil
}

// Half returns r / 2 exactly.
func (r Ratio[T]) Half() Ratio[T] {
	return canon(r.num, 2*r.Den())
}

// Cmp compares r and o, returning -1, 0 or +1.
func (r Ratio[T]) Cmp(o Ratio[T]) int {
	d := r.num*o.Den() - o.num*r.Den() // denominators are positive
	switch {
	case d < 0:
		return -1
	case d > 0:
		return 1
	default:
		return 0
	}
}

// Floor returns the largest integer ≤ r.
func (r Ratio[T]) Floor() T {
	q := r.num / r.Den()
	if r.num%r.Den() != 0 && r.num < 0 {
		q--
	}

	return q
}

// Frac returns the fractional part r - Floor(r); the result always lies
// in [0, 1).
func (r Ratio[T]) Frac() Ratio[T] {
	// Subtracting an integer multiple of Den leaves the gcd intact,
	// so the result is already canonical.
	return Ratio[T]{num: r.num - r.Floor()*r.Den(), den: r.den}
}

// String renders r as "n" for integers and "n/d" otherwise.
func (r Ratio[T]) String() string {
	if r.Den() == 1 {
		return strconv.FormatInt(int64(r.num), 10)
	}

	return strconv.FormatInt(int64(r.num), 10) + "/" + strconv.FormatInt(int64(r.Den()), 10)
}
