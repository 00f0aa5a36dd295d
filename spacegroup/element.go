package spacegroup

import (
	"strconv"
	"strings"

	"golang.org/x/exp/constraints"

	"github.com/katalvlaran/crysym/exact"
)

// Element is one space-group operation x ↦ a·x + b: an N×N integer
// linear part a and a length-N exact-rational translation b.
//
// Elements are immutable values: constructors deep-copy their inputs,
// accessors return copies, and composition allocates fresh
// elements. An Element may be held raw (unreduced b) or reduced (every
// component of b in [0, 1)); the group law Compose always produces
// reduced elements.
type Element[T constraints.Signed] struct {
	a exact.IntMat[T]
	b exact.RatVec[T]
}

// New builds an element from a linear part and a translation.
// Returns ErrDimensionMismatch when a is empty or not square, or when
// len(b) differs from the matrix size.
func New[T constraints.Signed](a exact.IntMat[T], b exact.RatVec[T]) (Element[T], error) {
	if !a.IsSquare() {
		return Element[T]{}, ErrDimensionMismatch
	}
	if len(b) != a.Rows() {
		return Element[T]{}, ErrDimensionMismatch
	}

	return Element[T]{a: a.Clone(), b: b.Clone()}, nil
}

// FromLinear builds a pure linear operation (zero translation).
func FromLinear[T constraints.Signed](a exact.IntMat[T]) (Element[T], error) {
	if !a.IsSquare() {
		return Element[T]{}, ErrDimensionMismatch
	}

	return Element[T]{a: a.Clone(), b: exact.ZeroRatVec[T](a.Rows())}, nil
}

// FromTranslation builds a pure translation (identity linear part).
func FromTranslation[T constraints.Signed](b exact.RatVec[T]) (Element[T], error) {
	if len(b) == 0 {
		return Element[T]{}, ErrDimensionMismatch
	}

	return Element[T]{a: exact.Identity[T](len(b)), b: b.Clone()}, nil
}

// IdentityElement returns the identity operation in dimension n.
// Panics when n <= 0 (programmer error; user-facing constructors
// validate dimensions before calling).
func IdentityElement[T constraints.Signed](n int) Element[T] {
	return Element[T]{a: exact.Identity[T](n), b: exact.ZeroRatVec[T](n)}
}

// Dim returns the spatial dimension N.
func (e Element[T]) Dim() int { return e.a.Rows() }

// Linear returns a copy of the linear part.
func (e Element[T]) Linear() exact.IntMat[T] { return e.a.Clone() }

// Translation returns a copy of the translation part.
func (e Element[T]) Translation() exact.RatVec[T] { return e.b.Clone() }

// Identity returns the identity operation of the same dimension.
// Part of the group.Element contract.
func (e Element[T]) Identity() Element[T] {
	return IdentityElement[T](e.Dim())
}

// ComposeRaw returns the exact affine composition
// (e.a·o.a, e.a·o.b + e.b) with no translation folding.
func (e Element[T]) ComposeRaw(o Element[T]) Element[T] {
	return Element[T]{
		a: e.a.Mul(o.a),
		b: e.a.MulRatVec(o.b).Add(e.b),
	}
}

// Reduce folds every translation component into [0, 1) by dropping its
// integer part: (a, b − floor(b)). Reduction is idempotent.
func (e Element[T]) Reduce() Element[T] {
	return Element[T]{a: e.a, b: e.b.Frac()}
}

// Compose is the reduced composition Reduce(ComposeRaw(e, o)) — the
// group law of a space-group quotient. Part of the group.Element
// contract; using the reduced law is what keeps a quotient's closure
// finite despite unbounded raw translations.
func (e Element[T]) Compose(o Element[T]) Element[T] {
	return e.ComposeRaw(o).Reduce()
}

// Equal reports structural equality of linear and translation parts.
func (e Element[T]) Equal(o Element[T]) bool {
	return e.a.Equal(o.a) && e.b.Equal(o.b)
}

// Key returns a canonical, injective text encoding of e. Part of the
// group.Element contract. Raw and reduced forms of the same operation
// encode differently; the engine only ever stores reduced elements
// because the group law reduces.
func (e Element[T]) Key() string {
	return e.a.Key() + "|" + e.b.Key()
}

// String renders e in crystallographic coordinate-triplet form, e.g.
// "-x,y+1/2" for the 2D glide ([[-1,0],[0,1]], (0,1/2)).
// Dimensions above 3 use x1..xN instead of x,y,z.
func (e Element[T]) String() string {
	n := e.Dim()
	var sb strings.Builder
	for i := 0; i < n; i++ {
		if i > 0 {
			sb.WriteByte(',')
		}
		empty := true
		for j := 0; j < n; j++ {
			c := e.a[i][j]
			if c == 0 {
				continue
			}
			writeTerm(&sb, int64(c), axisName(j, n), empty)
			empty = false
		}
		if t := e.b[i]; !t.IsZero() {
			if !empty && t.Sign() > 0 {
				sb.WriteByte('+')
			}
			sb.WriteString(t.String())
			empty = false
		}
		if empty {
			sb.WriteByte('0')
		}
	}

	return sb.String()
}

// axisName returns the conventional coordinate name for axis j in
// dimension n: x,y,z up to 3D, x1..xN beyond.
func axisName(j, n int) string {
	if n <= 3 {
		return [...]string{"x", "y", "z"}[j]
	}

	return "x" + strconv.Itoa(j+1)
}

// writeTerm appends one signed linear term ("±c·name") to sb; the
// leading '+' is suppressed for the first term of a row.
func writeTerm(sb *strings.Builder, c int64, name string, first bool) {
	switch {
	case c < 0:
		sb.WriteByte('-')
		c = -c
	case !first:
		sb.WriteByte('+')
	}
	if c != 1 {
		sb.WriteString(strconv.FormatInt(c, 10))
	}
	sb.WriteString(name)
}
