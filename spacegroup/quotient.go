package spacegroup

import (
	"golang.org/x/exp/constraints"

	"github.com/katalvlaran/crysym/group"
)

// Quotient is a finite space-group quotient: the closure of a generator
// set under the reduced composition law, together with the quotient's
// spatial dimension. It is a group.Group of Elements plus dimension
// bookkeeping; consumers only read membership and iterate — a Quotient
// never changes after construction.
type Quotient[T constraints.Signed] struct {
	dim int
	grp *group.Group[Element[T]]
}

// NewQuotient closes gens under reduced composition in dimension dim.
//
// Every generator must have dimension dim (ErrDimensionMismatch
// otherwise); an empty generator slice yields the trivial one-element
// group of the stated dimension. Options are forwarded to the engine —
// in particular group.WithMaxElements, the guard against generator sets
// whose closure is not finite.
func NewQuotient[T constraints.Signed](dim int, gens []Element[T], opts ...group.Option) (*Quotient[T], error) {
	if dim <= 0 {
		return nil, ErrDimensionMismatch
	}
	for _, g := range gens {
		if g.Dim() != dim {
			return nil, ErrDimensionMismatch
		}
	}
	if len(gens) == 0 {
		return &Quotient[T]{dim: dim, grp: group.Trivial(IdentityElement[T](dim))}, nil
	}

	grp, err := group.New(gens, opts...)
	if err != nil {
		return nil, err
	}

	return &Quotient[T]{dim: dim, grp: grp}, nil
}

// FromElements adopts an element set already closed under reduced
// composition — typically a subgroup of an existing quotient, such as a
// Wyckoff stabilizer. Closedness is a documented precondition (see
// group.FromClosedSet); elements are reduced before adoption so callers
// may pass raw forms.
func FromElements[T constraints.Signed](dim int, elems []Element[T]) (*Quotient[T], error) {
	if dim <= 0 {
		return nil, ErrDimensionMismatch
	}
	reduced := make([]Element[T], len(elems))
	for i, e := range elems {
		if e.Dim() != dim {
			return nil, ErrDimensionMismatch
		}
		reduced[i] = e.Reduce()
	}
	if len(reduced) == 0 {
		return &Quotient[T]{dim: dim, grp: group.Trivial(IdentityElement[T](dim))}, nil
	}

	grp, err := group.FromClosedSet(reduced)
	if err != nil {
		return nil, err
	}

	return &Quotient[T]{dim: dim, grp: grp}, nil
}

// Dim returns the spatial dimension.
func (q *Quotient[T]) Dim() int { return q.dim }

// Order returns the number of elements.
func (q *Quotient[T]) Order() int { return q.grp.Order() }

// Identity returns the identity operation.
func (q *Quotient[T]) Identity() Element[T] { return q.grp.Identity() }

// Elements returns a copy of the element list in canonical index order.
func (q *Quotient[T]) Elements() []Element[T] { return q.grp.Elements() }

// Element returns the element with canonical index i, or
// group.ErrIndexOutOfRange.
func (q *Quotient[T]) Element(i int) (Element[T], error) { return q.grp.Element(i) }

// IndexOf returns the canonical index of e (reduced first) and whether
// e is a member.
func (q *Quotient[T]) IndexOf(e Element[T]) (int, bool) { return q.grp.IndexOf(e.Reduce()) }

// Contains reports membership of e (reduced first).
func (q *Quotient[T]) Contains(e Element[T]) bool { return q.grp.Contains(e.Reduce()) }

// Inverse returns the inverse of e under reduced composition, or
// group.ErrNotInGroup.
func (q *Quotient[T]) Inverse(e Element[T]) (Element[T], error) {
	return q.grp.Inverse(e.Reduce())
}

// ConjugacyClass returns the conjugacy class of e, or group.ErrNotInGroup.
func (q *Quotient[T]) ConjugacyClass(e Element[T]) ([]Element[T], error) {
	return q.grp.ConjugacyClass(e.Reduce())
}

// Classes returns all conjugacy classes, identity's class first.
func (q *Quotient[T]) Classes() [][]Element[T] { return q.grp.Classes() }
