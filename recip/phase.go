package recip

import (
	"errors"

	"golang.org/x/exp/constraints"

	"github.com/katalvlaran/crysym/exact"
	"github.com/katalvlaran/crysym/spacegroup"
)

var (
	// ErrDimensionMismatch is returned when a wave vector's length differs
	// from the dimension of the acting element or quotient.
	ErrDimensionMismatch = errors.New("recip: dimension mismatch")

	// ErrNilQuotient is returned by MakeOrbit for a nil *spacegroup.Quotient.
	ErrNilQuotient = errors.New("recip: nil quotient")
)

// AffinePhase is a plane wave: an integer wave vector k and an exact
// rational phase ϕ. Every construction path normalizes ϕ into [0,1)
// mod 1 — that is an invariant of the type, not an initial condition.
type AffinePhase[T constraints.Signed] struct {
	k   exact.IntVec[T]
	phi exact.Ratio[T]
}

// NewAffinePhase builds an AffinePhase, folding phi into [0,1).
func NewAffinePhase[T constraints.Signed](k exact.IntVec[T], phi exact.Ratio[T]) AffinePhase[T] {
	return AffinePhase[T]{k: k.Clone(), phi: phi.Frac()}
}

// K returns a copy of the wave vector.
func (p AffinePhase[T]) K() exact.IntVec[T] { return p.k.Clone() }

// Phase returns the phase; always in [0,1).
func (p AffinePhase[T]) Phase() exact.Ratio[T] { return p.phi }

// Equal reports structural equality.
func (p AffinePhase[T]) Equal(o AffinePhase[T]) bool {
	return p.k.Equal(o.k) && p.phi == o.phi
}

// Act applies a space-group operation to a plane wave:
// g·(k, ϕ) = (aᵀ·k, ϕ + b·k), with the phase renormalized mod 1 by the
// AffinePhase constructor. Returns ErrDimensionMismatch when g and p
// disagree on dimension.
func Act[T constraints.Signed](g spacegroup.Element[T], p AffinePhase[T]) (AffinePhase[T], error) {
	if g.Dim() != len(p.k) {
		return AffinePhase[T]{}, ErrDimensionMismatch
	}

	return NewAffinePhase(
		g.Linear().Transpose().MulVec(p.k),
		p.phi.Add(exact.Dot(p.k, g.Translation())),
	), nil
}
