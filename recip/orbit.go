package recip

import (
	"golang.org/x/exp/constraints"

	"github.com/katalvlaran/crysym/exact"
	"github.com/katalvlaran/crysym/spacegroup"
)

// Orbit is the outcome of classifying a wave vector's orbit under a
// space-group quotient: exactly one of ComplexOrbit, RealOrbit or
// ExtinctOrbit. The interface is sealed; switch on the concrete type.
type Orbit[T constraints.Signed] interface {
	isOrbit()
}

// ComplexOrbit is an orbit with unconstrained phases (no symmetry
// relates the seed to its antipode). Phases are defined up to one
// global phase choice.
type ComplexOrbit[T constraints.Signed] struct {
	Phases []AffinePhase[T]
}

// RealOrbit is an orbit whose phases are fixed modulo a sign: some
// operation maps the seed to its antipode, and each stored phase is the
// symmetrized (ϕ(k) − ϕ(−k))/2 so that superposing the k and −k waves
// yields a real-valued function.
type RealOrbit[T constraints.Signed] struct {
	Phases []AffinePhase[T]
}

// ExtinctOrbit is a symmetry-forbidden orbit: some operation maps the
// seed to itself with non-zero phase, so the orbit cancels by
// destructive self-interference. Only the wave vectors survive — phase
// information is physically meaningless here.
type ExtinctOrbit[T constraints.Signed] struct {
	Vectors []exact.IntVec[T]
}

func (ComplexOrbit[T]) isOrbit() {}
func (RealOrbit[T]) isOrbit()    {}
func (ExtinctOrbit[T]) isOrbit() {}

// MakeOrbit classifies the orbit of wave vector k under G.
//
// Every element of G acts on the seed (k, 0); the resulting wave
// vectors are collected in first-seen order (stable per quotient, so
// re-running with the same inputs is bit-for-bit idempotent) with
// last-write-wins phases (see the package doc for the documented
// limitation). Extinction fires when some element maps k to itself with
// non-zero phase; reality fires when some element maps k to its
// antipode. For an extinct orbit that never produced the antipodes, the
// negated wave vectors are appended explicitly.
//
// Returns ErrNilQuotient for a nil quotient and ErrDimensionMismatch
// when len(k) != G.Dim().
func MakeOrbit[T constraints.Signed](k exact.IntVec[T], G *spacegroup.Quotient[T]) (Orbit[T], error) {
	if G == nil {
		return nil, ErrNilQuotient
	}
	if len(k) != G.Dim() {
		return nil, ErrDimensionMismatch
	}

	seed := NewAffinePhase(k, exact.Zero[T]())
	seedKey := k.Key()
	antiKey := k.Neg().Key()

	phases := make(map[string]AffinePhase[T], G.Order())
	var order []string // wave-vector keys in first-seen order
	isExtinct, isReal := false, false

	for _, e := range G.Elements() {
		ap, err := Act(e, seed)
		if err != nil {
			return nil, err
		}
		key := ap.k.Key()
		if _, seen := phases[key]; !seen {
			order = append(order, key)
		}
		phases[key] = ap // last write wins per distinct wave vector
		if key == seedKey && !ap.phi.IsZero() {
			isExtinct = true
		}
		if key == antiKey {
			isReal = true
		}
	}

	switch {
	case isExtinct:
		vecs := make([]exact.IntVec[T], 0, 2*len(order))
		for _, key := range order {
			vecs = append(vecs, phases[key].k.Clone())
		}
		if !isReal {
			// Antipodes were not guaranteed to appear; add them explicitly.
			for _, key := range order {
				vecs = append(vecs, phases[key].k.Neg())
			}
		}

		return ExtinctOrbit[T]{Vectors: vecs}, nil

	case isReal:
		out := make([]AffinePhase[T], 0, len(order))
		for _, key := range order {
			ap := phases[key]
			anti, ok := phases[ap.k.Neg().Key()]
			if !ok {
				// The linear parts form a group, so an orbit that contains
				// the seed's antipode contains every member's antipode.
				panic("recip: real orbit not closed under negation")
			}
			out = append(out, NewAffinePhase(ap.k, ap.phi.Sub(anti.phi).Half()))
		}

		return RealOrbit[T]{Phases: out}, nil

	default:
		out := make([]AffinePhase[T], 0, len(order))
		for _, key := range order {
			out = append(out, phases[key])
		}

		return ComplexOrbit[T]{Phases: out}, nil
	}
}
