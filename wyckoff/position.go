package wyckoff

import (
	"errors"

	"golang.org/x/exp/constraints"

	"github.com/katalvlaran/crysym/exact"
	"github.com/katalvlaran/crysym/spacegroup"
)

var (
	// ErrDimensionMismatch is returned at construction when the direction
	// matrix row count differs from the anchor length, or when a position
	// and a group live in different dimensions.
	ErrDimensionMismatch = errors.New("wyckoff: dimension mismatch")

	// ErrInvalidGeometry is returned by New when the direction columns are
	// not linearly independent.
	ErrInvalidGeometry = errors.New("wyckoff: direction columns not linearly independent")

	// ErrNilQuotient is returned when a nil *spacegroup.Quotient is passed.
	ErrNilQuotient = errors.New("wyckoff: nil quotient")
)

// Position is an M-parameter affine family of sites anchor +
// directions·t. Immutable value: constructors copy, the action
// allocates.
type Position[T constraints.Signed] struct {
	anchor exact.RatVec[T]
	dirs   exact.IntMat[T] // N×M, M linearly independent columns; may be empty (M=0)
}

// New builds a position from an anchor and an N×M direction matrix.
// A nil or empty direction matrix means a fixed site (M = 0).
//
// Returns ErrDimensionMismatch when the anchor is empty, the direction
// matrix is ragged, or its row count differs from len(anchor); and
// ErrInvalidGeometry when the columns are linearly dependent
// (rank < M, checked by exact Gaussian elimination).
func New[T constraints.Signed](anchor exact.RatVec[T], directions exact.IntMat[T]) (Position[T], error) {
	if len(anchor) == 0 {
		return Position[T]{}, ErrDimensionMismatch
	}
	if len(directions) == 0 {
		return Position[T]{anchor: anchor.Clone()}, nil
	}
	if !directions.IsRectangular() || directions.Rows() != len(anchor) {
		return Position[T]{}, ErrDimensionMismatch
	}
	if directions.Cols() > len(anchor) || exact.Rank(directions) != directions.Cols() {
		return Position[T]{}, ErrInvalidGeometry
	}

	return Position[T]{anchor: anchor.Clone(), dirs: directions.Clone()}, nil
}

// Fixed builds a zero-parameter position: a single site.
func Fixed[T constraints.Signed](anchor exact.RatVec[T]) (Position[T], error) {
	return New[T](anchor, nil)
}

// General returns the general position of dimension n: zero anchor,
// direction matrix the full identity (M = N).
func General[T constraints.Signed](n int) (Position[T], error) {
	if n <= 0 {
		return Position[T]{}, ErrDimensionMismatch
	}

	return Position[T]{
		anchor: exact.ZeroRatVec[T](n),
		dirs:   exact.Identity[T](n),
	}, nil
}

// Dim returns the spatial dimension N.
func (w Position[T]) Dim() int { return len(w.anchor) }

// FreeParams returns M, the number of free-parameter directions.
func (w Position[T]) FreeParams() int { return w.dirs.Cols() }

// Anchor returns a copy of the anchor point.
func (w Position[T]) Anchor() exact.RatVec[T] { return w.anchor.Clone() }

// Directions returns a copy of the direction matrix (nil for M = 0).
func (w Position[T]) Directions() exact.IntMat[T] {
	if len(w.dirs) == 0 {
		return nil
	}

	return w.dirs.Clone()
}

// Equal reports structural equality of anchor and directions.
func (w Position[T]) Equal(o Position[T]) bool {
	return w.anchor.Equal(o.anchor) && w.dirs.Equal(o.dirs)
}

// Act applies a space-group operation: g·w = (g.a·anchor + g.b,
// g.a·directions). The linear part is invertible, so it preserves
// column independence and no geometry re-check is needed.
// Returns ErrDimensionMismatch when g and w disagree on dimension.
func Act[T constraints.Signed](g spacegroup.Element[T], w Position[T]) (Position[T], error) {
	if g.Dim() != w.Dim() {
		return Position[T]{}, ErrDimensionMismatch
	}
	a := g.Linear()
	out := Position[T]{anchor: a.MulRatVec(w.anchor).Add(g.Translation())}
	if len(w.dirs) > 0 {
		out.dirs = a.Mul(w.dirs)
	}

	return out, nil
}

// Normalize splits w into its fractional representative — the anchor
// folded into the unit cell [0,1)^N — and the integer lattice
// translation that was removed.
func Normalize[T constraints.Signed](w Position[T]) (Position[T], exact.IntVec[T]) {
	return Position[T]{anchor: w.anchor.Frac(), dirs: w.dirs}, w.anchor.Floor()
}

// StabilizerQuotient returns the site-symmetry subgroup of w in G: every
// operation g whose action maps w's normalized representative back to
// itself (anchor modulo lattice translation, directions exactly). The
// result set is a subgroup of G, hence closed, and is adopted directly
// rather than re-derived from generators.
func StabilizerQuotient[T constraints.Signed](w Position[T], G *spacegroup.Quotient[T]) (*spacegroup.Quotient[T], error) {
	if G == nil {
		return nil, ErrNilQuotient
	}
	if w.Dim() != G.Dim() {
		return nil, ErrDimensionMismatch
	}

	w0, _ := Normalize(w)
	var stab []spacegroup.Element[T]
	for _, g := range G.Elements() {
		moved, err := Act(g, w0)
		if err != nil {
			return nil, err
		}
		u, _ := Normalize(moved)
		if u.Equal(w0) {
			stab = append(stab, g)
		}
	}

	return spacegroup.FromElements(G.Dim(), stab)
}

// IsValid reports whether w's declared free-parameter count matches the
// dimension of the common kernel of its stabilizer's linear parts.
//
// The kernel of all (g.a − I), g in the stabilizer, is exactly the
// subspace along which the site can move without leaving its symmetry
// class; a valid position's direction columns must span exactly that
// subspace. The stacked matrix of all (g.a − I) has kernel dimension
// N − rank, computed by exact Gaussian elimination.
func IsValid[T constraints.Signed](w Position[T], G *spacegroup.Quotient[T]) (bool, error) {
	stab, err := StabilizerQuotient(w, G)
	if err != nil {
		return false, err
	}

	n := w.Dim()
	eye := exact.Identity[T](n)
	stacked := make(exact.IntMat[T], 0, n*stab.Order())
	for _, g := range stab.Elements() {
		stacked = append(stacked, g.Linear().Sub(eye)...)
	}
	kernelDim := n - exact.Rank(stacked)

	return kernelDim == w.FreeParams(), nil
}
