package spacegroup

import "errors"

var (
	// ErrDimensionMismatch is returned at construction when the linear part
	// is not square, the translation length differs from the matrix size,
	// or a generator's dimension differs from the quotient's stated one.
	ErrDimensionMismatch = errors.New("spacegroup: dimension mismatch")

	// ErrNilQuotient is returned by queries on a nil *Quotient.
	ErrNilQuotient = errors.New("spacegroup: nil quotient")
)
