// Package wyckoff implements Wyckoff-position algebra: affine families
// of crystallographic sites anchor + directions·t acted on by
// space-group operations.
//
// A Position is an anchor point (exact rationals) plus an N×M integer
// matrix whose M linearly independent columns span the free-parameter
// directions. M = 0 is a fixed site; M = N is the unconstrained
// "general position".
//
// The package provides the group action on positions, normalization
// into the unit cell, extraction of the stabilizer (site-symmetry)
// quotient, and the free-parameter validity check: a position's
// declared direction count must equal the dimension of the common
// kernel of its stabilizer's linear parts — fewer means the site is
// under-described, more means it is physically unstable.
package wyckoff
