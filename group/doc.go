// Package group implements a generic finite-group engine.
//
// Any value type can participate: it only has to satisfy the Element
// contract (an identity value, an associative composition operator, and
// a canonical key standing in for structural equality). Given a set of
// generators, New computes the closure under composition by
// breadth-first saturation, assigns every element a stable canonical
// index (identity first), and lazily derives:
//
//   - the multiplication table  table[i][j] = index(e[i] ∘ e[j]),
//   - the inverse table         inv[i] = j with e[i] ∘ e[j] = identity,
//   - the conjugacy partition   class id per index plus per-class
//     sorted index lists.
//
// The derived caches are computed at most once, race-free, and may be
// read concurrently after construction; everything else in a Group is
// immutable.
//
// Termination is a caller obligation: the closure loop only halts when
// the generators actually generate a finite group. For element types
// whose composition can accumulate unboundedly (e.g. unreduced affine
// maps), pass WithMaxElements to fail fast with ErrClosureExceeded
// instead of hanging.
package group
