// Package spacegroup implements the element algebra of crystallographic
// space groups: symmetry operations x ↦ a·x + b where a is an N×N
// integer linear part and b an exact-rational translation, in arbitrary
// dimension N over any signed-integer base type T.
//
// Two composition laws coexist:
//
//   - ComposeRaw — plain affine composition (a1·a2, a1·b2 + b1), used
//     for exact bookkeeping. Its closure is infinite whenever a
//     generator carries a non-trivial translation.
//   - Compose — raw composition followed by Reduce, which folds every
//     translation component into the unit cell [0, 1). This is the
//     group law of a space-group quotient, and is what keeps the
//     quotient finite no matter how translations accumulate.
//
// Quotient wraps the generic group engine with the reduced law. Quotient
// element sets differ structurally between symmorphic and non-symmorphic
// groups: a non-symmorphic group has elements whose reduced translation
// is non-zero even though the linear part alone is a valid point-group
// operation. The abstract group is the same either way — the quotient's
// order depends only on the point group of the linear parts, provided
// the generator translations are consistent with the group relations.
package spacegroup
