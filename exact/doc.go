// Package exact provides the exact-arithmetic substrate for crysym:
// reduced rationals over any signed-integer base type, integer and
// rational vectors, integer matrices, and fraction-exact Gaussian rank.
//
// All arithmetic is exact — there is no floating point and therefore no
// epsilon policy anywhere in this package. Every value is immutable by
// convention: constructors copy their inputs and every operation
// allocates a fresh result.
//
// Error policy:
//
//   - User-triggered conditions (a zero denominator, division by zero)
//     are reported through sentinel errors matched with errors.Is.
//   - Shape mismatches between operands (multiplying a 2×2 matrix by a
//     3-vector, adding vectors of different lengths) panic. Callers are
//     expected to validate dimensions once, at construction of their own
//     domain values; a mismatch reaching an arithmetic kernel is a
//     programmer error, not an input error.
//
// Overflow: operations compute in the base type T. T must be wide enough
// for the numerators and denominators the caller's domain can produce;
// the package does not detect wraparound.
package exact
