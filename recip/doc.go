// Package recip classifies reciprocal-space (Bragg-peak) orbits under a
// space-group quotient.
//
// A plane wave is carried as an AffinePhase: an integer wave vector k
// and an exact-rational phase ϕ, always normalized into [0,1) mod 1. A
// space-group operation g acts by
//
//	g · (k, ϕ) = (aᵀ·k, ϕ + b·k)
//
// and the orbit of a seed wave vector decomposes into exactly one of
// three mutually exclusive outcomes:
//
//   - ComplexOrbit — no symmetry relates k to −k; phases are
//     unconstrained (defined up to one global phase choice).
//   - RealOrbit — some operation maps k to its antipode; phases are
//     fixed modulo a sign, symmetrized so superposing k and −k waves
//     yields a real-valued function.
//   - ExtinctOrbit — some operation maps k to itself with non-zero
//     phase: destructive self-interference. The peak is forbidden and
//     phase information is physically meaningless, so only the wave
//     vectors are kept.
//
// Known limitation, kept deliberately: while traversing the group,
// phases are recorded per wave vector last-write-wins. If a group
// element revisits an already-seen wave vector (other than the seed
// itself, which the extinction check watches) with a different phase,
// the later value silently replaces the earlier one. Orbit traversal is
// deterministic, so the classification is still idempotent.
package recip
