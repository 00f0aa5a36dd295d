// Package crysym is an exact-arithmetic toolkit for crystallographic
// space-group symmetry: finite-group closure, Wyckoff-position algebra
// and reciprocal-space (Bragg-peak) orbit classification, in arbitrary
// spatial dimension over any signed-integer base type.
//
// 🚀 What is crysym?
//
//	A deterministic, exact (no floating point, ever) library that brings together:
//		• exact:      generic rationals, integer/rational vectors & matrices, exact rank
//		• group:      finite-group engine — closure, indexing, multiplication &
//		              inverse tables, conjugacy classes (lazy, race-free caches)
//		• spacegroup: x ↦ a·x + b symmetry elements, raw & reduced composition,
//		              finite space-group quotients
//		• wyckoff:    site orbits, stabilizer subgroups, free-parameter validity
//		• recip:      AffinePhase action and Complex/Real/Extinct orbit analysis
//
// ✨ Why choose crysym?
//
//   - Exact by construction – integers and reduced rationals, no epsilons
//   - Dimension-generic – the same algebra runs 2D wallpaper groups and
//     6D icosahedral quasicrystal groups
//   - Rock-solid guarantees – immutable values, single-assignment caches,
//     safe concurrent reads after construction
//   - Pure Go – no cgo, no hidden deps
//
// Under the hood, everything is organized under five subpackages:
//
//	exact/      — arithmetic substrate: Ratio, IntVec, RatVec, IntMat, Rank
//	group/      — generic finite-group engine over any Element type
//	spacegroup/ — space-group elements and quotient groups
//	wyckoff/    — Wyckoff positions: action, normalization, stabilizers, validity
//	recip/      — reciprocal-space orbits of wave vectors
//
// Quick example, the 2D glide line (order-2 quotient):
//
//	g, _ := spacegroup.New(
//	    exact.IntMat[int]{{-1, 0}, {0, 1}},
//	    exact.RatVec[int]{exact.Zero[int](), exact.Must[int](1, 2)},
//	)
//	G, _ := spacegroup.NewQuotient(2, []spacegroup.Element[int]{g})
//	fmt.Println(G.Order()) // 2
//
//	go get github.com/katalvlaran/crysym
package crysym
