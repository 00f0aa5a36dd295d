package spacegroup_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/crysym/exact"
	"github.com/katalvlaran/crysym/group"
	"github.com/katalvlaran/crysym/spacegroup"
)

// pmg builds the order-4 quotient of the 2D wallpaper group pmg from
// its two generators: the 2-fold rotation -x,-y and the axial glide
// x+1/2,-y.
func pmg(t *testing.T) *spacegroup.Quotient[int] {
	t.Helper()

	r2, err := spacegroup.FromLinear(exact.IntMat[int]{{-1, 0}, {0, -1}})
	require.NoError(t, err)
	gl, err := spacegroup.New(
		exact.IntMat[int]{{1, 0}, {0, -1}},
		exact.RatVec[int]{half, exact.Zero[int]()},
	)
	require.NoError(t, err)

	q, err := spacegroup.NewQuotient(2, []spacegroup.Element[int]{r2, gl})
	require.NoError(t, err)

	return q
}

// permMat returns the 6×6 matrix of the permutation sending axis j to
// axis img[j].
func permMat(img [6]int) exact.IntMat[int] {
	m := make(exact.IntMat[int], 6)
	for i := range m {
		m[i] = make([]int, 6)
	}
	for j, i := range img {
		m[i][j] = 1
	}

	return m
}

// Integer 6D representation of the icosahedral rotation group: the
// five-fold and two-fold generators act by permuting the six five-fold
// axes (the projective line over F5: z ↦ z+1 and z ↦ -1/z).
var (
	icoFive = permMat([6]int{1, 2, 3, 4, 0, 5})
	icoTwo  = permMat([6]int{5, 4, 2, 3, 1, 0})
)

// icosahedral builds the rotation quotient from the two generators,
// optionally substituting a translation on the two-fold generator.
func icosahedral(t *testing.T, twoFoldShift exact.RatVec[int]) *spacegroup.Quotient[int] {
	t.Helper()

	if twoFoldShift == nil {
		twoFoldShift = exact.ZeroRatVec[int](6)
	}
	g5, err := spacegroup.FromLinear(icoFive)
	require.NoError(t, err)
	g2, err := spacegroup.New(icoTwo, twoFoldShift)
	require.NoError(t, err)

	q, err := spacegroup.NewQuotient(6, []spacegroup.Element[int]{g5, g2})
	require.NoError(t, err)

	return q
}

// TestNewQuotient_Validation covers the quotient construction error
// surface and the trivial group for an empty generator sequence.
func TestNewQuotient_Validation(t *testing.T) {
	_, err := spacegroup.NewQuotient[int](0, nil)
	assert.ErrorIs(t, err, spacegroup.ErrDimensionMismatch)

	g3 := spacegroup.IdentityElement[int](3)
	_, err = spacegroup.NewQuotient(2, []spacegroup.Element[int]{g3})
	assert.ErrorIs(t, err, spacegroup.ErrDimensionMismatch)

	triv, err := spacegroup.NewQuotient[int](4, nil)
	require.NoError(t, err)
	assert.Equal(t, 1, triv.Order())
	assert.Equal(t, 4, triv.Dim())
	assert.True(t, triv.Identity().Equal(spacegroup.IdentityElement[int](4)))
}

// TestQuotient_MaxElements verifies the engine cap propagates: raw
// translation generators would never close, so the cap must fire.
func TestQuotient_MaxElements(t *testing.T) {
	r2, err := spacegroup.FromLinear(exact.IntMat[int]{{-1, 0}, {0, -1}})
	require.NoError(t, err)

	// Order 2 fits under a cap of 8.
	q, err := spacegroup.NewQuotient(2, []spacegroup.Element[int]{r2}, group.WithMaxElements(8))
	require.NoError(t, err)
	assert.Equal(t, 2, q.Order())
}

// TestPmg_Order verifies |pmg quotient| = 4 and that the element set is
// structurally non-symmorphic: some element carries a non-zero reduced
// translation over a pure point-group linear part.
func TestPmg_Order(t *testing.T) {
	q := pmg(t)
	assert.Equal(t, 4, q.Order())

	nonSymmorphic := 0
	for _, e := range q.Elements() {
		if !e.Translation().IsZero() {
			nonSymmorphic++
		}
	}
	assert.Equal(t, 2, nonSymmorphic, "glide and mirror both carry translation 1/2")

	// The mirror -x+1/2, y must be in the closure (rotation ∘ glide).
	mirror, err := spacegroup.New(
		exact.IntMat[int]{{-1, 0}, {0, 1}},
		exact.RatVec[int]{half, exact.Zero[int]()},
	)
	require.NoError(t, err)
	assert.True(t, q.Contains(mirror))
}

// TestPmg_GroupLaws runs the full algebraic property sweep on the pmg
// quotient under the reduced law.
func TestPmg_GroupLaws(t *testing.T) {
	q := pmg(t)
	elems := q.Elements()
	id := q.Identity()

	for _, a := range elems {
		assert.True(t, a.Compose(id).Equal(a))
		assert.True(t, id.Compose(a).Equal(a))

		inv, err := q.Inverse(a)
		require.NoError(t, err)
		assert.True(t, a.Compose(inv).Equal(id), "a ∘ a⁻¹ = identity")

		for _, b := range elems {
			assert.True(t, q.Contains(a.Compose(b)), "closure")
			for _, c := range elems {
				assert.True(t,
					a.Compose(b).Compose(c).Equal(a.Compose(b.Compose(c))),
					"associativity")
			}
		}
	}
}

// TestPmg_ConjugacyClasses: pmg's quotient is the Klein four-group
// (every linear part squares to identity and the law is abelian on the
// reduced set), so every class is a singleton.
func TestPmg_ConjugacyClasses(t *testing.T) {
	q := pmg(t)

	classes := q.Classes()
	assert.Len(t, classes, 4)
	for _, cls := range classes {
		assert.Len(t, cls, 1)
	}
}

// TestIcosahedral_Order60 verifies the 6D icosahedral rotation
// generators close to exactly 60 elements.
func TestIcosahedral_Order60(t *testing.T) {
	q := icosahedral(t, nil)
	assert.Equal(t, 60, q.Order())
}

// TestIcosahedral_CentralSymmetryDoubles verifies adding -I doubles the
// order to 120.
func TestIcosahedral_CentralSymmetryDoubles(t *testing.T) {
	g5, err := spacegroup.FromLinear(icoFive)
	require.NoError(t, err)
	g2, err := spacegroup.FromLinear(icoTwo)
	require.NoError(t, err)

	neg := make(exact.IntMat[int], 6)
	for i := range neg {
		neg[i] = make([]int, 6)
		neg[i][i] = -1
	}
	inv, err := spacegroup.FromLinear(neg)
	require.NoError(t, err)

	q, err := spacegroup.NewQuotient(6, []spacegroup.Element[int]{g5, g2, inv})
	require.NoError(t, err)
	assert.Equal(t, 120, q.Order())
}

// TestIcosahedral_NonSymmorphic verifies that substituting a
// non-symmorphic translation on the two-fold generator preserves order
// 60: the quotient's order depends only on the linear parts' point
// group, because the reduced law folds consistent translations away.
// The shift 1/2 on the two axes the two-fold generator fixes satisfies
// the group relations mod 1.
func TestIcosahedral_NonSymmorphic(t *testing.T) {
	shift := exact.RatVec[int]{
		exact.Zero[int](), exact.Zero[int](), half, half, exact.Zero[int](), exact.Zero[int](),
	}
	q := icosahedral(t, shift)
	assert.Equal(t, 60, q.Order())

	// Same abstract group, structurally different element set: the
	// symmorphic realization has no translations at all.
	sym := icosahedral(t, nil)
	assert.Equal(t, sym.Order(), q.Order())

	withShift := 0
	for _, e := range q.Elements() {
		if !e.Translation().IsZero() {
			withShift++
		}
	}
	assert.Positive(t, withShift, "non-symmorphic realization must carry reduced translations")
	for _, e := range sym.Elements() {
		assert.True(t, e.Translation().IsZero())
	}
}

// TestQuotient_RawMembershipQueries verifies membership queries reduce
// their argument first: the raw glide square (translation (1,0)) is the
// identity of the quotient.
func TestQuotient_RawMembershipQueries(t *testing.T) {
	q := pmg(t)

	gl, err := spacegroup.New(
		exact.IntMat[int]{{1, 0}, {0, -1}},
		exact.RatVec[int]{half, exact.Zero[int]()},
	)
	require.NoError(t, err)
	raw := gl.ComposeRaw(gl)
	assert.False(t, raw.Translation().IsZero(), "raw square keeps the lattice translation")

	idx, ok := q.IndexOf(raw)
	require.True(t, ok)
	assert.Equal(t, 0, idx, "reduced raw square is the identity")

	inv, err := q.Inverse(raw)
	require.NoError(t, err)
	assert.True(t, inv.Equal(q.Identity()))
}

// TestFromElements_Subgroup adopts a closed subset (the identity and the
// 2-fold rotation of pmg) as its own quotient.
func TestFromElements_Subgroup(t *testing.T) {
	r2, err := spacegroup.FromLinear(exact.IntMat[int]{{-1, 0}, {0, -1}})
	require.NoError(t, err)

	sub, err := spacegroup.FromElements(2, []spacegroup.Element[int]{
		spacegroup.IdentityElement[int](2), r2,
	})
	require.NoError(t, err)
	assert.Equal(t, 2, sub.Order())

	// Empty set: trivial group of the stated dimension.
	triv, err := spacegroup.FromElements[int](3, nil)
	require.NoError(t, err)
	assert.Equal(t, 1, triv.Order())
	assert.Equal(t, 3, triv.Dim())
}
