package exact_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/crysym/exact"
)

// TestRatio_New verifies canonical form: positive denominator, reduced
// by gcd, zero stored as 0/1.
func TestRatio_New(t *testing.T) {
	r, err := exact.New(2, 4)
	require.NoError(t, err)
	assert.Equal(t, 1, r.Num(), "2/4 must reduce to 1/2")
	assert.Equal(t, 2, r.Den())

	r, err = exact.New(3, -6)
	require.NoError(t, err)
	assert.Equal(t, -1, r.Num(), "sign must move to the numerator")
	assert.Equal(t, 2, r.Den())

	r, err = exact.New(0, -7)
	require.NoError(t, err)
	assert.Equal(t, 0, r.Num(), "zero must canonicalize to 0/1")
	assert.Equal(t, 1, r.Den())
}

// TestRatio_ZeroDenominator verifies the sentinel for den == 0.
func TestRatio_ZeroDenominator(t *testing.T) {
	_, err := exact.New(1, 0)
	assert.ErrorIs(t, err, exact.ErrZeroDenominator)

	assert.Panics(t, func() { exact.Must(1, 0) }, "Must must panic on zero denominator")
}

// TestRatio_ZeroValue verifies the zero value of Ratio is the number 0.
func TestRatio_ZeroValue(t *testing.T) {
	var r exact.Ratio[int]
	assert.True(t, r.IsZero())
	assert.Equal(t, 1, r.Den())
	assert.Equal(t, r, exact.Zero[int]())
}

// TestRatio_Arithmetic checks Add/Sub/Mul/Div/Neg/Half on exact values.
func TestRatio_Arithmetic(t *testing.T) {
	half := exact.Must(1, 2)
	third := exact.Must(1, 3)

	assert.Equal(t, exact.Must(5, 6), half.Add(third))
	assert.Equal(t, exact.Must(1, 6), half.Sub(third))
	assert.Equal(t, exact.Must(1, 6), half.Mul(third))
	assert.Equal(t, exact.Must(-1, 2), half.Neg())
	assert.Equal(t, exact.Must(1, 4), half.Half())
	assert.Equal(t, exact.Must(3, 2), half.MulInt(3))

	q, err := half.Div(third)
	require.NoError(t, err)
	assert.Equal(t, exact.Must(3, 2), q)

	_, err = half.Div(exact.Zero[int]())
	assert.ErrorIs(t, err, exact.ErrDivisionByZero)
}

// TestRatio_FloorFrac exercises floor division and fractional parts,
// including negative values where truncating division would be wrong.
func TestRatio_FloorFrac(t *testing.T) {
	cases := []struct {
		num, den  int
		floor     int
		fracN, fD int
	}{
		{3, 2, 1, 1, 2},    // 3/2 = 1 + 1/2
		{-1, 2, -1, 1, 2},  // -1/2 = -1 + 1/2
		{-7, 3, -3, 2, 3},  // -7/3 = -3 + 2/3
		{4, 2, 2, 0, 1},    // integers have zero fractional part
		{-4, 2, -2, 0, 1},  //
		{0, 5, 0, 0, 1},    //
		{7, 3, 2, 1, 3},    // 7/3 = 2 + 1/3
	}
	for _, c := range cases {
		r := exact.Must(c.num, c.den)
		assert.Equal(t, c.floor, r.Floor(), "floor of %v", r)
		assert.Equal(t, exact.Must(c.fracN, c.fD), r.Frac(), "frac of %v", r)
	}
}

// TestRatio_FracIdempotent verifies Frac(Frac(r)) == Frac(r) and the
// [0,1) bound for a spread of values.
func TestRatio_FracIdempotent(t *testing.T) {
	for num := -12; num <= 12; num++ {
		for den := 1; den <= 5; den++ {
			f := exact.Must(num, den).Frac()
			assert.Equal(t, f, f.Frac(), "Frac must be idempotent for %d/%d", num, den)
			assert.GreaterOrEqual(t, f.Sign(), 0, "Frac(%d/%d) must be >= 0", num, den)
			assert.Negative(t, f.Cmp(exact.One[int]()), "Frac(%d/%d) must be < 1", num, den)
		}
	}
}

// TestRatio_CmpAndString covers ordering and rendering.
func TestRatio_CmpAndString(t *testing.T) {
	assert.Equal(t, -1, exact.Must(1, 3).Cmp(exact.Must(1, 2)))
	assert.Equal(t, 0, exact.Must(2, 4).Cmp(exact.Must(1, 2)))
	assert.Equal(t, 1, exact.Must(-1, 3).Cmp(exact.Must(-1, 2)))

	assert.Equal(t, "1/2", exact.Must(1, 2).String())
	assert.Equal(t, "-3", exact.FromInt(-3).String())
	assert.Equal(t, "-2/3", exact.Must(2, -3).String())
}
