package exact

import (
	"strings"

	"golang.org/x/exp/constraints"
)

// IntMat is a rectangular integer matrix over T, stored row-major.
// The same immutability convention as the vector types applies.
type IntMat[T constraints.Signed] [][]T

// Identity returns the n×n identity matrix. Panics when n <= 0.
func Identity[T constraints.Signed](n int) IntMat[T] {
	if n <= 0 {
		panic("exact: identity size must be positive")
	}
	m := make(IntMat[T], n)
	for i := range m {
		m[i] = make([]T, n)
		m[i][i] = 1
	}

	return m
}

// Rows returns the number of rows of m.
func (m IntMat[T]) Rows() int { return len(m) }

// Cols returns the number of columns of m (0 for an empty matrix).
func (m IntMat[T]) Cols() int {
	if len(m) == 0 {
		return 0
	}

	return len(m[0])
}

// IsRectangular reports whether every row of m has the same length.
func (m IntMat[T]) IsRectangular() bool {
	for _, row := range m {
		if len(row) != m.Cols() {
			return false
		}
	}

	return true
}

// IsSquare reports whether m is non-empty and square.
func (m IntMat[T]) IsSquare() bool {
	return len(m) > 0 && m.IsRectangular() && m.Rows() == m.Cols()
}

// Clone returns an independent deep copy of m.
func (m IntMat[T]) Clone() IntMat[T] {
	out := make(IntMat[T], len(m))
	for i, row := range m {
		out[i] = make([]T, len(row))
		copy(out[i], row)
	}

	return out
}

// Mul returns the matrix product m·o. Panics when m.Cols() != o.Rows().
func (m IntMat[T]) Mul(o IntMat[T]) IntMat[T] {
	mustConform(m.Cols(), o.Rows())
	out := make(IntMat[T], m.Rows())
	for i := range out {
		row := make([]T, o.Cols())
		for k, a := range m[i] {
			if a == 0 {
				continue
			}
			for j := range row {
				row[j] += a * o[k][j]
			}
		}
		out[i] = row
	}

	return out
}

// MulVec returns the matrix-vector product m·v over the integers.
// Panics when m.Cols() != len(v).
func (m IntMat[T]) MulVec(v IntVec[T]) IntVec[T] {
	mustConform(m.Cols(), len(v))
	out := make(IntVec[T], m.Rows())
	for i, row := range m {
		var sum T
		for j, a := range row {
			sum += a * v[j]
		}
		out[i] = sum
	}

	return out
}

// MulRatVec returns the exact matrix-vector product m·v where v is
// rational. Panics when m.Cols() != len(v).
func (m IntMat[T]) MulRatVec(v RatVec[T]) RatVec[T] {
	mustConform(m.Cols(), len(v))
	out := make(RatVec[T], m.Rows())
	for i, row := range m {
		sum := Zero[T]()
		for j, a := range row {
			if a == 0 {
				continue
			}
			sum = sum.Add(v[j].MulInt(a))
		}
		out[i] = sum
	}

	return out
}

// Transpose returns mᵀ.
func (m IntMat[T]) Transpose() IntMat[T] {
	out := make(IntMat[T], m.Cols())
	for i := range out {
		out[i] = make([]T, m.Rows())
		for j := range out[i] {
			out[i][j] = m[j][i]
		}
	}

	return out
}

// Sub returns m - o. Panics when shapes differ.
func (m IntMat[T]) Sub(o IntMat[T]) IntMat[T] {
	mustConform(m.Rows(), o.Rows())
	mustConform(m.Cols(), o.Cols())
	out := make(IntMat[T], len(m))
	for i, row := range m {
		out[i] = make([]T, len(row))
		for j, a := range row {
			out[i][j] = a - o[i][j]
		}
	}

	return out
}

// Equal reports componentwise equality.
func (m IntMat[T]) Equal(o IntMat[T]) bool {
	if len(m) != len(o) {
		return false
	}
	for i := range m {
		if !IntVec[T](m[i]).Equal(IntVec[T](o[i])) {
			return false
		}
	}

	return true
}

// Key returns a canonical, injective text encoding of m
// ("-1,0;0,1" for [[-1,0],[0,1]]).
func (m IntMat[T]) Key() string {
	var sb strings.Builder
	for i, row := range m {
		if i > 0 {
			sb.WriteByte(';')
		}
		sb.WriteString(IntVec[T](row).Key())
	}

	return sb.String()
}

// String renders m as "[-1,0; 0,1]"-style text.
func (m IntMat[T]) String() string { return "[" + m.Key() + "]" }

// Rank returns the rank of m, computed by Gaussian elimination over
// exact rationals (no pivot tolerance; a pivot is any non-zero entry).
func Rank[T constraints.Signed](m IntMat[T]) int {
	rows, cols := m.Rows(), m.Cols()
	if rows == 0 || cols == 0 {
		return 0
	}
	work := make([]RatVec[T], rows)
	for i, row := range m {
		work[i] = make(RatVec[T], cols)
		for j, a := range row {
			work[i][j] = FromInt(a)
		}
	}

	rank := 0
	for col := 0; col < cols && rank < rows; col++ {
		pivot := -1
		for r := rank; r < rows; r++ {
			if !work[r][col].IsZero() {
				pivot = r
				break
			}
		}
		if pivot < 0 {
			continue
		}
		work[rank], work[pivot] = work[pivot], work[rank]
		for r := rank + 1; r < rows; r++ {
			if work[r][col].IsZero() {
				continue
			}
			f, _ := work[r][col].Div(work[rank][col]) // pivot is non-zero by selection
			for c := col; c < cols; c++ {
				work[r][c] = work[r][c].Sub(work[rank][c].Mul(f))
			}
		}
		rank++
	}

	return rank
}

// mustConform panics unless a == b; see the package error policy.
func mustConform(a, b int) {
	if a != b {
		panic("exact: matrix dimension mismatch")
	}
}
