package core

import "errors"

// ErrNotInvertible is returned by Inverse when the determinant is zero
// within Epsilon.
var ErrNotInvertible = errors.New("matrix is not invertible")

// Matrix2 is a row-major 2x2 matrix.
type Matrix2 [2][2]float64

// Matrix3 is a row-major 3x3 matrix.
type Matrix3 [3][3]float64

// Matrix4 is a row-major 4x4 matrix. The zero value is the zero
// matrix; use Identity for the multiplicative identity.
type Matrix4 [4][4]float64

// Determinant returns the determinant of a 2x2 matrix.
func (m Matrix2) Determinant() float64 {
	return m[0][0]*m[1][1] - m[1][0]*m[0][1]
}

// Equals reports whether every entry matches within Epsilon.
func (m Matrix2) Equals(other Matrix2) bool {
	for row := 0; row < 2; row++ {
		for col := 0; col < 2; col++ {
			if !EqualFloat(m[row][col], other[row][col]) {
				return false
			}
		}
	}
	return true
}

// Submatrix returns the 2x2 matrix left after removing the given row
// and column.
func (m Matrix3) Submatrix(row, col int) Matrix2 {
	var sub Matrix2
	sr := 0
	for r := 0; r < 3; r++ {
		if r == row {
			continue
		}
		sc := 0
		for c := 0; c < 3; c++ {
			if c == col {
				continue
			}
			sub[sr][sc] = m[r][c]
			sc++
		}
		sr++
	}
	return sub
}

// Minor returns the determinant of the submatrix at row, col.
func (m Matrix3) Minor(row, col int) float64 {
	return m.Submatrix(row, col).Determinant()
}

// Cofactor returns the minor at row, col, negated when row+col is odd.
func (m Matrix3) Cofactor(row, col int) float64 {
	minor := m.Minor(row, col)
	if (row+col)%2 != 0 {
		return -minor
	}
	return minor
}

// Determinant returns the determinant by cofactor expansion along the
// first row.
func (m Matrix3) Determinant() float64 {
	det := 0.0
	for col := 0; col < 3; col++ {
		det += m[0][col] * m.Cofactor(0, col)
	}
	return det
}

// Equals reports whether every entry matches within Epsilon.
func (m Matrix3) Equals(other Matrix3) bool {
	for row := 0; row < 3; row++ {
		for col := 0; col < 3; col++ {
			if !EqualFloat(m[row][col], other[row][col]) {
				return false
			}
		}
	}
	return true
}

// Identity returns the 4x4 identity matrix.
func Identity() Matrix4 {
	return Matrix4{
		{1, 0, 0, 0},
		{0, 1, 0, 0},
		{0, 0, 1, 0},
		{0, 0, 0, 1},
	}
}

// Equals reports whether every entry matches within Epsilon.
func (m Matrix4) Equals(other Matrix4) bool {
	return m.EqualsApprox(other, Epsilon)
}

// EqualsApprox reports whether every entry matches within eps.
func (m Matrix4) EqualsApprox(other Matrix4, eps float64) bool {
	for row := 0; row < 4; row++ {
		for col := 0; col < 4; col++ {
			if !EqualApprox(m[row][col], other[row][col], eps) {
				return false
			}
		}
	}
	return true
}

// Multiply returns the matrix product m * other. Composition applies
// right-to-left: the transform multiplied in last is applied first.
func (m Matrix4) Multiply(other Matrix4) Matrix4 {
	var product Matrix4
	for row := 0; row < 4; row++ {
		for col := 0; col < 4; col++ {
			for i := 0; i < 4; i++ {
				product[row][col] += m[row][i] * other[i][col]
			}
		}
	}
	return product
}

// MultiplyTuple returns the matrix applied to a tuple.
func (m Matrix4) MultiplyTuple(t Tuple) Tuple {
	return Tuple{
		X: m[0][0]*t.X + m[0][1]*t.Y + m[0][2]*t.Z + m[0][3]*t.W,
		Y: m[1][0]*t.X + m[1][1]*t.Y + m[1][2]*t.Z + m[1][3]*t.W,
		Z: m[2][0]*t.X + m[2][1]*t.Y + m[2][2]*t.Z + m[2][3]*t.W,
		W: m[3][0]*t.X + m[3][1]*t.Y + m[3][2]*t.Z + m[3][3]*t.W,
	}
}

// Transpose returns the matrix with rows and columns swapped.
func (m Matrix4) Transpose() Matrix4 {
	var transposed Matrix4
	for row := 0; row < 4; row++ {
		for col := 0; col < 4; col++ {
			transposed[col][row] = m[row][col]
		}
	}
	return transposed
}

// Submatrix returns the 3x3 matrix left after removing the given row
// and column.
func (m Matrix4) Submatrix(row, col int) Matrix3 {
	var sub Matrix3
	sr := 0
	for r := 0; r < 4; r++ {
		if r == row {
			continue
		}
		sc := 0
		for c := 0; c < 4; c++ {
			if c == col {
				continue
			}
			sub[sr][sc] = m[r][c]
			sc++
		}
		sr++
	}
	return sub
}

// Minor returns the determinant of the submatrix at row, col.
func (m Matrix4) Minor(row, col int) float64 {
	return m.Submatrix(row, col).Determinant()
}

// Cofactor returns the minor at row, col, negated when row+col is odd.
func (m Matrix4) Cofactor(row, col int) float64 {
	minor := m.Minor(row, col)
	if (row+col)%2 != 0 {
		return -minor
	}
	return minor
}

// Determinant returns the determinant by cofactor expansion along the
// first row.
func (m Matrix4) Determinant() float64 {
	det := 0.0
	for col := 0; col < 4; col++ {
		det += m[0][col] * m.Cofactor(0, col)
	}
	return det
}

// IsInvertible reports whether the determinant is nonzero within
// Epsilon.
func (m Matrix4) IsInvertible() bool {
	return !EqualFloat(m.Determinant(), 0)
}

// Inverse returns the inverse of the matrix, or ErrNotInvertible when
// the matrix is singular. The index swap inverse[col][row] performs
// the adjugate transpose without a separate transpose pass.
func (m Matrix4) Inverse() (Matrix4, error) {
	det := m.Determinant()
	if EqualFloat(det, 0) {
		return Matrix4{}, ErrNotInvertible
	}
	var inverse Matrix4
	for row := 0; row < 4; row++ {
		for col := 0; col < 4; col++ {
			inverse[col][row] = m.Cofactor(row, col) / det
		}
	}
	return inverse, nil
}
