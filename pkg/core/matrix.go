package core

import "math"

// Matrix is a 4x4 affine transform matrix.
// Transforms compose via multiplication with right-to-left application order:
// in A.Multiply(B), B is applied to a tuple first.
type Matrix [4][4]float64

// IdentityMatrix returns the 4x4 identity matrix
func IdentityMatrix() Matrix {
	return Matrix{
		{1, 0, 0, 0},
		{0, 1, 0, 0},
		{0, 0, 1, 0},
		{0, 0, 0, 1},
	}
}

// Multiply returns the matrix product m * other
func (m Matrix) Multiply(other Matrix) Matrix {
	var result Matrix
	for row := 0; row < 4; row++ {
		for col := 0; col < 4; col++ {
			result[row][col] = m[row][0]*other[0][col] +
				m[row][1]*other[1][col] +
				m[row][2]*other[2][col] +
				m[row][3]*other[3][col]
		}
	}
	return result
}

// MultiplyTuple applies the transform to a tuple.
// A point's W of 1 picks up the translation column; a vector's W of 0
// ignores it, which is exactly the affine behavior we want.
func (m Matrix) MultiplyTuple(t Tuple) Tuple {
	return Tuple{
		X: m[0][0]*t.X + m[0][1]*t.Y + m[0][2]*t.Z + m[0][3]*t.W,
		Y: m[1][0]*t.X + m[1][1]*t.Y + m[1][2]*t.Z + m[1][3]*t.W,
		Z: m[2][0]*t.X + m[2][1]*t.Y + m[2][2]*t.Z + m[2][3]*t.W,
		W: m[3][0]*t.X + m[3][1]*t.Y + m[3][2]*t.Z + m[3][3]*t.W,
	}
}

// Transpose returns the matrix with rows and columns swapped
func (m Matrix) Transpose() Matrix {
	var result Matrix
	for row := 0; row < 4; row++ {
		for col := 0; col < 4; col++ {
			result[col][row] = m[row][col]
		}
	}
	return result
}

// Determinant returns the determinant of the matrix
func (m Matrix) Determinant() float64 {
	return determinant(m.grid())
}

// Inverse returns the inverted matrix.
// Panics if the matrix is singular: an uninvertible transform on a shape or
// camera is a defect in scene-construction code.
func (m Matrix) Inverse() Matrix {
	det := m.Determinant()
	if math.Abs(det) < Epsilon {
		panic("core: matrix is not invertible")
	}

	grid := m.grid()
	var result Matrix
	for row := 0; row < 4; row++ {
		for col := 0; col < 4; col++ {
			// Note the transposed indexing: cofactor of [row][col] lands at
			// [col][row] in the inverse
			result[col][row] = cofactor(grid, row, col) / det
		}
	}
	return result
}

// Equals reports element-wise approximate equality
func (m Matrix) Equals(other Matrix) bool {
	for row := 0; row < 4; row++ {
		for col := 0; col < 4; col++ {
			if math.Abs(m[row][col]-other[row][col]) > Epsilon {
				return false
			}
		}
	}
	return true
}

// grid converts the fixed-size matrix into the dynamically sized form the
// recursive determinant helpers operate on
func (m Matrix) grid() [][]float64 {
	grid := make([][]float64, 4)
	for row := 0; row < 4; row++ {
		grid[row] = []float64{m[row][0], m[row][1], m[row][2], m[row][3]}
	}
	return grid
}

// determinant computes the determinant of a square grid by cofactor
// expansion along the first row
func determinant(grid [][]float64) float64 {
	if len(grid) == 2 {
		return grid[0][0]*grid[1][1] - grid[0][1]*grid[1][0]
	}

	var det float64
	for col := range grid[0] {
		det += grid[0][col] * cofactor(grid, 0, col)
	}
	return det
}

// submatrix returns the grid with the given row and column removed
func submatrix(grid [][]float64, dropRow, dropCol int) [][]float64 {
	sub := make([][]float64, 0, len(grid)-1)
	for r, row := range grid {
		if r == dropRow {
			continue
		}
		newRow := make([]float64, 0, len(row)-1)
		for c, val := range row {
			if c == dropCol {
				continue
			}
			newRow = append(newRow, val)
		}
		sub = append(sub, newRow)
	}
	return sub
}

// cofactor returns the signed minor of the grid at (row, col)
func cofactor(grid [][]float64, row, col int) float64 {
	minor := determinant(submatrix(grid, row, col))
	if (row+col)%2 != 0 {
		return -minor
	}
	return minor
}
