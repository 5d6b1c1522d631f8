// SPDX-License-Identifier: MIT

// Package matrix: linear-algebra kernels (product, transpose, trace, minor,
// determinant).
//
// Determinism: fixed i→j→k loop orders; no reordering, no fast paths.

package matrix

// Mul returns the matrix product m·other as a new matrix.
// Returns ErrNilMatrix when either operand is null and ErrDimensionMismatch
// unless m.cols == other.rows.
// Complexity: O(r·c·k), classic triple loop.
func (m *Matrix) Mul(other *Matrix) (*Matrix, error) {
	if err := m.ensureInit(); err != nil {
		return nil, validatorErrorf("Mul", err)
	}
	if err := other.ensureInit(); err != nil {
		return nil, validatorErrorf("Mul", err)
	}
	if m.cols != other.rows {
		return nil, validatorErrorf("Mul", ErrDimensionMismatch)
	}

	out := allocEntries(m.rows, other.cols)
	for i := 0; i < m.rows; i++ {
		for j := 0; j < other.cols; j++ {
			var sum float64
			for k := 0; k < m.cols; k++ {
				sum += m.entries[i][k] * other.entries[k][j]
			}
			out[i][j] = sum
		}
	}
	res := &Matrix{}
	res.adopt(out)

	return res, nil
}

// Transpose returns mᵀ as a new matrix.
// Returns ErrNilMatrix when m is null.
// Complexity: O(r*c).
func (m *Matrix) Transpose() (*Matrix, error) {
	if err := m.ensureInit(); err != nil {
		return nil, validatorErrorf("Transpose", err)
	}
	out := allocEntries(m.cols, m.rows)
	for i, row := range m.entries {
		for j, v := range row {
			out[j][i] = v
		}
	}
	res := &Matrix{}
	res.adopt(out)

	return res, nil
}

// Trace returns the sum of the main-diagonal entries.
// Returns ErrNilMatrix on the null state and ErrNonSquare otherwise when
// rows != cols.
// Complexity: O(n).
func (m *Matrix) Trace() (float64, error) {
	if err := m.ensureInit(); err != nil {
		return 0, validatorErrorf("Trace", err)
	}
	if m.rows != m.cols {
		return 0, validatorErrorf("Trace", ErrNonSquare)
	}
	var sum float64
	for i := 0; i < m.rows; i++ {
		sum += m.entries[i][i]
	}

	return sum, nil
}

// Minor returns the submatrix obtained by removing the given row and column.
// Requires at least a 2×2 matrix (ErrInvalidDimensions otherwise) and valid
// indices (ErrOutOfRange).
// Complexity: O(r*c).
func (m *Matrix) Minor(row, col int) (*Matrix, error) {
	if err := m.ensureInit(); err != nil {
		return nil, indexErrorf("Minor", row, col, err)
	}
	if m.rows < 2 || m.cols < 2 {
		return nil, indexErrorf("Minor", row, col, ErrInvalidDimensions)
	}
	if err := m.checkIndex(row, col); err != nil {
		return nil, indexErrorf("Minor", row, col, err)
	}

	out := allocEntries(m.rows-1, m.cols-1)
	for i, oi := 0, 0; i < m.rows; i++ {
		if i == row {
			continue
		}
		for j, oj := 0, 0; j < m.cols; j++ {
			if j == col {
				continue
			}
			out[oi][oj] = m.entries[i][j]
			oj++
		}
		oi++
	}
	res := &Matrix{}
	res.adopt(out)

	return res, nil
}

// Det returns the determinant via cofactor expansion along the first row.
// Returns ErrNilMatrix on the null state and ErrNonSquare when rows != cols.
// The determinant of the empty 0×0 matrix is 1 by convention.
// Complexity: O(n!), adequate for the small matrices this package targets.
func (m *Matrix) Det() (float64, error) {
	if err := m.ensureInit(); err != nil {
		return 0, validatorErrorf("Det", err)
	}
	if m.rows != m.cols {
		return 0, validatorErrorf("Det", ErrNonSquare)
	}

	return m.det(), nil
}

// det is the unchecked cofactor recursion; m is known square and non-null.
func (m *Matrix) det() float64 {
	switch m.rows {
	case 0:
		return 1.0
	case 1:
		return m.entries[0][0]
	case 2:
		return m.entries[0][0]*m.entries[1][1] - m.entries[0][1]*m.entries[1][0]
	}

	var sum float64
	sign := 1.0
	for j := 0; j < m.cols; j++ {
		sub, _ := m.Minor(0, j) // indices are in range by construction
		sum += sign * m.entries[0][j] * sub.det()
		sign = -sign
	}

	return sum
}
