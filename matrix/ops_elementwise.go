// SPDX-License-Identifier: MIT

// Package matrix: elementwise arithmetic.
//
// All operations here are pure: operands are never mutated, results are
// freshly allocated. Loop orders are fixed (row-major) for determinism.

package matrix

// Add returns m + other as a new matrix.
// Returns ErrNilMatrix when either operand is null and ErrDimensionMismatch
// when shapes differ.
// Complexity: O(r*c).
func (m *Matrix) Add(other *Matrix) (*Matrix, error) {
	return m.elementwise(other, "Add", func(a, b float64) float64 { return a + b })
}

// Sub returns m - other as a new matrix.
// Returns ErrNilMatrix when either operand is null and ErrDimensionMismatch
// when shapes differ.
// Complexity: O(r*c).
func (m *Matrix) Sub(other *Matrix) (*Matrix, error) {
	return m.elementwise(other, "Sub", func(a, b float64) float64 { return a - b })
}

// MulScalar returns x·m as a new matrix.
// Returns ErrNilMatrix when m is null.
// Complexity: O(r*c).
func (m *Matrix) MulScalar(x float64) (*Matrix, error) {
	if err := m.ensureInit(); err != nil {
		return nil, validatorErrorf("MulScalar", err)
	}
	out := allocEntries(m.rows, m.cols)
	for i, row := range m.entries {
		for j, v := range row {
			out[i][j] = x * v
		}
	}
	res := &Matrix{}
	res.adopt(out)

	return res, nil
}

// elementwise applies op cell by cell over two same-shaped operands.
// Shared kernel for Add and Sub; validation happens once here.
func (m *Matrix) elementwise(other *Matrix, tag string, op func(a, b float64) float64) (*Matrix, error) {
	if err := m.ensureInit(); err != nil {
		return nil, validatorErrorf(tag, err)
	}
	if err := other.ensureInit(); err != nil {
		return nil, validatorErrorf(tag, err)
	}
	if m.rows != other.rows || m.cols != other.cols {
		return nil, validatorErrorf(tag, ErrDimensionMismatch)
	}

	out := allocEntries(m.rows, m.cols)
	for i, row := range m.entries {
		for j, v := range row {
			out[i][j] = op(v, other.entries[i][j])
		}
	}
	res := &Matrix{}
	res.adopt(out)

	return res, nil
}
