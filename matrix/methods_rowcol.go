// SPDX-License-Identifier: MIT

// Package matrix: row and column editing.
//
// These methods mutate the receiver in place and keep the rectangularity
// invariant at every exit point. Input slices are copied, never adopted, so
// the matrix keeps exclusive ownership of its storage.

package matrix

// AddRow appends a copy of vals as the last row.
// Returns ErrNilMatrix on the null state and ErrDimensionMismatch when
// len(vals) != cols.
func (m *Matrix) AddRow(vals []float64) error {
	if err := m.ensureInit(); err != nil {
		return validatorErrorf("AddRow", err)
	}

	return m.InsertRow(m.rows, vals)
}

// AddColumn appends a copy of vals as the last column.
// Returns ErrNilMatrix on the null state and ErrDimensionMismatch when
// len(vals) != rows.
func (m *Matrix) AddColumn(vals []float64) error {
	if err := m.ensureInit(); err != nil {
		return validatorErrorf("AddColumn", err)
	}

	return m.InsertColumn(m.cols, vals)
}

// InsertRow inserts a copy of vals before row index row; row == rows appends.
// Returns ErrNilMatrix on the null state, ErrOutOfRange when row is outside
// [0, rows], and ErrDimensionMismatch when len(vals) != cols.
func (m *Matrix) InsertRow(row int, vals []float64) error {
	if err := m.ensureInit(); err != nil {
		return validatorErrorf("InsertRow", err)
	}
	if row < 0 || row > m.rows {
		return validatorErrorf("InsertRow", ErrOutOfRange)
	}
	if len(vals) != m.cols {
		return validatorErrorf("InsertRow", ErrDimensionMismatch)
	}

	newRow := make([]float64, m.cols)
	copy(newRow, vals)
	m.entries = append(m.entries, nil)
	copy(m.entries[row+1:], m.entries[row:])
	m.entries[row] = newRow
	m.rows++

	return nil
}

// InsertColumn inserts a copy of vals before column index col; col == cols
// appends.
// Returns ErrNilMatrix on the null state, ErrOutOfRange when col is outside
// [0, cols], and ErrDimensionMismatch when len(vals) != rows.
func (m *Matrix) InsertColumn(col int, vals []float64) error {
	if err := m.ensureInit(); err != nil {
		return validatorErrorf("InsertColumn", err)
	}
	if col < 0 || col > m.cols {
		return validatorErrorf("InsertColumn", ErrOutOfRange)
	}
	if len(vals) != m.rows {
		return validatorErrorf("InsertColumn", ErrDimensionMismatch)
	}

	for i := range m.entries {
		row := append(m.entries[i], 0)
		copy(row[col+1:], row[col:])
		row[col] = vals[i]
		m.entries[i] = row
	}
	m.cols++

	return nil
}

// DropRow removes the row at index row.
// Returns ErrNilMatrix on the null state, ErrOutOfRange on a bad index, and
// ErrInvalidDimensions when the matrix has a single row: editing never
// produces an empty matrix, use Create to rebuild instead.
func (m *Matrix) DropRow(row int) error {
	if err := m.ensureInit(); err != nil {
		return validatorErrorf("DropRow", err)
	}
	if row < 0 || row >= m.rows {
		return validatorErrorf("DropRow", ErrOutOfRange)
	}
	if m.rows == 1 {
		return validatorErrorf("DropRow", ErrInvalidDimensions)
	}

	m.entries = append(m.entries[:row], m.entries[row+1:]...)
	m.rows--

	return nil
}

// DropColumn removes the column at index col.
// Returns ErrNilMatrix on the null state, ErrOutOfRange on a bad index, and
// ErrInvalidDimensions when the matrix has a single column.
func (m *Matrix) DropColumn(col int) error {
	if err := m.ensureInit(); err != nil {
		return validatorErrorf("DropColumn", err)
	}
	if col < 0 || col >= m.cols {
		return validatorErrorf("DropColumn", ErrOutOfRange)
	}
	if m.cols == 1 {
		return validatorErrorf("DropColumn", ErrInvalidDimensions)
	}

	for i := range m.entries {
		m.entries[i] = append(m.entries[i][:col], m.entries[i][col+1:]...)
	}
	m.cols--

	return nil
}

// SwapRows exchanges the rows at indices a and b (a == b is a no-op).
// Returns ErrNilMatrix on the null state and ErrOutOfRange on bad indices.
func (m *Matrix) SwapRows(a, b int) error {
	if err := m.ensureInit(); err != nil {
		return validatorErrorf("SwapRows", err)
	}
	if a < 0 || a >= m.rows || b < 0 || b >= m.rows {
		return validatorErrorf("SwapRows", ErrOutOfRange)
	}
	m.entries[a], m.entries[b] = m.entries[b], m.entries[a]

	return nil
}

// SwapColumns exchanges the columns at indices a and b (a == b is a no-op).
// Returns ErrNilMatrix on the null state and ErrOutOfRange on bad indices.
func (m *Matrix) SwapColumns(a, b int) error {
	if err := m.ensureInit(); err != nil {
		return validatorErrorf("SwapColumns", err)
	}
	if a < 0 || a >= m.cols || b < 0 || b >= m.cols {
		return validatorErrorf("SwapColumns", ErrOutOfRange)
	}
	for i := range m.entries {
		m.entries[i][a], m.entries[i][b] = m.entries[i][b], m.entries[i][a]
	}

	return nil
}
