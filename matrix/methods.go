// SPDX-License-Identifier: MIT

// Package matrix: accessors, predicates, copying and comparison.

package matrix

import (
	"fmt"
	"strings"
)

// Entries returns the backing array as a read view, or nil when the matrix
// is in the null state. The returned slices are the live storage: callers
// must not grow or reshape them, and should use DeepCopy (or Create on a
// fresh instance) before mutating independently.
// Complexity: O(1).
func (m *Matrix) Entries() [][]float64 {
	if m == nil {
		return nil
	}

	return m.entries
}

// Size returns the shape as an ordered (rows, cols) pair. ok is false when
// the matrix is uninitialized; the null state is never reported as 0×0.
// Complexity: O(1).
func (m *Matrix) Size() (rows, cols int, ok bool) {
	if m == nil || m.entries == nil {
		return 0, 0, false
	}

	return m.rows, m.cols, true
}

// IsNull reports whether the matrix is in the null-entries state.
// A zero-filled (or even 0×0) allocated matrix is NOT null.
func (m *Matrix) IsNull() bool {
	return m == nil || m.entries == nil
}

// IsSquare reports whether the matrix is initialized and rows == cols.
// A null matrix is not square.
func (m *Matrix) IsSquare() bool {
	return !m.IsNull() && m.rows == m.cols
}

// IsDiagonal reports whether the matrix is initialized, square, and every
// off-diagonal cell is exactly 0.0. No tolerance is applied.
// Complexity: O(r*c).
func (m *Matrix) IsDiagonal() bool {
	if !m.IsSquare() {
		return false
	}
	for i, row := range m.entries {
		for j, v := range row {
			if i != j && v != 0.0 {
				return false
			}
		}
	}

	return true
}

// At returns the element at (row, col).
// Returns ErrNilMatrix on the null state and ErrOutOfRange on bad indices.
// Complexity: O(1).
func (m *Matrix) At(row, col int) (float64, error) {
	if err := m.ensureInit(); err != nil {
		return 0, indexErrorf("At", row, col, err)
	}
	if err := m.checkIndex(row, col); err != nil {
		return 0, indexErrorf("At", row, col, err)
	}

	return m.entries[row][col], nil
}

// Set assigns v at (row, col).
// Returns ErrNilMatrix on the null state and ErrOutOfRange on bad indices.
// Complexity: O(1).
func (m *Matrix) Set(row, col int, v float64) error {
	if err := m.ensureInit(); err != nil {
		return indexErrorf("Set", row, col, err)
	}
	if err := m.checkIndex(row, col); err != nil {
		return indexErrorf("Set", row, col, err)
	}
	m.entries[row][col] = v

	return nil
}

// DeepCopy returns a new Matrix with an independently allocated backing
// array holding the same values. The copy satisfies Equals against the
// source while being a distinct instance: mutating one never affects the
// other. Copying a null matrix yields a null matrix.
// Complexity: O(r*c).
func (m *Matrix) DeepCopy() *Matrix {
	if m.IsNull() {
		return New()
	}
	c := &Matrix{}
	c.adopt(cloneEntries(m.entries))

	return c
}

// Equals reports structural equality: both matrices are null, or both are
// initialized with identical shape and every corresponding cell compares
// equal by exact float64 equality. A null matrix never equals an
// initialized one. Pointer identity is irrelevant here; compare pointers
// directly when aliasing matters.
// Complexity: O(r*c).
func (m *Matrix) Equals(other *Matrix) bool {
	if m.IsNull() || other.IsNull() {
		return m.IsNull() && other.IsNull()
	}
	if m.rows != other.rows || m.cols != other.cols {
		return false
	}
	for i, row := range m.entries {
		for j, v := range row {
			if v != other.entries[i][j] {
				return false
			}
		}
	}

	return true
}

// String implements fmt.Stringer for debugging. The null state renders as
// "<null matrix>"; otherwise one bracketed line per row.
// Complexity: O(r*c).
func (m *Matrix) String() string {
	if m.IsNull() {
		return "<null matrix>"
	}
	var b strings.Builder
	for _, row := range m.entries {
		b.WriteString("[")
		for j, v := range row {
			if j > 0 {
				b.WriteString(", ")
			}
			fmt.Fprintf(&b, "%g", v)
		}
		b.WriteString("]\n")
	}

	return b.String()
}
