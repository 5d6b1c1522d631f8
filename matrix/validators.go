// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single, canonical source of truth for common validation checks.
//  - Keep constructors and kernels minimal by delegating shape/null/index
//    checks here.
//  - Return plain sentinel errors (no wrapping) so call sites can wrap
//    uniformly with their own context.

package matrix

import "fmt"

// validatorErrorf wraps an underlying sentinel with the given call-site tag.
// Used to maintain consistent labeling of validation failures.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("Matrix.%s: %w", tag, err)
}

// indexErrorf wraps a sentinel with method context and the offending indices.
func indexErrorf(tag string, row, col int, err error) error {
	return fmt.Errorf("Matrix.%s(%d,%d): %w", tag, row, col, err)
}

// ValidateEntries checks that data is a usable backing array: non-nil and
// strictly rectangular. Rows of length zero are permitted (a r×0 matrix is
// legal); nil or jagged input yields ErrInvalidShape.
// Complexity: O(r), no allocation.
func ValidateEntries(data [][]float64) error {
	if data == nil {
		return ErrInvalidShape
	}
	if len(data) == 0 {
		return nil // 0×0 is rectangular by definition
	}
	want := len(data[0])
	for _, row := range data[1:] {
		if len(row) != want {
			return ErrInvalidShape
		}
	}

	return nil
}

// validateDims checks a requested shape for the allocating constructors.
// Non-positive dimensions are rejected, matching the zero-matrix policy.
func validateDims(rows, cols int) error {
	if rows <= 0 || cols <= 0 {
		return ErrInvalidDimensions
	}

	return nil
}

// ensureInit guards operations that require initialized entries.
// A nil receiver and the null state are both reported as ErrNilMatrix.
func (m *Matrix) ensureInit() error {
	if m == nil || m.entries == nil {
		return ErrNilMatrix
	}

	return nil
}

// checkIndex validates a (row, col) pair against the current shape.
// Assumes the matrix is initialized (caller must ensure).
func (m *Matrix) checkIndex(row, col int) error {
	if row < 0 || row >= m.rows {
		return ErrOutOfRange
	}
	if col < 0 || col >= m.cols {
		return ErrOutOfRange
	}

	return nil
}
