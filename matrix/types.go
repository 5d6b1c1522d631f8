// SPDX-License-Identifier: MIT

// Package matrix: the container type and its structural invariants.
//
// Invariants (enforced by every constructor and mutator in this package):
//   - entries is either nil (the null state) or strictly rectangular:
//     len(entries) == rows and len(entries[i]) == cols for every row.
//   - rows and cols are cached from entries and only meaningful when
//     entries != nil; the null state reports no size at all.
//   - A 0×0 initialized matrix (e.g. NewIdentity(0)) is legal and is NOT the
//     null state: it owns a non-nil, empty backing slice.

package matrix

// Matrix is a dense rows×cols container of float64 values with an explicit
// uninitialized ("null") state.
//
// Each Matrix exclusively owns its backing array: constructors deep-copy
// their input and DeepCopy never aliases. Entries exposes the backing array
// as a read view; callers must not grow or reshape it.
//
// Matrix is not safe for concurrent mutation. Create and the row/column
// editors are unguarded; share instances only after construction is done.
type Matrix struct {
	rows, cols int         // cached dimensions, valid only when entries != nil
	entries    [][]float64 // rectangular backing storage; nil marks the null state
}

// cloneEntries returns an independently allocated copy of src.
// src must be rectangular; nil input yields nil output.
// Complexity: O(r*c) time and memory.
func cloneEntries(src [][]float64) [][]float64 {
	if src == nil {
		return nil
	}
	dst := make([][]float64, len(src))
	for i, row := range src {
		dst[i] = make([]float64, len(row))
		copy(dst[i], row)
	}

	return dst
}
