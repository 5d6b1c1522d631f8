// SPDX-License-Identifier: MIT

// Package matrix: constructors and (re)initialization.
//
// Construction policy:
//   - New is the only way to obtain the null state; every other constructor
//     allocates and validates up front.
//   - Allocating constructors reject non-positive dimensions with
//     ErrInvalidDimensions; the identity constructor alone accepts n == 0,
//     since I₀ is a legal (empty but initialized) matrix.
//   - Input arrays are always deep-copied: a Matrix never aliases caller
//     storage.

package matrix

// New returns a Matrix in the null-entries state: no storage allocated,
// Size reports absence. Use Create or CreateZero to initialize it later.
// Complexity: O(1).
func New() *Matrix {
	return &Matrix{}
}

// NewZero returns a rows×cols matrix with every cell set to 0.0.
// Returns ErrInvalidDimensions when rows <= 0 or cols <= 0. The result is
// initialized and therefore never equal to a New() matrix.
// Complexity: O(r*c).
func NewZero(rows, cols int) (*Matrix, error) {
	if err := validateDims(rows, cols); err != nil {
		return nil, validatorErrorf("NewZero", err)
	}

	return &Matrix{rows: rows, cols: cols, entries: allocEntries(rows, cols)}, nil
}

// NewFilled returns an n×n matrix with every cell set to value.
// Returns ErrInvalidDimensions when n <= 0.
// Complexity: O(n²).
func NewFilled(n int, value float64) (*Matrix, error) {
	if err := validateDims(n, n); err != nil {
		return nil, validatorErrorf("NewFilled", err)
	}
	entries := allocEntries(n, n)
	for i := range entries {
		for j := range entries[i] {
			entries[i][j] = value
		}
	}

	return &Matrix{rows: n, cols: n, entries: entries}, nil
}

// NewOf returns a matrix backed by a deep copy of data.
// Returns ErrInvalidShape when data is nil or jagged. An empty (zero-row)
// array yields a 0×0 initialized matrix, which is distinct from the null
// state.
// Complexity: O(r*c).
func NewOf(data [][]float64) (*Matrix, error) {
	if err := ValidateEntries(data); err != nil {
		return nil, validatorErrorf("NewOf", err)
	}

	m := &Matrix{}
	m.adopt(cloneEntries(data))

	return m, nil
}

// NewIdentity returns Iₙ: the n×n matrix with 1.0 on the main diagonal and
// 0.0 elsewhere. Accepts n >= 0 (I₀ is the empty identity); returns
// ErrInvalidDimensions when n < 0.
// Complexity: O(n²) zeroing + O(n) diagonal writes.
func NewIdentity(n int) (*Matrix, error) {
	if n < 0 {
		return nil, validatorErrorf("NewIdentity", ErrInvalidDimensions)
	}
	entries := allocEntries(n, n)
	for i := 0; i < n; i++ { // fixed i order, single write per diagonal cell
		entries[i][i] = 1.0
	}

	return &Matrix{rows: n, cols: n, entries: entries}, nil
}

// Create (re)initializes m from a deep copy of data, following the same
// validation as NewOf. It is legal in any prior state and overwrites the
// previous entries, including leaving the null state.
func (m *Matrix) Create(data [][]float64) error {
	if err := ValidateEntries(data); err != nil {
		return validatorErrorf("Create", err)
	}
	m.adopt(cloneEntries(data))

	return nil
}

// CreateZero (re)initializes m as a rows×cols zero matrix, following the
// same validation as NewZero.
func (m *Matrix) CreateZero(rows, cols int) error {
	if err := validateDims(rows, cols); err != nil {
		return validatorErrorf("CreateZero", err)
	}
	m.rows, m.cols = rows, cols
	m.entries = allocEntries(rows, cols)

	return nil
}

// adopt installs entries (already validated, already owned by m) and caches
// the shape. entries must be rectangular and non-nil.
func (m *Matrix) adopt(entries [][]float64) {
	m.entries = entries
	m.rows = len(entries)
	if m.rows > 0 {
		m.cols = len(entries[0])
	} else {
		m.cols = 0
	}
}

// allocEntries builds a zeroed rows×cols rectangular array.
// rows and cols must be >= 0; a 0×c or r×0 result is non-nil.
func allocEntries(rows, cols int) [][]float64 {
	entries := make([][]float64, rows)
	for i := range entries {
		entries[i] = make([]float64, cols)
	}

	return entries
}
