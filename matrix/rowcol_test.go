// SPDX-License-Identifier: MIT

package matrix_test

import (
	"testing"

	"github.com/katalvlaran/jmatrix/matrix"
	"github.com/stretchr/testify/require"
)

func TestAddRow(t *testing.T) {
	m := mustOf(t, [][]float64{{1, 2}, {3, 4}})
	require.NoError(t, m.AddRow([]float64{5, 6}))
	require.True(t, m.Equals(mustOf(t, [][]float64{{1, 2}, {3, 4}, {5, 6}})))

	require.ErrorIs(t, m.AddRow([]float64{7}), matrix.ErrDimensionMismatch)
	require.ErrorIs(t, matrix.New().AddRow([]float64{1}), matrix.ErrNilMatrix)
}

func TestAddRow_CopiesInput(t *testing.T) {
	m := mustOf(t, [][]float64{{1, 2}})
	row := []float64{3, 4}
	require.NoError(t, m.AddRow(row))

	row[0] = 99
	v, err := m.At(1, 0)
	require.NoError(t, err)
	require.Equal(t, 3.0, v)
}

func TestAddColumn(t *testing.T) {
	m := mustOf(t, [][]float64{{1, 2}, {3, 4}})
	require.NoError(t, m.AddColumn([]float64{5, 6}))
	require.True(t, m.Equals(mustOf(t, [][]float64{{1, 2, 5}, {3, 4, 6}})))

	require.ErrorIs(t, m.AddColumn([]float64{7}), matrix.ErrDimensionMismatch)
}

func TestInsertRow(t *testing.T) {
	m := mustOf(t, [][]float64{{1, 1}, {3, 3}})
	require.NoError(t, m.InsertRow(1, []float64{2, 2}))
	require.True(t, m.Equals(mustOf(t, [][]float64{{1, 1}, {2, 2}, {3, 3}})))

	// Insertion index may equal the row count (append position)...
	require.NoError(t, m.InsertRow(3, []float64{4, 4}))
	// ...but not exceed it.
	require.ErrorIs(t, m.InsertRow(5, []float64{9, 9}), matrix.ErrOutOfRange)
	require.ErrorIs(t, m.InsertRow(-1, []float64{9, 9}), matrix.ErrOutOfRange)
}

func TestInsertColumn(t *testing.T) {
	m := mustOf(t, [][]float64{{1, 3}, {4, 6}})
	require.NoError(t, m.InsertColumn(1, []float64{2, 5}))
	require.True(t, m.Equals(mustOf(t, [][]float64{{1, 2, 3}, {4, 5, 6}})))

	require.ErrorIs(t, m.InsertColumn(9, []float64{0, 0}), matrix.ErrOutOfRange)
	require.ErrorIs(t, m.InsertColumn(0, []float64{0}), matrix.ErrDimensionMismatch)
}

func TestDropRow(t *testing.T) {
	m := mustOf(t, [][]float64{{1, 1}, {2, 2}, {3, 3}})
	require.NoError(t, m.DropRow(1))
	require.True(t, m.Equals(mustOf(t, [][]float64{{1, 1}, {3, 3}})))

	require.ErrorIs(t, m.DropRow(2), matrix.ErrOutOfRange)

	single := mustOf(t, [][]float64{{1, 2}})
	require.ErrorIs(t, single.DropRow(0), matrix.ErrInvalidDimensions)
}

func TestDropColumn(t *testing.T) {
	m := mustOf(t, [][]float64{{1, 9, 2}, {3, 9, 4}})
	require.NoError(t, m.DropColumn(1))
	require.True(t, m.Equals(mustOf(t, [][]float64{{1, 2}, {3, 4}})))

	require.ErrorIs(t, m.DropColumn(-1), matrix.ErrOutOfRange)

	single := mustOf(t, [][]float64{{1}, {2}})
	require.ErrorIs(t, single.DropColumn(0), matrix.ErrInvalidDimensions)
}

func TestSwapRows(t *testing.T) {
	m := mustOf(t, [][]float64{{1, 1}, {2, 2}})
	require.NoError(t, m.SwapRows(0, 1))
	require.True(t, m.Equals(mustOf(t, [][]float64{{2, 2}, {1, 1}})))

	require.ErrorIs(t, m.SwapRows(0, 2), matrix.ErrOutOfRange)
	require.ErrorIs(t, matrix.New().SwapRows(0, 0), matrix.ErrNilMatrix)
}

func TestSwapColumns(t *testing.T) {
	m := mustOf(t, [][]float64{{1, 2}, {3, 4}})
	require.NoError(t, m.SwapColumns(0, 1))
	require.True(t, m.Equals(mustOf(t, [][]float64{{2, 1}, {4, 3}})))

	require.ErrorIs(t, m.SwapColumns(5, 0), matrix.ErrOutOfRange)
}

func TestRowColEditing_KeepsRectangularity(t *testing.T) {
	m := mustOf(t, [][]float64{{1, 2, 3}, {4, 5, 6}})
	require.NoError(t, m.InsertColumn(0, []float64{0, 0}))
	require.NoError(t, m.AddRow([]float64{7, 8, 9, 10}))
	require.NoError(t, m.DropColumn(2))

	rows, cols, ok := m.Size()
	require.True(t, ok)
	require.Equal(t, 3, rows)
	require.Equal(t, 3, cols)
	for _, row := range m.Entries() {
		require.Len(t, row, cols)
	}
}
