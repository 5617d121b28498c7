// SPDX-License-Identifier: MIT
// Package matrix_test contains unit tests for Dense storage.
package matrix_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/intmat/matrix"
)

func TestNewDenseDefaultZero(t *testing.T) {
	for _, tc := range []struct{ rows, cols int }{
		{3, 3},
		{6, 2},
		{0, 4},
		{4, 0},
		{0, 0},
	} {
		name := fmt.Sprintf("%dx%d", tc.rows, tc.cols)
		t.Run(name, func(t *testing.T) {
			m := MustZeros(t, tc.rows, tc.cols)
			r, c := m.Shape()
			require.Equal(t, tc.rows, r)
			require.Equal(t, tc.cols, c)
			// immediately after creation all elements should be 0
			var i, j int
			for i = 0; i < tc.rows; i++ {
				for j = 0; j < tc.cols; j++ {
					if v := MustAt(t, m, i, j); v != 0 {
						t.Fatalf("element [%d,%d] of a new Dense(%dx%d) must be 0", i, j, tc.rows, tc.cols)
					}
				}
			}
		})
	}
}

func TestNewDense_Negative(t *testing.T) {
	_, err := matrix.NewDense(-1, 2)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
	_, err = matrix.NewDense(2, -1)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
}

func TestNewDenseFrom(t *testing.T) {
	t.Parallel()

	rows := baseA()
	m := MustFrom(t, rows)
	CompareExact(t, baseA(), m)

	// The source is copied, not retained.
	rows[0][0] = 100
	require.Equal(t, 1, MustAt(t, m, 0, 0))

	empty := MustFrom(t, nil)
	require.Equal(t, 0, empty.Rows())
	require.Equal(t, 0, empty.Cols())

	_, err := matrix.NewDenseFrom([][]int{{1, 2}, {3}})
	require.ErrorIs(t, err, matrix.ErrRagged)
	require.EqualError(t, err, "NewDenseFrom: row 1 has 1 elements, want 2: matrix: ragged rows")
}

func TestNewDenseWindow(t *testing.T) {
	t.Parallel()

	// Oversized rows and trailing rows are ignored.
	src := [][]int{{1, 2, 3, 99}, {4, 5, 6, 99}, {99, 99, 99}}
	m, err := matrix.NewDenseWindow(src, 2, 3)
	require.NoError(t, err)
	CompareExact(t, baseA(), m)

	src[0][0] = 100
	require.Equal(t, 1, MustAt(t, m, 0, 0))

	// The shape is kept even when a zero extent leaves the table empty.
	for _, tc := range []struct {
		name       string
		src        [][]int
		rows, cols int
	}{
		{"0x3 from nil", nil, 0, 3},
		{"0x3 from empty", [][]int{}, 0, 3},
		{"2x0 from empty rows", [][]int{{}, {}}, 2, 0},
		{"2x0 from full rows", baseA(), 2, 0},
	} {
		w, err := matrix.NewDenseWindow(tc.src, tc.rows, tc.cols)
		require.NoError(t, err, tc.name)
		r, c := w.Shape()
		require.Equal(t, tc.rows, r, tc.name)
		require.Equal(t, tc.cols, c, tc.name)
	}

	_, err = matrix.NewDenseWindow(baseA(), 3, 3)
	require.ErrorIs(t, err, matrix.ErrContainerTooSmall)
	_, err = matrix.NewDenseWindow([][]int{{1, 2, 3}, {4}}, 2, 3)
	require.ErrorIs(t, err, matrix.ErrContainerTooSmall)
	require.EqualError(t, err, "NewDenseWindow: row 1 has 1 elements, want 3: matrix: container too small")
	_, err = matrix.NewDenseWindow(baseA(), -1, 3)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
}

func TestMustDense_PanicsOnRagged(t *testing.T) {
	require.NotPanics(t, func() { matrix.MustDense(baseB()) })
	require.Panics(t, func() { matrix.MustDense([][]int{{1}, {2, 3}}) })
}

func TestDense_AtSet_OutOfRange(t *testing.T) {
	t.Parallel()

	m := MustZeros(t, 2, 3)
	for _, idx := range [][2]int{{-1, 0}, {0, -1}, {2, 0}, {0, 3}} {
		_, err := m.At(idx[0], idx[1])
		require.ErrorIs(t, err, matrix.ErrOutOfRange)
		require.ErrorIs(t, m.Set(idx[0], idx[1], 1), matrix.ErrOutOfRange)
	}

	_, err := m.At(5, 1)
	require.EqualError(t, err, "Dense.At(5,1): matrix: index out of range")

	MustSet(t, m, 1, 2, 42)
	require.Equal(t, 42, MustAt(t, m, 1, 2))
}

func TestDense_CloneIndependent(t *testing.T) {
	t.Parallel()

	m := MustFrom(t, baseA())
	cp := m.Clone()
	MustSet(t, cp, 0, 0, -7)
	require.Equal(t, 1, MustAt(t, m, 0, 0))
	require.Equal(t, -7, MustAt(t, cp, 0, 0))
}

func TestDense_ToRows(t *testing.T) {
	t.Parallel()

	m := MustFrom(t, baseB())
	rows := m.ToRows()
	require.Equal(t, baseB(), rows)

	// Exported rows share no storage with m.
	rows[1][1] = 0
	require.Equal(t, 10, MustAt(t, m, 1, 1))

	require.Equal(t, [][]int{{}, {}}, MustZeros(t, 2, 0).ToRows())
	require.Empty(t, MustZeros(t, 0, 3).ToRows())
}

func TestDense_String(t *testing.T) {
	t.Parallel()

	m := MustFrom(t, [][]int{{1, -2}, {30, 4}})
	require.Equal(t, "[1, -2]\n[30, 4]\n", m.String())
	require.Equal(t, "", MustZeros(t, 0, 0).String())
}
