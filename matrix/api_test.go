// SPDX-License-Identifier: MIT
// Package matrix_test contains unit tests for the public facades.
package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/intmat/matrix"
)

func TestNewIdentity(t *testing.T) {
	t.Parallel()

	CompareExact(t, identityRows(3), MustIdentity(t, 3))
	CompareExact(t, [][]int{}, MustIdentity(t, 0))

	_, err := matrix.NewIdentity(-1)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
}

func TestNewZeros(t *testing.T) {
	t.Parallel()

	z, err := matrix.NewZeros(2, 3)
	require.NoError(t, err)
	CompareExact(t, matrix.NewZerosLike(2, 3), z)

	_, err = matrix.NewZeros(-2, 3)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
}

func TestNewZerosLike(t *testing.T) {
	t.Parallel()

	require.Equal(t, [][]int{{0, 0, 0}, {0, 0, 0}}, matrix.NewZerosLike(2, 3))
	require.Equal(t, [][]int{{}}, matrix.NewZerosLike(1, 0))
	require.Empty(t, matrix.NewZerosLike(0, 4))
	require.Empty(t, matrix.NewZerosLike(-1, 4))
	require.Empty(t, matrix.NewZerosLike(2, -1))

	// Rows are independent.
	z := matrix.NewZerosLike(2, 2)
	z[0][0] = 1
	require.Equal(t, 0, z[1][0])
}

func TestProduct(t *testing.T) {
	t.Parallel()

	c, err := matrix.Product(baseA(), baseB())
	require.NoError(t, err)
	require.Equal(t, baseC(), c)

	_, err = matrix.Product(baseA(), baseA())
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	_, err = matrix.Product([][]int{{1, 2}, {3}}, baseB())
	require.ErrorIs(t, err, matrix.ErrRagged)

	_, err = matrix.Product(baseA(), [][]int{{1}, {2, 3}, {4}})
	require.ErrorIs(t, err, matrix.ErrRagged)

	c, err = matrix.Product(nil, nil)
	require.NoError(t, err)
	require.Empty(t, c)
}
