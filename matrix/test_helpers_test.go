// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic fixtures and utilities for the kernels.
//   • Keep every fixture freshly allocated so tests can mutate freely.

package matrix_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/intmat/matrix"
)

// hide WRAPS any Matrix to hide its concrete type from type assertions.
// Use hide{X} in tests to force non-*Dense (fallback) paths.
//
// AI-Hints:
//   - Prefer wrapping ONLY the operand you want to de-opt; keep the other one *Dense to isolate path differences.
type hide struct{ matrix.Matrix }

// baseA returns the 2×3 left operand of the reference product.
func baseA() [][]int {
	return [][]int{
		{1, 2, 3},
		{4, 5, 6},
	}
}

// baseB returns the 3×2 right operand of the reference product.
func baseB() [][]int {
	return [][]int{
		{7, 8},
		{9, 10},
		{11, 12},
	}
}

// baseC returns baseA × baseB.
func baseC() [][]int {
	return [][]int{
		{58, 64},
		{139, 154},
	}
}

// MustZeros ALLOCATES an r×c *Dense or fails the test (fatal on error).
func MustZeros(t testing.TB, r, c int) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDense(r, c)
	if err != nil {
		t.Fatalf("NewDense(%d,%d): %v", r, c, err)
	}

	return m
}

// MustFrom BUILDS a *Dense from a nested literal or fails the test.
func MustFrom(t testing.TB, rows [][]int) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDenseFrom(rows)
	if err != nil {
		t.Fatalf("NewDenseFrom: %v", err)
	}

	return m
}

// MustIdentity RETURNS I_n or fails the test.
func MustIdentity(t testing.TB, n int) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewIdentity(n)
	if err != nil {
		t.Fatalf("NewIdentity(%d): %v", n, err)
	}

	return m
}

// MustAt READS m[i,j] or fails the test.
func MustAt(t testing.TB, m matrix.Matrix, i, j int) int {
	t.Helper()
	v, err := m.At(i, j)
	if err != nil {
		t.Fatalf("At(%d,%d): %v", i, j, err)
	}

	return v
}

// MustSet WRITES v to m[i,j] or fails the test.
func MustSet(t testing.TB, m matrix.Matrix, i, j, v int) {
	t.Helper()
	if err := m.Set(i, j, v); err != nil {
		t.Fatalf("Set(%d,%d,%v): %v", i, j, v, err)
	}
}

// CompareExact ASSERTS strict equality between matrix and 2D literal.
// Fails with the exact mismatch location.
func CompareExact(t testing.TB, want [][]int, m matrix.Matrix) {
	t.Helper()
	r, c := m.Rows(), m.Cols()
	if len(want) != r {
		t.Fatalf("CompareExact: Rows = %d; want %d", r, len(want))
	}
	var i, j, v int // loop iterators
	for i = 0; i < r; i++ {
		if len(want[i]) != c {
			t.Fatalf("CompareExact: Cols[%d] = %d; want %d", i, c, len(want[i]))
		}
		for j = 0; j < c; j++ {
			if v = MustAt(t, m, i, j); v != want[i][j] {
				t.Fatalf("m[%d,%d]=%v; want %v", i, j, v, want[i][j])
			}
		}
	}
}

// RandomFill FILLS a Matrix with deterministic values in [-span, span] by seed.
// Small spans keep every product of the randomized tests far from overflow.
func RandomFill(t testing.TB, m matrix.Matrix, seed int64, span int) {
	t.Helper()
	rng := rand.New(rand.NewSource(seed))
	r, c := m.Rows(), m.Cols()
	var i, j int
	for i = 0; i < r; i++ {
		for j = 0; j < c; j++ {
			MustSet(t, m, i, j, rng.Intn(2*span+1)-span)
		}
	}
}

// RandDense RETURNS a new r×c Dense filled by RandomFill.
func RandDense(t testing.TB, r, c int, seed int64, span int) *matrix.Dense {
	t.Helper()
	m := MustZeros(t, r, c)
	RandomFill(t, m, seed, span)

	return m
}

// scaleRows returns k·rows as a fresh table.
func scaleRows(rows [][]int, k int) [][]int {
	out := make([][]int, len(rows))
	for i, row := range rows {
		out[i] = make([]int, len(row))
		for j, v := range row {
			out[i][j] = k * v
		}
	}

	return out
}

// transposeRows returns rowsᵗ for a rectangular table.
func transposeRows(rows [][]int) [][]int {
	if len(rows) == 0 {
		return [][]int{}
	}
	out := make([][]int, len(rows[0]))
	for j := range out {
		out[j] = make([]int, len(rows))
		for i := range rows {
			out[j][i] = rows[i][j]
		}
	}

	return out
}

// identityRows returns the n×n identity as a nested table.
func identityRows(n int) [][]int {
	out := matrix.NewZerosLike(n, n)
	for i := 0; i < n; i++ {
		out[i][i] = 1
	}

	return out
}

// filledRows returns an r×c table with every cell set to v.
func filledRows(r, c, v int) [][]int {
	out := matrix.NewZerosLike(r, c)
	for i := range out {
		for j := range out[i] {
			out[i][j] = v
		}
	}

	return out
}

// cloneRows deep-copies a nested table.
func cloneRows(rows [][]int) [][]int {
	out := make([][]int, len(rows))
	for i, row := range rows {
		out[i] = append([]int(nil), row...)
	}

	return out
}
