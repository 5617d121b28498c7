// SPDX-License-Identifier: MIT
// Package matrix: public API facades.
//
// Purpose:
//   - Provide thin, well-documented entry points for common tasks across the package.
//   - Avoid any logic duplication; each facade delegates to the canonical implementation.
//
// Determinism & Policy:
//   - Facades never change the loop orders or overflow policy of underlying kernels.
//   - Validation is performed in the kernels; facades only compose or forward.

package matrix

// ---------- Constructors & Utilities (O(1) alloc + O(rc) zeroing by runtime) ----------

// NewZeros returns a new zero-initialized *Dense of size rows×cols.
// It is a thin alias of NewDense with an intention-revealing name.
//
// Note: Returns (*Dense, error) to surface ErrInvalidDimensions.
func NewZeros(rows, cols int) (*Dense, error) {
	return NewDense(rows, cols)
}

// NewIdentity returns I_n (n×n identity; ones on the diagonal, zeros elsewhere).
// Determinism: fixed i-loop; single write per diagonal cell.
// Complexity: O(n^2) zeroing (constructor) + O(n) writes on the diagonal.
func NewIdentity(n int) (*Dense, error) {
	I, err := NewDense(n, n)
	if err != nil {
		return nil, err // propagate constructor error unchanged
	}
	for i := 0; i < n; i++ {
		I.data[i*n+i] = 1
	}

	return I, nil
}

// MustDense is NewDenseFrom for literals known to be rectangular; it panics
// on ragged input (programmer error), like regexp.MustCompile.
func MustDense(rows [][]int) *Dense {
	d, err := NewDenseFrom(rows)
	if err != nil {
		panic(err)
	}

	return d
}

// NewZerosLike allocates a nested rows×cols table of zeros: the conforming
// output container for Multiply(a, b, c, rows, n, cols).
// Negative extents yield an empty table.
// Complexity: O(rows*cols).
func NewZerosLike(rows, cols int) [][]int {
	if rows < 0 || cols < 0 {
		return [][]int{}
	}
	out := make([][]int, rows)
	for i := range out {
		out[i] = make([]int, cols)
	}

	return out
}

// Product multiplies two nested tables with inferred extents and returns a
// freshly allocated result.
//
// Implementation:
//   - Stage 1: NewDenseFrom both operands (rejects ragged rows).
//   - Stage 2: Mul and export with ToRows.
//
// Errors: ErrRagged, ErrDimensionMismatch, ErrOverflow (under WithOverflowCheck).
func Product(a, b [][]int, opts ...Option) ([][]int, error) {
	da, err := NewDenseFrom(a)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	db, err := NewDenseFrom(b)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	res, err := Mul(da, db, opts...)
	if err != nil {
		return nil, err
	}

	return res.ToRows(), nil
}
