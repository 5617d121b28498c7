// SPDX-License-Identifier: MIT
// Package matrix provides the product kernels over any Matrix implementation
// plus the few companions the algebraic laws of the product are stated in
// (transpose, integer scaling, negation, equality). All functions perform
// strict fail-fast validation and return clear errors on dimension mismatches.
//
// Purpose:
//   - Declare canonical kernels used across the package (Mul, MulInto, Transpose, Scale).
//   - Define operation tags and shared constants for determinism and error reporting.
//
// Notes:
//   - All kernels use central validators and return sentinels wrapped via matrixErrorf.
//   - Every product kernel uses the same i→j→k order: C[i][j] is computed as a
//     full inner sum and then assigned, never accumulated onto prior content.

package matrix

import (
	"fmt"
	"math"
)

// ZeroSum is the initial value of every inner product.
const ZeroSum = 0

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opMul       = "Mul"
	opMulInto   = "MulInto"
	opMultiply  = "Multiply"
	opTranspose = "Transpose"
	opScale     = "Scale"
)

// matrixErrorf wraps err with an operation tag, preserving the original error via %w.
// Use only when err != nil to avoid creating a non-nil wrapper around a nil cause.
//
// AI-Hints:
//   - Always gate calls with `if err != nil { return nil, matrixErrorf(tag, err) }`.
//   - Keep `tag` to the canonical constants to simplify log/search pipelines.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// overflowAt builds the overflow error for cell (i, j).
func overflowAt(i, j int) error {
	return fmt.Errorf("cell (%d,%d): %w", i, j, ErrOverflow)
}

// mulAddChecked returns acc + x*y and whether any step left the int range.
// Complexity: O(1).
func mulAddChecked(acc, x, y int) (int, bool) {
	var prod int
	if x != 0 && y != 0 {
		if (x == -1 && y == math.MinInt) || (y == -1 && x == math.MinInt) {
			return acc + x*y, true
		}
		prod = x * y
		if prod/y != x {
			return acc + prod, true
		}
	}
	sum := acc + prod
	if (acc > 0 && prod > 0 && sum < 0) || (acc < 0 && prod < 0 && sum >= 0) {
		return sum, true
	}

	return sum, false
}

// Mul performs standard matrix multiplication C = A × B into a new *Dense.
//
// Implementation:
//   - Stage 1: Validate A,B (not nil) and inner dimensions (A.Cols == B.Rows).
//   - Stage 2: Allocate C (A.Rows × B.Cols) and delegate to the shared kernel.
//
// Inputs:
//   - A: left matrix with shape (m × n).
//   - B: right matrix with shape (n × p).
//   - opts: WithOverflowCheck / WithWraparound.
//
// Returns:
//   - *Dense: new C with shape (m × p); zero-extent shapes are legal.
//
// Errors:
//   - ErrNilMatrix (nil input), ErrDimensionMismatch (inner mismatch),
//     ErrOverflow (only under WithOverflowCheck).
//
// Complexity:
//   - Time Θ(m*n*p), Space Θ(m*p) for the result.
func Mul(a, b Matrix, opts ...Option) (*Dense, error) {
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	res, err := NewDense(a.Rows(), b.Cols())
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	if err = mulKernel(res, a, b, gatherOptions(opts...)); err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	return res, nil
}

// MulInto computes dst = A × B into a caller-allocated destination.
//
// Implementation:
//   - Stage 1: ValidateMulOutput: A,B compatible; dst is exactly A.Rows × B.Cols
//     and does not share storage with A or B.
//   - Stage 2: run the shared kernel; every dst cell is overwritten.
//
// Behavior highlights:
//   - Prior dst content is never read.
//   - A and B are never mutated.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch, ErrAliasedOutput, ErrOverflow.
//
// Complexity:
//   - Time Θ(m*n*p), Space O(1).
func MulInto(dst *Dense, a, b Matrix, opts ...Option) error {
	if err := ValidateMulOutput(dst, a, b); err != nil {
		return matrixErrorf(opMulInto, err)
	}
	if err := mulKernel(dst, a, b, gatherOptions(opts...)); err != nil {
		return matrixErrorf(opMulInto, err)
	}

	return nil
}

// mulKernel is the shared i→j→k triple loop. Shapes are already validated.
// Fast path when both operands are *Dense (flat row-major strides); otherwise
// a generic At-based loop with the same order.
func mulKernel(dst *Dense, a, b Matrix, o Options) error {
	m, n, p := a.Rows(), a.Cols(), b.Cols()
	var (
		i, j, k  int
		sum      int
		overflow bool
	)

	// Fast-path for two Dense matrices
	if da, okA := a.(*Dense); okA {
		if db, okB := b.(*Dense); okB {
			// da.data layout: i*n + k; db.data layout: k*p + j
			var rowA int
			for i = 0; i < m; i++ {
				rowA = i * n
				for j = 0; j < p; j++ {
					sum = ZeroSum
					for k = 0; k < n; k++ {
						if o.overflowCheck {
							if sum, overflow = mulAddChecked(sum, da.data[rowA+k], db.data[k*p+j]); overflow {
								return overflowAt(i, j)
							}
							continue
						}
						sum += da.data[rowA+k] * db.data[k*p+j]
					}
					dst.data[i*p+j] = sum // assign, never accumulate
				}
			}

			return nil
		}
	}

	// Fallback: generic interface triple-loop (i-j-k)
	var av, bv int
	var err error
	for i = 0; i < m; i++ {
		for j = 0; j < p; j++ {
			sum = ZeroSum
			for k = 0; k < n; k++ {
				if av, err = a.At(i, k); err != nil {
					return fmt.Errorf("At(%d,%d): %w", i, k, err)
				}
				if bv, err = b.At(k, j); err != nil {
					return fmt.Errorf("At(%d,%d): %w", k, j, err)
				}
				if o.overflowCheck {
					if sum, overflow = mulAddChecked(sum, av, bv); overflow {
						return overflowAt(i, j)
					}
					continue
				}
				sum += av * bv
			}
			dst.data[i*p+j] = sum
		}
	}

	return nil
}

// Transpose returns a new matrix with rows and columns swapped (mᵀ).
// The original matrix is never mutated.
//
// Implementation:
//   - Stage 1: ValidateNotNil(m). Allocate Dense(cols, rows).
//   - Stage 2: If m is *Dense, use flat index mapping; else generic i→j loop.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func Transpose(m Matrix) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}
	r, c := m.Rows(), m.Cols()
	res, err := NewDense(c, r)
	if err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}

	var i, j int
	if d, ok := m.(*Dense); ok {
		for i = 0; i < r; i++ {
			for j = 0; j < c; j++ {
				res.data[j*r+i] = d.data[i*c+j]
			}
		}

		return res, nil
	}

	var v int
	for i = 0; i < r; i++ {
		for j = 0; j < c; j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, matrixErrorf(opTranspose, err)
			}
			res.data[j*r+i] = v
		}
	}

	return res, nil
}

// Scale returns k·m as a new *Dense; m is not mutated.
// Wraparound applies to each product (no overflow policy here).
// Complexity: O(r*c).
func Scale(m Matrix, k int) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opScale, err)
	}
	r, c := m.Rows(), m.Cols()
	res, err := NewDense(r, c)
	if err != nil {
		return nil, matrixErrorf(opScale, err)
	}

	if d, ok := m.(*Dense); ok {
		for idx, v := range d.data {
			res.data[idx] = k * v
		}

		return res, nil
	}

	var i, j, v int
	for i = 0; i < r; i++ {
		for j = 0; j < c; j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, matrixErrorf(opScale, err)
			}
			res.data[i*c+j] = k * v
		}
	}

	return res, nil
}

// Negate returns −m; shorthand for Scale(m, -1).
func Negate(m Matrix) (*Dense, error) { return Scale(m, -1) }

// Equal reports whether a and b have the same shape and identical entries.
// Nil operands are equal only to each other.
// Complexity: O(r*c).
func Equal(a, b Matrix) bool {
	_, _, differ := FirstDiff(a, b)

	return !differ
}

// FirstDiff returns the first cell (row-major order) where a and b differ.
// A shape mismatch reports (-1, -1, true); a single nil operand likewise.
// Complexity: O(r*c).
func FirstDiff(a, b Matrix) (row, col int, differ bool) {
	aNil, bNil := ValidateNotNil(a) != nil, ValidateNotNil(b) != nil
	if aNil || bNil {
		return -1, -1, aNil != bNil
	}
	if a.Rows() != b.Rows() || a.Cols() != b.Cols() {
		return -1, -1, true
	}

	var i, j, av, bv int
	var errA, errB error
	for i = 0; i < a.Rows(); i++ {
		for j = 0; j < a.Cols(); j++ {
			av, errA = a.At(i, j)
			bv, errB = b.At(i, j)
			if errA != nil || errB != nil || av != bv {
				return i, j, true
			}
		}
	}

	return -1, -1, false
}
