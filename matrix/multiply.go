// SPDX-License-Identifier: MIT

// Package matrix - nested-slice entry points.
//
// Purpose:
//   - Multiply: the validated form of multiply(A, B, C, m, n, p). Every
//     container is checked against the declared triple before C is touched.
//   - MultiplyUnchecked: the legacy form. It trusts (m, n, p) at face value;
//     bad metadata surfaces as a runtime index-out-of-range panic and surplus
//     cells of C keep their old values.
//
// Determinism:
//   - Both forms share the i→j→k loop and produce identical C on valid input.

package matrix

// Multiply computes C[i][j] = Σ_k A[i][k]·B[k][j] for i<m, j<p into the
// caller-allocated container c.
//
// Implementation:
//   - Stage 1: ValidateMultiply (dims → A → B → C); nothing is written on failure.
//   - Stage 2: i→j→k triple loop; each C[i][j] is assigned once its sum completes.
//
// Behavior highlights:
//   - A and B may be larger than declared: only the leading m×n and n×p
//     submatrices are read.
//   - C must be exactly m×p; stale surplus cells are reported, not ignored.
//   - m=0 or p=0 is a no-op; n=0 writes zeros (vacuous sum).
//   - A and B are never mutated.
//
// Inputs:
//   - a: left operand, at least m rows of at least n elements.
//   - b: right operand, at least n rows of at least p elements.
//   - c: output, exactly m rows of exactly p elements.
//   - m, n, p: non-negative extents.
//   - opts: WithOverflowCheck / WithWraparound.
//
// Errors:
//   - *ShapeError wrapping ErrInvalidDimensions, ErrContainerTooSmall or
//     ErrDimensionMismatch (match with errors.Is / errors.As).
//   - ErrOverflow (only under WithOverflowCheck; C may be partially written).
//
// Complexity:
//   - Time Θ(m*n*p), Space O(1).
//
// AI-Hints:
//   - Use NewZerosLike(m, p) to allocate a conforming c.
//   - Prefer MulInto when operands are already *Dense.
func Multiply(a, b, c [][]int, m, n, p int, opts ...Option) error {
	if err := ValidateMultiply(a, b, c, m, n, p); err != nil {
		return matrixErrorf(opMultiply, err)
	}

	o := gatherOptions(opts...)
	var (
		i, j, k  int
		sum      int
		overflow bool
	)
	for i = 0; i < m; i++ {
		for j = 0; j < p; j++ {
			sum = ZeroSum
			for k = 0; k < n; k++ {
				if o.overflowCheck {
					if sum, overflow = mulAddChecked(sum, a[i][k], b[k][j]); overflow {
						return matrixErrorf(opMultiply, overflowAt(i, j))
					}
					continue
				}
				sum += a[i][k] * b[k][j]
			}
			c[i][j] = sum
		}
	}

	return nil
}

// MultiplyUnchecked is the legacy multiply(A, B, C, m, n, p): no validation,
// no error path.
//
// Behavior highlights:
//   - Declared extents beyond a container's true size panic with the Go
//     runtime's index-out-of-range error; rows finished before the fault
//     are already written.
//   - Rows/columns of c beyond m×p are left unmodified.
//   - When m or p is 0 nothing is indexed, so empty containers are accepted.
//   - Integer overflow wraps.
//
// Use only where byte-for-byte legacy behavior is the goal; new code should
// call Multiply.
//
// Complexity:
//   - Time Θ(m*n*p), Space O(1).
func MultiplyUnchecked(a, b, c [][]int, m, n, p int) {
	var i, j, k, sum int
	for i = 0; i < m; i++ {
		for j = 0; j < p; j++ {
			sum = ZeroSum
			for k = 0; k < n; k++ {
				sum += a[i][k] * b[k][j]
			}
			c[i][j] = sum
		}
	}
}
