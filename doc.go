// SPDX-License-Identifier: MIT

// Package intmat is dense integer matrix multiplication with an explicit
// contract: C[i][j] = Σ_k A[i][k]·B[k][j] over caller-supplied extents.
//
// Packages:
//
//	matrix/            Dense int matrices, the validated Multiply and the
//	                   legacy MultiplyUnchecked, Mul/MulInto over the Matrix
//	                   interface, typed shape errors, overflow policy
//	matrix/relation    algebraic laws of the product as reusable checks
//	internal/problem   YAML/JSON problem files
//	internal/config    CLI configuration (flags, INTMAT_* env, config file)
//	internal/log       zap logger with an optional rotating file sink
//	cmd/intmat         the intmat command: multiply, verify, version
//
// Quick start:
//
//	a := [][]int{{1, 2, 3}, {4, 5, 6}}
//	b := [][]int{{7, 8}, {9, 10}, {11, 12}}
//	c := matrix.NewZerosLike(2, 2)
//	if err := matrix.Multiply(a, b, c, 2, 3, 2); err != nil {
//		// *matrix.ShapeError names the operand and extent that disagree
//	}
//	// c == [[58 64] [139 154]]
package intmat
