// SPDX-License-Identifier: MIT

// Package matrix multiplies dense integer matrices.
//
// The matrix package provides:
//
//   - Multiply(A, B, C, m, n, p): the product of an m×n and an n×p matrix,
//     given as nested [][]int, written into a caller-allocated m×p C. Every
//     container is validated against (m, n, p) first; mismatches come back
//     as a *ShapeError that says which operand, which axis and by how much.
//   - MultiplyUnchecked: the same loop without validation, for callers that
//     must reproduce the historical trust-the-caller contract.
//   - Dense, a self-describing row-major matrix, with Mul (allocating) and
//     MulInto (caller-allocated output) over the Matrix interface.
//   - Transpose, Scale, Negate, NewIdentity and Equal: the companions the
//     algebraic laws of the product are phrased in.
//
// Arithmetic is native int with two's-complement wraparound unless
// WithOverflowCheck is passed. Zero extents are legal: an m×0 by 0×p product
// is the m×p zero matrix.
//
// All operations are synchronous and hold no locks. Calls on disjoint
// operands may run concurrently; a shared output needs external
// synchronization.
//
// See the examples in this package and matrix/relation for the metamorphic
// laws used to test it.
package matrix
