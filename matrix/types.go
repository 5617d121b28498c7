// SPDX-License-Identifier: MIT

// Package matrix: domain types shared by the kernels.
// This file contains ONLY the public Matrix interface; errors and options
// live in dedicated files (errors.go, options.go).
package matrix

// Matrix represents a two-dimensional mutable array of int values.
// *Dense is the canonical implementation; kernels take a fast path on it and
// fall back to At/Set for any other implementation.
//
// Complexity notes: all methods are expected O(1) except Clone (O(r*c)).
type Matrix interface {
	// Rows returns the number of rows in the matrix.
	// Complexity: O(1).
	Rows() int

	// Cols returns the number of columns in the matrix.
	// Complexity: O(1).
	Cols() int

	// At retrieves the element at position (i, j).
	// Returns ErrOutOfRange if i<0, i>=Rows(), j<0 or j>=Cols().
	// Complexity: O(1).
	At(i, j int) (int, error)

	// Set assigns the value v at position (i, j).
	// Returns ErrOutOfRange if indices are invalid.
	// Complexity: O(1).
	Set(i, j int, v int) error

	// Clone returns a deep copy of the matrix.
	// The returned Matrix is independent of the original.
	// Complexity: O(rows*cols).
	Clone() Matrix
}
