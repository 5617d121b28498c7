// SPDX-License-Identifier: MIT

// Package matrix - Dense storage (row-major) & safe accessors.
//
// Purpose:
//   - Provide a self-describing row-major buffer: row/column counts are stored
//     next to the data, so kernels never trust caller-supplied extents.
//   - Guarantee safety at the public surface: At/Set return errors instead of panicking.
//   - Keep algorithmic determinism (fixed loop orders, no map iteration).
//
// Complexity quicksheet:
//   - NewDense: O(r*c) zero-init; At/Set: O(1); Clone: O(r*c).
//   - NewDenseFrom/NewDenseWindow/ToRows: O(r*c).

package matrix

import (
	"fmt"
	"strconv"
	"strings"
)

// ---------- error context tags ----------

const (
	ctxAt   = "At"  // method tag used in error wrappers
	ctxSet  = "Set" // method tag used in error wrappers
	ctxFrom = "NewDenseFrom"
	ctxWin  = "NewDenseWindow"
)

// ---------- Formatting literals  ----------
const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
)

// denseErrorf wraps an error with a uniform Dense context and callsite indices.
// Format: "Dense.<method>(row,col): <sentinel>"; the sentinel is preserved via %w.
// Complexity: O(1).
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a concrete row-major int matrix.
//   - r,c hold dimensions (rows, cols); either may be zero.
//   - data is a flat buffer of length r*c in row-major order (offset = i*c + j).
type Dense struct {
	r, c int   // row and column counts (>=0)
	data []int // contiguous row-major storage (len == r*c)
}

// Compile-time assertions for interface & fmt.Stringer conformance.
var (
	_ Matrix       = (*Dense)(nil) // *Dense implements our public Matrix interface
	_ fmt.Stringer = (*Dense)(nil)
)

// NewDense creates an r×c zero matrix using row-major storage.
//
// Implementation:
//   - Stage 1: validate rows>=0 && cols>=0; else ErrInvalidDimensions.
//   - Stage 2: allocate a zero-filled buffer of len rows*cols.
//
// Behavior highlights:
//   - Zero-extent shapes (0×k, k×0, 0×0) are legal: they are the natural
//     operands and results of degenerate products.
//   - No panics on user errors; returns sentinel errors.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func NewDense(rows, cols int) (*Dense, error) {
	// Validate shape.
	if rows < 0 || cols < 0 {
		return nil, fmt.Errorf("NewDense(%d,%d): %w", rows, cols, ErrInvalidDimensions)
	}

	// make() zero-fills deterministically.
	return &Dense{r: rows, c: cols, data: make([]int, rows*cols)}, nil
}

// NewDenseFrom copies a nested row-major table into a new *Dense.
//
// Implementation:
//   - Stage 1: column count is len(rows[0]) (0 for an empty table).
//   - Stage 2: every row must have exactly that length, else ErrRagged.
//   - Stage 3: copy row by row into the flat buffer.
//
// Inputs:
//   - rows: nested table; it is never retained or mutated.
//
// Errors:
//   - ErrRagged (wrapped with the first offending row index).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func NewDenseFrom(rows [][]int) (*Dense, error) {
	r := len(rows)
	c := 0
	if r > 0 {
		c = len(rows[0])
	}

	out := &Dense{r: r, c: c, data: make([]int, r*c)}
	var i int
	for i = 0; i < r; i++ {
		if len(rows[i]) != c {
			return nil, fmt.Errorf("%s: row %d has %d elements, want %d: %w",
				ctxFrom, i, len(rows[i]), c, ErrRagged)
		}
		copy(out.data[i*c:(i+1)*c], rows[i])
	}

	return out, nil
}

// NewDenseWindow copies the top-left rows×cols window of a nested table into
// a new rows×cols *Dense. Unlike NewDenseFrom the shape is given, not inferred,
// so an empty table still yields a 0×cols or rows×0 matrix.
//
// Errors:
//   - ErrInvalidDimensions if rows<0 or cols<0.
//   - ErrContainerTooSmall if the table has fewer than rows rows or any of the
//     first rows rows is shorter than cols.
//
// Complexity:
//   - Time O(rows*cols), Space O(rows*cols).
func NewDenseWindow(t [][]int, rows, cols int) (*Dense, error) {
	out, err := NewDense(rows, cols)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ctxWin, err)
	}
	if len(t) < rows {
		return nil, fmt.Errorf("%s: table has %d rows, want %d: %w",
			ctxWin, len(t), rows, ErrContainerTooSmall)
	}

	var i int
	for i = 0; i < rows; i++ {
		if len(t[i]) < cols {
			return nil, fmt.Errorf("%s: row %d has %d elements, want %d: %w",
				ctxWin, i, len(t[i]), cols, ErrContainerTooSmall)
		}
		copy(out.data[i*cols:(i+1)*cols], t[i][:cols])
	}

	return out, nil
}

// Rows returns the row count. No side effects.
// Complexity: O(1).
func (m *Dense) Rows() int { return m.r }

// Cols returns the column count. No side effects.
// Complexity: O(1).
func (m *Dense) Cols() int { return m.c }

// Shape packs Rows() and Cols() into a single call for convenience.
// Complexity: O(1).
func (m *Dense) Shape() (rows, cols int) { return m.r, m.c }

// indexOf computes the row-major offset or returns ErrOutOfRange.
// Keep unexported; public methods (At/Set) wrap with coordinates and method name.
func (m *Dense) indexOf(row, col int) (int, error) {
	if row < 0 || row >= m.r {
		return 0, ErrOutOfRange
	}
	if col < 0 || col >= m.c {
		return 0, ErrOutOfRange
	}

	// Row-major offset: i*c + j.
	return row*m.c + col, nil
}

// At returns the value at (row, col) or ErrOutOfRange.
// Never panics on out-of-range input.
// Complexity: O(1).
func (m *Dense) At(row, col int) (int, error) {
	off, err := m.indexOf(row, col)
	if err != nil {
		return 0, denseErrorf(ctxAt, row, col, err) // wrap with context
	}

	return m.data[off], nil
}

// Set stores v at (row, col) or returns ErrOutOfRange.
// Complexity: O(1).
func (m *Dense) Set(row, col int, v int) error {
	off, err := m.indexOf(row, col)
	if err != nil {
		return denseErrorf(ctxSet, row, col, err) // wrap with context
	}
	m.data[off] = v // direct flat write

	return nil
}

// Clone returns a deep copy (new buffer, same shape).
// Returned dynamic type is *Dense.
// Complexity: O(r*c).
func (m *Dense) Clone() Matrix {
	cp := make([]int, len(m.data))
	copy(cp, m.data)

	return &Dense{r: m.r, c: m.c, data: cp}
}

// ToRows exports the matrix as a freshly allocated nested table.
// The result shares no storage with m.
//
// Determinism:
//   - Fixed i-order; each row is a copy of a contiguous data window.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func (m *Dense) ToRows() [][]int {
	out := make([][]int, m.r)
	var i int
	for i = 0; i < m.r; i++ {
		row := make([]int, m.c)
		copy(row, m.data[i*m.c:(i+1)*m.c])
		out[i] = row
	}

	return out
}

// String HUMAN-READABLE dump of rows for diagnostics.
// Not for hot paths; intended for logs, test failures and examples.
//
// Complexity:
//   - Time O(r*c), Space O(r*c) for formatting.
func (m *Dense) String() string {
	var b strings.Builder
	var i, j, base int
	for i = 0; i < m.r; i++ { // iterate rows deterministically
		b.WriteString(_fmtRowOpen) // open row
		base = i * m.c
		for j = 0; j < m.c; j++ { // iterate cols
			b.WriteString(strconv.Itoa(m.data[base+j]))
			if j+1 < m.c {
				b.WriteString(_fmtSep) // separate values with comma + space
			}
		}
		b.WriteString(_fmtRowClose) // close row
	}

	return b.String()
}
