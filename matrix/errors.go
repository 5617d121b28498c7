// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set and the typed shape error.
// All kernels MUST return these sentinels (directly or wrapped with %w) and
// tests MUST check them via errors.Is. No exported function panics on
// user-triggered conditions; MultiplyUnchecked is the single documented
// exception and exists only for legacy-compatibility callers.

package matrix

import (
	"errors"
	"fmt"
)

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for consistency and to allow
// easy grepping across logs. Context (operation tag, operand, coordinates)
// is attached with fmt.Errorf("ctx: %w", ErrX) or *ShapeError; callers match
// with errors.Is either way.
//
// ERROR PRIORITY (documented, enforced in tests):
// dims negative -> nil operand -> container too small -> dimension mismatch
// -> aliasing -> arithmetic overflow.

var (
	// ErrInvalidDimensions indicates that a requested or declared extent is negative.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be >= 0")

	// ErrDimensionMismatch indicates incompatible dimensions between operands,
	// e.g. Mul where a.Cols != b.Rows, or an output whose extent exceeds m×p.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrContainerTooSmall indicates that an operand holds fewer rows or
	// elements than the declared (m, n, p) require.
	ErrContainerTooSmall = errors.New("matrix: container too small")

	// ErrOutOfRange indicates that an index (row or column) is outside valid bounds.
	// Public indexers (At/Set) MUST return this, not panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrNilMatrix indicates that a nil Matrix (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil matrix")

	// ErrRagged signals nested input whose rows do not share one length.
	ErrRagged = errors.New("matrix: ragged rows")

	// ErrAliasedOutput signals that the destination shares storage with an operand.
	ErrAliasedOutput = errors.New("matrix: output aliases an operand")

	// ErrOverflow is returned under WithOverflowCheck when a product or a
	// partial sum leaves the int range.
	ErrOverflow = errors.New("matrix: integer overflow")
)

// Operand names used in ShapeError.
const (
	OperandA = "A"
	OperandB = "B"
	OperandC = "C"
)

// Axis names used in ShapeError.
const (
	AxisRows = "rows"
	AxisCols = "cols"
)

// noRow marks a ShapeError that concerns the row count rather than one row.
const noRow = -1

// ShapeError reports which operand disagreed with the declared (m, n, p)
// and by how much. Kind is one of ErrContainerTooSmall, ErrDimensionMismatch
// or ErrInvalidDimensions; errors.Is(err, Kind) holds.
type ShapeError struct {
	Operand  string // OperandA, OperandB or OperandC
	Axis     string // AxisRows or AxisCols
	Row      int    // offending row for AxisCols, -1 otherwise
	Declared int    // extent implied by (m, n, p)
	Actual   int    // extent found in the container
	Kind     error  // sentinel
}

func (e *ShapeError) Error() string {
	if e.Row >= 0 {
		return fmt.Sprintf("%s: operand %s row %d: declared %s %d, got %d",
			e.Kind, e.Operand, e.Row, e.Axis, e.Declared, e.Actual)
	}

	return fmt.Sprintf("%s: operand %s: declared %s %d, got %d",
		e.Kind, e.Operand, e.Axis, e.Declared, e.Actual)
}

// Unwrap exposes the sentinel to errors.Is.
func (e *ShapeError) Unwrap() error { return e.Kind }

// newShapeError builds a ShapeError; row < 0 means "row count".
func newShapeError(kind error, operand, axis string, row, declared, actual int) *ShapeError {
	return &ShapeError{
		Operand:  operand,
		Axis:     axis,
		Row:      row,
		Declared: declared,
		Actual:   actual,
		Kind:     kind,
	}
}
