// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single, canonical source of truth for shape checks.
//  - Keep kernels minimal by delegating nil/shape/extent checks here.
//  - Return sentinels (tagged) or *ShapeError so call sites can wrap uniformly.
//
// Determinism & Performance:
//  - All checks are pure, deterministic and allocate nothing on success.
//  - Nested-container checks are O(rows) (one length read per row).
//
// Note:
//  - Each composite validator follows a fixed sequence (e.g. NotNil → Shape).
//  - Container checks run in operand order A → B → C, rows before columns, so
//    the first reported problem is stable for a given input.

package matrix

import "fmt"

// validatorErrorf wraps an underlying error with the given validator tag.
// Used internally to maintain consistent labeling of sentinel violations.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil – Ensures the matrix reference is non-nil.
// A typed nil *Dense stored in the interface is treated as nil as well.
//
// Returns ErrNilMatrix if m == nil.
// Complexity: O(1).
func ValidateNotNil(m Matrix) error {
	if m == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}
	if d, ok := m.(*Dense); ok && d == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateDims – Ensures the declared triple (m, n, p) is non-negative.
// Zero is legal for every component: m=0 or p=0 yields an empty product,
// n=0 yields an all-zero product.
//
// Errors: *ShapeError wrapping ErrInvalidDimensions.
// Complexity: O(1).
func ValidateDims(m, n, p int) error {
	if m < 0 {
		return newShapeError(ErrInvalidDimensions, OperandA, AxisRows, noRow, m, 0)
	}
	if n < 0 {
		return newShapeError(ErrInvalidDimensions, OperandA, AxisCols, noRow, n, 0)
	}
	if p < 0 {
		return newShapeError(ErrInvalidDimensions, OperandB, AxisCols, noRow, p, 0)
	}

	return nil
}

// ValidateContainer – Checks a nested operand against its declared extent.
//
// Implementation:
//   - Stage 1: len(rows) < declRows → ErrContainerTooSmall (row count).
//   - Stage 2: each of the first declRows rows must hold ≥ declCols elements,
//     else ErrContainerTooSmall naming the row.
//   - Stage 3 (exact only): extra rows, or rows longer than declCols, are
//     ErrDimensionMismatch. Exact mode is used for the output container,
//     where surplus cells would silently keep stale values.
//
// Inputs:
//   - operand: OperandA/OperandB/OperandC (for the report).
//   - rows: nested container (may be nil when declRows == 0).
//   - declRows, declCols: extent implied by (m, n, p); assumed non-negative.
//   - exact: reject surplus as well as shortage.
//
// Errors: *ShapeError wrapping ErrContainerTooSmall or ErrDimensionMismatch.
// Complexity: O(len(rows)).
func ValidateContainer(operand string, rows [][]int, declRows, declCols int, exact bool) error {
	if len(rows) < declRows {
		return newShapeError(ErrContainerTooSmall, operand, AxisRows, noRow, declRows, len(rows))
	}

	var i int
	for i = 0; i < declRows; i++ {
		if len(rows[i]) < declCols {
			return newShapeError(ErrContainerTooSmall, operand, AxisCols, i, declCols, len(rows[i]))
		}
	}
	if !exact {
		return nil
	}

	if len(rows) > declRows {
		return newShapeError(ErrDimensionMismatch, operand, AxisRows, noRow, declRows, len(rows))
	}
	for i = 0; i < declRows; i++ {
		if len(rows[i]) > declCols {
			return newShapeError(ErrDimensionMismatch, operand, AxisCols, i, declCols, len(rows[i]))
		}
	}

	return nil
}

// ValidateMultiply – Composite check for the nested entry point:
// Dims → A (m×n, at least) → B (n×p, at least) → C (exactly m×p).
//
// Errors: *ShapeError (ErrInvalidDimensions, ErrContainerTooSmall, ErrDimensionMismatch).
// Complexity: O(m + n).
func ValidateMultiply(a, b, c [][]int, m, n, p int) error {
	if err := ValidateDims(m, n, p); err != nil {
		return err
	}
	if err := ValidateContainer(OperandA, a, m, n, false); err != nil {
		return err
	}
	if err := ValidateContainer(OperandB, b, n, p, false); err != nil {
		return err
	}

	return ValidateContainer(OperandC, c, m, p, true)
}

// ValidateMulCompatible – Ensures a.Cols == b.Rows, inputs non-nil.
//
// Errors: ErrNilMatrix, ErrDimensionMismatch.
// Complexity: O(1).
func ValidateMulCompatible(a, b Matrix) error {
	if err := ValidateNotNil(a); err != nil {
		return validatorErrorf("ValidateMulCompatible", err)
	}
	if err := ValidateNotNil(b); err != nil {
		return validatorErrorf("ValidateMulCompatible", err)
	}
	if a.Cols() != b.Rows() {
		return validatorErrorf("ValidateMulCompatible",
			newShapeError(ErrDimensionMismatch, OperandB, AxisRows, noRow, a.Cols(), b.Rows()))
	}

	return nil
}

// ValidateMulOutput – Composite: MulCompatible(a, b) → NotNil(dst) →
// dst shape == (a.Rows, b.Cols) → dst does not alias a or b.
//
// Errors: ErrNilMatrix, ErrDimensionMismatch, ErrAliasedOutput.
// Complexity: O(1).
func ValidateMulOutput(dst *Dense, a, b Matrix) error {
	if err := ValidateMulCompatible(a, b); err != nil {
		return err
	}
	if dst == nil {
		return validatorErrorf("ValidateMulOutput", ErrNilMatrix)
	}
	if dst.r != a.Rows() {
		return validatorErrorf("ValidateMulOutput",
			newShapeError(ErrDimensionMismatch, OperandC, AxisRows, noRow, a.Rows(), dst.r))
	}
	if dst.c != b.Cols() {
		return validatorErrorf("ValidateMulOutput",
			newShapeError(ErrDimensionMismatch, OperandC, AxisCols, noRow, b.Cols(), dst.c))
	}
	if aliases(dst, a) || aliases(dst, b) {
		return validatorErrorf("ValidateMulOutput", ErrAliasedOutput)
	}

	return nil
}

// aliases reports whether dst and m are the same *Dense or share a buffer.
// Non-Dense operands cannot be inspected and are assumed disjoint.
func aliases(dst *Dense, m Matrix) bool {
	d, ok := m.(*Dense)
	if !ok {
		return false
	}
	if d == dst {
		return true
	}
	if len(d.data) == 0 || len(dst.data) == 0 {
		return false
	}

	return &d.data[0] == &dst.data[0]
}
