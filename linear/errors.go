// SPDX-License-Identifier: MIT
// Package linear: sentinel error set.
// Every message is prefixed with "linear: ..." so callers can match with
// errors.Is after any amount of wrapping.

package linear

import "errors"

var (
	// ErrBadShape is returned when a requested or supplied shape is invalid
	// (no rows, no columns, ragged rows).
	ErrBadShape = errors.New("linear: invalid shape")

	// ErrOutOfRange indicates that a row or column index is outside valid bounds.
	// Public indexers (At/Set/Minor) return this, never panic.
	ErrOutOfRange = errors.New("linear: index out of range")

	// ErrDimensionMismatch indicates incompatible operand dimensions,
	// e.g. Product where a.Cols != b.Rows.
	ErrDimensionMismatch = errors.New("linear: dimension mismatch")

	// ErrNonSquare signals that a square matrix was required.
	ErrNonSquare = errors.New("linear: matrix is not square")

	// ErrSingular is the partial-operation reason for inverting a matrix
	// whose determinant is zero. It is delivered inside an *algebra.OperationError.
	ErrSingular = errors.New("linear: singular matrix")
)
