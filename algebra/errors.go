// SPDX-License-Identifier: MIT
// Package algebra: sentinel and typed errors.
//
// Three failure classes are kept apart:
//
//   - structural: operands from different structure instances, or a cast
//     with no path in the ancestor graph (ErrStructureMismatch);
//   - unsupported: the structure never declares the operator (ErrNoSuchOperator);
//   - partial: a supported operator is undefined for a particular operand
//     (ErrPartialOperation, refined by a reason such as ErrNotInvertible).
//
// Defects (a violated construction-time precondition, a cycle in the ancestor
// graph found during traversal) panic instead of returning.

package algebra

import (
	"errors"
	"fmt"
)

var (
	// ErrStructureMismatch reports operands that belong to different structure instances.
	ErrStructureMismatch = errors.New("algebra: structure mismatch")

	// ErrNotASubStructure reports a cast with no path from the source structure to the target.
	ErrNotASubStructure = errors.New("algebra: not a sub-structure")

	// ErrNoSuchOperator reports an operator the structure does not declare as supported.
	ErrNoSuchOperator = errors.New("algebra: operator not supported")

	// ErrPartialOperation is the umbrella for supported-but-undefined operations.
	ErrPartialOperation = errors.New("algebra: partial operation failed")

	// ErrNotInvertible reports an element without a multiplicative inverse.
	ErrNotInvertible = errors.New("algebra: element is not invertible")

	// ErrZeroExponent reports x⁰ in a structure without an identity.
	ErrZeroExponent = errors.New("algebra: zero exponent requires an identity element")

	// ErrNegativeExponent reports x⁻ⁿ in a structure without inverses.
	ErrNegativeExponent = errors.New("algebra: negative exponent requires inverses")

	// ErrNotFinite reports an operation that needs a finite structure.
	ErrNotFinite = errors.New("algebra: structure is not finite")

	// ErrTooLarge reports a finite structure above the configured size limit.
	ErrTooLarge = errors.New("algebra: structure too large")

	// ErrInvalidElement reports a value that cannot be an element of the structure.
	ErrInvalidElement = errors.New("algebra: invalid element")
)

// StructureMismatchError names the two structures that were mixed.
type StructureMismatchError struct {
	Op          string
	Left, Right Structure
}

func (e *StructureMismatchError) Error() string {
	return fmt.Sprintf("algebra: %s: %s and %s are different structures", e.Op, e.Left, e.Right)
}

func (e *StructureMismatchError) Unwrap() error { return ErrStructureMismatch }

// UnsupportedOperatorError names the structure and the operator it lacks.
type UnsupportedOperatorError struct {
	Structure Structure
	Operator  Operator
}

func (e *UnsupportedOperatorError) Error() string {
	return fmt.Sprintf("algebra: %s does not support %s", e.Structure, e.Operator.Name())
}

func (e *UnsupportedOperatorError) Unwrap() error { return ErrNoSuchOperator }

// NotASubStructureError is returned when no cast path exists.
// It matches both ErrNotASubStructure and ErrStructureMismatch.
type NotASubStructureError struct {
	Source Structure
	Target string
}

func (e *NotASubStructureError) Error() string {
	return fmt.Sprintf("algebra: %s is not a sub-structure of %s", e.Source, e.Target)
}

func (e *NotASubStructureError) Unwrap() []error {
	return []error{ErrNotASubStructure, ErrStructureMismatch}
}

// OperationError is a partial-operation failure. Reason is one of the
// reason sentinels (ErrNotInvertible, ErrZeroExponent, ...) or a
// package-specific one; the error always matches ErrPartialOperation.
type OperationError struct {
	Op      string
	Operand string
	Reason  error
}

// NewOperationError builds a partial-operation failure for op applied to operand.
func NewOperationError(op string, operand fmt.Stringer, reason error) *OperationError {
	s := "<nil>"
	if operand != nil {
		s = operand.String()
	}
	return &OperationError{Op: op, Operand: s, Reason: reason}
}

func (e *OperationError) Error() string {
	return fmt.Sprintf("algebra: %s(%s): %v", e.Op, e.Operand, e.Reason)
}

func (e *OperationError) Unwrap() []error {
	return []error{e.Reason, ErrPartialOperation}
}

// IsPartial reports whether err is a supported-but-partial operation failure.
func IsPartial(err error) bool { return errors.Is(err, ErrPartialOperation) }

// IsStructural reports whether err is a structure mismatch (including failed casts).
func IsStructural(err error) bool { return errors.Is(err, ErrStructureMismatch) }

// IsUnsupported reports whether err is an unsupported-operator failure.
func IsUnsupported(err error) bool { return errors.Is(err, ErrNoSuchOperator) }

// algebraErrorf wraps err with an operation tag.
func algebraErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
