// Package algebra is the capability framework for abstract-algebra
// structures: magma → semigroup → monoid → group → rng → ring →
// division ring → field.
//
// What:
//
//   - Structure and Element: a named algebraic system and its immutable
//     values. Two elements are operable together only when they report the
//     identical Structure instance.
//   - Capability interfaces (MagmaElement, AdditiveGroupElement, RingElement,
//     FieldElement, ...) parameterized by the element type itself, so each
//     operation returns exactly the implementing type.
//   - Capability values (Magma ... Field, Ordered) with Implies/Closure,
//     and OperatorsFor, which derives the supported operators from them.
//   - Reified operators (BinaryOperator, UnaryOperator, ComparisonOperator,
//     IntOperator) with Stringify, AndThen/Compose, and a total order
//     (Compare) used by the deterministic operator Set.
//   - Generic application: ApplyBinary, ApplyUnary, Test, ApplyInt.
//   - Derived operations: Pow (square-and-multiply), Scale (double-and-add),
//     Minus, DividedBy, Square.
//   - Cardinality (finite, ℵ₀, ℵ₁) and CayleyTable for finite structures.
//
// Why:
//
//   - A structure advertises its operators as data, so generic harnesses
//     can enumerate and apply them without knowing the element type.
//   - Partiality is data too: PartialOperators / IsPartialOperator name the
//     operators that may fail for particular operands.
//
// Errors:
//
//   - ErrStructureMismatch  operands from different structures, failed casts
//   - ErrNoSuchOperator     operator not declared by the structure
//   - ErrPartialOperation   supported but undefined for this operand, refined
//     by ErrNotInvertible, ErrZeroExponent, ErrNegativeExponent
//   - ErrNotFinite, ErrTooLarge  CayleyTable preconditions
//
// Defects (a failed internal invariant) panic.
//
// Complexity:
//
//   - Pow, Scale:   O(log |n|) operations
//   - CayleyTable:  O(|S|²) operations
//   - Set building: O(k log k) for k operators
package algebra
