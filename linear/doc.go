// SPDX-License-Identifier: MIT
// Package linear provides dense matrices over arbitrary algebraic
// structures and the classic derived algorithms on them.
//
// What:
//
//   - Dense[E]: row-major r×c matrix whose entries all share one structure.
//   - Determinant: Gaussian elimination with partial pivoting (division rings).
//   - DeterminantLeibniz: permutation expansion using Algorithm L signs (rngs).
//   - Adjugate: transpose of the signed cofactor matrix (rings).
//   - Inverse: adj(m) / det(m) (division rings); singular → partial error.
//   - Identity, Product, Sum, Equal, Transpose, Minor.
//
// Why:
//
//   - The algorithms only use the capability interfaces, so the same code
//     runs over ℚ, ℤ/pℤ, ℝ and ℤ.
//   - Matrices target small n; nothing here is tuned for large inputs.
//
// Errors:
//
//   - ErrBadShape, ErrOutOfRange, ErrDimensionMismatch, ErrNonSquare
//   - algebra.ErrStructureMismatch for entries from different structures
//   - Inverse of a singular matrix: *algebra.OperationError with reason ErrSingular
//
// Complexity:
//
//   - Determinant: O(n³); DeterminantLeibniz: O(n·n!); Adjugate: n² minors
package linear
