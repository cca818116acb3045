// Package integers provides the integer structures of the library:
//
//   - Integers (ℤ): ordered ring of arbitrary-precision integers; casts to ℚ and ℝ.
//   - EvenIntegers (2ℤ): ordered rng without multiplicative identity; casts to ℤ.
//   - ModuloRingOf(n) (ℤ/nℤ): finite ring, one cached instance per n.
//   - ModuloFieldOf(p) (ℤ/pℤ): finite field for prime p; reciprocals by the
//     extended Euclidean algorithm.
//
// Errors:
//
//   - ErrInvalidModulus  modulus below 2
//   - ErrNotPrime        ModuloFieldOf with a composite modulus
//   - ErrNotEven         Even with an odd value
//   - ErrSyntax          Parse with a non-integer string
//
// Complexity:
//
//   - ModuloFieldElement.Reciprocal: O(log p)
//   - ModuloFieldOf: O(1) after the first call for p; the first call runs a primality test
package integers

import "errors"

var (
	ErrInvalidModulus = errors.New("integers: modulus must be at least 2")
	ErrNotPrime       = errors.New("integers: modulus is not prime")
	ErrNotEven        = errors.New("integers: value is not even")
	ErrSyntax         = errors.New("integers: invalid syntax")
)
