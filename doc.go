// Package lvlath is the root of lvlath-algebra: algebraic structures,
// their elements and the operators connecting them, checked at compile
// time through generic capability interfaces.
//
// 🚀 What is lvlath-algebra?
//
//	A thread-safe library of concrete algebras sharing one vocabulary:
//		• Operators: +, -, ⋅, /, ^, × with symbols, precedence and composition
//		• Capabilities: Magma up to Field, closed under implication
//		• Structures: ℤ, 2ℤ, ℤ/nℤ, ℚ, ℝ, K₄, string concatenation
//		• Casting: lift elements along the sub-structure hierarchy
//		• Linear algebra: dense matrices, determinants, adjugates, inverses
//		• Cayley tables for any finite structure
//
// ✨ Why choose lvlath-algebra?
//
//   - Type-checked – Plus on two ℚ values is a method, not a lookup
//   - Honest partiality – 0⁻¹ is an error you can tell apart from misuse
//   - Cached structures – one ℤ/pℤ instance per modulus, safe for goroutines
//   - Configurable – ALGEBRA_* environment variables, zap logging
//
// Packages:
//
//	algebra/      — operators, capabilities, Structure, dispatch, Cayley tables
//	cast/         — sub-structure hierarchy and element casting
//	integers/     — ℤ, 2ℤ, ℤ/nℤ and the prime fields ℤ/pℤ
//	rationals/    — ℚ on math/big
//	reals/        — float64 reals with a per-field tolerance
//	klein/        — the Klein four-group
//	stringmonoid/ — strings under concatenation
//	linear/       — matrices over any ring
//	permutations/ — lexicographic permutations and signs
//	digraph/      — the small directed graph behind cast
//	config/, logging/, registry/ — ambient plumbing
//
// Quick example:
//
//	f := integers.MustModuloField(7)
//	r, _ := f.Of(3).Reciprocal() // 5, since 3⋅5 = 15 ≡ 1
//
// See examples/ for a runnable tour.
//
//	go get github.com/katalvlaran/lvlath-algebra
package lvlath
