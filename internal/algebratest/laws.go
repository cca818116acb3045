// Package algebratest checks algebraic laws over sample elements. The checks
// are exhaustive over the samples, so keep them small: ring laws cost
// O(n³) operations for n samples.
package algebratest

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlath-algebra/algebra"
)

// Associative checks (a∘b)∘c = a∘(b∘c) for all samples.
func Associative[E algebra.AlgebraicElement[E]](t testing.TB, name string, samples []E, op func(a, b E) E) {
	t.Helper()
	for _, a := range samples {
		for _, b := range samples {
			for _, c := range samples {
				l, r := op(op(a, b), c), op(a, op(b, c))
				assert.True(t, l.Eq(r), "%s not associative for (%s, %s, %s): %s vs %s", name, a, b, c, l, r)
			}
		}
	}
}

// Commutative checks a∘b = b∘a for all samples.
func Commutative[E algebra.AlgebraicElement[E]](t testing.TB, name string, samples []E, op func(a, b E) E) {
	t.Helper()
	for _, a := range samples {
		for _, b := range samples {
			assert.True(t, op(a, b).Eq(op(b, a)), "%s not commutative for (%s, %s)", name, a, b)
		}
	}
}

// Identity checks e∘a = a∘e = a for all samples.
func Identity[E algebra.AlgebraicElement[E]](t testing.TB, name string, samples []E, e E, op func(a, b E) E) {
	t.Helper()
	for _, a := range samples {
		assert.True(t, op(e, a).Eq(a), "%s: %s is not a left identity for %s", name, e, a)
		assert.True(t, op(a, e).Eq(a), "%s: %s is not a right identity for %s", name, e, a)
	}
}

// GroupLaws checks associativity, unity and inverses of Operate.
func GroupLaws[E algebra.GroupElement[E]](t testing.TB, samples []E) {
	t.Helper()
	require.NotEmpty(t, samples)
	op := func(a, b E) E { return a.Operate(b) }
	Associative(t, "operation", samples, op)
	unity := samples[0].Unity()
	Identity(t, "operation", samples, unity, op)
	for _, a := range samples {
		assert.True(t, a.Operate(a.Inverse()).Eq(unity), "%s ∗ inverse(%s) ≠ unity", a, a)
	}
}

// AdditiveGroupLaws checks the abelian group laws of Plus, Zero and Negation.
func AdditiveGroupLaws[E algebra.AdditiveGroupElement[E]](t testing.TB, samples []E) {
	t.Helper()
	require.NotEmpty(t, samples)
	plus := func(a, b E) E { return a.Plus(b) }
	Associative(t, "addition", samples, plus)
	Commutative(t, "addition", samples, plus)
	zero := samples[0].Zero()
	Identity(t, "addition", samples, zero, plus)
	for _, a := range samples {
		assert.True(t, a.Plus(a.Negation()).Eq(zero), "%s + -%s ≠ 0", a, a)
		assert.True(t, algebra.Minus(a, a).Eq(zero), "%s - %s ≠ 0", a, a)
	}
}

// RngLaws checks the additive group, associativity of Times and both distributive laws.
func RngLaws[E algebra.RngElement[E]](t testing.TB, samples []E) {
	t.Helper()
	AdditiveGroupLaws(t, samples)
	Associative(t, "multiplication", samples, func(a, b E) E { return a.Times(b) })
	for _, a := range samples {
		for _, b := range samples {
			for _, c := range samples {
				assert.True(t, a.Times(b.Plus(c)).Eq(a.Times(b).Plus(a.Times(c))),
					"left distributivity fails for (%s, %s, %s)", a, b, c)
				assert.True(t, a.Plus(b).Times(c).Eq(a.Times(c).Plus(b.Times(c))),
					"right distributivity fails for (%s, %s, %s)", a, b, c)
			}
		}
	}
}

// RingLaws adds the multiplicative identity to RngLaws.
func RingLaws[E algebra.RingElement[E]](t testing.TB, samples []E) {
	t.Helper()
	RngLaws(t, samples)
	Identity(t, "multiplication", samples, samples[0].One(), func(a, b E) E { return a.Times(b) })
}

// FieldLaws adds commutative multiplication and reciprocals to RingLaws.
// The reciprocal of zero must be a partial-operation failure.
func FieldLaws[E algebra.FieldElement[E]](t testing.TB, samples []E) {
	t.Helper()
	RingLaws(t, samples)
	Commutative(t, "multiplication", samples, func(a, b E) E { return a.Times(b) })
	one := samples[0].One()
	for _, a := range samples {
		r, err := a.Reciprocal()
		if algebra.IsZero(a) {
			assert.True(t, algebra.IsPartial(err), "reciprocal of zero should be partial, got %v", err)
			assert.ErrorIs(t, err, algebra.ErrNotInvertible)
			continue
		}
		require.NoError(t, err, "reciprocal(%s)", a)
		assert.True(t, a.Times(r).Eq(one), "%s ⋅ %s ≠ 1", a, r)
	}
}

// PowLaws checks Pow against repeated multiplication for 1 ≤ n ≤ maxN and
// xᵐ⁺ⁿ = xᵐ ⋅ xⁿ.
func PowLaws[E algebra.MultiplicativeSemiGroupElement[E]](t testing.TB, samples []E, maxN int) {
	t.Helper()
	for _, x := range samples {
		want := x
		for n := 1; n <= maxN; n++ {
			got, err := algebra.Pow(x, n)
			require.NoError(t, err)
			assert.True(t, got.Eq(want), "%s%s: got %s, want %s", x, algebra.Superscript(n), got, want)
			want = want.Times(x)
		}
		for m := 1; m <= maxN/2; m++ {
			n := maxN - m
			xm, _ := algebra.Pow(x, m)
			xn, _ := algebra.Pow(x, n)
			xmn, _ := algebra.Pow(x, m+n)
			assert.True(t, xm.Times(xn).Eq(xmn), "%s^%d ⋅ %s^%d ≠ %s^%d", x, m, x, n, x, m+n)
		}
	}
}

// Monotone checks that a structure's operator sets contain those of every
// capability it declares.
func Monotone(t testing.TB, s algebra.Structure) {
	t.Helper()
	want := algebra.OperatorsFor(s.Capabilities()...)
	assert.True(t, s.SupportedOperators().SupersetOf(want.Binary), "%s binary operators", s)
	assert.True(t, s.SupportedUnaryOperators().SupersetOf(want.Unary), "%s unary operators", s)
	assert.True(t, s.SupportedComparisonOperators().SupersetOf(want.Comparison), "%s comparison operators", s)
	assert.True(t, s.SupportedIntOperators().SupersetOf(want.Int), "%s int operators", s)
}

// DeclaredCommutativity checks every operator the samples' structure
// declares commutative, through generic dispatch. Pairs where the operation
// fails must fail both ways round.
func DeclaredCommutativity[E algebra.AlgebraicElement[E]](t testing.TB, samples []E) {
	t.Helper()
	require.NotEmpty(t, samples)
	s := samples[0].Structure()
	for op := range s.CommutativeOperators().All() {
		for _, a := range samples {
			for _, b := range samples {
				ab, errAB := algebra.ApplyBinary(op, a, b)
				ba, errBA := algebra.ApplyBinary(op, b, a)
				if errAB != nil || errBA != nil {
					assert.Equal(t, errAB != nil, errBA != nil, "%s: %s fails one way only", s, op.Stringify(a.String(), b.String()))
					continue
				}
				assert.True(t, ab.Eq(ba), "%s: %s ≠ %s", s, op.Stringify(a.String(), b.String()), op.Stringify(b.String(), a.String()))
			}
		}
	}
}
