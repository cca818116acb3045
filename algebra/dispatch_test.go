package algebra_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlath-algebra/algebra"
	"github.com/katalvlaran/lvlath-algebra/integers"
	"github.com/katalvlaran/lvlath-algebra/klein"
	"github.com/katalvlaran/lvlath-algebra/rationals"
	"github.com/katalvlaran/lvlath-algebra/stringmonoid"
)

// TestApplyBinary_ModuloField applies basic and composed operators in ℤ/7ℤ.
func TestApplyBinary_ModuloField(t *testing.T) {
	f := integers.MustModuloField(7)

	sum, err := algebra.ApplyBinary(algebra.Addition, f.Of(3), f.Of(5))
	require.NoError(t, err)
	assert.Equal(t, int64(1), sum.Value())

	product, err := algebra.ApplyBinary(algebra.Multiplication, f.Of(3), f.Of(5))
	require.NoError(t, err)
	assert.True(t, algebra.IsOne(product))

	quotient, err := algebra.ApplyBinary(algebra.Division, f.Of(1), f.Of(3))
	require.NoError(t, err)
	assert.Equal(t, int64(5), quotient.Value())

	negSum, err := algebra.ApplyBinary(algebra.Addition.AndThen(algebra.Negation), f.Of(3), f.Of(5))
	require.NoError(t, err)
	assert.Equal(t, int64(6), negSum.Value())
	assert.Equal(t, "-(3 + 5) = 6", algebra.Addition.AndThen(algebra.Negation).StringifyEval(f.Of(3), f.Of(5), negSum))
}

// TestApply_FailureClasses keeps mismatch, unsupported and partial apart.
func TestApply_FailureClasses(t *testing.T) {
	f5, f7 := integers.MustModuloField(5), integers.MustModuloField(7)

	t.Run("structural", func(t *testing.T) {
		_, err := algebra.ApplyBinary(algebra.Multiplication, f5.Of(1), f7.Of(1))
		require.Error(t, err)
		assert.True(t, algebra.IsStructural(err))
		assert.False(t, algebra.IsPartial(err))
		var mismatch *algebra.StructureMismatchError
		require.ErrorAs(t, err, &mismatch)
		assert.Same(t, f5, mismatch.Left)
		assert.Same(t, f7, mismatch.Right)
	})

	t.Run("unsupported", func(t *testing.T) {
		ring, err := integers.ModuloRingOf(4)
		require.NoError(t, err)
		_, err = algebra.ApplyBinary(algebra.Division, ring.Of(1), ring.Of(3))
		assert.True(t, algebra.IsUnsupported(err))
		_, err = algebra.ApplyUnary(algebra.Reciprocal, ring.Of(3))
		assert.ErrorIs(t, err, algebra.ErrNoSuchOperator)
		_, err = algebra.Test(algebra.LT, f7.Of(1), f7.Of(2))
		assert.ErrorIs(t, err, algebra.ErrNoSuchOperator, "ℤ/7ℤ is not ordered")
		_, err = algebra.ApplyBinary(algebra.Subtraction, stringmonoid.Of("a"), stringmonoid.Of("b"))
		assert.ErrorIs(t, err, algebra.ErrNoSuchOperator)
		_, err = algebra.ApplyBinary(algebra.Addition.AndThen(algebra.Reciprocal), ring.Of(1), ring.Of(1))
		assert.ErrorIs(t, err, algebra.ErrNoSuchOperator, "composed operators need every constituent")
	})

	t.Run("partial", func(t *testing.T) {
		_, err := algebra.ApplyUnary(algebra.Reciprocal, f7.Of(0))
		require.Error(t, err)
		assert.True(t, algebra.IsPartial(err))
		assert.ErrorIs(t, err, algebra.ErrNotInvertible)
		assert.False(t, algebra.IsStructural(err))
		assert.False(t, algebra.IsUnsupported(err))
		var opErr *algebra.OperationError
		require.ErrorAs(t, err, &opErr)
		assert.Equal(t, "reciprocal", opErr.Op)
		assert.Equal(t, "0", opErr.Operand)

		_, err = algebra.ApplyBinary(algebra.Division, rationals.Int(1), rationals.Int(0))
		assert.True(t, algebra.IsPartial(err))
		assert.True(t, algebra.IsPartialOperator(f7, algebra.Reciprocal))
		assert.False(t, algebra.IsPartialOperator(f7, algebra.Addition))
	})
}

// TestApplyUnary covers identity, negation, inversion and composition.
func TestApplyUnary(t *testing.T) {
	q := rationals.MustOf(3, 4)

	same, err := algebra.ApplyUnary(algebra.Identify, q)
	require.NoError(t, err)
	assert.True(t, same.Eq(q))

	neg, err := algebra.ApplyUnary(algebra.Negation, q)
	require.NoError(t, err)
	assert.Equal(t, "-3/4", neg.String())

	sqrNeg, err := algebra.ApplyUnary(algebra.Negation.AndThen(algebra.Sqr), q)
	require.NoError(t, err)
	assert.Equal(t, "9/16", sqrNeg.String())

	inv, err := algebra.ApplyUnary(algebra.Inversion, klein.A)
	require.NoError(t, err)
	assert.Equal(t, klein.A, inv)

	c, err := algebra.ApplyBinary(algebra.Operation, klein.A, klein.B)
	require.NoError(t, err)
	assert.Equal(t, klein.C, c)
	_, err = algebra.ApplyBinary(algebra.Addition, klein.A, klein.B)
	assert.ErrorIs(t, err, algebra.ErrNoSuchOperator, "the Klein group is multiplicative only")
}

// TestTest_Comparisons evaluates every comparison over ℚ.
func TestTest_Comparisons(t *testing.T) {
	a, b := rationals.MustOf(1, 3), rationals.MustOf(1, 2)
	cases := []struct {
		op   *algebra.ComparisonOperator
		want bool
	}{
		{algebra.EQ, false},
		{algebra.NEQ, true},
		{algebra.LT, true},
		{algebra.LTE, true},
		{algebra.GT, false},
		{algebra.GTE, false},
	}
	for _, tc := range cases {
		got, err := algebra.Test(tc.op, a, b)
		require.NoError(t, err, tc.op.Name())
		assert.Equal(t, tc.want, got, tc.op.Stringify(a.String(), b.String()))
	}
	eq, err := algebra.Test(algebra.EQ, a, rationals.MustOf(2, 6))
	require.NoError(t, err)
	assert.True(t, eq)
}

// TestApplyInt covers Power and Multiple with their partial cases.
func TestApplyInt(t *testing.T) {
	f := integers.MustModuloField(7)

	inv, err := algebra.ApplyInt(algebra.Power, f.Of(3), -1)
	require.NoError(t, err)
	assert.Equal(t, int64(5), inv.Value())

	_, err = algebra.ApplyInt(algebra.Power, f.Of(0), -2)
	assert.ErrorIs(t, err, algebra.ErrNotInvertible)

	triple, err := algebra.ApplyInt(algebra.Multiple, stringmonoid.Of("ab"), 3)
	require.NoError(t, err)
	assert.Equal(t, "ababab", triple.Value())

	empty, err := algebra.ApplyInt(algebra.Multiple, stringmonoid.Of("ab"), 0)
	require.NoError(t, err)
	assert.Zero(t, empty.Len())

	_, err = algebra.ApplyInt(algebra.Multiple, stringmonoid.Of("ab"), -1)
	assert.ErrorIs(t, err, algebra.ErrNegativeExponent)
	assert.True(t, algebra.IsPartial(err))

	_, err = algebra.ApplyInt(algebra.Power, klein.A, 2)
	assert.ErrorIs(t, err, algebra.ErrNoSuchOperator)
}
