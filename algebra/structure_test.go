package algebra_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlath-algebra/algebra"
	"github.com/katalvlaran/lvlath-algebra/integers"
	"github.com/katalvlaran/lvlath-algebra/internal/algebratest"
	"github.com/katalvlaran/lvlath-algebra/klein"
	"github.com/katalvlaran/lvlath-algebra/rationals"
	"github.com/katalvlaran/lvlath-algebra/reals"
	"github.com/katalvlaran/lvlath-algebra/stringmonoid"
)

// TestDescriptor_DerivedOperators checks that declared capabilities drive
// the operator sets and partials.
func TestDescriptor_DerivedOperators(t *testing.T) {
	d := algebra.NewDescriptor("test ring", algebra.Finite(3), []algebra.Capability{algebra.Ring})
	assert.Equal(t, "test ring", d.String())
	assert.True(t, algebra.Has(&d, algebra.AdditiveGroup))
	assert.False(t, algebra.Has(&d, algebra.Field))
	assert.True(t, algebra.Supports(&d, algebra.Subtraction))
	assert.False(t, algebra.Supports(&d, algebra.Division))
	assert.True(t, algebra.IsPartialOperator(&d, algebra.Power), "negative powers need reciprocals")
	assert.False(t, algebra.IsPartialOperator(&d, algebra.Multiple))

	exact := algebra.NewDescriptor("exact", algebra.Aleph0, []algebra.Capability{algebra.Field},
		algebra.WithPartial(algebra.Sqr), algebra.WithExactPartials())
	assert.Equal(t, 1, exact.PartialOperators().Len())
	assert.True(t, algebra.IsPartialOperator(&exact, algebra.Sqr))
	assert.False(t, algebra.IsPartialOperator(&exact, algebra.Reciprocal))
}

// TestStructures_Monotone checks every concrete structure against its capabilities.
func TestStructures_Monotone(t *testing.T) {
	z6, err := integers.ModuloRingOf(6)
	require.NoError(t, err)
	for _, s := range []algebra.Structure{
		integers.Integers(), integers.EvenIntegers(), z6, integers.MustModuloField(11),
		rationals.Field(), reals.Default(), klein.FourGroup(), stringmonoid.Strings(),
		algebra.Cardinalities(),
	} {
		algebratest.Monotone(t, s)
	}
	assert.True(t, rationals.Field().SupportedOperators().SupersetOf(integers.Integers().SupportedOperators()))
	assert.True(t, integers.Integers().SupportedOperators().SupersetOf(integers.EvenIntegers().SupportedOperators()))
}

// TestOperatorBySymbol searches binary operators before the others.
func TestOperatorBySymbol(t *testing.T) {
	op, ok := algebra.OperatorBySymbol(rationals.Field(), "-")
	require.True(t, ok)
	assert.Same(t, algebra.Subtraction, op)

	op, ok = algebra.OperatorBySymbol(rationals.Field(), "≲")
	require.True(t, ok)
	assert.Same(t, algebra.LTE, op)

	_, ok = algebra.OperatorBySymbol(klein.FourGroup(), "+")
	assert.True(t, ok, "identify is a magma operator")
	_, ok = algebra.OperatorBySymbol(klein.FourGroup(), "/")
	assert.False(t, ok)
}

// TestCheckSame reports the first mismatch and MustSame panics with it.
func TestCheckSame(t *testing.T) {
	f5, f7 := integers.MustModuloField(5), integers.MustModuloField(7)
	require.NoError(t, algebra.CheckSame("sum", f5.Of(1), f5.Of(2), f5.Of(3)))

	err := algebra.CheckSame("sum", f5.Of(1), f5.Of(2), f7.Of(3))
	assert.ErrorIs(t, err, algebra.ErrStructureMismatch)
	assert.EqualError(t, err, "algebra: sum: ℤ/5ℤ and ℤ/7ℤ are different structures")

	defer func() {
		r := recover()
		require.NotNil(t, r)
		e, ok := r.(error)
		require.True(t, ok)
		assert.True(t, errors.Is(e, algebra.ErrStructureMismatch))
	}()
	f5.Of(1).Plus(f7.Of(1))
}

// TestCardinality covers ordering, rendering and the cardinal product.
func TestCardinality(t *testing.T) {
	assert.Equal(t, "ℵ₀", algebra.Aleph0.String())
	assert.Equal(t, "ℵ₁", algebra.Aleph1.String())
	assert.Equal(t, "12", algebra.Finite(12).String())

	assert.Negative(t, algebra.Finite(1<<40).Compare(algebra.Aleph0))
	assert.Negative(t, algebra.Aleph0.Compare(algebra.Aleph1))
	assert.True(t, algebra.Finite(0).Eq(algebra.Cardinality{}))

	assert.True(t, algebra.Aleph0.Times(algebra.Finite(0)).Eq(algebra.Finite(0)))
	assert.True(t, algebra.Aleph0.Times(algebra.Finite(5)).Eq(algebra.Aleph0))
	assert.True(t, algebra.Aleph0.Times(algebra.Aleph1).Eq(algebra.Aleph1))
	assert.True(t, algebra.Finite(6).Times(algebra.Finite(7)).Eq(algebra.Finite(42)))

	n, ok := algebra.Finite(7).Order()
	require.True(t, ok)
	assert.Equal(t, 7, n)
	_, ok = algebra.Aleph1.Order()
	assert.False(t, ok)

	assert.True(t, klein.FourGroup().Cardinality().Eq(algebra.Finite(4)))
	assert.Panics(t, func() { algebra.Finite(-1) })
}

// TestErrors_Unwrap keeps the multi-sentinel errors matchable.
func TestErrors_Unwrap(t *testing.T) {
	notSub := &algebra.NotASubStructureError{Source: integers.Integers(), Target: "K₄"}
	assert.ErrorIs(t, notSub, algebra.ErrNotASubStructure)
	assert.ErrorIs(t, notSub, algebra.ErrStructureMismatch)
	assert.EqualError(t, notSub, "algebra: ℤ is not a sub-structure of K₄")

	opErr := algebra.NewOperationError("reciprocal", nil, algebra.ErrNotInvertible)
	assert.ErrorIs(t, opErr, algebra.ErrPartialOperation)
	assert.ErrorIs(t, opErr, algebra.ErrNotInvertible)
	assert.Equal(t, "<nil>", opErr.Operand)

	unsupported := &algebra.UnsupportedOperatorError{Structure: klein.FourGroup(), Operator: algebra.Addition}
	assert.EqualError(t, unsupported, "algebra: K₄ does not support addition")
	assert.True(t, algebra.IsUnsupported(unsupported))
	assert.False(t, algebra.IsPartial(unsupported))
}
