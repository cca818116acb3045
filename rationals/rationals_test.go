package rationals_test

import (
	"fmt"
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlath-algebra/algebra"
	"github.com/katalvlaran/lvlath-algebra/internal/algebratest"
	"github.com/katalvlaran/lvlath-algebra/rationals"
	"github.com/katalvlaran/lvlath-algebra/reals"
)

// TestRationals_FieldLaws checks ℚ over a handful of fractions including zero.
func TestRationals_FieldLaws(t *testing.T) {
	algebratest.FieldLaws(t, []rationals.Rational{
		rationals.Int(0), rationals.Int(1), rationals.MustOf(-3, 4), rationals.MustOf(5, 7), rationals.Int(-2),
	})
	assert.Equal(t, "ℚ", rationals.Field().String())
	assert.Equal(t, algebra.Aleph0, rationals.Field().Cardinality())
	assert.Equal(t, []algebra.Structure{reals.Default()}, rationals.Field().SuperStructures())
}

// TestOf normalizes and rejects zero denominators.
func TestOf(t *testing.T) {
	r, err := rationals.Of(6, -8)
	require.NoError(t, err)
	assert.Equal(t, "-3/4", r.String())
	assert.Equal(t, -1, r.Sign())

	_, err = rationals.Of(1, 0)
	assert.ErrorIs(t, err, rationals.ErrZeroDenominator)
	assert.Panics(t, func() { rationals.MustOf(1, 0) })

	assert.Equal(t, "7", rationals.OfBigInt(big.NewInt(7)).String())
	src := big.NewRat(1, 3)
	r = rationals.OfBig(src)
	src.SetInt64(5)
	assert.Equal(t, "1/3", r.String(), "OfBig copies its argument")

	var zero rationals.Rational
	assert.True(t, algebra.IsZero(zero))
	assert.Equal(t, "0", zero.String())
}

// TestParse accepts fractions, integers and decimals.
func TestParse(t *testing.T) {
	for in, want := range map[string]string{
		"2/4":   "1/2",
		"-17":   "-17",
		"0.125": "1/8",
		"1e3":   "1000",
	} {
		r, err := rationals.Parse(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, r.String(), in)
	}
	_, err := rationals.Parse("one half")
	assert.ErrorIs(t, err, rationals.ErrSyntax)
}

// TestDivision keeps division by zero a partial operation.
func TestDivision(t *testing.T) {
	q, err := rationals.MustOf(1, 2).DividedBy(rationals.MustOf(3, 4))
	require.NoError(t, err)
	assert.Equal(t, "2/3", q.String())

	_, err = rationals.Int(1).DividedBy(rationals.Int(0))
	assert.ErrorIs(t, err, algebra.ErrNotInvertible)
	assert.True(t, algebra.IsPartial(err))

	_, err = rationals.Int(0).Reciprocal()
	assert.ErrorIs(t, err, algebra.ErrNotInvertible)
}

// TestOrdering covers Compare, Abs and the comparison operators.
func TestOrdering(t *testing.T) {
	a, b := rationals.MustOf(-1, 2), rationals.MustOf(1, 3)
	assert.Equal(t, -1, a.Compare(b))
	assert.Equal(t, 1, a.Abs().Compare(b))
	gt, err := algebra.Test(algebra.GT, a.Abs(), b)
	require.NoError(t, err)
	assert.True(t, gt)
	assert.InDelta(t, -0.5, a.Float64(), 0)
}

// TestCastDirectly converts into the real field it is given.
func TestCastDirectly(t *testing.T) {
	coarse, err := reals.WithEpsilon(1e-3)
	require.NoError(t, err)
	out, ok := rationals.MustOf(1, 4).CastDirectly(coarse)
	require.True(t, ok)
	r := out.(reals.Real)
	assert.Same(t, coarse, r.Structure())
	assert.Equal(t, 0.25, r.Float64())

	_, ok = rationals.Int(1).CastDirectly(rationals.Field())
	assert.False(t, ok)
}

func ExampleRational_DividedBy() {
	q, _ := rationals.MustOf(1, 2).DividedBy(rationals.MustOf(3, 4))
	fmt.Println(algebra.Division.StringifyEval(rationals.MustOf(1, 2), rationals.MustOf(3, 4), q))
	// Output: 1/2 / 3/4 = 2/3
}
