// Package rationals implements the ordered field ℚ with exact big.Rat
// arithmetic. Rationals cast directly into the reals.
package rationals

import (
	"errors"
	"fmt"
	"math/big"

	"github.com/katalvlaran/lvlath-algebra/algebra"
	"github.com/katalvlaran/lvlath-algebra/reals"
	"github.com/katalvlaran/lvlath-algebra/registry"
)

var (
	// ErrZeroDenominator reports a fraction n/0.
	ErrZeroDenominator = errors.New("rationals: zero denominator")

	// ErrSyntax reports an unparsable rational.
	ErrSyntax = errors.New("rationals: invalid syntax")
)

// FieldOfRationals is the single instance of ℚ.
type FieldOfRationals struct {
	algebra.Descriptor
}

var field = registry.Singleton(func() *FieldOfRationals {
	return &FieldOfRationals{
		Descriptor: algebra.NewDescriptor("ℚ", algebra.Aleph0,
			[]algebra.Capability{algebra.Field, algebra.Ordered},
			algebra.WithSuperStructures(reals.Default()),
			algebra.WithFunctions(algebra.AbsValue, algebra.DecimalValue, algebra.IntegerValue)),
	}
})

// Field returns ℚ.
func Field() *FieldOfRationals { return field() }

func (*FieldOfRationals) Zero() Rational { return Rational{} }
func (*FieldOfRationals) One() Rational  { return Int(1) }

// Rational is an immutable element of ℚ. The zero value is 0.
type Rational struct {
	v *big.Rat
}

// Of returns num/den in lowest terms.
func Of(num, den int64) (Rational, error) {
	if den == 0 {
		return Rational{}, fmt.Errorf("rationals: %d/0: %w", num, ErrZeroDenominator)
	}
	return Rational{v: big.NewRat(num, den)}, nil
}

// MustOf is Of for literal fractions. It panics on a zero denominator.
func MustOf(num, den int64) Rational {
	r, err := Of(num, den)
	if err != nil {
		panic(err)
	}
	return r
}

// Int returns n/1.
func Int(n int64) Rational { return Rational{v: new(big.Rat).SetInt64(n)} }

// OfBig returns a copy of r as an element.
func OfBig(r *big.Rat) Rational { return Rational{v: new(big.Rat).Set(r)} }

// OfBigInt returns n/1.
func OfBigInt(n *big.Int) Rational { return Rational{v: new(big.Rat).SetInt(n)} }

// Parse reads "a/b", an integer or a decimal.
func Parse(s string) (Rational, error) {
	r, ok := new(big.Rat).SetString(s)
	if !ok {
		return Rational{}, fmt.Errorf("rationals: %q: %w", s, ErrSyntax)
	}
	return Rational{v: r}, nil
}

func (r Rational) rat() *big.Rat {
	if r.v == nil {
		return new(big.Rat)
	}
	return r.v
}

func (r Rational) Structure() algebra.Structure { return Field() }
func (r Rational) String() string               { return r.rat().RatString() }

// Big returns a copy of the value.
func (r Rational) Big() *big.Rat { return new(big.Rat).Set(r.rat()) }

// Float64 returns the nearest float64.
func (r Rational) Float64() float64 {
	f, _ := r.rat().Float64()
	return f
}

func (r Rational) Eq(o Rational) bool     { return r.rat().Cmp(o.rat()) == 0 }
func (r Rational) Compare(o Rational) int { return r.rat().Cmp(o.rat()) }
func (r Rational) Sign() int              { return r.rat().Sign() }

func (r Rational) Plus(o Rational) Rational {
	return Rational{v: new(big.Rat).Add(r.rat(), o.rat())}
}

func (r Rational) Minus(o Rational) Rational {
	return Rational{v: new(big.Rat).Sub(r.rat(), o.rat())}
}

func (r Rational) Times(o Rational) Rational {
	return Rational{v: new(big.Rat).Mul(r.rat(), o.rat())}
}

func (r Rational) Negation() Rational { return Rational{v: new(big.Rat).Neg(r.rat())} }
func (r Rational) Abs() Rational      { return Rational{v: new(big.Rat).Abs(r.rat())} }
func (r Rational) Zero() Rational     { return Rational{} }
func (r Rational) One() Rational      { return Int(1) }

// Decimal returns r as a big.Float with at least 64 bits of precision.
func (r Rational) Decimal() (*big.Float, error) { return new(big.Float).SetRat(r.rat()), nil }

// Rounded returns the nearest integer, halves away from zero.
func (r Rational) Rounded() (*big.Int, error) {
	q, m := new(big.Int).QuoRem(r.rat().Num(), r.rat().Denom(), new(big.Int))
	if m.Sign() != 0 && new(big.Int).Lsh(m.Abs(m), 1).Cmp(r.rat().Denom()) >= 0 {
		q.Add(q, big.NewInt(int64(r.Sign())))
	}
	return q, nil
}

// Reciprocal returns 1/r. Zero has no reciprocal.
func (r Rational) Reciprocal() (Rational, error) {
	if r.Sign() == 0 {
		return Rational{}, algebra.NewOperationError(algebra.Reciprocal.Name(), r, algebra.ErrNotInvertible)
	}
	return Rational{v: new(big.Rat).Inv(r.rat())}, nil
}

// DividedBy returns r/o without building the reciprocal first.
func (r Rational) DividedBy(o Rational) (Rational, error) {
	if o.Sign() == 0 {
		return Rational{}, algebra.NewOperationError(algebra.Division.Name(), o, algebra.ErrNotInvertible)
	}
	return Rational{v: new(big.Rat).Quo(r.rat(), o.rat())}, nil
}

// CastDirectly converts into any real field.
func (r Rational) CastDirectly(target algebra.Structure) (algebra.Element, bool) {
	if f, ok := target.(*reals.Field); ok {
		return f.Of(r.Float64()), true
	}
	return nil, false
}
