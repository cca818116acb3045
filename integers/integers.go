package integers

import (
	"fmt"
	"math/big"

	"github.com/katalvlaran/lvlath-algebra/algebra"
	"github.com/katalvlaran/lvlath-algebra/rationals"
	"github.com/katalvlaran/lvlath-algebra/reals"
	"github.com/katalvlaran/lvlath-algebra/registry"
)

// Ring is the single instance of ℤ.
type Ring struct {
	algebra.Descriptor
}

var integers = registry.Singleton(func() *Ring {
	return &Ring{
		Descriptor: algebra.NewDescriptor("ℤ", algebra.Aleph0,
			[]algebra.Capability{algebra.Ring, algebra.Ordered},
			algebra.WithSuperStructures(rationals.Field()),
			algebra.WithCommutative(algebra.Multiplication),
			algebra.WithComparisons(algebra.Equals),
			algebra.WithFunctions(algebra.AbsValue, algebra.DecimalValue, algebra.IntegerValue)),
	}
})

// Integers returns ℤ.
func Integers() *Ring { return integers() }

func (*Ring) Zero() Integer { return Integer{} }
func (*Ring) One() Integer  { return Of(1) }

// Integer is an immutable arbitrary-precision element of ℤ. The zero value is 0.
type Integer struct {
	v *big.Int
}

// Of returns n as an Integer.
func Of(n int64) Integer { return Integer{v: big.NewInt(n)} }

// OfBig returns a copy of n as an Integer.
func OfBig(n *big.Int) Integer { return Integer{v: new(big.Int).Set(n)} }

// Parse reads a base-10 integer.
func Parse(s string) (Integer, error) {
	n, ok := new(big.Int).SetString(s, 10)
	if !ok {
		return Integer{}, fmt.Errorf("integers: %q: %w", s, ErrSyntax)
	}
	return Integer{v: n}, nil
}

func (i Integer) big() *big.Int {
	if i.v == nil {
		return new(big.Int)
	}
	return i.v
}

func (i Integer) Structure() algebra.Structure { return Integers() }
func (i Integer) String() string               { return i.big().String() }

// Big returns a copy of the value.
func (i Integer) Big() *big.Int { return new(big.Int).Set(i.big()) }

// Int64 returns the value and whether it fits.
func (i Integer) Int64() (int64, bool) { return i.big().Int64(), i.big().IsInt64() }

func (i Integer) Eq(o Integer) bool     { return i.big().Cmp(o.big()) == 0 }
func (i Integer) Equals(o Integer) bool { return i.Eq(o) }
func (i Integer) Compare(o Integer) int { return i.big().Cmp(o.big()) }
func (i Integer) Sign() int             { return i.big().Sign() }

// Decimal returns the exact value as a big.Float.
func (i Integer) Decimal() (*big.Float, error) { return new(big.Float).SetInt(i.big()), nil }

// Rounded returns a copy of the value.
func (i Integer) Rounded() (*big.Int, error) { return i.Big(), nil }

func (i Integer) Plus(o Integer) Integer  { return Integer{v: new(big.Int).Add(i.big(), o.big())} }
func (i Integer) Minus(o Integer) Integer { return Integer{v: new(big.Int).Sub(i.big(), o.big())} }
func (i Integer) Times(o Integer) Integer { return Integer{v: new(big.Int).Mul(i.big(), o.big())} }
func (i Integer) Negation() Integer       { return Integer{v: new(big.Int).Neg(i.big())} }
func (i Integer) Abs() Integer            { return Integer{v: new(big.Int).Abs(i.big())} }
func (i Integer) Zero() Integer           { return Integer{} }
func (i Integer) One() Integer            { return Of(1) }

// IsEven reports whether i is divisible by 2.
func (i Integer) IsEven() bool { return i.big().Bit(0) == 0 }

// CastDirectly converts into ℚ and into any real field.
func (i Integer) CastDirectly(target algebra.Structure) (algebra.Element, bool) {
	switch t := target.(type) {
	case *rationals.FieldOfRationals:
		return rationals.OfBigInt(i.big()), true
	case *reals.Field:
		f, _ := new(big.Float).SetInt(i.big()).Float64()
		return t.Of(f), true
	}
	return nil, false
}
