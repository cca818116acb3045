package integers

import (
	"fmt"
	"math/big"

	"github.com/katalvlaran/lvlath-algebra/algebra"
	"github.com/katalvlaran/lvlath-algebra/registry"
)

// EvenRng is 2ℤ: a ring without a multiplicative identity.
type EvenRng struct {
	algebra.Descriptor
}

var evens = registry.Singleton(func() *EvenRng {
	return &EvenRng{
		Descriptor: algebra.NewDescriptor("2ℤ", algebra.Aleph0,
			[]algebra.Capability{algebra.Rng, algebra.Ordered},
			algebra.WithSuperStructures(Integers()),
			algebra.WithCommutative(algebra.Multiplication),
			algebra.WithComparisons(algebra.Equals),
			algebra.WithFunctions(algebra.AbsValue)),
	}
})

// EvenIntegers returns 2ℤ.
func EvenIntegers() *EvenRng { return evens() }

func (*EvenRng) Zero() EvenInteger { return EvenInteger{} }

// EvenInteger is an element of 2ℤ. The zero value is 0.
type EvenInteger struct {
	v *big.Int
}

// Even returns n, which must be even.
func Even(n int64) (EvenInteger, error) {
	if n%2 != 0 {
		return EvenInteger{}, fmt.Errorf("integers: %d is odd: %w", n, ErrNotEven)
	}
	return EvenInteger{v: big.NewInt(n)}, nil
}

// MustEven is Even for literals. It panics on odd n.
func MustEven(n int64) EvenInteger {
	e, err := Even(n)
	if err != nil {
		panic(err)
	}
	return e
}

func (e EvenInteger) big() *big.Int {
	if e.v == nil {
		return new(big.Int)
	}
	return e.v
}

func (e EvenInteger) Structure() algebra.Structure { return EvenIntegers() }
func (e EvenInteger) String() string               { return e.big().String() }

func (e EvenInteger) Eq(o EvenInteger) bool     { return e.big().Cmp(o.big()) == 0 }
func (e EvenInteger) Equals(o EvenInteger) bool { return e.Eq(o) }
func (e EvenInteger) Compare(o EvenInteger) int { return e.big().Cmp(o.big()) }

func (e EvenInteger) Plus(o EvenInteger) EvenInteger {
	return EvenInteger{v: new(big.Int).Add(e.big(), o.big())}
}

func (e EvenInteger) Times(o EvenInteger) EvenInteger {
	return EvenInteger{v: new(big.Int).Mul(e.big(), o.big())}
}

func (e EvenInteger) Negation() EvenInteger { return EvenInteger{v: new(big.Int).Neg(e.big())} }
func (e EvenInteger) Abs() EvenInteger      { return EvenInteger{v: new(big.Int).Abs(e.big())} }
func (e EvenInteger) Zero() EvenInteger     { return EvenInteger{} }

// Integer returns e as an element of ℤ.
func (e EvenInteger) Integer() Integer { return OfBig(e.big()) }

// CastDirectly converts into ℤ only; further targets go through the hierarchy.
func (e EvenInteger) CastDirectly(target algebra.Structure) (algebra.Element, bool) {
	if _, ok := target.(*Ring); ok {
		return e.Integer(), true
	}
	return nil, false
}
