package algebra

import (
	"math/big"
)

// Cardinality is the size of a structure: a finite count or one of the
// infinite markers Aleph0 (countable) and Aleph1 (uncountable).
// The zero value is the finite cardinality 0.
//
// Cardinalities form a multiplicative semigroup without identity under
// the cardinal product; see Cardinalities.
type Cardinality struct {
	n     *big.Int // finite count; nil when zero or infinite
	aleph int      // 0 finite, 1 for ℵ₀, 2 for ℵ₁
}

var (
	Aleph0 = Cardinality{aleph: 1}
	Aleph1 = Cardinality{aleph: 2}
)

// Finite returns the finite cardinality n. It panics on negative n.
func Finite(n int64) Cardinality {
	if n < 0 {
		panic("algebra: negative cardinality")
	}
	return Cardinality{n: big.NewInt(n)}
}

// FiniteBig returns the finite cardinality n.
func FiniteBig(n *big.Int) Cardinality {
	if n.Sign() < 0 {
		panic("algebra: negative cardinality")
	}
	return Cardinality{n: new(big.Int).Set(n)}
}

// IsFinite reports whether c is a finite count.
func (c Cardinality) IsFinite() bool { return c.aleph == 0 }

// Int returns the finite count, or nil and false for infinite cardinalities.
func (c Cardinality) Int() (*big.Int, bool) {
	if !c.IsFinite() {
		return nil, false
	}
	return new(big.Int).Set(c.count()), true
}

// Order returns the finite count as an int, when it fits.
func (c Cardinality) Order() (int, bool) {
	if !c.IsFinite() || !c.count().IsInt64() {
		return 0, false
	}
	v := c.count().Int64()
	if int64(int(v)) != v {
		return 0, false
	}
	return int(v), true
}

func (c Cardinality) count() *big.Int {
	if c.n == nil {
		return new(big.Int)
	}
	return c.n
}

func (c Cardinality) String() string {
	switch c.aleph {
	case 1:
		return "ℵ₀"
	case 2:
		return "ℵ₁"
	}
	return c.count().String()
}

// Compare orders finite counts below ℵ₀ below ℵ₁.
func (c Cardinality) Compare(o Cardinality) int {
	if c.aleph != o.aleph {
		return sign(c.aleph - o.aleph)
	}
	if c.aleph != 0 {
		return 0
	}
	return c.count().Cmp(o.count())
}

func (c Cardinality) Eq(o Cardinality) bool { return c.Compare(o) == 0 }

// Times is the cardinal product: finite counts multiply, and otherwise the
// larger infinite cardinal wins, except that anything times 0 is 0.
func (c Cardinality) Times(o Cardinality) Cardinality {
	if c.IsFinite() && o.IsFinite() {
		return Cardinality{n: new(big.Int).Mul(c.count(), o.count())}
	}
	if (c.IsFinite() && c.count().Sign() == 0) || (o.IsFinite() && o.count().Sign() == 0) {
		return Cardinality{}
	}
	if c.aleph > o.aleph {
		return c
	}
	return o
}

// Structure returns Cardinalities.
func (c Cardinality) Structure() Structure { return cardinalities }

// CardinalityStructure is the semigroup of cardinal numbers.
type CardinalityStructure struct {
	Descriptor
}

var cardinalities = &CardinalityStructure{
	Descriptor: NewDescriptor("cardinalities", Aleph0, []Capability{MultiplicativeSemiGroup, Ordered},
		WithCommutative(Multiplication)),
}

// Cardinalities returns the semigroup of cardinalities. It has no
// multiplicative identity exposed, so Pow(c, 0) fails.
func Cardinalities() *CardinalityStructure { return cardinalities }
