package integers

import (
	"fmt"
	"iter"
	"math/big"
	"math/bits"
	"strconv"

	"go.uber.org/zap"

	"github.com/katalvlaran/lvlath-algebra/algebra"
	"github.com/katalvlaran/lvlath-algebra/registry"
)

// ModuloRing is ℤ/nℤ. Instances are cached per modulus.
type ModuloRing struct {
	algebra.Descriptor
	n uint64
}

var moduloRings = registry.NewCache(newModuloRing, registry.WithName("modulo-rings"))

// ModuloRingOf returns ℤ/nℤ for n ≥ 2. It never checks for primality; use
// ModuloFieldOf when reciprocals are required.
func ModuloRingOf(n int64) (*ModuloRing, error) {
	if err := validModulus(n); err != nil {
		return nil, err
	}
	return moduloRings.Get(uint64(n))
}

func newModuloRing(n uint64) (*ModuloRing, error) {
	return &ModuloRing{
		Descriptor: algebra.NewDescriptor(moduloName(n), algebra.Finite(int64(n)),
			[]algebra.Capability{algebra.Ring}, algebra.WithCommutative(algebra.Multiplication)),
		n: n,
	}, nil
}

func validModulus(n int64) error {
	if n < 2 {
		return fmt.Errorf("integers: modulus %d: %w", n, ErrInvalidModulus)
	}
	return nil
}

func moduloName(n uint64) string { return "ℤ/" + strconv.FormatUint(n, 10) + "ℤ" }

// Modulus returns n.
func (r *ModuloRing) Modulus() int64 { return int64(r.n) }

// Of returns v mod n.
func (r *ModuloRing) Of(v int64) ModuloElement { return ModuloElement{v: reduce(v, r.n), ring: r} }

func (r *ModuloRing) Zero() ModuloElement { return ModuloElement{ring: r} }
func (r *ModuloRing) One() ModuloElement  { return ModuloElement{v: 1, ring: r} }

// Elements yields 0..n-1.
func (r *ModuloRing) Elements() iter.Seq[ModuloElement] {
	return func(yield func(ModuloElement) bool) {
		for v := uint64(0); v < r.n; v++ {
			if !yield(ModuloElement{v: v, ring: r}) {
				return
			}
		}
	}
}

// ModuloElement is a residue in ℤ/nℤ, always held in [0, n).
type ModuloElement struct {
	v    uint64
	ring *ModuloRing
}

func (e ModuloElement) Structure() algebra.Structure { return e.ring }
func (e ModuloElement) String() string               { return strconv.FormatUint(e.v, 10) }

// Value returns the residue in [0, n).
func (e ModuloElement) Value() int64 { return int64(e.v) }

func (e ModuloElement) with(v uint64) ModuloElement { return ModuloElement{v: v, ring: e.ring} }

func (e ModuloElement) Eq(o ModuloElement) bool {
	algebra.MustSame(algebra.EQ.Name(), e, o)
	return e.v == o.v
}

func (e ModuloElement) Plus(o ModuloElement) ModuloElement {
	algebra.MustSame(algebra.Addition.Name(), e, o)
	return e.with(addMod(e.v, o.v, e.ring.n))
}

func (e ModuloElement) Minus(o ModuloElement) ModuloElement {
	algebra.MustSame(algebra.Subtraction.Name(), e, o)
	return e.with(subMod(e.v, o.v, e.ring.n))
}

func (e ModuloElement) Times(o ModuloElement) ModuloElement {
	algebra.MustSame(algebra.Multiplication.Name(), e, o)
	return e.with(mulMod(e.v, o.v, e.ring.n))
}

func (e ModuloElement) Negation() ModuloElement { return e.with(subMod(0, e.v, e.ring.n)) }
func (e ModuloElement) Zero() ModuloElement     { return e.with(0) }
func (e ModuloElement) One() ModuloElement      { return e.with(1) }

// ModuloField is ℤ/pℤ for a prime p. Primality is verified once, when the
// field is first constructed.
type ModuloField struct {
	algebra.Descriptor
	p uint64
}

var moduloFields = registry.NewCache(newModuloField, registry.WithName("modulo-fields"))

// ModuloFieldOf returns ℤ/pℤ. Non-prime p fails with ErrNotPrime.
func ModuloFieldOf(p int64) (*ModuloField, error) {
	if err := validModulus(p); err != nil {
		return nil, err
	}
	return moduloFields.Get(uint64(p))
}

// MustModuloField is ModuloFieldOf for known primes. It panics otherwise.
func MustModuloField(p int64) *ModuloField {
	f, err := ModuloFieldOf(p)
	if err != nil {
		panic(err)
	}
	return f
}

func newModuloField(p uint64) (*ModuloField, error) {
	// ProbablyPrime is exact below 2⁶⁴
	if !new(big.Int).SetUint64(p).ProbablyPrime(20) {
		return nil, fmt.Errorf("integers: modulus %d: %w", p, ErrNotPrime)
	}
	return &ModuloField{
		Descriptor: algebra.NewDescriptor(moduloName(p), algebra.Finite(int64(p)),
			[]algebra.Capability{algebra.Field}),
		p: p,
	}, nil
}

// SetLogger routes construction events of the modulo caches to l.
func SetLogger(l *zap.Logger) {
	moduloRings.SetLogger(l)
	moduloFields.SetLogger(l)
}

// Modulus returns p.
func (f *ModuloField) Modulus() int64 { return int64(f.p) }

// Of returns v mod p.
func (f *ModuloField) Of(v int64) ModuloFieldElement {
	return ModuloFieldElement{v: reduce(v, f.p), field: f}
}

func (f *ModuloField) Zero() ModuloFieldElement { return ModuloFieldElement{field: f} }
func (f *ModuloField) One() ModuloFieldElement  { return ModuloFieldElement{v: 1, field: f} }

// Elements yields 0..p-1.
func (f *ModuloField) Elements() iter.Seq[ModuloFieldElement] {
	return func(yield func(ModuloFieldElement) bool) {
		for v := uint64(0); v < f.p; v++ {
			if !yield(ModuloFieldElement{v: v, field: f}) {
				return
			}
		}
	}
}

// ModuloFieldElement is a residue in ℤ/pℤ, always held in [0, p).
type ModuloFieldElement struct {
	v     uint64
	field *ModuloField
}

func (e ModuloFieldElement) Structure() algebra.Structure { return e.field }
func (e ModuloFieldElement) String() string               { return strconv.FormatUint(e.v, 10) }

// Value returns the residue in [0, p).
func (e ModuloFieldElement) Value() int64 { return int64(e.v) }

func (e ModuloFieldElement) with(v uint64) ModuloFieldElement {
	return ModuloFieldElement{v: v, field: e.field}
}

func (e ModuloFieldElement) Eq(o ModuloFieldElement) bool {
	algebra.MustSame(algebra.EQ.Name(), e, o)
	return e.v == o.v
}

func (e ModuloFieldElement) Plus(o ModuloFieldElement) ModuloFieldElement {
	algebra.MustSame(algebra.Addition.Name(), e, o)
	return e.with(addMod(e.v, o.v, e.field.p))
}

func (e ModuloFieldElement) Minus(o ModuloFieldElement) ModuloFieldElement {
	algebra.MustSame(algebra.Subtraction.Name(), e, o)
	return e.with(subMod(e.v, o.v, e.field.p))
}

func (e ModuloFieldElement) Times(o ModuloFieldElement) ModuloFieldElement {
	algebra.MustSame(algebra.Multiplication.Name(), e, o)
	return e.with(mulMod(e.v, o.v, e.field.p))
}

func (e ModuloFieldElement) Negation() ModuloFieldElement { return e.with(subMod(0, e.v, e.field.p)) }
func (e ModuloFieldElement) Zero() ModuloFieldElement     { return e.with(0) }
func (e ModuloFieldElement) One() ModuloFieldElement      { return e.with(1) }

// Reciprocal computes e⁻¹ with the extended Euclidean algorithm.
// Zero fails with ErrNotInvertible. A gcd other than 1 means the modulus
// was not prime and panics.
func (e ModuloFieldElement) Reciprocal() (ModuloFieldElement, error) {
	if e.v == 0 {
		return ModuloFieldElement{}, algebra.NewOperationError(algebra.Reciprocal.Name(), e, algebra.ErrNotInvertible)
	}
	return e.with(modInverse(int64(e.v), int64(e.field.p))), nil
}

// modInverse returns x with a·x ≡ 1 (mod m), normalized into [0, m).
func modInverse(a, m int64) uint64 {
	t, newT := int64(0), int64(1)
	r, newR := m, a
	for newR != 0 {
		q := r / newR
		t, newT = newT, t-q*newT
		r, newR = newR, r-q*newR
	}
	if r != 1 {
		panic(fmt.Sprintf("integers: gcd(%d, %d) = %d, modulus is not prime", a, m, r))
	}
	if t < 0 {
		t += m
	}
	return uint64(t)
}

func reduce(v int64, n uint64) uint64 {
	if v >= 0 {
		return uint64(v) % n
	}
	r := uint64(-(v+1)) % n // -(v+1) avoids overflow on MinInt64
	return (n - 1 - r) % n
}

func addMod(a, b, n uint64) uint64 {
	s, carry := bits.Add64(a, b, 0)
	if carry != 0 || s >= n {
		s -= n
	}
	return s
}

func subMod(a, b, n uint64) uint64 {
	if a >= b {
		return a - b
	}
	return n - (b - a)
}

func mulMod(a, b, n uint64) uint64 {
	hi, lo := bits.Mul64(a, b)
	return bits.Rem64(hi, lo, n)
}
