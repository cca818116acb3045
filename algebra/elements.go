package algebra

import "math/big"

// Element capabilities. E is the concrete element type itself, so every
// operation returns a value of exactly the same type.

// AlgebraicElement can be compared for equality within its structure.
type AlgebraicElement[E any] interface {
	Element
	Eq(E) bool
}

// MagmaElement has one closed binary operation.
type MagmaElement[E any] interface {
	AlgebraicElement[E]
	Operate(E) E
}

// GroupElement adds an identity and inverses to the magma operation.
type GroupElement[E any] interface {
	MagmaElement[E]
	Unity() E
	Inverse() E
}

// AdditiveSemiGroupElement has an associative addition.
type AdditiveSemiGroupElement[E any] interface {
	AlgebraicElement[E]
	Plus(E) E
}

// AdditiveMonoidElement adds the additive identity.
type AdditiveMonoidElement[E any] interface {
	AdditiveSemiGroupElement[E]
	Zero() E
}

// AdditiveGroupElement adds the additive inverse.
type AdditiveGroupElement[E any] interface {
	AdditiveMonoidElement[E]
	Negation() E
}

// MultiplicativeSemiGroupElement has an associative multiplication.
type MultiplicativeSemiGroupElement[E any] interface {
	AlgebraicElement[E]
	Times(E) E
}

// MultiplicativeMonoidElement adds the multiplicative identity.
type MultiplicativeMonoidElement[E any] interface {
	MultiplicativeSemiGroupElement[E]
	One() E
}

// MultiplicativeGroupElement adds the reciprocal. Reciprocal fails with an
// *OperationError wrapping ErrNotInvertible where the structure has
// non-invertible elements.
type MultiplicativeGroupElement[E any] interface {
	MultiplicativeMonoidElement[E]
	Reciprocal() (E, error)
}

// RngElement is a ring element without a multiplicative identity.
type RngElement[E any] interface {
	AdditiveGroupElement[E]
	MultiplicativeSemiGroupElement[E]
}

// RingElement is a rng element with a multiplicative identity.
type RingElement[E any] interface {
	RngElement[E]
	MultiplicativeMonoidElement[E]
}

// DivisionRingElement is a ring element where every non-zero element is invertible.
type DivisionRingElement[E any] interface {
	RingElement[E]
	MultiplicativeGroupElement[E]
}

// FieldElement is a commutative division ring element.
type FieldElement[E any] interface {
	DivisionRingElement[E]
}

// OrderedElement is totally ordered. Compare returns -1, 0 or +1.
type OrderedElement[E any] interface {
	AlgebraicElement[E]
	Compare(E) int
}

// StrictElement distinguishes exact equality (Equals) from Eq, which may
// hold within a tolerance.
type StrictElement[E any] interface {
	AlgebraicElement[E]
	Equals(E) bool
}

// ScalarElement has a numeric value outside its structure, used by the
// DecimalValue and IntegerValue functions. Rounded rounds half away from zero.
type ScalarElement interface {
	Element
	Decimal() (*big.Float, error)
	Rounded() (*big.Int, error)
}

// Optional fast paths. Elements may implement these when they have a
// cheaper route than the derivation from primitives.
type (
	minuser[E any]   interface{ Minus(E) E }
	divider[E any]   interface{ DividedBy(E) (E, error) }
	absoluter[E any] interface{ Abs() E }
)

// Abs returns |x| if the element provides it, and whether it did.
func Abs[E Element](x E) (E, bool) {
	if a, ok := any(x).(absoluter[E]); ok {
		return a.Abs(), true
	}
	return x, false
}
