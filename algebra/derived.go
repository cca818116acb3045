package algebra

// Derived operations. Each is built only from the primitives of the
// capability in its constraint and those it extends.

// Pow computes xⁿ by square-and-multiply in O(log |n|) multiplications.
//
//	n ≥ 1: always defined.
//	n = 0: requires a multiplicative identity (One), else ErrZeroExponent.
//	n < 0: requires Reciprocal, else ErrNegativeExponent; x⁻ⁿ = (x⁻¹)ⁿ.
func Pow[E MultiplicativeSemiGroupElement[E]](x E, n int) (E, error) {
	return pow(x, n)
}

func pow[E any](x E, n int) (E, error) {
	var zero E
	el := any(x).(Element)
	if n == 0 {
		m, ok := any(x).(MultiplicativeMonoidElement[E])
		if !ok {
			return zero, NewOperationError(Power.Name(), el, ErrZeroExponent)
		}
		return m.One(), nil
	}
	if n < 0 {
		g, ok := any(x).(MultiplicativeGroupElement[E])
		if !ok {
			return zero, NewOperationError(Power.Name(), el, ErrNegativeExponent)
		}
		r, err := g.Reciprocal()
		if err != nil {
			return zero, err
		}
		return binaryExp(r, negate(n), times[E]), nil
	}
	return binaryExp(x, uint64(n), times[E]), nil
}

// Scale computes the n-fold sum n·x by double-and-add, with the same
// policy as Pow: n = 0 needs Zero, n < 0 needs Negation.
func Scale[E AdditiveSemiGroupElement[E]](x E, n int) (E, error) {
	return scale(x, n)
}

func scale[E any](x E, n int) (E, error) {
	var zero E
	el := any(x).(Element)
	if n == 0 {
		m, ok := any(x).(AdditiveMonoidElement[E])
		if !ok {
			return zero, NewOperationError(Multiple.Name(), el, ErrZeroExponent)
		}
		return m.Zero(), nil
	}
	if n < 0 {
		g, ok := any(x).(AdditiveGroupElement[E])
		if !ok {
			return zero, NewOperationError(Multiple.Name(), el, ErrNegativeExponent)
		}
		return binaryExp(g.Negation(), negate(n), plus[E]), nil
	}
	return binaryExp(x, uint64(n), plus[E]), nil
}

// binaryExp folds op over n ≥ 1 copies of x in O(log n) steps.
func binaryExp[E any](x E, n uint64, op func(E, E) E) E {
	var (
		result E
		have   bool
	)
	base := x
	for n > 0 {
		if n&1 == 1 {
			if have {
				result = op(result, base)
			} else {
				result, have = base, true
			}
		}
		n >>= 1
		if n > 0 {
			base = op(base, base)
		}
	}
	return result
}

// negate returns -n as uint64 without overflowing on math.MinInt.
func negate(n int) uint64 { return uint64(-(n + 1)) + 1 }

func times[E any](a, b E) E { return any(a).(MultiplicativeSemiGroupElement[E]).Times(b) }

func plus[E any](a, b E) E { return any(a).(AdditiveSemiGroupElement[E]).Plus(b) }

// Square returns x⋅x.
func Square[E MultiplicativeSemiGroupElement[E]](x E) E { return x.Times(x) }

// Minus returns a - b, using the element's own Minus when present.
func Minus[E AdditiveGroupElement[E]](a, b E) E { return minus(a, b) }

func minus[E any](a, b E) E {
	if m, ok := any(a).(minuser[E]); ok {
		return m.Minus(b)
	}
	neg := any(b).(AdditiveGroupElement[E]).Negation()
	return any(a).(AdditiveGroupElement[E]).Plus(neg)
}

// DividedBy returns a ⋅ b⁻¹. It fails like Reciprocal when b is not invertible.
func DividedBy[E MultiplicativeGroupElement[E]](a, b E) (E, error) { return dividedBy(a, b) }

func dividedBy[E any](a, b E) (E, error) {
	if d, ok := any(a).(divider[E]); ok {
		return d.DividedBy(b)
	}
	r, err := any(b).(MultiplicativeGroupElement[E]).Reciprocal()
	if err != nil {
		var zero E
		return zero, err
	}
	return any(a).(MultiplicativeSemiGroupElement[E]).Times(r), nil
}

// Neq is the negation of Eq.
func Neq[E AlgebraicElement[E]](a, b E) bool { return !a.Eq(b) }

// IsZero reports whether x equals the additive identity of its structure.
func IsZero[E AdditiveMonoidElement[E]](x E) bool { return x.Eq(x.Zero()) }

// IsOne reports whether x equals the multiplicative identity of its structure.
func IsOne[E MultiplicativeMonoidElement[E]](x E) bool { return x.Eq(x.One()) }
