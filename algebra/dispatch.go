package algebra

// Generic operator application. Every entry point checks, in order:
//
//  1. all operands share one structure instance (ErrStructureMismatch);
//  2. the structure declares the operator (ErrNoSuchOperator);
//  3. the operation itself, which may fail with a partial-operation error.

// ApplyBinary applies op to a and b.
func ApplyBinary[E Element](op *BinaryOperator, a, b E) (E, error) {
	var zero E
	if err := sameStructure(op.Name(), a, b); err != nil {
		return zero, err
	}
	if err := require(a.Structure(), op); err != nil {
		return zero, err
	}
	return applyBinary(op, a, b)
}

// ApplyUnary applies op to e.
func ApplyUnary[E Element](op *UnaryOperator, e E) (E, error) {
	var zero E
	if err := require(e.Structure(), op); err != nil {
		return zero, err
	}
	return applyUnary(op, e)
}

// Test evaluates the comparison op on a and b.
func Test[E Element](op *ComparisonOperator, a, b E) (bool, error) {
	if err := sameStructure(op.Name(), a, b); err != nil {
		return false, err
	}
	if err := require(a.Structure(), op); err != nil {
		return false, err
	}
	return test(op, a, b)
}

// ApplyFunction evaluates f on e. AbsValue yields an E, DecimalValue a
// *big.Float and IntegerValue a *big.Int.
func ApplyFunction[E Element](f *FunctionOperator, e E) (any, error) {
	if err := require(e.Structure(), f); err != nil {
		return nil, err
	}
	return applyFunction(f, e)
}

// ApplyInt applies op to e and n.
func ApplyInt[E Element](op *IntOperator, e E, n int) (E, error) {
	var zero E
	if err := require(e.Structure(), op); err != nil {
		return zero, err
	}
	return applyInt(op, e, n)
}

func require(s Structure, op Operator) error {
	if !Supports(s, op) {
		return &UnsupportedOperatorError{Structure: s, Operator: op}
	}
	return nil
}

// lacks reports a structure whose declared operators outrun its element type.
func lacks(e Element, op Operator) error {
	return &UnsupportedOperatorError{Structure: e.Structure(), Operator: op}
}

func applyBinary[E Element](op *BinaryOperator, a, b E) (E, error) {
	var zero E
	if op.base != nil {
		r, err := applyBinary(op.base, a, b)
		if err != nil {
			return zero, err
		}
		return applyUnary(op.then, r)
	}
	switch op.method {
	case methodOperate:
		if m, ok := any(a).(MagmaElement[E]); ok {
			return m.Operate(b), nil
		}
	case methodPlus:
		if m, ok := any(a).(AdditiveSemiGroupElement[E]); ok {
			return m.Plus(b), nil
		}
	case methodMinus:
		if _, ok := any(a).(AdditiveGroupElement[E]); ok {
			return minus(a, b), nil
		}
	case methodTimes:
		if m, ok := any(a).(MultiplicativeSemiGroupElement[E]); ok {
			return m.Times(b), nil
		}
	case methodDividedBy:
		if _, ok := any(a).(MultiplicativeGroupElement[E]); ok {
			return dividedBy(a, b)
		}
	}
	return zero, lacks(a, op)
}

func applyUnary[E Element](op *UnaryOperator, e E) (E, error) {
	var zero E
	if op.first != nil {
		r, err := applyUnary(op.first, e)
		if err != nil {
			return zero, err
		}
		return applyUnary(op.second, r)
	}
	switch op.method {
	case methodIdentify:
		return e, nil
	case methodNegation:
		if g, ok := any(e).(AdditiveGroupElement[E]); ok {
			return g.Negation(), nil
		}
	case methodReciprocal:
		if g, ok := any(e).(MultiplicativeGroupElement[E]); ok {
			return g.Reciprocal()
		}
	case methodInverse:
		if g, ok := any(e).(GroupElement[E]); ok {
			return g.Inverse(), nil
		}
	case methodSqr:
		if m, ok := any(e).(MultiplicativeSemiGroupElement[E]); ok {
			return m.Times(e), nil
		}
	}
	return zero, lacks(e, op)
}

func test[E Element](op *ComparisonOperator, a, b E) (bool, error) {
	switch op.method {
	case methodEquals:
		m, ok := any(a).(StrictElement[E])
		if !ok {
			return false, lacks(a, op)
		}
		return m.Equals(b), nil
	case methodEq, methodNeq:
		m, ok := any(a).(AlgebraicElement[E])
		if !ok {
			return false, lacks(a, op)
		}
		return m.Eq(b) == (op.method == methodEq), nil
	}
	o, ok := any(a).(OrderedElement[E])
	if !ok {
		return false, lacks(a, op)
	}
	c := o.Compare(b)
	switch op.method {
	case methodLT:
		return c < 0, nil
	case methodLTE:
		return c <= 0, nil
	case methodGT:
		return c > 0, nil
	}
	return c >= 0, nil
}

func applyInt[E Element](op *IntOperator, e E, n int) (E, error) {
	var zero E
	switch op.method {
	case methodPow:
		if _, ok := any(e).(MultiplicativeSemiGroupElement[E]); ok {
			return pow(e, n)
		}
	case methodScale:
		if _, ok := any(e).(AdditiveSemiGroupElement[E]); ok {
			return scale(e, n)
		}
	}
	return zero, lacks(e, op)
}

func applyFunction[E Element](f *FunctionOperator, e E) (any, error) {
	switch f.method {
	case methodAbs:
		if a, ok := any(e).(absoluter[E]); ok {
			return a.Abs(), nil
		}
	case methodDecimal:
		if x, ok := any(e).(ScalarElement); ok {
			d, err := x.Decimal()
			if err != nil {
				return nil, err
			}
			return d, nil
		}
	case methodInteger:
		if x, ok := any(e).(ScalarElement); ok {
			n, err := x.Rounded()
			if err != nil {
				return nil, err
			}
			return n, nil
		}
	}
	return nil, lacks(e, f)
}
