// Package reals approximates the ordered field ℝ with float64 values.
// Equality is within a configurable absolute-or-relative tolerance, so
// elimination and inversion treat values near zero as zero.
package reals

import (
	"errors"
	"fmt"
	"math"
	"math/big"
	"strconv"

	"go.uber.org/zap"
	"gonum.org/v1/gonum/floats/scalar"

	"github.com/katalvlaran/lvlath-algebra/algebra"
	"github.com/katalvlaran/lvlath-algebra/config"
	"github.com/katalvlaran/lvlath-algebra/registry"
)

var (
	// ErrBadEpsilon reports a tolerance that is not a positive finite number.
	ErrBadEpsilon = errors.New("reals: epsilon must be positive and finite")

	// ErrNonFinite is the partial-operation reason for converting NaN or ±Inf.
	ErrNonFinite = errors.New("reals: value is not finite")
)

// Field is ℝ at one tolerance. Fields are cached per tolerance.
type Field struct {
	algebra.Descriptor
	eps float64
}

var fields = registry.NewCache(newField, registry.WithName("reals"))

var defaultField = registry.Singleton(func() *Field {
	f, err := WithEpsilon(config.LoadOrDefault().RealEpsilon)
	if err != nil {
		return fields.MustGet(config.Default().RealEpsilon)
	}
	return f
})

// SetLogger routes construction events of the per-tolerance field cache to l.
func SetLogger(l *zap.Logger) { fields.SetLogger(l) }

// Default returns the field at the configured ALGEBRA_REAL_EPSILON.
func Default() *Field { return defaultField() }

// WithEpsilon returns the field comparing values within eps.
func WithEpsilon(eps float64) (*Field, error) {
	return fields.Get(eps)
}

func newField(eps float64) (*Field, error) {
	if !(eps > 0) || math.IsInf(eps, 0) {
		return nil, fmt.Errorf("reals: %g: %w", eps, ErrBadEpsilon)
	}
	return &Field{
		Descriptor: algebra.NewDescriptor("ℝ", algebra.Aleph1, []algebra.Capability{algebra.Field, algebra.Ordered},
			algebra.WithFunctions(algebra.AbsValue, algebra.DecimalValue, algebra.IntegerValue),
			algebra.WithPartial(algebra.DecimalValue, algebra.IntegerValue)),
		eps:        eps,
	}, nil
}

// Epsilon returns the comparison tolerance.
func (f *Field) Epsilon() float64 { return f.eps }

// Of returns v as an element of f.
func (f *Field) Of(v float64) Real { return Real{v: v, field: f} }

func (f *Field) Zero() Real { return f.Of(0) }
func (f *Field) One() Real  { return f.Of(1) }

// Of returns v in the Default field.
func Of(v float64) Real { return Default().Of(v) }

// Real is an element of a Field.
type Real struct {
	v     float64
	field *Field
}

func (r Real) fieldOrDefault() *Field {
	if r.field == nil {
		return Default()
	}
	return r.field
}

func (r Real) Structure() algebra.Structure { return r.fieldOrDefault() }
func (r Real) String() string               { return strconv.FormatFloat(r.v, 'g', -1, 64) }

// Float64 returns the underlying value.
func (r Real) Float64() float64 { return r.v }

func (r Real) same(op string, o Real) {
	algebra.MustSame(op, r, o)
}

// Eq reports whether r and o agree within the field tolerance.
func (r Real) Eq(o Real) bool {
	r.same(algebra.EQ.Name(), o)
	eps := r.fieldOrDefault().eps
	return scalar.EqualWithinAbsOrRel(r.v, o.v, eps, eps)
}

// Compare is 0 within tolerance and otherwise orders by value.
func (r Real) Compare(o Real) int {
	if r.Eq(o) {
		return 0
	}
	if r.v < o.v {
		return -1
	}
	return 1
}

func (r Real) with(v float64) Real { return Real{v: v, field: r.fieldOrDefault()} }

func (r Real) Plus(o Real) Real {
	r.same(algebra.Addition.Name(), o)
	return r.with(r.v + o.v)
}

func (r Real) Minus(o Real) Real {
	r.same(algebra.Subtraction.Name(), o)
	return r.with(r.v - o.v)
}

func (r Real) Times(o Real) Real {
	r.same(algebra.Multiplication.Name(), o)
	return r.with(r.v * o.v)
}

func (r Real) Negation() Real { return r.with(-r.v) }
func (r Real) Zero() Real     { return r.with(0) }
func (r Real) One() Real      { return r.with(1) }
func (r Real) Abs() Real      { return r.with(math.Abs(r.v)) }

// Decimal returns the exact binary value. NaN and ±Inf fail with ErrNonFinite.
func (r Real) Decimal() (*big.Float, error) {
	if math.IsNaN(r.v) || math.IsInf(r.v, 0) {
		return nil, algebra.NewOperationError(algebra.DecimalValue.Name(), r, ErrNonFinite)
	}
	return new(big.Float).SetFloat64(r.v), nil
}

// Rounded returns the nearest integer, halves away from zero.
func (r Real) Rounded() (*big.Int, error) {
	if math.IsNaN(r.v) || math.IsInf(r.v, 0) {
		return nil, algebra.NewOperationError(algebra.IntegerValue.Name(), r, ErrNonFinite)
	}
	n, _ := new(big.Float).SetFloat64(math.Round(r.v)).Int(nil)
	return n, nil
}

// Reciprocal fails with ErrNotInvertible for values within tolerance of zero.
func (r Real) Reciprocal() (Real, error) {
	if r.Eq(r.Zero()) {
		return Real{}, algebra.NewOperationError(algebra.Reciprocal.Name(), r, algebra.ErrNotInvertible)
	}
	return r.with(1 / r.v), nil
}
