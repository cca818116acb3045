package algebra

import (
	"fmt"
	"strconv"
	"strings"
)

// OperatorKind groups operators by arity and result.
type OperatorKind int

const (
	KindBinary     OperatorKind = iota // (E, E) → E
	KindUnary                          // E → E
	KindComparison                     // (E, E) → bool
	KindInt                            // (E, int) → E
	KindFunction                       // E → value, not necessarily in E's structure
)

func (k OperatorKind) String() string {
	switch k {
	case KindBinary:
		return "binary"
	case KindUnary:
		return "unary"
	case KindComparison:
		return "comparison"
	case KindInt:
		return "int"
	case KindFunction:
		return "function"
	}
	return "kind(" + strconv.Itoa(int(k)) + ")"
}

// Operator is the common view of every reified operator. The set of
// implementations is closed: only this package constructs operators.
type Operator interface {
	fmt.Stringer
	Name() string
	Symbol() string
	Kind() OperatorKind
	ordinal() int
}

// Compare orders operators by kind, ordinal and name. It is total and stable.
func Compare(a, b Operator) int {
	if c := int(a.Kind()) - int(b.Kind()); c != 0 {
		return sign(c)
	}
	if c := a.ordinal() - b.ordinal(); c != 0 {
		return sign(c)
	}
	return strings.Compare(a.Name(), b.Name())
}

func sign(c int) int {
	switch {
	case c < 0:
		return -1
	case c > 0:
		return 1
	}
	return 0
}

type binaryMethod int

const (
	methodOperate binaryMethod = iota
	methodPlus
	methodMinus
	methodTimes
	methodDividedBy
)

// BinaryOperator is a closed binary operation (E, E) → E.
type BinaryOperator struct {
	ord        int
	name       string
	symbol     string
	precedence int
	method     binaryMethod

	base *BinaryOperator // non-nil for composed operators
	then *UnaryOperator
}

var (
	Operation      = &BinaryOperator{ord: 0, name: "operation", symbol: "*", precedence: 2, method: methodOperate}
	Addition       = &BinaryOperator{ord: 1, name: "addition", symbol: "+", precedence: 1, method: methodPlus}
	Subtraction    = &BinaryOperator{ord: 2, name: "subtraction", symbol: "-", precedence: 1, method: methodMinus}
	Multiplication = &BinaryOperator{ord: 3, name: "multiplication", symbol: "⋅", precedence: 2, method: methodTimes}
	Division       = &BinaryOperator{ord: 4, name: "division", symbol: "/", precedence: 2, method: methodDividedBy}
)

// BinaryOperators lists the basic binary operators in their natural order.
func BinaryOperators() []*BinaryOperator {
	return []*BinaryOperator{Operation, Addition, Subtraction, Multiplication, Division}
}

func (o *BinaryOperator) Name() string       { return o.name }
func (o *BinaryOperator) Symbol() string     { return o.symbol }
func (o *BinaryOperator) String() string     { return o.name }
func (o *BinaryOperator) Kind() OperatorKind { return KindBinary }
func (o *BinaryOperator) ordinal() int       { return o.ord }

// Precedence is higher for operators that bind tighter.
func (o *BinaryOperator) Precedence() int { return o.precedence }

// Composed reports whether o was built with AndThen.
func (o *BinaryOperator) Composed() bool { return o.base != nil }

// Stringify renders the operator applied to two already rendered operands.
func (o *BinaryOperator) Stringify(a, b string) string {
	if o.base != nil {
		return o.then.Stringify(o.base.Stringify(a, b))
	}
	return group(a) + " " + o.symbol + " " + group(b)
}

// StringifyEval renders the operation and its result, e.g. "3 ⋅ 5 = 1".
func (o *BinaryOperator) StringifyEval(a, b, result fmt.Stringer) string {
	return o.Stringify(a.String(), b.String()) + " = " + result.String()
}

// AndThen returns the operator that applies o and then u to the result.
func (o *BinaryOperator) AndThen(u *UnaryOperator) *BinaryOperator {
	return &BinaryOperator{
		ord:        o.ord,
		name:       u.name + "(" + o.name + ")",
		symbol:     u.Stringify(o.symbol),
		precedence: o.precedence,
		base:       o,
		then:       u,
	}
}

// constituents lists the basic operators o is built from.
func (o *BinaryOperator) constituents() []Operator {
	if o.base == nil {
		return []Operator{o}
	}
	return append(o.base.constituents(), o.then.constituents()...)
}

type unaryMethod int

const (
	methodIdentify unaryMethod = iota
	methodNegation
	methodReciprocal
	methodInverse
	methodSqr
)

// UnaryOperator is an operation E → E.
type UnaryOperator struct {
	ord    int
	name   string
	symbol string
	format string
	method unaryMethod

	first, second *UnaryOperator // composed: second(first(x))
}

var (
	Identify   = &UnaryOperator{ord: 0, name: "identify", symbol: "+", format: "+%s", method: methodIdentify}
	Negation   = &UnaryOperator{ord: 1, name: "negation", symbol: "-", format: "-%s", method: methodNegation}
	Reciprocal = &UnaryOperator{ord: 2, name: "reciprocal", symbol: "⁻¹", format: "%s⁻¹", method: methodReciprocal}
	Inversion  = &UnaryOperator{ord: 3, name: "inversion", symbol: "inverse", format: "inverse(%s)", method: methodInverse}
	Sqr        = &UnaryOperator{ord: 4, name: "sqr", symbol: "²", format: "%s²", method: methodSqr}
)

// UnaryOperators lists the basic unary operators in their natural order.
func UnaryOperators() []*UnaryOperator {
	return []*UnaryOperator{Identify, Negation, Reciprocal, Inversion, Sqr}
}

func (o *UnaryOperator) Name() string       { return o.name }
func (o *UnaryOperator) Symbol() string     { return o.symbol }
func (o *UnaryOperator) String() string     { return o.name }
func (o *UnaryOperator) Kind() OperatorKind { return KindUnary }
func (o *UnaryOperator) ordinal() int       { return o.ord }

// Composed reports whether o was built with AndThen or Compose.
func (o *UnaryOperator) Composed() bool { return o.first != nil }

// Stringify renders the operator applied to an already rendered operand.
// Signs fold: -(-x) renders as +x and +(+x) as +x.
func (o *UnaryOperator) Stringify(a string) string {
	if o.first != nil {
		return o.second.Stringify(o.first.Stringify(a))
	}
	g := group(a)
	switch o.method {
	case methodIdentify:
		if strings.HasPrefix(g, "+") {
			return g
		}
	case methodNegation:
		if rest, ok := strings.CutPrefix(g, "-"); ok {
			return "+" + rest
		}
	}
	return fmt.Sprintf(o.format, g)
}

// AndThen returns the operator applying o first and u second.
func (o *UnaryOperator) AndThen(u *UnaryOperator) *UnaryOperator {
	return &UnaryOperator{
		ord:    o.ord,
		name:   u.name + "(" + o.name + ")",
		symbol: u.Stringify(o.symbol),
		first:  o,
		second: u,
	}
}

// Compose returns the operator applying u first and o second.
func (o *UnaryOperator) Compose(u *UnaryOperator) *UnaryOperator {
	return u.AndThen(o)
}

func (o *UnaryOperator) constituents() []Operator {
	if o.first == nil {
		return []Operator{o}
	}
	return append(o.first.constituents(), o.second.constituents()...)
}

type comparisonMethod int

const (
	methodEq comparisonMethod = iota
	methodNeq
	methodLT
	methodLTE
	methodGT
	methodGTE
	methodEquals
)

// ComparisonOperator is a predicate over two elements.
type ComparisonOperator struct {
	ord    int
	name   string
	symbol string
	method comparisonMethod
}

var (
	EQ  = &ComparisonOperator{ord: 0, name: "eq", symbol: "≈", method: methodEq}
	NEQ = &ComparisonOperator{ord: 1, name: "neq", symbol: "≉", method: methodNeq}
	LT  = &ComparisonOperator{ord: 2, name: "lt", symbol: "<", method: methodLT}
	LTE = &ComparisonOperator{ord: 3, name: "lte", symbol: "≲", method: methodLTE}
	GT  = &ComparisonOperator{ord: 4, name: "gt", symbol: ">", method: methodGT}
	GTE = &ComparisonOperator{ord: 5, name: "gte", symbol: "≳", method: methodGTE}

	// Equals is strict equality, where EQ may be equality within a tolerance.
	Equals = &ComparisonOperator{ord: 6, name: "equals", symbol: "=", method: methodEquals}
)

// ComparisonOperators lists the comparison operators in their natural order.
func ComparisonOperators() []*ComparisonOperator {
	return []*ComparisonOperator{EQ, NEQ, LT, LTE, GT, GTE, Equals}
}

func (o *ComparisonOperator) Name() string       { return o.name }
func (o *ComparisonOperator) Symbol() string     { return o.symbol }
func (o *ComparisonOperator) String() string     { return o.name }
func (o *ComparisonOperator) Kind() OperatorKind { return KindComparison }
func (o *ComparisonOperator) ordinal() int       { return o.ord }

// Stringify renders the comparison of two rendered operands.
func (o *ComparisonOperator) Stringify(a, b string) string {
	return group(a) + " " + o.symbol + " " + group(b)
}

type intMethod int

const (
	methodPow intMethod = iota
	methodScale
)

// IntOperator combines an element with an integer, E × int → E.
type IntOperator struct {
	ord    int
	name   string
	symbol string
	method intMethod
}

var (
	Power    = &IntOperator{ord: 0, name: "power", symbol: "^", method: methodPow}
	Multiple = &IntOperator{ord: 1, name: "multiple", symbol: "×", method: methodScale}
)

// IntOperators lists the integer operators in their natural order.
func IntOperators() []*IntOperator {
	return []*IntOperator{Power, Multiple}
}

func (o *IntOperator) Name() string       { return o.name }
func (o *IntOperator) Symbol() string     { return o.symbol }
func (o *IntOperator) String() string     { return o.name }
func (o *IntOperator) Kind() OperatorKind { return KindInt }
func (o *IntOperator) ordinal() int       { return o.ord }

// Stringify renders x^n as "x³" and n-fold sums as "3×x".
func (o *IntOperator) Stringify(a string, n int) string {
	if o.method == methodPow {
		return group(a) + Superscript(n)
	}
	return strconv.Itoa(n) + o.symbol + group(a)
}

type functionMethod int

const (
	methodAbs functionMethod = iota
	methodDecimal
	methodInteger
)

// FunctionOperator maps an element to a value that need not belong to
// the element's structure.
type FunctionOperator struct {
	ord    int
	name   string
	symbol string
	format string
	method functionMethod
}

var (
	AbsValue     = &FunctionOperator{ord: 0, name: "abs", symbol: "|·|", format: "|%s|", method: methodAbs}
	DecimalValue = &FunctionOperator{ord: 1, name: "decimal", symbol: "₌", format: "%s₌", method: methodDecimal}
	IntegerValue = &FunctionOperator{ord: 2, name: "integer", symbol: "⌊·⌉", format: "⌊%s⌉", method: methodInteger}
)

// FunctionOperators lists the functions in their natural order.
func FunctionOperators() []*FunctionOperator {
	return []*FunctionOperator{AbsValue, DecimalValue, IntegerValue}
}

func (o *FunctionOperator) Name() string       { return o.name }
func (o *FunctionOperator) Symbol() string     { return o.symbol }
func (o *FunctionOperator) String() string     { return o.name }
func (o *FunctionOperator) Kind() OperatorKind { return KindFunction }
func (o *FunctionOperator) ordinal() int       { return o.ord }

// Stringify renders the function applied to an already rendered operand.
func (o *FunctionOperator) Stringify(a string) string {
	if o.method == methodDecimal {
		a = group(a)
	}
	return fmt.Sprintf(o.format, a)
}

var superscripts = map[rune]rune{
	'0': '⁰', '1': '¹', '2': '²', '3': '³', '4': '⁴',
	'5': '⁵', '6': '⁶', '7': '⁷', '8': '⁸', '9': '⁹', '-': '⁻',
}

// Superscript renders n with unicode superscript digits.
func Superscript(n int) string {
	var b strings.Builder
	for _, r := range strconv.Itoa(n) {
		b.WriteRune(superscripts[r])
	}
	return b.String()
}

// group parenthesizes compound operands.
func group(s string) string {
	if strings.ContainsRune(s, ' ') {
		return "(" + s + ")"
	}
	return s
}
