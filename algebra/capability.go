package algebra

import (
	"slices"
	"strconv"
)

// Capability names one algebraic property a structure either has or lacks.
type Capability int

const (
	Magma Capability = iota + 1
	SemiGroup
	Monoid
	Group
	AdditiveSemiGroup
	AdditiveMonoid
	AdditiveGroup
	MultiplicativeSemiGroup
	MultiplicativeMonoid
	MultiplicativeGroup
	Rng
	Ring
	DivisionRing
	Field
	Ordered
)

var capabilityNames = map[Capability]string{
	Magma:                   "magma",
	SemiGroup:               "semigroup",
	Monoid:                  "monoid",
	Group:                   "group",
	AdditiveSemiGroup:       "additive semigroup",
	AdditiveMonoid:          "additive monoid",
	AdditiveGroup:           "additive group",
	MultiplicativeSemiGroup: "multiplicative semigroup",
	MultiplicativeMonoid:    "multiplicative monoid",
	MultiplicativeGroup:     "multiplicative group",
	Rng:                     "rng",
	Ring:                    "ring",
	DivisionRing:            "division ring",
	Field:                   "field",
	Ordered:                 "ordered",
}

func (c Capability) String() string {
	if n, ok := capabilityNames[c]; ok {
		return n
	}
	return "capability(" + strconv.Itoa(int(c)) + ")"
}

// direct lists the capabilities each capability extends.
var direct = map[Capability][]Capability{
	SemiGroup:            {Magma},
	Monoid:               {SemiGroup},
	Group:                {Monoid},
	AdditiveMonoid:       {AdditiveSemiGroup},
	AdditiveGroup:        {AdditiveMonoid},
	MultiplicativeMonoid: {MultiplicativeSemiGroup},
	MultiplicativeGroup:  {MultiplicativeMonoid},
	Rng:                  {AdditiveGroup, MultiplicativeSemiGroup},
	Ring:                 {Rng, MultiplicativeMonoid},
	DivisionRing:         {Ring, MultiplicativeGroup},
	Field:                {DivisionRing},
}

// Implies returns c and every capability it extends, transitively, in ascending order.
func (c Capability) Implies() []Capability {
	seen := map[Capability]bool{}
	var walk func(Capability)
	walk = func(x Capability) {
		if seen[x] {
			return
		}
		seen[x] = true
		for _, y := range direct[x] {
			walk(y)
		}
	}
	walk(c)
	out := make([]Capability, 0, len(seen))
	for x := range seen {
		out = append(out, x)
	}
	slices.Sort(out)
	return out
}

// Closure returns the union of Implies over caps.
func Closure(caps ...Capability) []Capability {
	var out []Capability
	for _, c := range caps {
		for _, x := range c.Implies() {
			if !slices.Contains(out, x) {
				out = append(out, x)
			}
		}
	}
	slices.Sort(out)
	return out
}

// contribution is what one capability adds to the supported operator sets.
type contribution struct {
	binary     []*BinaryOperator
	unary      []*UnaryOperator
	comparison []*ComparisonOperator
	ints       []*IntOperator
}

var contributions = map[Capability]contribution{
	Magma: {
		binary:     []*BinaryOperator{Operation},
		unary:      []*UnaryOperator{Identify},
		comparison: []*ComparisonOperator{EQ, NEQ},
	},
	Group: {
		unary: []*UnaryOperator{Inversion},
	},
	AdditiveSemiGroup: {
		binary:     []*BinaryOperator{Addition},
		unary:      []*UnaryOperator{Identify},
		comparison: []*ComparisonOperator{EQ, NEQ},
		ints:       []*IntOperator{Multiple},
	},
	AdditiveGroup: {
		binary: []*BinaryOperator{Subtraction},
		unary:  []*UnaryOperator{Negation},
	},
	MultiplicativeSemiGroup: {
		binary:     []*BinaryOperator{Multiplication},
		unary:      []*UnaryOperator{Identify, Sqr},
		comparison: []*ComparisonOperator{EQ, NEQ},
		ints:       []*IntOperator{Power},
	},
	MultiplicativeGroup: {
		binary: []*BinaryOperator{Division},
		unary:  []*UnaryOperator{Reciprocal},
	},
	Ordered: {
		comparison: []*ComparisonOperator{EQ, NEQ, LT, LTE, GT, GTE},
	},
}

// Operators is the full operator surface of a set of capabilities.
type Operators struct {
	Binary     BinarySet
	Unary      UnarySet
	Comparison ComparisonSet
	Int        IntSet
}

// OperatorsFor returns the operators contributed by caps and everything they imply.
// The result is monotone: adding a capability never removes an operator.
func OperatorsFor(caps ...Capability) Operators {
	var c contribution
	for _, x := range Closure(caps...) {
		add := contributions[x]
		c.binary = append(c.binary, add.binary...)
		c.unary = append(c.unary, add.unary...)
		c.comparison = append(c.comparison, add.comparison...)
		c.ints = append(c.ints, add.ints...)
	}
	return Operators{
		Binary:     NewSet(c.binary...),
		Unary:      NewSet(c.unary...),
		Comparison: NewSet(c.comparison...),
		Int:        NewSet(c.ints...),
	}
}

// defaultCommutative lists the binary operators that commute by definition of caps.
func defaultCommutative(caps []Capability) []*BinaryOperator {
	var out []*BinaryOperator
	if slices.Contains(caps, Rng) {
		out = append(out, Addition)
	}
	if slices.Contains(caps, Field) {
		out = append(out, Multiplication)
	}
	return out
}

// defaultPartials derives which operators can fail for particular operands.
func defaultPartials(caps []Capability) []Operator {
	has := func(c Capability) bool { return slices.Contains(caps, c) }
	var out []Operator
	if has(MultiplicativeSemiGroup) && !has(MultiplicativeGroup) {
		out = append(out, Power)
	}
	if has(AdditiveSemiGroup) && !has(AdditiveGroup) {
		out = append(out, Multiple)
	}
	if has(MultiplicativeGroup) && has(AdditiveMonoid) {
		// zero has no reciprocal
		out = append(out, Reciprocal, Division, Power)
	}
	return out
}
