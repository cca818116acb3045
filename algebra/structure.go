package algebra

import (
	"fmt"
	"iter"
	"slices"
)

// Structure is a named algebraic system. Implementations are pointers and
// are never mutated after construction; identity is pointer identity.
type Structure interface {
	fmt.Stringer
	Cardinality() Cardinality
	Capabilities() []Capability
	SupportedOperators() BinarySet
	SupportedUnaryOperators() UnarySet
	SupportedComparisonOperators() ComparisonSet
	SupportedIntOperators() IntSet
	SupportedFunctions() FunctionSet
	// CommutativeOperators lists supported binary operators with a ∘ b = b ∘ a.
	CommutativeOperators() BinarySet
	// PartialOperators lists supported operators that may fail for particular operands.
	PartialOperators() Set[Operator]
	// SuperStructures lists the immediate structures this one casts into.
	SuperStructures() []Structure
}

// Element is an immutable value belonging to exactly one Structure.
type Element interface {
	fmt.Stringer
	Structure() Structure
}

// FiniteStructure is a structure whose elements can be enumerated in a fixed order.
type FiniteStructure[E Element] interface {
	Structure
	Elements() iter.Seq[E]
}

// DirectCaster is implemented by elements that convert themselves into
// some other structures without a graph search.
type DirectCaster interface {
	CastDirectly(target Structure) (Element, bool)
}

// Has reports whether s has capability c, directly or by implication.
func Has(s Structure, c Capability) bool {
	return slices.Contains(s.Capabilities(), c)
}

// Supports reports whether s declares op. Composed operators are
// supported when every constituent is.
func Supports(s Structure, op Operator) bool {
	switch o := op.(type) {
	case *BinaryOperator:
		if o.Composed() {
			return supportsAll(s, o.constituents())
		}
		return s.SupportedOperators().Contains(o)
	case *UnaryOperator:
		if o.Composed() {
			return supportsAll(s, o.constituents())
		}
		return s.SupportedUnaryOperators().Contains(o)
	case *ComparisonOperator:
		return s.SupportedComparisonOperators().Contains(o)
	case *IntOperator:
		return s.SupportedIntOperators().Contains(o)
	case *FunctionOperator:
		return s.SupportedFunctions().Contains(o)
	}
	return false
}

// IsCommutative reports whether op commutes in s. A composed operator
// commutes when its base does. Unsupported operators fail with an
// *UnsupportedOperatorError.
func IsCommutative(s Structure, op *BinaryOperator) (bool, error) {
	if err := require(s, op); err != nil {
		return false, err
	}
	for op.base != nil {
		op = op.base
	}
	return s.CommutativeOperators().Contains(op), nil
}

func supportsAll(s Structure, ops []Operator) bool {
	for _, op := range ops {
		if !Supports(s, op) {
			return false
		}
	}
	return true
}

// IsPartialOperator reports whether op may fail for some operands of s.
func IsPartialOperator(s Structure, op Operator) bool {
	if b, ok := op.(*BinaryOperator); ok && b.Composed() {
		return anyPartial(s, b.constituents())
	}
	if u, ok := op.(*UnaryOperator); ok && u.Composed() {
		return anyPartial(s, u.constituents())
	}
	return s.PartialOperators().Contains(op)
}

func anyPartial(s Structure, ops []Operator) bool {
	for _, op := range ops {
		if s.PartialOperators().Contains(op) {
			return true
		}
	}
	return false
}

// OperatorBySymbol finds any supported operator of s by its symbol.
// Binary operators are searched first, then unary, comparison, int and functions.
func OperatorBySymbol(s Structure, symbol string) (Operator, bool) {
	if op, ok := s.SupportedOperators().Lookup(symbol); ok {
		return op, true
	}
	if op, ok := s.SupportedUnaryOperators().Lookup(symbol); ok {
		return op, true
	}
	if op, ok := s.SupportedComparisonOperators().Lookup(symbol); ok {
		return op, true
	}
	if op, ok := s.SupportedIntOperators().Lookup(symbol); ok {
		return op, true
	}
	if op, ok := s.SupportedFunctions().Lookup(symbol); ok {
		return op, true
	}
	return nil, false
}

// Descriptor carries the declared data of a structure. Concrete structures
// embed it and gain every Structure method except those they override.
type Descriptor struct {
	name        string
	card        Cardinality
	caps        []Capability
	ops         Operators
	funcs       FunctionSet
	commutative BinarySet
	partial     Set[Operator]
	supers      []Structure
}

// DescriptorOption customizes a Descriptor at construction.
type DescriptorOption func(*descriptorOptions)

type descriptorOptions struct {
	supers      []Structure
	partial     []Operator
	exact       bool
	funcs       []*FunctionOperator
	comparisons []*ComparisonOperator
	commutative []*BinaryOperator
}

// WithSuperStructures declares the immediate cast targets.
func WithSuperStructures(supers ...Structure) DescriptorOption {
	return func(o *descriptorOptions) {
		o.supers = append(o.supers, supers...)
	}
}

// WithPartial marks additional operators as partial.
func WithPartial(ops ...Operator) DescriptorOption {
	return func(o *descriptorOptions) {
		o.partial = append(o.partial, ops...)
	}
}

// WithExactPartials replaces the derived partial operators with those given by WithPartial.
func WithExactPartials() DescriptorOption {
	return func(o *descriptorOptions) {
		o.exact = true
	}
}

// WithFunctions declares the functions the elements provide.
func WithFunctions(fs ...*FunctionOperator) DescriptorOption {
	return func(o *descriptorOptions) {
		o.funcs = append(o.funcs, fs...)
	}
}

// WithComparisons adds comparison operators beyond those the capabilities
// contribute, typically Equals.
func WithComparisons(ops ...*ComparisonOperator) DescriptorOption {
	return func(o *descriptorOptions) {
		o.comparisons = append(o.comparisons, ops...)
	}
}

// WithCommutative declares binary operators that commute in addition to
// those the capabilities imply (addition in a rng, multiplication in a field).
func WithCommutative(ops ...*BinaryOperator) DescriptorOption {
	return func(o *descriptorOptions) {
		o.commutative = append(o.commutative, ops...)
	}
}

// NewDescriptor declares a structure with the given capabilities. The
// supported operators are derived from the capability closure.
func NewDescriptor(name string, card Cardinality, caps []Capability, opts ...DescriptorOption) Descriptor {
	var o descriptorOptions
	for _, opt := range opts {
		opt(&o)
	}
	closure := Closure(caps...)
	partial := o.partial
	if !o.exact {
		partial = append(defaultPartials(closure), partial...)
	}
	ops := OperatorsFor(closure...)
	ops.Comparison = ops.Comparison.Union(NewSet(o.comparisons...))
	var commutative []*BinaryOperator
	for _, op := range append(defaultCommutative(closure), o.commutative...) {
		if ops.Binary.Contains(op) {
			commutative = append(commutative, op)
		}
	}
	return Descriptor{
		name:        name,
		card:        card,
		caps:        closure,
		ops:         ops,
		funcs:       NewSet(o.funcs...),
		commutative: NewSet(commutative...),
		partial:     NewSet(partial...),
		supers:      slices.Clone(o.supers),
	}
}

func (d *Descriptor) String() string                              { return d.name }
func (d *Descriptor) Cardinality() Cardinality                    { return d.card }
func (d *Descriptor) Capabilities() []Capability                  { return slices.Clone(d.caps) }
func (d *Descriptor) SupportedOperators() BinarySet               { return d.ops.Binary }
func (d *Descriptor) SupportedUnaryOperators() UnarySet           { return d.ops.Unary }
func (d *Descriptor) SupportedComparisonOperators() ComparisonSet { return d.ops.Comparison }
func (d *Descriptor) SupportedIntOperators() IntSet               { return d.ops.Int }
func (d *Descriptor) SupportedFunctions() FunctionSet             { return d.funcs }
func (d *Descriptor) CommutativeOperators() BinarySet             { return d.commutative }
func (d *Descriptor) PartialOperators() Set[Operator]             { return d.partial }
func (d *Descriptor) SuperStructures() []Structure                { return slices.Clone(d.supers) }

// sameStructure returns a mismatch error unless a and b share a structure instance.
func sameStructure(op string, a, b Element) error {
	if a.Structure() != b.Structure() {
		return &StructureMismatchError{Op: op, Left: a.Structure(), Right: b.Structure()}
	}
	return nil
}

// CheckSame returns a *StructureMismatchError unless every element shares one structure.
func CheckSame[E Element](op string, elems ...E) error {
	for i := 1; i < len(elems); i++ {
		if err := sameStructure(op, elems[0], elems[i]); err != nil {
			return err
		}
	}
	return nil
}

// MustSame panics with a *StructureMismatchError when a and b differ in structure.
// Element methods call it to refuse silent mixing.
func MustSame(op string, a, b Element) {
	if err := sameStructure(op, a, b); err != nil {
		panic(err)
	}
}
