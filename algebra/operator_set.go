package algebra

import (
	"iter"
	"slices"
	"strings"
)

// Set is an immutable, deterministically ordered set of operators.
// The zero value is the empty set.
type Set[O Operator] struct {
	ops []O
}

// Operator sets by kind.
type (
	BinarySet     = Set[*BinaryOperator]
	UnarySet      = Set[*UnaryOperator]
	ComparisonSet = Set[*ComparisonOperator]
	IntSet        = Set[*IntOperator]
	FunctionSet   = Set[*FunctionOperator]
)

// NewSet builds a set from ops, sorted by Compare with duplicates removed.
// Complexity: O(n log n).
func NewSet[O Operator](ops ...O) Set[O] {
	s := make([]O, 0, len(ops))
	for _, op := range ops {
		if !contains(s, op) {
			s = append(s, op)
		}
	}
	slices.SortStableFunc(s, func(a, b O) int { return Compare(a, b) })
	return Set[O]{ops: s}
}

func contains[O Operator](ops []O, op O) bool {
	for _, o := range ops {
		if Operator(o) == Operator(op) {
			return true
		}
	}
	return false
}

// Contains reports whether op is a member, by identity.
func (s Set[O]) Contains(op O) bool { return contains(s.ops, op) }

// Len returns the number of operators.
func (s Set[O]) Len() int { return len(s.ops) }

// Union returns a new set holding the members of both.
func (s Set[O]) Union(other Set[O]) Set[O] {
	return NewSet(append(slices.Clone(s.ops), other.ops...)...)
}

// SupersetOf reports whether every member of other is in s.
func (s Set[O]) SupersetOf(other Set[O]) bool {
	for _, op := range other.ops {
		if !s.Contains(op) {
			return false
		}
	}
	return true
}

// All iterates members in order.
func (s Set[O]) All() iter.Seq[O] { return slices.Values(s.ops) }

// Slice returns a copy of the members in order.
func (s Set[O]) Slice() []O { return slices.Clone(s.ops) }

// Lookup finds a member by symbol.
func (s Set[O]) Lookup(symbol string) (O, bool) {
	for _, op := range s.ops {
		if op.Symbol() == symbol {
			return op, true
		}
	}
	var zero O
	return zero, false
}

func (s Set[O]) String() string {
	names := make([]string, len(s.ops))
	for i, op := range s.ops {
		names[i] = op.Symbol()
	}
	return "{" + strings.Join(names, ", ") + "}"
}
