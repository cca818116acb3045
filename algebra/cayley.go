package algebra

import (
	"fmt"
	"slices"
	"strings"

	"github.com/katalvlaran/lvlath-algebra/config"
	"github.com/katalvlaran/lvlath-algebra/registry"
)

// DefaultMaxCayleyOrder is the CayleyTable limit when ALGEBRA_MAX_CAYLEY_ORDER is unset.
const DefaultMaxCayleyOrder = 256

// maxCayleyOrder reads the configured limit once.
var maxCayleyOrder = registry.Singleton(func() int {
	if n := config.LoadOrDefault().MaxCayleyOrder; n > 0 {
		return n
	}
	return DefaultMaxCayleyOrder
})

// CayleyOption configures CayleyTable.
type CayleyOption func(*cayleyOptions)

type cayleyOptions struct {
	maxOrder int
}

// WithMaxOrder overrides the configured largest structure order.
// Non-positive values are ignored.
func WithMaxOrder(n int) CayleyOption {
	return func(o *cayleyOptions) {
		if n > 0 {
			o.maxOrder = n
		}
	}
}

// Cell is one entry of a Cayley table: a value, or the error the
// operation produced for that pair.
type Cell[E Element] struct {
	Value E
	Err   error
}

func (c Cell[E]) String() string {
	if c.Err != nil {
		return c.Err.Error()
	}
	return c.Value.String()
}

// Table is the |S|×|S| operation table of a finite structure.
type Table[E Element] struct {
	op       *BinaryOperator
	elements []E
	cells    [][]Cell[E]
}

// CayleyTable computes op(a, b) for every pair of elements of s, in the
// enumeration order of s. Partial results are stored per cell.
//
// Errors:
//   - ErrNotFinite       s is infinite
//   - ErrTooLarge        |s| above the configured maximum
//   - ErrNoSuchOperator  s does not support op
//
// Complexity: O(|S|²) applications of op.
func CayleyTable[E Element](s FiniteStructure[E], op *BinaryOperator, opts ...CayleyOption) (*Table[E], error) {
	// 1. Options
	o := cayleyOptions{maxOrder: maxCayleyOrder()}
	for _, opt := range opts {
		opt(&o)
	}
	// 2. Finite and small enough
	card := s.Cardinality()
	if !card.IsFinite() {
		return nil, algebraErrorf("CayleyTable", fmt.Errorf("%s is %s: %w", s, card, ErrNotFinite))
	}
	order, ok := card.Order()
	if !ok || order > o.maxOrder {
		return nil, algebraErrorf("CayleyTable", fmt.Errorf("%s has %s elements, max %d: %w", s, card, o.maxOrder, ErrTooLarge))
	}
	// 3. Declared operator
	if err := require(s, op); err != nil {
		return nil, algebraErrorf("CayleyTable", err)
	}
	// 4. Fill
	elems := slices.Collect(s.Elements())
	cells := make([][]Cell[E], len(elems))
	for i, a := range elems {
		cells[i] = make([]Cell[E], len(elems))
		for j, b := range elems {
			v, err := applyBinary(op, a, b)
			cells[i][j] = Cell[E]{Value: v, Err: err}
		}
	}

	return &Table[E]{op: op, elements: elems, cells: cells}, nil
}

// Operator returns the tabulated operator.
func (t *Table[E]) Operator() *BinaryOperator { return t.op }

// Elements returns the row and column headers in order.
func (t *Table[E]) Elements() []E { return slices.Clone(t.elements) }

// Size returns the number of elements.
func (t *Table[E]) Size() int { return len(t.elements) }

// At returns the cell for row i and column j.
func (t *Table[E]) At(i, j int) Cell[E] { return t.cells[i][j] }

// Rows renders the table: a header row of the operator symbol followed by
// the elements, then one row per element followed by its results.
func (t *Table[E]) Rows() [][]string {
	rows := make([][]string, 0, len(t.elements)+1)
	header := make([]string, 0, len(t.elements)+1)
	header = append(header, t.op.Symbol())
	for _, e := range t.elements {
		header = append(header, e.String())
	}
	rows = append(rows, header)
	for i, e := range t.elements {
		row := make([]string, 0, len(t.elements)+1)
		row = append(row, e.String())
		for _, c := range t.cells[i] {
			row = append(row, c.String())
		}
		rows = append(rows, row)
	}
	return rows
}

func (t *Table[E]) String() string {
	var b strings.Builder
	for _, r := range t.Rows() {
		b.WriteString(strings.Join(r, "\t"))
		b.WriteByte('\n')
	}
	return b.String()
}
