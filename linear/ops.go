package linear

import (
	"fmt"

	"github.com/katalvlaran/lvlath-algebra/algebra"
)

// Identity returns the n×n identity over the structure of sample.
func Identity[E algebra.RingElement[E]](n int, sample E) (*Dense[E], error) {
	m, err := New(n, n, sample.Zero())
	if err != nil {
		return nil, err
	}
	one := sample.One()
	for i := 0; i < n; i++ {
		m.data[i*n+i] = one
	}
	return m, nil
}

// Product returns a·b.
//
// Errors: ErrDimensionMismatch when a.Cols() != b.Rows(),
// algebra.ErrStructureMismatch when the operands use different structures.
// Complexity: O(r·k·c) ring operations.
func Product[E algebra.RngElement[E]](a, b *Dense[E]) (*Dense[E], error) {
	// 1. Validate
	if a.c != b.r {
		return nil, fmt.Errorf("Product: %dx%d · %dx%d: %w", a.r, a.c, b.r, b.c, ErrDimensionMismatch)
	}
	if err := algebra.CheckSame("Product", a.data[0], b.data[0]); err != nil {
		return nil, err
	}
	// 2. Multiply
	out := &Dense[E]{r: a.r, c: b.c, data: make([]E, a.r*b.c)}
	for i := 0; i < a.r; i++ {
		for j := 0; j < b.c; j++ {
			sum := a.at(i, 0).Times(b.at(0, j))
			for k := 1; k < a.c; k++ {
				sum = sum.Plus(a.at(i, k).Times(b.at(k, j)))
			}
			out.data[i*out.c+j] = sum
		}
	}
	return out, nil
}

// Sum returns a+b entrywise.
func Sum[E algebra.AdditiveSemiGroupElement[E]](a, b *Dense[E]) (*Dense[E], error) {
	if a.r != b.r || a.c != b.c {
		return nil, fmt.Errorf("Sum: %dx%d + %dx%d: %w", a.r, a.c, b.r, b.c, ErrDimensionMismatch)
	}
	if err := algebra.CheckSame("Sum", a.data[0], b.data[0]); err != nil {
		return nil, err
	}
	out := &Dense[E]{r: a.r, c: a.c, data: make([]E, len(a.data))}
	for i := range a.data {
		out.data[i] = a.data[i].Plus(b.data[i])
	}
	return out, nil
}

// Equal reports whether a and b have the same shape and equal entries.
func Equal[E algebra.AlgebraicElement[E]](a, b *Dense[E]) bool {
	if a.r != b.r || a.c != b.c {
		return false
	}
	if a.data[0].Structure() != b.data[0].Structure() {
		return false
	}
	for i := range a.data {
		if !a.data[i].Eq(b.data[i]) {
			return false
		}
	}
	return true
}
