// SPDX-License-Identifier: MIT
// Package linear: Dense is a row-major matrix over the elements of one
// algebraic structure, stored in a flat slice.

package linear

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/lvlath-algebra/algebra"
)

// denseErrorf wraps an underlying error with Dense method context.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is an r×c matrix whose entries all belong to one structure.
// Dense values are not safe for concurrent mutation.
type Dense[E algebra.Element] struct {
	r, c int // number of rows and columns
	data []E // flat backing storage, length == r*c
}

// New creates an r×c matrix with every entry set to fill.
// Complexity: O(r*c).
func New[E algebra.Element](rows, cols int, fill E) (*Dense[E], error) {
	// 1. Validate dimensions
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("New(%d,%d): %w", rows, cols, ErrBadShape)
	}
	// 2. Allocate and fill
	data := make([]E, rows*cols)
	for i := range data {
		data[i] = fill
	}
	return &Dense[E]{r: rows, c: cols, data: data}, nil
}

// FromRows builds a matrix from equal-length rows of elements of one structure.
//
// Errors: ErrBadShape for empty or ragged input, algebra.ErrStructureMismatch
// when entries come from different structures.
// Complexity: O(r*c).
func FromRows[E algebra.Element](rows [][]E) (*Dense[E], error) {
	// 1. Shape
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, fmt.Errorf("FromRows: %w", ErrBadShape)
	}
	r, c := len(rows), len(rows[0])
	data := make([]E, 0, r*c)
	for i, row := range rows {
		if len(row) != c {
			return nil, fmt.Errorf("FromRows: row %d has %d columns, want %d: %w", i, len(row), c, ErrBadShape)
		}
		data = append(data, row...)
	}
	// 2. One structure
	if err := algebra.CheckSame("FromRows", data...); err != nil {
		return nil, err
	}
	return &Dense[E]{r: r, c: c, data: data}, nil
}

// MustFromRows is FromRows for literal matrices. It panics on error.
func MustFromRows[E algebra.Element](rows [][]E) *Dense[E] {
	m, err := FromRows(rows)
	if err != nil {
		panic(err)
	}
	return m
}

// Rows returns the number of rows in the matrix.
func (m *Dense[E]) Rows() int { return m.r }

// Cols returns the number of columns in the matrix.
func (m *Dense[E]) Cols() int { return m.c }

// Structure returns the structure all entries belong to.
func (m *Dense[E]) Structure() algebra.Structure { return m.data[0].Structure() }

// indexOf computes the flat index for (row, col) or returns ErrOutOfRange.
func (m *Dense[E]) indexOf(method string, row, col int) (int, error) {
	if row < 0 || row >= m.r || col < 0 || col >= m.c {
		return 0, denseErrorf(method, row, col, ErrOutOfRange)
	}
	return row*m.c + col, nil
}

// At retrieves the element at (row, col).
// Complexity: O(1).
func (m *Dense[E]) At(row, col int) (E, error) {
	idx, err := m.indexOf("At", row, col)
	if err != nil {
		var zero E
		return zero, err
	}
	return m.data[idx], nil
}

// Set assigns v at (row, col). v must share the matrix's structure.
// Complexity: O(1).
func (m *Dense[E]) Set(row, col int, v E) error {
	idx, err := m.indexOf("Set", row, col)
	if err != nil {
		return err
	}
	if err = algebra.CheckSame("Set", m.data[0], v); err != nil {
		return err
	}
	m.data[idx] = v
	return nil
}

// at is the unchecked indexer for algorithms that already validated shape.
func (m *Dense[E]) at(row, col int) E { return m.data[row*m.c+col] }

// Row returns a copy of row i.
func (m *Dense[E]) Row(i int) ([]E, error) {
	if i < 0 || i >= m.r {
		return nil, denseErrorf("Row", i, 0, ErrOutOfRange)
	}
	out := make([]E, m.c)
	copy(out, m.data[i*m.c:(i+1)*m.c])
	return out, nil
}

// Clone returns a copy of the matrix. Elements are immutable, so sharing them is safe.
// Complexity: O(r*c).
func (m *Dense[E]) Clone() *Dense[E] {
	cp := make([]E, len(m.data))
	copy(cp, m.data)
	return &Dense[E]{r: m.r, c: m.c, data: cp}
}

// Transpose returns the c×r transpose.
// Complexity: O(r*c).
func (m *Dense[E]) Transpose() *Dense[E] {
	t := &Dense[E]{r: m.c, c: m.r, data: make([]E, len(m.data))}
	for i := 0; i < m.r; i++ {
		for j := 0; j < m.c; j++ {
			t.data[j*t.c+i] = m.data[i*m.c+j]
		}
	}
	return t
}

// Minor returns the matrix with row i and column j removed.
//
// Errors: ErrOutOfRange for a bad index, ErrBadShape when the result would be empty.
// Complexity: O(r*c).
func (m *Dense[E]) Minor(i, j int) (*Dense[E], error) {
	if _, err := m.indexOf("Minor", i, j); err != nil {
		return nil, err
	}
	if m.r < 2 || m.c < 2 {
		return nil, denseErrorf("Minor", i, j, ErrBadShape)
	}
	return m.minor(i, j), nil
}

func (m *Dense[E]) minor(i, j int) *Dense[E] {
	out := &Dense[E]{r: m.r - 1, c: m.c - 1, data: make([]E, 0, (m.r-1)*(m.c-1))}
	for row := 0; row < m.r; row++ {
		if row == i {
			continue
		}
		for col := 0; col < m.c; col++ {
			if col == j {
				continue
			}
			out.data = append(out.data, m.data[row*m.c+col])
		}
	}
	return out
}

// Map returns a new matrix with fn applied to every entry.
func Map[E, F algebra.Element](m *Dense[E], fn func(E) F) (*Dense[F], error) {
	data := make([]F, len(m.data))
	for i, v := range m.data {
		data[i] = fn(v)
	}
	if err := algebra.CheckSame("Map", data...); err != nil {
		return nil, err
	}
	return &Dense[F]{r: m.r, c: m.c, data: data}, nil
}

// String renders one bracketed row per line.
func (m *Dense[E]) String() string {
	var b strings.Builder
	for i := 0; i < m.r; i++ {
		b.WriteByte('[')
		for j := 0; j < m.c; j++ {
			if j > 0 {
				b.WriteString(", ")
			}
			b.WriteString(m.data[i*m.c+j].String())
		}
		b.WriteString("]\n")
	}
	return b.String()
}
