package linear

import (
	"fmt"

	"github.com/katalvlaran/lvlath-algebra/algebra"
	"github.com/katalvlaran/lvlath-algebra/permutations"
)

func validateSquare[E algebra.Element](method string, m *Dense[E]) error {
	if m == nil || len(m.data) == 0 {
		return fmt.Errorf("%s: %w", method, ErrBadShape)
	}
	if m.r != m.c {
		return fmt.Errorf("%s: %dx%d: %w", method, m.r, m.c, ErrNonSquare)
	}
	return nil
}

// Determinant computes det(m) over a division ring by Gaussian elimination
// with partial pivoting on a copy of m. Each row swap flips the sign; a
// column that is zero on and below the diagonal ends elimination with 0.
//
// The pivot is the entry of largest magnitude when elements are ordered
// and provide Abs, otherwise the first non-zero entry.
//
// Complexity: O(n³) ring operations, O(n²) memory.
func Determinant[E algebra.DivisionRingElement[E]](m *Dense[E]) (E, error) {
	if err := validateSquare("Determinant", m); err != nil {
		var zero E
		return zero, err
	}
	return gaussian(m, func(x E) (E, error) { return x.Reciprocal() })
}

// gaussian eliminates below the diagonal using recip on each pivot.
func gaussian[E algebra.RingElement[E]](m *Dense[E], recip func(E) (E, error)) (E, error) {
	n := m.r
	a := m.Clone().data
	zero := a[0].Zero()
	swaps := 0
	for col := 0; col < n; col++ {
		// 1. Choose the pivot row
		p := pivotRow(a, n, col)
		if p < 0 {
			return zero, nil
		}
		if p != col {
			swapRows(a, n, p, col)
			swaps++
		}
		// 2. Eliminate entries below the pivot
		inv, err := recip(a[col*n+col])
		if err != nil {
			return zero, err
		}
		for r := col + 1; r < n; r++ {
			below := a[r*n+col]
			if algebra.IsZero(below) {
				continue
			}
			f := below.Times(inv)
			for k := col; k < n; k++ {
				a[r*n+k] = algebra.Minus(a[r*n+k], f.Times(a[col*n+k]))
			}
		}
	}
	// 3. Product of the diagonal, signed by swap parity
	det := a[0]
	for i := 1; i < n; i++ {
		det = det.Times(a[i*n+i])
	}
	if swaps%2 == 1 {
		det = det.Negation()
	}
	return det, nil
}

// pivotRow returns the pivot row for col, or -1 when the column is zero from col down.
func pivotRow[E algebra.RingElement[E]](a []E, n, col int) int {
	best := -1
	var bestAbs algebra.OrderedElement[E]
	for r := col; r < n; r++ {
		v := a[r*n+col]
		if algebra.IsZero(v) {
			continue
		}
		abs, hasAbs := algebra.Abs(v)
		ord, ordered := any(abs).(algebra.OrderedElement[E])
		if !hasAbs || !ordered {
			return r
		}
		if best < 0 || bestAbs.Compare(abs) < 0 {
			best, bestAbs = r, ord
		}
	}
	return best
}

func swapRows[E any](a []E, n, i, j int) {
	for k := 0; k < n; k++ {
		a[i*n+k], a[j*n+k] = a[j*n+k], a[i*n+k]
	}
}

// DeterminantLeibniz computes det(m) as the signed sum over all
// permutations, needing only ring operations (no division). Permutations
// and their signs come from Algorithm L.
//
// Complexity: O(n·n!) ring operations.
func DeterminantLeibniz[E algebra.RngElement[E]](m *Dense[E]) (E, error) {
	if err := validateSquare("DeterminantLeibniz", m); err != nil {
		var zero E
		return zero, err
	}
	return leibniz(m), nil
}

func leibniz[E algebra.RngElement[E]](m *Dense[E]) E {
	n := m.r
	sum := m.data[0].Zero()
	for perm, sgn := range permutations.All(n) {
		term := m.at(0, perm[0])
		for i := 1; i < n; i++ {
			term = term.Times(m.at(i, perm[i]))
		}
		if sgn > 0 {
			sum = sum.Plus(term)
		} else {
			sum = algebra.Minus(sum, term)
		}
	}
	return sum
}

// determinantFor picks Gaussian elimination when elements have
// reciprocals and the Leibniz formula otherwise.
func determinantFor[E algebra.RingElement[E]](sample E) func(*Dense[E]) (E, error) {
	if _, ok := any(sample).(algebra.MultiplicativeGroupElement[E]); ok {
		recip := func(x E) (E, error) {
			return any(x).(algebra.MultiplicativeGroupElement[E]).Reciprocal()
		}
		return func(m *Dense[E]) (E, error) { return gaussian(m, recip) }
	}
	return func(m *Dense[E]) (E, error) { return leibniz(m), nil }
}

// Adjugate returns the transpose of the cofactor matrix:
// adj[j][i] = (-1)^(i+j) · det(minor(i, j)).
//
// Complexity: n² minor determinants, each O(n³) by elimination or
// O(n·n!) by Leibniz when elements have no reciprocal.
func Adjugate[E algebra.RingElement[E]](m *Dense[E]) (*Dense[E], error) {
	// 1. Validate
	if err := validateSquare("Adjugate", m); err != nil {
		return nil, err
	}
	n := m.r
	if n == 1 {
		return &Dense[E]{r: 1, c: 1, data: []E{m.data[0].One()}}, nil
	}
	// 2. Signed cofactors, transposed
	det := determinantFor(m.data[0])
	adj := &Dense[E]{r: n, c: n, data: make([]E, n*n)}
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			d, err := det(m.minor(i, j))
			if err != nil {
				return nil, err
			}
			if (i+j)%2 == 1 {
				d = d.Negation()
			}
			adj.data[j*n+i] = d
		}
	}
	return adj, nil
}

// Inverse returns m⁻¹ = adj(m) · det(m)⁻¹. A zero determinant fails with an
// *algebra.OperationError whose reason is ErrSingular.
func Inverse[E algebra.DivisionRingElement[E]](m *Dense[E]) (*Dense[E], error) {
	det, err := Determinant(m)
	if err != nil {
		return nil, err
	}
	if algebra.IsZero(det) {
		return nil, algebra.NewOperationError("inverse", m, ErrSingular)
	}
	rdet, err := det.Reciprocal()
	if err != nil {
		return nil, err
	}
	adj, err := Adjugate(m)
	if err != nil {
		return nil, err
	}
	for i := range adj.data {
		adj.data[i] = adj.data[i].Times(rdet)
	}
	return adj, nil
}
