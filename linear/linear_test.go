package linear_test

import (
	"fmt"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/lvlath-algebra/algebra"
	"github.com/katalvlaran/lvlath-algebra/integers"
	"github.com/katalvlaran/lvlath-algebra/linear"
	"github.com/katalvlaran/lvlath-algebra/rationals"
	"github.com/katalvlaran/lvlath-algebra/reals"
)

func ratMatrix(t *testing.T, rows [][]int64) *linear.Dense[rationals.Rational] {
	t.Helper()
	out := make([][]rationals.Rational, len(rows))
	for i, r := range rows {
		for _, v := range r {
			out[i] = append(out[i], rationals.Int(v))
		}
	}
	m, err := linear.FromRows(out)
	require.NoError(t, err)
	return m
}

func modMatrix(t *testing.T, f *integers.ModuloField, rows [][]int64) *linear.Dense[integers.ModuloFieldElement] {
	t.Helper()
	out := make([][]integers.ModuloFieldElement, len(rows))
	for i, r := range rows {
		for _, v := range r {
			out[i] = append(out[i], f.Of(v))
		}
	}
	m, err := linear.FromRows(out)
	require.NoError(t, err)
	return m
}

// TestDense_Shape covers constructor validation and index errors.
func TestDense_Shape(t *testing.T) {
	_, err := linear.New(0, 2, rationals.Int(0))
	assert.ErrorIs(t, err, linear.ErrBadShape)

	_, err = linear.FromRows([][]rationals.Rational{{rationals.Int(1)}, {rationals.Int(1), rationals.Int(2)}})
	assert.ErrorIs(t, err, linear.ErrBadShape, "ragged rows")

	_, err = linear.FromRows[rationals.Rational](nil)
	assert.ErrorIs(t, err, linear.ErrBadShape)

	m := ratMatrix(t, [][]int64{{1, 2, 3}, {4, 5, 6}})
	assert.Equal(t, 2, m.Rows())
	assert.Equal(t, 3, m.Cols())
	v, err := m.At(1, 2)
	require.NoError(t, err)
	assert.Equal(t, "6", v.String())

	_, err = m.At(2, 0)
	assert.ErrorIs(t, err, linear.ErrOutOfRange)
	assert.ErrorIs(t, m.Set(0, 3, rationals.Int(1)), linear.ErrOutOfRange)

	tr := m.Transpose()
	assert.Equal(t, 3, tr.Rows())
	v, _ = tr.At(2, 1)
	assert.Equal(t, "6", v.String())
}

// TestDense_MixedStructures rejects entries from different moduli.
func TestDense_MixedStructures(t *testing.T) {
	f5, f7 := integers.MustModuloField(5), integers.MustModuloField(7)
	_, err := linear.FromRows([][]integers.ModuloFieldElement{{f5.Of(1), f7.Of(1)}})
	assert.ErrorIs(t, err, algebra.ErrStructureMismatch)

	m := modMatrix(t, f5, [][]int64{{1}})
	assert.ErrorIs(t, m.Set(0, 0, f7.Of(2)), algebra.ErrStructureMismatch)
}

// TestDeterminant_Rationals checks the 2×2 example and pivoting by row swap.
func TestDeterminant_Rationals(t *testing.T) {
	det, err := linear.Determinant(ratMatrix(t, [][]int64{{1, 2}, {3, 4}}))
	require.NoError(t, err)
	assert.True(t, det.Eq(rationals.Int(-2)), "got %s", det)

	swapped, err := linear.Determinant(ratMatrix(t, [][]int64{{0, 1}, {1, 0}}))
	require.NoError(t, err)
	assert.True(t, swapped.Eq(rationals.Int(-1)), "got %s", swapped)

	id, err := linear.Identity(4, rationals.Int(0))
	require.NoError(t, err)
	one, err := linear.Determinant(id)
	require.NoError(t, err)
	assert.True(t, algebra.IsOne(one))

	singular, err := linear.Determinant(ratMatrix(t, [][]int64{{1, 2}, {2, 4}}))
	require.NoError(t, err)
	assert.True(t, algebra.IsZero(singular))

	_, err = linear.Determinant(ratMatrix(t, [][]int64{{1, 2, 3}}))
	assert.ErrorIs(t, err, linear.ErrNonSquare)
}

// TestDeterminant_LeibnizAgrees compares both algorithms over ℤ/7ℤ and ℚ.
func TestDeterminant_LeibnizAgrees(t *testing.T) {
	f := integers.MustModuloField(7)
	for n := 1; n <= 5; n++ {
		rows := make([][]int64, n)
		for i := range rows {
			for j := 0; j < n; j++ {
				rows[i] = append(rows[i], int64((7*i*i+3*j+2*i*j*j+1)%11))
			}
		}

		m := modMatrix(t, f, rows)
		g, err := linear.Determinant(m)
		require.NoError(t, err)
		l, err := linear.DeterminantLeibniz(m)
		require.NoError(t, err)
		assert.True(t, g.Eq(l), "ℤ/7ℤ n=%d: gauss %s, leibniz %s", n, g, l)

		q := ratMatrix(t, rows)
		gq, err := linear.Determinant(q)
		require.NoError(t, err)
		lq, err := linear.DeterminantLeibniz(q)
		require.NoError(t, err)
		assert.True(t, gq.Eq(lq), "ℚ n=%d: gauss %s, leibniz %s", n, gq, lq)
	}
}

// TestDeterminant_RowSwapNegates swaps every row pair of seeded random matrices.
func TestDeterminant_RowSwapNegates(t *testing.T) {
	rng := rand.New(rand.NewPCG(7, 11))
	f := integers.MustModuloField(13)
	for _, n := range []int{3, 4} {
		for trial := 0; trial < 4; trial++ {
			rows := make([][]int64, n)
			for i := range rows {
				for j := 0; j < n; j++ {
					rows[i] = append(rows[i], rng.Int64N(19)-9)
				}
			}
			detQ, err := linear.Determinant(ratMatrix(t, rows))
			require.NoError(t, err)
			detP, err := linear.Determinant(modMatrix(t, f, rows))
			require.NoError(t, err)

			for i := 0; i < n; i++ {
				for j := i + 1; j < n; j++ {
					swapped := make([][]int64, n)
					copy(swapped, rows)
					swapped[i], swapped[j] = swapped[j], swapped[i]

					q, err := linear.Determinant(ratMatrix(t, swapped))
					require.NoError(t, err)
					assert.True(t, q.Eq(detQ.Negation()), "ℚ n=%d swap %d,%d: %s vs %s", n, i, j, q, detQ)

					p, err := linear.Determinant(modMatrix(t, f, swapped))
					require.NoError(t, err)
					assert.True(t, p.Eq(detP.Negation()), "ℤ/13ℤ n=%d swap %d,%d: %s vs %s", n, i, j, p, detP)
				}
			}
		}
	}
}

// TestDeterminantLeibniz_Rng works without a multiplicative identity.
func TestDeterminantLeibniz_Rng(t *testing.T) {
	m, err := linear.FromRows([][]integers.EvenInteger{
		{integers.MustEven(2), integers.MustEven(4)},
		{integers.MustEven(6), integers.MustEven(8)},
	})
	require.NoError(t, err)
	det, err := linear.DeterminantLeibniz(m)
	require.NoError(t, err)
	assert.True(t, det.Eq(integers.MustEven(-8)), "got %s", det)
}

// TestAdjugate_Integers checks m·adj(m) = det(m)·I over ℤ.
func TestAdjugate_Integers(t *testing.T) {
	m, err := linear.FromRows([][]integers.Integer{
		{integers.Of(1), integers.Of(2)},
		{integers.Of(3), integers.Of(4)},
	})
	require.NoError(t, err)
	adj, err := linear.Adjugate(m)
	require.NoError(t, err)

	want, err := linear.FromRows([][]integers.Integer{
		{integers.Of(4), integers.Of(-2)},
		{integers.Of(-3), integers.Of(1)},
	})
	require.NoError(t, err)
	assert.True(t, linear.Equal(adj, want), "adj = %s", adj)

	p, err := linear.Product(m, adj)
	require.NoError(t, err)
	detI, err := linear.FromRows([][]integers.Integer{
		{integers.Of(-2), integers.Of(0)},
		{integers.Of(0), integers.Of(-2)},
	})
	require.NoError(t, err)
	assert.True(t, linear.Equal(p, detI))

	one, err := linear.Adjugate(linear.MustFromRows([][]integers.Integer{{integers.Of(9)}}))
	require.NoError(t, err)
	v, _ := one.At(0, 0)
	assert.True(t, algebra.IsOne(v))
}

// TestInverse round-trips over ℚ and ℤ/7ℤ.
func TestInverse(t *testing.T) {
	q := ratMatrix(t, [][]int64{{2, 0, 1}, {1, 3, 2}, {1, 1, 2}})
	inv, err := linear.Inverse(q)
	require.NoError(t, err)
	p, err := linear.Product(q, inv)
	require.NoError(t, err)
	id, err := linear.Identity(3, rationals.Int(0))
	require.NoError(t, err)
	assert.True(t, linear.Equal(p, id), "A·A⁻¹ = %s", p)

	f := integers.MustModuloField(7)
	m := modMatrix(t, f, [][]int64{{3, 1}, {2, 5}})
	minv, err := linear.Inverse(m)
	require.NoError(t, err)
	mp, err := linear.Product(minv, m)
	require.NoError(t, err)
	mid, err := linear.Identity(2, f.Zero())
	require.NoError(t, err)
	assert.True(t, linear.Equal(mp, mid), "A⁻¹·A = %s", mp)
}

// TestInverse_Singular must fail as a partial operation, not a structural one.
func TestInverse_Singular(t *testing.T) {
	_, err := linear.Inverse(ratMatrix(t, [][]int64{{1, 2}, {2, 4}}))
	require.Error(t, err)
	assert.ErrorIs(t, err, linear.ErrSingular)
	assert.True(t, algebra.IsPartial(err))
	assert.False(t, algebra.IsStructural(err))
}

// TestDeterminant_RealsMatchGonum cross-checks elimination over ℝ.
func TestDeterminant_RealsMatchGonum(t *testing.T) {
	vals := []float64{
		4, -2, 1, 3,
		3, 6, -4, 2,
		2, 1, 8, -5,
		1, 0, 2, 7,
	}
	rows := make([][]reals.Real, 4)
	for i := range rows {
		for j := 0; j < 4; j++ {
			rows[i] = append(rows[i], reals.Of(vals[i*4+j]))
		}
	}
	m, err := linear.FromRows(rows)
	require.NoError(t, err)
	got, err := linear.Determinant(m)
	require.NoError(t, err)

	want := mat.Det(mat.NewDense(4, 4, vals))
	assert.InDelta(t, want, got.Float64(), 1e-9)
}

// TestProduct_Dimensions rejects incompatible shapes.
func TestProduct_Dimensions(t *testing.T) {
	a := ratMatrix(t, [][]int64{{1, 2, 3}, {4, 5, 6}})
	_, err := linear.Product(a, a)
	assert.ErrorIs(t, err, linear.ErrDimensionMismatch)

	p, err := linear.Product(a, a.Transpose())
	require.NoError(t, err)
	want := ratMatrix(t, [][]int64{{14, 32}, {32, 77}})
	assert.True(t, linear.Equal(p, want))

	s, err := linear.Sum(a, a)
	require.NoError(t, err)
	assert.True(t, linear.Equal(s, ratMatrix(t, [][]int64{{2, 4, 6}, {8, 10, 12}})))
	_, err = linear.Sum(a, p)
	assert.ErrorIs(t, err, linear.ErrDimensionMismatch)
}

func ExampleDeterminant() {
	m := linear.MustFromRows([][]rationals.Rational{
		{rationals.Int(1), rationals.Int(2)},
		{rationals.Int(3), rationals.Int(4)},
	})
	det, _ := linear.Determinant(m)
	fmt.Println(det)
	// Output: -2
}
