package klein_test

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/lvlath-algebra/algebra"
	"github.com/katalvlaran/lvlath-algebra/internal/algebratest"
	"github.com/katalvlaran/lvlath-algebra/klein"
)

// TestFourGroup_Laws checks the group axioms and commutativity.
func TestFourGroup_Laws(t *testing.T) {
	g := klein.FourGroup()
	elems := slices.Collect(g.Elements())
	assert.Equal(t, []klein.Element{klein.E, klein.A, klein.B, klein.C}, elems)

	algebratest.GroupLaws(t, elems)
	algebratest.Commutative(t, "operation", elems, func(a, b klein.Element) klein.Element { return a.Operate(b) })
	assert.Same(t, g, klein.FourGroup())
}

// TestFourGroup_Structure pins the table facts that make V non-cyclic.
func TestFourGroup_Structure(t *testing.T) {
	for _, x := range []klein.Element{klein.A, klein.B, klein.C} {
		assert.Equal(t, klein.E, x.Operate(x), "%s has order 2", x)
		assert.Equal(t, x, x.Inverse())
	}
	assert.Equal(t, klein.C, klein.A.Operate(klein.B))
	assert.Equal(t, klein.A, klein.B.Operate(klein.C))
	assert.Equal(t, klein.B, klein.C.Operate(klein.A))
	assert.Equal(t, klein.E, klein.FourGroup().Unity())

	g := klein.FourGroup()
	assert.True(t, algebra.Supports(g, algebra.Inversion))
	assert.False(t, algebra.Supports(g, algebra.Multiplication))
	assert.Empty(t, g.SuperStructures())
	assert.Equal(t, "K₄", g.String())
	assert.Equal(t, "c", klein.C.String())
}
