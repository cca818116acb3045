// Package klein implements the Klein four-group V = {e, a, b, c}, the
// smallest non-cyclic group. Every element is its own inverse and the
// product of any two distinct non-identity elements is the third.
package klein

import (
	"iter"

	"github.com/katalvlaran/lvlath-algebra/algebra"
	"github.com/katalvlaran/lvlath-algebra/registry"
)

// Group is the single instance of V.
type Group struct {
	algebra.Descriptor
}

var group = registry.Singleton(func() *Group {
	return &Group{
		Descriptor: algebra.NewDescriptor("K₄", algebra.Finite(4), []algebra.Capability{algebra.Group},
			algebra.WithCommutative(algebra.Operation)),
	}
})

// FourGroup returns V.
func FourGroup() *Group { return group() }

// The four elements. Their indices form (ℤ/2ℤ)² under XOR.
var (
	E = Element{idx: 0}
	A = Element{idx: 1}
	B = Element{idx: 2}
	C = Element{idx: 3}
)

var names = [4]string{"e", "a", "b", "c"}

// Elements yields e, a, b, c.
func (*Group) Elements() iter.Seq[Element] {
	return func(yield func(Element) bool) {
		for _, x := range []Element{E, A, B, C} {
			if !yield(x) {
				return
			}
		}
	}
}

// Unity returns e.
func (*Group) Unity() Element { return E }

// Element is a member of V.
type Element struct {
	idx uint8
}

func (x Element) Structure() algebra.Structure { return FourGroup() }
func (x Element) String() string               { return names[x.idx&3] }

func (x Element) Eq(y Element) bool         { return x.idx == y.idx }
func (x Element) Operate(y Element) Element { return Element{idx: x.idx ^ y.idx} }
func (x Element) Unity() Element            { return E }
func (x Element) Inverse() Element          { return x }
