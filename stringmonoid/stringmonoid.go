// Package stringmonoid is the free monoid over strings: concatenation as
// addition and the empty string as zero. It has no inverses, so Scale
// accepts only non-negative multiples.
package stringmonoid

import (
	"strconv"
	"strings"

	"github.com/katalvlaran/lvlath-algebra/algebra"
	"github.com/katalvlaran/lvlath-algebra/registry"
)

// Monoid is the single instance of the string monoid.
type Monoid struct {
	algebra.Descriptor
}

var monoid = registry.Singleton(func() *Monoid {
	return &Monoid{
		Descriptor: algebra.NewDescriptor("strings", algebra.Aleph0, []algebra.Capability{algebra.AdditiveMonoid}),
	}
})

// Strings returns the string monoid.
func Strings() *Monoid { return monoid() }

func (*Monoid) Zero() String { return String{} }

// String is an element of the string monoid.
type String struct {
	s string
}

// Of wraps s.
func Of(s string) String { return String{s: s} }

func (x String) Structure() algebra.Structure { return Strings() }

// String renders the value quoted, so the empty string stays visible.
func (x String) String() string { return strconv.Quote(x.s) }

// Value returns the raw string.
func (x String) Value() string { return x.s }

func (x String) Eq(y String) bool        { return x.s == y.s }
func (x String) Plus(y String) String    { return String{s: x.s + y.s} }
func (x String) Zero() String            { return String{} }
func (x String) Len() int                { return len(x.s) }
func (x String) HasPrefix(p String) bool { return strings.HasPrefix(x.s, p.s) }
