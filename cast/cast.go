package cast

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/katalvlaran/lvlath-algebra/algebra"
)

// Cast reinterprets e as an element of target.
//
// Errors: *algebra.NotASubStructureError when target is not an ancestor of
// e's structure or a conversion along the path is missing; registration
// errors for e's structure are returned as is.
func (h *Hierarchy) Cast(e algebra.Element, target algebra.Structure) (algebra.Element, error) {
	origin := e.Structure()
	// 1. Identity
	if origin == target {
		return e, nil
	}
	// 2. Structure-specific conversion
	if out, ok := castDirectly(e, target); ok {
		return out, nil
	}
	// 3. Indexed path
	path, ok, err := h.Path(origin, target)
	if err != nil {
		return nil, err
	}
	if ok {
		if out, ok := h.along(e, path); ok {
			return out, nil
		}
		return nil, &algebra.NotASubStructureError{Source: origin, Target: target.String()}
	}
	// 4. An ancestor that converts into the unregistered target
	ancestors, err := h.Ancestors(origin)
	if err != nil {
		return nil, err
	}
	for _, a := range ancestors {
		path, ok, err := h.Path(origin, a)
		if err != nil || !ok {
			continue
		}
		mid, ok := h.along(e, path)
		if !ok {
			continue
		}
		if out, ok := castDirectly(mid, target); ok {
			return out, nil
		}
	}
	return nil, &algebra.NotASubStructureError{Source: origin, Target: target.String()}
}

// along converts e hop by hop over path, whose first vertex is e's structure.
func (h *Hierarchy) along(e algebra.Element, path []algebra.Structure) (algebra.Element, bool) {
	cur := e
	for _, hop := range path[1:] {
		next, ok := castDirectly(cur, hop)
		if !ok {
			h.logger.Debug("missing conversion on cast path",
				zap.Stringer("from", cur.Structure()), zap.Stringer("to", hop))
			return nil, false
		}
		cur = next
	}
	return cur, true
}

// castDirectly asks e to convert itself. A result in another structure than
// requested counts as no conversion; one back in e's own structure is a
// broken CastDirectly and panics.
func castDirectly(e algebra.Element, target algebra.Structure) (algebra.Element, bool) {
	dc, ok := e.(algebra.DirectCaster)
	if !ok {
		return nil, false
	}
	out, ok := dc.CastDirectly(target)
	if !ok || out == nil {
		return nil, false
	}
	switch out.Structure() {
	case target:
		return out, true
	case e.Structure():
		panic(fmt.Sprintf("cast: %s.CastDirectly(%s) returned an element of %s", e.Structure(), target, e.Structure()))
	}
	return nil, false
}

// CastTo casts e to the nearest ancestor structure whose elements have type F.
// An e that already is an F is returned unchanged.
func CastTo[F algebra.Element](h *Hierarchy, e algebra.Element) (F, error) {
	var zero F
	if f, ok := e.(F); ok {
		return f, nil
	}
	ancestors, err := h.Ancestors(e.Structure())
	if err != nil {
		return zero, err
	}
	for _, a := range ancestors {
		out, err := h.Cast(e, a)
		if err != nil {
			continue
		}
		if f, ok := out.(F); ok {
			return f, nil
		}
	}
	return zero, &algebra.NotASubStructureError{Source: e.Structure(), Target: fmt.Sprintf("%T", zero)}
}

// Cast casts e to target using the default hierarchy.
func Cast(e algebra.Element, target algebra.Structure) (algebra.Element, error) {
	return Default().Cast(e, target)
}

// To casts e to element type F using the default hierarchy.
func To[F algebra.Element](e algebra.Element) (F, error) {
	return CastTo[F](Default(), e)
}
