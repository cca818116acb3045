// Package cast reinterprets elements of one structure as elements of an
// ancestor structure (2ℤ → ℤ → ℚ → ℝ).
//
// A Hierarchy records the super-structure relation as a directed acyclic
// graph. Acyclicity is validated once, when a structure is registered, and
// a reachability index of shortest cast paths is rebuilt at the same time,
// so Cast never searches.
//
// Cast order:
//
//  1. identity (already in the target structure)
//  2. the element's own CastDirectly(target)
//  3. the indexed path, converting hop by hop with CastDirectly
//  4. the nearest ancestor whose elements convert directly into an
//     unregistered target
//  5. otherwise *algebra.NotASubStructureError
//
// Errors:
//
//   - digraph.ErrCycleDetected    Register found a cycle; nothing was committed
//   - algebra.ErrNotASubStructure no path to the target (also matches ErrStructureMismatch)
package cast

import (
	"cmp"
	"fmt"
	"slices"
	"strconv"
	"sync"

	"go.uber.org/zap"

	"github.com/katalvlaran/lvlath-algebra/algebra"
	"github.com/katalvlaran/lvlath-algebra/digraph"
	"github.com/katalvlaran/lvlath-algebra/registry"
)

// Hierarchy is a registry of structures and their cast paths. It is safe
// for concurrent use.
type Hierarchy struct {
	mu     sync.RWMutex
	graph  *digraph.Graph
	byID   map[string]algebra.Structure
	ids    map[algebra.Structure]string
	paths  map[string]map[string][]string // from → to → vertex path
	logger *zap.Logger
}

// Option configures a Hierarchy.
type Option func(*Hierarchy)

// WithLogger sets the logger for registration events. A nil logger is ignored.
func WithLogger(l *zap.Logger) Option {
	return func(h *Hierarchy) {
		if l != nil {
			h.logger = l
		}
	}
}

// New returns an empty hierarchy.
func New(opts ...Option) *Hierarchy {
	h := &Hierarchy{
		graph:  digraph.New(),
		byID:   make(map[string]algebra.Structure),
		ids:    make(map[algebra.Structure]string),
		paths:  make(map[string]map[string][]string),
		logger: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

var defaultHierarchy = registry.Singleton(func() *Hierarchy { return New() })

// Default returns the process-wide hierarchy used by the package-level functions.
func Default() *Hierarchy { return defaultHierarchy() }

// Register adds s and, transitively, every structure reachable through
// SuperStructures. Registering a known structure is a no-op.
//
// A cycle among super-structures fails with an error wrapping
// digraph.ErrCycleDetected and leaves the hierarchy unchanged.
//
// Complexity: O(V + E) for validation plus O(V·(V + E)) to rebuild the index.
func (h *Hierarchy) Register(s algebra.Structure) error {
	// 1. Fast path
	h.mu.RLock()
	_, known := h.ids[s]
	h.mu.RUnlock()
	if known {
		return nil
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	if _, known = h.ids[s]; known {
		return nil
	}

	// 2. Stage new vertices and edges on a copy
	g := h.graph.Clone()
	ids := make(map[algebra.Structure]string)
	idOf := func(x algebra.Structure) string {
		if id, ok := h.ids[x]; ok {
			return id
		}
		if id, ok := ids[x]; ok {
			return id
		}
		id := strconv.Itoa(len(h.ids)+len(ids)) + ":" + x.String()
		ids[x] = id
		return id
	}
	queue := []algebra.Structure{s}
	seen := map[algebra.Structure]bool{s: true}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		from := idOf(cur)
		if err := g.AddVertex(from); err != nil {
			return fmt.Errorf("cast: register %s: %w", s, err)
		}
		if _, old := h.ids[cur]; old {
			continue // supers of registered structures are already in the graph
		}
		for _, sup := range cur.SuperStructures() {
			if sup == cur {
				h.logger.Warn("structure is its own super-structure", zap.Stringer("structure", cur))
				return fmt.Errorf("cast: register %s: %w: %s → %s", s, digraph.ErrCycleDetected, cur, cur)
			}
			if err := g.AddEdge(from, idOf(sup)); err != nil {
				return fmt.Errorf("cast: register %s: %w", s, err)
			}
			if !seen[sup] {
				seen[sup] = true
				queue = append(queue, sup)
			}
		}
	}

	// 3. Validate acyclicity once
	if _, err := digraph.TopologicalSort(g); err != nil {
		h.logger.Warn("rejected cyclic super-structures", zap.Stringer("structure", s), zap.Error(err))
		return fmt.Errorf("cast: register %s: %w", s, err)
	}

	// 4. Commit and rebuild the reachability index
	paths := make(map[string]map[string][]string, g.VertexCount())
	for _, v := range g.Vertices() {
		p, err := digraph.Paths(g, v)
		if err != nil {
			return fmt.Errorf("cast: register %s: %w", s, err)
		}
		paths[v] = p
	}
	for x, id := range ids {
		h.ids[x] = id
		h.byID[id] = x
	}
	h.graph = g
	h.paths = paths
	h.logger.Debug("registered structure",
		zap.Stringer("structure", s), zap.Int("added", len(ids)), zap.Int("structures", len(h.ids)))
	return nil
}

// Registered reports whether s is known.
func (h *Hierarchy) Registered(s algebra.Structure) bool {
	h.mu.RLock()
	defer h.mu.RUnlock()
	_, ok := h.ids[s]
	return ok
}

// Len returns the number of registered structures.
func (h *Hierarchy) Len() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.ids)
}

// Path returns the structures on a shortest cast path from `from` to `to`,
// both included, registering `from` first if needed.
func (h *Hierarchy) Path(from, to algebra.Structure) ([]algebra.Structure, bool, error) {
	if err := h.Register(from); err != nil {
		return nil, false, err
	}
	h.mu.RLock()
	defer h.mu.RUnlock()
	if from == to {
		return []algebra.Structure{from}, true, nil
	}
	toID, ok := h.ids[to]
	if !ok {
		return nil, false, nil
	}
	ids, ok := h.paths[h.ids[from]][toID]
	if !ok {
		return nil, false, nil
	}
	out := make([]algebra.Structure, len(ids))
	for i, id := range ids {
		out[i] = h.byID[id]
	}
	return out, true, nil
}

// IsAncestor reports whether elements of s cast into a.
func (h *Hierarchy) IsAncestor(s, a algebra.Structure) (bool, error) {
	_, ok, err := h.Path(s, a)
	return ok && s != a, err
}

// Ancestors returns every structure s casts into, nearest first, ties by name.
func (h *Hierarchy) Ancestors(s algebra.Structure) ([]algebra.Structure, error) {
	if err := h.Register(s); err != nil {
		return nil, err
	}
	h.mu.RLock()
	defer h.mu.RUnlock()
	idx := h.paths[h.ids[s]]
	ids := make([]string, 0, len(idx))
	for id := range idx {
		ids = append(ids, id)
	}
	slices.SortFunc(ids, func(a, b string) int {
		if d := len(idx[a]) - len(idx[b]); d != 0 {
			return d
		}
		if c := cmp.Compare(h.byID[a].String(), h.byID[b].String()); c != 0 {
			return c
		}
		return cmp.Compare(a, b)
	})
	out := make([]algebra.Structure, len(ids))
	for i, id := range ids {
		out[i] = h.byID[id]
	}
	return out, nil
}
