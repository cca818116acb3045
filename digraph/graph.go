// Package digraph defines a small thread-safe directed graph of string
// vertex IDs, with DFS-based cycle detection, topological sorting and
// breadth-first reachability paths.
//
// All methods take an internal sync.RWMutex, so a Graph can be read and
// mutated across goroutines. Iteration order is always sorted by ID.
//
// Errors:
//
//	ErrGraphNil        - nil *Graph passed to an algorithm.
//	ErrEmptyVertexID   - vertex ID is the empty string.
//	ErrVertexNotFound  - requested vertex does not exist.
//	ErrLoopNotAllowed  - self-loop u→u.
//	ErrCycleDetected   - cycle found by TopologicalSort.
package digraph

import (
	"errors"
	"sort"
	"sync"
)

// Sentinel errors for graph operations.
var (
	// ErrGraphNil is returned when a nil *Graph is passed to an algorithm.
	ErrGraphNil = errors.New("digraph: graph is nil")

	// ErrEmptyVertexID indicates that the provided vertex ID is empty.
	ErrEmptyVertexID = errors.New("digraph: vertex ID is empty")

	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("digraph: vertex not found")

	// ErrLoopNotAllowed indicates a self-loop was attempted.
	ErrLoopNotAllowed = errors.New("digraph: self-loop not allowed")

	// ErrCycleDetected indicates that a cycle was encountered.
	ErrCycleDetected = errors.New("digraph: cycle detected")
)

// Graph is a directed graph without parallel edges or self-loops.
type Graph struct {
	mu  sync.RWMutex
	adj map[string]map[string]struct{} // from → set of to; every vertex has an entry
}

// New returns an empty graph.
func New() *Graph {
	return &Graph{adj: make(map[string]map[string]struct{})}
}

// AddVertex inserts id if absent.
// Complexity: O(1).
func (g *Graph) AddVertex(id string) error {
	if id == "" {
		return ErrEmptyVertexID
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	g.ensure(id)
	return nil
}

func (g *Graph) ensure(id string) {
	if _, ok := g.adj[id]; !ok {
		g.adj[id] = make(map[string]struct{})
	}
}

// AddEdge inserts from→to, creating missing endpoints. Adding an existing edge is a no-op.
// Complexity: O(1).
func (g *Graph) AddEdge(from, to string) error {
	// 1. Validate endpoints
	if from == "" || to == "" {
		return ErrEmptyVertexID
	}
	if from == to {
		return ErrLoopNotAllowed
	}
	// 2. Insert under the write lock
	g.mu.Lock()
	defer g.mu.Unlock()
	g.ensure(from)
	g.ensure(to)
	g.adj[from][to] = struct{}{}
	return nil
}

// HasVertex reports whether id exists.
func (g *Graph) HasVertex(id string) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, ok := g.adj[id]
	return ok
}

// HasEdge reports whether from→to exists.
func (g *Graph) HasEdge(from, to string) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, ok := g.adj[from][to]
	return ok
}

// Vertices returns all vertex IDs in sorted order.
// Complexity: O(V log V).
func (g *Graph) Vertices() []string {
	g.mu.RLock()
	defer g.mu.RUnlock()
	out := make([]string, 0, len(g.adj))
	for id := range g.adj {
		out = append(out, id)
	}
	sort.Strings(out)
	return out
}

// Successors returns the targets of edges leaving id, sorted.
// Complexity: O(d log d) for out-degree d.
func (g *Graph) Successors(id string) ([]string, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.successors(id)
}

func (g *Graph) successors(id string) ([]string, error) {
	nb, ok := g.adj[id]
	if !ok {
		return nil, ErrVertexNotFound
	}
	out := make([]string, 0, len(nb))
	for to := range nb {
		out = append(out, to)
	}
	sort.Strings(out)
	return out, nil
}

// VertexCount returns the number of vertices.
func (g *Graph) VertexCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return len(g.adj)
}

// EdgeCount returns the number of edges.
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()
	n := 0
	for _, nb := range g.adj {
		n += len(nb)
	}
	return n
}

// Clone returns an independent deep copy.
// Complexity: O(V + E).
func (g *Graph) Clone() *Graph {
	g.mu.RLock()
	defer g.mu.RUnlock()
	c := &Graph{adj: make(map[string]map[string]struct{}, len(g.adj))}
	for from, nb := range g.adj {
		cp := make(map[string]struct{}, len(nb))
		for to := range nb {
			cp[to] = struct{}{}
		}
		c.adj[from] = cp
	}
	return c
}
