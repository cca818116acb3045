package digraph

import (
	"fmt"
	"strings"
)

// Visitation states of a vertex during depth-first search.
const (
	White = iota // not visited yet
	Gray         // on the recursion stack
	Black        // fully explored
)

// sorter holds state for one depth-first pass.
type sorter struct {
	graph *Graph
	state map[string]int
	stack []string // current DFS path, for cycle reporting
	order []string // post-order
	cycle []string
}

// TopologicalSort orders all vertices so that for every edge u→v, u comes
// before v. Ties are broken by vertex ID, so the result is deterministic.
// A cycle yields an error wrapping ErrCycleDetected that names the cycle.
//
// Complexity: O(V + E) plus sorting of adjacency lists.
func TopologicalSort(g *Graph) ([]string, error) {
	// 1. Validate graph pointer
	if g == nil {
		return nil, ErrGraphNil
	}
	// 2. Drive DFS from every unvisited vertex
	s, err := run(g)
	if err != nil {
		return nil, err
	}
	if s.cycle != nil {
		return nil, fmt.Errorf("%w: %s", ErrCycleDetected, strings.Join(s.cycle, " → "))
	}
	// 3. Reverse post-order
	order := s.order
	for i, j := 0, len(order)-1; i < j; i, j = i+1, j-1 {
		order[i], order[j] = order[j], order[i]
	}
	return order, nil
}

// FindCycle returns one cycle as a closed vertex path (first == last), if any.
func FindCycle(g *Graph) ([]string, bool, error) {
	if g == nil {
		return nil, false, ErrGraphNil
	}
	s, err := run(g)
	if err != nil {
		return nil, false, err
	}
	return s.cycle, s.cycle != nil, nil
}

func run(g *Graph) (*sorter, error) {
	verts := g.Vertices()
	s := &sorter{
		graph: g,
		state: make(map[string]int, len(verts)),
		order: make([]string, 0, len(verts)),
	}
	for _, v := range verts {
		if s.state[v] != White {
			continue
		}
		if err := s.visit(v); err != nil {
			return nil, err
		}
		if s.cycle != nil {
			break
		}
	}
	return s, nil
}

// visit explores id depth-first. It stops at the first back-edge and
// records the cycle it closes.
func (s *sorter) visit(id string) error {
	// 1. Mark Gray and push
	s.state[id] = Gray
	s.stack = append(s.stack, id)

	// 2. Explore successors in ID order
	next, err := s.graph.Successors(id)
	if err != nil {
		return err
	}
	for _, to := range next {
		switch s.state[to] {
		case Gray:
			s.cycle = closeCycle(s.stack, to)
			return nil
		case White:
			if err = s.visit(to); err != nil || s.cycle != nil {
				return err
			}
		}
	}

	// 3. Mark Black, pop, record post-order
	s.state[id] = Black
	s.stack = s.stack[:len(s.stack)-1]
	s.order = append(s.order, id)
	return nil
}

// closeCycle extracts the stack suffix starting at to and closes it.
func closeCycle(stack []string, to string) []string {
	for i := len(stack) - 1; i >= 0; i-- {
		if stack[i] == to {
			c := append([]string(nil), stack[i:]...)
			return append(c, to)
		}
	}
	return []string{to, to}
}

// Paths returns, for every vertex reachable from `from` by at least one
// edge, a shortest path from `from` to it (both endpoints included).
// Among equally short paths, the one through lower IDs wins.
//
// Complexity: O(V + E) breadth-first search.
func Paths(g *Graph, from string) (map[string][]string, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	if !g.HasVertex(from) {
		return nil, ErrVertexNotFound
	}
	parent := map[string]string{from: ""}
	queue := []string{from}
	out := make(map[string][]string)
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		next, err := g.Successors(cur)
		if err != nil {
			return nil, err
		}
		for _, to := range next {
			if _, seen := parent[to]; seen {
				continue
			}
			parent[to] = cur
			queue = append(queue, to)
			out[to] = buildPath(parent, from, to)
		}
	}
	return out, nil
}

func buildPath(parent map[string]string, from, to string) []string {
	var rev []string
	for v := to; v != from; v = parent[v] {
		rev = append(rev, v)
	}
	rev = append(rev, from)
	for i, j := 0, len(rev)-1; i < j; i, j = i+1, j-1 {
		rev[i], rev[j] = rev[j], rev[i]
	}
	return rev
}
