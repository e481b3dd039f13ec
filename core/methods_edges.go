// File: methods_edges.go
// Role: Edge lifecycle & queries: AddEdge/HasEdge/RemoveEdge/Edges/EdgeCount,
//       Neighbors, age accessors, IncrementAges, PurgeOldEdges.
// Determinism:
//   - Neighbors() returns ids sorted ascending.
//   - Edges() returns snapshot copies in internal (insertion) order.
// Concurrency:
//   - Every method acquires g.mu for its full duration (see doc.go).

package core

import (
	"sort"

	"github.com/pkg/errors"
)

// AddEdge creates an undirected edge between two live nodes with a zero
// age statistic.
//
// Steps:
//  1. Lock g.mu.
//  2. Reject identical endpoints (ErrSelfLoop) and dead endpoints
//     (ErrNodeNotFound) — nothing inserted on failure.
//  3. If the unordered pair already has an edge, return nil (idempotent).
//  4. Append a fresh edge with normalized endpoints and Age 0.
//
// Complexity: O(E) duplicate scan.
// Concurrency: exclusive lock on g.mu.
//
// Errors:
//   - ErrSelfLoop: n1 == n2.
//   - ErrNodeNotFound: either endpoint is not live.
func (g *Graph) AddEdge(n1, n2 int) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	return g.addEdgeLocked(n1, n2)
}

// addEdgeLocked is the lock-free body of AddEdge, shared with composite
// operations. Callers must hold g.mu.
func (g *Graph) addEdgeLocked(n1, n2 int) error {
	if n1 == n2 {
		return errors.Wrapf(ErrSelfLoop, "AddEdge(%d,%d)", n1, n2)
	}
	if _, ok := g.nodes[n1]; !ok {
		return errors.Wrapf(ErrNodeNotFound, "AddEdge: endpoint %d", n1)
	}
	if _, ok := g.nodes[n2]; !ok {
		return errors.Wrapf(ErrNodeNotFound, "AddEdge: endpoint %d", n2)
	}

	lo, hi := orderPair(n1, n2)
	if g.indexOfLocked(lo, hi) >= 0 {
		return nil // no-op for an existing pair
	}
	g.edges = append(g.edges, &Edge{N1: lo, N2: hi})

	return nil
}

// HasEdge reports whether an edge exists between the unordered pair.
// Complexity: O(E).
// Concurrency: exclusive lock on g.mu.
func (g *Graph) HasEdge(n1, n2 int) bool {
	g.mu.Lock()
	defer g.mu.Unlock()

	lo, hi := orderPair(n1, n2)

	return g.indexOfLocked(lo, hi) >= 0
}

// RemoveEdge deletes the edge between the unordered pair; (a,b) and (b,a)
// name the same edge.
//
// Complexity: O(E) lookup + shift.
// Concurrency: exclusive lock on g.mu.
//
// Errors:
//   - ErrEdgeNotFound: no edge exists between the pair.
func (g *Graph) RemoveEdge(n1, n2 int) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	lo, hi := orderPair(n1, n2)
	i := g.indexOfLocked(lo, hi)
	if i < 0 {
		return errors.Wrapf(ErrEdgeNotFound, "RemoveEdge(%d,%d)", n1, n2)
	}
	g.removeEdgeAtLocked(i)

	return nil
}

// Neighbors returns the set of node ids connected to id by a live edge,
// sorted ascending. A live node with no edges yields an empty slice;
// a dead id fails fast with ErrNodeNotFound.
//
// Complexity: O(E + d log d).
// Concurrency: exclusive lock on g.mu.
//
// Errors:
//   - ErrNodeNotFound: id is not live.
func (g *Graph) Neighbors(id int) ([]int, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if _, ok := g.nodes[id]; !ok {
		return nil, errors.Wrapf(ErrNodeNotFound, "Neighbors(%d)", id)
	}

	nbs := make([]int, 0)
	for _, e := range g.edges {
		if e.N1 == id {
			nbs = append(nbs, e.N2)
		} else if e.N2 == id {
			nbs = append(nbs, e.N1)
		}
	}
	sort.Ints(nbs)

	return nbs, nil
}

// EdgeAge returns the age statistic of the edge between the unordered pair.
//
// Complexity: O(E).
// Concurrency: exclusive lock on g.mu.
//
// Errors:
//   - ErrEdgeNotFound: no edge exists between the pair.
func (g *Graph) EdgeAge(n1, n2 int) (float64, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	lo, hi := orderPair(n1, n2)
	i := g.indexOfLocked(lo, hi)
	if i < 0 {
		return 0, errors.Wrapf(ErrEdgeNotFound, "EdgeAge(%d,%d)", n1, n2)
	}

	return g.edges[i].Age, nil
}

// SetEdgeAge overwrites the age statistic of the edge between the
// unordered pair. The value is trusted (no sign validation); the training
// rule uses this to zero the winner's emanating edges each iteration.
//
// Complexity: O(E).
// Concurrency: exclusive lock on g.mu.
//
// Errors:
//   - ErrEdgeNotFound: no edge exists between the pair.
func (g *Graph) SetEdgeAge(n1, n2 int, age float64) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	lo, hi := orderPair(n1, n2)
	i := g.indexOfLocked(lo, hi)
	if i < 0 {
		return errors.Wrapf(ErrEdgeNotFound, "SetEdgeAge(%d,%d)", n1, n2)
	}
	g.edges[i].Age = age

	return nil
}

// IncrementAges increments every edge's age by exactly 1.
// Intended to be called once per training iteration so that PurgeOldEdges
// can later evict edges unused for a number of iterations.
//
// Complexity: O(E).
// Concurrency: exclusive lock on g.mu.
func (g *Graph) IncrementAges() {
	g.mu.Lock()
	defer g.mu.Unlock()

	for _, e := range g.edges {
		e.Age++
	}
}

// PurgeOldEdges removes every edge whose age strictly exceeds maxAge.
// Nodes are never touched, even if they become orphaned; pair with
// PurgeOrphans to reclaim disconnected units.
//
// Implemented as a stable filter-compaction over the edge list: every
// element is visited exactly once, so a mid-list deletion can never skip
// the element after it.
//
// Complexity: O(E).
// Concurrency: exclusive lock on g.mu.
func (g *Graph) PurgeOldEdges(maxAge float64) {
	g.mu.Lock()
	defer g.mu.Unlock()

	kept := g.edges[:0]
	for _, e := range g.edges {
		if e.Age > maxAge {
			continue
		}
		kept = append(kept, e)
	}
	for i := len(kept); i < len(g.edges); i++ {
		g.edges[i] = nil
	}
	g.edges = kept
}

// Edges returns snapshot copies of all edges in internal order. The order
// is not guaranteed stable across mutations; callers must not assume more
// than "some order". Mutating the returned values does not affect the graph.
//
// Complexity: O(E).
// Concurrency: exclusive lock on g.mu.
func (g *Graph) Edges() []Edge {
	g.mu.Lock()
	defer g.mu.Unlock()

	out := make([]Edge, len(g.edges))
	for i, e := range g.edges {
		out[i] = *e
	}

	return out
}

// EdgeCount returns the current number of edges.
// Taken under g.mu for an exact read (see NodeCount).
// Concurrency: exclusive lock on g.mu.
func (g *Graph) EdgeCount() int {
	g.mu.Lock()
	defer g.mu.Unlock()

	return len(g.edges)
}

// indexOfLocked returns the position of the edge with normalized
// endpoints (lo, hi), or -1 when absent. Callers must hold g.mu.
func (g *Graph) indexOfLocked(lo, hi int) int {
	for i, e := range g.edges {
		if e.N1 == lo && e.N2 == hi {
			return i
		}
	}

	return -1
}

// removeEdgeAtLocked removes the edge at index i preserving list order.
// Callers must hold g.mu.
func (g *Graph) removeEdgeAtLocked(i int) {
	copy(g.edges[i:], g.edges[i+1:])
	g.edges[len(g.edges)-1] = nil
	g.edges = g.edges[:len(g.edges)-1]
}
