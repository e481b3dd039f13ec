// File: methods.go
// Role: composite & maintenance operations: InsertBetween, Clear.
//
// Rationale:
//   - Callers needing a multi-step atomic sequence must get it as a single
//     operation on the component; composing two locked calls from outside
//     promises no atomicity across them. InsertBetween is that operation
//     for the canonical growth step.
// Concurrency:
//   - Every method acquires g.mu once for its full duration.

package core

import "github.com/pkg/errors"

// InsertBetween atomically splits the edge between n1 and n2 with a fresh
// unit: the edge (n1,n2) is removed, a new node r is added, and edges
// (n1,r) and (r,n2) are created with Age 0. Returns r.
//
// This is the growing-neural-gas insertion step: no other goroutine can
// observe the half-connected intermediate state, because the whole splice
// happens under one lock acquisition.
//
// Steps:
//  1. Lock g.mu.
//  2. Validate endpoints (ErrSelfLoop, ErrNodeNotFound) and the split edge
//     (ErrEdgeNotFound) — nothing mutated on failure.
//  3. Reserve the new node id, drop the old edge, link both halves.
//
// Complexity: O(E).
// Concurrency: exclusive lock on g.mu.
//
// Errors:
//   - ErrSelfLoop: n1 == n2.
//   - ErrNodeNotFound: either endpoint is not live.
//   - ErrEdgeNotFound: no edge exists between the pair.
//   - ErrIDExhausted: no free id could be reserved.
func (g *Graph) InsertBetween(n1, n2 int) (int, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if n1 == n2 {
		return 0, errors.Wrapf(ErrSelfLoop, "InsertBetween(%d,%d)", n1, n2)
	}
	if _, ok := g.nodes[n1]; !ok {
		return 0, errors.Wrapf(ErrNodeNotFound, "InsertBetween: endpoint %d", n1)
	}
	if _, ok := g.nodes[n2]; !ok {
		return 0, errors.Wrapf(ErrNodeNotFound, "InsertBetween: endpoint %d", n2)
	}

	lo, hi := orderPair(n1, n2)
	i := g.indexOfLocked(lo, hi)
	if i < 0 {
		return 0, errors.Wrapf(ErrEdgeNotFound, "InsertBetween(%d,%d)", n1, n2)
	}

	// All preconditions hold: reserve the id first so no mutation precedes
	// the only remaining failure point.
	r, err := g.addNodeLocked()
	if err != nil {
		return 0, errors.Wrap(err, "InsertBetween")
	}

	g.removeEdgeAtLocked(i)
	lo, hi = orderPair(n1, r)
	g.edges = append(g.edges, &Edge{N1: lo, N2: hi})
	lo, hi = orderPair(r, n2)
	g.edges = append(g.edges, &Edge{N1: lo, N2: hi})

	return r, nil
}

// Clear resets the graph to the empty state: all nodes, edges, and the
// free-id pool are discarded, so the next AddNode returns id 0 again.
// Capacity hints from construction are preserved.
//
// Complexity: O(1) amortized (old storage is left to the collector).
// Concurrency: exclusive lock on g.mu.
func (g *Graph) Clear() {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.nodes = make(map[int]*Node, g.capNodes)
	g.edges = make([]*Edge, 0, g.capEdges)
	g.ids.reset()
}
