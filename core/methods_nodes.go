// File: methods_nodes.go
// Role: Node lifecycle & queries: AddNode/HasNode/RemoveNode/Nodes/NodeCount,
//       error-statistic accessors, ResetErrors, PurgeOrphans, Winner.
// Determinism:
//   - Nodes() and PurgeOrphans() return ids sorted ascending.
//   - Winner() breaks error ties by smallest id.
// Concurrency:
//   - Every method acquires g.mu for its full duration (see doc.go).

package core

import (
	"sort"

	"github.com/pkg/errors"
)

// AddNode inserts a fresh edge-less node with a zero error statistic and
// returns its id.
//
// The id is the smallest non-negative integer not currently in use: ids
// stay dense across grow/shrink cycles, and a removed id becomes eligible
// for reuse by a later AddNode.
//
// Complexity: O(log V) (free-id pool).
// Concurrency: exclusive lock on g.mu.
//
// Errors:
//   - ErrIDExhausted: no free id could be reserved (practically unreachable).
func (g *Graph) AddNode() (int, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	return g.addNodeLocked()
}

// addNodeLocked is the lock-free body of AddNode, shared with composite
// operations. Callers must hold g.mu.
func (g *Graph) addNodeLocked() (int, error) {
	id, err := g.ids.acquire()
	if err != nil {
		return 0, errors.Wrapf(err, "AddNode: %d nodes live", len(g.nodes))
	}
	g.nodes[id] = &Node{ID: id}

	return id, nil
}

// HasNode reports whether the node id is currently live.
// Complexity: O(1).
// Concurrency: exclusive lock on g.mu.
func (g *Graph) HasNode(id int) bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	_, ok := g.nodes[id]

	return ok
}

// RemoveNode deletes a node and every edge incident to it.
//
// Steps:
//  1. Lock g.mu.
//  2. Verify the node is live, ErrNodeNotFound otherwise (nothing removed).
//  3. Filter-compact the edge list, dropping edges touching id.
//  4. Delete the node and release its id for reuse.
//
// Complexity: O(E) edge-list compaction.
// Concurrency: exclusive lock on g.mu.
//
// Errors:
//   - ErrNodeNotFound: id is not live.
func (g *Graph) RemoveNode(id int) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if _, ok := g.nodes[id]; !ok {
		return errors.Wrapf(ErrNodeNotFound, "RemoveNode(%d)", id)
	}
	g.removeNodeLocked(id)

	return nil
}

// removeNodeLocked drops a known-live node and its incident edges.
// The edge pass is a stable compaction: every element is visited exactly
// once, so a mid-list deletion can never skip the element after it.
func (g *Graph) removeNodeLocked(id int) {
	kept := g.edges[:0]
	for _, e := range g.edges {
		if e.N1 == id || e.N2 == id {
			continue
		}
		kept = append(kept, e)
	}
	// Clear the tail so dropped edges do not pin allocations.
	for i := len(kept); i < len(g.edges); i++ {
		g.edges[i] = nil
	}
	g.edges = kept

	delete(g.nodes, id)
	g.ids.release(id)
}

// Nodes returns all live node ids sorted ascending.
//
// Stable enumeration surface: rely on it for reproducible outputs and
// test assertions.
//
// Complexity: O(V log V).
// Concurrency: exclusive lock on g.mu.
func (g *Graph) Nodes() []int {
	g.mu.Lock()
	defer g.mu.Unlock()

	ids := make([]int, 0, len(g.nodes))
	for id := range g.nodes {
		ids = append(ids, id)
	}
	sort.Ints(ids)

	return ids
}

// NodeCount returns the current number of live nodes.
//
// The count is taken under g.mu: an unlocked len() on a concurrently
// mutated map is a data race in Go, and the lock keeps this an exact O(1)
// read rather than an advisory one.
//
// Concurrency: exclusive lock on g.mu.
func (g *Graph) NodeCount() int {
	g.mu.Lock()
	defer g.mu.Unlock()

	return len(g.nodes)
}

// NodeError returns the error statistic of the given node.
//
// Missing ids fail fast with ErrNodeNotFound; there is no silent
// zero-default for dead ids.
//
// Complexity: O(1).
// Concurrency: exclusive lock on g.mu.
//
// Errors:
//   - ErrNodeNotFound: id is not live.
func (g *Graph) NodeError(id int) (float64, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	n, ok := g.nodes[id]
	if !ok {
		return 0, errors.Wrapf(ErrNodeNotFound, "NodeError(%d)", id)
	}

	return n.Error, nil
}

// SetNodeError overwrites the error statistic of the given node.
//
// The value is trusted (no sign validation — the training rule owns the
// statistic), but the id must be live: SetNodeError never creates nodes.
//
// Complexity: O(1).
// Concurrency: exclusive lock on g.mu.
//
// Errors:
//   - ErrNodeNotFound: id is not live.
func (g *Graph) SetNodeError(id int, e float64) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	n, ok := g.nodes[id]
	if !ok {
		return errors.Wrapf(ErrNodeNotFound, "SetNodeError(%d)", id)
	}
	n.Error = e

	return nil
}

// ResetErrors sets every node's error statistic to 0.
// Intended to be called once per training epoch.
//
// Complexity: O(V).
// Concurrency: exclusive lock on g.mu.
func (g *Graph) ResetErrors() {
	g.mu.Lock()
	defer g.mu.Unlock()

	for _, n := range g.nodes {
		n.Error = 0
	}
}

// PurgeOrphans removes every node with zero incident edges and returns the
// removed ids sorted ascending.
//
// Steps:
//  1. Lock g.mu.
//  2. One O(E) pass accumulates per-node degrees.
//  3. Collect zero-degree ids, sort, then delete each and release its id.
//
// An orphan has no edges by definition, so only the node table changes.
//
// Complexity: O(V + E) detection + O(k log k) sort of the removed set.
// Concurrency: exclusive lock on g.mu.
func (g *Graph) PurgeOrphans() []int {
	g.mu.Lock()
	defer g.mu.Unlock()

	degree := make(map[int]int, len(g.nodes))
	for _, e := range g.edges {
		degree[e.N1]++
		degree[e.N2]++
	}

	orphans := make([]int, 0)
	for id := range g.nodes {
		if degree[id] == 0 {
			orphans = append(orphans, id)
		}
	}
	sort.Ints(orphans)

	for _, id := range orphans {
		delete(g.nodes, id)
		g.ids.release(id)
	}

	return orphans
}

// Winner returns the id of the best-matching unit: the node with the
// minimum non-negative error statistic. Nodes with a negative error are
// not candidates. Ties break toward the smallest id, which keeps the
// result deterministic even though map iteration order is not.
//
// Complexity: O(V).
// Concurrency: exclusive lock on g.mu.
//
// Errors:
//   - ErrEmptyGraph: the graph has no nodes, or no node has a
//     non-negative error.
func (g *Graph) Winner() (int, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if len(g.nodes) == 0 {
		return 0, errors.Wrap(ErrEmptyGraph, "Winner")
	}

	var (
		best    int
		bestErr float64
		found   bool
	)
	for id, n := range g.nodes {
		if n.Error < 0 {
			continue
		}
		if !found || n.Error < bestErr || (n.Error == bestErr && id < best) {
			best, bestErr, found = id, n.Error, true
		}
	}
	if !found {
		return 0, errors.Wrap(ErrEmptyGraph, "Winner: every node error is negative")
	}

	return best, nil
}
