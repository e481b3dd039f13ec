// SPDX-License-Identifier: MIT
//
// File: api.go
// Role: Thin, deterministic read-only diagnostics facade.
// Policy:
//   - No algorithms or hidden state here.
//   - Concurrency model and invariants are defined in types.go/doc.go.

package core

// GraphStats is a read-only snapshot of the topology's aggregate state,
// suitable for training-loop diagnostics and admission checks.
type GraphStats struct {
	// NodeCount is the number of live nodes at snapshot time.
	NodeCount int

	// EdgeCount is the number of edges at snapshot time.
	EdgeCount int

	// MaxAge is the largest edge age (0 when no edges exist).
	MaxAge float64

	// MinError is the smallest non-negative node error
	// (0 when HasWinner is false).
	MinError float64

	// HasWinner reports whether any node carries a non-negative error,
	// i.e. whether Winner() would succeed.
	HasWinner bool
}

// Stats produces a consistent snapshot of counts and extrema in one pass
// per collection, all under a single lock acquisition.
//
// Complexity: O(V + E).
// Concurrency: exclusive lock on g.mu.
func (g *Graph) Stats() *GraphStats {
	g.mu.Lock()
	defer g.mu.Unlock()

	stats := GraphStats{
		NodeCount: len(g.nodes),
		EdgeCount: len(g.edges),
	}

	for _, e := range g.edges {
		if e.Age > stats.MaxAge {
			stats.MaxAge = e.Age
		}
	}

	for _, n := range g.nodes {
		if n.Error < 0 {
			continue
		}
		if !stats.HasWinner || n.Error < stats.MinError {
			stats.MinError = n.Error
			stats.HasWinner = true
		}
	}

	return &stats
}
