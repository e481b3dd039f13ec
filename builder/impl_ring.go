// SPDX-License-Identifier: MIT
// Package: gng/builder
//
// impl_ring.go — implementation of Ring(n).
//
// Canonical model:
//   • A cycle of n units: the neural-gas ring seed.
//
// Contract:
//   • n ≥ 3 (else ErrTooFewNodes): a 2-cycle would be a duplicate pair.
//   • Emits units in index order, chain edges (i, i+1), then the closing
//     edge (n-1, 0).
//
// Complexity: O(n) units + O(n) edges.

package builder

import (
	"fmt"

	"github.com/neuralgas/gng/core"
)

const (
	methodRing = "Ring"
	minRingLen = 3
)

// Ring returns a Constructor that seeds a cycle of n units.
func Ring(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minRingLen {
			return fmt.Errorf("%s: n=%d (must be ≥ %d): %w",
				methodRing, n, minRingLen, ErrTooFewNodes)
		}

		ids, err := seedUnits(g, cfg, methodRing, n)
		if err != nil {
			return err
		}
		for i := 0; i < n; i++ {
			next := ids[(i+1)%n]
			if err = g.AddEdge(ids[i], next); err != nil {
				return fmt.Errorf("%s: edge (%d,%d): %w", methodRing, ids[i], next, err)
			}
		}

		return nil
	}
}
