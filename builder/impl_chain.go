// SPDX-License-Identifier: MIT
// Package: gng/builder
//
// impl_chain.go — implementation of Chain(n).
//
// Canonical model:
//   • A path of n units: unit i adjacent to unit i+1.
//
// Contract:
//   • n ≥ 2 (else ErrTooFewNodes).
//   • Emits units in index order, then edges (i, i+1) for i ∈ [0, n-2].
//
// Complexity: O(n) units + O(n) edges (duplicate scan is O(E) per add).

package builder

import (
	"fmt"

	"github.com/neuralgas/gng/core"
)

const (
	methodChain = "Chain"
	minChainLen = 2
)

// Chain returns a Constructor that seeds a path of n units.
func Chain(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		// Validate parameters early (fail fast; no partial work).
		if n < minChainLen {
			return fmt.Errorf("%s: n=%d (must be ≥ %d): %w",
				methodChain, n, minChainLen, ErrTooFewNodes)
		}

		ids, err := seedUnits(g, cfg, methodChain, n)
		if err != nil {
			return err
		}
		for i := 0; i+1 < n; i++ {
			if err = g.AddEdge(ids[i], ids[i+1]); err != nil {
				return fmt.Errorf("%s: edge (%d,%d): %w", methodChain, ids[i], ids[i+1], err)
			}
		}

		return nil
	}
}
