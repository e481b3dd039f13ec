// SPDX-License-Identifier: MIT
// Package: gng/builder
//
// api.go — thin public entry-points for the builder package.
//
// Design contract (strict):
//   • One orchestrator: Build(gopts, bopts, cons...). Creates g, resolves
//     cfg, runs cons in order.
//   • All public factories are declared in impl_*.go files.
//   • Functional options resolve into an immutable builderConfig.
//   • Determinism: same options and constructor order ⇒ identical graphs.
//   • Safety: never panic; return sentinel errors from constructors.

package builder

import (
	"fmt"

	"github.com/neuralgas/gng/core"
)

// Constructor applies a deterministic topology mutation using the
// resolved builderConfig. Constructors MUST:
//   - Validate parameters early and return sentinel errors (no panics).
//   - Emit units and edges in a stable, documented order.
//   - Write cfg.initialError onto every unit they seed (when non-zero).
type Constructor func(g *core.Graph, cfg builderConfig) error

// Build creates a new core.Graph with graph options gopts, resolves the
// builder configuration from bopts, and applies all constructors in
// order. Any constructor error is wrapped with the context "Build: %w"
// and returned immediately; no partial cleanup is attempted by design.
//
// Complexity: O(len(bopts)) resolution + Σ cost of each constructor.
//
// Errors:
//   - ErrConstructFailed: nil constructor.
//   - Constructor sentinels (ErrTooFewNodes, ...) via the wrap chain.
func Build(gopts []core.GraphOption, bopts []Option, cons ...Constructor) (*core.Graph, error) {
	g := core.New(gopts...)
	cfg := newBuilderConfig(bopts...)

	// Apply each constructor sequentially to preserve deterministic order.
	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("Build: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(g, cfg); err != nil {
			return nil, fmt.Errorf("Build: %w", err)
		}
	}

	return g, nil
}

// seedUnits adds n fresh units to g, applies cfg.initialError, and
// returns their ids in emission order. Shared by every impl_*.go.
func seedUnits(g *core.Graph, cfg builderConfig, method string, n int) ([]int, error) {
	ids := make([]int, n)
	for i := 0; i < n; i++ {
		id, err := g.AddNode()
		if err != nil {
			return nil, fmt.Errorf("%s: add unit %d: %w", method, i, err)
		}
		if cfg.initialError != 0 {
			if err = g.SetNodeError(id, cfg.initialError); err != nil {
				return nil, fmt.Errorf("%s: seed error on unit %d: %w", method, id, err)
			}
		}
		ids[i] = id
	}

	return ids, nil
}
