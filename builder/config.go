// SPDX-License-Identifier: MIT
// Package: gng/builder
//
// config.go — internal configuration and deterministic defaults.
//
// Design:
//   • builderConfig is the single source of truth for all builder knobs.
//   • Defaults are deterministic and documented; no globals.
//   • newBuilderConfig applies options in-order (later overrides earlier).

package builder

// builderConfig aggregates all knobs used by constructors.
// It is passed by VALUE to constructors (immutable to callers).
type builderConfig struct {
	// initialError is the error statistic written onto every seeded unit.
	// Zero means leave the core default untouched.
	initialError float64
}

// Option configures the builder before constructors run.
type Option func(*builderConfig)

// WithInitialError sets the error statistic every constructor writes onto
// the units it seeds. Useful when a run resumes with a known error floor.
func WithInitialError(v float64) Option {
	return func(cfg *builderConfig) { cfg.initialError = v }
}

// newBuilderConfig constructs a config with deterministic defaults and
// applies all options in order (last-wins semantics).
// Complexity: O(len(opts)) time, O(1) space.
func newBuilderConfig(opts ...Option) builderConfig {
	var cfg builderConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}
