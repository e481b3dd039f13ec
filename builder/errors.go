// SPDX-License-Identifier: MIT
// Package: gng/builder
//
// errors.go — sentinel errors for the builder package.
//
// Error policy (explicit and strict):
//   • Only sentinel variables (package-level) are exposed.
//   • Callers MUST use errors.Is(err, ErrX) to branch on semantics.
//   • Sentinels are NEVER wrapped with formatted strings at definition site.
//   • Implementations attach context using %w (constructor method tags).
//   • Constructors MUST NOT panic at runtime.

package builder

import "errors"

// ErrTooFewNodes indicates that a size parameter (n, rows, cols) is
// smaller than the minimum the requested seed topology needs.
// Classification: validation error (parameters).
// Usage: if errors.Is(err, ErrTooFewNodes) { /* report invalid size */ }.
var ErrTooFewNodes = errors.New("builder: parameter too small")

// ErrConstructFailed indicates the orchestrator could not apply a
// constructor (nil constructor, or a core mutation failed mid-build).
// Usage: if errors.Is(err, ErrConstructFailed) { /* inspect wrap chain */ }.
var ErrConstructFailed = errors.New("builder: construction failed")
