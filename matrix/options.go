// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for distance-matrix builders.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors,
//   - gatherOptions helper (internal).
//
// Design goals:
//   - Deterministic behavior: no global state, no implicit randomness.
//   - No dead switches: each flag impacts behavior and is covered by tests.
package matrix

import "math"

// ---------- Defaults (single source of truth) ----------

// DefaultDiagonal is written on the diagonal of distance matrices.
// NaN excludes self-pairs from every ordered comparison, so PairsBelow
// never reports (i,i) whatever the threshold.
var DefaultDiagonal = math.NaN()

// ---------- Public option type (functional) ----------

// Option mutates internal options. Safe to apply repeatedly (idempotent).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported; public entry points accept `...Option`.
type Options struct {
	diagonal float64 // DefaultDiagonal
}

// WithDiagonal overrides the value stored at (i,i) of distance matrices.
// Use 0 to obtain the plain metric matrix; any ordered value makes
// PairsBelow eligible to report self-pairs.
func WithDiagonal(v float64) Option {
	return func(o *Options) { o.diagonal = v }
}

// gatherOptions applies opts over the defaults.
func gatherOptions(opts ...Option) Options {
	o := Options{diagonal: DefaultDiagonal}
	for _, opt := range opts {
		opt(&o)
	}

	return o
}
