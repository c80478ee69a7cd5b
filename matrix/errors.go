// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// All exported functions return these sentinels (possibly wrapped with
// fmt.Errorf("ctx: %w", ErrX)); tests check them via errors.Is.

package matrix

import "errors"

// ERROR PRIORITY (documented, enforced in tests):
// dimension mismatch -> shape -> index.

var (
	// ErrInvalidDimensions indicates that requested matrix dimensions are non-positive.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")

	// ErrOutOfRange indicates that a row or column index is outside valid bounds.
	// Public indexers (At/Set) return this, never panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates coordinate vectors of different lengths.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")
)
