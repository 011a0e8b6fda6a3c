// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the matrix
// package. Algorithms return these sentinels (optionally wrapped with
// coordinates) and tests check them via errors.Is. No algorithm panics on
// user-triggered error conditions; panics are reserved for invalid option
// values (programmer error).

package matrix

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for consistency. When context
// is essential, wrap with fmt.Errorf("ctx: %w", ErrX); callers still match
// with errors.Is.

var (
	// ErrInvalidDimensions indicates that requested matrix dimensions are non-positive.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")

	// ErrOutOfRange indicates that an index (row or column) is outside valid bounds.
	// Public indexers (At/Set/Row) return this, never panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates incompatible dimensions between operands,
	// e.g. an RHS vector whose length differs from the row count, or ragged
	// input rows.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNaNInf signals a NaN or ±Inf value was encountered where finite values
	// are required by the numeric policy.
	ErrNaNInf = errors.New("matrix: NaN or Inf encountered")

	// ErrNilMatrix indicates that a nil *Dense was passed where a matrix is required.
	ErrNilMatrix = errors.New("matrix: nil matrix")

	// ErrNoPivot is returned when a row has no nonzero coefficient, so it
	// cannot supply a pivot. The system is singular or over-determined.
	ErrNoPivot = errors.New("matrix: row has no pivot")

	// ErrTooNarrow is returned when an augmented matrix has no coefficient
	// column (fewer than two columns).
	ErrTooNarrow = errors.New("matrix: augmented matrix needs at least one coefficient column")
)
