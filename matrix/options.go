// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for Reduce and the numeric policy.
// This file defines:
//   - Option (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal).
//
// Design goals:
//   - Deterministic behavior: no global state, no implicit randomness.
//   - No dead switches: each flag impacts behavior and is covered by tests.
//   - Safe by construction: panic only on invalid parameters (programmer error).
package matrix

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultZeroTolerance is the magnitude at or below which Reduce treats an
	// entry as zero when locating pivots. Zero means exact comparison, which
	// is the structural pivot rule.
	DefaultZeroTolerance = 0.0

	// DefaultValidateNaNInf toggles strict finite-value validation on ingestion and Set.
	DefaultValidateNaNInf = true

	// DefaultSnapshot keeps the pre-reduction copy in Reduction.Generated.
	DefaultSnapshot = true
)

const panicToleranceInvalid = "matrix: WithZeroTolerance: eps must be finite, non-negative"

// Option mutates internal options. Safe to apply repeatedly (idempotent).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported; public entry points accept ...Option.
type Options struct {
	eps      float64 // >= 0; DefaultZeroTolerance
	snapshot bool    // DefaultSnapshot
}

// WithZeroTolerance sets the pivot-detection tolerance: |v| <= eps counts as zero.
// Panics with a stable message when eps is negative, NaN or ±Inf.
//
// Notes:
//   - A positive eps only changes which entry is considered "leading"; pivots
//     are still chosen by position, never by magnitude.
func WithZeroTolerance(eps float64) Option {
	if isNonFinite(eps) || eps < 0 {
		panic(panicToleranceInvalid)
	}

	return func(o *Options) { o.eps = eps }
}

// WithoutSnapshot skips copying the augmented matrix before reduction;
// Reduction.Generated is nil.
func WithoutSnapshot() Option {
	return func(o *Options) { o.snapshot = false }
}

// WithSnapshot restores the default pre-reduction copy.
func WithSnapshot() Option {
	return func(o *Options) { o.snapshot = true }
}

// SnapshotEnabled reports whether opts, applied over the defaults, keep the
// pre-reduction copy.
func SnapshotEnabled(opts ...Option) bool {
	return gatherOptions(opts...).snapshot
}

// defaultOptions returns Options populated from the Default* constants.
func defaultOptions() Options {
	return Options{
		eps:      DefaultZeroTolerance,
		snapshot: DefaultSnapshot,
	}
}

// gatherOptions applies opts over defaults in order; later options win.
// Nil options are ignored.
func gatherOptions(opts ...Option) Options {
	o := defaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}
