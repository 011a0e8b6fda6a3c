// SPDX-License-Identifier: MIT

package spline

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/splinegen/freeform"
	"github.com/katalvlaran/splinegen/matrix"
	"github.com/katalvlaran/splinegen/table"
)

var (
	// ErrMissingRHS is returned when a constraint row has no sample to
	// supply its right-hand side (too few data rows, or a row without the
	// coordinate/velocity component it needs).
	ErrMissingRHS = errors.New("spline: constraint row has no right-hand side")

	// ErrInvalidCount is returned by GenerateList for a negative maxCount.
	ErrInvalidCount = errors.New("spline: sample count must be >= 0")

	// ErrInvalidStep is returned by GenerateList for a non-finite step or a NaN stop.
	ErrInvalidStep = errors.New("spline: step must be finite and stop must be a number")
)

// Kind classifies a pipeline failure.
type Kind int

const (
	// KindUnknown is reported for errors that did not come from this package.
	KindUnknown Kind = iota
	// KindParse covers malformed numbers, wrong tuple arity and bad free-form input.
	KindParse
	// KindSolver covers rows without a pivot and non-finite constraint values.
	KindSolver
	// KindStructural covers constraint sets that do not line up with the data,
	// e.g. a constraint row with no right-hand side.
	KindStructural
)

// String returns the lower-case kind name.
func (k Kind) String() string {
	switch k {
	case KindParse:
		return "parse"
	case KindSolver:
		return "solver"
	case KindStructural:
		return "structural"
	default:
		return "unknown"
	}
}

// Error is the error type returned by every entry point of the pipeline.
// A non-nil *Error means no coefficients were produced.
type Error struct {
	Kind Kind   // failure class
	Op   string // pipeline stage, e.g. "parse", "solve x"
	Err  error  // underlying cause; matches package sentinels via errors.Is
}

func (e *Error) Error() string {
	return fmt.Sprintf("spline: %s: %s error: %v", e.Op, e.Kind, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

// KindOf returns the Kind carried by err, or KindUnknown.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}

	return KindUnknown
}

// wrap classifies err and tags it with op. nil stays nil.
func wrap(op string, err error) error {
	if err == nil {
		return nil
	}

	return &Error{Kind: classify(err), Op: op, Err: err}
}

func classify(err error) Kind {
	switch {
	case errors.Is(err, table.ErrMalformedNumber),
		errors.Is(err, table.ErrPairArity),
		errors.Is(err, table.ErrNonFinite),
		errors.Is(err, freeform.ErrBadToken),
		errors.Is(err, freeform.ErrBadArity):
		return KindParse
	case errors.Is(err, matrix.ErrNoPivot),
		errors.Is(err, matrix.ErrNaNInf):
		return KindSolver
	default:
		return KindStructural
	}
}
