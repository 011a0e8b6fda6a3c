// SPDX-License-Identifier: MIT

package spline

import (
	"github.com/katalvlaran/splinegen/freeform"
	"github.com/katalvlaran/splinegen/matrix"
	"github.com/katalvlaran/splinegen/table"
)

// VelocityColumn is the header name that enables velocity constraints.
const VelocityColumn = "velocity"

// Result is the full outcome of Solve.
type Result struct {
	Columns  []string // header tokens of the input
	Rows     int      // data rows in the input
	Points   []int    // control points shared by both axes
	Dim      int      // constraint row width (coefficients per axis)
	Velocity bool     // velocity constraints were applied
	X        *Solution
	Y        *Solution
}

// Coefficients returns the x coefficients followed by the y coefficients.
func (r *Result) Coefficients() []float64 {
	out := make([]float64, 0, len(r.X.Coefficients)+len(r.Y.Coefficients))
	out = append(out, r.X.Coefficients...)

	return append(out, r.Y.Coefficients...)
}

// Equation returns the per-axis coefficient vectors.
func (r *Result) Equation() Equation {
	return Equation{
		X: append([]float64(nil), r.X.Coefficients...),
		Y: append([]float64(nil), r.Y.Coefficients...),
	}
}

// Solve runs the whole pipeline on tabular text and keeps every
// intermediate artifact. opts are passed to matrix.Reduce for both axes.
//
// Implementation:
//   - Stage 1: parse; velocity is on when a column is named "velocity".
//   - Stage 2: split into axis tables; control points come from the x table
//     (both axes share the leading scalar column).
//   - Stage 3: build the constraint rows once and solve x, then y.
//
// Errors:
//   - *Error with KindParse, KindStructural or KindSolver. No partial result.
func Solve(text string, opts ...matrix.Option) (*Result, error) {
	paired, err := table.ParsePaired(text)
	if err != nil {
		return nil, wrap("parse", err)
	}
	velocity := paired.HasColumn(VelocityColumn)
	x, y := table.Split(paired)

	c, err := buildConstraints(ControlPoints(x), velocity)
	if err != nil {
		return nil, wrap("build", err)
	}

	res := &Result{
		Columns:  paired.Columns,
		Rows:     len(paired.Rows),
		Points:   c.Points,
		Dim:      c.Dim,
		Velocity: velocity,
	}
	if res.X, err = solveAxis(c, x, opts...); err != nil {
		return nil, wrap("solve x", err)
	}
	if res.Y, err = solveAxis(c, y, opts...); err != nil {
		return nil, wrap("solve y", err)
	}

	return res, nil
}

// GenerateEquation converts tabular text into one flat coefficient vector:
// the x-axis coefficients (by increasing power) followed by the y-axis ones.
// It is deterministic: identical input yields bit-identical output.
func GenerateEquation(text string) ([]float64, error) {
	res, err := Solve(text, matrix.WithoutSnapshot())
	if err != nil {
		return nil, err
	}

	return res.Coefficients(), nil
}

// SolveFreeform normalizes a free-form listing (see package freeform) and
// solves it. The normalized input is returned alongside the result so callers
// can size sampling by its constraint count.
func SolveFreeform(text string, opts ...matrix.Option) (*Result, *freeform.Input, error) {
	in, err := freeform.Normalize(text)
	if err != nil {
		return nil, nil, wrap("normalize", err)
	}
	res, err := Solve(in.Text, opts...)
	if err != nil {
		return nil, nil, err
	}

	return res, in, nil
}
