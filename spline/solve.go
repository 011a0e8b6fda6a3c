// SPDX-License-Identifier: MIT

package spline

import (
	"fmt"

	"github.com/katalvlaran/splinegen/matrix"
	"github.com/katalvlaran/splinegen/table"
)

// Column indices of an axis row: parameter, position sample, velocity sample.
const (
	colPosition = 1
	colVelocity = 2
)

// Solution is the solved system of one axis.
type Solution struct {
	// Coefficients is one value per polynomial term, by increasing power.
	Coefficients []float64
	// Generated is the augmented matrix before reduction (nil when the
	// snapshot was disabled with matrix.WithoutSnapshot).
	Generated *matrix.Dense
	// Reduced is the matrix after reduction.
	Reduced *matrix.Dense
}

// SolveAxis augments the constraint rows with the samples of one axis and
// reduces the system.
//
// Implementation:
//   - Stage 1: position row i takes axis.Rows[i][1].
//   - Stage 2 (velocity): velocity row i takes axis.Rows[i][2]; the first row
//     without a third cell stops velocity augmentation.
//   - Stage 3: stack position over velocity rows and call matrix.Reduce.
//
// An axis without data rows and without control points is the base system
// alone; its last column is the solution ([1], or [0, 1] with velocity).
//
// Errors:
//   - KindStructural wrapping ErrMissingRHS when any row could not be augmented.
//   - KindSolver wrapping matrix.ErrNoPivot when the system is singular.
func SolveAxis(c *Constraints, axis *table.Axis, opts ...matrix.Option) (*Solution, error) {
	s, err := solveAxis(c, axis, opts...)
	if err != nil {
		return nil, wrap("solve", err)
	}

	return s, nil
}

func solveAxis(c *Constraints, axis *table.Axis, opts ...matrix.Option) (*Solution, error) {
	if c == nil || c.Position == nil {
		return nil, matrix.ErrNilMatrix
	}
	var rows [][]float64
	if axis != nil {
		rows = axis.Rows
	}
	if len(rows) == 0 && len(c.Points) == 0 {
		return baseSolution(c, opts...)
	}

	rhs, err := rhsColumn(rows, c.Position.Rows(), colPosition, "position")
	if err != nil {
		return nil, err
	}
	aug, err := matrix.Augment(c.Position, rhs)
	if err != nil {
		return nil, err
	}

	if c.HasVelocity() {
		if rhs, err = rhsColumn(rows, c.Velocity.Rows(), colVelocity, "velocity"); err != nil {
			return nil, err
		}
		var velAug *matrix.Dense
		if velAug, err = matrix.Augment(c.Velocity, rhs); err != nil {
			return nil, err
		}
		if aug, err = matrix.Stack(aug, velAug); err != nil {
			return nil, err
		}
	}

	red, err := matrix.Reduce(aug, opts...)
	if err != nil {
		return nil, err
	}

	return &Solution{
		Coefficients: red.Solution,
		Generated:    red.Generated,
		Reduced:      red.Reduced,
	}, nil
}

// baseSolution solves an axis with no data rows. Only the base rows exist
// and nothing augments them, so the last column of each row is read off as
// is: [1] for position only, [0, 1] with velocity.
func baseSolution(c *Constraints, opts ...matrix.Option) (*Solution, error) {
	rows := c.Position
	if c.HasVelocity() {
		var err error
		if rows, err = matrix.Stack(c.Position, c.Velocity); err != nil {
			return nil, err
		}
	}

	raw := rows.RawRows()
	coeffs := make([]float64, len(raw))
	for i, row := range raw {
		coeffs[i] = row[len(row)-1]
	}

	s := &Solution{Coefficients: coeffs, Reduced: rows.Clone()}
	if matrix.SnapshotEnabled(opts...) {
		s.Generated = rows.Clone()
	}

	return s, nil
}

// rhsColumn reads column col of the first n data rows. Augmentation stops at
// the first row that is missing or too short, and the shortfall is an error:
// a row without a right-hand side cannot take part in the solve.
func rhsColumn(rows [][]float64, n, col int, block string) ([]float64, error) {
	out := make([]float64, n)
	for i := 0; i < n; i++ {
		if i >= len(rows) {
			return nil, fmt.Errorf("%s row %d: only %d data rows: %w", block, i, len(rows), ErrMissingRHS)
		}
		if len(rows[i]) <= col {
			return nil, fmt.Errorf("%s row %d: data row has %d cells: %w", block, i, len(rows[i]), ErrMissingRHS)
		}
		out[i] = rows[i][col]
	}

	return out, nil
}
