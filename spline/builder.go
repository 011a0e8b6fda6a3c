// SPDX-License-Identifier: MIT

package spline

import (
	"fmt"
	"math"

	"github.com/katalvlaran/splinegen/matrix"
	"github.com/katalvlaran/splinegen/table"
)

// maxControlPoint saturates parameter values that do not fit a 32-bit index.
const maxControlPoint = math.MaxInt32

// Constraints is the assembled, not yet augmented, constraint system of one axis.
type Constraints struct {
	// Points are the control points the rows were built from, in row order.
	Points []int
	// Dim is the row width: (len(Points)+1), doubled when velocity is requested.
	Dim int
	// Position holds one row per parameter value (0, then every point):
	// column c of the row for u is u^c.
	Position *matrix.Dense
	// Velocity holds the derivative rows (column c is c*u^(c-1)). It is nil
	// unless velocity constraints were requested.
	Velocity *matrix.Dense
}

// HasVelocity reports whether the velocity block was built.
func (c *Constraints) HasVelocity() bool { return c != nil && c.Velocity != nil }

// ControlPoints scans the rows of an axis table and returns the positive,
// truncated first-cell values of the qualifying rows.
//
// Implementation:
//   - Stage 1: track the longest row length seen so far. A row strictly
//     longer than every earlier row discards the points accumulated so far
//     (grows-then-resets); rows shorter than the current maximum are skipped.
//   - Stage 2: truncate the first cell toward zero; values <= 0 are dropped
//     because parameter 0 is always covered by the base row.
//
// Complexity: O(rows).
func ControlPoints(axis *table.Axis) []int {
	points := make([]int, 0, axis.Len())
	if axis == nil {
		return points
	}

	var (
		maxLen  int
		started bool // an earlier row already set maxLen
		u       int
	)
	for _, row := range axis.Rows {
		if len(row) > maxLen {
			if started {
				points = points[:0]
			}
			maxLen = len(row)
		}
		started = true
		if len(row) < maxLen || len(row) == 0 {
			continue
		}
		if u = toIndex(row[0]); u <= 0 {
			continue
		}
		points = append(points, u)
	}

	return points
}

// toIndex truncates v toward zero, saturating at maxControlPoint.
// Non-positive values map to 0.
func toIndex(v float64) int {
	switch {
	case v >= maxControlPoint:
		return maxControlPoint
	case v <= 0:
		return 0
	default:
		return int(v)
	}
}

// BuildConstraints assembles the position (and optionally velocity) rows for
// the given control points.
//
// Implementation:
//   - Stage 1: Dim = n+1, or 2(n+1) with velocity.
//   - Stage 2: position row 0 is (1, 0, ...); the row for point u is u^c.
//   - Stage 3 (velocity only): row 0 is (0, 1, 0, ...); the row for u is c*u^(c-1),
//     with a negative exponent clamped to 0.
//
// Errors:
//   - *Error of KindSolver wrapping matrix.ErrNaNInf when a power overflows.
//
// Complexity: O(n * Dim).
func BuildConstraints(points []int, velocity bool) (*Constraints, error) {
	c, err := buildConstraints(points, velocity)
	if err != nil {
		return nil, wrap("build", err)
	}

	return c, nil
}

func buildConstraints(points []int, velocity bool) (*Constraints, error) {
	n := len(points) + 1 // the base row for parameter 0 is always present
	dim := n
	if velocity {
		dim *= 2
	}

	pos, err := matrix.NewDense(n, dim)
	if err != nil {
		return nil, err
	}
	_ = pos.Set(0, 0, 1)

	var vel *matrix.Dense
	if velocity {
		if vel, err = matrix.NewDense(n, dim); err != nil {
			return nil, err
		}
		_ = vel.Set(0, 1, 1) // d/dt of the linear term at t=0
	}

	var (
		k, col int
		u      float64
		exp    int
	)
	for k = range points {
		u = float64(points[k])
		for col = 0; col < dim; col++ {
			if err = pos.Set(k+1, col, math.Pow(u, float64(col))); err != nil {
				return nil, fmt.Errorf("position u=%d: %w", points[k], err)
			}
			if vel == nil {
				continue
			}
			if exp = col - 1; exp < 0 {
				exp = 0
			}
			if err = vel.Set(k+1, col, float64(col)*math.Pow(u, float64(exp))); err != nil {
				return nil, fmt.Errorf("velocity u=%d: %w", points[k], err)
			}
		}
	}

	return &Constraints{
		Points:   append([]int(nil), points...),
		Dim:      dim,
		Position: pos,
		Velocity: vel,
	}, nil
}
