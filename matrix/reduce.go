// SPDX-License-Identifier: MIT

// Package matrix - Gauss-Jordan reduction of augmented systems with
// structural (position-based) pivot selection.
//
// Purpose:
//   - Reduce [A | b] to reduced row-echelon form and read the solution off
//     the RHS column.
//   - The pivot of a row is the index of its first nonzero coefficient. Row
//     order decides which row pivots a column; magnitudes never do.
//
// Notes:
//   - No partial/magnitude pivoting.
//   - Every failure aborts the whole reduction; no partial solution is exposed.

package matrix

import "fmt"

const ctxReduce = "Reduce"

// noPivot marks a row without any nonzero coefficient.
const noPivot = -1

// Reduction is the outcome of Reduce.
type Reduction struct {
	// Generated is the augmented matrix as it was before reduction
	// (nil when WithoutSnapshot was given).
	Generated *Dense
	// Reduced is the matrix after elimination and row reordering.
	Reduced *Dense
	// Solution holds the last (RHS) entry of every row of Reduced, in row order.
	Solution []float64
}

// Pivot returns the pivot column of row i of the augmented matrix m: the
// index of its first nonzero coefficient (the RHS column is excluded).
//
// Errors:
//   - ErrOutOfRange for a bad row; ErrTooNarrow for a matrix with no
//     coefficient column; ErrNoPivot when all coefficients are zero.
func Pivot(m *Dense, i int) (int, error) {
	if err := ValidateAugmented(m); err != nil {
		return 0, fmt.Errorf("Pivot: %w", err)
	}
	if i < 0 || i >= m.r {
		return 0, denseErrorf("Pivot", i, 0, ErrOutOfRange)
	}
	col := leading(m, i, DefaultZeroTolerance)
	if col == noPivot {
		return 0, fmt.Errorf("Pivot: row %d: %w", i, ErrNoPivot)
	}

	return col, nil
}

// Reduce solves the augmented system aug = [A | b] by Gauss-Jordan
// elimination. aug is not mutated.
//
// Implementation:
//   - Stage 1: validate shape; snapshot the input (unless WithoutSnapshot).
//   - Stage 2: for each coefficient column c, take the first row not yet
//     used as a pivot whose leading nonzero sits at c. Divide it so the
//     pivot becomes exactly 1, then clear column c in every other row.
//     Columns without such a row are skipped.
//   - Stage 3: every row must still have a pivot, else ErrNoPivot.
//   - Stage 4: reorder rows by ascending pivot column; read out the RHS column.
//
// Errors:
//   - ErrNilMatrix / ErrTooNarrow on bad input.
//   - ErrNoPivot (wrapped with the row index) when a row has no nonzero
//     coefficient before or after any elimination pass.
//
// Complexity:
//   - Time O(k * r * c) for k = c-1 coefficient columns, Space O(r*c).
func Reduce(aug *Dense, opts ...Option) (*Reduction, error) {
	// Stage 1: validate & prepare.
	if err := ValidateAugmented(aug); err != nil {
		return nil, fmt.Errorf("%s: %w", ctxReduce, err)
	}
	o := gatherOptions(opts...)

	res := &Reduction{}
	if o.snapshot {
		res.Generated = aug.Clone()
	}
	m := aug.Clone()
	m.validateNaNInf = false // intermediate values are governed by the input policy only

	// Stage 2: elimination.
	var (
		c, p, r int
		pv, f   float64
		err     error
	)
	coeffs := m.c - 1
	used := make([]bool, m.r) // rows already serving as a pivot
	for c = 0; c < coeffs; c++ {
		if p, err = pivotRowFor(m, c, used, o.eps); err != nil {
			return nil, err
		}
		if p == noPivot {
			continue // no row leads in this column
		}
		used[p] = true

		pv = m.data[p*m.c+c]
		_ = m.DivideRow(p, pv) // pv is nonzero by construction
		m.data[p*m.c+c] = 1    // pv/pv is already 1; keep it exact under rounding
		for r = 0; r < m.r; r++ {
			if r == p {
				continue
			}
			f = m.data[r*m.c+c]
			if f == 0 {
				continue
			}
			_ = m.AddScaledRow(r, p, -f)
			m.data[r*m.c+c] = 0
		}
	}

	// Stage 3: the last pass may have zeroed a row.
	if err = checkPivots(m, o.eps); err != nil {
		return nil, err
	}

	// Stage 4: reorder & read out.
	reorder(m, o.eps)
	m.validateNaNInf = aug.validateNaNInf
	res.Reduced = m
	res.Solution = make([]float64, m.r)
	for r = 0; r < m.r; r++ {
		if v := m.data[r*m.c+coeffs]; v != 0 {
			res.Solution[r] = v // -0 stays the zero value
		}
	}

	return res, nil
}

// leading returns the first coefficient column of row i with |v| > eps, or noPivot.
func leading(m *Dense, i int, eps float64) int {
	row := m.data[i*m.c : i*m.c+m.c-1] // coefficients only
	for j, v := range row {
		if v > eps || v < -eps {
			return j
		}
	}

	return noPivot
}

// checkPivots fails with ErrNoPivot on the first row lacking a pivot.
func checkPivots(m *Dense, eps float64) error {
	for i := 0; i < m.r; i++ {
		if leading(m, i, eps) == noPivot {
			return fmt.Errorf("%s: row %d: %w", ctxReduce, i, ErrNoPivot)
		}
	}

	return nil
}

// pivotRowFor validates every row and returns the first unused row whose
// leading column is c (noPivot if none).
func pivotRowFor(m *Dense, c int, used []bool, eps float64) (int, error) {
	found := noPivot
	var lead int
	for i := 0; i < m.r; i++ {
		lead = leading(m, i, eps)
		if lead == noPivot {
			return noPivot, fmt.Errorf("%s: column %d: row %d: %w", ctxReduce, c, i, ErrNoPivot)
		}
		if found == noPivot && !used[i] && lead == c {
			found = i
		}
	}

	return found, nil
}

// reorder moves, for each column in ascending order, the first row (at or
// after the next free slot) whose pivot is that column into the slot.
// Columns without a row are skipped and do not consume a slot.
func reorder(m *Dense, eps float64) {
	next := 0
	var c, i int
	for c = 0; c < m.c-1 && next < m.r; c++ {
		for i = next; i < m.r; i++ {
			if leading(m, i, eps) == c {
				_ = m.SwapRows(i, next)
				next++
				break
			}
		}
	}
}
