// SPDX-License-Identifier: MIT

// Package matrix - elementary row operations & block assembly.
//
// Purpose:
//   - Provide the three elementary row operations used by Gauss-Jordan
//     reduction (divide, add-scaled, swap) operating on the flat buffer.
//   - Assemble augmented systems: append an RHS column, stack blocks.
//
// Determinism:
//   - Fixed left-to-right loops; no temporary allocation in row operations.

package matrix

import "fmt"

const (
	ctxAugment = "Augment"
	ctxStack   = "Stack"
	ctxSwap    = "SwapRows"
)

// DivideRow divides every entry of row i by d.
// Dividing (instead of multiplying by 1/d) keeps d/d exactly 1, which the
// leading-entry scan in Reduce depends on.
//
// Errors:
//   - ErrOutOfRange for a bad row index.
//   - ErrNaNInf when d is zero or non-finite under the numeric policy.
//
// Complexity: O(c).
func (m *Dense) DivideRow(i int, d float64) error {
	if i < 0 || i >= m.r {
		return denseErrorf("DivideRow", i, 0, ErrOutOfRange)
	}
	if m.validateNaNInf && (d == 0 || isNonFinite(d)) {
		return denseErrorf("DivideRow", i, 0, ErrNaNInf)
	}
	r := m.row(i)
	for j := range r {
		r[j] /= d
	}

	return nil
}

// AddScaledRow performs row[dst] += f * row[src].
// Complexity: O(c).
func (m *Dense) AddScaledRow(dst, src int, f float64) error {
	if dst < 0 || dst >= m.r || src < 0 || src >= m.r {
		return fmt.Errorf("Dense.AddScaledRow(%d,%d): %w", dst, src, ErrOutOfRange)
	}
	d, s := m.row(dst), m.row(src)
	for j := range d {
		d[j] += s[j] * f
	}

	return nil
}

// SwapRows exchanges rows i and j in place. Swapping a row with itself is a no-op.
// Complexity: O(c).
func (m *Dense) SwapRows(i, j int) error {
	if i < 0 || i >= m.r || j < 0 || j >= m.r {
		return fmt.Errorf("Dense.%s(%d,%d): %w", ctxSwap, i, j, ErrOutOfRange)
	}
	if i == j {
		return nil
	}
	a, b := m.row(i), m.row(j)
	for k := range a {
		a[k], b[k] = b[k], a[k]
	}

	return nil
}

// Augment returns a new (r)×(c+1) matrix [m | rhs].
// Implementation:
//   - Stage 1: validate m non-nil and len(rhs) == m.Rows().
//   - Stage 2: copy each row and append its RHS value.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch, ErrNaNInf (policy).
//
// Complexity:
//   - Time O(r*c), Space O(r*(c+1)).
func Augment(m *Dense, rhs []float64) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, fmt.Errorf("%s: %w", ctxAugment, err)
	}
	if err := ValidateVecLen(rhs, m.r); err != nil {
		return nil, fmt.Errorf("%s: %d values for %d rows: %w", ctxAugment, len(rhs), m.r, err)
	}

	out, err := NewDense(m.r, m.c+1)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ctxAugment, err)
	}
	out.validateNaNInf = m.validateNaNInf

	var i int
	for i = 0; i < m.r; i++ {
		if out.validateNaNInf && isNonFinite(rhs[i]) {
			return nil, denseErrorf(ctxAugment, i, m.c, ErrNaNInf)
		}
		copy(out.row(i), m.row(i)) // coefficients
		out.data[i*out.c+m.c] = rhs[i]
	}

	return out, nil
}

// Stack returns a new matrix with the rows of top followed by the rows of
// bottom. A nil bottom yields a copy of top.
//
// Errors:
//   - ErrNilMatrix when top is nil; ErrDimensionMismatch when widths differ.
//
// Complexity: O((r1+r2)*c).
func Stack(top, bottom *Dense) (*Dense, error) {
	if err := ValidateNotNil(top); err != nil {
		return nil, fmt.Errorf("%s: %w", ctxStack, err)
	}
	if bottom == nil {
		return top.Clone(), nil
	}
	if top.c != bottom.c {
		return nil, fmt.Errorf("%s: width %d vs %d: %w", ctxStack, top.c, bottom.c, ErrDimensionMismatch)
	}

	data := make([]float64, 0, len(top.data)+len(bottom.data))
	data = append(data, top.data...)
	data = append(data, bottom.data...)

	return &Dense{
		r:              top.r + bottom.r,
		c:              top.c,
		data:           data,
		validateNaNInf: top.validateNaNInf,
	}, nil
}
