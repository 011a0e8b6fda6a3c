// SPDX-License-Identifier: MIT

// Package matrix provides the dense linear-algebra kernel behind spline
// fitting: a row-major Dense type, elementary row operations, assembly of
// augmented systems and Gauss-Jordan reduction.
//
// The package provides:
//
//   - Dense with safe accessors (At/Set/Row never panic) and a finite-value
//     numeric policy (NaN/±Inf rejected by default).
//   - Augment and Stack to build [A | b] from coefficient blocks and an RHS.
//   - Reduce, which brings an augmented system to reduced row-echelon form
//     and returns the RHS column as the solution.
//
// Pivots are structural: a row's pivot is its first nonzero coefficient, and
// the first such row in row order pivots each column. Reduce never reorders
// by magnitude, so row order is part of the input contract.
//
//	aug, _ := matrix.NewDenseFromRows([][]float64{
//		{1, 0, 0},
//		{1, 1, 1},
//	})
//	red, _ := matrix.Reduce(aug)
//	fmt.Println(red.Solution) // [0 1]
package matrix
