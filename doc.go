// Package splinegen turns sampled 2D trajectories into polynomial equations.
//
// 🚀 What is splinegen?
//
//	A small pipeline plus two front ends:
//		• table/    : parse `t,"(x, y)"[,"(vx, vy)"]` sample tables
//		• freeform/ : accept loose "t x y [vx vy]" listings with // comments
//		• matrix/   : dense storage and Gauss-Jordan reduction with structural pivots
//		• spline/   : control points, constraint rows, per-axis solve, sampling, LaTeX
//		• cmd/splinegen : one-shot CLI (stdin or file)
//		• cmd/splined   : HTTP service (chi)
//
// ✨ Guarantees
//
//   - Deterministic: identical input gives bit-identical coefficients.
//   - Every sample (and velocity, when given) is matched exactly, up to
//     floating-point rounding.
//   - Failures are typed: spline.KindOf reports parse, solver or structural.
//
// Quick start:
//
//	coeffs, err := spline.GenerateEquation("t,coordinate\n0,\"(0,0)\"\n1,\"(1,1)\"")
//	// coeffs == [0 1 0 1]: x(t) = t, y(t) = t
//
// See the package docs of spline and matrix for the algorithms.
package splinegen
