// Package spline fits polynomial trajectories through sampled 2D points.
//
// 🚀 What does it do?
//
//	Given a table of samples, one row per parameter value t:
//
//		t,coordinate[,velocity]
//		0,"(x0, y0)"[,"(vx0, vy0)"]
//		1,"(x1, y1)"[,"(vx1, vy1)"]
//
//	it finds, per axis, the polynomial a0 + a1·t + a2·t² + ... that passes
//	through every sample exactly (and matches every velocity, when a
//	"velocity" column is present).
//
// ⚙️ Pipeline:
//
//	table.ParsePaired → table.Split → ControlPoints → BuildConstraints
//	→ SolveAxis (matrix.Reduce) per axis → x‖y coefficients
//
// Usage:
//
//	coeffs, err := spline.GenerateEquation(text)
//	eq := spline.SplitEquation(coeffs)
//	xs, _ := spline.GenerateList(eq.X, 0.1, 2, 100)
//
// Errors:
//
//	Every entry point returns *Error. Its Kind is KindParse, KindSolver or
//	KindStructural, and errors.Is reaches the underlying sentinel (e.g.
//	table.ErrPairArity, matrix.ErrNoPivot, ErrMissingRHS). A failed call
//	never returns partial coefficients.
//
// Notes:
//
//   - Parameter values are truncated to integers; t = 0 is always covered
//     by the base row, so only positive values become control points.
//   - Pivots are structural (first nonzero coefficient in row order). There
//     is no magnitude pivoting, so ill-conditioned inputs get no stability
//     guarantee.
package spline
