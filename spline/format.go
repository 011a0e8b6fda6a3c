// SPDX-License-Identifier: MIT

package spline

import (
	"strconv"
	"strings"
)

// DefaultPrecision is the number of decimals used when a caller passes a
// negative precision.
const DefaultPrecision = 5

// Equation is a parametric curve (x(t), y(t)) given by coefficient vectors
// ordered by increasing power.
type Equation struct {
	X []float64
	Y []float64
}

// SplitEquation cuts a flat x‖y vector, as returned by GenerateEquation, into
// its two halves. An odd trailing value belongs to Y.
func SplitEquation(flat []float64) Equation {
	mid := len(flat) / 2

	return Equation{
		X: append([]float64(nil), flat[:mid]...),
		Y: append([]float64(nil), flat[mid:]...),
	}
}

// Terms renders one axis as "a1t^1 + a2t^2 + ...". The constant term is left
// out, matching GenerateList.
func Terms(coeffs []float64, precision int) string {
	if precision < 0 {
		precision = DefaultPrecision
	}
	parts := make([]string, 0, len(coeffs))
	for i := 1; i < len(coeffs); i++ {
		parts = append(parts, strconv.FormatFloat(coeffs[i], 'f', precision, 64)+"t^"+strconv.Itoa(i))
	}

	return strings.Join(parts, " + ")
}

// Format renders the curve as a LaTeX parametric pair "(x(t) , y(t))".
func (e Equation) Format(precision int) string {
	return "(" + Terms(e.X, precision) + " , " + Terms(e.Y, precision) + ")"
}
