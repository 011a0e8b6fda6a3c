// SPDX-License-Identifier: MIT

package spline

import "math"

// GenerateList samples the polynomial coeffs at t = 0, step, 2*step, ...
// while t < stop and fewer than maxCount values were produced. The constant
// term coeffs[0] never contributes; each sample is Σ_{i≥1} coeffs[i]·t^i.
// t advances by repeated addition of step.
//
// Errors:
//   - ErrInvalidCount when maxCount < 0.
//   - ErrInvalidStep when step is NaN/±Inf or stop is NaN.
//
// Complexity: O(maxCount * len(coeffs)).
func GenerateList(coeffs []float64, step, stop float64, maxCount int) ([]float64, error) {
	if maxCount < 0 {
		return nil, ErrInvalidCount
	}
	if math.IsNaN(step) || math.IsInf(step, 0) || math.IsNaN(stop) {
		return nil, ErrInvalidStep
	}

	out := make([]float64, 0, sampleCapacity(step, stop, maxCount))
	for t := 0.0; t < stop && len(out) < maxCount; t += step {
		out = append(out, evaluate(coeffs, t))
	}

	return out, nil
}

// maxPrealloc caps the up-front allocation; longer lists grow by append.
const maxPrealloc = 1 << 16

// sampleCapacity estimates how many samples fit below stop.
func sampleCapacity(step, stop float64, maxCount int) int {
	n := maxCount
	switch {
	case stop <= 0:
		return 0
	case step > 0 && !math.IsInf(stop, 1):
		if fit := math.Ceil(stop / step); fit < float64(n) {
			n = int(fit)
		}
	}

	return min(n, maxPrealloc)
}

// evaluate returns Σ_{i≥1} coeffs[i]·t^i.
func evaluate(coeffs []float64, t float64) float64 {
	var v float64
	for i := 1; i < len(coeffs); i++ {
		v += coeffs[i] * math.Pow(t, float64(i))
	}

	return v
}

// SampleStep picks the sampling step for a curve with the given number of
// constraints: step is kept when count samples of it reach past the last
// constraint, otherwise the step stretches to constraints/count.
// A non-positive count returns step unchanged.
func SampleStep(step float64, count, constraints int) float64 {
	if count <= 0 {
		return step
	}
	if step*float64(count) > float64(constraints) {
		return step
	}

	return float64(constraints) / float64(count)
}

// SampleEquation samples both axes of eq with GenerateList.
func SampleEquation(eq Equation, step, stop float64, count int) (xs, ys []float64, err error) {
	if xs, err = GenerateList(eq.X, step, stop, count); err != nil {
		return nil, nil, err
	}
	if ys, err = GenerateList(eq.Y, step, stop, count); err != nil {
		return nil, nil, err
	}

	return xs, ys, nil
}
