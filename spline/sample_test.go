// SPDX-License-Identifier: MIT

package spline_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/splinegen/spline"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateList(t *testing.T) {
	tests := []struct {
		name     string
		coeffs   []float64
		step     float64
		stop     float64
		maxCount int
		want     []float64
	}{
		{
			name:     "stops before stop",
			coeffs:   []float64{1, 2, 3},
			step:     0.5,
			stop:     2,
			maxCount: 10,
			want:     []float64{0, 1.75, 5, 9.75},
		},
		{
			name:     "capped by maxCount",
			coeffs:   []float64{0, 1},
			step:     1,
			stop:     100,
			maxCount: 3,
			want:     []float64{0, 1, 2},
		},
		{
			name:     "constant term ignored",
			coeffs:   []float64{7},
			step:     1,
			stop:     3,
			maxCount: 10,
			want:     []float64{0, 0, 0},
		},
		{
			name:     "zero step bounded by count",
			coeffs:   []float64{0, 1},
			step:     0,
			stop:     1,
			maxCount: 4,
			want:     []float64{0, 0, 0, 0},
		},
		{
			name:     "non-positive stop",
			coeffs:   []float64{0, 1},
			step:     1,
			stop:     0,
			maxCount: 4,
			want:     []float64{},
		},
		{
			name:     "zero count",
			coeffs:   []float64{0, 1},
			step:     1,
			stop:     5,
			maxCount: 0,
			want:     []float64{},
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := spline.GenerateList(tc.coeffs, tc.step, tc.stop, tc.maxCount)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestGenerateListErrors(t *testing.T) {
	_, err := spline.GenerateList([]float64{0, 1}, 1, 1, -1)
	require.ErrorIs(t, err, spline.ErrInvalidCount)

	_, err = spline.GenerateList([]float64{0, 1}, math.NaN(), 1, 1)
	require.ErrorIs(t, err, spline.ErrInvalidStep)

	_, err = spline.GenerateList([]float64{0, 1}, math.Inf(1), 1, 1)
	require.ErrorIs(t, err, spline.ErrInvalidStep)

	_, err = spline.GenerateList([]float64{0, 1}, 1, math.NaN(), 1)
	require.ErrorIs(t, err, spline.ErrInvalidStep)
}

func TestGenerateListInfiniteStop(t *testing.T) {
	got, err := spline.GenerateList([]float64{0, 0, 1}, 1, math.Inf(1), 4)
	require.NoError(t, err)
	require.Equal(t, []float64{0, 1, 4, 9}, got)
}

func TestSampleStep(t *testing.T) {
	assert.Equal(t, 0.1, spline.SampleStep(0.1, 100, 5))
	assert.Equal(t, 0.05, spline.SampleStep(0.01, 100, 5))
	assert.Equal(t, 0.3, spline.SampleStep(0.3, 0, 5))
}

func TestSampleEquation(t *testing.T) {
	eq := spline.Equation{X: []float64{0, 1}, Y: []float64{0, 0, 1}}
	xs, ys, err := spline.SampleEquation(eq, 1, 3, 10)
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 1, 2}, xs)
	assert.Equal(t, []float64{0, 1, 4}, ys)

	_, _, err = spline.SampleEquation(eq, 1, 3, -1)
	require.ErrorIs(t, err, spline.ErrInvalidCount)
}
