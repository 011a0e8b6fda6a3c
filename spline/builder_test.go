// SPDX-License-Identifier: MIT

package spline_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/splinegen/matrix"
	"github.com/katalvlaran/splinegen/spline"
	"github.com/katalvlaran/splinegen/table"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestControlPoints(t *testing.T) {
	tests := []struct {
		name string
		rows [][]float64
		want []int
	}{
		{
			name: "positive truncated values in row order",
			rows: [][]float64{{0, 0}, {1, 1}, {2.7, 5}, {-1, 3}, {0.9, 1}},
			want: []int{1, 2},
		},
		{
			name: "longer row resets accumulated points",
			rows: [][]float64{{1, 1}, {2, 2}, {3, 3, 3}, {4, 4, 4}, {5, 5}},
			want: []int{3, 4},
		},
		{
			name: "first row sets the length without resetting",
			rows: [][]float64{{1, 1, 1}, {2, 2}, {3, 3, 3}},
			want: []int{1, 3},
		},
		{
			name: "empty rows are skipped",
			rows: [][]float64{{}, {1, 2}, {}},
			want: []int{1},
		},
		{
			name: "all non-positive",
			rows: [][]float64{{0, 1}, {-3, 2}},
			want: []int{},
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := spline.ControlPoints(&table.Axis{Rows: tc.rows})
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestControlPointsSaturates(t *testing.T) {
	got := spline.ControlPoints(&table.Axis{Rows: [][]float64{{1e12, 0}}})
	require.Equal(t, []int{math.MaxInt32}, got)

	require.Empty(t, spline.ControlPoints(nil))
}

func TestBuildConstraintsPosition(t *testing.T) {
	c, err := spline.BuildConstraints([]int{1, 2}, false)
	require.NoError(t, err)

	assert.Equal(t, 3, c.Dim)
	assert.False(t, c.HasVelocity())
	assert.Equal(t, [][]float64{
		{1, 0, 0},
		{1, 1, 1},
		{1, 2, 4},
	}, c.Position.RawRows())
}

func TestBuildConstraintsVelocity(t *testing.T) {
	c, err := spline.BuildConstraints([]int{2}, true)
	require.NoError(t, err)

	assert.Equal(t, 4, c.Dim)
	require.True(t, c.HasVelocity())
	assert.Equal(t, [][]float64{
		{1, 0, 0, 0},
		{1, 2, 4, 8},
	}, c.Position.RawRows())
	assert.Equal(t, [][]float64{
		{0, 1, 0, 0},
		{0, 1, 4, 12},
	}, c.Velocity.RawRows())
}

func TestBuildConstraintsNoPoints(t *testing.T) {
	c, err := spline.BuildConstraints(nil, false)
	require.NoError(t, err)
	assert.Equal(t, 1, c.Dim)
	assert.Equal(t, [][]float64{{1}}, c.Position.RawRows())
	assert.Nil(t, c.Velocity)

	c, err = spline.BuildConstraints(nil, true)
	require.NoError(t, err)
	assert.Equal(t, 2, c.Dim)
	assert.Equal(t, [][]float64{{1, 0}}, c.Position.RawRows())
	assert.Equal(t, [][]float64{{0, 1}}, c.Velocity.RawRows())
}

func TestBuildConstraintsOverflow(t *testing.T) {
	points := make([]int, 40)
	for i := range points {
		points[i] = math.MaxInt32
	}
	_, err := spline.BuildConstraints(points, false)
	require.ErrorIs(t, err, matrix.ErrNaNInf)
	require.Equal(t, spline.KindSolver, spline.KindOf(err))
}
