package matrix_test

import (
	"testing"

	"github.com/katalvlaran/splinegen/matrix"
	"github.com/stretchr/testify/require"
)

func TestRowOperations(t *testing.T) {
	m := MustRows(t, [][]float64{{2, 4, 6}, {1, 1, 1}})

	require.NoError(t, m.DivideRow(0, 2))
	require.Equal(t, [][]float64{{1, 2, 3}, {1, 1, 1}}, m.RawRows())

	require.NoError(t, m.AddScaledRow(1, 0, -1))
	require.Equal(t, [][]float64{{1, 2, 3}, {0, -1, -2}}, m.RawRows())

	require.NoError(t, m.SwapRows(0, 1))
	require.Equal(t, [][]float64{{0, -1, -2}, {1, 2, 3}}, m.RawRows())

	require.NoError(t, m.SwapRows(1, 1)) // self-swap is a no-op
	require.Equal(t, [][]float64{{0, -1, -2}, {1, 2, 3}}, m.RawRows())
}

func TestRowOperationErrors(t *testing.T) {
	m := MustDense(t, 2, 2)
	require.ErrorIs(t, m.DivideRow(0, 0), matrix.ErrNaNInf)
	require.ErrorIs(t, m.DivideRow(3, 1), matrix.ErrOutOfRange)
	require.ErrorIs(t, m.AddScaledRow(0, 2, 1), matrix.ErrOutOfRange)
	require.ErrorIs(t, m.SwapRows(-1, 0), matrix.ErrOutOfRange)
}

func TestAugment(t *testing.T) {
	a := MustRows(t, [][]float64{{1, 0}, {1, 1}})

	aug, err := matrix.Augment(a, []float64{5, 6})
	require.NoError(t, err)
	require.Equal(t, [][]float64{{1, 0, 5}, {1, 1, 6}}, aug.RawRows())
	require.Equal(t, 2, a.Cols(), "operand must not be mutated")

	_, err = matrix.Augment(a, []float64{5})
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	_, err = matrix.Augment(nil, []float64{5})
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

func TestStack(t *testing.T) {
	top := MustRows(t, [][]float64{{1, 0}})
	bottom := MustRows(t, [][]float64{{0, 1}, {0, 2}})

	s, err := matrix.Stack(top, bottom)
	require.NoError(t, err)
	require.Equal(t, [][]float64{{1, 0}, {0, 1}, {0, 2}}, s.RawRows())

	s, err = matrix.Stack(top, nil)
	require.NoError(t, err)
	require.Equal(t, top.RawRows(), s.RawRows())

	_, err = matrix.Stack(top, MustRows(t, [][]float64{{1, 2, 3}}))
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}
