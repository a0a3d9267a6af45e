package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/graphstat/matrix"
)

func TestNewDenseRejectsNonPositiveDimensions(t *testing.T) {
	_, err := matrix.NewDense(0, 3)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	_, err = matrix.NewDense(3, -1)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

func TestDenseAtSet(t *testing.T) {
	m, err := matrix.NewDense(2, 3)
	require.NoError(t, err)

	m.Set(1, 2, 4.5)
	require.Equal(t, 4.5, m.At(1, 2))
	require.Equal(t, 0.0, m.At(0, 0))
	require.Equal(t, 2, m.Rows())
	require.Equal(t, 3, m.Cols())
}

func TestIdentity(t *testing.T) {
	m, err := matrix.Identity(3)
	require.NoError(t, err)

	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			if i == j {
				require.Equal(t, 1.0, m.At(i, j))
			} else {
				require.Equal(t, 0.0, m.At(i, j))
			}
		}
	}
}

func TestDenseCloneIsIndependent(t *testing.T) {
	m, err := matrix.NewDense(2, 2)
	require.NoError(t, err)
	m.Set(0, 0, 1)

	clone := m.Clone()
	clone.Set(0, 0, 99)

	require.Equal(t, 1.0, m.At(0, 0))
	require.Equal(t, 99.0, clone.At(0, 0))
}

func TestDenseColumn(t *testing.T) {
	m, err := matrix.NewDense(3, 2)
	require.NoError(t, err)
	m.Set(0, 1, 1)
	m.Set(1, 1, 2)
	m.Set(2, 1, 3)

	require.Equal(t, []float64{1, 2, 3}, m.Column(1))
}
