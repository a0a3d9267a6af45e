package matrix_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/graphstat/matrix"
)

// fourCycleDistances builds the direct-edge distance matrix of the 4-node
// cycle 1-2-3-4-1 with unit weights.
func fourCycleDistances(t *testing.T) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDense(4, 4)
	require.NoError(t, err)
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			if i == j {
				m.Set(i, j, 0)
			} else {
				m.Set(i, j, math.Inf(1))
			}
		}
	}
	edges := [4][2]int{{0, 1}, {1, 2}, {2, 3}, {3, 0}}
	for _, e := range edges {
		m.Set(e[0], e[1], 1)
		m.Set(e[1], e[0], 1)
	}
	return m
}

func TestFloydWarshallRejectsNonSquare(t *testing.T) {
	m, err := matrix.NewDense(2, 3)
	require.NoError(t, err)
	require.ErrorIs(t, matrix.FloydWarshall(m), matrix.ErrDimensionMismatch)
}

func TestFloydWarshallFourCycle(t *testing.T) {
	m := fourCycleDistances(t)
	require.NoError(t, matrix.FloydWarshall(m))

	// Adjacent nodes stay at distance 1, opposite nodes settle at 2 (the
	// cycle's diameter), and the diagonal stays 0.
	require.Equal(t, 0.0, m.At(0, 0))
	require.Equal(t, 1.0, m.At(0, 1))
	require.Equal(t, 2.0, m.At(0, 2))
	require.Equal(t, 1.0, m.At(0, 3))
}
