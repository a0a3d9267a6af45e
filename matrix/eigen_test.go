package matrix_test

import (
	"math"
	"sort"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/graphstat/matrix"
)

// pathLaplacian3 builds the Laplacian of the 3-node path 1-2-3, whose
// eigenvalues are the well-known {0, 1, 3}.
func pathLaplacian3(t *testing.T) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDense(3, 3)
	require.NoError(t, err)
	vals := [3][3]float64{
		{1, -1, 0},
		{-1, 2, -1},
		{0, -1, 1},
	}
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			m.Set(i, j, vals[i][j])
		}
	}
	return m
}

func TestEigenRejectsNonSquare(t *testing.T) {
	m, err := matrix.NewDense(2, 3)
	require.NoError(t, err)
	_, _, err = matrix.Eigen(m, 1e-9, 100)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

func TestEigenRejectsAsymmetric(t *testing.T) {
	m, err := matrix.NewDense(2, 2)
	require.NoError(t, err)
	m.Set(0, 1, 1)
	m.Set(1, 0, -1)
	_, _, err = matrix.Eigen(m, 1e-9, 100)
	require.ErrorIs(t, err, matrix.ErrNotSymmetric)
}

func TestEigenPathLaplacian(t *testing.T) {
	m := pathLaplacian3(t)
	eigs, Q, err := matrix.Eigen(m, 1e-12, 200)
	require.NoError(t, err)
	require.Len(t, eigs, 3)

	sorted := append([]float64(nil), eigs...)
	sort.Float64s(sorted)
	require.InDelta(t, 0.0, sorted[0], 1e-6)
	require.InDelta(t, 1.0, sorted[1], 1e-6)
	require.InDelta(t, 3.0, sorted[2], 1e-6)

	// The eigenvector for eigenvalue 0 must be constant (up to sign) —
	// every entry in its column of Q is equal.
	zeroCol := -1
	for i, v := range eigs {
		if math.Abs(v) < 1e-6 {
			zeroCol = i
			break
		}
	}
	require.NotEqual(t, -1, zeroCol)
	col := Q.Column(zeroCol)
	for i := 1; i < len(col); i++ {
		require.InDelta(t, col[0], col[i], 1e-6)
	}
}

func TestEigenConvergesWithinFewSweepsFor3x3(t *testing.T) {
	m := pathLaplacian3(t)
	_, _, err := matrix.Eigen(m, 1e-9, 50)
	require.NoError(t, err)
}
