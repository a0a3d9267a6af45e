package matrix

import (
	"fmt"
	"math"
)

// Eigen performs Jacobi eigenvalue decomposition on a symmetric matrix m,
// returning its eigenvalues and the matrix Q whose columns are the
// corresponding eigenvectors. tol bounds both the symmetry check and sweep
// convergence (largest remaining off-diagonal magnitude); maxIter caps the
// number of sweeps, one sweep being n(n-1)/2 single-pivot rotations.
// Returns ErrDimensionMismatch, ErrNotSymmetric, or ErrEigenFailed.
// Complexity: O(n²) per rotation (pivot search), O(maxIter·n⁴) worst case.
func Eigen(m *Dense, tol float64, maxIter int) ([]float64, *Dense, error) {
	n := m.Rows()
	if n != m.Cols() {
		return nil, nil, fmt.Errorf("matrix: Eigen: non-square %dx%d: %w", n, m.Cols(), ErrDimensionMismatch)
	}
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if math.Abs(m.At(i, j)-m.At(j, i)) > tol {
				return nil, nil, ErrNotSymmetric
			}
		}
	}

	A := m.Clone()
	Q, err := Identity(n)
	if err != nil {
		return nil, nil, fmt.Errorf("matrix: Eigen: %w", err)
	}

	rotationsPerSweep := n * (n - 1) / 2
	if rotationsPerSweep < 1 {
		rotationsPerSweep = 1
	}
	maxRotations := maxIter * rotationsPerSweep

	var iter int
	for iter = 0; iter < maxRotations; iter++ {
		// Find the largest off-diagonal element, the Jacobi pivot.
		var p, q int
		maxOff := 0.0
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if off := math.Abs(A.At(i, j)); off > maxOff {
					maxOff = off
					p, q = i, j
				}
			}
		}
		if maxOff < tol {
			break
		}

		// app, aqq, apq are the pre-rotation values at the pivot; they must
		// be captured before the row/column update loop below overwrites
		// A's entries, since the diagonal update after that loop needs the
		// original (not partially-rotated) values.
		app := A.At(p, p)
		aqq := A.At(q, q)
		apq := A.At(p, q)

		theta := (aqq - app) / (2 * apq)
		t := math.Copysign(1.0/(math.Abs(theta)+math.Sqrt(theta*theta+1)), theta)
		c := 1.0 / math.Sqrt(t*t+1)
		s := t * c

		for i := 0; i < n; i++ {
			if i == p || i == q {
				continue
			}
			aip := A.At(i, p)
			aiq := A.At(i, q)
			A.Set(i, p, c*aip-s*aiq)
			A.Set(p, i, c*aip-s*aiq)
			A.Set(i, q, s*aip+c*aiq)
			A.Set(q, i, s*aip+c*aiq)
		}

		A.Set(p, p, c*c*app-2*c*s*apq+s*s*aqq)
		A.Set(q, q, s*s*app+2*c*s*apq+c*c*aqq)
		A.Set(p, q, 0.0)
		A.Set(q, p, 0.0)

		for i := 0; i < n; i++ {
			qip := Q.At(i, p)
			qiq := Q.At(i, q)
			Q.Set(i, p, c*qip-s*qiq)
			Q.Set(i, q, s*qip+c*qiq)
		}
	}
	if iter == maxRotations {
		return nil, nil, ErrEigenFailed
	}

	eigs := make([]float64, n)
	for i := 0; i < n; i++ {
		eigs[i] = A.At(i, i)
	}
	return eigs, Q, nil
}
