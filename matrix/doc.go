// Package matrix provides the small dense-matrix type and the two
// operations the analysis algorithms in graphstat need on it: Jacobi
// eigendecomposition of a symmetric matrix (for the Laplacian eigenvectors
// behind the spectral layout) and Floyd–Warshall all-pairs shortest paths
// (for diameter, average shortest path, and the Kamada–Kawai layout's ideal
// distances). It intentionally does not grow into a general linear-algebra
// library: SPEC_FULL.md §1 bounds the core to exactly these two dense
// operations.
package matrix

import "errors"

// ErrDimensionMismatch is returned when an operation's matrix arguments do
// not have compatible shapes.
var ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

// ErrNotSymmetric is returned when Eigen is given a non-symmetric matrix.
var ErrNotSymmetric = errors.New("matrix: matrix is not symmetric")

// ErrEigenFailed is returned when Eigen does not converge within maxIter
// sweeps.
var ErrEigenFailed = errors.New("matrix: eigen decomposition did not converge")
