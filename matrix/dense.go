package matrix

import "fmt"

// Dense is a row-major matrix of float64 values. r is rows, c is columns,
// and data holds r*c elements in row-major order — flat for cache locality,
// matching the teacher library's convention.
type Dense struct {
	r, c int
	data []float64
}

// NewDense allocates an r×c Dense matrix initialized to zero. Complexity:
// O(r*c).
func NewDense(rows, cols int) (*Dense, error) {
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("matrix: NewDense(%d, %d): %w", rows, cols, ErrDimensionMismatch)
	}
	return &Dense{r: rows, c: cols, data: make([]float64, rows*cols)}, nil
}

// Identity returns the n×n identity matrix.
func Identity(n int) (*Dense, error) {
	m, err := NewDense(n, n)
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		m.Set(i, i, 1.0)
	}
	return m, nil
}

// Rows returns the number of rows. Complexity: O(1).
func (m *Dense) Rows() int { return m.r }

// Cols returns the number of columns. Complexity: O(1).
func (m *Dense) Cols() int { return m.c }

func (m *Dense) index(row, col int) int {
	if row < 0 || row >= m.r || col < 0 || col >= m.c {
		panic(fmt.Sprintf("matrix: index (%d,%d) out of bounds for %dx%d", row, col, m.r, m.c))
	}
	return row*m.c + col
}

// At returns the element at (row, col). Panics if out of bounds — callers
// within this package always index within [0,Rows)×[0,Cols), the same
// discipline the teacher's ops package follows via its own bounds checks.
func (m *Dense) At(row, col int) float64 {
	return m.data[m.index(row, col)]
}

// Set assigns v at (row, col).
func (m *Dense) Set(row, col int, v float64) {
	m.data[m.index(row, col)] = v
}

// Clone returns a deep, independent copy of m.
func (m *Dense) Clone() *Dense {
	data := make([]float64, len(m.data))
	copy(data, m.data)
	return &Dense{r: m.r, c: m.c, data: data}
}

// Column returns column j as a freestanding slice.
func (m *Dense) Column(j int) []float64 {
	out := make([]float64, m.r)
	for i := 0; i < m.r; i++ {
		out[i] = m.At(i, j)
	}
	return out
}
