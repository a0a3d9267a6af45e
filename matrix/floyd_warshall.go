package matrix

import (
	"fmt"
	"math"
)

// FloydWarshall computes all-pairs shortest-path distances in place on m.
// m must be square, with math.Inf(1) marking absent edges and 0 on the
// diagonal. Complexity: O(n³) time, O(1) extra memory.
func FloydWarshall(m *Dense) error {
	if m.Rows() != m.Cols() {
		return fmt.Errorf("matrix: FloydWarshall: non-square %dx%d: %w", m.Rows(), m.Cols(), ErrDimensionMismatch)
	}
	n := m.Rows()

	for k := 0; k < n; k++ {
		for i := 0; i < n; i++ {
			dik := m.At(i, k)
			if math.IsInf(dik, 1) {
				continue
			}
			for j := 0; j < n; j++ {
				if alt := dik + m.At(k, j); alt < m.At(i, j) {
					m.Set(i, j, alt)
				}
			}
		}
	}
	return nil
}
