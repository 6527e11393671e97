// SPDX-License-Identifier: MIT
// Package sparse_test contains test helpers
//
// Purpose:
//   • Small deterministic fixtures (the 3×4 reference matrix and friends).
//   • A dense reference product to check the merge-join against.

package sparse_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/sparsemat/sparse"
	"github.com/stretchr/testify/require"
)

// ring is the float64 arithmetic semiring used by most tests.
var ring = sparse.Arithmetic[float64]{}

// gridA is the 3×4 reference matrix with 8 non-zero cells.
var gridA = [][]float64{
	{0, 1, 2, 1},
	{2, 3, 0, 5},
	{1, 0, 4, 0},
}

// gridB is a 4×3 right-hand operand for gridA.
var gridB = [][]float64{
	{0, 1, 2},
	{1, 4, 0},
	{0, 0, 1},
	{0, 3, 0},
}

// e builds a float64 entry.
func e(row, col int, v float64) sparse.Entry[float64] {
	return sparse.Entry[float64]{Row: row, Col: col, Value: v}
}

// entriesOf lists the non-zero cells of grid in row-major order.
func entriesOf(grid [][]float64) []sparse.Entry[float64] {
	var out []sparse.Entry[float64]
	for i, row := range grid {
		for j, v := range row {
			if v != 0 {
				out = append(out, e(i, j, v))
			}
		}
	}
	return out
}

// MustStore compresses grid into the given layout or fails the test.
func MustStore(t testing.TB, grid [][]float64, layout sparse.Layout, opts ...sparse.Option) *sparse.Store[float64] {
	t.Helper()
	s, err := sparse.FromEntries(ring, entriesOf(grid), layout, opts...)
	require.NoError(t, err)
	return s
}

// MustDenseRows converts s to a rows×cols grid or fails the test.
func MustDenseRows(t testing.TB, s *sparse.Store[float64], rows, cols int) [][]float64 {
	t.Helper()
	d, err := s.ToDense(sparse.Shape{Rows: rows, Cols: cols})
	require.NoError(t, err)
	out := make([][]float64, rows)
	for i := range out {
		out[i] = d.Row(i)
	}
	return out
}

// denseMul is the reference triple loop: C[i][j] = Σ_k A[i][k]·B[k][j].
func denseMul(a, b [][]float64) [][]float64 {
	n, k, m := len(a), len(b), len(b[0])
	out := make([][]float64, n)
	for i := 0; i < n; i++ {
		out[i] = make([]float64, m)
		for j := 0; j < m; j++ {
			for t := 0; t < k; t++ {
				out[i][j] += a[i][t] * b[t][j]
			}
		}
	}
	return out
}

// denseAdd is the reference element-wise sum over the larger of both shapes.
func denseAdd(a, b [][]float64, rows, cols int) [][]float64 {
	out := make([][]float64, rows)
	for i := range out {
		out[i] = make([]float64, cols)
		for j := range out[i] {
			if i < len(a) && j < len(a[i]) {
				out[i][j] += a[i][j]
			}
			if i < len(b) && j < len(b[i]) {
				out[i][j] += b[i][j]
			}
		}
	}
	return out
}

// randomGrid returns an r×c grid with roughly density·r·c small integer cells.
// Integer values keep float sums exact so dense and sparse agree bitwise.
func randomGrid(rng *rand.Rand, r, c int, density float64) [][]float64 {
	out := make([][]float64, r)
	for i := range out {
		out[i] = make([]float64, c)
		for j := range out[i] {
			if rng.Float64() < density {
				out[i][j] = float64(rng.Intn(9) + 1)
			}
		}
	}
	return out
}
