// SPDX-License-Identifier: MIT
// Package sparse_test contains unit tests for the element-wise adder.
package sparse_test

import (
	"math/rand"
	"testing"

	"github.com/holiman/uint256"
	"github.com/katalvlaran/sparsemat/sparse"
	"github.com/stretchr/testify/require"
)

func TestAdd_Basic(t *testing.T) {
	t.Parallel()
	a := MustStore(t, gridA, sparse.RowCompressed)
	b := MustStore(t, [][]float64{{1, 0, 0, 1}, {0, 0, 3, 0}, {0, 2, 0, 0}}, sparse.RowCompressed)

	c, err := sparse.Add(a, b)
	require.NoError(t, err)
	require.Equal(t, sparse.RowCompressed, c.Layout())
	require.NoError(t, sparse.Validate(c))
	want := [][]float64{
		{1, 1, 2, 2},
		{2, 3, 3, 5},
		{1, 2, 4, 0},
	}
	require.Equal(t, want, MustDenseRows(t, c, 3, 4))

	// operands are untouched
	require.Equal(t, gridA, MustDenseRows(t, a, 3, 4))

	s, err := sparse.Sum(a, b)
	require.NoError(t, err)
	require.Equal(t, c.Decompress(), s.Decompress())
}

// TestAdd_DifferentLineCounts pads the shorter operand with empty rows.
func TestAdd_DifferentLineCounts(t *testing.T) {
	t.Parallel()
	tall := [][]float64{
		{0, 1},
		{0, 0},
		{3, 0},
		{0, 0},
		{7, 7},
	}
	a := MustStore(t, gridA, sparse.RowCompressed)
	b := MustStore(t, tall, sparse.RowCompressed)

	for _, pair := range [][2]*sparse.Store[float64]{{a, b}, {b, a}} {
		c, err := sparse.Add(pair[0], pair[1])
		require.NoError(t, err)
		require.Equal(t, 5, c.LineCount())
		require.Equal(t, denseAdd(gridA, tall, 5, 4), MustDenseRows(t, c, 5, 4))
	}
}

func TestAdd_RandomAgainstDense(t *testing.T) {
	t.Parallel()
	rng := rand.New(rand.NewSource(7))
	for trial := 0; trial < 20; trial++ {
		r1, c1 := 1+rng.Intn(10), 1+rng.Intn(10)
		r2, c2 := 1+rng.Intn(10), 1+rng.Intn(10)
		ga, gb := randomGrid(rng, r1, c1, 0.4), randomGrid(rng, r2, c2, 0.4)

		sum, err := sparse.Add(MustStore(t, ga, sparse.RowCompressed), MustStore(t, gb, sparse.RowCompressed))
		require.NoError(t, err)
		require.NoError(t, sparse.ValidateStrict(sum)) // positive cells never cancel
		rows, cols := max(r1, r2), max(c1, c2)
		require.Equalf(t, denseAdd(ga, gb, rows, cols), MustDenseRows(t, sum, rows, cols), "trial %d", trial)
	}
}

// TestAdd_ZeroSums: kept by default, dropped with WithPruneZeroSums.
func TestAdd_ZeroSums(t *testing.T) {
	t.Parallel()
	a := MustStore(t, [][]float64{{1, 2}}, sparse.RowCompressed)
	b := MustStore(t, [][]float64{{-1, 0}}, sparse.RowCompressed)

	kept, err := sparse.Add(a, b)
	require.NoError(t, err)
	require.Equal(t, 2, kept.Len())
	require.NoError(t, sparse.Validate(kept))
	require.ErrorIs(t, sparse.ValidateNoExplicitZeros(kept), sparse.ErrExplicitZero)

	pruned, err := sparse.Add(a, b, sparse.WithPruneZeroSums())
	require.NoError(t, err)
	require.Equal(t, 1, pruned.Len())
	require.NoError(t, sparse.ValidateStrict(pruned))

	// the option also travels with the left operand
	pa := MustStore(t, [][]float64{{1, 2}}, sparse.RowCompressed, sparse.WithPruneZeroSums())
	viaStore, err := sparse.Add(pa, b)
	require.NoError(t, err)
	require.Equal(t, 1, viaStore.Len())
}

func TestAdd_Uint256Overflow(t *testing.T) {
	t.Parallel()
	u := sparse.Uint256{}
	maxU := *new(uint256.Int).SetAllOne()
	a, err := sparse.FromEntries(u, []sparse.Entry[uint256.Int]{{Row: 0, Col: 0, Value: maxU}}, sparse.RowCompressed)
	require.NoError(t, err)
	b, err := sparse.FromEntries(u, []sparse.Entry[uint256.Int]{{Row: 0, Col: 0, Value: *uint256.NewInt(1)}}, sparse.RowCompressed)
	require.NoError(t, err)

	c, err := sparse.Add(a, b, sparse.WithPruneZeroSums())
	require.NoError(t, err)
	require.Equal(t, 0, c.Len()) // 2^256 wraps to zero
}

func TestAdd_Errors(t *testing.T) {
	t.Parallel()
	csr := MustStore(t, gridA, sparse.RowCompressed)
	csc := MustStore(t, gridA, sparse.ColumnCompressed)

	_, err := sparse.Add(csr, csc)
	require.ErrorIs(t, err, sparse.ErrLayoutMismatch)
	_, err = sparse.Add(csc, csr)
	require.ErrorIs(t, err, sparse.ErrLayoutMismatch)
	_, err = sparse.Add(nil, csr)
	require.ErrorIs(t, err, sparse.ErrNilStore)
}
