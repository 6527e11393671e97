// SPDX-License-Identifier: MIT
// Package sparse_test contains unit tests for the merge-join multiplier.
package sparse_test

import (
	"fmt"
	"math"
	"math/rand"
	"testing"

	"github.com/holiman/uint256"
	"github.com/katalvlaran/sparsemat/sparse"
	"github.com/stretchr/testify/require"
)

// TestMultiply_Scenario multiplies the 3×4 reference by a 4×3 operand.
func TestMultiply_Scenario(t *testing.T) {
	t.Parallel()
	a := MustStore(t, gridA, sparse.RowCompressed)
	b := MustStore(t, gridB, sparse.RowCompressed)

	c, err := sparse.Multiply(a, b)
	require.NoError(t, err)
	require.Equal(t, sparse.RowCompressed, c.Layout())
	require.NoError(t, sparse.ValidateStrict(c))

	want := [][]float64{
		{1, 7, 2},
		{3, 29, 4},
		{0, 1, 6},
	}
	require.Equal(t, want, MustDenseRows(t, c, 3, 3))
	require.Equal(t, denseMul(gridA, gridB), want)
	require.Equal(t, 8, c.Len()) // (2,0) sums to nothing and is not stored
}

// TestMultiply_SideEffects: a ends row-compressed, b column-compressed,
// neither changes value.
func TestMultiply_SideEffects(t *testing.T) {
	t.Parallel()
	a := MustStore(t, gridA, sparse.ColumnCompressed)
	b := MustStore(t, gridB, sparse.RowCompressed)

	_, err := sparse.Multiply(a, b)
	require.NoError(t, err)
	require.Equal(t, sparse.RowCompressed, a.Layout())
	require.Equal(t, sparse.ColumnCompressed, b.Layout())
	require.Equal(t, gridA, MustDenseRows(t, a, 3, 4))
	require.Equal(t, gridB, MustDenseRows(t, b, 4, 3))
}

func TestMultiplyPure_LeavesOperands(t *testing.T) {
	t.Parallel()
	a := MustStore(t, gridA, sparse.ColumnCompressed)
	b := MustStore(t, gridB, sparse.RowCompressed)
	aOff, bOff := a.Offsets(), b.Offsets()

	c, err := sparse.MultiplyPure(a, b)
	require.NoError(t, err)
	require.Equal(t, denseMul(gridA, gridB), MustDenseRows(t, c, 3, 3))

	require.Equal(t, sparse.ColumnCompressed, a.Layout())
	require.Equal(t, sparse.RowCompressed, b.Layout())
	require.Same(t, &aOff[0], &a.Offsets()[0])
	require.Same(t, &bOff[0], &b.Offsets()[0])

	p, err := sparse.Product(a, b)
	require.NoError(t, err)
	require.Equal(t, c.Decompress(), p.Decompress())
}

// TestMultiply_SameOperand squares M = [[1,2],[0,3]].
func TestMultiply_SameOperand(t *testing.T) {
	t.Parallel()
	m := MustStore(t, [][]float64{{1, 2}, {0, 3}}, sparse.RowCompressed)

	sq, err := sparse.Multiply(m, m)
	require.NoError(t, err)
	require.Equal(t, [][]float64{{1, 8}, {0, 9}}, MustDenseRows(t, sq, 2, 2))
	require.Equal(t, "[(0,0)=1 (0,1)=8 (1,1)=9]", fmt.Sprint(sq.Decompress()))

	// m itself is still a valid CSR store with its original cells.
	require.Equal(t, sparse.RowCompressed, m.Layout())
	require.Equal(t, [][]float64{{1, 2}, {0, 3}}, MustDenseRows(t, m, 2, 2))
}

// TestMultiply_PermissiveShape: inner dimensions 3 vs 2; k=2 only exists in A.
func TestMultiply_PermissiveShape(t *testing.T) {
	t.Parallel()
	a := MustStore(t, [][]float64{{1, 1, 1}, {0, 0, 1}}, sparse.RowCompressed)
	b := MustStore(t, [][]float64{{1, 0}, {0, 1}}, sparse.RowCompressed)

	c, err := sparse.Multiply(a, b)
	require.NoError(t, err)
	require.Equal(t, 1, c.LineCount())
	require.Equal(t, 2, c.Len())
	require.Equal(t, [][]float64{{1, 1}, {0, 0}}, MustDenseRows(t, c, 2, 2))
}

func TestMultiply_CancellationNotStored(t *testing.T) {
	t.Parallel()
	a := MustStore(t, [][]float64{{1, -1}}, sparse.RowCompressed)
	b := MustStore(t, [][]float64{{1}, {1}}, sparse.RowCompressed)

	c, err := sparse.Multiply(a, b)
	require.NoError(t, err)
	require.Equal(t, 0, c.Len())
	require.NoError(t, sparse.ValidateStrict(c))
}

func TestMultiply_Empty(t *testing.T) {
	t.Parallel()
	empty, err := sparse.New[float64](ring, sparse.RowCompressed)
	require.NoError(t, err)
	b := MustStore(t, gridB, sparse.ColumnCompressed)

	c, err := sparse.Multiply(empty, b)
	require.NoError(t, err)
	require.Equal(t, 0, c.Len())
	require.Equal(t, 0, c.LineCount())
}

func TestMultiply_Nil(t *testing.T) {
	t.Parallel()
	b := MustStore(t, gridB, sparse.ColumnCompressed)
	_, err := sparse.Multiply(nil, b)
	require.ErrorIs(t, err, sparse.ErrNilStore)
	_, err = sparse.MultiplyPure(b, nil)
	require.ErrorIs(t, err, sparse.ErrNilStore)
}

// TestMultiply_RandomAgainstDense compares against the triple loop.
func TestMultiply_RandomAgainstDense(t *testing.T) {
	t.Parallel()
	rng := rand.New(rand.NewSource(42))
	for trial := 0; trial < 25; trial++ {
		n, k, m := 1+rng.Intn(12), 1+rng.Intn(12), 1+rng.Intn(12)
		ga := randomGrid(rng, n, k, 0.3)
		gb := randomGrid(rng, k, m, 0.3)

		a := MustStore(t, ga, sparse.Layout(trial%2))
		b := MustStore(t, gb, sparse.Layout((trial/2)%2))
		c, err := sparse.Multiply(a, b)
		require.NoError(t, err)
		require.NoError(t, sparse.ValidateStrict(c))
		require.Equalf(t, denseMul(ga, gb), MustDenseRows(t, c, n, m), "trial %d (%dx%d · %dx%d)", trial, n, k, k, m)
	}
}

// TestMultiply_MinPlus runs one relaxation step of all-pairs shortest paths.
// Edges: 0→1 (4), 1→2 (1), 0→2 (7); the diagonal holds 0.
func TestMultiply_MinPlus(t *testing.T) {
	t.Parallel()
	mp := sparse.MinPlus{}
	d, err := sparse.FromEntries[float64](mp, []sparse.Entry[float64]{
		e(0, 0, 0), e(1, 1, 0), e(2, 2, 0),
		e(0, 1, 4), e(1, 2, 1), e(0, 2, 7),
	}, sparse.RowCompressed)
	require.NoError(t, err)
	require.Equal(t, 6, d.Len()) // 0 is a real distance here, not the zero

	d2, err := sparse.MultiplyPure(d, d)
	require.NoError(t, err)

	got, err := d2.At(0, 2)
	require.NoError(t, err)
	require.Equal(t, 5.0, got) // via 0→1→2
	got, err = d2.At(0, 1)
	require.NoError(t, err)
	require.Equal(t, 4.0, got)
	got, err = d2.At(2, 0)
	require.NoError(t, err)
	require.True(t, math.IsInf(got, 1))
}

// TestMultiply_Boolean: the square of a path adjacency gives two-hop reachability.
func TestMultiply_Boolean(t *testing.T) {
	t.Parallel()
	adj, err := sparse.FromEntries[bool](sparse.Boolean{}, []sparse.Entry[bool]{
		{Row: 0, Col: 1, Value: true},
		{Row: 1, Col: 2, Value: true},
		{Row: 2, Col: 3, Value: false}, // the zero, never stored
	}, sparse.RowCompressed)
	require.NoError(t, err)
	require.Equal(t, 2, adj.Len())

	two, err := sparse.MultiplyPure(adj, adj)
	require.NoError(t, err)
	require.Equal(t, []sparse.Entry[bool]{{Row: 0, Col: 2, Value: true}}, two.Decompress())
}

// TestMultiply_Uint256Wraps: (2^256 - 1) · 2 ≡ 2^256 - 2.
func TestMultiply_Uint256Wraps(t *testing.T) {
	t.Parallel()
	u := sparse.Uint256{}
	maxU := *new(uint256.Int).SetAllOne()
	two := *uint256.NewInt(2)

	a, err := sparse.FromEntries(u, []sparse.Entry[uint256.Int]{{Row: 0, Col: 0, Value: maxU}}, sparse.RowCompressed)
	require.NoError(t, err)
	b, err := sparse.FromEntries(u, []sparse.Entry[uint256.Int]{{Row: 0, Col: 0, Value: two}}, sparse.RowCompressed)
	require.NoError(t, err)

	c, err := sparse.Multiply(a, b)
	require.NoError(t, err)
	got, err := c.At(0, 0)
	require.NoError(t, err)

	want := new(uint256.Int).SubUint64(&maxU, 1)
	require.True(t, want.Eq(&got), "got %s want %s", got.Hex(), want.Hex())
}
