// SPDX-License-Identifier: MIT
// Package sparse_test checks the merge-join kernel call by call.
package sparse_test

//go:generate mockgen -source kernel_test.go -destination semiring_mocks_test.go -package sparse_test

import (
	"testing"

	"github.com/katalvlaran/sparsemat/sparse"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// FloatSemiring is the float64 instance of sparse.Semiring, mocked by
// MockFloatSemiring.
type FloatSemiring interface {
	Zero() float64
	IsZero(v float64) bool
	Add(a, b float64) float64
	Mul(a, b float64) float64
}

var _ sparse.Semiring[float64] = (*MockFloatSemiring)(nil)

// TestMergeDot_CallSequence: runs [1 3 5] and [3 5 9] meet at 3 and 5 only,
// so exactly two Mul/Add pairs are issued, in index order.
func TestMergeDot_CallSequence(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	r := NewMockFloatSemiring(ctrl)
	gomock.InOrder(
		r.EXPECT().Zero().Return(0.0),
		r.EXPECT().Mul(2.0, 10.0).Return(20.0),
		r.EXPECT().Add(0.0, 20.0).Return(20.0),
		r.EXPECT().Mul(3.0, 20.0).Return(60.0),
		r.EXPECT().Add(20.0, 60.0).Return(80.0),
	)

	sum, hit := sparse.MergeDotFloat64_TestOnly(r,
		[]int{1, 3, 5}, []float64{1, 2, 3},
		[]int{3, 5, 9}, []float64{10, 20, 30},
	)
	require.True(t, hit)
	require.Equal(t, 80.0, sum)
}

// TestMergeDot_EarlyExit: once a's cursor passes b's last index nothing
// more can match and no product is computed.
func TestMergeDot_EarlyExit(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	r := NewMockFloatSemiring(ctrl)
	r.EXPECT().Zero().Return(0.0)

	sum, hit := sparse.MergeDotFloat64_TestOnly(r,
		[]int{0, 1, 2, 10}, []float64{1, 1, 1, 1},
		[]int{5, 6, 7}, []float64{1, 1, 1},
	)
	require.False(t, hit)
	require.Equal(t, 0.0, sum)
}

func TestMergeDot_EmptyRun(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	r := NewMockFloatSemiring(ctrl)
	r.EXPECT().Zero().Return(0.0).Times(2)

	_, hit := sparse.MergeDotFloat64_TestOnly(r, nil, nil, []int{1}, []float64{1})
	require.False(t, hit)
	_, hit = sparse.MergeDotFloat64_TestOnly(r, []int{1}, []float64{1}, nil, nil)
	require.False(t, hit)
}

// TestMergeDot_HitWithZeroSum: a match that cancels still reports hit; the
// caller (not the kernel) drops the zero.
func TestMergeDot_HitWithZeroSum(t *testing.T) {
	t.Parallel()
	sum, hit := sparse.MergeDotFloat64_TestOnly(ring,
		[]int{0, 1}, []float64{1, -1},
		[]int{0, 1}, []float64{1, 1},
	)
	require.True(t, hit)
	require.Equal(t, 0.0, sum)
}
