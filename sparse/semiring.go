// SPDX-License-Identifier: MIT
// Package sparse: value algebra.
//
// Purpose:
//   - Decouple the stores from any built-in numeric zero: every "is this cell
//     empty?" decision goes through Semiring.IsZero.
//   - Let the same merge-join kernel compute ordinary products, shortest-path
//     relaxations (MinPlus), reachability (Boolean) and 256-bit modular sums.

package sparse

import (
	"math"

	"github.com/holiman/uint256"
	"golang.org/x/exp/constraints"
)

// Semiring is the algebra (T, Add, Mul, Zero) a Store computes in.
// Zero must be the identity of Add and absorbing for Mul; IsZero reports
// whether a value equals Zero and decides which cells are stored.
type Semiring[T any] interface {
	Zero() T
	IsZero(v T) bool
	Add(a, b T) T
	Mul(a, b T) T
}

// Number is any built-in integer or floating-point type.
type Number interface {
	constraints.Integer | constraints.Float
}

// Arithmetic is the ordinary (+, ×, 0) semiring over a built-in number type.
type Arithmetic[T Number] struct{}

// Zero returns 0.
func (Arithmetic[T]) Zero() T { return 0 }

// IsZero reports v == 0.
func (Arithmetic[T]) IsZero(v T) bool { return v == 0 }

// Add returns a + b.
func (Arithmetic[T]) Add(a, b T) T { return a + b }

// Mul returns a * b.
func (Arithmetic[T]) Mul(a, b T) T { return a * b }

// MinPlus is the tropical semiring (min, +, +Inf) over float64.
// A MinPlus product of two distance matrices is one relaxation step of
// all-pairs shortest paths; +Inf means "no path" and is never stored.
type MinPlus struct{}

// Zero returns +Inf.
func (MinPlus) Zero() float64 { return math.Inf(1) }

// IsZero reports v == +Inf.
func (MinPlus) IsZero(v float64) bool { return math.IsInf(v, 1) }

// Add returns min(a, b).
func (MinPlus) Add(a, b float64) float64 { return math.Min(a, b) }

// Mul returns a + b.
func (MinPlus) Mul(a, b float64) float64 { return a + b }

// Boolean is the (OR, AND, false) semiring; products compute reachability.
type Boolean struct{}

func (Boolean) Zero() bool         { return false }
func (Boolean) IsZero(v bool) bool { return !v }
func (Boolean) Add(a, b bool) bool { return a || b }
func (Boolean) Mul(a, b bool) bool { return a && b }

// Uint256 is arithmetic modulo 2^256 on holiman/uint256 values.
// Values are held by value (uint256.Int is a [4]uint64), so Entry and Store
// stay comparable and copies never alias.
type Uint256 struct{}

// Zero returns 0.
func (Uint256) Zero() uint256.Int { return uint256.Int{} }

// IsZero reports v == 0.
func (Uint256) IsZero(v uint256.Int) bool { return v.IsZero() }

// Add returns (a + b) mod 2^256.
func (Uint256) Add(a, b uint256.Int) uint256.Int {
	var z uint256.Int
	z.Add(&a, &b)
	return z
}

// Mul returns (a × b) mod 2^256.
func (Uint256) Mul(a, b uint256.Int) uint256.Int {
	var z uint256.Int
	z.Mul(&a, &b)
	return z
}

// Compile-time assertions.
var (
	_ Semiring[float64]     = Arithmetic[float64]{}
	_ Semiring[int]         = Arithmetic[int]{}
	_ Semiring[float64]     = MinPlus{}
	_ Semiring[bool]        = Boolean{}
	_ Semiring[uint256.Int] = Uint256{}
)
