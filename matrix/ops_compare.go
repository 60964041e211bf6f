// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Elementwise comparisons producing *Matrix[bool] masks, built on the
//     same two primitives as the arithmetic operators.
//   - AllClose: tolerance-based equality for floating-point matrices.
//
// Constraints:
//   - Equal accepts any comparable T; ordering comparisons require Real
//     (integers and floats). Complex numbers are not ordered.
//   - NaN compares false in every ordering and in Equal, as in Go.

package matrix

import "math"

// ---------- error context tags ----------

const (
	ctxEqual              = "Equal"
	ctxEqualScalar        = "EqualScalar"
	ctxLess               = "Less"
	ctxLessScalar         = "LessScalar"
	ctxLessEqual          = "LessEqual"
	ctxLessEqualScalar    = "LessEqualScalar"
	ctxGreater            = "Greater"
	ctxGreaterScalar      = "GreaterScalar"
	ctxGreaterEqual       = "GreaterEqual"
	ctxGreaterEqualScalar = "GreaterEqualScalar"
	ctxAllClose           = "AllClose"
)

func eq[T comparable](x, y T) bool { return x == y }
func lt[T Real](x, y T) bool       { return x < y }
func le[T Real](x, y T) bool       { return x <= y }
func gt[T Real](x, y T) bool       { return x > y }
func ge[T Real](x, y T) bool       { return x >= y }

// Equal returns the mask a(i,j) == b(i,j).
// Errors: ErrNilMatrix, ErrDimensionMismatch, ErrOutOfBuffer.
func Equal[T comparable](a, b *Matrix[T]) (*Matrix[bool], error) {
	out, err := ElementwiseBinaryApply(a, b, eq[T])

	return wrap1(ctxEqual, out, err)
}

// EqualScalar returns the mask m(i,j) == s.
func EqualScalar[T comparable](m *Matrix[T], s T) (*Matrix[bool], error) {
	out, err := ScalarBinaryApply(m, s, eq[T])

	return wrap1(ctxEqualScalar, out, err)
}

// Less returns the mask a(i,j) < b(i,j).
func Less[T Real](a, b *Matrix[T]) (*Matrix[bool], error) {
	out, err := ElementwiseBinaryApply(a, b, lt[T])

	return wrap1(ctxLess, out, err)
}

// LessScalar returns the mask m(i,j) < s.
func LessScalar[T Real](m *Matrix[T], s T) (*Matrix[bool], error) {
	out, err := ScalarBinaryApply(m, s, lt[T])

	return wrap1(ctxLessScalar, out, err)
}

// LessEqual returns the mask a(i,j) <= b(i,j).
func LessEqual[T Real](a, b *Matrix[T]) (*Matrix[bool], error) {
	out, err := ElementwiseBinaryApply(a, b, le[T])

	return wrap1(ctxLessEqual, out, err)
}

// LessEqualScalar returns the mask m(i,j) <= s.
func LessEqualScalar[T Real](m *Matrix[T], s T) (*Matrix[bool], error) {
	out, err := ScalarBinaryApply(m, s, le[T])

	return wrap1(ctxLessEqualScalar, out, err)
}

// Greater returns the mask a(i,j) > b(i,j).
func Greater[T Real](a, b *Matrix[T]) (*Matrix[bool], error) {
	out, err := ElementwiseBinaryApply(a, b, gt[T])

	return wrap1(ctxGreater, out, err)
}

// GreaterScalar returns the mask m(i,j) > s.
func GreaterScalar[T Real](m *Matrix[T], s T) (*Matrix[bool], error) {
	out, err := ScalarBinaryApply(m, s, gt[T])

	return wrap1(ctxGreaterScalar, out, err)
}

// GreaterEqual returns the mask a(i,j) >= b(i,j).
func GreaterEqual[T Real](a, b *Matrix[T]) (*Matrix[bool], error) {
	out, err := ElementwiseBinaryApply(a, b, ge[T])

	return wrap1(ctxGreaterEqual, out, err)
}

// GreaterEqualScalar returns the mask m(i,j) >= s.
func GreaterEqualScalar[T Real](m *Matrix[T], s T) (*Matrix[bool], error) {
	out, err := ScalarBinaryApply(m, s, ge[T])

	return wrap1(ctxGreaterEqualScalar, out, err)
}

// AllClose checks element-wise |a-b| ≤ atol + rtol*|b| for identical shapes.
// Returns (true,nil) if all elements satisfy the relation; (false,nil) otherwise.
//
// Policy:
//   - Tolerances come from WithRelTol / WithAbsTol (DefaultRelTol, DefaultAbsTol).
//   - Identical values (including equal infinities) always match.
//   - An infinity against a different value never matches.
//   - NaN matches only NaN, and only under WithEqualNaN.
//
// Errors: ErrNilMatrix, ErrDimensionMismatch, ErrOutOfBuffer.
// Complexity: O(r*c) time, O(1) space; early exit on the first violation.
func AllClose[T Float](a, b *Matrix[T], opts ...Option) (bool, error) {
	o := gatherOptions(opts...)
	if err := ValidateBinarySameShape(a, b); err != nil {
		return false, matrixErrorf(ctxAllClose, err)
	}

	var i, j int
	for i = 0; i < a.rows; i++ {
		for j = 0; j < a.cols; j++ {
			offA, err := a.offset(i, j)
			if err != nil {
				return false, matrixErrorf(ctxAllClose, methodErrorf(ctxAt, i, j, err))
			}
			offB, err := b.offset(i, j)
			if err != nil {
				return false, matrixErrorf(ctxAllClose, methodErrorf(ctxAt, i, j, err))
			}
			if !close64(float64(a.data[offA]), float64(b.data[offB]), o) {
				return false, nil // early-exit on first violation
			}
		}
	}

	return true, nil
}

// close64 applies the AllClose relation to one pair.
func close64(x, y float64, o Options) bool {
	if x == y {
		return true
	}
	xNaN, yNaN := math.IsNaN(x), math.IsNaN(y)
	if xNaN || yNaN {
		return o.equalNaN && xNaN && yNaN
	}
	if math.IsInf(x, 0) || math.IsInf(y, 0) {
		return false
	}

	return math.Abs(x-y) <= o.atol+o.rtol*math.Abs(y)
}
