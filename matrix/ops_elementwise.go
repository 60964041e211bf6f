// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Provide the two elementwise primitives (scalar-paired and
//     coordinate-paired) plus their in-place forms. Every arithmetic and
//     comparison operator in api.go / ops_compare.go is a closure passed here,
//     so stride handling and shape checks are written exactly once.
//
// Determinism:
//   - Fixed i→j loop order; results are written into a fresh packed matrix
//     in that same order.
//
// Design:
//   - The primitives are generic functions, not methods, because the result
//     element type R may differ from T (comparisons yield bool).
//   - Packed float64 operands bypass the primitives for a few operators;
//     see ops_fastpath.go.

package matrix

// ---------- error context tags ----------

const (
	ctxScalarApply             = "ScalarBinaryApply"
	ctxScalarApplyInPlace      = "ScalarBinaryApplyInPlace"
	ctxElementwiseApply        = "ElementwiseBinaryApply"
	ctxElementwiseApplyInPlace = "ElementwiseBinaryApplyInPlace"
)

// ScalarBinaryApply returns a new packed matrix whose (i,j) element is
// fn(m(i,j), other). m is not modified.
//
// Errors:
//   - ErrNilMatrix when m is nil.
//   - ErrOutOfBuffer when m's strides address outside its buffer.
//
// Complexity: O(r*c) time, O(r*c) space.
func ScalarBinaryApply[T, R any](m *Matrix[T], other T, fn func(T, T) R) (*Matrix[R], error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(ctxScalarApply, err)
	}
	out := newPacked[R](m.rows, m.cols)
	var i, j, k int
	for i = 0; i < m.rows; i++ {
		for j = 0; j < m.cols; j++ {
			off, err := m.offset(i, j)
			if err != nil {
				return nil, matrixErrorf(ctxScalarApply, methodErrorf(ctxAt, i, j, err))
			}
			out.data[k] = fn(m.data[off], other)
			k++
		}
	}

	return out, nil
}

// ScalarBinaryApplyInPlace overwrites every element with fn(m(i,j), other).
// Elements written before an accessor error remain updated.
// Complexity: O(r*c) time, O(1) space.
func (m *Matrix[T]) ScalarBinaryApplyInPlace(other T, fn func(T, T) T) error {
	if err := ValidateNotNil(m); err != nil {
		return matrixErrorf(ctxScalarApplyInPlace, err)
	}
	var i, j int
	for i = 0; i < m.rows; i++ {
		for j = 0; j < m.cols; j++ {
			p, err := m.ref(i, j)
			if err != nil {
				return matrixErrorf(ctxScalarApplyInPlace, methodErrorf(ctxAt, i, j, err))
			}
			*p = fn(*p, other)
		}
	}

	return nil
}

// ElementwiseBinaryApply returns a new packed matrix whose (i,j) element is
// fn(a(i,j), b(i,j)). Neither operand is modified.
// MAIN DESCRIPTION:
//   - Coordinate-paired map over two same-shape matrices; strides may differ
//     between the operands (a packed matrix pairs correctly with a transposed view).
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (checked before any element is read).
//   - ErrOutOfBuffer from either operand's accessor.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func ElementwiseBinaryApply[T, R any](a, b *Matrix[T], fn func(T, T) R) (*Matrix[R], error) {
	if err := ValidateBinarySameShape(a, b); err != nil {
		return nil, matrixErrorf(ctxElementwiseApply, err)
	}
	out := newPacked[R](a.rows, a.cols)
	var i, j, k int
	for i = 0; i < a.rows; i++ {
		for j = 0; j < a.cols; j++ {
			offA, err := a.offset(i, j)
			if err != nil {
				return nil, matrixErrorf(ctxElementwiseApply, methodErrorf(ctxAt, i, j, err))
			}
			offB, err := b.offset(i, j)
			if err != nil {
				return nil, matrixErrorf(ctxElementwiseApply, methodErrorf(ctxAt, i, j, err))
			}
			out.data[k] = fn(a.data[offA], b.data[offB])
			k++
		}
	}

	return out, nil
}

// ElementwiseBinaryApplyInPlace overwrites m(i,j) with fn(m(i,j), other(i,j)).
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch before any write.
//   - Accessor errors; elements written before the error remain updated.
//
// Notes:
//   - other may be m itself. other must not be a differently-strided view of
//     m's buffer (e.g. m.Transpose()): earlier writes would feed later reads.
//
// Complexity: O(r*c) time, O(1) space.
func (m *Matrix[T]) ElementwiseBinaryApplyInPlace(other *Matrix[T], fn func(T, T) T) error {
	if err := ValidateBinarySameShape(m, other); err != nil {
		return matrixErrorf(ctxElementwiseApplyInPlace, err)
	}
	var i, j int
	for i = 0; i < m.rows; i++ {
		for j = 0; j < m.cols; j++ {
			p, err := m.ref(i, j)
			if err != nil {
				return matrixErrorf(ctxElementwiseApplyInPlace, methodErrorf(ctxAt, i, j, err))
			}
			q, err := other.ref(i, j)
			if err != nil {
				return matrixErrorf(ctxElementwiseApplyInPlace, methodErrorf(ctxAt, i, j, err))
			}
			*p = fn(*p, *q)
		}
	}

	return nil
}
