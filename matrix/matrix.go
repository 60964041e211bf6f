// SPDX-License-Identifier: MIT

// Package matrix: the Matrix container and its read-only shape accessors.
package matrix

// Matrix is a two-dimensional array stored in a flat buffer.
//   - rows, cols hold the logical dimensions (>= 0).
//   - rowStride, colStride map (row, col) to row*rowStride + col*colStride.
//   - size is always rows*cols; it may be smaller than len(data) when strides
//     leave gaps, but a valid coordinate must never address past it.
//
// The zero value is an empty 0×0 matrix with zero strides.
type Matrix[T any] struct {
	data                 []T // owned or adopted storage
	rows, cols           int // logical dimensions
	rowStride, colStride int // linear step per unit row / column
	size                 int // rows*cols, the logical element count
}

// Getters are nil-safe: a nil *Matrix reports a 0×0 shape and no data.

// Rows returns the number of rows. Complexity: O(1).
func (m *Matrix[T]) Rows() int {
	if m == nil {
		return 0
	}

	return m.rows
}

// Cols returns the number of columns. Complexity: O(1).
func (m *Matrix[T]) Cols() int {
	if m == nil {
		return 0
	}

	return m.cols
}

// Shape packs Rows() and Cols() into a single call.
func (m *Matrix[T]) Shape() (rows, cols int) { return m.Rows(), m.Cols() }

// RowStride returns the offset increment for one row step.
func (m *Matrix[T]) RowStride() int {
	if m == nil {
		return 0
	}

	return m.rowStride
}

// ColStride returns the offset increment for one column step.
func (m *Matrix[T]) ColStride() int {
	if m == nil {
		return 0
	}

	return m.colStride
}

// Strides returns (RowStride(), ColStride()).
func (m *Matrix[T]) Strides() (rowStride, colStride int) { return m.RowStride(), m.ColStride() }

// Size returns the logical element count rows*cols.
func (m *Matrix[T]) Size() int {
	if m == nil {
		return 0
	}

	return m.size
}

// Data returns the backing buffer itself, not a copy. Writes through the
// returned slice are visible in m and in every view sharing the buffer.
func (m *Matrix[T]) Data() []T {
	if m == nil {
		return nil
	}

	return m.data
}

// IsPacked reports whether m uses the default row-major layout
// (rowStride == cols, colStride == 1) over a buffer covering every element.
// Negative dimensions (possible only through NewStrided or NewFromBuffer)
// and a nil m are never packed. For a packed matrix every coordinate passes
// offset, which is what the flat-slice fast paths rely on.
func (m *Matrix[T]) IsPacked() bool {
	if m == nil || m.rows < 0 || m.cols < 0 {
		return false
	}
	if m.size == 0 {
		return true
	}

	return m.colStride == 1 && m.rowStride == m.cols && len(m.data) >= m.size
}
