// SPDX-License-Identifier: MIT

// Package matrix - constructors.
//
// Purpose:
//   - Provide every way a Matrix comes into existence: empty, zero-filled,
//     fill-value, row-major literal sequence, and adopted buffer (with default
//     or explicit strides).
//   - Owning constructors validate dimensions; buffer-adopting constructors
//     do not validate anything (documented trust boundary).
//
// Complexity quicksheet:
//   - NewEmpty: O(1); NewZeros/NewFilled/NewFromValues: O(r*c);
//     NewFromBuffer/NewStrided: O(1), no copy.

package matrix

import (
	"fmt"
	"iter"
	"slices"
)

// ---------- constructor tags ----------

const (
	ctxNewZeros   = "NewZeros"
	ctxNewFilled  = "NewFilled"
	ctxNewFromSeq = "NewFromSeq"
)

// NewEmpty returns a 0×0 matrix with empty storage and zero strides.
// Equivalent to &Matrix[T]{}.
func NewEmpty[T any]() *Matrix[T] {
	return &Matrix[T]{}
}

// newPacked allocates a rows×cols row-major packed matrix.
// Negative dimensions (only reachable through unvalidated NewStrided views)
// collapse to zero.
func newPacked[T any](rows, cols int) *Matrix[T] {
	rows, cols = max(rows, 0), max(cols, 0)
	n := rows * cols

	return &Matrix[T]{
		data:      make([]T, n), // make() zero-fills deterministically
		rows:      rows,
		cols:      cols,
		rowStride: cols,
		colStride: 1,
		size:      n,
	}
}

// validateDims rejects negative dimensions. Zero is legal (0×k, k×0).
func validateDims(rows, cols int) error {
	if rows < 0 || cols < 0 {
		return ErrInvalidDimensions
	}

	return nil
}

// NewZeros creates a rows×cols matrix with every element set to the zero
// value of T, using packed row-major strides.
// MAIN DESCRIPTION:
//   - Public zero-filled constructor with strict shape validation.
//
// Errors:
//   - ErrInvalidDimensions when rows < 0 or cols < 0.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func NewZeros[T any](rows, cols int) (*Matrix[T], error) {
	if err := validateDims(rows, cols); err != nil {
		return nil, fmt.Errorf("%s(%d,%d): %w", ctxNewZeros, rows, cols, err)
	}

	return newPacked[T](rows, cols), nil
}

// NewFilled creates a rows×cols packed matrix with every element set to v.
// Errors: ErrInvalidDimensions. Complexity: O(r*c).
func NewFilled[T any](rows, cols int, v T) (*Matrix[T], error) {
	if err := validateDims(rows, cols); err != nil {
		return nil, fmt.Errorf("%s(%d,%d): %w", ctxNewFilled, rows, cols, err)
	}
	m := newPacked[T](rows, cols)
	for i := range m.data {
		m.data[i] = v
	}

	return m, nil
}

// NewFromValues creates a rows×cols packed matrix from values given in
// row-major order. Exactly rows*cols values are required.
//
// Errors:
//   - ErrTooManyElements when len(values) > rows*cols.
//   - ErrTooFewElements when len(values) < rows*cols.
//   - ErrInvalidDimensions on negative dimensions.
//
// The values are copied; the returned matrix does not alias the argument.
func NewFromValues[T any](rows, cols int, values ...T) (*Matrix[T], error) {
	return NewFromSeq(rows, cols, slices.Values(values))
}

// NewFromSeq creates a rows×cols packed matrix by pulling values from seq in
// row-major order.
// MAIN DESCRIPTION:
//   - Streaming form of NewFromValues with two order-dependent detection points.
//
// Implementation:
//   - Stage 1: validate dimensions and allocate the packed buffer.
//   - Stage 2: range over seq; the value that would land at index rows*cols
//     aborts with ErrTooManyElements and seq is not pulled any further.
//   - Stage 3: after seq is exhausted, a short count is ErrTooFewElements.
//
// Behavior highlights:
//   - "Too many" is detected while reading; "too few" only at the end.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func NewFromSeq[T any](rows, cols int, seq iter.Seq[T]) (*Matrix[T], error) {
	if err := validateDims(rows, cols); err != nil {
		return nil, fmt.Errorf("%s(%d,%d): %w", ctxNewFromSeq, rows, cols, err)
	}
	m := newPacked[T](rows, cols)

	idx := 0
	for v := range seq {
		if idx >= len(m.data) {
			return nil, fmt.Errorf("%s(%d,%d): %w", ctxNewFromSeq, rows, cols, ErrTooManyElements)
		}
		m.data[idx] = v
		idx++
	}
	if idx != len(m.data) {
		return nil, fmt.Errorf("%s(%d,%d): got %d values: %w", ctxNewFromSeq, rows, cols, idx, ErrTooFewElements)
	}

	return m, nil
}

// NewFromBuffer adopts buf as the storage of a rows×cols matrix with packed
// row-major strides.
//
// The buffer is NOT copied: caller and Matrix share it, and either may
// observe the other's writes. No validation is performed; if len(buf) is
// smaller than rows*cols the first access past the end reports
// ErrOutOfBuffer.
func NewFromBuffer[T any](rows, cols int, buf []T) *Matrix[T] {
	return NewStrided(rows, cols, cols, 1, buf)
}

// NewStrided adopts buf as the storage of a rows×cols matrix whose element
// (row, col) lives at buf[row*rowStride + col*colStride].
// MAIN DESCRIPTION:
//   - General view constructor (transposes, column-major data, gapped rows).
//
// Behavior highlights:
//   - Shares buf with the caller; no copy, no validation of counts or strides.
//   - Inconsistent strides surface later as ErrOutOfBuffer from the accessor.
//
// Complexity:
//   - Time O(1), Space O(1).
func NewStrided[T any](rows, cols, rowStride, colStride int, buf []T) *Matrix[T] {
	return &Matrix[T]{
		data:      buf,
		rows:      rows,
		cols:      cols,
		rowStride: rowStride,
		colStride: colStride,
		size:      rows * cols,
	}
}
