// SPDX-License-Identifier: MIT

// Package matrix - strided storage & safe accessors.
//
// Purpose:
//   - Provide the single coordinate map offset(row, col) used by every
//     operation in the package; nothing else computes offsets from strides.
//   - Guarantee safety at the public surface: At/Set/Ref return errors instead
//     of panicking, with distinct sentinels for logical and physical bounds.
//   - Support no-copy views (Transpose) and deep copies (Clone).
//
// Complexity quicksheet:
//   - At/Set/Ref: O(1); SwapRows/SwapCols: O(cols)/O(rows);
//     Transpose: O(1); Clone/Do/Apply/Fill/String: O(r*c).

package matrix

import (
	"fmt"
	"strings"
)

// ---------- error context tags ----------

const (
	ctxAt       = "At"       // method tag used in error wrappers
	ctxSet      = "Set"      // method tag used in error wrappers
	ctxRef      = "Ref"      // method tag used in error wrappers
	ctxSwapRows = "SwapRows" // method tag used in error wrappers
	ctxSwapCols = "SwapCols" // method tag used in error wrappers
	ctxClone    = "Clone"    // method tag used in error wrappers
	ctxDo       = "Do"       // method tag used in error wrappers
	ctxApply    = "Apply"    // method tag used in error wrappers
)

// ---------- Formatting literals ----------
const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
)

// methodErrorf wraps an error with a uniform Matrix context and callsite indices.
// Keeps the sentinel reachable via %w: "Matrix.At(3,1): matrix: index out of range".
func methodErrorf(method string, a, b int, err error) error {
	return fmt.Errorf("Matrix.%s(%d,%d): %w", method, a, b, err)
}

// offset maps (row, col) to a position in m.data.
// MAIN DESCRIPTION:
//   - The accessor choke point: two-stage bounds check around the stride formula.
//
// Implementation:
//   - Stage 1 (logical): 0 ≤ row < rows and 0 ≤ col < cols, else ErrOutOfRange.
//   - Stage 2: off = row*rowStride + col*colStride.
//   - Stage 3 (physical): 0 ≤ off < size and off < len(data), else ErrOutOfBuffer.
//
// Behavior highlights:
//   - Stage 3 is separate because custom strides can map a logically valid
//     coordinate outside the buffer. For matrices built by the owning
//     constructors it never fires.
//   - Returns bare sentinels; public callers wrap with their own context.
//   - The one place that reads the buffer without a per-element offset call
//     is ops_fastpath.go: it runs only when offset accepts the last element
//     of a packed float64 matrix (hence every element), and a fast row scale
//     takes its start from offset(row, 0).
//
// Complexity:
//   - Time O(1), Space O(1).
func (m *Matrix[T]) offset(row, col int) (int, error) {
	if m == nil {
		return 0, ErrNilMatrix
	}
	if row < 0 || row >= m.rows || col < 0 || col >= m.cols {
		return 0, ErrOutOfRange
	}
	off := row*m.rowStride + col*m.colStride
	if off < 0 || off >= m.size || off >= len(m.data) {
		return 0, ErrOutOfBuffer
	}

	return off, nil
}

// ref returns a pointer to the element at (row, col) or a bare sentinel.
func (m *Matrix[T]) ref(row, col int) (*T, error) {
	off, err := m.offset(row, col)
	if err != nil {
		return nil, err
	}

	return &m.data[off], nil
}

// At returns the value at (row, col).
//
// Errors:
//   - ErrOutOfRange when row or col is outside the logical shape.
//   - ErrOutOfBuffer when the strided offset falls outside the data.
//
// Complexity: O(1).
func (m *Matrix[T]) At(row, col int) (T, error) {
	off, err := m.offset(row, col)
	if err != nil {
		var zero T
		return zero, methodErrorf(ctxAt, row, col, err)
	}

	return m.data[off], nil
}

// Set stores v at (row, col). Same errors as At. Complexity: O(1).
func (m *Matrix[T]) Set(row, col int, v T) error {
	off, err := m.offset(row, col)
	if err != nil {
		return methodErrorf(ctxSet, row, col, err)
	}
	m.data[off] = v

	return nil
}

// Ref returns a checked pointer to the element at (row, col), so callers can
// read and write in place:
//
//	p, err := m.Ref(1, 2)
//	if err != nil { ... }
//	*p += 3
//
// The pointer aliases the backing buffer and stays valid for as long as the
// buffer does. Same errors as At. Complexity: O(1).
func (m *Matrix[T]) Ref(row, col int) (*T, error) {
	p, err := m.ref(row, col)
	if err != nil {
		return nil, methodErrorf(ctxRef, row, col, err)
	}

	return p, nil
}

// SwapRows exchanges rows r1 and r2 element by element.
// Swapping a row with itself is a no-op (after bounds checks).
// Errors: ErrOutOfRange, ErrOutOfBuffer. Complexity: O(cols).
func (m *Matrix[T]) SwapRows(r1, r2 int) error {
	if m == nil {
		return methodErrorf(ctxSwapRows, r1, r2, ErrNilMatrix)
	}
	for col := 0; col < m.cols; col++ {
		a, err := m.ref(r1, col)
		if err != nil {
			return methodErrorf(ctxSwapRows, r1, r2, err)
		}
		b, err := m.ref(r2, col)
		if err != nil {
			return methodErrorf(ctxSwapRows, r1, r2, err)
		}
		*a, *b = *b, *a
	}

	return nil
}

// SwapCols exchanges columns c1 and c2 element by element.
// Errors: ErrOutOfRange, ErrOutOfBuffer. Complexity: O(rows).
func (m *Matrix[T]) SwapCols(c1, c2 int) error {
	if m == nil {
		return methodErrorf(ctxSwapCols, c1, c2, ErrNilMatrix)
	}
	for row := 0; row < m.rows; row++ {
		a, err := m.ref(row, c1)
		if err != nil {
			return methodErrorf(ctxSwapCols, c1, c2, err)
		}
		b, err := m.ref(row, c2)
		if err != nil {
			return methodErrorf(ctxSwapCols, c1, c2, err)
		}
		*a, *b = *b, *a
	}

	return nil
}

// Transpose returns a cols×rows view of m over the SAME buffer.
// MAIN DESCRIPTION:
//   - Zero-copy transpose: swaps the dimensions and the stride roles.
//
// Behavior highlights:
//   - Writes through the view are visible in m and vice versa.
//   - Transpose().Transpose() has m's shape, strides and buffer.
//   - Use Clone on the result for an independent packed copy.
//
// Complexity:
//   - Time O(1), Space O(1).
func (m *Matrix[T]) Transpose() *Matrix[T] {
	if m == nil {
		return nil
	}

	return &Matrix[T]{
		data:      m.data,
		rows:      m.cols,
		cols:      m.rows,
		rowStride: m.colStride,
		colStride: m.rowStride,
		size:      m.size,
	}
}

// Clone returns a deep, packed row-major copy of m.
// MAIN DESCRIPTION:
//   - Materialize any view (strided, transposed) into independent storage.
//
// Implementation:
//   - Stage 1: allocate a packed rows×cols buffer.
//   - Stage 2: copy element by element through the accessor.
//
// Errors:
//   - ErrOutOfBuffer when m's strides address outside its buffer.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func (m *Matrix[T]) Clone() (*Matrix[T], error) {
	if m == nil {
		return nil, methodErrorf(ctxClone, 0, 0, ErrNilMatrix)
	}
	out := newPacked[T](m.rows, m.cols)
	var i, j, k int // k walks the packed destination sequentially
	for i = 0; i < m.rows; i++ {
		for j = 0; j < m.cols; j++ {
			off, err := m.offset(i, j)
			if err != nil {
				return nil, methodErrorf(ctxClone, i, j, err)
			}
			out.data[k] = m.data[off]
			k++
		}
	}

	return out, nil
}

// Fill sets every element of m to v.
// Errors: ErrOutOfBuffer on inconsistent strides. Complexity: O(r*c).
func (m *Matrix[T]) Fill(v T) error {
	return m.Apply(func(_, _ int, _ T) T { return v })
}

// Do visits each element (i,j) in row-major order and calls f(i,j,v).
// Read-only visitor; stops early when f returns false.
// Errors: accessor errors wrapped with the failing coordinate.
// Complexity: O(r*c), Space O(1).
func (m *Matrix[T]) Do(f func(i, j int, v T) bool) error {
	if m == nil {
		return methodErrorf(ctxDo, 0, 0, ErrNilMatrix)
	}
	var i, j int
	for i = 0; i < m.rows; i++ {
		for j = 0; j < m.cols; j++ {
			off, err := m.offset(i, j)
			if err != nil {
				return methodErrorf(ctxDo, i, j, err)
			}
			if !f(i, j, m.data[off]) {
				return nil // early exit requested by caller
			}
		}
	}

	return nil
}

// Apply replaces each element with f(i,j,v) in place, in row-major order.
//
// Notes:
//   - Early error aborts; elements written before the error remain updated.
//     For all-or-nothing semantics, transform a Clone and swap on success.
//
// Complexity: O(r*c), Space O(1).
func (m *Matrix[T]) Apply(f func(i, j int, v T) T) error {
	if m == nil {
		return methodErrorf(ctxApply, 0, 0, ErrNilMatrix)
	}
	var i, j int
	for i = 0; i < m.rows; i++ {
		for j = 0; j < m.cols; j++ {
			p, err := m.ref(i, j)
			if err != nil {
				return methodErrorf(ctxApply, i, j, err)
			}
			*p = f(i, j, *p)
		}
	}

	return nil
}

// String renders rows as lines of comma-separated values ("[1, 2]\n[3, 4]\n").
// Unreachable elements (inconsistent strides) render as "?".
func (m *Matrix[T]) String() string {
	return m.Format()
}

// Format renders m like String using the element verb from WithFormat
// (default DefaultFormat, "%v").
// Complexity: O(r*c) time and space; intended for diagnostics, not hot paths.
func (m *Matrix[T]) Format(opts ...Option) string {
	if m == nil {
		return "<nil>"
	}
	o := gatherOptions(opts...)
	var b strings.Builder
	var i, j int
	for i = 0; i < m.rows; i++ {
		b.WriteString(_fmtRowOpen)
		for j = 0; j < m.cols; j++ {
			if off, err := m.offset(i, j); err == nil {
				fmt.Fprintf(&b, o.format, m.data[off])
			} else {
				b.WriteString("?")
			}
			if j+1 < m.cols {
				b.WriteString(_fmtSep)
			}
		}
		b.WriteString(_fmtRowClose)
	}

	return b.String()
}
