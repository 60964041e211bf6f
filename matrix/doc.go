// Package matrix provides a dense, strided, two-dimensional array over a
// generic scalar type.
//
// The package provides:
//
//   - Matrix[T]: a flat buffer plus a (row, col) → offset map driven by two
//     strides. The default layout is row-major and packed
//     (rowStride = cols, colStride = 1).
//   - A bounds-checked accessor (At, Set, Ref) with two distinct failure
//     points: ErrOutOfRange for logical indices and ErrOutOfBuffer for an
//     offset that custom strides push outside the buffer.
//   - Row/column primitives (swap, scale, shift, combine) and a zero-copy
//     Transpose view.
//   - An elementwise framework (ScalarBinaryApply, ElementwiseBinaryApply
//     and their in-place forms) on which every arithmetic and comparison
//     operator is a one-line closure.
//
// Buffers passed to NewFromBuffer and NewStrided are adopted, not copied:
// the caller and the Matrix share the storage and either may observe the
// other's writes. Those constructors do not validate the buffer; a
// mismatch surfaces as ErrOutOfBuffer on first access.
//
// A Matrix is not safe for concurrent mutation. Callers serialize access.
package matrix
