// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Packed float64 fast paths backed by algo-vecmath block kernels.
//
// Contract:
//   - A fast path runs only when T is exactly float64 and every operand
//     IsPacked(). For such operands offset(i,j) == i*cols + j and cannot fail,
//     so the flat kernels produce the same values and the same (absent) errors
//     as the accessor path. Anything else returns ok=false and the caller
//     falls back to the generic primitives.

package matrix

import "github.com/cwbudde/algo-vecmath"

// packedFloat64 returns m's first Size() elements as []float64 when T is
// float64 and m is packed. Eligibility is confirmed through offset on the
// last element, so a layout the accessor would reject never reaches a kernel.
func packedFloat64[T any](m *Matrix[T]) ([]float64, bool) {
	if !m.IsPacked() {
		return nil, false
	}
	d, ok := any(m.data).([]float64)
	if !ok {
		return nil, false
	}
	if m.size > 0 {
		if _, err := m.offset(m.rows-1, m.cols-1); err != nil {
			return nil, false
		}
	}

	return d[:m.size], true
}

// fastBinary prepares a packed float64 pair plus a packed result of the same
// shape. ok=false when either operand is not eligible or shapes differ (the
// generic path reports the mismatch).
func fastBinary[T any](a, b *Matrix[T]) (out *Matrix[T], da, db, dst []float64, ok bool) {
	if da, ok = packedFloat64(a); !ok {
		return nil, nil, nil, nil, false
	}
	if db, ok = packedFloat64(b); !ok {
		return nil, nil, nil, nil, false
	}
	if a.rows != b.rows || a.cols != b.cols {
		return nil, nil, nil, nil, false
	}
	out = newPacked[T](a.rows, a.cols)
	dst = any(out.data).([]float64)

	return out, da, db, dst, true
}

// fastAdd computes a+b on packed float64 storage.
func fastAdd[T any](a, b *Matrix[T]) (*Matrix[T], bool) {
	out, da, db, dst, ok := fastBinary(a, b)
	if !ok {
		return nil, false
	}
	copy(dst, da)
	vecmath.AddBlockInPlace(dst, db)

	return out, true
}

// fastMul computes the Hadamard product a∘b on packed float64 storage.
func fastMul[T any](a, b *Matrix[T]) (*Matrix[T], bool) {
	out, da, db, dst, ok := fastBinary(a, b)
	if !ok {
		return nil, false
	}
	vecmath.MulBlock(dst, da, db)

	return out, true
}

// fastAddInPlace computes a += b on packed float64 storage.
func fastAddInPlace[T any](a, b *Matrix[T]) bool {
	da, okA := packedFloat64(a)
	db, okB := packedFloat64(b)
	if !okA || !okB || a.rows != b.rows || a.cols != b.cols {
		return false
	}
	vecmath.AddBlockInPlace(da, db)

	return true
}

// fastMulInPlace computes a ∘= b on packed float64 storage.
func fastMulInPlace[T any](a, b *Matrix[T]) bool {
	da, okA := packedFloat64(a)
	db, okB := packedFloat64(b)
	if !okA || !okB || a.rows != b.rows || a.cols != b.cols {
		return false
	}
	vecmath.MulBlockInPlace(da, db)

	return true
}

// fastScale computes m*s into a new packed matrix.
func fastScale[T any](m *Matrix[T], s T) (*Matrix[T], bool) {
	dm, ok := packedFloat64(m)
	if !ok {
		return nil, false
	}
	out := newPacked[T](m.rows, m.cols)
	vecmath.ScaleBlock(any(out.data).([]float64), dm, any(s).(float64))

	return out, true
}

// fastScaleRow scales row in place when it is a contiguous float64 run.
// The row start comes from offset; ok=false for an out-of-range row so the
// caller reports ErrOutOfRange.
func fastScaleRow[T any](m *Matrix[T], row int, by T) bool {
	dm, ok := packedFloat64(m)
	if !ok || m.cols == 0 {
		return false
	}
	base, err := m.offset(row, 0)
	if err != nil {
		return false
	}
	seg := dm[base : base+m.cols]
	vecmath.ScaleBlock(seg, seg, any(by).(float64))

	return true
}
