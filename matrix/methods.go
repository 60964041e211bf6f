// SPDX-License-Identifier: MIT
// Package matrix: row/column mutation primitives.
//
// Every function holds one index fixed and walks the other through the
// accessor, mutating in place. They are generic functions rather than
// methods because they need arithmetic (Number), which Matrix[T any] cannot
// assume.
//
// Error policy:
//   - ErrNilMatrix, ErrOutOfRange, ErrOutOfBuffer are wrapped with the
//     function tag. A failure at column k leaves columns < k updated.

package matrix

import "fmt"

// ---------- error context tags ----------

const (
	ctxMulRowScalar      = "MulRowScalar"
	ctxMulColScalar      = "MulColScalar"
	ctxDivRowScalar      = "DivRowScalar"
	ctxDivColScalar      = "DivColScalar"
	ctxAddRowScalar      = "AddRowScalar"
	ctxAddColScalar      = "AddColScalar"
	ctxSubRowScalar      = "SubRowScalar"
	ctxSubColScalar      = "SubColScalar"
	ctxAddRowElementwise = "AddRowElementwise"
	ctxAddColElementwise = "AddColElementwise"
	ctxSubRowElementwise = "SubRowElementwise"
	ctxSubColElementwise = "SubColElementwise"
)

// lineErrorf tags a row/column primitive failure with the index it targeted.
func lineErrorf(tag string, idx int, err error) error {
	return fmt.Errorf("%s(%d): %w", tag, idx, err)
}

// updateRow applies f to every element of row, in column order.
func updateRow[T any](m *Matrix[T], row int, f func(T) T) error {
	if m == nil {
		return ErrNilMatrix
	}
	for col := 0; col < m.cols; col++ {
		p, err := m.ref(row, col)
		if err != nil {
			return err
		}
		*p = f(*p)
	}

	return nil
}

// updateCol applies f to every element of col, in row order.
func updateCol[T any](m *Matrix[T], col int, f func(T) T) error {
	if m == nil {
		return ErrNilMatrix
	}
	for row := 0; row < m.rows; row++ {
		p, err := m.ref(row, col)
		if err != nil {
			return err
		}
		*p = f(*p)
	}

	return nil
}

// combineRows sets m(dst, j) = f(m(dst, j), m(src, j)) for every column j.
// dst == src is legal (each pair is read before the write).
func combineRows[T any](m *Matrix[T], dst, src int, f func(T, T) T) error {
	if m == nil {
		return ErrNilMatrix
	}
	for col := 0; col < m.cols; col++ {
		p, err := m.ref(dst, col)
		if err != nil {
			return err
		}
		q, err := m.ref(src, col)
		if err != nil {
			return err
		}
		*p = f(*p, *q)
	}

	return nil
}

// combineCols sets m(i, dst) = f(m(i, dst), m(i, src)) for every row i.
func combineCols[T any](m *Matrix[T], dst, src int, f func(T, T) T) error {
	if m == nil {
		return ErrNilMatrix
	}
	for row := 0; row < m.rows; row++ {
		p, err := m.ref(row, dst)
		if err != nil {
			return err
		}
		q, err := m.ref(row, src)
		if err != nil {
			return err
		}
		*p = f(*p, *q)
	}

	return nil
}

// reciprocal returns the multiplier that divides by `by`, and whether the
// division must instead be done directly (integer scalars, where 1/by
// truncates to zero).
func reciprocal[T Number](by T) (inv T, direct bool, err error) {
	if isIntegral[T]() {
		if by == 0 {
			return 0, true, ErrDivideByZero
		}
		return 0, true, nil
	}

	return 1 / by, false, nil // IEEE: 1/0 = ±Inf, no check
}

// MulRowScalar multiplies every element of row by `by`.
// Complexity: O(cols).
func MulRowScalar[T Number](m *Matrix[T], row int, by T) error {
	if fastScaleRow(m, row, by) {
		return nil
	}
	if err := updateRow(m, row, func(v T) T { return v * by }); err != nil {
		return lineErrorf(ctxMulRowScalar, row, err)
	}

	return nil
}

// MulColScalar multiplies every element of col by `by`.
// Complexity: O(rows).
func MulColScalar[T Number](m *Matrix[T], col int, by T) error {
	if err := updateCol(m, col, func(v T) T { return v * by }); err != nil {
		return lineErrorf(ctxMulColScalar, col, err)
	}

	return nil
}

// DivRowScalar divides every element of row by `by`.
//
// Floating and complex scalars multiply by the reciprocal 1/by, so by == 0
// yields whatever 1/0 gives (±Inf, NaN for 0*Inf); nothing is checked.
// Integer scalars divide directly (truncating), and by == 0 returns
// ErrDivideByZero before any element changes.
// Complexity: O(cols).
func DivRowScalar[T Number](m *Matrix[T], row int, by T) error {
	inv, direct, err := reciprocal(by)
	if err != nil {
		return lineErrorf(ctxDivRowScalar, row, err)
	}
	if !direct {
		if err = MulRowScalar(m, row, inv); err != nil {
			return lineErrorf(ctxDivRowScalar, row, err)
		}
		return nil
	}
	if err = updateRow(m, row, func(v T) T { return v / by }); err != nil {
		return lineErrorf(ctxDivRowScalar, row, err)
	}

	return nil
}

// DivColScalar divides every element of col by `by`; same scalar policy as
// DivRowScalar. Complexity: O(rows).
func DivColScalar[T Number](m *Matrix[T], col int, by T) error {
	inv, direct, err := reciprocal(by)
	if err != nil {
		return lineErrorf(ctxDivColScalar, col, err)
	}
	if !direct {
		if err = MulColScalar(m, col, inv); err != nil {
			return lineErrorf(ctxDivColScalar, col, err)
		}
		return nil
	}
	if err = updateCol(m, col, func(v T) T { return v / by }); err != nil {
		return lineErrorf(ctxDivColScalar, col, err)
	}

	return nil
}

// AddRowScalar adds `what` to every element of row.
func AddRowScalar[T Number](m *Matrix[T], row int, what T) error {
	if err := updateRow(m, row, func(v T) T { return v + what }); err != nil {
		return lineErrorf(ctxAddRowScalar, row, err)
	}

	return nil
}

// AddColScalar adds `what` to every element of col.
func AddColScalar[T Number](m *Matrix[T], col int, what T) error {
	if err := updateCol(m, col, func(v T) T { return v + what }); err != nil {
		return lineErrorf(ctxAddColScalar, col, err)
	}

	return nil
}

// SubRowScalar subtracts `what` from every element of row, as AddRowScalar
// with -what. For unsigned scalars this wraps exactly like v - what.
func SubRowScalar[T Number](m *Matrix[T], row int, what T) error {
	if err := AddRowScalar(m, row, -what); err != nil {
		return lineErrorf(ctxSubRowScalar, row, err)
	}

	return nil
}

// SubColScalar subtracts `what` from every element of col, as AddColScalar
// with -what.
func SubColScalar[T Number](m *Matrix[T], col int, what T) error {
	if err := AddColScalar(m, col, -what); err != nil {
		return lineErrorf(ctxSubColScalar, col, err)
	}

	return nil
}

// AddRowElementwise adds row src to row dst, storing the result in dst.
// Both rows belong to m, so no shape check is needed.
// Complexity: O(cols).
func AddRowElementwise[T Number](m *Matrix[T], dst, src int) error {
	if err := combineRows(m, dst, src, func(a, b T) T { return a + b }); err != nil {
		return lineErrorf(ctxAddRowElementwise, dst, err)
	}

	return nil
}

// AddColElementwise adds column src to column dst, storing the result in dst.
// Complexity: O(rows).
func AddColElementwise[T Number](m *Matrix[T], dst, src int) error {
	if err := combineCols(m, dst, src, func(a, b T) T { return a + b }); err != nil {
		return lineErrorf(ctxAddColElementwise, dst, err)
	}

	return nil
}

// SubRowElementwise subtracts row src from row dst, storing the result in dst.
func SubRowElementwise[T Number](m *Matrix[T], dst, src int) error {
	if err := combineRows(m, dst, src, func(a, b T) T { return a - b }); err != nil {
		return lineErrorf(ctxSubRowElementwise, dst, err)
	}

	return nil
}

// SubColElementwise subtracts column src from column dst, storing the result in dst.
func SubColElementwise[T Number](m *Matrix[T], dst, src int) error {
	if err := combineCols(m, dst, src, func(a, b T) T { return a - b }); err != nil {
		return lineErrorf(ctxSubColElementwise, dst, err)
	}

	return nil
}
