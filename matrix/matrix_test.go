// SPDX-License-Identifier: MIT
// Package matrix_test contains unit tests for Matrix construction and shape
// accessors.
package matrix_test

import (
	"testing"

	"github.com/katalvlaran/teensyopt/matrix"
	"github.com/stretchr/testify/require"
)

// TestNewEmpty verifies the default 0×0 matrix and the zero value agree.
func TestNewEmpty(t *testing.T) {
	m := matrix.NewEmpty[float64]()
	r, c := m.Shape()
	require.Equal(t, 0, r)
	require.Equal(t, 0, c)
	rs, cs := m.Strides()
	require.Equal(t, 0, rs)
	require.Equal(t, 0, cs)
	require.Equal(t, 0, m.Size())
	require.Empty(t, m.Data())

	var zero matrix.Matrix[float64]
	require.Equal(t, 0, zero.Rows())
	_, err := zero.At(0, 0)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
}

// TestNewZeros checks zero-fill and packed row-major strides.
func TestNewZeros(t *testing.T) {
	m, err := matrix.NewZeros[float64](2, 3)
	require.NoError(t, err)
	require.Equal(t, 2, m.Rows())
	require.Equal(t, 3, m.Cols())
	require.Equal(t, 3, m.RowStride())
	require.Equal(t, 1, m.ColStride())
	require.Equal(t, 6, m.Size())
	require.True(t, m.IsPacked())

	for i := 0; i < 2; i++ {
		for j := 0; j < 3; j++ {
			require.Equal(t, 0.0, MustAt(t, m, i, j))
		}
	}
}

// TestNewZeros_ZeroSizedShapes accepts 0×k and k×0.
func TestNewZeros_ZeroSizedShapes(t *testing.T) {
	m, err := matrix.NewZeros[int](0, 4)
	require.NoError(t, err)
	require.Equal(t, 0, m.Size())

	m, err = matrix.NewZeros[int](4, 0)
	require.NoError(t, err)
	require.Equal(t, 0, m.Size())
	require.Equal(t, "[]\n[]\n[]\n[]\n", m.String())
}

// TestNewInvalidDimensions rejects negative shapes in every owning constructor.
func TestNewInvalidDimensions(t *testing.T) {
	_, err := matrix.NewZeros[int](-1, 2)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)

	_, err = matrix.NewFilled(2, -1, 7)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)

	_, err = matrix.NewFromValues[int](-2, -2)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
}

// TestNewFilled sets every element to the fill value.
func TestNewFilled(t *testing.T) {
	m, err := matrix.NewFilled(3, 2, int8(-4))
	require.NoError(t, err)
	require.Equal(t, []int8{-4, -4, -4, -4, -4, -4}, Values(t, m))
}

// TestNewFromValues_RowMajor places each literal at its intended coordinate.
func TestNewFromValues_RowMajor(t *testing.T) {
	m := MustValues(t, 2, 3, 1, 2, 3, 4, 5, 6)
	for k := 0; k < 6; k++ {
		require.Equal(t, k+1, MustAt(t, m, k/3, k%3), "element %d", k)
	}

	// Values are copied, not adopted.
	src := []int{1, 2, 3, 4}
	m2 := MustValues(t, 2, 2, src...)
	src[0] = 100
	require.Equal(t, 1, MustAt(t, m2, 0, 0))
}

// TestNewFromValues_CountMismatch distinguishes "too many" from "too few".
func TestNewFromValues_CountMismatch(t *testing.T) {
	cases := []struct {
		name string
		vals []int
		want error
	}{
		{"too many", []int{1, 2, 3, 4, 5, 6, 7}, matrix.ErrTooManyElements},
		{"too few", []int{1, 2, 3, 4, 5}, matrix.ErrTooFewElements},
		{"none", nil, matrix.ErrTooFewElements},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := matrix.NewFromValues(2, 3, tc.vals...)
			require.ErrorIs(t, err, tc.want)
		})
	}
}

// TestNewFromSeq_TooManyStopsEarly checks that the overflow is detected while
// reading: the sequence is not pulled past the first surplus value.
func TestNewFromSeq_TooManyStopsEarly(t *testing.T) {
	pulled := 0
	endless := func(yield func(int) bool) {
		for {
			pulled++
			if !yield(pulled) {
				return
			}
		}
	}

	_, err := matrix.NewFromSeq[int](2, 2, endless)
	require.ErrorIs(t, err, matrix.ErrTooManyElements)
	require.Equal(t, 5, pulled)
}

// TestNewFromSeq_TooFewOnlyAtEnd consumes the whole sequence before failing.
func TestNewFromSeq_TooFewOnlyAtEnd(t *testing.T) {
	pulled := 0
	three := func(yield func(float32) bool) {
		for i := 0; i < 3; i++ {
			pulled++
			if !yield(float32(i)) {
				return
			}
		}
	}

	_, err := matrix.NewFromSeq[float32](2, 2, three)
	require.ErrorIs(t, err, matrix.ErrTooFewElements)
	require.NotErrorIs(t, err, matrix.ErrTooManyElements)
	require.Equal(t, 3, pulled)
}

// TestNewFromBuffer_SharesStorage documents the aliasing contract.
func TestNewFromBuffer_SharesStorage(t *testing.T) {
	buf := []int{1, 2, 3, 4, 5, 6}
	m := matrix.NewFromBuffer(2, 3, buf)
	require.True(t, m.IsPacked())

	// Caller writes are visible through the matrix.
	buf[4] = 50
	require.Equal(t, 50, MustAt(t, m, 1, 1))

	// Matrix writes are visible to the caller.
	require.NoError(t, m.Set(0, 2, 30))
	require.Equal(t, 30, buf[2])

	// Data returns the same storage.
	m.Data()[0] = 10
	require.Equal(t, 10, buf[0])
}

// TestNewFromBuffer_NoValidation defers a short buffer to the first access.
func TestNewFromBuffer_NoValidation(t *testing.T) {
	m := matrix.NewFromBuffer(2, 2, []int{1, 2, 3})
	require.NotNil(t, m)
	require.False(t, m.IsPacked())

	require.Equal(t, 3, MustAt(t, m, 1, 0))
	_, err := m.At(1, 1)
	require.ErrorIs(t, err, matrix.ErrOutOfBuffer)
	require.NotErrorIs(t, err, matrix.ErrOutOfRange)
}

// TestNewStrided_ColumnMajor reads a column-major buffer through custom strides.
func TestNewStrided_ColumnMajor(t *testing.T) {
	// Column-major 2×3: columns {1,4} {2,5} {3,6}.
	buf := []int{1, 4, 2, 5, 3, 6}
	m := matrix.NewStrided(2, 3, 1, 2, buf)
	require.Equal(t, []int{1, 2, 3}, Row(t, m, 0))
	require.Equal(t, []int{4, 5, 6}, Row(t, m, 1))
	require.False(t, m.IsPacked())
}
