// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   - Provide small, deterministic fixtures and accessors so tests read as
//     "build, act, compare rows".

package matrix_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/teensyopt/matrix"
	"github.com/stretchr/testify/require"
)

// MustValues builds a packed r×c matrix from row-major values or fails the test.
func MustValues[T any](t testing.TB, r, c int, vals ...T) *matrix.Matrix[T] {
	t.Helper()
	m, err := matrix.NewFromValues(r, c, vals...)
	require.NoError(t, err)

	return m
}

// MustZeros allocates an r×c zero matrix or fails the test.
func MustZeros[T any](t testing.TB, r, c int) *matrix.Matrix[T] {
	t.Helper()
	m, err := matrix.NewZeros[T](r, c)
	require.NoError(t, err)

	return m
}

// MustAt reads (i,j) or fails the test.
func MustAt[T any](t testing.TB, m *matrix.Matrix[T], i, j int) T {
	t.Helper()
	v, err := m.At(i, j)
	require.NoError(t, err)

	return v
}

// Row returns row i as a slice (read through the accessor).
func Row[T any](t testing.TB, m *matrix.Matrix[T], i int) []T {
	t.Helper()
	out := make([]T, m.Cols())
	for j := range out {
		out[j] = MustAt(t, m, i, j)
	}

	return out
}

// Col returns column j as a slice (read through the accessor).
func Col[T any](t testing.TB, m *matrix.Matrix[T], j int) []T {
	t.Helper()
	out := make([]T, m.Rows())
	for i := range out {
		out[i] = MustAt(t, m, i, j)
	}

	return out
}

// Values returns every element in row-major order (read through Do).
func Values[T any](t testing.TB, m *matrix.Matrix[T]) []T {
	t.Helper()
	out := make([]T, 0, m.Size())
	require.NoError(t, m.Do(func(_, _ int, v T) bool {
		out = append(out, v)
		return true
	}))

	return out
}

// RandomFloats returns a deterministic r×c float64 matrix with values in [-1,1).
func RandomFloats(t testing.TB, r, c int, seed int64) *matrix.Matrix[float64] {
	t.Helper()
	rng := rand.New(rand.NewSource(seed))
	vals := make([]float64, r*c)
	for i := range vals {
		vals[i] = rng.Float64()*2 - 1
	}

	return MustValues(t, r, c, vals...)
}
