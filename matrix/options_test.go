// SPDX-License-Identifier: MIT
package matrix_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/teensyopt/matrix"
	"github.com/stretchr/testify/require"
)

// 1) TestDefaultOptions_Documented verifies that no options equal the documented defaults.
func TestDefaultOptions_Documented(t *testing.T) {
	o := matrix.GatherOptionsForTest()

	require.Equal(t, matrix.DefaultRelTol, o.RelTol)
	require.Equal(t, matrix.DefaultAbsTol, o.AbsTol)
	require.Equal(t, matrix.DefaultEqualNaN, o.EqualNaN)
	require.Equal(t, matrix.DefaultFormat, o.Format)
}

// 2) TestGatherOptions_LastWriterWins ensures setters apply in order and touch only their field.
func TestGatherOptions_LastWriterWins(t *testing.T) {
	o := matrix.GatherOptionsForTest(matrix.WithRelTol(1e-3), matrix.WithRelTol(1e-6))
	require.Equal(t, 1e-6, o.RelTol)
	require.Equal(t, matrix.DefaultAbsTol, o.AbsTol)

	o = matrix.GatherOptionsForTest(matrix.WithAbsTol(0.5), nil, matrix.WithFormat("%.2f"))
	require.Equal(t, 0.5, o.AbsTol)
	require.Equal(t, "%.2f", o.Format)
	require.Equal(t, matrix.DefaultRelTol, o.RelTol)

	o = matrix.GatherOptionsForTest(matrix.WithEqualNaN(), matrix.WithEqualNaN())
	require.True(t, o.EqualNaN)

	// zero tolerances are valid: exact comparison
	o = matrix.GatherOptionsForTest(matrix.WithRelTol(0), matrix.WithAbsTol(0))
	require.Zero(t, o.RelTol)
	require.Zero(t, o.AbsTol)
}

// 3) TestOptions_PanicOnNonsense checks the documented panic messages.
func TestOptions_PanicOnNonsense(t *testing.T) {
	for _, bad := range []float64{-1, math.NaN(), math.Inf(1), math.Inf(-1)} {
		require.PanicsWithValue(t, matrix.PanicRelTolInvalidForTest, func() { matrix.WithRelTol(bad) })
		require.PanicsWithValue(t, matrix.PanicAbsTolInvalidForTest, func() { matrix.WithAbsTol(bad) })
	}
	require.PanicsWithValue(t, matrix.PanicFormatEmptyForTest, func() { matrix.WithFormat("") })
}

// 4) TestOptions_Effect proves every option changes observable behavior.
func TestOptions_Effect(t *testing.T) {
	a := MustValues(t, 1, 2, 1.0, math.NaN())
	b := MustValues(t, 1, 2, 1.25, math.NaN())

	ok, err := matrix.AllClose(a, b, matrix.WithAbsTol(0.5))
	require.NoError(t, err)
	require.False(t, ok) // NaN still differs

	ok, err = matrix.AllClose(a, b, matrix.WithAbsTol(0.5), matrix.WithEqualNaN())
	require.NoError(t, err)
	require.True(t, ok)

	ok, err = matrix.AllClose(a, b, matrix.WithRelTol(0.25), matrix.WithEqualNaN())
	require.NoError(t, err)
	require.True(t, ok)

	m := MustValues(t, 1, 2, 1.0, 2.5)
	require.Equal(t, "[1.00, 2.50]\n", m.Format(matrix.WithFormat("%.2f")))
}
