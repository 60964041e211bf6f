// SPDX-License-Identifier: MIT

package matrix

// Test bridge: exposes unexported helpers to the external matrix_test package.
// Compiled only with `go test`, so the production API is unchanged.

// OffsetForTest forwards to the private accessor choke point.
func OffsetForTest[T any](m *Matrix[T], row, col int) (int, error) {
	return m.offset(row, col)
}

// IsIntegralForTest reports whether T truncates division.
func IsIntegralForTest[T Number]() bool { return isIntegral[T]() }

// PackedFloat64ForTest reports whether m is eligible for the vecmath fast path.
func PackedFloat64ForTest[T any](m *Matrix[T]) bool {
	_, ok := packedFloat64(m)

	return ok
}

// Panic message exports to avoid "magic strings" in tests.
const (
	PanicRelTolInvalidForTest = panicRelTolInvalid
	PanicAbsTolInvalidForTest = panicAbsTolInvalid
	PanicFormatEmptyForTest   = panicFormatEmpty
)

// OptionsSnapshot is a read-only view of the effective Options.
type OptionsSnapshot struct {
	RelTol   float64
	AbsTol   float64
	EqualNaN bool
	Format   string
}

// GatherOptionsForTest applies opts over the defaults and exposes the result.
func GatherOptionsForTest(opts ...Option) OptionsSnapshot {
	o := gatherOptions(opts...)

	return OptionsSnapshot{RelTol: o.rtol, AbsTol: o.atol, EqualNaN: o.equalNaN, Format: o.format}
}
