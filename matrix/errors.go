// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the matrix
// package. Callers match them via errors.Is. No function panics on
// user-triggered error conditions; Option constructors are the one exception
// (programmer error, see options.go).

package matrix

import (
	"errors"
	"fmt"
)

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for consistency. Detection
// sites return the bare sentinel; the public method or function that owns the
// call wraps it exactly once with its own tag.

var (
	// ErrInvalidDimensions indicates that requested matrix dimensions are negative.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be >= 0")

	// ErrOutOfRange indicates a row or column index outside [0,rows) or [0,cols).
	// Raised before any offset arithmetic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrOutOfBuffer indicates that a logically valid (row, col) mapped to an
	// offset outside the element count or the backing buffer. Only reachable
	// with caller-supplied strides or buffers.
	ErrOutOfBuffer = errors.New("matrix: offset outside matrix data")

	// ErrTooManyElements is returned as soon as an initializer sequence yields
	// more than rows*cols values.
	ErrTooManyElements = errors.New("matrix: too many elements to initialize matrix")

	// ErrTooFewElements is returned when an initializer sequence is exhausted
	// before rows*cols values were read.
	ErrTooFewElements = errors.New("matrix: too few elements to initialize matrix")

	// ErrDimensionMismatch indicates operands of different shapes in an
	// elementwise operation.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNilMatrix indicates that a nil *Matrix (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil matrix")

	// ErrDivideByZero indicates integer division by zero. Floating and complex
	// scalars follow IEEE semantics instead and never return it.
	ErrDivideByZero = errors.New("matrix: integer division by zero")
)

// matrixErrorf wraps err with the tag of the package-level function that
// detected it ("Add: matrix: dimension mismatch").
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
