// SPDX-License-Identifier: MIT

// Package matrix: scalar constraints.
// Go methods cannot introduce new type parameters or tighten the receiver's
// constraint, so Matrix itself is Matrix[T any] and the arithmetic lives in
// generic functions constrained by the sets below.
package matrix

// Integer is the set of signed and unsigned integer scalars.
type Integer interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

// Float is the set of floating-point scalars.
type Float interface {
	~float32 | ~float64
}

// Complex is the set of complex scalars.
type Complex interface {
	~complex64 | ~complex128
}

// Real is the set of ordered numeric scalars (supports <, <=, >, >=).
type Real interface {
	Integer | Float
}

// Number is the set of scalars supporting + - * / and unary minus.
type Number interface {
	Integer | Float | Complex
}

// isIntegral reports whether T truncates division (1/2 == 0).
// Complexity: O(1); the result is constant per instantiation.
func isIntegral[T Number]() bool {
	var one, two T = 1, 2

	return one/two == 0
}
