// Package teensyopt is the numerical core of a small optimization toolkit.
//
// 🚀 What is teensyopt?
//
//	A dense, strided matrix primitive that later solvers are built on:
//		• Storage: a flat buffer plus row/column strides (row-major by default)
//		• Access: two-stage bounds checking (logical index, then buffer offset)
//		• Row/column primitives: swap, scale, shift, combine
//		• Views: zero-copy transpose over shared storage
//		• Elementwise framework: matrix∘scalar and matrix∘matrix appliers
//		• Operators: + - * / with in-place forms, comparisons, Any/All
//
// ✨ Why choose teensyopt?
//
//   - Generic – one Matrix[T] for ints, floats, complex numbers and bools
//   - Explicit errors – sentinels matched with errors.Is, no panics on bad indices
//   - Fast where it counts – packed float64 operands use vectorised kernels
//
// Layout:
//
//	matrix/   : Matrix[T], constructors, accessor, row/column ops, operators
//	examples/ : runnable programs (Gauss–Jordan elimination via row ops)
//
// Quick ASCII example (2×3, row-major, rowStride=3, colStride=1):
//
//	data: [a b c d e f]
//	      ┌       ┐
//	      │ a b c │
//	      │ d e f │
//	      └       ┘
//
//	go get github.com/katalvlaran/teensyopt/matrix
package teensyopt
