// SPDX-License-Identifier: MIT
// Package matrix - arithmetic operator facades.
//
// Purpose:
//   - Give each elementwise operator a named entry point. Each one is a
//     closure handed to ScalarBinaryApply / ElementwiseBinaryApply (or their
//     in-place forms); no operator walks the matrix on its own.
//
// Naming:
//   - X(a, b)            new matrix, matrix ∘ matrix (same shape)
//   - XScalar(m, s)      new matrix, matrix ∘ scalar
//   - XInPlace(a, b)     a ∘= b
//   - XScalarInPlace(m, s) m ∘= s
//
// Division:
//   - Floating and complex scalars follow IEEE/Go semantics (x/0 = ±Inf or NaN).
//   - Integer scalars would panic on x/0, so a zero divisor returns
//     ErrDivideByZero before anything is computed or written.
//
// Fast path:
//   - Add, AddInPlace, Mul, MulInPlace and MulScalar use algo-vecmath kernels
//     for packed float64 operands (ops_fastpath.go); results are identical.

package matrix

// ---------- error context tags ----------

const (
	ctxAdd              = "Add"
	ctxSub              = "Sub"
	ctxMul              = "Mul"
	ctxDiv              = "Div"
	ctxAddScalar        = "AddScalar"
	ctxSubScalar        = "SubScalar"
	ctxMulScalar        = "MulScalar"
	ctxDivScalar        = "DivScalar"
	ctxAddInPlace       = "AddInPlace"
	ctxSubInPlace       = "SubInPlace"
	ctxMulInPlace       = "MulInPlace"
	ctxDivInPlace       = "DivInPlace"
	ctxAddScalarInPlace = "AddScalarInPlace"
	ctxSubScalarInPlace = "SubScalarInPlace"
	ctxMulScalarInPlace = "MulScalarInPlace"
	ctxDivScalarInPlace = "DivScalarInPlace"
	ctxAny              = "Any"
	ctxAll              = "All"
)

// ---------- per-element kernels ----------

func add[T Number](x, y T) T { return x + y }
func sub[T Number](x, y T) T { return x - y }
func mul[T Number](x, y T) T { return x * y }
func div[T Number](x, y T) T { return x / y }

// wrap1 tags err with the operator name, or returns (out, nil).
func wrap1[R any](tag string, out *Matrix[R], err error) (*Matrix[R], error) {
	if err != nil {
		return nil, matrixErrorf(tag, err)
	}

	return out, nil
}

// wrap0 tags err with the operator name.
func wrap0(tag string, err error) error {
	if err != nil {
		return matrixErrorf(tag, err)
	}

	return nil
}

// checkScalarDivisor rejects s == 0 for integer scalars.
func checkScalarDivisor[T Number](s T) error {
	if isIntegral[T]() && s == 0 {
		return ErrDivideByZero
	}

	return nil
}

// checkDivisor rejects any zero element of b for integer scalars.
// Nil or mis-strided b is left for the primitive to report.
// Complexity: O(r*c) for integers, O(1) otherwise.
func checkDivisor[T Number](b *Matrix[T]) error {
	if b == nil || !isIntegral[T]() {
		return nil
	}
	var i, j int
	for i = 0; i < b.rows; i++ {
		for j = 0; j < b.cols; j++ {
			off, err := b.offset(i, j)
			if err != nil {
				return nil // reported by the primitive with full context
			}
			if b.data[off] == 0 {
				return methodErrorf(ctxAt, i, j, ErrDivideByZero)
			}
		}
	}

	return nil
}

// ---------- matrix ∘ matrix ----------

// Add returns a + b elementwise.
// Errors: ErrNilMatrix, ErrDimensionMismatch, ErrOutOfBuffer.
func Add[T Number](a, b *Matrix[T]) (*Matrix[T], error) {
	if out, ok := fastAdd(a, b); ok {
		return out, nil
	}
	out, err := ElementwiseBinaryApply(a, b, add[T])

	return wrap1(ctxAdd, out, err)
}

// Sub returns a - b elementwise.
func Sub[T Number](a, b *Matrix[T]) (*Matrix[T], error) {
	out, err := ElementwiseBinaryApply(a, b, sub[T])

	return wrap1(ctxSub, out, err)
}

// Mul returns the elementwise (Hadamard) product a ∘ b. Not a matrix product.
func Mul[T Number](a, b *Matrix[T]) (*Matrix[T], error) {
	if out, ok := fastMul(a, b); ok {
		return out, nil
	}
	out, err := ElementwiseBinaryApply(a, b, mul[T])

	return wrap1(ctxMul, out, err)
}

// Div returns a / b elementwise.
// Errors: as Add, plus ErrDivideByZero for an integer zero in b.
func Div[T Number](a, b *Matrix[T]) (*Matrix[T], error) {
	if err := checkDivisor(b); err != nil {
		return nil, matrixErrorf(ctxDiv, err)
	}
	out, err := ElementwiseBinaryApply(a, b, div[T])

	return wrap1(ctxDiv, out, err)
}

// ---------- matrix ∘ scalar ----------

// AddScalar returns m + s elementwise.
func AddScalar[T Number](m *Matrix[T], s T) (*Matrix[T], error) {
	out, err := ScalarBinaryApply(m, s, add[T])

	return wrap1(ctxAddScalar, out, err)
}

// SubScalar returns m - s elementwise.
func SubScalar[T Number](m *Matrix[T], s T) (*Matrix[T], error) {
	out, err := ScalarBinaryApply(m, s, sub[T])

	return wrap1(ctxSubScalar, out, err)
}

// MulScalar returns m * s elementwise.
func MulScalar[T Number](m *Matrix[T], s T) (*Matrix[T], error) {
	if out, ok := fastScale(m, s); ok {
		return out, nil
	}
	out, err := ScalarBinaryApply(m, s, mul[T])

	return wrap1(ctxMulScalar, out, err)
}

// DivScalar returns m / s elementwise.
// Errors: ErrDivideByZero for integer s == 0.
func DivScalar[T Number](m *Matrix[T], s T) (*Matrix[T], error) {
	if err := checkScalarDivisor(s); err != nil {
		return nil, matrixErrorf(ctxDivScalar, err)
	}
	out, err := ScalarBinaryApply(m, s, div[T])

	return wrap1(ctxDivScalar, out, err)
}

// ---------- in place ----------

// AddInPlace performs a += b.
func AddInPlace[T Number](a, b *Matrix[T]) error {
	if fastAddInPlace(a, b) {
		return nil
	}

	return wrap0(ctxAddInPlace, a.ElementwiseBinaryApplyInPlace(b, add[T]))
}

// SubInPlace performs a -= b.
func SubInPlace[T Number](a, b *Matrix[T]) error {
	return wrap0(ctxSubInPlace, a.ElementwiseBinaryApplyInPlace(b, sub[T]))
}

// MulInPlace performs a ∘= b (elementwise).
func MulInPlace[T Number](a, b *Matrix[T]) error {
	if fastMulInPlace(a, b) {
		return nil
	}

	return wrap0(ctxMulInPlace, a.ElementwiseBinaryApplyInPlace(b, mul[T]))
}

// DivInPlace performs a /= b. An integer zero in b fails before any write.
func DivInPlace[T Number](a, b *Matrix[T]) error {
	if err := checkDivisor(b); err != nil {
		return matrixErrorf(ctxDivInPlace, err)
	}

	return wrap0(ctxDivInPlace, a.ElementwiseBinaryApplyInPlace(b, div[T]))
}

// AddScalarInPlace performs m += s.
func AddScalarInPlace[T Number](m *Matrix[T], s T) error {
	return wrap0(ctxAddScalarInPlace, m.ScalarBinaryApplyInPlace(s, add[T]))
}

// SubScalarInPlace performs m -= s.
func SubScalarInPlace[T Number](m *Matrix[T], s T) error {
	return wrap0(ctxSubScalarInPlace, m.ScalarBinaryApplyInPlace(s, sub[T]))
}

// MulScalarInPlace performs m *= s.
func MulScalarInPlace[T Number](m *Matrix[T], s T) error {
	return wrap0(ctxMulScalarInPlace, m.ScalarBinaryApplyInPlace(s, mul[T]))
}

// DivScalarInPlace performs m /= s. Integer s == 0 returns ErrDivideByZero.
func DivScalarInPlace[T Number](m *Matrix[T], s T) error {
	if err := checkScalarDivisor(s); err != nil {
		return matrixErrorf(ctxDivScalarInPlace, err)
	}

	return wrap0(ctxDivScalarInPlace, m.ScalarBinaryApplyInPlace(s, div[T]))
}

// ---------- reductions ----------

// Any reports whether some element of m is truthy (differs from the zero
// value of T: true, non-zero numbers, non-empty strings). Returns on the
// first truthy element. An empty matrix yields false.
// Complexity: O(r*c) worst case.
func Any[T comparable](m *Matrix[T]) (bool, error) {
	if err := ValidateNotNil(m); err != nil {
		return false, matrixErrorf(ctxAny, err)
	}
	var zero T
	found := false
	err := m.Do(func(_, _ int, v T) bool {
		if v != zero {
			found = true
			return false // stop on first truthy
		}
		return true
	})
	if err != nil {
		return false, matrixErrorf(ctxAny, err)
	}

	return found, nil
}

// All reports whether every element of m is truthy. Returns on the first
// falsy element. An empty matrix yields true.
// Complexity: O(r*c) worst case.
func All[T comparable](m *Matrix[T]) (bool, error) {
	if err := ValidateNotNil(m); err != nil {
		return false, matrixErrorf(ctxAll, err)
	}
	var zero T
	all := true
	err := m.Do(func(_, _ int, v T) bool {
		if v == zero {
			all = false
			return false // stop on first falsy
		}
		return true
	})
	if err != nil {
		return false, matrixErrorf(ctxAll, err)
	}

	return all, nil
}
