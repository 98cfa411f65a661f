// SPDX-License-Identifier: MIT
package types

import (
	"errors"

	"golang.org/x/exp/constraints"
)

// Checked arithmetic errors.
var (
	ErrOverflow     = errors.New("arithmetic overflow")
	ErrDivideByZero = errors.New("division by zero")
)

// CheckedAdd returns a+b or ErrOverflow when the sum is not representable by T.
func CheckedAdd[T constraints.Signed](a, b T) (sum T, err error) {
	sum = a + b
	if (b > 0 && sum < a) || (b < 0 && sum > a) {
		return 0, ErrOverflow
	}

	return
}

// CheckedSub returns a-b or ErrOverflow when the difference is not representable by T.
func CheckedSub[T constraints.Signed](a, b T) (diff T, err error) {
	diff = a - b
	if (b > 0 && diff > a) || (b < 0 && diff < a) {
		return 0, ErrOverflow
	}

	return
}

// CheckedMul returns a*b or ErrOverflow when the product is not representable by T.
func CheckedMul[T constraints.Signed](a, b T) (product T, err error) {
	if a == 0 || b == 0 {
		return
	}

	// -1 * min(T) wraps to min(T) without tripping the division check below.
	if (a == -1 && isMin(b)) || (b == -1 && isMin(a)) {
		return 0, ErrOverflow
	}

	product = a * b
	if product/b != a {
		return 0, ErrOverflow
	}

	return
}

// CheckedDiv returns a/b truncated toward zero.
//
// A zero divisor yields ErrDivideByZero; min(T) / -1 yields ErrOverflow.
func CheckedDiv[T constraints.Signed](a, b T) (quotient T, err error) {
	switch {
	case b == 0:
		return 0, ErrDivideByZero
	case b == -1 && isMin(a):
		return 0, ErrOverflow
	}

	return a / b, nil
}

// isMin reports whether v is the minimum value of T, the only non-zero value equal to its own
// negation in two's complement.
func isMin[T constraints.Signed](v T) bool { return v != 0 && v == -v }
