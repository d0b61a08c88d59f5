package polynomial

import (
	"github.com/tuneinsight/polyeval/expr"
)

// Horner returns the expression evaluating c_0 + x*(c_1 + x*(... + x*c_{n-1}))
// with Horner's method, coefficients being listed from degree zero upward.
//
// The result is a block binding x once; x is evaluated exactly once per
// evaluation of the result, for any number of coefficients.
// Without coefficients, the result is zero. With one, it is c_0.
func Horner[T any](s Strategy[T], x expr.Node[T], coeffs ...expr.Node[T]) expr.Node[T] {
	pb := NewPowerBasis(s, x)
	return pb.Block(horner(s, pb.X(), coeffs))
}

func horner[T any](s Strategy[T], x expr.Node[T], coeffs []expr.Node[T]) expr.Node[T] {

	if len(coeffs) == 0 {
		return s.Zero()
	}

	acc := coeffs[len(coeffs)-1]

	for k := len(coeffs) - 2; k >= 0; k-- {
		// acc = c_k + x * acc
		acc = s.MulAdd(x, acc, coeffs[k])
	}

	return acc
}
