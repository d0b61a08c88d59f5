package polynomial

import (
	"golang.org/x/exp/constraints"

	"github.com/tuneinsight/polyeval/arith"
)

// Number is a native numeric type.
type Number interface {
	constraints.Integer | constraints.Float | constraints.Complex
}

// Array is a fixed-length array of up to 32 coefficients.
type Array[T any] interface {
	~[0]T | ~[1]T | ~[2]T | ~[3]T | ~[4]T | ~[5]T | ~[6]T | ~[7]T |
	~[8]T | ~[9]T | ~[10]T | ~[11]T | ~[12]T | ~[13]T | ~[14]T | ~[15]T |
	~[16]T | ~[17]T | ~[18]T | ~[19]T | ~[20]T | ~[21]T | ~[22]T | ~[23]T |
	~[24]T | ~[25]T | ~[26]T | ~[27]T | ~[28]T | ~[29]T | ~[30]T | ~[31]T |
	~[32]T
}

// EvaluateSequence returns sum coeffs[i] * x^i computed at runtime with
// Horner's method: acc = acc * x + coeffs[i], for i from len(coeffs)-1
// down to 0, starting from zero. The product is rounded before the
// addition, so the compiler never contracts the step into a fused one.
func EvaluateSequence[T Number](coeffs []T, x T) (acc T) {
	for i := len(coeffs) - 1; i >= 0; i-- {
		acc = T(acc*x) + coeffs[i]
	}
	return
}

// EvaluateFixedArray is [EvaluateSequence] for an array of coefficients.
func EvaluateFixedArray[T Number, A Array[T]](coeffs A, x T) (acc T) {
	for i := len(coeffs) - 1; i >= 0; i-- {
		acc = T(acc*x) + coeffs[i]
	}
	return
}

// EvaluateSequenceWith is [EvaluateSequence] over the arithmetic op.
func EvaluateSequenceWith[T any](op arith.Arithmetic[T], coeffs []T, x T) (acc T) {
	acc = op.Zero()
	for i := len(coeffs) - 1; i >= 0; i-- {
		acc = op.Add(op.Mul(acc, x), coeffs[i])
	}
	return
}

// EvaluateSequenceFusedWith is [EvaluateSequenceWith] with every step
// acc * x + coeffs[i] rounded once.
func EvaluateSequenceFusedWith[T any](op arith.Fused[T], coeffs []T, x T) (acc T) {
	acc = op.Zero()
	for i := len(coeffs) - 1; i >= 0; i-- {
		acc = op.MulAdd(acc, x, coeffs[i])
	}
	return
}
