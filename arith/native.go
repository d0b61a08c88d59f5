package arith

import (
	"fmt"
	"math"
	"strconv"
	"unsafe"

	"golang.org/x/exp/constraints"
)

// Integer is the arithmetic of the native integer types.
// Operations wrap on overflow, so MulAdd is exact and equal to Add(c, Mul(a, b)).
type Integer[T constraints.Integer] struct{}

func (Integer[T]) Zero() T {
	return 0
}

func (Integer[T]) Add(a, b T) T {
	return a + b
}

func (Integer[T]) Mul(a, b T) T {
	return a * b
}

func (Integer[T]) MulAdd(a, b, c T) T {
	return a*b + c
}

func (Integer[T]) Parse(s string) (v T, err error) {

	var zero T
	bitSize := int(unsafe.Sizeof(zero)) * 8

	if signed := zero-1 < zero; signed {
		var x int64
		if x, err = strconv.ParseInt(s, 0, bitSize); err != nil {
			return v, fmt.Errorf("cannot Parse: %w", err)
		}
		return T(x), nil
	}

	var x uint64
	if x, err = strconv.ParseUint(s, 0, bitSize); err != nil {
		return v, fmt.Errorf("cannot Parse: %w", err)
	}
	return T(x), nil
}

func (Integer[T]) Format(v T) string {
	return fmt.Sprint(v)
}

// Float is the arithmetic of the native floating point types.
// Products are rounded before being returned.
// It has no MulAdd: math.FMA only rounds once for float64,
// see [Float64].
type Float[T constraints.Float] struct{}

func (Float[T]) Zero() T {
	return 0
}

func (Float[T]) Add(a, b T) T {
	return a + b
}

func (Float[T]) Mul(a, b T) T {
	return T(a * b)
}

func (Float[T]) Parse(s string) (v T, err error) {
	var x float64
	if x, err = strconv.ParseFloat(s, int(unsafe.Sizeof(v))*8); err != nil {
		return v, fmt.Errorf("cannot Parse: %w", err)
	}
	return T(x), nil
}

func (Float[T]) Format(v T) string {
	return strconv.FormatFloat(float64(v), 'g', -1, int(unsafe.Sizeof(v))*8)
}

// Float64 is the float64 arithmetic with a hardware or software fused multiply-add.
type Float64 struct {
	Float[float64]
}

// MulAdd returns a * b + c rounded once, see [math.FMA].
func (Float64) MulAdd(a, b, c float64) float64 {
	return math.FMA(a, b, c)
}

// Complex is the arithmetic of the native complex types.
// Complex products involve several roundings, so no fused variant is provided.
type Complex[T constraints.Complex] struct{}

func (Complex[T]) Zero() T {
	return 0
}

func (Complex[T]) Add(a, b T) T {
	return a + b
}

func (Complex[T]) Mul(a, b T) T {
	return T(a * b)
}

func (Complex[T]) Parse(s string) (v T, err error) {
	var x complex128
	if x, err = strconv.ParseComplex(s, int(unsafe.Sizeof(v))*8); err != nil {
		return v, fmt.Errorf("cannot Parse: %w", err)
	}
	return T(x), nil
}

func (Complex[T]) Format(v T) string {
	return strconv.FormatComplex(complex128(v), 'g', -1, int(unsafe.Sizeof(v))*8)
}
