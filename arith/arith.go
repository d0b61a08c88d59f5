// Package arith defines the numeric domains in which polynomial expressions
// are evaluated, together with backends for the native Go numeric types and
// for the arbitrary precision types of math/big.
package arith

import (
	"errors"
	"fmt"
)

// ErrFusedUnsupported is returned when a fused multiply-add is requested
// from an arithmetic that does not provide one.
var ErrFusedUnsupported = errors.New("fused multiply-add is not supported by the arithmetic")

// Arithmetic is the set of operations a numeric type must provide for a
// polynomial to be evaluated over it.
// Implementations must not mutate their operands.
type Arithmetic[T any] interface {
	// Zero returns the additive identity.
	Zero() T
	// Add returns a + b.
	Add(a, b T) T
	// Mul returns a * b.
	Mul(a, b T) T
}

// Fused is an [Arithmetic] that also provides a fused multiply-add.
type Fused[T any] interface {
	Arithmetic[T]
	// MulAdd returns a * b + c computed with a single rounding.
	MulAdd(a, b, c T) T
}

// Codec parses and formats values of a numeric domain.
type Codec[T any] interface {
	Parse(s string) (T, error)
	Format(v T) string
}

// Domain is an [Arithmetic] with a [Codec].
type Domain[T any] interface {
	Arithmetic[T]
	Codec[T]
}

// AsFused returns the [Fused] view of op, or an error wrapping
// [ErrFusedUnsupported] if op has no fused multiply-add.
func AsFused[T any](op Arithmetic[T]) (Fused[T], error) {
	if op == nil {
		return nil, fmt.Errorf("cannot AsFused: arithmetic is nil")
	}
	if f, ok := op.(Fused[T]); ok {
		return f, nil
	}
	return nil, fmt.Errorf("cannot AsFused: %T: %w", op, ErrFusedUnsupported)
}
