package polynomial

import (
	"fmt"

	"github.com/tuneinsight/polyeval/arith"
	"github.com/tuneinsight/polyeval/expr"
)

// Strategy emits the nodes the builders combine coefficients with.
// Horner and Estrin only ever combine through MulAdd, so a plain and a fused
// strategy produce trees of identical shape.
type Strategy[T any] interface {
	// Zero returns the additive identity.
	Zero() expr.Node[T]
	// Mul returns a * b.
	Mul(a, b expr.Node[T]) expr.Node[T]
	// MulAdd returns a * b + c, as c + a * b or as one fused node.
	MulAdd(a, b, c expr.Node[T]) expr.Node[T]
	// Fused reports whether MulAdd emits fused nodes.
	Fused() bool
}

type plain[T any] struct {
	op arith.Arithmetic[T]
}

// Plain returns the strategy emitting c + a * b with two roundings.
func Plain[T any](op arith.Arithmetic[T]) Strategy[T] {
	return plain[T]{op: op}
}

func (s plain[T]) Zero() expr.Node[T] {
	return expr.NewZero(s.op)
}

func (s plain[T]) Mul(a, b expr.Node[T]) expr.Node[T] {
	return expr.NewMul(s.op, a, b)
}

func (s plain[T]) MulAdd(a, b, c expr.Node[T]) expr.Node[T] {
	return expr.NewAdd(s.op, c, s.Mul(a, b))
}

func (s plain[T]) Fused() bool {
	return false
}

type fused[T any] struct {
	plain[T]
	op arith.Fused[T]
}

// Fused returns the strategy emitting one fused multiply-add per
// combination step. Only arithmetics providing MulAdd are accepted, so a
// missing capability is a compile-time error.
func Fused[T any](op arith.Fused[T]) Strategy[T] {
	return fused[T]{plain: plain[T]{op: op}, op: op}
}

func (s fused[T]) MulAdd(a, b, c expr.Node[T]) expr.Node[T] {
	return expr.NewMulAdd(s.op, a, b, c)
}

func (s fused[T]) Fused() bool {
	return true
}

// NewStrategy returns [Fused] or [Plain] depending on fused. It returns an
// error wrapping [arith.ErrFusedUnsupported] if fused is requested and op
// has no fused multiply-add; it never falls back to the plain strategy.
func NewStrategy[T any](op arith.Arithmetic[T], fused bool) (Strategy[T], error) {

	if op == nil {
		return nil, fmt.Errorf("cannot NewStrategy: arithmetic is nil")
	}

	if !fused {
		return Plain(op), nil
	}

	f, err := arith.AsFused(op)
	if err != nil {
		return nil, fmt.Errorf("cannot NewStrategy: %w", err)
	}

	return Fused(f), nil
}
