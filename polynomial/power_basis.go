package polynomial

import (
	"fmt"
	"math/bits"
	"strconv"

	"github.com/tuneinsight/polyeval/expr"
)

// VariableName is the name the materialized variable is bound to.
const VariableName = "x"

// PowerBasis materializes the variable of a polynomial once and caches the
// powers X^{n} derived from it. Every power is bound once, in the order it
// was generated, and shared through references.
type PowerBasis[T any] struct {
	Strategy[T]
	Value map[int]*expr.Binding[T]
	order []*expr.Binding[T]
}

// NewPowerBasis creates a new [PowerBasis] whose X^{1} is the value of x.
func NewPowerBasis[T any](s Strategy[T], x expr.Node[T]) (p *PowerBasis[T]) {
	b := expr.NewBinding(VariableName, x)
	return &PowerBasis[T]{
		Strategy: s,
		Value:    map[int]*expr.Binding[T]{1: b},
		order:    []*expr.Binding[T]{b},
	}
}

// SplitDegree returns a + b = n such that X^{n} = X^{a} * X^{b} follows
// repeated squaring: a = b = n/2 if n is a power of two, else a is the
// largest power of two smaller than n.
func SplitDegree(n int) (a, b int) {

	if n < 2 {
		panic(fmt.Errorf("cannot SplitDegree: n=%d < 2", n))
	}

	if n&(n-1) == 0 {
		return n >> 1, n >> 1
	}

	a = 1 << (bits.Len64(uint64(n)) - 1)

	return a, n - a
}

// X returns the reference to the materialized variable.
func (p *PowerBasis[T]) X() expr.Node[T] {
	return p.Value[1].Ref()
}

// GenPower returns the reference to X^{n}, generating X^{n} and the powers
// it depends on if they are not yet in the basis.
func (p *PowerBasis[T]) GenPower(n int) expr.Node[T] {

	if n < 1 {
		panic(fmt.Errorf("cannot GenPower: n=%d < 1", n))
	}

	if p.Value[n] == nil {

		a, b := SplitDegree(n)

		xa := p.GenPower(a)
		xb := p.GenPower(b)

		// Computes X^{n} = X^{a} * X^{b}
		binding := expr.NewBinding(VariableName+strconv.Itoa(n), p.Mul(xa, xb))

		p.Value[n] = binding
		p.order = append(p.order, binding)
	}

	return p.Value[n].Ref()
}

// Block returns result wrapped in a block materializing the variable and
// every generated power, in generation order.
func (p *PowerBasis[T]) Block(result expr.Node[T]) *expr.Block[T] {
	bindings := make([]*expr.Binding[T], len(p.order))
	copy(bindings, p.order)
	return expr.NewBlock(result, bindings...)
}
