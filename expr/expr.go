// Package expr implements the arithmetic expression trees produced by the
// polynomial builders.
//
// A tree is made of leaves ([Constant], [Func], [Zero]), arithmetic nodes
// ([Add], [Mul], [MulAdd]) and [Block] nodes that materialize a value once
// and let the rest of the tree refer to it through [Ref] nodes.
// Nodes are immutable once built and carry the arithmetic they evaluate with,
// so a tree is self-contained and can be evaluated concurrently.
package expr

import (
	"fmt"

	"github.com/samber/lo"

	"github.com/tuneinsight/polyeval/arith"
)

// Precedence is the binding strength of the outermost operator of a node.
type Precedence int

const (
	AddPrecedence Precedence = iota
	MulPrecedence
	AtomicPrecedence
)

// Node is an arithmetic expression evaluating to a T.
type Node[T any] interface {
	// Precedence returns the precedence of the outermost operator.
	Precedence() Precedence
	// String returns the expression's string representation.
	String() string
	// Children returns the direct operands of the node.
	Children() []Node[T]
	// Eval evaluates the node, reading materialized values from s.
	Eval(s *Scope[T]) T
}

// Constant is a leaf holding a value.
type Constant[T any] struct {
	Name  string
	Value T
}

// NewConstant returns a [Constant] leaf. An empty name renders the value.
func NewConstant[T any](name string, value T) *Constant[T] {
	return &Constant[T]{Name: name, Value: value}
}

// Constants returns one unnamed [Constant] leaf per value, in order.
func Constants[T any](values ...T) []Node[T] {
	return lo.Map(values, func(v T, _ int) Node[T] {
		return NewConstant("", v)
	})
}

func (c *Constant[T]) Precedence() Precedence {
	return AtomicPrecedence
}

func (c *Constant[T]) String() string {
	if c.Name != "" {
		return c.Name
	}
	return fmt.Sprint(c.Value)
}

func (c *Constant[T]) Children() []Node[T] {
	return nil
}

func (c *Constant[T]) Eval(*Scope[T]) T {
	return c.Value
}

// Func is a leaf computing its value with an arbitrary function, which may
// be expensive or have side effects. It is called every time the leaf is
// evaluated.
type Func[T any] struct {
	Name string
	F    func() T
}

// NewFunc returns a [Func] leaf.
func NewFunc[T any](name string, f func() T) *Func[T] {
	return &Func[T]{Name: name, F: f}
}

func (f *Func[T]) Precedence() Precedence {
	return AtomicPrecedence
}

func (f *Func[T]) String() string {
	return f.Name
}

func (f *Func[T]) Children() []Node[T] {
	return nil
}

func (f *Func[T]) Eval(*Scope[T]) T {
	if f.F == nil {
		panic(fmt.Errorf("cannot Eval: %s has no function", f.Name))
	}
	return f.F()
}

// Zero is the additive identity of an arithmetic.
type Zero[T any] struct {
	op arith.Arithmetic[T]
}

// NewZero returns the additive identity of op as a leaf.
func NewZero[T any](op arith.Arithmetic[T]) *Zero[T] {
	return &Zero[T]{op: op}
}

func (z *Zero[T]) Precedence() Precedence {
	return AtomicPrecedence
}

func (z *Zero[T]) String() string {
	return "0"
}

func (z *Zero[T]) Children() []Node[T] {
	return nil
}

func (z *Zero[T]) Eval(*Scope[T]) T {
	return z.op.Zero()
}
