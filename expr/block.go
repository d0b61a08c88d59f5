package expr

import (
	"fmt"
)

// Binding names the value of an expression inside a [Block].
type Binding[T any] struct {
	Name  string
	Value Node[T]
	ref   *Ref[T]
}

// NewBinding returns a binding of value to name.
func NewBinding[T any](name string, value Node[T]) *Binding[T] {
	if value == nil {
		panic(fmt.Errorf("cannot NewBinding: %s: value is nil", name))
	}
	b := &Binding[T]{Name: name, Value: value}
	b.ref = &Ref[T]{Binding: b}
	return b
}

// Ref returns the node reading the materialized value of the binding.
func (b *Binding[T]) Ref() *Ref[T] {
	return b.ref
}

// Ref reads the value a [Block] materialized for its binding.
type Ref[T any] struct {
	Binding *Binding[T]
}

func (r *Ref[T]) Precedence() Precedence {
	return AtomicPrecedence
}

func (r *Ref[T]) String() string {
	return r.Binding.Name
}

func (r *Ref[T]) Children() []Node[T] {
	return nil
}

func (r *Ref[T]) Eval(s *Scope[T]) T {
	return s.Lookup(r.Binding)
}

// Block evaluates its bindings once each, in order, then its result.
// This is the only way a tree evaluates an expression once and uses the
// value several times.
type Block[T any] struct {
	Bindings []*Binding[T]
	Result   Node[T]
}

// NewBlock returns a block materializing bindings before evaluating result.
func NewBlock[T any](result Node[T], bindings ...*Binding[T]) *Block[T] {
	if result == nil {
		panic(fmt.Errorf("cannot NewBlock: result is nil"))
	}
	return &Block[T]{Bindings: bindings, Result: result}
}

func (b *Block[T]) Precedence() Precedence {
	return AtomicPrecedence
}

func (b *Block[T]) String() string {
	return Format[T](b, Printer{})
}

// Children returns the values of the bindings followed by the result.
func (b *Block[T]) Children() []Node[T] {
	children := make([]Node[T], 0, len(b.Bindings)+1)
	for _, binding := range b.Bindings {
		children = append(children, binding.Value)
	}
	return append(children, b.Result)
}

func (b *Block[T]) Eval(s *Scope[T]) T {
	for _, binding := range b.Bindings {
		s.bind(binding, binding.Value.Eval(s))
	}
	return b.Result.Eval(s)
}

// Scope stores the values materialized during one evaluation.
// A Scope must not be shared between concurrent evaluations.
type Scope[T any] struct {
	values map[*Binding[T]]T
}

// NewScope returns an empty scope.
func NewScope[T any]() *Scope[T] {
	return &Scope[T]{values: map[*Binding[T]]T{}}
}

// Lookup returns the value materialized for b.
// It panics if b was not evaluated by an enclosing [Block].
func (s *Scope[T]) Lookup(b *Binding[T]) T {
	v, ok := s.values[b]
	if !ok {
		panic(fmt.Errorf("cannot Lookup: %s is not bound in this scope", b.Name))
	}
	return v
}

func (s *Scope[T]) bind(b *Binding[T], v T) {
	s.values[b] = v
}

// Evaluate evaluates n in a fresh scope.
func Evaluate[T any](n Node[T]) T {
	return n.Eval(NewScope[T]())
}
