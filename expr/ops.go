package expr

import (
	"fmt"

	"github.com/tuneinsight/polyeval/arith"
)

// Add is the node L + R.
type Add[T any] struct {
	L, R Node[T]
	op   arith.Arithmetic[T]
}

// NewAdd returns the node l + r evaluated with op.
func NewAdd[T any](op arith.Arithmetic[T], l, r Node[T]) *Add[T] {
	checkOperands("NewAdd", l, r)
	return &Add[T]{L: l, R: r, op: op}
}

func (n *Add[T]) Precedence() Precedence {
	return AddPrecedence
}

func (n *Add[T]) String() string {
	return Format[T](n, Printer{})
}

func (n *Add[T]) Children() []Node[T] {
	return []Node[T]{n.L, n.R}
}

func (n *Add[T]) Eval(s *Scope[T]) T {
	return n.op.Add(n.L.Eval(s), n.R.Eval(s))
}

// Mul is the node L * R.
type Mul[T any] struct {
	L, R Node[T]
	op   arith.Arithmetic[T]
}

// NewMul returns the node l * r evaluated with op.
func NewMul[T any](op arith.Arithmetic[T], l, r Node[T]) *Mul[T] {
	checkOperands("NewMul", l, r)
	return &Mul[T]{L: l, R: r, op: op}
}

func (n *Mul[T]) Precedence() Precedence {
	return MulPrecedence
}

func (n *Mul[T]) String() string {
	return Format[T](n, Printer{})
}

func (n *Mul[T]) Children() []Node[T] {
	return []Node[T]{n.L, n.R}
}

func (n *Mul[T]) Eval(s *Scope[T]) T {
	return n.op.Mul(n.L.Eval(s), n.R.Eval(s))
}

// MulAdd is the fused node A * B + C, rounded once.
type MulAdd[T any] struct {
	A, B, C Node[T]
	op      arith.Fused[T]
}

// NewMulAdd returns the node a * b + c evaluated with the fused
// multiply-add of op.
func NewMulAdd[T any](op arith.Fused[T], a, b, c Node[T]) *MulAdd[T] {
	checkOperands("NewMulAdd", a, b, c)
	return &MulAdd[T]{A: a, B: b, C: c, op: op}
}

func (n *MulAdd[T]) Precedence() Precedence {
	return AtomicPrecedence
}

func (n *MulAdd[T]) String() string {
	return Format[T](n, Printer{})
}

func (n *MulAdd[T]) Children() []Node[T] {
	return []Node[T]{n.A, n.B, n.C}
}

// Eval evaluates the operands in the order C, A, B before fusing them,
// which is the order the unfused C + A * B would follow.
func (n *MulAdd[T]) Eval(s *Scope[T]) T {
	c := n.C.Eval(s)
	a := n.A.Eval(s)
	return n.op.MulAdd(a, n.B.Eval(s), c)
}

func checkOperands[T any](op string, nodes ...Node[T]) {
	for i, n := range nodes {
		if n == nil {
			panic(fmt.Errorf("cannot %s: operand %d is nil", op, i))
		}
	}
}
