package expr

import (
	"strings"
)

// Printer configures how [Format] renders a tree.
type Printer struct {
	// FMA is the name of the fused multiply-add function, "fma" if empty.
	FMA string
	// Unfuse renders MulAdd(a, b, c) as c + a * b.
	Unfuse bool
	// Round, if not empty, wraps every product that is an operand of a sum
	// in a call to Round, e.g. a Go conversion float64(a * b), which keeps a
	// compiler from fusing the product with the sum.
	Round string
}

// Format renders n with infix operators, adding only the parentheses needed
// to preserve the structure of the tree. Blocks render as
// {name := value; ...; result}.
func Format[T any](n Node[T], p Printer) string {
	var sb strings.Builder
	write(&sb, n, p)
	return sb.String()
}

func precedence[T any](n Node[T], p Printer) Precedence {
	if _, ok := n.(*MulAdd[T]); ok && p.Unfuse {
		return AddPrecedence
	}
	return n.Precedence()
}

// writeOperand writes n, parenthesized if it binds less than min.
func writeOperand[T any](sb *strings.Builder, n Node[T], min Precedence, p Printer) {
	if precedence(n, p) < min {
		sb.WriteByte('(')
		write(sb, n, p)
		sb.WriteByte(')')
		return
	}
	write(sb, n, p)
}

// writeTerm writes n as an operand of a sum, wrapping a product in p.Round.
func writeTerm[T any](sb *strings.Builder, n Node[T], min Precedence, p Printer) {
	if m, ok := n.(*Mul[T]); ok && p.Round != "" {
		sb.WriteString(p.Round)
		sb.WriteByte('(')
		writeInfix(sb, m.L, m.R, " * ", MulPrecedence, p)
		sb.WriteByte(')')
		return
	}
	writeOperand(sb, n, min, p)
}

// writeInfix writes l op r. Operators are left associative: a right operand
// of the same precedence is parenthesized.
func writeInfix[T any](sb *strings.Builder, l, r Node[T], op string, prec Precedence, p Printer) {
	writeOperand(sb, l, prec, p)
	sb.WriteString(op)
	writeOperand(sb, r, prec+1, p)
}

func write[T any](sb *strings.Builder, n Node[T], p Printer) {
	switch n := n.(type) {
	case *Add[T]:
		writeTerm(sb, n.L, AddPrecedence, p)
		sb.WriteString(" + ")
		writeTerm(sb, n.R, AddPrecedence+1, p)
	case *Mul[T]:
		writeInfix(sb, n.L, n.R, " * ", MulPrecedence, p)
	case *MulAdd[T]:
		if p.Unfuse {
			writeTerm(sb, n.C, AddPrecedence, p)
			sb.WriteString(" + ")
			if p.Round != "" {
				sb.WriteString(p.Round)
				sb.WriteByte('(')
				writeInfix(sb, n.A, n.B, " * ", MulPrecedence, p)
				sb.WriteByte(')')
				return
			}
			writeInfix(sb, n.A, n.B, " * ", MulPrecedence, p)
			return
		}
		fma := p.FMA
		if fma == "" {
			fma = "fma"
		}
		sb.WriteString(fma)
		sb.WriteByte('(')
		write(sb, n.A, p)
		sb.WriteString(", ")
		write(sb, n.B, p)
		sb.WriteString(", ")
		write(sb, n.C, p)
		sb.WriteByte(')')
	case *Block[T]:
		sb.WriteByte('{')
		for _, b := range n.Bindings {
			sb.WriteString(b.Name)
			sb.WriteString(" := ")
			write(sb, b.Value, p)
			sb.WriteString("; ")
		}
		write(sb, n.Result, p)
		sb.WriteByte('}')
	default:
		sb.WriteString(n.String())
	}
}
