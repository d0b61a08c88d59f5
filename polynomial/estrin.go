package polynomial

import (
	"github.com/tuneinsight/polyeval/expr"
)

// Estrin returns the expression evaluating sum c_i * x^i with Estrin's
// scheme, coefficients being listed from degree zero upward.
//
// The coefficients are split into a low half of ceil(n/2) coefficients and
// a high half, both evaluated recursively and combined as
// low + x^ceil(n/2) * high. The two halves do not depend on each other,
// which exposes instruction level parallelism.
//
// Like [Horner], x is evaluated exactly once per evaluation of the result,
// and so is every power of x the recursion needs.
func Estrin[T any](s Strategy[T], x expr.Node[T], coeffs ...expr.Node[T]) expr.Node[T] {
	pb := NewPowerBasis(s, x)
	return pb.Block(estrin(pb, coeffs, 0, len(coeffs)))
}

// estrin builds the polynomial of coeffs[start:end], i.e. its coefficients
// shifted down by start.
func estrin[T any](pb *PowerBasis[T], coeffs []expr.Node[T], start, end int) expr.Node[T] {

	switch n := end - start; n {
	case 0:
		return pb.Zero()
	case 1:
		return coeffs[start]
	case 2:
		return pb.MulAdd(pb.X(), coeffs[start+1], coeffs[start])
	default:
		split := (n + 1) >> 1

		low := estrin(pb, coeffs, start, start+split)
		high := estrin(pb, coeffs, start+split, end)

		return EvaluateMonomial(pb, low, high, split)
	}
}

// EvaluateMonomial returns a + b * X^{pow}, generating X^{pow} in pb if needed.
func EvaluateMonomial[T any](pb *PowerBasis[T], a, b expr.Node[T], pow int) expr.Node[T] {
	return pb.MulAdd(pb.GenPower(pow), b, a)
}
