package bignum

import (
	"math/big"
)

// MonomialEval evaluates y = sum x^i * poly[i] with Horner's method, at the
// precision of x.
func MonomialEval(x *big.Float, poly []*big.Float) (y *big.Float) {

	y = NewFloat(nil, x.Prec())

	for i := len(poly) - 1; i >= 0; i-- {
		y.Mul(y, x)
		y.Add(y, poly[i])
	}

	return
}

// PowerSum evaluates y = sum poly[i] * x^i computing every power
// independently. It is slower than [MonomialEval] but shares no rounding
// pattern with either evaluation scheme, which makes it a neutral reference.
func PowerSum(x *big.Float, poly []*big.Float) (y *big.Float) {

	prec := x.Prec()
	y = NewFloat(nil, prec)
	tmp := NewFloat(nil, prec)

	for i, c := range poly {
		tmp.Mul(c, Pow(x, i))
		y.Add(y, tmp)
	}

	return
}
