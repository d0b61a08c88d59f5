// Package bignum implements arbitrary precision reference evaluations of
// polynomials, against which the native schemes can be checked.
package bignum

import (
	"fmt"
	"math/big"

	"github.com/ALTree/bigfloat"
)

// NewFloat creates a new big.Float element with "prec" bits of precision.
// Valid types for x are: int, int64, uint, uint64, float64, *big.Int, *big.Rat or *big.Float.
func NewFloat(x interface{}, prec uint) (y *big.Float) {

	y = new(big.Float)
	y.SetPrec(prec)

	if x == nil {
		return
	}

	switch x := x.(type) {
	case int:
		y.SetInt64(int64(x))
	case int64:
		y.SetInt64(x)
	case uint:
		y.SetUint64(uint64(x))
	case uint64:
		y.SetUint64(x)
	case float64:
		y.SetFloat64(x)
	case *big.Int:
		y.SetInt(x)
	case *big.Rat:
		y.SetRat(x)
	case *big.Float:
		y.Set(x)
	default:
		panic(fmt.Errorf("invalid x.(type): valid types are int, int64, uint, uint64, float64, *big.Int, *big.Rat or *big.Float but is %T", x))
	}

	return
}

// NewFloats maps NewFloat over values.
func NewFloats[V int | int64 | uint | uint64 | float64](values []V, prec uint) (y []*big.Float) {
	y = make([]*big.Float, len(values))
	for i, v := range values {
		y[i] = NewFloat(v, prec)
	}
	return
}

// Pow returns x^k for an integer k >= 0, with the precision of x.
// Negative bases are supported by factoring out the sign.
func Pow(x *big.Float, k int) (pow *big.Float) {

	if k < 0 {
		panic(fmt.Errorf("cannot Pow: negative exponent %d", k))
	}

	prec := x.Prec()

	if k == 0 {
		return NewFloat(1, prec)
	}

	if x.Sign() == 0 {
		return NewFloat(nil, prec)
	}

	abs := new(big.Float).Abs(x)
	pow = bigfloat.Pow(abs, NewFloat(k, prec))

	if x.Sign() < 0 && k&1 == 1 {
		pow.Neg(pow)
	}

	return
}
