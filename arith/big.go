package arith

import (
	"fmt"
	"math/big"
)

// DefaultPrecision is the mantissa size, in bits, of a zero value [BigFloat].
const DefaultPrecision = 256

// BigInt is the exact arithmetic of *big.Int.
type BigInt struct{}

func (BigInt) Zero() *big.Int {
	return new(big.Int)
}

func (BigInt) Add(a, b *big.Int) *big.Int {
	return new(big.Int).Add(a, b)
}

func (BigInt) Mul(a, b *big.Int) *big.Int {
	return new(big.Int).Mul(a, b)
}

func (BigInt) MulAdd(a, b, c *big.Int) *big.Int {
	z := new(big.Int).Mul(a, b)
	return z.Add(z, c)
}

func (BigInt) Parse(s string) (*big.Int, error) {
	z, ok := new(big.Int).SetString(s, 0)
	if !ok {
		return nil, fmt.Errorf("cannot Parse: invalid integer %q", s)
	}
	return z, nil
}

func (BigInt) Format(v *big.Int) string {
	return v.String()
}

// BigRat is the exact arithmetic of *big.Rat.
type BigRat struct{}

func (BigRat) Zero() *big.Rat {
	return new(big.Rat)
}

func (BigRat) Add(a, b *big.Rat) *big.Rat {
	return new(big.Rat).Add(a, b)
}

func (BigRat) Mul(a, b *big.Rat) *big.Rat {
	return new(big.Rat).Mul(a, b)
}

func (BigRat) MulAdd(a, b, c *big.Rat) *big.Rat {
	z := new(big.Rat).Mul(a, b)
	return z.Add(z, c)
}

func (BigRat) Parse(s string) (*big.Rat, error) {
	z, ok := new(big.Rat).SetString(s)
	if !ok {
		return nil, fmt.Errorf("cannot Parse: invalid rational %q", s)
	}
	return z, nil
}

func (BigRat) Format(v *big.Rat) string {
	return v.RatString()
}

// BigFloat is the arithmetic of *big.Float at a fixed precision.
// Every result is rounded to Prec bits with the rounding mode of Mode.
type BigFloat struct {
	Prec uint
	Mode big.RoundingMode
}

// NewBigFloat returns a [BigFloat] arithmetic with prec bits of precision
// and rounding to nearest even.
func NewBigFloat(prec uint) BigFloat {
	return BigFloat{Prec: prec, Mode: big.ToNearestEven}
}

func (f BigFloat) new() *big.Float {
	prec := f.Prec
	if prec == 0 {
		prec = DefaultPrecision
	}
	return new(big.Float).SetPrec(prec).SetMode(f.Mode)
}

func (f BigFloat) Zero() *big.Float {
	return f.new()
}

func (f BigFloat) Add(a, b *big.Float) *big.Float {
	return f.new().Add(a, b)
}

func (f BigFloat) Mul(a, b *big.Float) *big.Float {
	return f.new().Mul(a, b)
}

// MulAdd computes the product exactly, then rounds once when adding c.
func (f BigFloat) MulAdd(a, b, c *big.Float) *big.Float {
	// The product of an m-bit and an n-bit mantissa fits in m+n bits.
	exact := new(big.Float).SetPrec(a.MinPrec() + b.MinPrec() + 1)
	exact.Mul(a, b)
	return f.new().Add(exact, c)
}

func (f BigFloat) Parse(s string) (*big.Float, error) {
	z, ok := f.new().SetString(s)
	if !ok {
		return nil, fmt.Errorf("cannot Parse: invalid float %q", s)
	}
	return z, nil
}

func (f BigFloat) Format(v *big.Float) string {
	return v.Text('g', -1)
}
