/*
Package polyeval generates and evaluates polynomial expressions with Horner's
method and Estrin's scheme, with plain or fused multiply-add steps, over the
native Go numeric types and the arbitrary precision types of math/big.

The builders live in the polynomial package; this package exposes them
behind a serializable parameter set, which is what the polyeval command uses.
*/
package polyeval

import (
	"encoding/json"
	"fmt"
	"math/big"
	"strings"

	"github.com/tuneinsight/polyeval/arith"
	"github.com/tuneinsight/polyeval/codegen"
	"github.com/tuneinsight/polyeval/expr"
	"github.com/tuneinsight/polyeval/polynomial"
)

// Domain is the numeric type a polynomial is evaluated over.
type Domain string

const (
	Int64      = Domain("int64")
	Uint64     = Domain("uint64")
	Float32    = Domain("float32")
	Float64    = Domain("float64")
	Complex128 = Domain("complex128")
	BigInt     = Domain("bigint")
	BigRat     = Domain("bigrat")
	BigFloat   = Domain("bigfloat")
)

// Domains returns the supported domains.
func Domains() []Domain {
	return []Domain{Int64, Uint64, Float32, Float64, Complex128, BigInt, BigRat, BigFloat}
}

// Native returns true if the domain is a built-in Go type.
func (d Domain) Native() bool {
	switch d {
	case Int64, Uint64, Float32, Float64, Complex128:
		return true
	default:
		return false
	}
}

// ParseDomain parses a domain name, ignoring case.
func ParseDomain(s string) (Domain, error) {
	d := Domain(strings.ToLower(strings.TrimSpace(s)))
	for _, v := range Domains() {
		if d == v {
			return d, nil
		}
	}
	return "", fmt.Errorf("cannot ParseDomain: invalid domain %q", s)
}

// ParametersLiteral is a literal representation of a polynomial and of the
// way it is evaluated. It is meant to be filled by users and validated with
// [NewParametersFromLiteral].
//
// Scheme: the evaluation scheme, "horner" if unset.
//
// Domain: the numeric domain, float64 if empty.
//
// Precision: the precision in bits of the bigfloat domain, [arith.DefaultPrecision] if zero.
//
// Coefficients: the coefficients c_0, c_1, ..., in the syntax of the domain.
// Empty trailing coefficients are ignored.
type ParametersLiteral struct {
	Scheme       polynomial.Scheme
	Domain       Domain
	Precision    uint     `json:",omitempty"`
	Coefficients []string `json:",omitempty"`
}

// Parameters is a validated polynomial evaluation setup. It is immutable.
type Parameters struct {
	scheme    polynomial.Scheme
	domain    Domain
	precision uint
	coeffs    []string
}

// NewParametersFromLiteral validates and returns the [Parameters] of pl.
// Coefficients are checked to parse in the domain, and a fused scheme is
// checked to be available in the domain.
func NewParametersFromLiteral(pl ParametersLiteral) (p Parameters, err error) {

	if p.domain = pl.Domain; p.domain == "" {
		p.domain = Float64
	}

	if p.domain, err = ParseDomain(string(p.domain)); err != nil {
		return Parameters{}, fmt.Errorf("cannot NewParametersFromLiteral: %w", err)
	}

	if _, err = polynomial.ParseScheme(pl.Scheme.String()); err != nil {
		return Parameters{}, fmt.Errorf("cannot NewParametersFromLiteral: %w", err)
	}

	p.scheme = pl.Scheme

	switch {
	case p.domain != BigFloat && pl.Precision != 0:
		return Parameters{}, fmt.Errorf("cannot NewParametersFromLiteral: precision is only valid for %s, domain is %s", BigFloat, p.domain)
	case p.domain == BigFloat && pl.Precision == 0:
		p.precision = arith.DefaultPrecision
	default:
		p.precision = pl.Precision
	}

	n := len(pl.Coefficients)
	for n > 0 && strings.TrimSpace(pl.Coefficients[n-1]) == "" {
		n--
	}

	p.coeffs = make([]string, n)
	for i := range p.coeffs {
		p.coeffs[i] = strings.TrimSpace(pl.Coefficients[i])
	}

	// validates the coefficients and the scheme in the domain
	if _, err = p.Expression(); err != nil {
		return Parameters{}, fmt.Errorf("cannot NewParametersFromLiteral: %w", err)
	}

	return
}

// ParametersLiteral returns the [ParametersLiteral] of the target Parameters.
func (p Parameters) ParametersLiteral() ParametersLiteral {
	var prec uint
	if p.domain == BigFloat {
		prec = p.precision
	}
	return ParametersLiteral{
		Scheme:       p.scheme,
		Domain:       p.domain,
		Precision:    prec,
		Coefficients: append([]string{}, p.coeffs...),
	}
}

func (p Parameters) Scheme() polynomial.Scheme {
	return p.scheme
}

func (p Parameters) Domain() Domain {
	return p.domain
}

// Precision returns the precision in bits of the bigfloat domain, zero for
// the other domains.
func (p Parameters) Precision() uint {
	return p.precision
}

// Coefficients returns a copy of the coefficients c_0, c_1, ...
func (p Parameters) Coefficients() []string {
	return append([]string{}, p.coeffs...)
}

// Degree returns the degree of the polynomial, -1 if it has no coefficients.
func (p Parameters) Degree() int {
	return len(p.coeffs) - 1
}

// Equal returns true if both parameters describe the same evaluation.
func (p Parameters) Equal(other Parameters) bool {
	if p.scheme != other.scheme || p.domain != other.domain || p.precision != other.precision || len(p.coeffs) != len(other.coeffs) {
		return false
	}
	for i := range p.coeffs {
		if p.coeffs[i] != other.coeffs[i] {
			return false
		}
	}
	return true
}

// MarshalJSON returns a JSON representation of this parameter set. See `Marshal` from the `encoding/json` package.
func (p Parameters) MarshalJSON() ([]byte, error) {
	return json.Marshal(p.ParametersLiteral())
}

// UnmarshalJSON reads a JSON representation of a parameter set into the receiver Parameter. See `Unmarshal` from the `encoding/json` package.
func (p *Parameters) UnmarshalJSON(data []byte) (err error) {
	var params ParametersLiteral
	if err = json.Unmarshal(data, &params); err != nil {
		return
	}
	*p, err = NewParametersFromLiteral(params)
	return
}

// Description is the static analysis of the expression of a [Parameters].
type Description struct {
	// Expression is the rendering of the expression.
	Expression  string
	Stats       expr.Stats
	Fingerprint expr.Digest
	// Shape is the fingerprint of the expression with fused multiply-adds
	// rendered unfused.
	Shape expr.Digest
}

// Expression returns the rendering of the expression evaluating the
// polynomial at the variable x.
func (p Parameters) Expression() (string, error) {
	d, err := p.Describe()
	return d.Expression, err
}

// Describe returns the [Description] of the expression evaluating the
// polynomial at the variable x.
func (p Parameters) Describe() (d Description, err error) {
	err = p.visit(func(v visitor) error {
		d, err = v.describe()
		return err
	})
	return
}

// Evaluate evaluates the polynomial at x, given in the syntax of the domain,
// and returns the result in the syntax of the domain.
func (p Parameters) Evaluate(x string) (y string, err error) {
	err = p.visit(func(v visitor) error {
		y, err = v.evaluate(x)
		return err
	})
	return
}

// Generate returns the Go source of a function evaluating the polynomial.
// The domain must be native and opts.Type is set to it.
func (p Parameters) Generate(opts codegen.Options) (src []byte, err error) {
	if !p.domain.Native() {
		return nil, fmt.Errorf("cannot Generate: domain %s is not a Go type", p.domain)
	}
	opts.Type = string(p.domain)
	err = p.visit(func(v visitor) error {
		src, err = v.generate(opts)
		return err
	})
	return
}

// visitor is the domain specific view of a [Parameters].
type visitor interface {
	describe() (Description, error)
	evaluate(x string) (string, error)
	generate(opts codegen.Options) ([]byte, error)
}

func (p Parameters) visit(f func(v visitor) error) error {
	switch p.domain {
	case Int64:
		return f(instance[int64]{p, arith.Integer[int64]{}})
	case Uint64:
		return f(instance[uint64]{p, arith.Integer[uint64]{}})
	case Float32:
		return f(instance[float32]{p, arith.Float[float32]{}})
	case Float64:
		return f(instance[float64]{p, arith.Float64{}})
	case Complex128:
		return f(instance[complex128]{p, arith.Complex[complex128]{}})
	case BigInt:
		return f(instance[*big.Int]{p, arith.BigInt{}})
	case BigRat:
		return f(instance[*big.Rat]{p, arith.BigRat{}})
	case BigFloat:
		return f(instance[*big.Float]{p, arith.NewBigFloat(p.precision)})
	default:
		return fmt.Errorf("invalid domain %q", p.domain)
	}
}

// instance is a [Parameters] bound to the arithmetic of its domain.
type instance[T any] struct {
	Parameters
	op arith.Domain[T]
}

func (v instance[T]) compile(x expr.Node[T]) (expr.Node[T], error) {

	coeffs := make([]expr.Node[T], len(v.coeffs))
	for i, s := range v.coeffs {
		c, err := v.op.Parse(s)
		if err != nil {
			return nil, fmt.Errorf("coefficient %d: %w", i, err)
		}
		coeffs[i] = expr.NewConstant(v.op.Format(c), c)
	}

	return polynomial.Compile(v.scheme, arith.Arithmetic[T](v.op), x, coeffs...)
}

func (v instance[T]) describe() (d Description, err error) {

	var n expr.Node[T]
	if n, err = v.compile(expr.NewFunc[T](polynomial.VariableName, nil)); err != nil {
		return
	}

	return Description{
		Expression:  expr.Format(n, expr.Printer{}),
		Stats:       expr.Analyze(n),
		Fingerprint: expr.Fingerprint(n),
		Shape:       expr.ShapeFingerprint(n),
	}, nil
}

func (v instance[T]) evaluate(s string) (string, error) {

	x, err := v.op.Parse(s)
	if err != nil {
		return "", fmt.Errorf("variable: %w", err)
	}

	n, err := v.compile(expr.NewConstant(v.op.Format(x), x))
	if err != nil {
		return "", err
	}

	return v.op.Format(expr.Evaluate(n)), nil
}

func (v instance[T]) generate(opts codegen.Options) ([]byte, error) {

	n, err := v.compile(expr.NewFunc[T](polynomial.VariableName, nil))
	if err != nil {
		return nil, err
	}

	return codegen.Generate(opts, n)
}
