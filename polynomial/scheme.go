package polynomial

import (
	"fmt"
	"strings"

	"github.com/tuneinsight/polyeval/arith"
	"github.com/tuneinsight/polyeval/expr"
)

// Method is a polynomial evaluation algorithm.
type Method int

const (
	// MethodHorner is Horner's method, see [Horner].
	MethodHorner = Method(iota)
	// MethodEstrin is Estrin's scheme, see [Estrin].
	MethodEstrin
)

func (m Method) String() string {
	switch m {
	case MethodHorner:
		return "horner"
	case MethodEstrin:
		return "estrin"
	default:
		return fmt.Sprintf("Method(%d)", int(m))
	}
}

const fusedSuffix = "-fma"

// Scheme is an evaluation algorithm with or without fused multiply-add.
type Scheme struct {
	Method Method
	Fused  bool
}

var (
	HornerScheme      = Scheme{Method: MethodHorner}
	HornerFusedScheme = Scheme{Method: MethodHorner, Fused: true}
	EstrinScheme      = Scheme{Method: MethodEstrin}
	EstrinFusedScheme = Scheme{Method: MethodEstrin, Fused: true}
)

// Schemes returns the four supported schemes.
func Schemes() []Scheme {
	return []Scheme{HornerScheme, HornerFusedScheme, EstrinScheme, EstrinFusedScheme}
}

// String returns "horner", "horner-fma", "estrin" or "estrin-fma".
func (s Scheme) String() string {
	if s.Fused {
		return s.Method.String() + fusedSuffix
	}
	return s.Method.String()
}

// ParseScheme parses the output of [Scheme.String], ignoring case.
func ParseScheme(str string) (s Scheme, err error) {

	name := strings.ToLower(strings.TrimSpace(str))

	if strings.HasSuffix(name, fusedSuffix) {
		s.Fused = true
		name = strings.TrimSuffix(name, fusedSuffix)
	}

	switch name {
	case "horner":
		s.Method = MethodHorner
	case "estrin":
		s.Method = MethodEstrin
	default:
		return s, fmt.Errorf("cannot ParseScheme: invalid scheme %q, must be horner, horner-fma, estrin or estrin-fma", str)
	}

	return s, nil
}

// MarshalText implements [encoding.TextMarshaler].
func (s Scheme) MarshalText() ([]byte, error) {
	if s.Method != MethodHorner && s.Method != MethodEstrin {
		return nil, fmt.Errorf("cannot MarshalText: invalid method %v", s.Method)
	}
	return []byte(s.String()), nil
}

// UnmarshalText implements [encoding.TextUnmarshaler].
func (s *Scheme) UnmarshalText(text []byte) (err error) {
	*s, err = ParseScheme(string(text))
	return
}

// Build returns the expression of the polynomial with coefficients coeffs
// evaluated at x with the given scheme. It returns an error if the
// strategy does not match whether the scheme is fused.
func Build[T any](scheme Scheme, s Strategy[T], x expr.Node[T], coeffs ...expr.Node[T]) (expr.Node[T], error) {

	if s == nil {
		return nil, fmt.Errorf("cannot Build: strategy is nil")
	}

	if scheme.Fused != s.Fused() {
		return nil, fmt.Errorf("cannot Build: scheme %s does not match strategy (fused=%t)", scheme, s.Fused())
	}

	switch scheme.Method {
	case MethodHorner:
		return Horner(s, x, coeffs...), nil
	case MethodEstrin:
		return Estrin(s, x, coeffs...), nil
	default:
		return nil, fmt.Errorf("cannot Build: invalid method %v", scheme.Method)
	}
}

// Compile is [Build] with the strategy derived from op and the scheme.
// A fused scheme over an arithmetic without fused multiply-add returns an
// error wrapping [arith.ErrFusedUnsupported].
func Compile[T any](scheme Scheme, op arith.Arithmetic[T], x expr.Node[T], coeffs ...expr.Node[T]) (expr.Node[T], error) {

	s, err := NewStrategy(op, scheme.Fused)
	if err != nil {
		return nil, fmt.Errorf("cannot Compile %s: %w", scheme, err)
	}

	return Build(scheme, s, x, coeffs...)
}
