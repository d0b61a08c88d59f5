package codegen

import (
	"go/ast"
	"go/parser"
	"go/token"
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tuneinsight/polyeval/arith"
	"github.com/tuneinsight/polyeval/expr"
	"github.com/tuneinsight/polyeval/polynomial"
)

func compile(t *testing.T, scheme polynomial.Scheme, coeffs ...float64) expr.Node[float64] {
	n, err := polynomial.Compile[float64](scheme, arith.Float64{}, expr.NewFunc[float64]("x", nil), expr.Constants(coeffs...)...)
	require.NoError(t, err)
	return n
}

func parse(t *testing.T, src []byte) *ast.File {
	f, err := parser.ParseFile(token.NewFileSet(), "", src, parser.ParseComments)
	require.NoError(t, err, string(src))
	return f
}

func unparen(e ast.Expr) ast.Expr {
	for {
		p, ok := e.(*ast.ParenExpr)
		if !ok {
			return e
		}
		e = p.X
	}
}

// products returns the number of products in f that are a direct operand
// of a sum, and the number of sums.
func products(f *ast.File) (unrounded, sums int) {
	ast.Inspect(f, func(n ast.Node) bool {
		if b, ok := n.(*ast.BinaryExpr); ok && b.Op == token.ADD {
			sums++
			for _, e := range []ast.Expr{b.X, b.Y} {
				if m, ok := unparen(e).(*ast.BinaryExpr); ok && m.Op == token.MUL {
					unrounded++
				}
			}
		}
		return true
	})
	return
}

func TestFuncName(t *testing.T) {
	for _, tc := range []struct {
		name     string
		exported bool
		want     string
	}{
		{"exp_taylor", true, "ExpTaylor"},
		{"exp_taylor", false, "expTaylor"},
		{"sin", true, "Sin"},
		{"evalPoly", false, "evalPoly"},
		{"evalPoly", true, "EvalPoly"},
		{"log1p-approx", true, "Log1pApprox"},
	} {
		got, err := Options{Name: tc.name, Exported: tc.exported}.FuncName()
		require.NoError(t, err)
		require.Equal(t, tc.want, got)
	}

	_, err := Options{Name: "_"}.FuncName()
	require.Error(t, err)

	_, err = Options{Name: "1st"}.FuncName()
	require.Error(t, err)
}

func TestGenerate(t *testing.T) {

	t.Run("Horner", func(t *testing.T) {
		src, err := Generate(Options{Package: "approx", Name: "exp_taylor", Type: "float64", Exported: true}, compile(t, polynomial.HornerScheme, 1, 1, 0.5))
		require.NoError(t, err)
		parse(t, src)

		s := string(src)
		require.True(t, strings.HasPrefix(s, "package approx\n"), s)
		require.Contains(t, s, "// ExpTaylor evaluates 1 + x * (1 + x * 0.5).")
		require.Contains(t, s, "func ExpTaylor(x float64) float64 {")
		require.NotContains(t, s, FMA)
	})

	t.Run("HornerFused", func(t *testing.T) {
		src, err := Generate(Options{Package: "approx", Name: "exp_taylor", Type: "float64"}, compile(t, polynomial.HornerFusedScheme, 1, 1, 0.5))
		require.NoError(t, err)
		parse(t, src)

		s := string(src)
		require.Contains(t, s, "func expTaylor(x float64) float64 {")
		require.Contains(t, s, `"math"`)
		require.Contains(t, s, "math.FMA(x, math.FMA(x, 0.5, 1), 1)")
	})

	t.Run("Estrin", func(t *testing.T) {
		src, err := Generate(Options{Package: "approx", Name: "p", Type: "float64"}, compile(t, polynomial.EstrinFusedScheme, 1, 2, 3, 4, 5))
		require.NoError(t, err)
		parse(t, src)

		s := string(src)
		require.Contains(t, s, "x2 := x * x")
		require.Contains(t, s, "x3 := x2 * x")
		require.Contains(t, s, "return math.FMA(x3, math.FMA(x, 5, 4), math.FMA(x2, 3, math.FMA(x, 2, 1)))")
	})

	t.Run("Integer", func(t *testing.T) {
		n, err := polynomial.Compile[int64](polynomial.EstrinFusedScheme, arith.Integer[int64]{}, expr.NewFunc[int64]("x", nil), expr.Constants[int64](1, 2, 3)...)
		require.NoError(t, err)

		_, err = Generate(Options{Package: "approx", Name: "p", Type: "int64"}, n)
		require.Error(t, err)

		n, err = polynomial.Compile[int64](polynomial.EstrinScheme, arith.Integer[int64]{}, expr.NewFunc[int64]("x", nil), expr.Constants[int64](1, 2, 3)...)
		require.NoError(t, err)

		src, err := Generate(Options{Package: "approx", Name: "p", Type: "int64"}, n)
		require.NoError(t, err)
		parse(t, src)
		require.Contains(t, string(src), "func p(x int64) int64 {")
	})

	t.Run("Empty", func(t *testing.T) {
		src, err := Generate(Options{Package: "approx", Name: "zero", Type: "float64"}, compile(t, polynomial.EstrinScheme))
		require.NoError(t, err)
		parse(t, src)
		require.Contains(t, string(src), "return 0\n")
	})

	t.Run("NoPackage", func(t *testing.T) {
		src, err := Generate(Options{Name: "p", Type: "float64"}, compile(t, polynomial.HornerScheme, 1, 2))
		require.NoError(t, err)

		s := string(src)
		require.NotContains(t, s, "package")
		require.True(t, strings.HasPrefix(s, "// p evaluates"), s)
	})

	t.Run("Rounding", func(t *testing.T) {
		for _, scheme := range []polynomial.Scheme{polynomial.HornerScheme, polynomial.EstrinScheme} {
			src, err := Generate(Options{Package: "approx", Name: "p", Type: "float64"}, compile(t, scheme, 1, 2, 3, 4, 5))
			require.NoError(t, err)

			unrounded, sums := products(parse(t, src))
			require.Equal(t, 4, sums, string(src))
			require.Zero(t, unrounded, string(src))
			require.Contains(t, string(src), "float64(x", string(src))
		}

		src, err := Generate(Options{Package: "approx", Name: "p", Type: "float64"}, compile(t, polynomial.HornerScheme, 1, 2, 3))
		require.NoError(t, err)
		require.Equal(t, 2, strings.Count(string(src), "float64("), string(src))
	})

	t.Run("NonFinite", func(t *testing.T) {
		for _, c := range []float64{math.Inf(1), math.Inf(-1), math.NaN()} {
			_, err := Generate(Options{Package: "approx", Name: "p", Type: "float64"}, compile(t, polynomial.HornerScheme, 1, c))
			require.Error(t, err)
		}

		n, err := polynomial.Compile[complex128](polynomial.HornerScheme, arith.Complex[complex128]{}, expr.NewFunc[complex128]("x", nil), expr.Constants(complex(math.NaN(), 0))...)
		require.NoError(t, err)
		_, err = Generate(Options{Package: "approx", Name: "p", Type: "complex128"}, n)
		require.Error(t, err)
	})

	t.Run("Invalid", func(t *testing.T) {
		_, err := Generate(Options{Package: "approx", Name: "p"}, compile(t, polynomial.HornerScheme, 1, 2))
		require.Error(t, err)

		_, err = Generate[float64](Options{Package: "approx", Name: "p", Type: "float64"}, expr.NewConstant("", 1.0))
		require.Error(t, err)

		_, err = Generate(Options{Package: "approx", Type: "float64"}, compile(t, polynomial.HornerScheme, 1, 2))
		require.Error(t, err)
	})
}
