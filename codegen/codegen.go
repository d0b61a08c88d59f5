// Package codegen emits Go source for polynomial expressions built by the
// polynomial package.
package codegen

import (
	"bytes"
	"fmt"
	"go/token"
	"math"
	"math/cmplx"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/tools/imports"

	"github.com/tuneinsight/polyeval/expr"
)

// FMA is the function fused multiply-adds are emitted as.
const FMA = "math.FMA"

// Options configures [Generate].
type Options struct {
	// Package is the package clause of the generated file.
	// An empty package emits the function alone.
	Package string
	// Name is the name of the function, in snake or camel case.
	Name string
	// Type is the Go type of the variable, the coefficients and the result.
	Type string
	// Exported capitalizes the function name.
	Exported bool
}

// FuncName returns the Go identifier of the generated function:
// "exp_taylor" becomes ExpTaylor if exported and expTaylor otherwise.
func (o Options) FuncName() (string, error) {

	parts := strings.FieldsFunc(o.Name, func(r rune) bool { return r == '_' || r == '-' || r == ' ' })

	if len(parts) == 0 {
		return "", fmt.Errorf("cannot FuncName: name is empty")
	}

	title := cases.Title(language.Und, cases.NoLower)

	var sb strings.Builder
	for i, p := range parts {
		if i == 0 && !o.Exported {
			sb.WriteString(strings.ToLower(p[:1]) + p[1:])
			continue
		}
		sb.WriteString(title.String(p))
	}

	name := sb.String()

	if !token.IsIdentifier(name) {
		return "", fmt.Errorf("cannot FuncName: %q is not a valid identifier", name)
	}

	return name, nil
}

// checkFinite returns an error if a constant of n has no Go literal.
func checkFinite[T any](n expr.Node[T]) error {

	if c, ok := n.(*expr.Constant[T]); ok {
		finite := true
		switch v := any(c.Value).(type) {
		case float64:
			finite = !math.IsInf(v, 0) && !math.IsNaN(v)
		case float32:
			finite = !math.IsInf(float64(v), 0) && !math.IsNaN(float64(v))
		case complex128:
			finite = !cmplx.IsInf(v) && !cmplx.IsNaN(v)
		case complex64:
			finite = !cmplx.IsInf(complex128(v)) && !cmplx.IsNaN(complex128(v))
		}
		if !finite {
			return fmt.Errorf("constant %s is not finite", c)
		}
	}

	for _, child := range n.Children() {
		if err := checkFinite(child); err != nil {
			return err
		}
	}

	return nil
}

// Generate returns the gofmt'ed source of func Name(x Type) Type evaluating
// n. The top level of n must be an [expr.Block] whose first binding is the
// variable, as built by polynomial.Horner and polynomial.Estrin; the other
// bindings become local variables. Fused multiply-adds are emitted as
// math.FMA, which requires Type to be float64. Products added to a value are
// converted to Type, so floating point sums are rounded twice as written.
// Non-finite constants are an error.
func Generate[T any](opts Options, n expr.Node[T]) ([]byte, error) {

	name, err := opts.FuncName()
	if err != nil {
		return nil, fmt.Errorf("cannot Generate: %w", err)
	}

	if opts.Type == "" {
		return nil, fmt.Errorf("cannot Generate: type is empty")
	}

	block, ok := n.(*expr.Block[T])
	if !ok || len(block.Bindings) == 0 {
		return nil, fmt.Errorf("cannot Generate: expression %T is not a block binding the variable", n)
	}

	if st := expr.Analyze(n); st.MulAdd != 0 && opts.Type != "float64" {
		return nil, fmt.Errorf("cannot Generate: %d fused multiply-adds require float64, got %s", st.MulAdd, opts.Type)
	}

	if err := checkFinite[T](n); err != nil {
		return nil, fmt.Errorf("cannot Generate: %w", err)
	}

	p := expr.Printer{FMA: FMA}

	// Go may fuse x*y + z for floating point types unless the product is
	// converted explicitly.
	switch opts.Type {
	case "float32", "float64", "complex64", "complex128":
		p.Round = opts.Type
	}

	param := block.Bindings[0].Name

	var buf bytes.Buffer

	if opts.Package != "" {
		fmt.Fprintf(&buf, "package %s\n\n", opts.Package)
	}

	fmt.Fprintf(&buf, "// %s evaluates %s.\n", name, expr.Format(block.Result, expr.Printer{Unfuse: true}))
	fmt.Fprintf(&buf, "func %s(%s %s) %s {\n", name, param, opts.Type, opts.Type)

	for _, b := range block.Bindings[1:] {
		fmt.Fprintf(&buf, "%s := %s\n", b.Name, expr.Format(b.Value, p))
	}

	fmt.Fprintf(&buf, "return %s\n}\n", expr.Format(block.Result, p))

	if opts.Package == "" {
		// imports.Process needs a package clause
		src, err := imports.Process("", append([]byte("package main\n\n"), buf.Bytes()...), &imports.Options{Comments: true, TabIndent: true, TabWidth: 8, FormatOnly: true})
		if err != nil {
			return nil, fmt.Errorf("cannot Generate: %w", err)
		}
		return bytes.TrimPrefix(src, []byte("package main\n\n")), nil
	}

	src, err := imports.Process("", buf.Bytes(), &imports.Options{Comments: true, TabIndent: true, TabWidth: 8})
	if err != nil {
		return nil, fmt.Errorf("cannot Generate: %w", err)
	}

	return src, nil
}
