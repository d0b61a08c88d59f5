package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/require"
)

// execute runs the command line with args from the flag defaults.
func execute(t *testing.T, args ...string) string {
	out, err := run(args...)
	require.NoError(t, err)
	return out
}

// run is execute returning the error of the command.
func run(args ...string) (string, error) {

	rawParams, rawScheme, rawDomain, precision = "", "horner", "float64", 0
	rawX, showStats, genOut = nil, false, ""
	genOpts.Name, genOpts.Package, genOpts.Exported = "eval_poly", "main", false
	benchDegree, benchRuns, benchBatch, benchSeed, benchAll = 16, 1000, 100, "polyeval", false

	unchange := func(f *pflag.Flag) { f.Changed = false }
	rootCmd.PersistentFlags().VisitAll(unchange)
	for _, cmd := range rootCmd.Commands() {
		cmd.Flags().VisitAll(unchange)
	}

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func TestParseCoefficients(t *testing.T) {
	require.Equal(t, []string{"1", "2", "3"}, parseCoefficients([]string{"1", "2", "3"}))
	require.Equal(t, []string{"1", "2", "3"}, parseCoefficients([]string{"1,2,3"}))
	require.Equal(t, []string{"1", "2", "3"}, parseCoefficients([]string{"[1,", "2,", "3,]"}))
	require.Equal(t, []string{"1", "2", "3"}, parseCoefficients([]string{"[1, 2, 3,]"}))
	require.Empty(t, parseCoefficients([]string{"[]"}))
	require.Equal(t, []string{"1", "", "2"}, parseCoefficients([]string{"1,,2"}))
	require.Equal(t, []string{"1", "", "2"}, parseCoefficients([]string{"1", "", "2"}))
	require.Equal(t, []string{"1", "2"}, parseCoefficients([]string{"1,2,,"}))
	require.Empty(t, parseCoefficients(nil))
}

func TestEval(t *testing.T) {
	require.Equal(t, "17\n162\n", execute(t, "eval", "--scheme", "estrin-fma", "--domain", "int64", "--x", "2", "--x", "7", "1", "2", "3"))
	require.Equal(t, "3/2\n", execute(t, "eval", "--domain", "bigrat", "--x", "3", "1/2", "1/3"))
	require.Equal(t, "1.5\n", execute(t, "eval", "--domain", "bigfloat", "--precision", "64", "--x", "0.5", "[1, 1]"))
	require.Equal(t, "71\n", execute(t, "eval", "--domain", "int64", "--x", "-2", "--", "-1", "0", "2", "0", "0", "0", "1"))
}

func TestEvalEmptyCoefficient(t *testing.T) {
	for _, coeffs := range []string{"1,,2", "[1, , 2]", ",1"} {
		_, err := run("eval", "--domain", "int64", "--x", "10", coeffs)
		require.Error(t, err, coeffs)
	}
	require.Equal(t, "201\n", execute(t, "eval", "--domain", "int64", "--x", "10", "1,0,2,"))
}

func TestExpr(t *testing.T) {
	require.Equal(t, "{x := x; x2 := x * x; 1 + x * 1 + x2 * (1 + x * 1)}\n", execute(t, "expr", "--scheme", "estrin", "1", "1", "1", "1"))

	out := execute(t, "expr", "--stats", "--scheme", "horner-fma", "1", "2", "3")
	require.True(t, strings.HasPrefix(out, "{x := x; fma(x, fma(x, 3, 2), 1)}\n"), out)
	require.Contains(t, out, "add: 0, mul: 0, fma: 2, bindings: 1, depth: 2\n")
	require.Contains(t, out, "fingerprint: ")
}

func TestGen(t *testing.T) {
	out := execute(t, "gen", "--scheme", "horner-fma", "--name", "exp_taylor", "--package", "approx", "--exported", "1", "1", "0.5")
	require.Contains(t, out, "package approx")
	require.Contains(t, out, "func ExpTaylor(x float64) float64 {")

	file := filepath.Join(t.TempDir(), "poly.go")
	require.Empty(t, execute(t, "gen", "--out", file, "1", "2"))

	src, err := os.ReadFile(file)
	require.NoError(t, err)
	require.Contains(t, string(src), "func evalPoly(x float64) float64 {")
}

func TestInfo(t *testing.T) {
	out := execute(t, "info")
	require.Contains(t, out, "hardware fma: ")
	require.Contains(t, out, "schemes: [horner horner-fma estrin estrin-fma]\n")
}

func TestBench(t *testing.T) {
	out := execute(t, "bench", "--all", "--degree", "4", "--runs", "3", "--batch", "2", "--seed", "polyeval")
	for _, name := range []string{"horner", "horner-fma", "estrin", "estrin-fma", "runtime"} {
		require.Contains(t, out, name+" duration stats over 3 runs:\n")
	}

	t.Run("RandomSeed", func(t *testing.T) {
		out := execute(t, "bench", "--scheme", "estrin", "--degree", "3", "--runs", "2", "--batch", "1", "--seed", "")
		require.Contains(t, out, "estrin duration stats over 2 runs:\n")
		require.Contains(t, out, "runtime duration stats over 2 runs:\n")
		require.NotContains(t, out, "horner")
	})
}

func TestParams(t *testing.T) {
	params := `{"Scheme":"estrin-fma","Domain":"int64","Coefficients":["1","2","3"]}`
	require.Equal(t, "17\n", execute(t, "eval", "--params", params, "--x", "2"))
	// flags and arguments override the literal
	require.Equal(t, "11\n", execute(t, "eval", "--params", params, "--scheme", "horner", "--x", "2", "1", "5"))
	require.Equal(t, "24.75\n", execute(t, "eval", "--params", params, "--domain", "float64", "--x", "2.5"))
}
