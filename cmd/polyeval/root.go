package main

import (
	"encoding/json"
	"fmt"
	"log"
	"strings"

	"github.com/samber/lo"
	"github.com/spf13/cobra"

	"github.com/tuneinsight/polyeval"
	"github.com/tuneinsight/polyeval/polynomial"
)

var (
	rootCmd = &cobra.Command{
		Use:           "polyeval",
		Short:         "Generates and evaluates polynomials with Horner's method and Estrin's scheme",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rawParams string
	rawScheme string
	rawDomain string
	precision uint
)

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&rawParams, "params", "", "JSON parameters literal, overridden by the other flags and the arguments")
	flags.StringVar(&rawScheme, "scheme", polynomial.HornerScheme.String(), "evaluation scheme: horner, horner-fma, estrin or estrin-fma")
	flags.StringVar(&rawDomain, "domain", string(polyeval.Float64), fmt.Sprintf("numeric domain: %s", strings.Join(lo.Map(polyeval.Domains(), func(d polyeval.Domain, _ int) string { return string(d) }), ", ")))
	flags.UintVar(&precision, "precision", 0, "precision in bits of the bigfloat domain")
}

// Execute runs the command line and exits on error.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		log.Fatal(err)
	}
}

// parseCoefficients accepts "1 2 3", "1,2,3" and "[1, 2, 3,]" alike.
// Trailing commas are dropped; an empty item between two commas is kept so
// that it fails to parse.
func parseCoefficients(args []string) []string {
	return lo.FlatMap(args, func(arg string, _ int) []string {
		items := lo.Map(strings.Split(strings.Trim(arg, "[] "), ","), func(s string, _ int) string {
			return strings.TrimSpace(s)
		})
		if len(items) == 1 {
			if items[0] == "" && strings.HasPrefix(strings.TrimSpace(arg), "[") {
				// empty list
				return nil
			}
			return items
		}
		return lo.DropRightWhile(items, func(s string) bool { return s == "" })
	})
}

// parameters returns the parameters given by --params, the flags and the
// coefficients in args, in increasing priority.
func parameters(cmd *cobra.Command, args []string) (params polyeval.Parameters, err error) {

	var pl polyeval.ParametersLiteral

	fromJSON := rawParams != ""

	if fromJSON {
		if err = json.Unmarshal([]byte(rawParams), &pl); err != nil {
			return params, fmt.Errorf("cannot parse --params: %w", err)
		}
	}

	flags := cmd.Flags()

	if !fromJSON || flags.Changed("scheme") {
		if pl.Scheme, err = polynomial.ParseScheme(rawScheme); err != nil {
			return
		}
	}

	if !fromJSON || flags.Changed("domain") {
		pl.Domain = polyeval.Domain(rawDomain)
	}

	if flags.Changed("precision") {
		pl.Precision = precision
	}

	if coeffs := parseCoefficients(args); len(coeffs) != 0 {
		pl.Coefficients = coeffs
	}

	return polyeval.NewParametersFromLiteral(pl)
}
