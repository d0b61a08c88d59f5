package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	exprCmd = &cobra.Command{
		Use:   "expr [coefficients...]",
		Short: "Prints the expression evaluating the polynomial",
		RunE:  runExprCmd,
	}
	showStats bool
)

func init() {
	exprCmd.Flags().BoolVar(&showStats, "stats", false, "print the operation counts and fingerprints")
	rootCmd.AddCommand(exprCmd)
}

func runExprCmd(cmd *cobra.Command, args []string) error {

	params, err := parameters(cmd, args)
	if err != nil {
		return err
	}

	d, err := params.Describe()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()

	fmt.Fprintln(out, d.Expression)

	if showStats {
		st := d.Stats
		fmt.Fprintf(out, "add: %d, mul: %d, fma: %d, bindings: %d, depth: %d\n", st.Add, st.Mul, st.MulAdd, st.Bindings, st.Depth)
		fmt.Fprintf(out, "fingerprint: %s\n", d.Fingerprint)
		fmt.Fprintf(out, "shape: %s\n", d.Shape)
	}

	return nil
}
