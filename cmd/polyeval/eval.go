package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	evalCmd = &cobra.Command{
		Use:   "eval --x value [coefficients...]",
		Short: "Evaluates the polynomial at one or more points",
		RunE:  runEvalCmd,
	}
	rawX []string
)

func init() {
	evalCmd.Flags().StringArrayVar(&rawX, "x", nil, "point at which the polynomial is evaluated, may be repeated")

	if err := evalCmd.MarkFlagRequired("x"); err != nil {
		panic(err)
	}

	rootCmd.AddCommand(evalCmd)
}

func runEvalCmd(cmd *cobra.Command, args []string) error {

	params, err := parameters(cmd, args)
	if err != nil {
		return err
	}

	for _, x := range rawX {
		y, err := params.Evaluate(x)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), y)
	}

	return nil
}
