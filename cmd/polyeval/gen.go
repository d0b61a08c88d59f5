package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/tuneinsight/polyeval/codegen"
)

var (
	genCmd = &cobra.Command{
		Use:   "gen [coefficients...]",
		Short: "Generates a Go function evaluating the polynomial",
		RunE:  runGenCmd,
	}
	genOpts codegen.Options
	genOut  string
)

func init() {
	flags := genCmd.Flags()
	flags.StringVar(&genOpts.Name, "name", "eval_poly", "name of the function")
	flags.StringVar(&genOpts.Package, "package", "main", "package of the generated file, none if empty")
	flags.BoolVar(&genOpts.Exported, "exported", false, "export the function")
	flags.StringVarP(&genOut, "out", "o", "", "output file, standard output if empty")
	rootCmd.AddCommand(genCmd)
}

func runGenCmd(cmd *cobra.Command, args []string) error {

	params, err := parameters(cmd, args)
	if err != nil {
		return err
	}

	src, err := params.Generate(genOpts)
	if err != nil {
		return err
	}

	if genOut == "" {
		_, err = cmd.OutOrStdout().Write(src)
		return err
	}

	return os.WriteFile(genOut, src, 0o644)
}
