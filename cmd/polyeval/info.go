package main

import (
	"fmt"
	"runtime"

	"github.com/samber/lo"
	"github.com/spf13/cobra"

	"github.com/tuneinsight/polyeval"
	"github.com/tuneinsight/polyeval/arith"
	"github.com/tuneinsight/polyeval/polynomial"
)

var infoCmd = &cobra.Command{
	Use:   "info",
	Short: "Prints the processor and the supported schemes and domains",
	Args:  cobra.NoArgs,
	Run:   runInfoCmd,
}

func init() {
	rootCmd.AddCommand(infoCmd)
}

func runInfoCmd(cmd *cobra.Command, _ []string) {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "cpu: %s (%s/%s)\n", arith.CPUName(), runtime.GOOS, runtime.GOARCH)
	fmt.Fprintf(out, "hardware fma: %t\n", arith.HardwareFMA())
	fmt.Fprintf(out, "schemes: %v\n", polynomial.Schemes())
	fmt.Fprintf(out, "domains: %v\n", polyeval.Domains())
	fmt.Fprintf(out, "code generation: %v\n", lo.Filter(polyeval.Domains(), func(d polyeval.Domain, _ int) bool { return d.Native() }))
}
