package main

import (
	"fmt"
	"io"
	"log"
	"time"

	"github.com/montanaflynn/stats"
	"github.com/spf13/cobra"

	"github.com/tuneinsight/polyeval/arith"
	"github.com/tuneinsight/polyeval/expr"
	"github.com/tuneinsight/polyeval/polynomial"
	"github.com/tuneinsight/polyeval/utils/sampling"
)

var (
	benchCmd = &cobra.Command{
		Use:   "bench",
		Short: "Times the evaluation of a random float64 polynomial",
		Args:  cobra.NoArgs,
		RunE:  runBenchCmd,
	}
	benchDegree int
	benchRuns   int
	benchBatch  int
	benchSeed   string
	benchAll    bool
)

// sink keeps the benchmarked evaluations alive.
var sink float64

func init() {
	flags := benchCmd.Flags()
	flags.IntVar(&benchDegree, "degree", 16, "degree of the polynomial")
	flags.IntVar(&benchRuns, "runs", 1000, "number of timed runs")
	flags.IntVar(&benchBatch, "batch", 100, "number of evaluations per timed run")
	flags.StringVar(&benchSeed, "seed", "polyeval", "seed of the coefficients and points, random if empty")
	flags.BoolVar(&benchAll, "all", false, "time every scheme, ignoring --scheme")
	rootCmd.AddCommand(benchCmd)
}

func runBenchCmd(cmd *cobra.Command, _ []string) (err error) {

	if benchDegree < 0 || benchRuns < 1 || benchBatch < 1 {
		return fmt.Errorf("cannot bench: invalid degree=%d, runs=%d or batch=%d", benchDegree, benchRuns, benchBatch)
	}

	var prng io.Reader
	if benchSeed == "" {
		log.Println("empty seed, sampling from crypto/rand")
		prng = sampling.NewPRNG()
	} else if prng, err = sampling.NewKeyedPRNG([]byte(benchSeed)); err != nil {
		return err
	}

	coeffs := sampling.Float64s(prng, benchDegree+1, -1, 1)
	points := sampling.Float64s(prng, benchBatch, -1, 1)

	schemes := polynomial.Schemes()
	if !benchAll {
		var scheme polynomial.Scheme
		if scheme, err = polynomial.ParseScheme(rawScheme); err != nil {
			return
		}
		schemes = []polynomial.Scheme{scheme}
	}

	log.Printf("degree %d, %d runs of %d evaluations, hardware fma: %t", benchDegree, benchRuns, benchBatch, arith.HardwareFMA())

	var x float64
	variable := expr.NewFunc("x", func() float64 { return x })

	for _, scheme := range schemes {

		var n expr.Node[float64]
		if n, err = polynomial.Compile[float64](scheme, arith.Float64{}, variable, expr.Constants(coeffs...)...); err != nil {
			return
		}

		log.Println("timing", scheme)

		if err = printTimingStats(cmd, scheme.String(), func() {
			for _, x = range points {
				sink += expr.Evaluate(n)
			}
		}); err != nil {
			return
		}
	}

	log.Println("timing runtime evaluation")

	return printTimingStats(cmd, "runtime", func() {
		for _, x = range points {
			sink += polynomial.EvaluateSequence(coeffs, x)
		}
	})
}

// printTimingStats times benchRuns calls of batch and prints the mean,
// median, standard deviation and 99th percentile of the duration of one
// evaluation.
func printTimingStats(cmd *cobra.Command, name string, batch func()) (err error) {

	durations := make([]float64, benchRuns)
	for i := range durations {
		start := time.Now()
		batch()
		durations[i] = float64(time.Since(start).Nanoseconds()) / float64(benchBatch)
	}

	var mean, median, stddev, p99 float64

	if mean, err = stats.Mean(durations); err != nil {
		return
	}
	if median, err = stats.Median(durations); err != nil {
		return
	}
	if stddev, err = stats.StandardDeviation(durations); err != nil {
		return
	}
	if p99, err = stats.Percentile(durations, 99); err != nil {
		return
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%s duration stats over %d runs:\n", name, benchRuns)
	fmt.Fprintf(out, "  Mean: %.3f ns\n", mean)
	fmt.Fprintf(out, "  Median: %.3f ns\n", median)
	fmt.Fprintf(out, "  Standard Deviation: %.3f ns\n", stddev)
	fmt.Fprintf(out, "  99th Percentile: %.3f ns\n", p99)

	return
}
