// Command polyeval generates, prints and evaluates polynomial expressions
// built with Horner's method or Estrin's scheme.
//
//	polyeval eval  --scheme estrin-fma --domain float64 --x 2 1 2 3
//	polyeval expr  --scheme estrin 1 1 1 1 1
//	polyeval gen   --scheme horner-fma --name exp_taylor --package approx 1 1 0.5
//	polyeval bench --scheme estrin --degree 16 --runs 1000
//	polyeval info
//
// Coefficients are listed from degree zero upward, as separate arguments or
// as a single comma separated list, optionally within brackets. Negative
// coefficients must follow a "--" argument.
package main

func main() {
	Execute()
}
