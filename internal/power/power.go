// Package power evaluates the integer power x^n through the six binding-time
// strategies. Every strategy unfolds the same definition:
//
//	Pow(x, 0) = 1
//	Pow(x, n) = x * Pow(x, n-1)
package power

import "github.com/agbru/bindtime/internal/series"

// Pow returns x raised to the non-negative integer n by plain recursion.
// Negative n is not supported and does not terminate.
//
//go:noinline
func Pow(x float64, n int) float64 { return series.Pow(x, n) }

// PowInline unfolds the first step of Pow in a wrapper the compiler can
// inline into its caller. The remaining n-1 steps are ordinary recursive
// calls; recursive functions are never inlined.
func PowInline(x float64, n int) float64 {
	if n == 0 {
		return 1
	}
	return x * series.Pow(x, n-1)
}
