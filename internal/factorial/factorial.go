// Package factorial evaluates n! through the six binding-time strategies.
// Results are float64 and overflow to +Inf beyond 170!.
package factorial

import "github.com/agbru/bindtime/internal/series"

// Factorial returns n! by plain recursion. Negative n is not supported.
//
//go:noinline
func Factorial(n int) float64 { return series.Factorial(n) }

// FactorialInline unfolds the first step of Factorial in an inlinable
// wrapper; the rest of the recursion is not inlined.
func FactorialInline(n int) float64 {
	if n == 0 {
		return 1
	}
	return float64(n) * series.Factorial(n-1)
}
