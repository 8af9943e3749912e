// Package exponential approximates e^x with the Taylor series
//
//	Exp(x, n) = sum over k in [0, n] of x^k / k!
//
// built from the power and factorial packages. Negative arguments are
// evaluated as 1 / Exp(-x, n), where the series is better behaved.
package exponential

import (
	"github.com/agbru/bindtime/internal/factorial"
	"github.com/agbru/bindtime/internal/power"
	"github.com/agbru/bindtime/internal/series"
)

// Exp returns the order-n Taylor approximation of e^x.
//
//go:noinline
func Exp(x float64, n int) float64 { return series.Exp(x, n) }

// ExpInline sums the same series with PowInline and FactorialInline, whose
// first step the compiler can inline. The sum itself is recursive and stays
// a call per term.
func ExpInline(x float64, n int) float64 {
	if x < 0 {
		return 1 / seriesInline(-x, n)
	}
	return seriesInline(x, n)
}

func seriesInline(x float64, n int) float64 {
	if n == 0 {
		return 1
	}
	return seriesInline(x, n-1) + power.PowInline(x, n)/factorial.FactorialInline(n)
}
