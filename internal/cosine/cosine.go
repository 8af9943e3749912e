// Package cosine approximates cos(x), x in radians, with the alternating
// Taylor series
//
//	Cos(x, n) = sum over k in [0, n] of (-1)^k * x^(2k) / (2k)!
//
// built from the power and factorial packages. The argument is not reduced
// modulo 2*Pi, so large |x| loses precision.
package cosine

import (
	"github.com/agbru/bindtime/internal/factorial"
	"github.com/agbru/bindtime/internal/power"
	"github.com/agbru/bindtime/internal/series"
)

// Radians converts whole degrees to radians the way the lookup table and the
// benchmark point do.
func Radians(deg int) float64 { return series.Radians(deg) }

// Cos returns the order-n Taylor approximation of cos(x).
//
//go:noinline
func Cos(x float64, n int) float64 { return series.Cos(x, n) }

// CosInline sums the same series with PowInline and FactorialInline, whose
// first step the compiler can inline. The sum itself is recursive and stays
// a call per term.
func CosInline(x float64, n int) float64 {
	if n == 0 {
		return 1
	}
	sum := CosInline(x, n-1)
	term := power.PowInline(x, 2*n) / factorial.FactorialInline(2*n)
	if n%2 == 0 {
		return sum + term
	}
	return sum - term
}
