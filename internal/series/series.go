// Package series holds the plain recursive definitions every strategy of
// the function packages unfolds. It has no imports inside the module, so
// cmd/gen-specialized can evaluate the same arithmetic while the packages it
// writes are missing or stale.
package series

import "math"

const toRad = math.Pi / 180

// Radians converts whole degrees to radians.
func Radians(deg int) float64 { return float64(deg) * toRad }

// Pow returns x^n for non-negative n. Negative n does not terminate.
func Pow(x float64, n int) float64 {
	if n == 0 {
		return 1
	}
	return x * Pow(x, n-1)
}

// Factorial returns n! as a float64; it is +Inf beyond 170!.
func Factorial(n int) float64 {
	if n == 0 {
		return 1
	}
	return float64(n) * Factorial(n-1)
}

// Exp returns the order-n Taylor approximation of e^x. Negative x is
// evaluated as 1 / Exp(-x, n).
func Exp(x float64, n int) float64 {
	if x < 0 {
		return 1 / expSum(-x, n)
	}
	return expSum(x, n)
}

func expSum(x float64, n int) float64 {
	if n == 0 {
		return 1
	}
	return expSum(x, n-1) + Pow(x, n)/Factorial(n)
}

// Cos returns the order-n Taylor approximation of cos(x).
func Cos(x float64, n int) float64 {
	if n == 0 {
		return 1
	}
	sum := Cos(x, n-1)
	term := Pow(x, 2*n) / Factorial(2*n)
	if n%2 == 0 {
		return sum + term
	}
	return sum - term
}
