package exponential

import (
	"github.com/agbru/bindtime/internal/factorial"
	"github.com/agbru/bindtime/internal/power"
)

// Order is the truncation order of the series encoded as a type. OrderN is
// step[OrderN-1, power.OrderN, factorial.OrderN]: each level carries the
// staged power and factorial of its own term.
type Order interface {
	series(x float64) float64
}

type base struct{}

func (base) series(float64) float64 { return 1 }

type step[P Order, W power.Order, F factorial.Order] struct{}

func (step[P, W, F]) series(x float64) float64 {
	var prev P
	return prev.series(x) + power.Staged[W](x)/factorial.Staged[F]()
}

// Order0 is the base of the order chain.
type Order0 = base

// Staged returns the order-N approximation of e^x, N being the depth of O.
func Staged[O Order](x float64) float64 {
	var o O
	if x < 0 {
		return 1 / o.series(-x)
	}
	return o.series(x)
}
