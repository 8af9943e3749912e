package cosine

import (
	"github.com/agbru/bindtime/internal/factorial"
	"github.com/agbru/bindtime/internal/power"
)

// Order is the truncation order of the series encoded as a type. OrderN is
// step[OrderN-1, power.Order2N, factorial.Order2N].
type Order interface {
	// series returns the partial sum and the index of its last term; the
	// index drives the sign.
	series(x float64) (float64, int)
}

type base struct{}

func (base) series(float64) (float64, int) { return 1, 0 }

type step[P Order, W power.Order, F factorial.Order] struct{}

func (step[P, W, F]) series(x float64) (float64, int) {
	var prev P
	sum, k := prev.series(x)
	k++
	term := power.Staged[W](x) / factorial.Staged[F]()
	if k%2 == 0 {
		return sum + term, k
	}
	return sum - term, k
}

// Order0 is the base of the order chain.
type Order0 = base

// Staged returns the order-N approximation of cos(x), N being the depth of O.
func Staged[O Order](x float64) float64 {
	var o O
	sum, _ := o.series(x)
	return sum
}
