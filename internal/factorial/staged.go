package factorial

// Order is a recursion depth encoded as a type, following the same chain
// layout as the power package: Order0 is the base and OrderN is
// step[OrderN-1].
type Order interface {
	// factorial returns the value at this depth together with the depth
	// itself, so each level costs one multiplication.
	factorial() (float64, int)
}

type base struct{}

func (base) factorial() (float64, int) { return 1, 0 }

type step[P Order] struct{}

func (step[P]) factorial() (float64, int) {
	var prev P
	v, n := prev.factorial()
	n++
	return float64(n) * v, n
}

// Order0 is the base of the order chain.
type Order0 = base

// Staged returns N! where N is the depth of the order type O.
func Staged[O Order]() float64 {
	var o O
	v, _ := o.factorial()
	return v
}
