package power

// Order is a recursion depth encoded as a type. Order0 is the base case and
// each OrderN is step[OrderN-1], so every depth is a distinct instantiation
// resolved by the compiler. The constraint is satisfied only by this
// package's chain; other packages use it to stage their own recursions.
type Order interface {
	pow(x float64) float64
}

type base struct{}

func (base) pow(float64) float64 { return 1 }

type step[P Order] struct{}

func (step[P]) pow(x float64) float64 {
	var prev P
	return x * prev.pow(x)
}

// Order0 is the base of the order chain.
type Order0 = base

// Staged returns x^N where N is the depth of the order type O.
func Staged[O Order](x float64) float64 {
	var o O
	return o.pow(x)
}
