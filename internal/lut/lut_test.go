package lut

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func square(i int) float64 { return float64(i * i) }

func buildSquares(t *testing.T, n int) Table {
	t.Helper()
	slots := make([]float64, n)
	c := NewChain(slots, square)
	link := c.Seed()
	for i := 1; i < n; i++ {
		link = c.Extend(link)
	}
	return c.Seal(link)
}

func TestChainFillsEverySlotInOrder(t *testing.T) {
	t.Parallel()
	var order []int
	slots := make([]float64, 5)
	c := NewChain(slots, func(i int) float64 {
		order = append(order, i)
		return square(i)
	})

	l0 := c.Seed()
	l1 := c.Extend(l0)
	l2 := c.Extend(l1)
	l3 := c.Extend(l2)
	l4 := c.Extend(l3)
	table := c.Seal(l4)

	assert.Equal(t, []int{0, 1, 2, 3, 4}, order)
	assert.Equal(t, 4, l4.Index())
	require.Equal(t, 5, table.Len())
	for i := 0; i < table.Len(); i++ {
		assert.Equal(t, square(i), table.At(i))
	}
}

func TestChainRejectsOutOfOrderWrites(t *testing.T) {
	t.Parallel()
	c := NewChain(make([]float64, 3), square)
	l0 := c.Seed()
	c.Extend(l0)

	assert.Panics(t, func() { c.Extend(l0) }, "slot 1 written twice")
	assert.Panics(t, func() { c.Seed() }, "seed after extension")
}

func TestChainRejectsOverflow(t *testing.T) {
	t.Parallel()
	c := NewChain(make([]float64, 1), square)
	l0 := c.Seed()
	assert.Panics(t, func() { c.Extend(l0) })
}

func TestSealRequiresCompleteChain(t *testing.T) {
	t.Parallel()
	c := NewChain(make([]float64, 3), square)
	l1 := c.Extend(c.Seed())
	assert.Panics(t, func() { c.Seal(l1) })

	l2 := c.Extend(l1)
	c.Seal(l2)
	assert.Panics(t, func() { c.Seal(l2) }, "double seal")
	assert.Panics(t, func() { c.Extend(l2) }, "write after seal")
}

func TestNewChainRejectsEmptyTable(t *testing.T) {
	t.Parallel()
	assert.Panics(t, func() { NewChain(nil, square) })
}

func TestValuesReturnsCopy(t *testing.T) {
	t.Parallel()
	table := buildSquares(t, 4)
	values := table.Values()
	values[2] = -1

	assert.Equal(t, 4.0, table.At(2))
	assert.Equal(t, []float64{0, 1, 4, 9}, table.Values())
}

func TestChecksumIsStable(t *testing.T) {
	t.Parallel()
	a := buildSquares(t, 64)
	b := buildSquares(t, 64)

	assert.Equal(t, a.Checksum(), a.Checksum())
	assert.Equal(t, a.Checksum(), b.Checksum())

	c := buildSquares(t, 63)
	assert.NotEqual(t, a.Checksum(), c.Checksum())
}
