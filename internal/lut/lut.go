// Package lut provides the builder chain used to materialize lookup tables
// during package initialization.
//
// A table is filled by a chain of builders: the seed writes slot 0, and each
// following builder can only be created from the Link returned by its
// predecessor. Function packages declare one package-level variable per
// builder, each initialized from the previous one, so Go's dependency-ordered
// package initialization fills every slot exactly once, in increasing index
// order, before any code in main runs. The exported Table is initialized from
// the last link and is therefore unreachable until the chain is complete.
package lut

import (
	"encoding/binary"
	"fmt"
	"math"

	"github.com/cespare/xxhash/v2"
)

// Link is the receipt a builder returns once its slot has been written.
type Link struct {
	index int
}

// Index returns the slot written by the builder that produced the link.
func (l Link) Index() int { return l.index }

// Chain writes the slots of a statically allocated array in order.
type Chain struct {
	slots  []float64
	fill   func(i int) float64
	next   int
	sealed bool
}

// NewChain returns a chain that fills slots with fill(i). The slice is
// expected to alias a package-level array; the chain never reallocates it.
func NewChain(slots []float64, fill func(i int) float64) *Chain {
	if len(slots) == 0 {
		panic("lut: chain over an empty table")
	}
	return &Chain{slots: slots, fill: fill}
}

// Seed writes slot 0. It has no predecessor.
func (c *Chain) Seed() Link {
	c.write(0)
	return Link{index: 0}
}

// Extend writes the slot following prev.
func (c *Chain) Extend(prev Link) Link {
	i := prev.index + 1
	c.write(i)
	return Link{index: i}
}

func (c *Chain) write(i int) {
	switch {
	case c.sealed:
		panic(fmt.Sprintf("lut: slot %d written after the table was sealed", i))
	case i != c.next:
		panic(fmt.Sprintf("lut: slot %d written out of order, expected slot %d", i, c.next))
	case i >= len(c.slots):
		panic(fmt.Sprintf("lut: slot %d beyond table size %d", i, len(c.slots)))
	}
	c.slots[i] = c.fill(i)
	c.next++
}

// Seal checks that last closed the chain and returns the read-only view.
// No slot can be written afterwards.
func (c *Chain) Seal(last Link) Table {
	if c.sealed {
		panic("lut: table sealed twice")
	}
	if last.index != len(c.slots)-1 || c.next != len(c.slots) {
		panic(fmt.Sprintf("lut: sealing an incomplete table (%d of %d slots)", c.next, len(c.slots)))
	}
	c.sealed = true
	return Table{slots: c.slots}
}

// Table is a read-only view over a fully built lookup table.
type Table struct {
	slots []float64
}

// At returns slot i. Indices outside [0, Len()) are a caller error.
func (t Table) At(i int) float64 { return t.slots[i] }

// Len returns the number of slots.
func (t Table) Len() int { return len(t.slots) }

// Values returns a copy of every slot.
func (t Table) Values() []float64 {
	out := make([]float64, len(t.slots))
	copy(out, t.slots)
	return out
}

// Checksum returns the xxhash64 digest of the slots' IEEE-754 bit patterns.
func (t Table) Checksum() uint64 {
	h := xxhash.New()
	var buf [8]byte
	for _, v := range t.slots {
		binary.LittleEndian.PutUint64(buf[:], math.Float64bits(v))
		_, _ = h.Write(buf[:])
	}
	return h.Sum64()
}
