package cosine

import (
	"math"

	"github.com/agbru/bindtime/internal/bench"
	"github.com/agbru/bindtime/internal/lut"
)

//go:generate go run ../../cmd/gen-specialized -pkg cosine

const (
	// FullOrder is the truncation order of every table slot.
	FullOrder = 100

	// BenchmarkDegrees and BenchmarkOrder define the benchmark point cos(45°).
	BenchmarkDegrees = 45
	BenchmarkOrder   = FullOrder
)

// benchX is computed at run time, like every table slot, so the table
// strategy reads the same argument the recursive strategies receive.
var benchX = Radians(BenchmarkDegrees)

func tableEntry(i int) float64 { return Cos(Radians(i), FullOrder) }

// Module exposes the cosine strategies to the benchmark harness.
type Module struct{}

var _ bench.Module = Module{}

func (Module) Name() string  { return "cos" }
func (Module) Title() string { return "cos(45)" }
func (Module) Order() int    { return BenchmarkOrder }

func (Module) Strategies() []bench.Strategy {
	return []bench.Strategy{
		{Name: bench.NameRuntime, Binding: bench.RunTime, Eval: runtimeRecursive},
		{Name: bench.NameInline, Binding: bench.RunTime, Eval: runtimeInline},
		{Name: bench.NameGeneric, Binding: bench.BuildTime, Eval: genericRecursion},
		{Name: bench.NameConstant, Binding: bench.BuildTime, Eval: constantChain},
		{Name: bench.NameTable, Binding: bench.InitTime, Eval: lookupTable},
		{Name: bench.NameLiteral, Binding: bench.BuildTime, Eval: generatedLiteral},
	}
}

func (Module) Reference() (float64, bool) { return math.Cos(benchX), true }

// Evaluate takes x in radians.
func (Module) Evaluate(x float64, order int) float64 { return Cos(x, order) }

func (Module) Table() lut.Table { return Table }

func (Module) TableEntry(i int) float64 { return tableEntry(i) }

func runtimeRecursive() float64 { return Cos(benchX, BenchmarkOrder) }
func runtimeInline() float64    { return CosInline(benchX, BenchmarkOrder) }
func genericRecursion() float64 { return Staged[Order100](benchX) }
func constantChain() float64    { return cosQuarterPiN100 }
func lookupTable() float64      { return Table.At(BenchmarkDegrees) }
func generatedLiteral() float64 { return literal45DegN100 }
