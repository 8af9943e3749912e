package exponential

import (
	"math"

	"github.com/agbru/bindtime/internal/bench"
	"github.com/agbru/bindtime/internal/lut"
)

//go:generate go run ../../cmd/gen-specialized -pkg exponential

const (
	// FullOrder is the truncation order of every table slot.
	FullOrder = 100

	// BenchmarkX and BenchmarkOrder define the benchmark point exp(42).
	BenchmarkX     = 42
	BenchmarkOrder = FullOrder
)

func tableEntry(i int) float64 { return Exp(float64(i), FullOrder) }

// Module exposes the exponential strategies to the benchmark harness.
type Module struct{}

var _ bench.Module = Module{}

func (Module) Name() string  { return "exp" }
func (Module) Title() string { return "exp(42)" }
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

func (Module) Reference() (float64, bool) { return math.Exp(BenchmarkX), true }

func (Module) Evaluate(x float64, order int) float64 { return Exp(x, order) }

func (Module) Table() lut.Table { return Table }

func (Module) TableEntry(i int) float64 { return tableEntry(i) }

func runtimeRecursive() float64 { return Exp(BenchmarkX, BenchmarkOrder) }
func runtimeInline() float64    { return ExpInline(BenchmarkX, BenchmarkOrder) }
func genericRecursion() float64 { return Staged[Order100](BenchmarkX) }
func constantChain() float64    { return exp42N100 }
func lookupTable() float64      { return Table.At(BenchmarkX) }
func generatedLiteral() float64 { return literal42N100 }
