package power

import (
	"math"

	"github.com/agbru/bindtime/internal/bench"
	"github.com/agbru/bindtime/internal/lut"
)

//go:generate go run ../../cmd/gen-specialized -pkg power

const (
	// BenchmarkBase and BenchmarkOrder define the benchmark point 2^100.
	BenchmarkBase  = 2
	BenchmarkOrder = 100

	// QuarterPi is 45 degrees in radians, kept exact for the constant chains
	// consumed by the cosine package.
	QuarterPi = 45 * math.Pi / 180
)

func tableEntry(i int) float64 { return Pow(BenchmarkBase, i) }

// Module exposes the power strategies to the benchmark harness.
type Module struct{}

var _ bench.Module = Module{}

func (Module) Name() string  { return "pow" }
func (Module) Title() string { return "2^100" }
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

func (Module) Reference() (float64, bool) { return math.Pow(BenchmarkBase, BenchmarkOrder), true }

func (Module) Evaluate(x float64, order int) float64 { return Pow(x, order) }

func (Module) Table() lut.Table { return Table }

func (Module) TableEntry(i int) float64 { return tableEntry(i) }

func runtimeRecursive() float64 { return Pow(BenchmarkBase, BenchmarkOrder) }
func runtimeInline() float64    { return PowInline(BenchmarkBase, BenchmarkOrder) }
func genericRecursion() float64 { return Staged[Order100](BenchmarkBase) }
func constantChain() float64    { return Pow2N100 }
func lookupTable() float64      { return Table.At(BenchmarkOrder) }
func generatedLiteral() float64 { return literal2N100 }
