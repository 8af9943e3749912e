package factorial

import (
	"github.com/agbru/bindtime/internal/bench"
	"github.com/agbru/bindtime/internal/lut"
)

//go:generate go run ../../cmd/gen-specialized -pkg factorial

// BenchmarkOrder defines the benchmark point 100!.
const BenchmarkOrder = 100

func tableEntry(i int) float64 { return Factorial(i) }

// Module exposes the factorial strategies to the benchmark harness.
type Module struct{}

var _ bench.Module = Module{}

func (Module) Name() string  { return "factorial" }
func (Module) Title() string { return "100!" }
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

// Reference reports no value: the standard library has no factorial.
func (Module) Reference() (float64, bool) { return 0, false }

// Evaluate ignores x; factorial takes only the order.
func (Module) Evaluate(_ float64, order int) float64 { return Factorial(order) }

func (Module) Table() lut.Table { return Table }

func (Module) TableEntry(i int) float64 { return tableEntry(i) }

func runtimeRecursive() float64 { return Factorial(BenchmarkOrder) }
func runtimeInline() float64    { return FactorialInline(BenchmarkOrder) }
func genericRecursion() float64 { return Staged[Order100]() }
func constantChain() float64    { return FactN100 }
func lookupTable() float64      { return Table.At(BenchmarkOrder) }
func generatedLiteral() float64 { return literalN100 }
