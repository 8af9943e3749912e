// Package bench defines the evaluation strategies shared by the function
// modules and the single-threaded harness that times them.
package bench

import "github.com/agbru/bindtime/internal/lut"

// Binding is the point in the program's lifecycle at which a strategy's
// value becomes fixed.
type Binding int

const (
	// RunTime strategies compute on every call.
	RunTime Binding = iota
	// BuildTime strategies are resolved by the compiler or a code generator.
	BuildTime
	// InitTime strategies are materialized once during package initialization.
	InitTime
)

func (b Binding) String() string {
	switch b {
	case RunTime:
		return "run time"
	case BuildTime:
		return "build time"
	case InitTime:
		return "init time"
	default:
		return "unknown"
	}
}

// Strategy names, in report order.
const (
	NameRuntime  = "Runtime recursive"
	NameInline   = "Runtime recursive (inline hint)"
	NameGeneric  = "Generic recursion"
	NameConstant = "Constant chain"
	NameTable    = "Lookup table"
	NameLiteral  = "Generated literal"
)

// Strategy is one evaluation technique for a module's benchmark point.
// Eval takes no argument and has no side effect, so repeated calls have a
// stable cost.
type Strategy struct {
	Name    string
	Binding Binding
	Eval    func() float64
}

// Module is a function evaluated through several strategies.
type Module interface {
	// Name is the short identifier used on the command line ("pow", "cos").
	Name() string
	// Title describes the benchmark point, e.g. "2^100".
	Title() string
	// Order is the truncation order shared by every strategy.
	Order() int
	// Strategies lists the strategies in report order. The first one is the
	// plain runtime recursion used as the comparison baseline.
	Strategies() []Strategy
	// Reference returns the standard library's value for the benchmark
	// point, if there is one.
	Reference() (float64, bool)
	// Evaluate runs the runtime recursion at an arbitrary point. Modules of
	// a single argument ignore x.
	Evaluate(x float64, order int) float64
	// Table is the module's lookup table.
	Table() lut.Table
	// TableEntry evaluates the function the table materializes at slot i.
	TableEntry(i int) float64
}
