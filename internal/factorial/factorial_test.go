package factorial

import (
	"math"
	"math/big"
	"testing"

	"github.com/agbru/bindtime/internal/testutil"
	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

// exactFactorial is the math/big oracle.
func exactFactorial(n int) float64 {
	f := new(big.Int).MulRange(1, int64(n))
	v, _ := new(big.Float).SetInt(f).Float64()
	return v
}

func TestFactorialExactUpTo18(t *testing.T) {
	t.Parallel()
	want := uint64(1)
	for n := 0; n <= 18; n++ {
		if n > 0 {
			want *= uint64(n)
		}
		if got := Factorial(n); got != float64(want) {
			t.Errorf("Factorial(%d) = %v, want %d", n, got, want)
		}
		if got := FactorialInline(n); got != float64(want) {
			t.Errorf("FactorialInline(%d) = %v, want %d", n, got, want)
		}
	}
}

func TestFactorialWithinToleranceUpTo170(t *testing.T) {
	t.Parallel()
	for n := 19; n <= 170; n++ {
		got, want := Factorial(n), exactFactorial(n)
		if !testutil.AlmostEqual(got, want, 1e-13) {
			t.Errorf("Factorial(%d) = %v, want %v (rel err %g)", n, got, want, testutil.RelativeError(got, want))
		}
	}
}

func TestFactorialOverflowsBeyond170(t *testing.T) {
	t.Parallel()
	for _, n := range []int{171, 200, 499} {
		if got := Factorial(n); !math.IsInf(got, 1) {
			t.Errorf("Factorial(%d) = %v, want +Inf", n, got)
		}
	}
}

func TestStagedMatchesRuntimeRecursion(t *testing.T) {
	t.Parallel()
	checks := map[int]float64{
		0:   Staged[Order0](),
		5:   Staged[Order5](),
		100: Staged[Order100](),
		170: Staged[Order170](),
		200: Staged[Order200](),
	}
	for n, got := range checks {
		if want := Factorial(n); got != want {
			t.Errorf("Staged[Order%d]() = %v, want %v", n, got, want)
		}
	}
}

func TestStrategiesAgree(t *testing.T) {
	t.Parallel()
	m := Module{}
	want := Factorial(BenchmarkOrder)
	for _, s := range m.Strategies() {
		if got := s.Eval(); !testutil.AlmostEqual(got, want, 1e-12) {
			t.Errorf("%s = %v, want %v", s.Name, got, want)
		}
	}
	if _, ok := m.Reference(); ok {
		t.Error("factorial must not report a reference value")
	}
}

func TestConstantChainIsCorrectlyRounded(t *testing.T) {
	t.Parallel()
	if got, want := float64(FactN100), exactFactorial(100); got != want {
		t.Errorf("FactN100 = %v, want %v", got, want)
	}
}

func TestTableMatchesDirectEvaluation(t *testing.T) {
	t.Parallel()
	if Table.Len() != TableSize {
		t.Fatalf("Table.Len() = %d, want %d", Table.Len(), TableSize)
	}
	for i := 0; i < TableSize; i++ {
		if got, want := Table.At(i), Factorial(i); got != want {
			t.Errorf("Table.At(%d) = %v, want %v", i, got, want)
		}
	}
}

func TestFactorialProperties(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	properties := gopter.NewProperties(parameters)

	properties.Property("Factorial(n) == n * Factorial(n-1)", prop.ForAll(
		func(n int) bool {
			return Factorial(n) == float64(n)*Factorial(n-1)
		},
		gen.IntRange(1, 300),
	))

	properties.Property("Factorial is non-decreasing", prop.ForAll(
		func(n int) bool {
			return Factorial(n+1) >= Factorial(n)
		},
		gen.IntRange(0, 300),
	))

	properties.TestingRun(t)
}
