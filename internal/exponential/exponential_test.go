package exponential

import (
	"math"
	"testing"

	"github.com/agbru/bindtime/internal/testutil"
	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

func TestExpAtZeroIsOne(t *testing.T) {
	t.Parallel()
	for _, n := range []int{0, 1, 10, 100} {
		if got := Exp(0, n); got != 1 {
			t.Errorf("Exp(0, %d) = %v, want 1", n, got)
		}
	}
}

func TestExpTruncation(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		x    float64
		n    int
		want float64
	}{
		{"Order zero", 5, 0, 1},
		{"Order one", 5, 1, 6},
		{"Order two", 2, 2, 5},
		{"Negative order one", -1, 1, 0.5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := Exp(tt.x, tt.n); got != tt.want {
				t.Errorf("Exp(%v, %d) = %v, want %v", tt.x, tt.n, got, tt.want)
			}
		})
	}
}

func TestExpConvergesToMathExp(t *testing.T) {
	t.Parallel()
	for _, x := range []float64{-20, -1, 0.5, 1, 10, 42} {
		if got, want := Exp(x, 100), math.Exp(x); !testutil.AlmostEqual(got, want, 1e-12) {
			t.Errorf("Exp(%v, 100) = %v, want %v", x, got, want)
		}
	}
}

func TestStagedMatchesRuntimeRecursion(t *testing.T) {
	t.Parallel()
	for _, x := range []float64{-3, 0, 1.5, 42} {
		if got, want := Staged[Order10](x), Exp(x, 10); got != want {
			t.Errorf("Staged[Order10](%v) = %v, want %v", x, got, want)
		}
		if got, want := Staged[Order100](x), Exp(x, 100); got != want {
			t.Errorf("Staged[Order100](%v) = %v, want %v", x, got, want)
		}
	}
}

func TestStrategiesAgree(t *testing.T) {
	t.Parallel()
	m := Module{}
	want := Exp(BenchmarkX, BenchmarkOrder)
	for _, s := range m.Strategies() {
		if got := s.Eval(); !testutil.AlmostEqual(got, want, 1e-12) {
			t.Errorf("%s = %v, want %v", s.Name, got, want)
		}
	}
	ref, ok := m.Reference()
	if !ok || !testutil.AlmostEqual(ref, want, 1e-12) {
		t.Errorf("Reference() = %v, %v; want about %v", ref, ok, want)
	}
}

func TestGeneratedLiteralIsBitExact(t *testing.T) {
	t.Parallel()
	if got, want := generatedLiteral(), Exp(BenchmarkX, BenchmarkOrder); got != want {
		t.Errorf("generated literal %v differs from runtime value %v", got, want)
	}
}

func TestTableMatchesDirectEvaluation(t *testing.T) {
	t.Parallel()
	if Table.Len() != TableSize {
		t.Fatalf("Table.Len() = %d, want %d", Table.Len(), TableSize)
	}
	for i := 0; i < TableSize; i++ {
		if got, want := Table.At(i), Exp(float64(i), FullOrder); got != want {
			t.Errorf("Table.At(%d) = %v, want %v", i, got, want)
		}
	}
}

func TestExpProperties(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	properties := gopter.NewProperties(parameters)

	properties.Property("Exp(x, n) * Exp(-x, n) == 1", prop.ForAll(
		func(x float64, n int) bool {
			return testutil.AlmostEqual(Exp(x, n)*Exp(-x, n), 1, 1e-12)
		},
		gen.Float64Range(-30, 30),
		gen.IntRange(0, 120),
	))

	properties.Property("inline hint does not change the value", prop.ForAll(
		func(x float64, n int) bool {
			return Exp(x, n) == ExpInline(x, n)
		},
		gen.Float64Range(-30, 30),
		gen.IntRange(0, 120),
	))

	properties.TestingRun(t)
}
