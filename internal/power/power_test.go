package power

import (
	"math"
	"testing"

	"github.com/agbru/bindtime/internal/testutil"
	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

func TestPowOfTwoIsExact(t *testing.T) {
	t.Parallel()
	for n := 0; n <= 20; n++ {
		want := float64(uint64(1) << n)
		if got := Pow(2, n); got != want {
			t.Errorf("Pow(2, %d) = %v, want %v", n, got, want)
		}
		if got := PowInline(2, n); got != want {
			t.Errorf("PowInline(2, %d) = %v, want %v", n, got, want)
		}
	}
}

func TestPowEdgeCases(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		x    float64
		n    int
		want float64
	}{
		{"Zero order", 123.45, 0, 1},
		{"Zero base", 0, 5, 0},
		{"Negative base even order", -3, 4, 81},
		{"Negative base odd order", -3, 3, -27},
		{"Overflow", 10, 400, math.Inf(1)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := Pow(tt.x, tt.n); got != tt.want {
				t.Errorf("Pow(%v, %d) = %v, want %v", tt.x, tt.n, got, tt.want)
			}
		})
	}
}

func TestStagedMatchesRuntimeRecursion(t *testing.T) {
	t.Parallel()
	for _, x := range []float64{0.5, 2, 42, QuarterPi} {
		checks := map[int]float64{
			0:   Staged[Order0](x),
			1:   Staged[Order1](x),
			10:  Staged[Order10](x),
			100: Staged[Order100](x),
			200: Staged[Order200](x),
		}
		for n, got := range checks {
			if want := Pow(x, n); got != want {
				t.Errorf("Staged[Order%d](%v) = %v, want %v", n, x, got, want)
			}
		}
	}
}

func TestConstantChains(t *testing.T) {
	t.Parallel()
	if Pow2N100 != 1<<100 {
		t.Error("Pow2N100 is not 2^100")
	}
	if got, want := float64(Pow42N10), Pow(42, 10); got != want {
		t.Errorf("Pow42N10 = %v, want %v", got, want)
	}
	if got, want := float64(PowQuarterPiN2), QuarterPi*QuarterPi; !testutil.AlmostEqual(got, want, 1e-15) {
		t.Errorf("PowQuarterPiN2 = %v, want %v", got, want)
	}
}

func TestStrategiesAgree(t *testing.T) {
	t.Parallel()
	m := Module{}
	want := math.Ldexp(1, 100)
	for _, s := range m.Strategies() {
		if got := s.Eval(); got != want {
			t.Errorf("%s = %v, want %v", s.Name, got, want)
		}
	}
	ref, ok := m.Reference()
	if !ok || ref != want {
		t.Errorf("Reference() = %v, %v", ref, ok)
	}
}

func TestTableMatchesDirectEvaluation(t *testing.T) {
	t.Parallel()
	if Table.Len() != TableSize {
		t.Fatalf("Table.Len() = %d, want %d", Table.Len(), TableSize)
	}
	for i := 0; i < TableSize; i++ {
		if got, want := Table.At(i), Pow(2, i); got != want {
			t.Errorf("Table.At(%d) = %v, want %v", i, got, want)
		}
	}
	if Table.Checksum() != Table.Checksum() {
		t.Error("table checksum changed between reads")
	}
}

// TestPowProperties checks the exponent laws that the recursion must respect
// for exactly representable powers of two.
func TestPowProperties(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	properties := gopter.NewProperties(parameters)

	properties.Property("Pow(2, a+b) == Pow(2, a) * Pow(2, b)", prop.ForAll(
		func(a, b int) bool {
			return Pow(2, a+b) == Pow(2, a)*Pow(2, b)
		},
		gen.IntRange(0, 400),
		gen.IntRange(0, 400),
	))

	properties.Property("Pow(x, n+1) == x * Pow(x, n)", prop.ForAll(
		func(x float64, n int) bool {
			return Pow(x, n+1) == x*Pow(x, n)
		},
		gen.Float64Range(-10, 10),
		gen.IntRange(0, 150),
	))

	properties.Property("inline hint does not change the value", prop.ForAll(
		func(x float64, n int) bool {
			return Pow(x, n) == PowInline(x, n)
		},
		gen.Float64Range(-10, 10),
		gen.IntRange(0, 150),
	))

	properties.TestingRun(t)
}
