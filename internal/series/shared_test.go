package series_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agbru/bindtime/internal/bench"
	"github.com/agbru/bindtime/internal/cosine"
	"github.com/agbru/bindtime/internal/exponential"
	"github.com/agbru/bindtime/internal/factorial"
	"github.com/agbru/bindtime/internal/power"
	"github.com/agbru/bindtime/internal/series"
)

func strategy(t *testing.T, m bench.Module, name string) bench.Strategy {
	t.Helper()
	for _, s := range m.Strategies() {
		if s.Name == name {
			return s
		}
	}
	require.FailNow(t, "missing strategy", "%s has no %q", m.Name(), name)
	return bench.Strategy{}
}

// The generator and the function packages share these recursions, so the
// generated literals and table slots must match them bit for bit.
func TestGeneratedValuesMatchSharedRecursions(t *testing.T) {
	t.Parallel()
	tests := []struct {
		module bench.Module
		want   float64
		slot   int
		slotOf func(i int) float64
	}{
		{power.Module{}, series.Pow(2, 100), 77, func(i int) float64 { return series.Pow(2, i) }},
		{factorial.Module{}, series.Factorial(100), 171, series.Factorial},
		{exponential.Module{}, series.Exp(42, 100), 3, func(i int) float64 { return series.Exp(float64(i), exponential.FullOrder) }},
		{cosine.Module{}, series.Cos(series.Radians(45), 100), 60, func(i int) float64 { return series.Cos(series.Radians(i), cosine.FullOrder) }},
	}
	for _, tt := range tests {
		t.Run(tt.module.Name(), func(t *testing.T) {
			t.Parallel()
			for _, name := range []string{bench.NameRuntime, bench.NameInline, bench.NameLiteral} {
				got := strategy(t, tt.module, name).Eval()
				assert.Equal(t, math.Float64bits(tt.want), math.Float64bits(got), name)
			}
			got := tt.module.Table().At(tt.slot)
			assert.Equal(t, math.Float64bits(tt.slotOf(tt.slot)), math.Float64bits(got), "table[%d]", tt.slot)
		})
	}
}
