package service

import (
	"context"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agbru/bindtime/internal/bench"
	"github.com/agbru/bindtime/internal/suite"
)

func newTestService() *EvaluationService {
	return NewEvaluationService(suite.NewDefaultRegistry(), 200, 1000)
}

func TestEvaluate(t *testing.T) {
	t.Parallel()
	svc := newTestService()
	tests := []struct {
		name     string
		function string
		x        float64
		order    int
		want     float64
		wantErr  error
	}{
		{"power", "pow", 2, 10, 1024, nil},
		{"factorial ignores x", "factorial", 99, 5, 120, nil},
		{"exp at zero", "exp", 0, 30, 1, nil},
		{"cos at zero", "cos", 0, 30, 1, nil},
		{"order zero", "pow", 3, 0, 1, nil},
		{"unknown function", "sin", 1, 1, 0, ErrUnknownFunction},
		{"negative order", "pow", 2, -1, 0, ErrNegativeOrder},
		{"order too large", "pow", 2, 201, 0, ErrOrderTooLarge},
		{"NaN argument", "exp", math.NaN(), 3, 0, ErrNonFiniteArgument},
		{"infinite argument", "cos", math.Inf(-1), 3, 0, ErrNonFiniteArgument},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := svc.Evaluate(tt.function, tt.x, tt.order)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, float64(got.Value))
			assert.Equal(t, tt.function, got.Function)
			assert.Equal(t, tt.order, got.Order)
		})
	}
}

func TestBenchmark(t *testing.T) {
	t.Parallel()
	svc := newTestService()

	report, err := svc.Benchmark(context.Background(), "exp", 3)
	require.NoError(t, err)
	assert.Equal(t, "exp", report.Function)
	assert.Equal(t, "exp(42)", report.Title)
	require.Len(t, report.Strategies, 6)
	assert.Equal(t, bench.NameRuntime, report.Strategies[0].Name)
	require.NotNil(t, report.Reference)
	assert.InEpsilon(t, math.Exp(42), float64(report.Strategies[0].Value), 1e-12)

	_, err = svc.Benchmark(context.Background(), "exp", 1001)
	assert.ErrorIs(t, err, ErrLoopsTooLarge)
	_, err = svc.Benchmark(context.Background(), "exp", -1)
	assert.ErrorIs(t, err, ErrNegativeLoops)
	_, err = svc.Benchmark(context.Background(), "tan", 1)
	assert.ErrorIs(t, err, ErrUnknownFunction)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = svc.Benchmark(ctx, "pow", 1)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestTableEntry(t *testing.T) {
	t.Parallel()
	svc := newTestService()

	entry, err := svc.TableEntry("pow", 10)
	require.NoError(t, err)
	assert.Equal(t, 1024.0, float64(entry.Value))

	entry, err = svc.TableEntry("cos", 180)
	require.NoError(t, err)
	assert.InDelta(t, -1, float64(entry.Value), 1e-12)

	_, err = svc.TableEntry("cos", 181)
	assert.ErrorIs(t, err, ErrIndexOutOfRange)
	_, err = svc.TableEntry("pow", -1)
	assert.ErrorIs(t, err, ErrIndexOutOfRange)
	_, err = svc.TableEntry("nope", 0)
	assert.ErrorIs(t, err, ErrUnknownFunction)
}

func TestFunctions(t *testing.T) {
	t.Parallel()
	infos := newTestService().Functions()
	require.Len(t, infos, 4)

	names := make([]string, len(infos))
	for i, info := range infos {
		names[i] = info.Name
		assert.Len(t, info.Strategies, 6, info.Name)
		assert.Positive(t, info.TableSize, info.Name)
	}
	assert.Equal(t, []string{"cos", "exp", "factorial", "pow"}, names)
	assert.Equal(t, 181, infos[0].TableSize)
}

func TestEvaluateIsCached(t *testing.T) {
	t.Parallel()
	svc := newTestService()
	require.Zero(t, svc.CachedEvaluations())

	first, err := svc.Evaluate("cos", 0.5, 20)
	require.NoError(t, err)
	second, err := svc.Evaluate("cos", 0.5, 20)
	require.NoError(t, err)
	assert.Equal(t, first, second)
	assert.Equal(t, 1, svc.CachedEvaluations())

	_, err = svc.Evaluate("cos", 0.5, 21)
	require.NoError(t, err)
	assert.Equal(t, 2, svc.CachedEvaluations())

	_, err = svc.Evaluate("cos", 0.5, -1)
	require.Error(t, err)
	assert.Equal(t, 2, svc.CachedEvaluations())
}
