package bench

import (
	"context"
	"errors"
	"testing"
)

func countingStrategy(calls *int) Strategy {
	return Strategy{
		Name:    "counter",
		Binding: RunTime,
		Eval: func() float64 {
			*calls++
			return 42
		},
	}
}

func TestMeasureRunsExactlyLoopsPlusSample(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name      string
		loops     int
		wantCalls int
	}{
		{"Zero loops", 0, 1},
		{"Negative loops", -5, 1},
		{"Several loops", 7, 8},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			calls := 0
			timing := Measure(context.Background(), "test", countingStrategy(&calls), tt.loops)
			if calls != tt.wantCalls {
				t.Errorf("expected %d evaluations, got %d", tt.wantCalls, calls)
			}
			if timing.Value != 42 {
				t.Errorf("expected sampled value 42, got %v", timing.Value)
			}
			if timing.Loops != tt.loops {
				t.Errorf("expected loops %d, got %d", tt.loops, timing.Loops)
			}
			if timing.Strategy != "counter" || timing.Binding != RunTime {
				t.Errorf("unexpected timing metadata: %+v", timing)
			}
		})
	}
}

func TestBindingString(t *testing.T) {
	t.Parallel()
	cases := map[Binding]string{
		RunTime:     "run time",
		BuildTime:   "build time",
		InitTime:    "init time",
		Binding(99): "unknown",
	}
	for b, want := range cases {
		if got := b.String(); got != want {
			t.Errorf("Binding(%d).String() = %q, want %q", int(b), got, want)
		}
	}
}

func TestMeasureAllStopsOnCanceledContext(t *testing.T) {
	t.Parallel()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	timings, err := MeasureAll(ctx, stubModule{}, 10)
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
	if len(timings) != 0 {
		t.Errorf("expected no timings, got %d", len(timings))
	}
}

func TestMeasureAllKeepsReportOrder(t *testing.T) {
	t.Parallel()
	timings, err := MeasureAll(context.Background(), stubModule{}, 3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(timings) != 2 || timings[0].Strategy != "first" || timings[1].Strategy != "second" {
		t.Errorf("unexpected timings: %+v", timings)
	}
}
