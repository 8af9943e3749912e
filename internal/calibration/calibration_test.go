package calibration

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/agbru/bindtime/internal/bench"
	"github.com/agbru/bindtime/internal/power"
	"github.com/agbru/bindtime/internal/ui"
)

func sleepy(d time.Duration) bench.Strategy {
	return bench.Strategy{Name: "sleepy", Eval: func() float64 {
		time.Sleep(d)
		return 1
	}}
}

func TestEstimateLoopsReachesTarget(t *testing.T) {
	t.Parallel()
	res, err := EstimateLoops(context.Background(), sleepy(time.Millisecond), 4*time.Millisecond, 1<<20)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Capped {
		t.Fatal("calibration should not hit the cap")
	}
	if res.Elapsed < 4*time.Millisecond {
		t.Errorf("elapsed %v below target", res.Elapsed)
	}
	// Counts are powers of two and each trial sleeps at least 1ms per loop.
	if res.Loops&(res.Loops-1) != 0 || res.Loops > 4 {
		t.Errorf("unexpected loop count %d", res.Loops)
	}
}

func TestEstimateLoopsIsCapped(t *testing.T) {
	t.Parallel()
	s := bench.Strategy{Name: "free", Eval: func() float64 { return 0 }}
	res, err := EstimateLoops(context.Background(), s, time.Hour, 100)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !res.Capped || res.Loops != 100 {
		t.Errorf("expected capped count 100, got %+v", res)
	}
}

func TestEstimateLoopsHonorsCancellation(t *testing.T) {
	t.Parallel()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := EstimateLoops(ctx, sleepy(0), time.Second, 10)
	if !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled, got %v", err)
	}
}

func TestCalibrateModuleKeepsSmallestCount(t *testing.T) {
	t.Parallel()
	loops, results, err := CalibrateModule(context.Background(), power.Module{}, time.Hour, 64, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(results) != 6 {
		t.Fatalf("expected 6 results, got %d", len(results))
	}
	if loops != 64 {
		t.Errorf("all strategies capped at 64, got %d", loops)
	}
}

func TestPrintResults(t *testing.T) {
	ui.SetTheme("none")
	defer ui.SetTheme("dark")

	var buf bytes.Buffer
	PrintResults(&buf, "pow", []Result{
		{Strategy: "Runtime recursive", Loops: 1024, Elapsed: 210 * time.Millisecond},
		{Strategy: "Lookup table", Loops: 4096, Elapsed: time.Millisecond, Capped: true},
	}, 1024)

	out := buf.String()
	for _, want := range []string{"Calibration: pow", "Runtime recursive", "(capped)", "Retained loop count: 1024"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}
