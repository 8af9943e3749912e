// Package calibration picks loop counts long enough for benchmark timings
// to rise above clock resolution.
package calibration

import (
	"context"
	"time"

	"github.com/agbru/bindtime/internal/bench"
	"github.com/agbru/bindtime/internal/logging"
)

// Result is the outcome of calibrating one strategy.
type Result struct {
	Strategy string
	// Loops is the first doubled count whose run reached the target, or the
	// cap when Capped is set.
	Loops   int
	Elapsed time.Duration
	Capped  bool
}

// runner times trial loops. It does not go through bench.Measure so that
// calibration trials stay out of the benchmark metrics.
type runner struct {
	ctx    context.Context
	logger logging.Logger
}

func (r *runner) runTrial(eval func() float64, loops int) time.Duration {
	var acc float64
	start := time.Now()
	for i := 0; i < loops; i++ {
		acc = eval()
	}
	elapsed := time.Since(start)
	trialSink = acc
	return elapsed
}

var trialSink float64

// EstimateLoops doubles the loop count, starting at one, until a single run
// of s takes at least target or the count reaches maxLoops.
//
// Parameters:
//   - ctx: Checked between trials; a done context aborts calibration.
//   - s: The strategy to calibrate.
//   - target: The minimum duration of one run.
//   - maxLoops: The largest count tried (values below 1 mean 1).
//
// Returns:
//   - Result: The chosen loop count and the duration it produced.
//   - error: The context error if calibration was interrupted.
func EstimateLoops(ctx context.Context, s bench.Strategy, target time.Duration, maxLoops int) (Result, error) {
	r := &runner{ctx: ctx}
	return r.estimate(s, target, maxLoops)
}

func (r *runner) estimate(s bench.Strategy, target time.Duration, maxLoops int) (Result, error) {
	if maxLoops < 1 {
		maxLoops = 1
	}
	loops := 1
	for {
		if err := r.ctx.Err(); err != nil {
			return Result{Strategy: s.Name}, err
		}
		elapsed := r.runTrial(s.Eval, loops)
		if r.logger != nil {
			r.logger.Debug("calibration trial",
				logging.String("strategy", s.Name),
				logging.Int("loops", loops),
				logging.Duration("elapsed", elapsed))
		}
		if elapsed >= target {
			return Result{Strategy: s.Name, Loops: loops, Elapsed: elapsed}, nil
		}
		if loops >= maxLoops {
			return Result{Strategy: s.Name, Loops: loops, Elapsed: elapsed, Capped: true}, nil
		}
		loops *= 2
		if loops > maxLoops {
			loops = maxLoops
		}
	}
}

// CalibrateModule calibrates every strategy of m and returns the smallest
// count found: the one at which the slowest strategy reaches target. All
// strategies of a module are then run with that single count so their
// timings stay comparable.
func CalibrateModule(ctx context.Context, m bench.Module, target time.Duration, maxLoops int, logger logging.Logger) (int, []Result, error) {
	r := &runner{ctx: ctx, logger: logger}
	strategies := m.Strategies()
	results := make([]Result, 0, len(strategies))
	loops := maxLoops
	for _, s := range strategies {
		res, err := r.estimate(s, target, maxLoops)
		if err != nil {
			return 0, results, err
		}
		results = append(results, res)
		if res.Loops < loops {
			loops = res.Loops
		}
	}
	if logger != nil {
		logger.Info("calibration completed",
			logging.String("function", m.Name()),
			logging.Int("loops", loops),
			logging.Duration("target", target))
	}
	return loops, results, nil
}
