package bench

import (
	"context"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/rs/zerolog/log"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

var (
	evaluationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "bindtime_strategy_evaluations_total",
			Help: "The total number of strategy evaluations performed by benchmark loops",
		},
		[]string{"function", "strategy"},
	)
	loopDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "bindtime_strategy_loop_seconds",
			Help:    "The wall-clock duration of one benchmark loop over a strategy",
			Buckets: prometheus.ExponentialBuckets(1e-6, 4, 14),
		},
		[]string{"function", "strategy"},
	)
)

// sink keeps benchmark results observable so the loop body is not removed.
var sink float64

// Timing is the outcome of one benchmark loop.
type Timing struct {
	Strategy string
	Binding  Binding
	Loops    int
	Value    float64
	Duration time.Duration
}

// Measure evaluates s loops times on the calling goroutine and returns the
// elapsed wall-clock time. A non-positive loop count runs zero iterations.
// Value is taken from one extra evaluation outside the timed loop.
func Measure(ctx context.Context, function string, s Strategy, loops int) Timing {
	_, span := otel.Tracer("bindtime/bench").Start(ctx, "Measure",
		trace.WithAttributes(
			attribute.String("function", function),
			attribute.String("strategy", s.Name),
			attribute.Int("loops", loops),
		),
		trace.WithSpanKind(trace.SpanKindInternal),
	)
	defer span.End()

	eval := s.Eval
	var acc float64
	start := time.Now()
	for i := 0; i < loops; i++ {
		acc = eval()
	}
	elapsed := time.Since(start)
	sink = acc

	if loops > 0 {
		evaluationsTotal.WithLabelValues(function, s.Name).Add(float64(loops))
	}
	loopDuration.WithLabelValues(function, s.Name).Observe(elapsed.Seconds())

	log.Debug().
		Str("function", function).
		Str("strategy", s.Name).
		Int("loops", loops).
		Dur("duration", elapsed).
		Msg("benchmark loop completed")

	return Timing{
		Strategy: s.Name,
		Binding:  s.Binding,
		Loops:    loops,
		Value:    eval(),
		Duration: elapsed,
	}
}

// MeasureAll measures every strategy of m in report order. It stops early,
// returning the timings gathered so far, if ctx is done between strategies.
func MeasureAll(ctx context.Context, m Module, loops int) ([]Timing, error) {
	strategies := m.Strategies()
	timings := make([]Timing, 0, len(strategies))
	for _, s := range strategies {
		if err := ctx.Err(); err != nil {
			return timings, err
		}
		timings = append(timings, Measure(ctx, m.Name(), s, loops))
	}
	return timings, nil
}
