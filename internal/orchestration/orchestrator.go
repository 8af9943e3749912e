// Package orchestration drives the function modules: it runs the legacy
// benchmark report, collects structured reports and verifies that every
// strategy and lookup table agrees with the runtime recursion.
package orchestration

import (
	"context"
	"fmt"
	"io"
	"math"
	"text/tabwriter"

	"golang.org/x/sync/errgroup"

	"github.com/agbru/bindtime/internal/bench"
	apperrors "github.com/agbru/bindtime/internal/errors"
	"github.com/agbru/bindtime/internal/ui"
	"github.com/agbru/bindtime/pkg/models"
)

// RunBenchmark measures every strategy of m and writes the legacy report:
// a heading, one value per strategy, the reference value when the module
// has one, then one "<name> : <ms>ms" line per strategy. Values use six
// significant digits.
//
// Parameters:
//   - ctx: Cancels the run between strategies.
//   - m: The module to benchmark.
//   - loops: Evaluations per strategy; a non-positive count runs none.
//   - out: The destination of the report.
//
// Returns:
//   - error: The context error if the run was interrupted.
func RunBenchmark(ctx context.Context, m bench.Module, loops int, out io.Writer) error {
	timings, err := bench.MeasureAll(ctx, m, loops)
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "Computing %d times %s : \n\n", loops, m.Title())
	for _, t := range timings {
		fmt.Fprintf(out, "%.6g\n", t.Value)
	}
	if ref, ok := m.Reference(); ok {
		fmt.Fprintf(out, "%.6g\n", ref)
	}
	fmt.Fprintln(out)
	for _, t := range timings {
		fmt.Fprintf(out, "%s : %dms\n", t.Strategy, t.Duration.Milliseconds())
	}
	return nil
}

// Benchmark measures every strategy of m and returns a structured report.
func Benchmark(ctx context.Context, m bench.Module, loops int) (models.ModuleReport, error) {
	timings, err := bench.MeasureAll(ctx, m, loops)
	if err != nil {
		return models.ModuleReport{}, err
	}
	return NewModuleReport(m, loops, timings), nil
}

// NewModuleReport converts timings of m into a report.
func NewModuleReport(m bench.Module, loops int, timings []bench.Timing) models.ModuleReport {
	report := models.ModuleReport{
		Function:   m.Name(),
		Title:      m.Title(),
		Order:      m.Order(),
		Loops:      loops,
		Strategies: make([]models.StrategyResult, 0, len(timings)),
	}
	if ref, ok := m.Reference(); ok {
		r := models.Float(ref)
		report.Reference = &r
	}
	for _, t := range timings {
		res := models.StrategyResult{
			Name:       t.Strategy,
			Binding:    t.Binding.String(),
			Value:      models.Float(t.Value),
			Loops:      t.Loops,
			DurationMs: float64(t.Duration.Microseconds()) / 1000,
		}
		if t.Loops > 0 {
			res.NsPerOp = float64(t.Duration.Nanoseconds()) / float64(t.Loops)
		}
		report.Strategies = append(report.Strategies, res)
	}
	return report
}

// CheckTable is the name of the lookup-table entry of a verification.
const CheckTable = "table"

// VerifyModules evaluates every strategy of every module once and compares
// it with the module's first strategy, the runtime recursion, within the
// relative tolerance. It also checks that every lookup-table slot is
// bit-identical to direct evaluation. Modules are checked concurrently;
// the summary is written to out in module order.
//
// Parameters:
//   - ctx: Cancels the verification.
//   - modules: The modules to verify.
//   - tolerance: The relative distance allowed between strategies.
//   - out: The destination of the summary table.
//
// Returns:
//   - models.VerifyReport: Every check performed.
//   - error: A wrapped MismatchError for the first failure, or the context
//     error.
func VerifyModules(ctx context.Context, modules []bench.Module, tolerance float64, out io.Writer) (models.VerifyReport, error) {
	g, ctx := errgroup.WithContext(ctx)
	perModule := make([][]models.VerifyEntry, len(modules))
	firstFailure := make([]error, len(modules))

	for i, m := range modules {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			perModule[i], firstFailure[i] = verifyModule(m, tolerance)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return models.VerifyReport{}, err
	}

	report := models.VerifyReport{Tolerance: tolerance}
	var failure error
	for i, entries := range perModule {
		report.Entries = append(report.Entries, entries...)
		if firstFailure[i] != nil && failure == nil {
			failure = firstFailure[i]
		}
	}
	for _, e := range report.Entries {
		if !e.OK {
			report.Failures++
		}
	}

	printVerifySummary(out, report)
	if failure != nil {
		return report, apperrors.WrapError(failure, "verification failed with %d mismatch(es)", report.Failures)
	}
	return report, nil
}

func verifyModule(m bench.Module, tolerance float64) ([]models.VerifyEntry, error) {
	strategies := m.Strategies()
	entries := make([]models.VerifyEntry, 0, len(strategies)+1)
	var failure error
	if len(strategies) == 0 {
		return entries, nil
	}

	want := strategies[0].Eval()
	for _, s := range strategies {
		got := s.Eval()
		rel := relativeError(got, want)
		ok := rel <= tolerance
		entries = append(entries, models.VerifyEntry{
			Function: m.Name(),
			Check:    s.Name,
			Got:      models.Float(got),
			Want:     models.Float(want),
			RelError: models.Float(rel),
			OK:       ok,
		})
		if !ok && failure == nil {
			failure = apperrors.MismatchError{Function: m.Name(), Strategy: s.Name, Got: got, Want: want}
		}
	}

	table := m.Table()
	entry := models.VerifyEntry{Function: m.Name(), Check: CheckTable, OK: true}
	for i := 0; i < table.Len(); i++ {
		got, want := table.At(i), m.TableEntry(i)
		entry.Got, entry.Want = models.Float(got), models.Float(want)
		if math.Float64bits(got) != math.Float64bits(want) {
			entry.OK = false
			entry.RelError = models.Float(relativeError(got, want))
			if failure == nil {
				failure = apperrors.MismatchError{Function: m.Name(), Strategy: fmt.Sprintf("table[%d]", i), Got: got, Want: want}
			}
			break
		}
	}
	entries = append(entries, entry)
	return entries, failure
}

// relativeError returns |got-want| / |want|, or |got| when want is zero.
// Equal values, infinities included, have no error.
func relativeError(got, want float64) float64 {
	if got == want {
		return 0
	}
	if math.IsNaN(got) || math.IsNaN(want) || math.IsInf(got, 0) || math.IsInf(want, 0) {
		return math.Inf(1)
	}
	if want == 0 {
		return math.Abs(got)
	}
	return math.Abs(got-want) / math.Abs(want)
}

func printVerifySummary(out io.Writer, report models.VerifyReport) {
	theme := ui.CurrentTheme()
	fmt.Fprintf(out, "--- Verification (tolerance %g) ---\n", report.Tolerance)
	tw := tabwriter.NewWriter(out, 0, 0, 3, ' ', 0)
	fmt.Fprintf(tw, "%sFunction\tCheck\tValue\tRel. error\tStatus%s\n", theme.Bold, theme.Reset)
	for _, e := range report.Entries {
		status := fmt.Sprintf("%sOK%s", theme.Pass, theme.Reset)
		if !e.OK {
			status = fmt.Sprintf("%sMISMATCH (want %g)%s", theme.Fail, e.Want, theme.Reset)
		}
		fmt.Fprintf(tw, "%s\t%s\t%s%g%s\t%.2e\t%s\n",
			e.Function, e.Check, theme.Value, e.Got, theme.Reset, e.RelError, status)
	}
	if err := tw.Flush(); err != nil {
		fmt.Fprintf(out, "Warning: failed to flush tabwriter: %v\n", err)
	}

	if report.Failures > 0 {
		fmt.Fprintf(out, "\nGlobal Status: Failure. %d check(s) disagree.\n", report.Failures)
		return
	}
	fmt.Fprintf(out, "\nGlobal Status: Success. All strategies and tables agree.\n")
}
