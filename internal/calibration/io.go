package calibration

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/agbru/bindtime/internal/ui"
)

// PrintResults writes the per-strategy calibration table and the loop
// count retained for the module.
func PrintResults(out io.Writer, function string, results []Result, loops int) {
	theme := ui.CurrentTheme()
	fmt.Fprintf(out, "\n--- Calibration: %s ---\n", function)
	tw := tabwriter.NewWriter(out, 0, 0, 3, ' ', 0)
	fmt.Fprintf(tw, "  %sStrategy%s\tLoops\tElapsed\t\n", theme.Bold, theme.Reset)
	for _, res := range results {
		note := ""
		if res.Capped {
			note = fmt.Sprintf(" %s(capped)%s", theme.Warn, theme.Reset)
		}
		fmt.Fprintf(tw, "  %s\t%d\t%s%s%s%s\t\n", res.Strategy, res.Loops, theme.Timing, res.Elapsed, theme.Reset, note)
	}
	tw.Flush()
	fmt.Fprintf(out, "%sRetained loop count%s: %d\n", theme.Pass, theme.Reset, loops)
}
