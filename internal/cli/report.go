package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"runtime"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"github.com/agbru/bindtime/internal/bench"
	apperrors "github.com/agbru/bindtime/internal/errors"
	"github.com/agbru/bindtime/internal/ui"
	"github.com/agbru/bindtime/pkg/models"
)

// NewReport wraps module reports into a run document stamped with runID,
// the start time and the build platform. An empty runID gets a fresh one.
func NewReport(runID string, startedAt time.Time, modules []models.ModuleReport) models.Report {
	if runID == "" {
		runID = uuid.NewString()
	}
	return models.Report{
		RunID:     runID,
		StartedAt: startedAt.UTC().Format(time.RFC3339),
		GoVersion: runtime.Version(),
		Platform:  runtime.GOOS + "/" + runtime.GOARCH,
		Modules:   modules,
	}
}

// WriteStructured encodes v as JSON or YAML.
//
// Parameters:
//   - out: The destination writer.
//   - v: The document to encode.
//   - format: "json" or "yaml".
//
// Returns:
//   - error: A ValidationError for another format, or the encoder's error.
func WriteStructured(out io.Writer, v any, format string) error {
	switch strings.ToLower(format) {
	case "json":
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case "yaml":
		enc := yaml.NewEncoder(out)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	default:
		return apperrors.NewValidationError("format", "structured output must be json or yaml", format)
	}
}

// NewTableDump describes the lookup table of m. Values are included only
// when withValues is set.
func NewTableDump(m bench.Module, withValues bool) models.TableDump {
	table := m.Table()
	dump := models.TableDump{
		Function: m.Name(),
		Size:     table.Len(),
		Checksum: fmt.Sprintf("%016x", table.Checksum()),
	}
	if withValues {
		dump.Values = models.Floats(table.Values())
	}
	return dump
}

// WriteTableDump prints dump as aligned text, or encodes it for the json
// and yaml formats.
func WriteTableDump(out io.Writer, dump models.TableDump, format string) error {
	if format != "" && format != "text" {
		return WriteStructured(out, dump, format)
	}
	theme := ui.CurrentTheme()
	fmt.Fprintf(out, "%sFunction%s : %s\n", theme.Bold, theme.Reset, dump.Function)
	fmt.Fprintf(out, "%sSize%s     : %d\n", theme.Bold, theme.Reset, dump.Size)
	fmt.Fprintf(out, "%sChecksum%s : %s\n", theme.Bold, theme.Reset, dump.Checksum)
	if len(dump.Values) == 0 {
		return nil
	}
	fmt.Fprintln(out)
	tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', tabwriter.AlignRight)
	for i, v := range dump.Values {
		fmt.Fprintf(tw, "%d\t%s%.17g%s\t\n", i, theme.Value, v, theme.Reset)
	}
	return tw.Flush()
}
