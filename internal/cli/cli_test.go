package cli

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"math"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	apperrors "github.com/agbru/bindtime/internal/errors"
	"github.com/agbru/bindtime/internal/factorial"
	"github.com/agbru/bindtime/internal/power"
	"github.com/agbru/bindtime/internal/testutil"
	"github.com/agbru/bindtime/pkg/models"
)

func TestParseLoopCount(t *testing.T) {
	t.Parallel()
	tests := []struct {
		in   string
		want int
	}{
		{"5", 5},
		{"1000000", 1000000},
		{"  42", 42},
		{"\t\n7", 7},
		{"+3", 3},
		{"-3", -3},
		{"12abc", 12},
		{"abc", 0},
		{"", 0},
		{"-", 0},
		{"+-1", 0},
		{"0x10", 0},
		{"3.9", 3},
		{"99999999999999999999999", math.MaxInt},
		{"-99999999999999999999999", math.MinInt},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			t.Parallel()
			if got := ParseLoopCount(tt.in); got != tt.want {
				t.Errorf("ParseLoopCount(%q) = %d, want %d", tt.in, got, tt.want)
			}
		})
	}
}

func TestPrintUsage(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	PrintUsage(&buf, "pow")
	assert.Equal(t, "./pow <loop_count>\n", buf.String())
}

func sampleReport() models.Report {
	ref := models.Float(4)
	started := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	return NewReport("run-1", started, []models.ModuleReport{{
		Function:  "pow",
		Title:     "2^2",
		Order:     2,
		Loops:     10,
		Reference: &ref,
		Strategies: []models.StrategyResult{
			{Name: "Runtime recursive", Binding: "run time", Value: 4, Loops: 10, DurationMs: 0.01, NsPerOp: 1},
		},
	}})
}

func TestNewReport(t *testing.T) {
	t.Parallel()
	r := sampleReport()
	assert.Equal(t, "run-1", r.RunID)
	assert.Equal(t, "2026-01-02T03:04:05Z", r.StartedAt)
	assert.NotEmpty(t, r.GoVersion)
	assert.Contains(t, r.Platform, "/")

	fresh := NewReport("", time.Now(), nil)
	assert.Len(t, fresh.RunID, 36)
}

func TestWriteStructuredJSON(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	require.NoError(t, WriteStructured(&buf, sampleReport(), "json"))

	var decoded models.Report
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, "pow", decoded.Modules[0].Function)
	require.NotNil(t, decoded.Modules[0].Reference)
	assert.Equal(t, models.Float(4), *decoded.Modules[0].Reference)
	assert.Contains(t, buf.String(), `"duration_ms": 0.01`)
}

func TestWriteStructuredYAML(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	require.NoError(t, WriteStructured(&buf, sampleReport(), "YAML"))

	var decoded models.Report
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, "run-1", decoded.RunID)
	assert.Equal(t, "run time", decoded.Modules[0].Strategies[0].Binding)
	assert.Contains(t, buf.String(), "run_id: run-1")
}

func TestWriteStructuredRejectsText(t *testing.T) {
	t.Parallel()
	err := WriteStructured(io.Discard, sampleReport(), "text")
	var verr apperrors.ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, "format", verr.Field)
}

func TestTableDump(t *testing.T) {
	t.Parallel()
	dump := NewTableDump(power.Module{}, false)
	assert.Equal(t, "pow", dump.Function)
	assert.Equal(t, power.TableSize, dump.Size)
	assert.Len(t, dump.Checksum, 16)
	assert.Nil(t, dump.Values)

	full := NewTableDump(power.Module{}, true)
	require.Len(t, full.Values, power.TableSize)
	assert.Equal(t, models.Float(1024), full.Values[10])
	assert.Equal(t, dump.Checksum, full.Checksum)
}

func TestWriteTableDumpText(t *testing.T) {
	t.Parallel()
	dump := models.TableDump{Function: "pow", Size: 3, Checksum: "00000000000000ff", Values: []models.Float{1, 2, 4}}
	var buf bytes.Buffer
	require.NoError(t, WriteTableDump(&buf, dump, "text"))

	out := testutil.StripAnsiCodes(buf.String())
	assert.Contains(t, out, "Function : pow")
	assert.Contains(t, out, "Checksum : 00000000000000ff")
	lines := strings.Split(strings.TrimSpace(out), "\n")
	assert.Equal(t, "2  4", strings.TrimSpace(lines[len(lines)-1]))
}

func TestWriteTableDumpJSONWithInfinities(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	require.NoError(t, WriteTableDump(&buf, NewTableDump(factorial.Module{}, true), "json"))

	var decoded models.TableDump
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	require.Len(t, decoded.Values, factorial.TableSize)
	assert.Equal(t, models.Float(3628800), decoded.Values[10])
	assert.True(t, math.IsInf(float64(decoded.Values[factorial.TableSize-1]), 1))
}

func TestWriteTableDumpJSON(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	require.NoError(t, WriteTableDump(&buf, models.TableDump{Function: "cos", Size: 181}, "json"))
	assert.NotContains(t, buf.String(), "values")
	assert.Contains(t, buf.String(), `"size": 181`)
}

type recordingSpinner struct {
	mu       sync.Mutex
	started  bool
	stopped  bool
	suffixes []string
}

func (r *recordingSpinner) Start() { r.mu.Lock(); r.started = true; r.mu.Unlock() }
func (r *recordingSpinner) Stop()  { r.mu.Lock(); r.stopped = true; r.mu.Unlock() }
func (r *recordingSpinner) UpdateSuffix(s string) {
	r.mu.Lock()
	r.suffixes = append(r.suffixes, s)
	r.mu.Unlock()
}

// Not parallel: replaces the package spinner constructor.
func TestProgress(t *testing.T) {
	rec := &recordingSpinner{}
	orig := newSpinner
	newSpinner = func(io.Writer) Spinner { return rec }
	defer func() { newSpinner = orig }()

	p := NewProgress(io.Discard, true, 2)
	p.Step("pow")
	p.Step("cos")
	p.Stop()

	assert.True(t, rec.started)
	assert.True(t, rec.stopped)
	assert.Equal(t, []string{" Starting...", " Benchmarking pow (1/2)", " Benchmarking cos (2/2)"}, rec.suffixes)
}

func TestDisabledProgressIsNil(t *testing.T) {
	t.Parallel()
	p := NewProgress(io.Discard, false, 4)
	assert.Nil(t, p)
	assert.NotPanics(t, func() {
		p.Step("pow")
		p.Stop()
	})
}
