package app

import (
	"bytes"
	"context"
	"encoding/json"
	"math"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	apperrors "github.com/agbru/bindtime/internal/errors"
	"github.com/agbru/bindtime/internal/testutil"
	"github.com/agbru/bindtime/pkg/models"
)

// The tests in this file are sequential: commands reset the global logger
// and theme.

func execute(t *testing.T, args ...string) (int, string, string) {
	t.Helper()
	var out, errOut bytes.Buffer
	code := Execute(append(args, "--no-color", "--log-level", "error"), &out, &errOut)
	return code, out.String(), errOut.String()
}

func TestRunModuleUsage(t *testing.T) {
	var out bytes.Buffer
	code := RunModule("cos", []string{"./cos"}, &out)
	assert.Equal(t, apperrors.ExitSuccess, code)
	assert.Equal(t, "./cos <loop_count>\n", out.String())
}

func TestRunModuleReport(t *testing.T) {
	tests := []struct {
		name    string
		arg     string
		heading string
		lines   int
	}{
		{"pow", "5", "Computing 5 times 2^100 : ", 2 + 7 + 1 + 6},
		{"factorial", "2", "Computing 2 times 100! : ", 2 + 6 + 1 + 6},
		{"exp", " 3xyz", "Computing 3 times exp(42) : ", 2 + 7 + 1 + 6},
		{"cos", "junk", "Computing 0 times cos(45) : ", 2 + 7 + 1 + 6},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			code := RunModule(tt.name, []string{"./" + tt.name, tt.arg}, &out)
			assert.Equal(t, apperrors.ExitSuccess, code)
			lines := strings.Split(strings.TrimSuffix(out.String(), "\n"), "\n")
			assert.Equal(t, tt.heading, lines[0])
			assert.Len(t, lines, tt.lines)
		})
	}
}

func TestExecuteRunText(t *testing.T) {
	code, out, _ := execute(t, "run", "POW", "2")
	require.Equal(t, apperrors.ExitSuccess, code)
	assert.True(t, strings.HasPrefix(out, "Computing 2 times 2^100 : \n\n1.26765e+30\n"), out)
	assert.Contains(t, out, "Generated literal : ")
}

func TestExecuteRunAllJSON(t *testing.T) {
	code, out, errOut := execute(t, "run", "all", "1", "--format", "json")
	require.Equal(t, apperrors.ExitSuccess, code, errOut)

	var report models.Report
	require.NoError(t, json.Unmarshal([]byte(out), &report))
	assert.Len(t, report.RunID, 36)
	require.Len(t, report.Modules, 4)
	for _, m := range report.Modules {
		assert.Len(t, m.Strategies, 6, m.Function)
		assert.Equal(t, 1, m.Loops, m.Function)
	}
}

func TestExecuteRunYAMLFromEnvironment(t *testing.T) {
	t.Setenv("BINDTIME_FORMAT", "yaml")
	t.Setenv("BINDTIME_LOOPS", "4")
	code, out, errOut := execute(t, "run", "exp")
	require.Equal(t, apperrors.ExitSuccess, code, errOut)

	var report models.Report
	require.NoError(t, yaml.Unmarshal([]byte(out), &report))
	require.Len(t, report.Modules, 1)
	assert.Equal(t, "exp", report.Modules[0].Function)
	assert.Equal(t, 4, report.Modules[0].Loops)
}

func TestExecuteRunAutoLoops(t *testing.T) {
	code, out, errOut := execute(t, "run", "pow", "--auto-loops", "--target", "1ms", "--max-loops", "64")
	require.Equal(t, apperrors.ExitSuccess, code, errOut)
	assert.Contains(t, out, "--- Calibration: pow ---")
	assert.Contains(t, out, "Computing ")
}

func TestExecuteConfigErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"unknown function", []string{"run", "sin"}},
		{"bad loop count", []string{"run", "pow", "many"}},
		{"negative loops", []string{"run", "pow", "-n", "-1"}},
		{"unknown flag", []string{"run", "--bogus"}},
		{"bad format", []string{"run", "pow", "1", "--format", "xml"}},
		{"unknown table", []string{"table", "tan"}},
		{"unknown verify target", []string{"verify", "tan"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, _, errOut := execute(t, tt.args...)
			assert.Equal(t, apperrors.ExitErrorConfig, code)
			assert.Contains(t, errOut, "Configuration error")
		})
	}
}

func TestExecuteVerify(t *testing.T) {
	code, out, errOut := execute(t, "verify")
	require.Equal(t, apperrors.ExitSuccess, code, errOut)
	assert.Contains(t, testutil.StripAnsiCodes(out), "Global Status: Success")

	code, out, _ = execute(t, "verify", "cos", "--format", "json")
	require.Equal(t, apperrors.ExitSuccess, code)
	var report models.VerifyReport
	require.NoError(t, json.Unmarshal([]byte(out), &report))
	assert.Len(t, report.Entries, 7)
	assert.Zero(t, report.Failures)
}

func TestExecuteVerifyJSONWithInfiniteTableSlots(t *testing.T) {
	code, out, errOut := execute(t, "verify", "--format", "json")
	require.Equal(t, apperrors.ExitSuccess, code, errOut)
	var report models.VerifyReport
	require.NoError(t, json.Unmarshal([]byte(out), &report))
	assert.Len(t, report.Entries, 28)
	assert.Zero(t, report.Failures)

	code, out, errOut = execute(t, "verify", "factorial", "--format", "json")
	require.Equal(t, apperrors.ExitSuccess, code, errOut)
	assert.Contains(t, out, `"+Inf"`)
	report = models.VerifyReport{}
	require.NoError(t, json.Unmarshal([]byte(out), &report))
	table := report.Entries[len(report.Entries)-1]
	assert.Equal(t, "table", table.Check)
	assert.True(t, table.OK)
	assert.True(t, math.IsInf(float64(table.Got), 1))
}

func TestExecuteTable(t *testing.T) {
	code, out, _ := execute(t, "table", "cos")
	require.Equal(t, apperrors.ExitSuccess, code)
	assert.Contains(t, out, "Size     : 181")

	code, out, _ = execute(t, "table", "factorial", "--values")
	require.Equal(t, apperrors.ExitSuccess, code)
	assert.Contains(t, out, "+Inf")
	assert.Greater(t, strings.Count(out, "\n"), 500)

	code, out, errOut := execute(t, "table", "factorial", "--values", "--format", "json")
	require.Equal(t, apperrors.ExitSuccess, code, errOut)
	var dump models.TableDump
	require.NoError(t, json.Unmarshal([]byte(out), &dump))
	require.Len(t, dump.Values, 500)
	assert.Equal(t, models.Float(120), dump.Values[5])
	assert.False(t, math.IsInf(float64(dump.Values[170]), 0))
	assert.True(t, math.IsInf(float64(dump.Values[171]), 1))
}

func TestExecuteVersion(t *testing.T) {
	code, out, _ := execute(t, "version")
	require.Equal(t, apperrors.ExitSuccess, code)
	assert.Contains(t, out, "bindtime dev")
	assert.Contains(t, out, "FMA:")

	code, out, _ = execute(t, "version", "--format", "json")
	require.Equal(t, apperrors.ExitSuccess, code)
	var v VersionData
	require.NoError(t, json.Unmarshal([]byte(out), &v))
	assert.Equal(t, GetVersionInfo(), v)
}

func TestWithLifecycleTimeout(t *testing.T) {
	ctx, stop := withLifecycle(context.Background(), 10*time.Millisecond)
	defer stop()
	select {
	case <-ctx.Done():
		assert.ErrorIs(t, ctx.Err(), context.DeadlineExceeded)
	case <-time.After(2 * time.Second):
		t.Fatal("context was not canceled by the timeout")
	}

	ctx, stop = withLifecycle(context.Background(), 0)
	stop()
	assert.Error(t, ctx.Err())
}
