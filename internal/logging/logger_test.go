package logging

import (
	"bytes"
	"encoding/json"
	"errors"
	stdlog "log"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	t.Parallel()
	tests := []struct {
		in      string
		want    zerolog.Level
		wantErr bool
	}{
		{"", zerolog.InfoLevel, false},
		{"debug", zerolog.DebugLevel, false},
		{" WARN ", zerolog.WarnLevel, false},
		{"disabled", zerolog.Disabled, false},
		{"loud", zerolog.NoLevel, true},
	}
	for _, tt := range tests {
		got, err := ParseLevel(tt.in)
		if tt.wantErr {
			assert.Error(t, err, tt.in)
			continue
		}
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}
}

func TestZerologAdapterWritesStructuredFields(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	logger := NewLogger(&buf, "bench").With(String("run_id", "abc"))
	logger.Info("measured",
		String("strategy", "Lookup table"),
		Int("loops", 10),
		Float64("value", 1.5),
		Duration("elapsed", 2*time.Millisecond),
	)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "info", entry["level"])
	assert.Equal(t, "bench", entry["component"])
	assert.Equal(t, "abc", entry["run_id"])
	assert.Equal(t, "Lookup table", entry["strategy"])
	assert.Equal(t, float64(10), entry["loops"])
	assert.Equal(t, "measured", entry["message"])
}

func TestZerologAdapterError(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	NewLogger(&buf, "server").Error("listen failed", errors.New("address in use"))

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "error", entry["level"])
	assert.Equal(t, "address in use", entry["error"])
}

func TestStdLoggerAdapter(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	var logger Logger = NewStdLoggerAdapter(stdlog.New(&buf, "", 0))
	logger.Warn("slow strategy", String("name", "Runtime recursive"))
	logger.Error("failed", errors.New("boom"), Int("code", 3))

	assert.Equal(t,
		"[WARN] slow strategy name=Runtime recursive\n[ERROR] failed: boom code=3\n",
		buf.String())
}
