package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/agbru/bindtime/internal/errors"
)

var functions = []string{"cos", "exp", "factorial", "pow"}

func parse(t *testing.T, args ...string) (*pflag.FlagSet, AppConfig) {
	t.Helper()
	cfg := Default()
	fs := pflag.NewFlagSet("bindtime", pflag.ContinueOnError)
	BindFlags(fs, &cfg)
	require.NoError(t, fs.Parse(args))
	return fs, cfg
}

func writeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "bindtime.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestDefaults(t *testing.T) {
	fs, cfg := parse(t)
	require.NoError(t, Resolve(fs, &cfg, functions))

	assert.Equal(t, "all", cfg.Function)
	assert.Equal(t, DefaultLoops, cfg.Loops)
	assert.Equal(t, "text", cfg.Format)
	assert.Equal(t, 5*time.Minute, cfg.Timeout)
	assert.Equal(t, "8080", cfg.Port)
}

func TestFlags(t *testing.T) {
	fs, cfg := parse(t, "-n", "42", "--format", "JSON", "--auto-loops", "--target", "50ms", "--port", "9090")
	require.NoError(t, Resolve(fs, &cfg, functions))

	assert.Equal(t, 42, cfg.Loops)
	assert.Equal(t, "json", cfg.Format)
	assert.True(t, cfg.AutoLoops)
	assert.Equal(t, 50*time.Millisecond, cfg.Target)
	assert.Equal(t, "9090", cfg.Port)
}

func TestEnvOverridesDefaultsButNotFlags(t *testing.T) {
	t.Setenv("BINDTIME_LOOPS", "7")
	t.Setenv("BINDTIME_FUNCTION", "cos")
	t.Setenv("BINDTIME_PROGRESS", "yes")
	t.Setenv("BINDTIME_TOLERANCE", "1e-6")
	t.Setenv("BINDTIME_PORT", "3000")

	fs, cfg := parse(t, "--port", "4000")
	require.NoError(t, Resolve(fs, &cfg, functions))

	assert.Equal(t, 7, cfg.Loops)
	assert.Equal(t, "cos", cfg.Function)
	assert.True(t, cfg.Progress)
	assert.Equal(t, 1e-6, cfg.Tolerance)
	assert.Equal(t, "4000", cfg.Port, "flag must win over the environment")
}

func TestMalformedEnvIsAConfigError(t *testing.T) {
	t.Setenv("BINDTIME_TIMEOUT", "soon")
	fs, cfg := parse(t)
	err := Resolve(fs, &cfg, functions)

	var configErr apperrors.ConfigError
	require.True(t, errors.As(err, &configErr), "got %v", err)
	assert.Contains(t, err.Error(), "BINDTIME_TIMEOUT")
}

func TestConfigFilePriority(t *testing.T) {
	path := writeFile(t, `
function = "exp"
loops = 1234
format = "yaml"
target = "1s"
timeout = "30s"
`)
	t.Setenv("BINDTIME_LOOPS", "99")

	fs, cfg := parse(t, "--config", path, "--format", "text")
	require.NoError(t, Resolve(fs, &cfg, functions))

	assert.Equal(t, "exp", cfg.Function, "file value over default")
	assert.Equal(t, 99, cfg.Loops, "environment over file")
	assert.Equal(t, "text", cfg.Format, "flag over file")
	assert.Equal(t, time.Second, cfg.Target)
	assert.Equal(t, 30*time.Second, cfg.Timeout)
}

func TestConfigFileFromEnvironment(t *testing.T) {
	t.Setenv("BINDTIME_CONFIG", writeFile(t, `loops = 5`))
	fs, cfg := parse(t)
	require.NoError(t, Resolve(fs, &cfg, functions))
	assert.Equal(t, 5, cfg.Loops)
}

func TestConfigFileErrors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    string
	}{
		{"Unknown key", `speed = 3`, "unknown key"},
		{"Malformed", `loops = `, "failed to parse"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fs, cfg := parse(t, "--config", writeFile(t, tt.content))
			err := Resolve(fs, &cfg, functions)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}

	fs, cfg := parse(t, "--config", filepath.Join(t.TempDir(), "missing.toml"))
	assert.ErrorContains(t, Resolve(fs, &cfg, functions), "not found")
}

func TestValidate(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name   string
		mutate func(*AppConfig)
		want   string
	}{
		{"Unknown function", func(c *AppConfig) { c.Function = "sin" }, "unknown function"},
		{"Negative loops", func(c *AppConfig) { c.Loops = -1 }, "negative"},
		{"Unknown format", func(c *AppConfig) { c.Format = "xml" }, "unknown format"},
		{"Zero target", func(c *AppConfig) { c.Target = 0 }, "target"},
		{"Tolerance too large", func(c *AppConfig) { c.Tolerance = 2 }, "tolerance"},
		{"Bad port", func(c *AppConfig) { c.Port = "http" }, "invalid port"},
		{"Zero max order", func(c *AppConfig) { c.MaxOrder = 0 }, "server limits"},
		{"Zero timeout", func(c *AppConfig) { c.Timeout = 0 }, "timeout"},
		{"Unknown log level", func(c *AppConfig) { c.LogLevel = "loud" }, "log level"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			cfg := Default()
			tt.mutate(&cfg)
			err := cfg.Validate(functions)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}

	assert.NoError(t, Default().Validate(functions))
}
