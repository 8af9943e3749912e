package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/pflag"

	apperrors "github.com/agbru/bindtime/internal/errors"
)

// isFlagSet reports whether name was given on the command line. A nil set
// means no flag was given.
func isFlagSet(fs *pflag.FlagSet, name string) bool {
	if fs == nil {
		return false
	}
	f := fs.Lookup(name)
	return f != nil && f.Changed
}

func getEnvString(key, defaultVal string) string {
	if val := os.Getenv(EnvPrefix + key); val != "" {
		return val
	}
	return defaultVal
}

// Typed lookups reject malformed values instead of silently keeping the
// previous one.

func getEnvInt(key string, defaultVal int) (int, error) {
	val := os.Getenv(EnvPrefix + key)
	if val == "" {
		return defaultVal, nil
	}
	parsed, err := strconv.Atoi(val)
	if err != nil {
		return defaultVal, apperrors.NewConfigError("%s%s: invalid integer %q", EnvPrefix, key, val)
	}
	return parsed, nil
}

func getEnvFloat(key string, defaultVal float64) (float64, error) {
	val := os.Getenv(EnvPrefix + key)
	if val == "" {
		return defaultVal, nil
	}
	parsed, err := strconv.ParseFloat(val, 64)
	if err != nil {
		return defaultVal, apperrors.NewConfigError("%s%s: invalid number %q", EnvPrefix, key, val)
	}
	return parsed, nil
}

// getEnvBool accepts true/1/yes and false/0/no, case-insensitively.
func getEnvBool(key string, defaultVal bool) (bool, error) {
	val := os.Getenv(EnvPrefix + key)
	if val == "" {
		return defaultVal, nil
	}
	switch strings.ToLower(val) {
	case "true", "1", "yes":
		return true, nil
	case "false", "0", "no":
		return false, nil
	}
	return defaultVal, apperrors.NewConfigError("%s%s: invalid boolean %q", EnvPrefix, key, val)
}

func getEnvDuration(key string, defaultVal time.Duration) (time.Duration, error) {
	val := os.Getenv(EnvPrefix + key)
	if val == "" {
		return defaultVal, nil
	}
	parsed, err := time.ParseDuration(val)
	if err != nil {
		return defaultVal, apperrors.NewConfigError("%s%s: invalid duration %q", EnvPrefix, key, val)
	}
	return parsed, nil
}

// applyEnvOverrides reads BINDTIME_FUNCTION, BINDTIME_LOOPS, BINDTIME_FORMAT,
// BINDTIME_AUTO_LOOPS, BINDTIME_TARGET, BINDTIME_PROGRESS, BINDTIME_NO_COLOR,
// BINDTIME_TOLERANCE, BINDTIME_PORT, BINDTIME_MAX_LOOPS, BINDTIME_MAX_ORDER,
// BINDTIME_TIMEOUT and BINDTIME_LOG_LEVEL for every setting whose flag was
// not set.
func applyEnvOverrides(cfg *AppConfig, fs *pflag.FlagSet) error {
	var err error
	strs := []struct {
		flag, key string
		dst       *string
	}{
		{"function", "FUNCTION", &cfg.Function},
		{"format", "FORMAT", &cfg.Format},
		{"port", "PORT", &cfg.Port},
		{"log-level", "LOG_LEVEL", &cfg.LogLevel},
	}
	for _, s := range strs {
		if !isFlagSet(fs, s.flag) {
			*s.dst = getEnvString(s.key, *s.dst)
		}
	}

	ints := []struct {
		flag, key string
		dst       *int
	}{
		{"loops", "LOOPS", &cfg.Loops},
		{"max-loops", "MAX_LOOPS", &cfg.MaxLoops},
		{"max-order", "MAX_ORDER", &cfg.MaxOrder},
	}
	for _, i := range ints {
		if !isFlagSet(fs, i.flag) {
			if *i.dst, err = getEnvInt(i.key, *i.dst); err != nil {
				return err
			}
		}
	}

	bools := []struct {
		flag, key string
		dst       *bool
	}{
		{"auto-loops", "AUTO_LOOPS", &cfg.AutoLoops},
		{"progress", "PROGRESS", &cfg.Progress},
		{"no-color", "NO_COLOR", &cfg.NoColor},
	}
	for _, b := range bools {
		if !isFlagSet(fs, b.flag) {
			if *b.dst, err = getEnvBool(b.key, *b.dst); err != nil {
				return err
			}
		}
	}

	durations := []struct {
		flag, key string
		dst       *time.Duration
	}{
		{"target", "TARGET", &cfg.Target},
		{"timeout", "TIMEOUT", &cfg.Timeout},
	}
	for _, d := range durations {
		if !isFlagSet(fs, d.flag) {
			if *d.dst, err = getEnvDuration(d.key, *d.dst); err != nil {
				return err
			}
		}
	}

	if !isFlagSet(fs, "tolerance") {
		if cfg.Tolerance, err = getEnvFloat("TOLERANCE", cfg.Tolerance); err != nil {
			return err
		}
	}
	return nil
}
