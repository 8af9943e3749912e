// Package config defines the bindtime configuration, binds it to command
// line flags and resolves it against the environment and an optional TOML
// file. Priority, highest first: flags, BINDTIME_* variables, the config
// file, built-in defaults.
package config

import (
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/pflag"

	apperrors "github.com/agbru/bindtime/internal/errors"
	"github.com/agbru/bindtime/internal/logging"
)

// EnvPrefix prefixes every environment variable read by bindtime.
const EnvPrefix = "BINDTIME_"

// Default configuration values.
const (
	DefaultFunction  = "all"
	DefaultLoops     = 1_000_000
	DefaultFormat    = "text"
	DefaultTarget    = 200 * time.Millisecond
	DefaultTolerance = 1e-9
	DefaultPort      = "8080"
	DefaultMaxLoops  = 100_000_000
	DefaultMaxOrder  = 1000
	DefaultTimeout   = 5 * time.Minute
	DefaultLogLevel  = "info"
)

// Formats lists the accepted report formats.
var Formats = []string{"text", "json", "yaml"}

// AppConfig holds every setting of the bindtime commands.
type AppConfig struct {
	// Function is a registered function name or "all".
	Function string
	// Loops is the number of evaluations per strategy.
	Loops int
	// Format is the report format: text, json or yaml.
	Format string
	// AutoLoops replaces Loops with a calibrated count reaching Target.
	AutoLoops bool
	// Target is the minimum duration of one calibrated loop.
	Target time.Duration
	// Progress shows a spinner on stderr while benchmarking.
	Progress bool
	NoColor  bool
	// Tolerance is the relative distance allowed between a strategy and the
	// runtime-recursive baseline during verification.
	Tolerance float64
	Port      string
	// MaxLoops and MaxOrder bound requests accepted by the HTTP server.
	MaxLoops int
	MaxOrder int
	// Timeout bounds a whole run or request.
	Timeout    time.Duration
	LogLevel   string
	ConfigFile string
}

// Default returns the built-in configuration.
func Default() AppConfig {
	return AppConfig{
		Function:  DefaultFunction,
		Loops:     DefaultLoops,
		Format:    DefaultFormat,
		Target:    DefaultTarget,
		Tolerance: DefaultTolerance,
		Port:      DefaultPort,
		MaxLoops:  DefaultMaxLoops,
		MaxOrder:  DefaultMaxOrder,
		Timeout:   DefaultTimeout,
		LogLevel:  DefaultLogLevel,
	}
}

// BindFlags registers one flag per setting on fs, using the current values
// of cfg as defaults.
func BindFlags(fs *pflag.FlagSet, cfg *AppConfig) {
	fs.StringVar(&cfg.ConfigFile, "config", cfg.ConfigFile, "Path to a TOML configuration file.")
	fs.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "Log level: trace, debug, info, warn, error or disabled.")
	fs.BoolVar(&cfg.NoColor, "no-color", cfg.NoColor, "Disable colored output (also respects NO_COLOR).")
	fs.IntVarP(&cfg.Loops, "loops", "n", cfg.Loops, "Number of evaluations per strategy.")
	fs.StringVarP(&cfg.Format, "format", "f", cfg.Format, "Report format: "+strings.Join(Formats, ", ")+".")
	fs.BoolVar(&cfg.AutoLoops, "auto-loops", cfg.AutoLoops, "Calibrate the loop count so each strategy runs for at least --target.")
	fs.DurationVar(&cfg.Target, "target", cfg.Target, "Minimum duration of a calibrated loop.")
	fs.BoolVar(&cfg.Progress, "progress", cfg.Progress, "Show a spinner on stderr while benchmarking.")
	fs.Float64Var(&cfg.Tolerance, "tolerance", cfg.Tolerance, "Relative tolerance used by verify.")
	fs.StringVar(&cfg.Port, "port", cfg.Port, "Port to listen on in server mode.")
	fs.IntVar(&cfg.MaxLoops, "max-loops", cfg.MaxLoops, "Largest loop count accepted by the server.")
	fs.IntVar(&cfg.MaxOrder, "max-order", cfg.MaxOrder, "Largest series order accepted by the server.")
	fs.DurationVar(&cfg.Timeout, "timeout", cfg.Timeout, "Maximum duration of a run or request.")
}

// Resolve fills every setting whose flag was not set on the command line
// from the config file, then from the environment, and validates the
// result.
//
// Parameters:
//   - fs: The parsed flag set the configuration was bound to.
//   - cfg: The configuration to complete in place.
//   - functions: The registered function names, for validation.
//
// Returns:
//   - error: A ConfigError if the file cannot be read or a value is invalid.
func Resolve(fs *pflag.FlagSet, cfg *AppConfig, functions []string) error {
	if !isFlagSet(fs, "config") {
		cfg.ConfigFile = getEnvString("CONFIG", cfg.ConfigFile)
	}
	if cfg.ConfigFile != "" {
		if err := applyFile(cfg.ConfigFile, cfg, fs); err != nil {
			return err
		}
	}
	if err := applyEnvOverrides(cfg, fs); err != nil {
		return err
	}
	cfg.Function = strings.ToLower(cfg.Function)
	cfg.Format = strings.ToLower(cfg.Format)
	return cfg.Validate(functions)
}

// Validate checks that every setting is usable.
//
// Parameters:
//   - functions: The registered function names; "all" is always accepted.
//
// Returns:
//   - error: A ConfigError describing the first invalid setting, or nil.
func (c AppConfig) Validate(functions []string) error {
	if c.Function != "all" && !slices.Contains(functions, c.Function) {
		return apperrors.NewConfigError("unknown function %q; valid functions are: all, %s", c.Function, strings.Join(functions, ", "))
	}
	if c.Loops < 0 {
		return apperrors.NewConfigError("loop count cannot be negative: %d", c.Loops)
	}
	if !slices.Contains(Formats, c.Format) {
		return apperrors.NewConfigError("unknown format %q; valid formats are: %s", c.Format, strings.Join(Formats, ", "))
	}
	if c.Target <= 0 {
		return apperrors.NewConfigError("calibration target must be strictly positive")
	}
	if c.Tolerance <= 0 || c.Tolerance >= 1 {
		return apperrors.NewConfigError("tolerance must be in (0, 1): %g", c.Tolerance)
	}
	if port, err := strconv.Atoi(c.Port); err != nil || port < 1 || port > 65535 {
		return apperrors.NewConfigError("invalid port %q", c.Port)
	}
	if c.MaxLoops <= 0 || c.MaxOrder <= 0 {
		return apperrors.NewConfigError("server limits must be strictly positive")
	}
	if c.Timeout <= 0 {
		return apperrors.NewConfigError("timeout value must be strictly positive")
	}
	if _, err := logging.ParseLevel(c.LogLevel); err != nil {
		return apperrors.NewConfigError("%v", err)
	}
	return nil
}
