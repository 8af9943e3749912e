package config

import (
	"os"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/spf13/pflag"

	apperrors "github.com/agbru/bindtime/internal/errors"
)

// duration decodes TOML strings such as "250ms" or "5m".
type duration struct {
	time.Duration
}

func (d *duration) UnmarshalText(text []byte) error {
	var err error
	d.Duration, err = time.ParseDuration(string(text))
	return err
}

// fileConfig is the layout of the TOML file. Keys use snake_case:
//
//	function = "cos"
//	loops = 500000
//	timeout = "2m"
type fileConfig struct {
	Function  string   `toml:"function"`
	Loops     int      `toml:"loops"`
	Format    string   `toml:"format"`
	AutoLoops bool     `toml:"auto_loops"`
	Target    duration `toml:"target"`
	Progress  bool     `toml:"progress"`
	NoColor   bool     `toml:"no_color"`
	Tolerance float64  `toml:"tolerance"`
	Port      string   `toml:"port"`
	MaxLoops  int      `toml:"max_loops"`
	MaxOrder  int      `toml:"max_order"`
	Timeout   duration `toml:"timeout"`
	LogLevel  string   `toml:"log_level"`
}

// applyFile copies every key present in the TOML file at path into cfg,
// except those whose flag was set on the command line.
func applyFile(path string, cfg *AppConfig, fs *pflag.FlagSet) error {
	path = os.ExpandEnv(path)
	if _, err := os.Stat(path); err != nil {
		return apperrors.NewConfigError("config file not found: %s", path)
	}

	var fc fileConfig
	md, err := toml.DecodeFile(path, &fc)
	if err != nil {
		return apperrors.NewConfigError("failed to parse config %s: %v", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return apperrors.NewConfigError("unknown key %q in config %s", undecoded[0].String(), path)
	}

	set := func(key, flag string, apply func()) {
		if md.IsDefined(key) && !isFlagSet(fs, flag) {
			apply()
		}
	}
	set("function", "function", func() { cfg.Function = fc.Function })
	set("loops", "loops", func() { cfg.Loops = fc.Loops })
	set("format", "format", func() { cfg.Format = fc.Format })
	set("auto_loops", "auto-loops", func() { cfg.AutoLoops = fc.AutoLoops })
	set("target", "target", func() { cfg.Target = fc.Target.Duration })
	set("progress", "progress", func() { cfg.Progress = fc.Progress })
	set("no_color", "no-color", func() { cfg.NoColor = fc.NoColor })
	set("tolerance", "tolerance", func() { cfg.Tolerance = fc.Tolerance })
	set("port", "port", func() { cfg.Port = fc.Port })
	set("max_loops", "max-loops", func() { cfg.MaxLoops = fc.MaxLoops })
	set("max_order", "max-order", func() { cfg.MaxOrder = fc.MaxOrder })
	set("timeout", "timeout", func() { cfg.Timeout = fc.Timeout.Duration })
	set("log_level", "log-level", func() { cfg.LogLevel = fc.LogLevel })
	return nil
}
