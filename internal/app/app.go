// Package app wires the bindtime commands: the cobra command tree of the
// umbrella binary and the legacy runner behind the per-function binaries.
package app

import (
	"context"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/agbru/bindtime/internal/calibration"
	"github.com/agbru/bindtime/internal/cli"
	"github.com/agbru/bindtime/internal/config"
	apperrors "github.com/agbru/bindtime/internal/errors"
	"github.com/agbru/bindtime/internal/logging"
	"github.com/agbru/bindtime/internal/orchestration"
	"github.com/agbru/bindtime/internal/server"
	"github.com/agbru/bindtime/internal/suite"
	"github.com/agbru/bindtime/internal/ui"
	"github.com/agbru/bindtime/pkg/models"
)

// RunModule is the whole program of a per-function binary. args is the
// full argument vector: without a loop count it prints the usage line,
// otherwise it benchmarks the named module. It always returns ExitSuccess.
//
// Parameters:
//   - name: The registered module name, which is also the binary name.
//   - args: The process arguments, program name first.
//   - out: The writer receiving the report.
//
// Returns:
//   - int: The process exit code.
func RunModule(name string, args []string, out io.Writer) int {
	logging.Setup(zerolog.WarnLevel, os.Stderr)
	m := suite.Global().MustGet(name)
	if len(args) < 2 {
		cli.PrintUsage(out, name)
		return apperrors.ExitSuccess
	}
	loops := cli.ParseLoopCount(args[1])
	if err := orchestration.RunBenchmark(context.Background(), m, loops, out); err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", name, err)
	}
	return apperrors.ExitSuccess
}

// Application holds the state shared by the umbrella subcommands.
type Application struct {
	Config    config.AppConfig
	Registry  *suite.Registry
	Out       io.Writer
	ErrWriter io.Writer
	Logger    *logging.ZerologAdapter
	// RunID tags the logs and the structured report of this invocation.
	RunID string
}

// New returns an application over the global registry with default
// configuration.
func New(out, errWriter io.Writer) *Application {
	return &Application{
		Config:    config.Default(),
		Registry:  suite.Global(),
		Out:       out,
		ErrWriter: errWriter,
		RunID:     uuid.NewString(),
	}
}

// Execute runs the umbrella command with args (program name excluded) and
// returns the process exit code.
func Execute(args []string, out, errWriter io.Writer) int {
	a := New(out, errWriter)
	root := a.NewRootCommand()
	root.SetArgs(args)

	start := time.Now()
	err := root.Execute()
	if err == nil {
		return apperrors.ExitSuccess
	}
	return apperrors.HandleRunError(err, time.Since(start), errWriter, ui.Colors{})
}

// NewRootCommand builds the command tree bound to a.
func (a *Application) NewRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   "bindtime",
		Short: "Benchmark run-time, build-time and init-time evaluation strategies",
		Long: `bindtime evaluates pow (2^100), factorial (100!), exp (exp(42)) and
cos (cos(45 degrees)) through six strategies that fix their value at
different points of the program's life, and times each of them.

Strategies:
  Runtime recursive                 plain recursion on every call
  Runtime recursive (inline hint)   the same recursion, inlinable
  Generic recursion                 recursion unrolled by generic types
  Constant chain                    nested constants folded by the compiler
  Lookup table                      array filled during package init
  Generated literal                 value written by go generate`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
	}
	root.SetOut(a.Out)
	root.SetErr(a.ErrWriter)
	root.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return apperrors.NewConfigError("%v", err)
	})
	config.BindFlags(root.PersistentFlags(), &a.Config)

	root.AddCommand(
		a.newRunCommand(),
		a.newVerifyCommand(),
		a.newTableCommand(),
		a.newServeCommand(),
		a.newVersionCommand(),
	)
	return root
}

// setup resolves the configuration and initializes the theme and logging.
func (a *Application) setup(cmd *cobra.Command, _ []string) error {
	if err := config.Resolve(cmd.Flags(), &a.Config, a.Registry.List()); err != nil {
		return err
	}
	ui.InitTheme(a.Config.NoColor)

	level, err := logging.ParseLevel(a.Config.LogLevel)
	if err != nil {
		return apperrors.NewConfigError("%v", err)
	}
	logging.Setup(level, a.ErrWriter)
	a.Logger = logging.NewLogger(a.ErrWriter, "bindtime").With(logging.String("run_id", a.RunID))
	a.Logger.Debug("configuration resolved",
		logging.String("command", cmd.Name()),
		logging.String("function", a.Config.Function),
		logging.Int("loops", a.Config.Loops),
		logging.String("format", a.Config.Format))
	return nil
}

func (a *Application) newRunCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "run [function|all] [loops]",
		Short: "Benchmark the strategies of one or every function",
		Long: `Benchmark every strategy of a function, or of all of them.

In text format the report matches the per-function binaries. The json and
yaml formats write a structured report carrying the run id.`,
		Args: cobra.MaximumNArgs(2),
		RunE: a.runBenchmarks,
	}
}

func (a *Application) runBenchmarks(cmd *cobra.Command, args []string) error {
	if len(args) > 0 {
		a.Config.Function = strings.ToLower(args[0])
	}
	if len(args) > 1 {
		loops, err := strconv.Atoi(args[1])
		if err != nil {
			return apperrors.NewConfigError("invalid loop count %q", args[1])
		}
		a.Config.Loops = loops
	}
	if err := a.Config.Validate(a.Registry.List()); err != nil {
		return err
	}
	modules, err := a.Registry.Resolve(a.Config.Function)
	if err != nil {
		return apperrors.NewConfigError("%v", err)
	}

	ctx, stop := withLifecycle(cmd.Context(), a.Config.Timeout)
	defer stop()

	text := a.Config.Format == "text"
	startedAt := time.Now()
	progress := cli.NewProgress(a.ErrWriter, a.Config.Progress, len(modules))
	defer progress.Stop()

	reports := make([]models.ModuleReport, 0, len(modules))
	for i, m := range modules {
		progress.Step(m.Name())
		loops := a.Config.Loops
		if a.Config.AutoLoops {
			calibrated, results, err := calibration.CalibrateModule(ctx, m, a.Config.Target, a.Config.MaxLoops, a.Logger)
			if err != nil {
				return err
			}
			loops = calibrated
			if text {
				calibration.PrintResults(a.Out, m.Name(), results, loops)
			}
		}

		if text {
			if i > 0 {
				fmt.Fprintln(a.Out)
			}
			if err := orchestration.RunBenchmark(ctx, m, loops, a.Out); err != nil {
				return err
			}
			continue
		}
		report, err := orchestration.Benchmark(ctx, m, loops)
		if err != nil {
			return err
		}
		reports = append(reports, report)
	}
	progress.Stop()
	a.Logger.Info("benchmark completed",
		logging.Int("functions", len(modules)),
		logging.Duration("elapsed", time.Since(startedAt)))

	if text {
		return nil
	}
	return cli.WriteStructured(a.Out, cli.NewReport(a.RunID, startedAt, reports), a.Config.Format)
}

func (a *Application) newVerifyCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "verify [function|all]",
		Short: "Check that every strategy and lookup table agrees with the runtime recursion",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) > 0 {
				a.Config.Function = strings.ToLower(args[0])
			}
			modules, err := a.Registry.Resolve(a.Config.Function)
			if err != nil {
				return apperrors.NewConfigError("%v", err)
			}

			ctx, stop := withLifecycle(cmd.Context(), a.Config.Timeout)
			defer stop()

			summary := a.Out
			if a.Config.Format != "text" {
				summary = io.Discard
			}
			report, verr := orchestration.VerifyModules(ctx, modules, a.Config.Tolerance, summary)
			if a.Config.Format != "text" && !apperrors.IsContextError(verr) {
				if err := cli.WriteStructured(a.Out, report, a.Config.Format); err != nil {
					return err
				}
			}
			return verr
		},
	}
}

func (a *Application) newTableCommand() *cobra.Command {
	var values bool
	cmd := &cobra.Command{
		Use:   "table <function>",
		Short: "Show the size and checksum of a lookup table",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			m, err := a.Registry.Get(args[0])
			if err != nil {
				return apperrors.NewConfigError("%v", err)
			}
			return cli.WriteTableDump(a.Out, cli.NewTableDump(m, values), a.Config.Format)
		},
	}
	cmd.Flags().BoolVar(&values, "values", false, "Print every slot of the table.")
	return cmd
}

func (a *Application) newServeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve evaluations, benchmarks and metrics over HTTP",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			srv := server.NewServer(a.Config, server.WithLogger(logging.NewLogger(a.ErrWriter, "server").With(logging.String("run_id", a.RunID))))
			return srv.Start()
		},
	}
}

func (a *Application) newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print build, Go runtime and CPU information",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			if a.Config.Format != "text" {
				return cli.WriteStructured(a.Out, GetVersionInfo(), a.Config.Format)
			}
			PrintVersion(a.Out)
			return nil
		},
	}
}
