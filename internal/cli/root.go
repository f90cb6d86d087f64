package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"slices"

	"github.com/spf13/cobra"

	"github.com/roach88/prakriya/internal/config"
	"github.com/roach88/prakriya/internal/derive"
	"github.com/roach88/prakriya/internal/dhatupatha"
	"github.com/roach88/prakriya/internal/telemetry"
)

// RootOptions holds global flags for all commands and the state built from
// them before a subcommand runs.
type RootOptions struct {
	Verbose    bool
	Format     string // "json" | "text"
	ConfigPath string
	Metrics    bool

	Config    config.Config
	Logger    *slog.Logger
	Collector *telemetry.Collector
}

// ValidFormats defines the allowed output formats.
var ValidFormats = []string{"text", "json"}

// NewRootCommand creates the root command for the prakriya CLI.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:           "prakriya",
		Short:         "prakriya - Sanskrit verb derivation",
		Long:          "Derives Sanskrit verb forms step by step, citing the rule behind every change.",
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if !slices.Contains(ValidFormats, opts.Format) {
				return NewExitError(ExitCommandError, fmt.Sprintf("invalid format %q: must be one of %v", opts.Format, ValidFormats))
			}
			return opts.setup(cmd)
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			if !opts.Metrics {
				return nil
			}
			return opts.Collector.WriteText(cmd.ErrOrStderr())
		},
	}

	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "verbose output")
	cmd.PersistentFlags().StringVar(&opts.Format, "format", "text", "output format (json|text)")
	cmd.PersistentFlags().StringVar(&opts.ConfigPath, "config", "", "path to YAML config file")
	cmd.PersistentFlags().BoolVar(&opts.Metrics, "metrics", false, "write Prometheus metrics to stderr on exit")

	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return WrapExitError(ExitCommandError, "invalid flags", err)
	})

	cmd.AddCommand(NewExplainCommand(opts))
	cmd.AddCommand(NewDeriveCommand(opts))
	cmd.AddCommand(NewTraceCommand(opts))
	cmd.AddCommand(NewReplayCommand(opts))
	cmd.AddCommand(NewTestCommand(opts))

	return cmd
}

// Execute runs the CLI with args and returns the process exit code. Errors
// that cobra raises before a command runs, such as a missing required flag,
// are command errors.
func Execute(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	cmd := NewRootCommand()
	cmd.SetArgs(args)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	err := cmd.ExecuteContext(ctx)
	if err == nil {
		return ExitSuccess
	}
	fmt.Fprintln(stderr, "Error:", err)

	var exitErr *ExitError
	if !errors.As(err, &exitErr) {
		return ExitCommandError
	}
	return exitErr.Code
}

func (o *RootOptions) setup(cmd *cobra.Command) error {
	o.Config = config.Default()
	if o.ConfigPath != "" {
		cfg, err := config.Load(o.ConfigPath)
		if err != nil {
			return WrapExitError(ExitCommandError, "failed to load config", err)
		}
		o.Config = cfg
	}

	level := o.Config.Level()
	if o.Verbose {
		level = slog.LevelDebug
	}
	o.Logger = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))

	if o.Metrics {
		o.Collector = telemetry.NewCollector(nil)
	}
	return nil
}

// deriveOptions translates the global state into engine options.
func (o *RootOptions) deriveOptions() []derive.Option {
	opts := []derive.Option{
		derive.WithMaxBranches(o.Config.MaxBranches),
		derive.WithLogger(o.Logger),
		derive.WithMetrics(o.Collector),
	}
	if o.Verbose {
		opts = append(opts, derive.WithRuleTrace())
	}
	return opts
}

// lexicon loads the lexicon named by flag, falling back to the config file
// and then to the embedded data.
func (o *RootOptions) lexicon(flag string) (*dhatupatha.Lexicon, error) {
	path := flag
	if path == "" {
		path = o.Config.Lexicon
	}
	lex, err := dhatupatha.Load(path)
	if err != nil {
		return nil, WrapExitError(ExitCommandError, "failed to load lexicon", err)
	}
	return lex, nil
}

// database returns the database path named by flag or the config file.
func (o *RootOptions) database(flag string) (string, error) {
	if flag != "" {
		return flag, nil
	}
	if o.Config.Database != "" {
		return o.Config.Database, nil
	}
	return "", NewExitError(ExitCommandError, "no database: pass --db or set database in the config file")
}
