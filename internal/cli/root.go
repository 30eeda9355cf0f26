// Package cli implements the tplbench command line.
package cli

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/fatih/color"
	"github.com/k0kubun/pp"
	"github.com/spf13/cobra"

	"github.com/goliatone/go-tplbench/internal/logging"
	"github.com/goliatone/go-tplbench/pkg/bench"
	"github.com/goliatone/go-tplbench/pkg/bencherr"
	"github.com/goliatone/go-tplbench/pkg/harness"
)

type app struct {
	stdout  io.Writer
	stderr  io.Writer
	cfgFile string
	cfg     Config
	format  bench.Format
	logger  *slog.Logger
}

// NewRootCommand builds the command tree writing the report to stdout and
// diagnostics to stderr.
func NewRootCommand(stdout, stderr io.Writer) *cobra.Command {
	a := &app{stdout: stdout, stderr: stderr}

	root := &cobra.Command{
		Use:           "tplbench",
		Short:         "tplbench compares template rendering against direct string building",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) > 0 {
				return bencherr.InvalidArgument("unexpected arguments %q", args)
			}
			return nil
		},
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.load(cmd)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.run()
		},
	}
	root.SetOut(stdout)
	root.SetErr(stderr)
	root.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return bencherr.InvalidArgument("%v", err)
	})

	root.PersistentFlags().StringVarP(&a.cfgFile, "config", "c", "", "optional YAML config file")
	registerFlags(root.PersistentFlags())

	root.AddCommand(
		&cobra.Command{
			Use:   "list",
			Short: "List available renderers",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				return a.list()
			},
		},
		&cobra.Command{
			Use:   "config",
			Short: "Show the resolved configuration",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				_, err := pp.Fprintln(a.stdout, a.cfg)
				return err
			},
		},
	)

	return root
}

// load merges defaults, the optional config file, environment and flags into
// a.cfg and configures logging.
func (a *app) load(cmd *cobra.Command) error {
	v, err := newViper(cmd.Flags())
	if err != nil {
		return fmt.Errorf("cli: bind flags: %w", err)
	}
	if a.cfgFile != "" {
		v.SetConfigFile(a.cfgFile)
		if err := v.ReadInConfig(); err != nil {
			return bencherr.Configuration(err, "cli: read config %q", a.cfgFile)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return bencherr.Configuration(err, "cli: unmarshal config")
	}
	cfg.ConfigPath = v.ConfigFileUsed()
	cfg.Renderers = splitList(cfg.Renderers)

	format, err := bench.ParseFormat(cfg.Format)
	if err != nil {
		return err
	}
	logFormat, err := logging.ParseFormat(cfg.LogFormat)
	if err != nil {
		return bencherr.InvalidArgument("%v", err)
	}

	a.cfg = cfg
	a.format = format
	a.logger = logging.Setup(cfg.Debug, a.stderr, logFormat)
	a.logger.Debug("configuration loaded", "config", cfg.ConfigPath, "renderers", cfg.Renderers)
	return nil
}

func (a *app) harness() *harness.Harness {
	opts := append(a.cfg.harnessOptions(), harness.WithLogger(a.logger))
	return harness.New(opts...)
}

func (a *app) run() error {
	var results []bench.Result
	err := profile(a.cfg.CPUProfile, a.cfg.MemProfile, func() error {
		var err error
		results, err = a.harness().Run()
		return err
	})
	if err != nil {
		return err
	}
	return bench.WriteReport(a.stdout, results, a.format)
}

func (a *app) list() error {
	for _, name := range a.harness().Renderers() {
		if _, err := fmt.Fprintln(a.stdout, name); err != nil {
			return err
		}
	}
	return nil
}

// splitList flattens comma separated entries, which is how a renderer list
// arrives from the environment or a config scalar.
func splitList(values []string) []string {
	var out []string
	for _, value := range values {
		for _, part := range strings.Split(value, ",") {
			if part = strings.TrimSpace(part); part != "" {
				out = append(out, part)
			}
		}
	}
	return out
}

// Execute runs the command line and returns the process exit code. Errors
// are reported on stderr; stdout only ever carries the report.
func Execute(args []string, stdout, stderr io.Writer) int {
	cmd := NewRootCommand(stdout, stderr)
	cmd.SetArgs(args)

	err := cmd.Execute()
	if err != nil {
		printError(stderr, err)
	}
	return ExitCode(err)
}

func printError(w io.Writer, err error) {
	label := color.New(color.FgRed, color.Bold).Sprint("error:")
	fmt.Fprintf(w, "%s %v\n", label, err)

	var renderErr *bencherr.RenderError
	if errors.As(err, &renderErr) && renderErr.Iteration > 0 {
		fmt.Fprintln(w, color.New(color.Faint).Sprintf("  renderer %s failed on iteration %d", renderErr.Renderer, renderErr.Iteration))
	}
}
