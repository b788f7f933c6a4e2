// Command pathlab loads weighted undirected graphs from edge-list files and
// answers shortest-path, statistics and connectivity queries.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/pathlab/config"
	"github.com/katalvlaran/pathlab/loader"
	"github.com/katalvlaran/pathlab/logging"
	"github.com/katalvlaran/pathlab/network"
	"github.com/katalvlaran/pathlab/report"
	"github.com/katalvlaran/pathlab/telemetry"
)

var version = "0.1.0-dev"

// app is the per-invocation state shared by subcommands.
type app struct {
	cfg      config.Config
	log      *slog.Logger
	out      *report.Renderer
	diag     *report.Renderer // stderr; nil unless --verbose
	shutdown telemetry.Shutdown
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	a := &app{}
	def := config.Default()

	root := &cobra.Command{
		Use:   "pathlab",
		Short: "Shortest paths over weighted undirected graphs",
		Long: `pathlab reads edge lists ("a b weight" per line; tab, comma, semicolon
or space separated) and answers shortest-path, statistics and
connectivity queries. A file argument of "-" reads standard input.`,
		SilenceUsage:       true,
		PersistentPreRunE:  a.setup,
		PersistentPostRunE: a.teardown,
	}

	pf := root.PersistentFlags()
	pf.String("config", "", "YAML config file")
	pf.String("log-level", def.LogLevel, "Log level (debug, info, warn, error)")
	pf.String("log-format", def.LogFormat, "Log format (text, json)")
	pf.String("format", def.Format, "Output format (text, json, yaml)")
	pf.String("otel-endpoint", def.OTelEndpoint, "OTLP/HTTP collector: host:port (plain http) or http(s)://host:port[/path]; empty disables export")
	pf.Int("progress-every", def.ProgressEvery, "Report load progress every N lines")
	pf.BoolP("verbose", "v", false, "Print the load summary to stderr")

	root.AddCommand(
		newPathCmd(a),
		newStatsCmd(a),
		newNeighborsCmd(a),
		newComponentsCmd(a),
		newGenerateCmd(a),
		newVersionCmd(a),
	)

	return root
}

// setup resolves configuration and builds the logger, tracer and renderer.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	path, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(path, cmd.Flags())
	if err != nil {
		return err
	}
	a.cfg = cfg

	a.log, err = logging.New(cfg.LogLevel, cfg.LogFormat, cmd.ErrOrStderr())
	if err != nil {
		return err
	}

	format, err := report.ParseFormat(cfg.Format)
	if err != nil {
		return err
	}
	if a.out, err = report.New(cmd.OutOrStdout(), format); err != nil {
		return err
	}
	if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
		if a.diag, err = report.New(cmd.ErrOrStderr(), format); err != nil {
			return err
		}
	}

	if cfg.OTelEndpoint != "" {
		a.shutdown, err = telemetry.Init(cmd.Context(), cfg.ServiceName, version, cfg.OTelEndpoint)
		if err != nil {
			return fmt.Errorf("telemetry: %w", err)
		}
	}
	a.log.Debug("configured", "format", cfg.Format, "log_level", cfg.LogLevel, "otel", cfg.OTelEndpoint != "")

	return nil
}

func (a *app) teardown(cmd *cobra.Command, _ []string) error {
	if a.shutdown == nil {
		return nil
	}

	return a.shutdown(context.WithoutCancel(cmd.Context()))
}

// load builds a Network from path, or from stdin when path is "-".
func (a *app) load(cmd *cobra.Command, path string) (*network.Network, error) {
	ctx := cmd.Context()
	n := network.New(network.WithLogger(a.log))
	opts := []loader.Option{
		loader.WithProgressEvery(a.cfg.ProgressEvery),
		loader.WithOnProgress(func(f float64, lines int) {
			a.log.Debug("load progress", "fraction", f, "lines", lines)
		}),
	}

	var (
		sum loader.Summary
		err error
	)
	if path == "-" {
		sum, err = n.Load(ctx, cmd.InOrStdin(), opts...)
	} else {
		sum, err = n.LoadFile(ctx, path, opts...)
	}
	if err != nil {
		return nil, err
	}
	a.log.Info("graph loaded", "path", path, "lines", sum.Lines, "edges", sum.Edges, "nodes", n.NodeCount())
	if a.diag != nil {
		if err := a.diag.Load(sum); err != nil {
			return nil, err
		}
	}

	return n, nil
}

func newVersionCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.out.Version(version)
		},
	}
}

// lineSink writes edges in loader format.
type lineSink struct {
	w   io.Writer
	err error
}

func (s *lineSink) AddEdge(a, b, w int64) error {
	if s.err != nil {
		return s.err
	}
	_, s.err = fmt.Fprintf(s.w, "%d %d %d\n", a, b, w)

	return s.err
}

var errQuery = errors.New("query failed")
