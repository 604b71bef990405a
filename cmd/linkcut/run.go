package main

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/linkcut/internal/metrics"
	"github.com/katalvlaran/linkcut/internal/report"
	"github.com/katalvlaran/linkcut/internal/script"
)

const (
	flagVerify   = "verify"
	flagFailFast = "fail-fast"
	flagMaxRows  = "max-rows"
	flagTextfile = "metrics-textfile"
)

func newRunCmd(a *app) *cobra.Command {
	var (
		verify, failFast bool
		maxRows          int
		textfile         string
	)

	cmd := &cobra.Command{
		Use:   "run <script.yaml>",
		Short: "Replay an operation script",
		Long: `Replay an operation script on a fresh forest and print every step.

A step fails when its result differs from its expect field. With --verify
every step is also checked against a naive reference forest.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			flags := cmd.Flags()
			if flags.Changed(flagVerify) {
				a.cfg.Run.Verify = verify
			}
			if flags.Changed(flagFailFast) {
				a.cfg.Run.FailFast = failFast
			}
			if flags.Changed(flagMaxRows) {
				a.cfg.Run.MaxRows = maxRows
			}
			if flags.Changed(flagTextfile) {
				a.cfg.Metrics.Textfile = textfile
			}

			return a.runScript(cmd.Context(), cmd.OutOrStdout(), args[0])
		},
	}

	cmd.Flags().BoolVar(&verify, flagVerify, false, "check every step against the reference forest")
	cmd.Flags().BoolVar(&failFast, flagFailFast, false, "stop at the first failing step")
	cmd.Flags().IntVar(&maxRows, flagMaxRows, 0, "rows shown in the step table (0 shows all)")
	cmd.Flags().StringVar(&textfile, flagTextfile, "", "write Prometheus metrics to this file")

	return cmd
}

func (a *app) runScript(ctx context.Context, out io.Writer, path string) error {
	s, err := script.Load(path)
	if err != nil {
		return err
	}

	rec := metrics.New()
	runner := script.NewRunner(
		script.WithVerify(a.cfg.Run.Verify),
		script.WithFailFast(a.cfg.Run.FailFast),
		script.WithObserver(rec),
		script.WithLogger(a.log),
	)

	rep, runErr := runner.Run(ctx, s)
	if rep == nil {
		return runErr
	}

	w := report.New(out, a.cfg.Run.MaxRows)
	w.Steps(rep)
	w.Counts(rep)
	w.Summary(rep)

	if err := a.flushMetrics(rec); err != nil {
		return err
	}
	if runErr != nil {
		return fmt.Errorf("run %s: %w", path, runErr)
	}

	return nil
}

func (a *app) flushMetrics(rec *metrics.Recorder) error {
	if a.cfg.Metrics.Textfile == "" {
		return nil
	}
	if err := rec.WriteTextfile(a.cfg.Metrics.Textfile); err != nil {
		return err
	}
	a.log.Info("metrics written", "path", a.cfg.Metrics.Textfile)

	return nil
}
