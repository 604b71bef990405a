package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/linkcut/internal/metrics"
	"github.com/katalvlaran/linkcut/internal/report"
	"github.com/katalvlaran/linkcut/internal/script"
)

const (
	flagVertices    = "vertices"
	flagSteps       = "steps"
	flagSeed        = "seed"
	flagShape       = "shape"
	flagMetricsAddr = "metrics-addr"

	shutdownTimeout   = 5 * time.Second
	readHeaderTimeout = 5 * time.Second
)

func newBenchCmd(a *app) *cobra.Command {
	var (
		vertices, steps int
		seed            int64
		shape, addr     string
		textfile        string
		verify          bool
	)

	cmd := &cobra.Command{
		Use:   "bench",
		Short: "Time a random workload",
		Long: `Build an initial forest, link it into a fresh link-cut forest and run
random operations on top. Only failing steps are kept in the report.

With --metrics-addr the Prometheus metrics stay served after the run until
the process is interrupted.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			flags := cmd.Flags()
			b := &a.cfg.Bench
			if flags.Changed(flagVertices) {
				b.Vertices = vertices
			}
			if flags.Changed(flagSteps) {
				b.Steps = steps
			}
			if flags.Changed(flagSeed) {
				b.Seed = seed
			}
			if flags.Changed(flagShape) {
				b.Shape = shape
			}
			if flags.Changed(flagMetricsAddr) {
				a.cfg.Metrics.Addr = addr
			}
			if flags.Changed(flagTextfile) {
				a.cfg.Metrics.Textfile = textfile
			}
			if flags.Changed(flagVerify) {
				a.cfg.Run.Verify = verify
			}
			if err := a.cfg.Validate(); err != nil {
				return err
			}

			return a.bench(cmd.Context(), cmd.OutOrStdout())
		},
	}

	cmd.Flags().IntVar(&vertices, flagVertices, 0, "vertices in the forest")
	cmd.Flags().IntVar(&steps, flagSteps, 0, "random operations after the initial links")
	cmd.Flags().Int64Var(&seed, flagSeed, 0, "seed for the shape and the workload")
	cmd.Flags().StringVar(&shape, flagShape, "", "initial shape: random, forest, path, star, binary or caterpillar")
	cmd.Flags().StringVar(&addr, flagMetricsAddr, "", "serve Prometheus metrics on this address after the run")
	cmd.Flags().StringVar(&textfile, flagTextfile, "", "write Prometheus metrics to this file")
	cmd.Flags().BoolVar(&verify, flagVerify, false, "check every step against the reference forest (slow)")

	return cmd
}

func (a *app) bench(ctx context.Context, out io.Writer) error {
	b := a.cfg.Bench
	shape, err := buildShape(b)
	if err != nil {
		return err
	}
	s := script.Random(shape, b.Steps, b.Seed)
	a.log.Info("workload generated",
		"shape", b.Shape, "vertices", shape.N, "edges", len(shape.Edges), "trees", shape.Components(), "ops", len(s.Ops))

	rec := metrics.New()
	runner := script.NewRunner(
		script.WithVerify(a.cfg.Run.Verify),
		script.WithFailFast(a.cfg.Run.FailFast),
		script.WithFailuresOnly(),
		script.WithObserver(rec),
		script.WithLogger(a.log),
	)

	rep, runErr := runner.Run(ctx, s)
	if rep == nil {
		return runErr
	}

	w := report.New(out, a.cfg.Run.MaxRows)
	if len(rep.Results) > 0 {
		w.Steps(rep)
	}
	w.Counts(rep)
	w.Summary(rep)

	if err := a.flushMetrics(rec); err != nil {
		return err
	}
	if runErr != nil {
		return fmt.Errorf("bench: %w", runErr)
	}
	if a.cfg.Metrics.Addr != "" {
		return a.serveMetrics(ctx, rec)
	}

	return nil
}

// serveMetrics exposes rec on /metrics until ctx is done.
func (a *app) serveMetrics(ctx context.Context, rec *metrics.Recorder) error {
	mux := http.NewServeMux()
	mux.Handle("/metrics", rec.Handler())
	srv := &http.Server{
		Addr:              a.cfg.Metrics.Addr,
		Handler:           mux,
		ReadHeaderTimeout: readHeaderTimeout,
	}

	errc := make(chan error, 1)
	go func() {
		errc <- srv.ListenAndServe()
	}()
	a.log.Info("serving metrics", "addr", srv.Addr)

	select {
	case err := <-errc:
		return fmt.Errorf("serve metrics: %w", err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown metrics: %w", err)
	}
	if err := <-errc; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("serve metrics: %w", err)
	}

	return nil
}
