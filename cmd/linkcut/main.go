// Package main provides the linkcut CLI: it replays YAML operation scripts
// against a link-cut forest and benchmarks generated workloads.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/fatih/color"
	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/linkcut/internal/config"
)

// Build metadata, set through -ldflags.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// app carries the state shared by every subcommand once the persistent
// pre-run has loaded configuration.
type app struct {
	cfgFile   string
	verbose   bool
	logFormat string
	noColor   bool

	cfg   *config.Config
	log   *slog.Logger
	runID string
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	err := newRootCmd().ExecuteContext(ctx)
	stop()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	a := &app{}

	rootCmd := &cobra.Command{
		Use:   "linkcut",
		Short: "Link-cut forest toolkit",
		Long: `linkcut maintains dynamic forests with path aggregates.

Commands:
  run       Replay an operation script, optionally against a naive oracle
  bench     Generate and time a random workload
  gen       Write a random workload as a script`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
	}

	rootCmd.PersistentFlags().StringVar(&a.cfgFile, "config", "", "config file (default is ./.linkcut.yaml or $HOME/.linkcut.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "log every operation")
	rootCmd.PersistentFlags().StringVar(&a.logFormat, "log-format", "", "log format: text or json")
	rootCmd.PersistentFlags().BoolVar(&a.noColor, "no-color", false, "disable colored output")

	rootCmd.AddCommand(newRunCmd(a))
	rootCmd.AddCommand(newBenchCmd(a))
	rootCmd.AddCommand(newGenCmd(a))
	rootCmd.AddCommand(versionCmd())

	return rootCmd
}

func (a *app) setup(cmd *cobra.Command, _ []string) error {
	cfg, _, err := config.Load(a.cfgFile)
	if err != nil {
		return err
	}
	if a.verbose {
		cfg.Log.Level = "debug"
	}
	if a.logFormat != "" {
		cfg.Log.Format = a.logFormat
		if err := cfg.Validate(); err != nil {
			return err
		}
	}
	if a.noColor {
		color.NoColor = true
	}

	a.cfg = cfg
	a.runID = uuid.NewString()
	a.log = cfg.Log.NewLogger(cmd.ErrOrStderr()).With("run_id", a.runID)

	return nil
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "linkcut %s (commit: %s, built: %s)\n", version, commit, date)
		},
	}
}
