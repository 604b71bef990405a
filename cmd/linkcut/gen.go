package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/linkcut/internal/script"
)

const (
	flagOutput  = "output"
	genFilePerm = 0o644
)

func newGenCmd(a *app) *cobra.Command {
	var (
		vertices, steps int
		seed            int64
		shape, output   string
	)

	cmd := &cobra.Command{
		Use:   "gen",
		Short: "Write a random workload as a script",
		Long: `Generate the same workload bench would run and write it as YAML, so it
can be replayed with run --verify or edited into a regression test.`,
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
			if err := a.cfg.Validate(); err != nil {
				return err
			}

			shp, err := buildShape(*b)
			if err != nil {
				return err
			}
			s := script.Random(shp, b.Steps, b.Seed)

			if output == "" || output == "-" {
				return script.Encode(cmd.OutOrStdout(), s)
			}

			return writeScript(output, s)
		},
	}

	cmd.Flags().IntVar(&vertices, flagVertices, 0, "vertices in the forest")
	cmd.Flags().IntVar(&steps, flagSteps, 0, "random operations after the initial links")
	cmd.Flags().Int64Var(&seed, flagSeed, 0, "seed for the shape and the workload")
	cmd.Flags().StringVar(&shape, flagShape, "", "initial shape: random, forest, path, star, binary or caterpillar")
	cmd.Flags().StringVarP(&output, flagOutput, "o", "", "output file (default stdout)")

	return cmd
}

func writeScript(path string, s *script.Script) (err error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, genFilePerm)
	if err != nil {
		return fmt.Errorf("create script: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("close script: %w", cerr)
		}
	}()

	return script.Encode(f, s)
}
