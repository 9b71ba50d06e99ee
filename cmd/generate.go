package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/surveyor/observability"
	"github.com/katalvlaran/surveyor/planet"
)

type generateFlags struct {
	width, height int
	seed          int64
	ratio         float64
	out           string
}

func newGenerateCmd() *cobra.Command {
	f := generateFlags{}
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a random planet surface",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if f.ratio < 0 || f.ratio > 1 {
				return fmt.Errorf("--obstacles must be within [0, 1], got %g", f.ratio)
			}
			s, err := planet.Generate(f.width, f.height, planet.WithSeed(f.seed), planet.WithObstacleRatio(f.ratio))
			if err != nil {
				return err
			}
			if f.out == "" {
				_, err = s.WriteTo(cmd.OutOrStdout())
				return err
			}

			file, err := os.Create(f.out)
			if err != nil {
				return fmt.Errorf("create %s: %w", f.out, err)
			}
			if _, err := s.WriteTo(file); err != nil {
				file.Close()
				return fmt.Errorf("write %s: %w", f.out, err)
			}
			if err := file.Close(); err != nil {
				return err
			}
			observability.Component("generate").Info("surface generated",
				zap.String("file", f.out), zap.Int("width", s.Width), zap.Int("height", s.Height), zap.Int64("seed", f.seed))
			return nil
		},
	}

	flags := cmd.Flags()
	flags.IntVar(&f.width, "width", 16, "surface width")
	flags.IntVar(&f.height, "height", 8, "surface height")
	flags.Int64Var(&f.seed, "seed", 1, "random seed")
	flags.Float64Var(&f.ratio, "obstacles", 0.2, "share of obstructed cells")
	flags.StringVarP(&f.out, "out", "o", "", "output file (default stdout)")
	return cmd
}
