package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/surveyor/observability"
)

func newMapCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "map [planet files...]",
		Short: "Explore planets and write the discovered maps",
		Long: `Explore each planet with the unconstrained and/or the battery-limited
scheduler and write one flat text map per run to the output directory.
Without arguments the planets from the config are used, or the built-in
samples when none are configured.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			targets, err := loadTargets(a.cfg, args)
			if err != nil {
				return err
			}
			reports, err := runMissions(cmd.Context(), a.cfg, targets, cmd.OutOrStdout(), observability.Component("mission"))
			if err != nil {
				return err
			}
			for _, r := range reports {
				if _, err := fmt.Fprintln(cmd.OutOrStdout(), r); err != nil {
					return err
				}
			}
			return nil
		},
	}

	flags := cmd.Flags()
	flags.String("mode", "", "unlimited, budget or both")
	flags.Float64("battery", 0, "maximum battery for budget runs")
	flags.Float64("move-cost", 0, "battery cost of one move")
	flags.Bool("render", false, "animate the exploration in the terminal")
	flags.Bool("parallel", true, "map planets concurrently when not rendering")
	flags.StringP("out", "o", "", "output directory")

	bind := map[string]string{
		"mission.mode":        "mode",
		"mission.max_battery": "battery",
		"mission.move_cost":   "move-cost",
		"render.enabled":      "render",
		"run.parallel":        "parallel",
		"output.dir":          "out",
	}
	for key, flag := range bind {
		_ = a.v.BindPFlag(key, flags.Lookup(flag))
	}
	return cmd
}
