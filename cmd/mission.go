package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/surveyor/config"
	"github.com/katalvlaran/surveyor/explore"
	"github.com/katalvlaran/surveyor/planet"
	"github.com/katalvlaran/surveyor/render"
	"github.com/katalvlaran/surveyor/rover"
	"github.com/katalvlaran/surveyor/terrain"
)

// target is one surface to map.
type target struct {
	name    string
	surface *planet.Surface
}

// report describes one finished run.
type report struct {
	planet string
	mode   explore.Mode
	file   string
	result *explore.Result
}

func (r report) String() string {
	g := r.result.Grid
	s := r.result.Stats
	return fmt.Sprintf("%s %s: %dx%d map, %d cells, %d obstructed, %d recharges, %d strandings -> %s",
		r.planet, r.mode, g.Cols(), g.Rows(), r.result.Map.Len(), r.result.Map.Count(terrain.ObstructedMarker),
		s.Recharges, s.Strandings, r.file)
}

// loadTargets resolves the surfaces to map: explicit file arguments first,
// then the configured planets, then the built-in samples.
func loadTargets(cfg *config.Config, args []string) ([]target, error) {
	sources := make([]config.PlanetSource, 0, len(args))
	for _, path := range args {
		name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
		sources = append(sources, config.PlanetSource{Name: name, File: path})
	}
	if len(sources) == 0 {
		sources = cfg.Planets
	}

	if len(sources) == 0 {
		samples := planet.Samples()
		out := make([]target, 0, len(samples))
		for _, name := range planet.SampleNames() {
			out = append(out, target{name: name, surface: samples[name]})
		}
		return out, nil
	}

	out := make([]target, 0, len(sources))
	for _, src := range sources {
		s, err := planet.Load(src.File)
		if err != nil {
			return nil, fmt.Errorf("planet %s: %w", src.Name, err)
		}
		out = append(out, target{name: src.Name, surface: s})
	}
	return out, nil
}

// runMissions maps every target in the configured modes and returns the
// reports in target order. Targets run concurrently unless animation is
// on or parallel runs are disabled.
func runMissions(ctx context.Context, cfg *config.Config, targets []target, frames io.Writer, log *zap.Logger) ([]report, error) {
	if err := os.MkdirAll(cfg.Output.Dir, 0o755); err != nil {
		return nil, fmt.Errorf("create output dir: %w", err)
	}

	var anim *render.Animator
	if cfg.Render.Enabled {
		anim = render.NewAnimator(frames,
			render.WithDelay(cfg.Render.Delay),
			render.WithRechargeSteps(cfg.Render.RechargeSteps),
		)
	}

	perTarget := make([][]report, len(targets))
	g, ctx := errgroup.WithContext(ctx)
	if anim != nil || !cfg.Run.Parallel {
		g.SetLimit(1)
	}
	for i, t := range targets {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			reps, err := mapTarget(cfg, t, anim, log.With(zap.String("planet", t.name)))
			if err != nil {
				return fmt.Errorf("planet %s: %w", t.name, err)
			}
			perTarget[i] = reps
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	var out []report
	for _, reps := range perTarget {
		out = append(out, reps...)
	}
	return out, nil
}

// mapTarget runs the selected schedulers on fresh rovers and saves each map.
func mapTarget(cfg *config.Config, t target, anim *render.Animator, log *zap.Logger) ([]report, error) {
	m := cfg.Mission
	costs := []rover.Option{rover.WithMoveCost(m.MoveCost), rover.WithBlockedCost(m.BlockedCost)}

	hooks := []explore.Option{explore.WithLogger(log)}
	if anim != nil {
		hooks = append(hooks, explore.WithOnStep(anim.Step), explore.WithOnRecharge(anim.Recharge))
	}

	var out []report
	if m.RunsUnlimited() {
		res, err := explore.NewExplorer(hooks...).Run(rover.New(t.surface, costs...))
		if err != nil {
			return nil, err
		}
		rep, err := save(cfg.Output, t.name, cfg.Output.SuffixUnlimited, res)
		if err != nil {
			return nil, err
		}
		out = append(out, rep)
	}
	if m.RunsBudget() {
		r := rover.New(t.surface, append(costs, rover.WithBattery(m.MaxBattery))...)
		res, err := explore.NewBudgetExplorer(m.MaxBattery, hooks...).Run(r)
		if err != nil {
			return nil, err
		}
		rep, err := save(cfg.Output, t.name, cfg.Output.SuffixBudget, res)
		if err != nil {
			return nil, err
		}
		out = append(out, rep)
	}
	return out, nil
}

func save(o config.OutputConfig, name, suffix string, res *explore.Result) (report, error) {
	path := filepath.Join(o.Dir, name+suffix)
	if err := terrain.SaveGrid(path, res.Grid); err != nil {
		return report{}, err
	}
	return report{planet: name, mode: res.Mode, file: path, result: res}, nil
}
