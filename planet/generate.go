// SPDX-License-Identifier: MIT
//
// generate.go: seeded random surfaces.
//
// Contract:
//   • width ≥ 1 and height ≥ 1 (else ErrEmptyGrid).
//   • Home defaults to the centre cell; WithHomeAt moves it (else ErrHomeOutside).
//   • Each non-home cell is 'X' with probability ObstacleRatio, otherwise a
//     palette symbol drawn uniformly.
//   • On surfaces with more than one cell, home keeps at least one open
//     neighbour so every run has something to explore.
//
// Determinism:
//   • Cells are drawn in row-major order from a single RNG; the same seed and
//     options always yield the same surface.

package planet

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/surveyor/terrain"
)

const (
	defaultSeed          int64   = 1
	defaultObstacleRatio float64 = 0.2
)

var defaultPalette = []terrain.Symbol{'.', '.', '.', '~', '^', '*'}

// GenOption customises Generate.
type GenOption func(*genConfig)

type genConfig struct {
	rng     *rand.Rand
	ratio   float64
	palette []terrain.Symbol
	home    terrain.Coord
	homeSet bool
}

// WithSeed makes generation reproducible. Seed 0 maps to a fixed default.
func WithSeed(seed int64) GenOption {
	return func(c *genConfig) { c.rng = rngFromSeed(seed) }
}

// WithObstacleRatio sets the probability of an obstructed cell.
// Panics outside [0, 1].
func WithObstacleRatio(p float64) GenOption {
	if p < 0 || p > 1 {
		panic(fmt.Sprintf("planet: WithObstacleRatio(%v) outside [0,1]", p))
	}
	return func(c *genConfig) { c.ratio = p }
}

// WithPalette sets the open terrain symbols. Panics on an empty palette or
// on reserved markers.
func WithPalette(symbols ...terrain.Symbol) GenOption {
	if len(symbols) == 0 {
		panic("planet: WithPalette()")
	}
	for _, s := range symbols {
		switch s {
		case terrain.HomeMarker, terrain.ObstructedMarker, terrain.UnknownMarker, terrain.RoverMarker:
			panic(fmt.Sprintf("planet: WithPalette(%q) uses a reserved marker", s))
		}
	}
	return func(c *genConfig) { c.palette = append([]terrain.Symbol(nil), symbols...) }
}

// WithHomeAt places home at surface coordinate (x, y).
func WithHomeAt(x, y int) GenOption {
	return func(c *genConfig) {
		c.home = terrain.Coord{X: x, Y: y}
		c.homeSet = true
	}
}

// Generate builds a random width×height surface.
func Generate(width, height int, opts ...GenOption) (*Surface, error) {
	if width < 1 || height < 1 {
		return nil, fmt.Errorf("%w: %dx%d", ErrEmptyGrid, width, height)
	}
	cfg := genConfig{ratio: defaultObstacleRatio, palette: defaultPalette}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.rng == nil {
		cfg.rng = rngFromSeed(defaultSeed)
	}
	if !cfg.homeSet {
		cfg.home = terrain.Coord{X: width / 2, Y: height / 2}
	}
	if cfg.home.X < 0 || cfg.home.X >= width || cfg.home.Y < 0 || cfg.home.Y >= height {
		return nil, fmt.Errorf("%w: %v on %dx%d", ErrHomeOutside, cfg.home, width, height)
	}

	rows := make([][]terrain.Symbol, height)
	for y := range rows {
		rows[y] = make([]terrain.Symbol, width)
		for x := range rows[y] {
			if cfg.rng.Float64() < cfg.ratio {
				rows[y][x] = terrain.ObstructedMarker
				continue
			}
			rows[y][x] = cfg.palette[cfg.rng.Intn(len(cfg.palette))]
		}
	}
	rows[cfg.home.Y][cfg.home.X] = terrain.HomeMarker
	openHomeNeighbor(rows, cfg.home, cfg.palette[0])

	return NewSurface(rows)
}

// openHomeNeighbor clears the first in-bounds neighbour of home (N, E, S, W)
// when all of them are obstructed.
func openHomeNeighbor(rows [][]terrain.Symbol, home terrain.Coord, open terrain.Symbol) {
	var first *terrain.Symbol
	for _, n := range home.Neighbors() {
		if n.Y < 0 || n.Y >= len(rows) || n.X < 0 || n.X >= len(rows[0]) {
			continue
		}
		cell := &rows[n.Y][n.X]
		if *cell != terrain.ObstructedMarker {
			return
		}
		if first == nil {
			first = cell
		}
	}
	if first != nil {
		*first = open
	}
}

// rngFromSeed returns a deterministic *rand.Rand; seed 0 uses defaultSeed.
func rngFromSeed(seed int64) *rand.Rand {
	if seed == 0 {
		seed = defaultSeed
	}
	return rand.New(rand.NewSource(seed))
}
