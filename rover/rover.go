// Package rover simulates the movement and sensing capability the explorers
// drive: a rover on a planet.Surface with a battery, a per-move energy cost
// and a charging dock at home.
package rover

import (
	"fmt"
	"math"

	"github.com/katalvlaran/surveyor/explore"
	"github.com/katalvlaran/surveyor/planet"
	"github.com/katalvlaran/surveyor/terrain"
)

// Failure reasons beyond explore.ReasonObstructed.
const (
	ReasonOutOfBounds     explore.Reason = "Out of Bounds"
	ReasonBatteryDepleted explore.Reason = "Battery Depleted"
)

// Option configures a Rover.
type Option func(*Rover)

// WithBattery sets the full-charge energy. Use math.Inf(1) for unlimited runs.
// Panics on a non-positive or NaN value.
func WithBattery(max float64) Option {
	if !(max > 0) {
		panic(fmt.Sprintf("rover: WithBattery(%v)", max))
	}
	return func(r *Rover) { r.max = max }
}

// WithMoveCost sets the energy spent per successful move. Panics when negative.
func WithMoveCost(c float64) Option {
	if c < 0 || math.IsNaN(c) {
		panic(fmt.Sprintf("rover: WithMoveCost(%v)", c))
	}
	return func(r *Rover) { r.moveCost = c }
}

// WithBlockedCost sets the energy spent bumping into an obstruction.
// Panics when negative.
func WithBlockedCost(c float64) Option {
	if c < 0 || math.IsNaN(c) {
		panic(fmt.Sprintf("rover: WithBlockedCost(%v)", c))
	}
	return func(r *Rover) { r.blockedCost = c }
}

// Rover is a simulated explore.Rover. It is not safe for concurrent use;
// give every mapping run its own Rover.
type Rover struct {
	surface     *planet.Surface
	pos         terrain.Coord
	battery     float64
	max         float64
	moveCost    float64
	blockedCost float64
	moves       int
}

var _ explore.Rover = (*Rover)(nil)

// New places a fully charged rover on the home cell of s.
// Defaults: unlimited battery, move cost 1, blocked cost 0.
func New(s *planet.Surface, opts ...Option) *Rover {
	r := &Rover{surface: s, max: math.Inf(1), moveCost: 1}
	for _, opt := range opts {
		opt(r)
	}
	r.battery = r.max
	return r
}

// Move attempts one step. Obstructions and battery exhaustion leave the
// rover in place; an obstruction still costs the blocked cost.
func (r *Rover) Move(d terrain.Direction) explore.MoveResult {
	next := r.pos.Step(d)
	sym, ok := r.surface.At(next)
	switch {
	case !ok:
		return explore.MoveResult{Reason: ReasonOutOfBounds}
	case sym == terrain.ObstructedMarker:
		r.battery = math.Max(0, r.battery-r.blockedCost)
		return explore.MoveResult{Reason: explore.ReasonObstructed}
	case r.battery < r.moveCost:
		return explore.MoveResult{Reason: ReasonBatteryDepleted}
	}
	r.battery -= r.moveCost
	r.pos = next
	r.moves++
	return explore.MoveResult{OK: true}
}

// Sense returns the terrain under the rover.
func (r *Rover) Sense() terrain.Symbol {
	sym, _ := r.surface.At(r.pos)
	return sym
}

// Battery returns the remaining energy.
func (r *Rover) Battery() float64 { return r.battery }

// MaxBattery returns the full-charge energy.
func (r *Rover) MaxBattery() float64 { return r.max }

// Recharge docks the rover at home and restores full energy.
func (r *Rover) Recharge() {
	r.pos = terrain.Home
	r.battery = r.max
}

// Position returns the home-relative position.
func (r *Rover) Position() terrain.Coord { return r.pos }

// Moves returns the number of successful moves so far.
func (r *Rover) Moves() int { return r.moves }
