package explore

import (
	"go.uber.org/zap"

	"github.com/katalvlaran/surveyor/terrain"
)

// Mode names the exploration strategy of a run.
type Mode string

const (
	ModeUnlimited Mode = "unlimited"
	ModeBudget    Mode = "budget"
)

// Snapshot is the observable state after a position change or map update.
// Map is the live run map; observers must not modify it.
type Snapshot struct {
	RunID      string
	Mode       Mode
	Pos        terrain.Coord
	Map        *terrain.GridMap
	Battery    float64
	MaxBattery float64
}

// Excursion summarises the handling of one budget frontier entry.
type Excursion struct {
	At    terrain.Coord
	Depth int
	// BatteryAtDequeue is the reading the round-trip gate was checked against.
	BatteryAtDequeue float64
	Committed        bool
	Abandoned        bool
	// BatteryAtTarget is the reading kMax was derived from.
	BatteryAtTarget float64
	KMax            int
	Attempted       int
}

// Option configures an explorer via functional arguments.
type Option func(*Options)

// Options holds the collaborators and hooks shared by both explorers.
type Options struct {
	// Logger receives structured run events. Defaults to a no-op logger.
	Logger *zap.Logger

	// RunID labels every log line and snapshot. Empty means a fresh UUID per run.
	RunID string

	// OnStep is called after every position change and map update,
	// including the tentative step onto a neighbour being discovered.
	OnStep func(Snapshot)

	// OnRecharge is called after the rover was recharged to max.
	OnRecharge func(max float64)

	// OnExcursion is called once per dequeued budget entry.
	OnExcursion func(Excursion)
}

// DefaultOptions returns options with a no-op logger and no-op hooks.
func DefaultOptions() Options {
	return Options{
		Logger:      zap.NewNop(),
		OnStep:      func(Snapshot) {},
		OnRecharge:  func(float64) {},
		OnExcursion: func(Excursion) {},
	}
}

// WithLogger sets the structured logger.
func WithLogger(l *zap.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithRunID fixes the run identifier.
func WithRunID(id string) Option {
	return func(o *Options) { o.RunID = id }
}

// WithOnStep registers a snapshot observer, typically a renderer.
func WithOnStep(fn func(Snapshot)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnStep = fn
		}
	}
}

// WithOnRecharge registers a callback run after each recharge.
func WithOnRecharge(fn func(max float64)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnRecharge = fn
		}
	}
}

// WithOnExcursion registers a callback run for each budget frontier entry.
func WithOnExcursion(fn func(Excursion)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnExcursion = fn
		}
	}
}

func buildOptions(opts []Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
