package explore

import (
	"errors"

	"go.uber.org/zap/zapcore"

	"github.com/katalvlaran/surveyor/terrain"
)

// Sentinel errors for explorer runs.
var (
	// ErrNilRover is returned when Run is given no rover.
	ErrNilRover = errors.New("explore: rover is nil")
	// ErrInvalidBudget is returned for a non-positive or non-finite maximum battery.
	ErrInvalidBudget = errors.New("explore: max battery must be finite and positive")
	// ErrRechargeMismatch is returned when a recharge does not restore the maximum battery.
	ErrRechargeMismatch = errors.New("explore: battery after recharge differs from max")
	// ErrNotDocked is returned when a recharged rover does not sense home under it.
	ErrNotDocked = errors.New("explore: rover not at home after recharge")
)

// Stats counts what happened during a run.
type Stats struct {
	// Expanded frontier entries whose neighbours were probed.
	Expanded int
	// Moves that succeeded, probes included.
	Moves int
	// Probes attempted.
	Probes int
	// Obstructed neighbours recorded.
	Obstructed int
	// Unresolved probes that failed for a reason other than obstruction.
	Unresolved int
	// Rejected budget entries whose round trip did not fit.
	Rejected int
	// Abandoned entries: unreachable, failed walk or terrain mismatch.
	Abandoned int
	// Recharges performed.
	Recharges int
	// Strandings: the rover could not make it back and was docked by recharge.
	Strandings int
}

// MarshalLogObject lets Stats be logged with zap.Object.
func (s Stats) MarshalLogObject(enc zapcore.ObjectEncoder) error {
	enc.AddInt("expanded", s.Expanded)
	enc.AddInt("moves", s.Moves)
	enc.AddInt("probes", s.Probes)
	enc.AddInt("obstructed", s.Obstructed)
	enc.AddInt("unresolved", s.Unresolved)
	enc.AddInt("rejected", s.Rejected)
	enc.AddInt("abandoned", s.Abandoned)
	enc.AddInt("recharges", s.Recharges)
	enc.AddInt("strandings", s.Strandings)
	return nil
}

// Result is the outcome of one mapping run.
type Result struct {
	RunID string
	Mode  Mode
	Map   *terrain.GridMap
	Grid  terrain.Grid
	Stats Stats
}
