package explore

import (
	"math"

	"github.com/katalvlaran/surveyor/terrain"
)

// Reason explains a failed move.
type Reason string

const (
	// ReasonNone accompanies successful moves.
	ReasonNone Reason = ""
	// ReasonObstructed is the permanent "cannot enter" failure.
	ReasonObstructed Reason = "Obstructed Space"
)

// MoveResult is the outcome of a single move attempt.
type MoveResult struct {
	OK     bool
	Reason Reason
}

// Rover is the movement and sensing capability the explorers drive.
//
// Move advances one cell on success; an obstructed move leaves the position
// unchanged. Sense reports the terrain under the rover. Battery returns the
// remaining energy, possibly +Inf.
//
// Recharge docks the rover: afterwards it stands on home with a full
// battery, wherever it was before. The budget explorer relies on this to
// recover a rover stranded away from home, and fails the run with
// ErrNotDocked when the rover does not sense home after a recharge.
type Rover interface {
	Move(d terrain.Direction) MoveResult
	Sense() terrain.Symbol
	Battery() float64
	Recharge()
}

// Peeker is an optional cheaper probe: it reports what lies in direction d
// without moving the rover. When a Rover also implements Peeker, Probe uses
// it instead of the move, sense, move-back sequence.
type Peeker interface {
	Peek(d terrain.Direction) (terrain.Symbol, MoveResult)
}

// KMax is the number of neighbours a budget excursion may probe with the
// given battery: min(4, floor(battery/2)).
func KMax(battery float64) int {
	if battery < 0 || math.IsNaN(battery) {
		return 0
	}
	if math.IsInf(battery, 1) {
		return len(terrain.Directions)
	}
	return min(len(terrain.Directions), int(math.Floor(battery/2)))
}

// roundTripFits reports whether a path of length d may be committed:
// 2·d <= battery.
func roundTripFits(d int, battery float64) bool {
	return float64(2*d) <= battery
}
