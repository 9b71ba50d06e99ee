package explore

import (
	"fmt"
	"math"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/katalvlaran/surveyor/pathplan"
	"github.com/katalvlaran/surveyor/terrain"
)

// run is the state of a single mapping pass. It is created by Run and
// dropped when Run returns.
type run struct {
	id    string
	mode  Mode
	rover Rover
	max   float64
	opts  Options
	log   *zap.Logger
	m     *terrain.GridMap
	pos   terrain.Coord
	stats Stats
}

func newRun(r Rover, mode Mode, max float64, o Options) *run {
	id := o.RunID
	if id == "" {
		id = uuid.NewString()
	}
	return &run{
		id:    id,
		mode:  mode,
		rover: r,
		max:   max,
		opts:  o,
		log:   o.Logger.With(zap.String("run_id", id), zap.String("mode", string(mode))),
		m:     terrain.NewGridMap(),
		pos:   terrain.Home,
	}
}

// emit publishes a snapshot of the current state.
func (st *run) emit() { st.emitAt(st.pos) }

// emitAt publishes a snapshot with the rover drawn at pos.
func (st *run) emitAt(pos terrain.Coord) {
	st.opts.OnStep(Snapshot{
		RunID:      st.id,
		Mode:       st.mode,
		Pos:        pos,
		Map:        st.m,
		Battery:    st.rover.Battery(),
		MaxBattery: st.max,
	})
}

func (st *run) record(c terrain.Coord, s terrain.Symbol) error {
	if err := st.m.Record(c, s); err != nil {
		return fmt.Errorf("explore: record %v: %w", c, err)
	}
	return nil
}

// move makes one real move and advances the tracked position on success.
func (st *run) move(d terrain.Direction) MoveResult {
	res := st.rover.Move(d)
	if res.OK {
		st.pos = st.pos.Step(d)
		st.stats.Moves++
		st.emit()
	}
	return res
}

// walk follows p move by move and returns how many moves succeeded.
func (st *run) walk(p pathplan.Path) (int, bool) {
	for i, d := range p {
		if res := st.move(d); !res.OK {
			st.log.Debug("walk interrupted",
				zap.Stringer("at", st.pos),
				zap.Stringer("dir", d),
				zap.String("reason", string(res.Reason)))
			return i, false
		}
	}
	return len(p), true
}

// travelTo plans a route over known ground from the tracked position to c
// and walks it.
func (st *run) travelTo(c terrain.Coord) bool {
	p, ok := pathplan.FindPath(st.m, st.pos, c)
	if !ok {
		st.log.Debug("no known route", zap.Stringer("from", st.pos), zap.Stringer("to", c))
		return false
	}
	_, ok = st.walk(p)
	return ok
}

// probe runs one probe-and-return transaction from the tracked position and
// records an open or obstructed neighbour. The neighbour is recorded and
// published while the rover stands on it. A failed rollback leaves the
// tracked position on the neighbour.
func (st *run) probe(d terrain.Direction) (ProbeOutcome, error) {
	n := st.pos.Step(d)
	var enterErr error
	out := probe(st.rover, d, func(s terrain.Symbol) {
		if enterErr = st.record(n, s); enterErr == nil {
			st.emitAt(n)
		}
	})
	st.stats.Probes++
	st.stats.Moves += out.Moves
	if enterErr != nil {
		return out, enterErr
	}

	switch out.Kind {
	case ProbeOpen:
		if err := st.record(n, out.Symbol); err != nil {
			return out, err
		}
		if !out.Returned {
			st.pos = n
			st.log.Warn("probe could not return",
				zap.Stringer("at", n),
				zap.String("reason", string(out.Reason)))
		}
	case ProbeObstructed:
		if err := st.record(n, terrain.ObstructedMarker); err != nil {
			return out, err
		}
		st.stats.Obstructed++
	default:
		st.stats.Unresolved++
		st.log.Debug("neighbour left unresolved",
			zap.Stringer("at", n),
			zap.String("reason", string(out.Reason)))
	}
	st.emit()
	return out, nil
}

// recharge docks the rover and checks that it is home with exactly max
// energy.
func (st *run) recharge() error {
	st.rover.Recharge()
	st.stats.Recharges++
	if got := st.rover.Battery(); got != st.max {
		return fmt.Errorf("%w: got %v, want %v", ErrRechargeMismatch, got, st.max)
	}
	if s := st.rover.Sense(); s != terrain.HomeMarker {
		return fmt.Errorf("%w: sensed %v, tracked at %v", ErrNotDocked, s, st.pos)
	}
	st.pos = terrain.Home
	st.log.Debug("recharged", zap.Float64("battery", st.max))
	st.opts.OnRecharge(st.max)
	st.emit()
	return nil
}

func (st *run) finish() (*Result, error) {
	g, err := terrain.Densify(st.m)
	if err != nil {
		return nil, err
	}
	st.log.Info("mapping finished",
		zap.Int("cells", st.m.Len()),
		zap.Int("rows", g.Rows()),
		zap.Int("cols", g.Cols()),
		zap.Object("stats", st.stats))
	return &Result{RunID: st.id, Mode: st.mode, Map: st.m, Grid: g, Stats: st.stats}, nil
}

func batteryField(b float64) zap.Field {
	if math.IsInf(b, 1) {
		return zap.String("battery", "inf")
	}
	return zap.Float64("battery", b)
}
