package explore

import (
	"fmt"
	"math"

	"github.com/zyedidia/generic/mapset"
	"github.com/zyedidia/generic/queue"
	"go.uber.org/zap"

	"github.com/katalvlaran/surveyor/pathplan"
	"github.com/katalvlaran/surveyor/terrain"
)

// Entry is a budget frontier item: a discovered open cell and the moves
// that lead to it from home.
type Entry struct {
	At   terrain.Coord
	Path pathplan.Path
}

// BudgetExplorer maps terrain with a rover whose excursions are bounded by
// its battery. It holds configuration only; every Run starts fresh.
type BudgetExplorer struct {
	max  float64
	opts Options
}

// NewBudgetExplorer returns an explorer for a rover with maxBattery energy
// when fully charged.
func NewBudgetExplorer(maxBattery float64, opts ...Option) *BudgetExplorer {
	return &BudgetExplorer{max: maxBattery, opts: buildOptions(opts)}
}

// MaxBattery returns the configured full-charge energy.
func (b *BudgetExplorer) MaxBattery() float64 { return b.max }

// Run explores breadth-first from home, one round trip per frontier entry,
// until the frontier is empty. Entries whose round trip does not fit the
// battery at dequeue time are dropped and never retried.
func (b *BudgetExplorer) Run(r Rover) (*Result, error) {
	if r == nil {
		return nil, ErrNilRover
	}
	if b.max <= 0 || math.IsInf(b.max, 0) || math.IsNaN(b.max) {
		return nil, fmt.Errorf("%w: %v", ErrInvalidBudget, b.max)
	}
	st := newRun(r, ModeBudget, b.max, b.opts)
	st.log.Info("mapping started", batteryField(r.Battery()), zap.Float64("max_battery", b.max))
	st.emit()

	visited := mapset.New[terrain.Coord]()
	visited.Put(terrain.Home)
	frontier := queue.New[Entry]()
	frontier.Enqueue(Entry{At: terrain.Home, Path: pathplan.Path{}})

	for !frontier.Empty() {
		e := frontier.Dequeue()
		ex, err := b.excursion(st, e, func(n Entry) {
			if visited.Has(n.At) {
				return
			}
			visited.Put(n.At)
			frontier.Enqueue(n)
		})
		st.opts.OnExcursion(ex)
		if err != nil {
			return nil, err
		}
	}
	return st.finish()
}

// excursion handles one frontier entry: gate, walk out, verify, probe up to
// kMax neighbours, walk home and recharge.
func (b *BudgetExplorer) excursion(st *run, e Entry, admit func(Entry)) (Excursion, error) {
	d := e.Path.Len()
	ex := Excursion{At: e.At, Depth: d, BatteryAtDequeue: st.rover.Battery()}
	log := st.log.With(zap.Stringer("target", e.At), zap.Int("depth", d))

	if !roundTripFits(d, ex.BatteryAtDequeue) {
		st.stats.Rejected++
		log.Debug("round trip exceeds battery", batteryField(ex.BatteryAtDequeue))
		return ex, nil
	}
	ex.Committed = true

	walked, ok := st.walk(e.Path)
	if ok {
		if sensed, want := st.rover.Sense(), st.m.Get(e.At); sensed != want {
			log.Warn("terrain mismatch at target",
				zap.Stringer("sensed", sensed),
				zap.Stringer("recorded", want))
			ok = false
		}
	}
	if !ok {
		ex.Abandoned = true
		st.stats.Abandoned++
		log.Warn("branch abandoned", zap.Int("walked", walked))
		return ex, b.goHome(st, e.Path[:walked], false)
	}
	st.stats.Expanded++

	ex.BatteryAtTarget = st.rover.Battery()
	ex.KMax = KMax(ex.BatteryAtTarget)
	for _, dir := range terrain.Directions {
		if ex.Attempted >= ex.KMax {
			break
		}
		n := e.At.Step(dir)
		if st.m.Contains(n) {
			continue
		}
		out, err := st.probe(dir)
		if err != nil {
			return ex, err
		}
		switch out.Kind {
		case ProbeOpen:
			ex.Attempted++
			admit(Entry{At: n, Path: e.Path.Extend(dir)})
		case ProbeObstructed:
			ex.Attempted++
		}
		if !out.Returned {
			break
		}
	}
	return ex, b.goHome(st, e.Path, true)
}

// goHome retraces p from its end back to home. A completed excursion
// recharges when the battery is below max; an abandoned one does not. A
// rover that cannot retrace is stranded and recovered by a recharge, which
// docks it at home.
func (b *BudgetExplorer) goHome(st *run, p pathplan.Path, completed bool) error {
	at := p.Walk(terrain.Home)
	if st.pos == at {
		if _, ok := st.walk(p.Reverse()); ok {
			if completed && st.rover.Battery() < b.max {
				return st.recharge()
			}
			return nil
		}
	}
	st.stats.Strandings++
	st.log.Warn("rover stranded, recovering at base",
		zap.Stringer("pos", st.pos),
		batteryField(st.rover.Battery()))
	return st.recharge()
}
