package explore

import (
	"math"

	"github.com/zyedidia/generic/mapset"
	"github.com/zyedidia/generic/queue"
	"go.uber.org/zap"

	"github.com/katalvlaran/surveyor/terrain"
)

// Explorer maps terrain assuming the rover never runs out of energy.
// It holds configuration only; every Run starts from a fresh state.
type Explorer struct {
	opts Options
}

// NewExplorer returns an unlimited-energy explorer.
func NewExplorer(opts ...Option) *Explorer {
	return &Explorer{opts: buildOptions(opts)}
}

// Run explores breadth-first from home until the frontier is empty and
// returns the recorded map. Every neighbour of every reached cell is probed
// once: open cells join the frontier, obstructed cells are recorded as 'X',
// other failures are left unresolved.
func (e *Explorer) Run(r Rover) (*Result, error) {
	if r == nil {
		return nil, ErrNilRover
	}
	st := newRun(r, ModeUnlimited, math.Inf(1), e.opts)
	st.log.Info("mapping started", batteryField(r.Battery()))
	st.emit()

	visited := mapset.New[terrain.Coord]()
	visited.Put(terrain.Home)
	frontier := queue.New[terrain.Coord]()
	frontier.Enqueue(terrain.Home)

	for !frontier.Empty() {
		c := frontier.Dequeue()
		if st.pos != c && !st.travelTo(c) {
			st.stats.Abandoned++
			st.log.Warn("frontier cell unreachable", zap.Stringer("at", c), zap.Stringer("pos", st.pos))
			continue
		}
		st.stats.Expanded++

		for _, d := range terrain.Directions {
			n := c.Step(d)
			if visited.Has(n) {
				continue
			}
			out, err := st.probe(d)
			if err != nil {
				return nil, err
			}
			if out.Kind == ProbeFailed {
				continue
			}
			visited.Put(n)
			if out.Kind != ProbeOpen {
				continue
			}
			frontier.Enqueue(n)
			if !out.Returned && !st.travelTo(c) {
				st.log.Warn("lost contact with frontier cell", zap.Stringer("at", c))
				break
			}
		}
	}
	return st.finish()
}
