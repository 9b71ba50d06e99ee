package explore_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/surveyor/explore"
	"github.com/katalvlaran/surveyor/planet"
	"github.com/katalvlaran/surveyor/rover"
	"github.com/katalvlaran/surveyor/terrain"
)

// expectedMap computes what an exhaustive survey of s must record: every
// open cell reachable from home and every obstruction bordering one.
func expectedMap(t *testing.T, s *planet.Surface) map[terrain.Coord]terrain.Symbol {
	t.Helper()
	want := map[terrain.Coord]terrain.Symbol{terrain.Home: terrain.HomeMarker}
	queue := []terrain.Coord{terrain.Home}
	for len(queue) > 0 {
		c := queue[0]
		queue = queue[1:]
		for _, n := range c.Neighbors() {
			if _, seen := want[n]; seen {
				continue
			}
			sym, ok := s.At(n)
			if !ok {
				continue
			}
			want[n] = sym
			if sym != terrain.ObstructedMarker {
				queue = append(queue, n)
			}
		}
	}
	return want
}

// assertSurveyed fails with a per-cell diff when m differs from want.
func assertSurveyed(t *testing.T, want map[terrain.Coord]terrain.Symbol, m *terrain.GridMap) {
	t.Helper()
	if diff := cmp.Diff(want, recorded(m)); diff != "" {
		t.Errorf("surveyed map mismatch (-want +got):\n%s", diff)
	}
}

// recorded flattens a GridMap into a plain map for comparisons.
func recorded(m *terrain.GridMap) map[terrain.Coord]terrain.Symbol {
	out := make(map[terrain.Coord]terrain.Symbol, m.Len())
	for _, c := range m.Coords() {
		out[c] = m.Get(c)
	}
	return out
}

func corridor(n int) *planet.Surface {
	text := "H"
	for i := 1; i < n; i++ {
		text += "."
	}
	return planet.MustParse(text + "\n")
}

// fickleRover reports a different symbol at target from its second visit on.
type fickleRover struct {
	*rover.Rover
	target terrain.Coord
	visits int
}

func (f *fickleRover) Sense() terrain.Symbol {
	s := f.Rover.Sense()
	if f.Position() == f.target {
		f.visits++
		if f.visits > 1 {
			return '#'
		}
	}
	return s
}

// stormyRover fails the failOn-th move east from position at with a
// non-obstruction reason.
type stormyRover struct {
	*rover.Rover
	at     terrain.Coord
	failOn int
	calls  int
}

func (s *stormyRover) Move(d terrain.Direction) explore.MoveResult {
	if d == terrain.East && s.Position() == s.at {
		s.calls++
		if s.calls == s.failOn {
			return explore.MoveResult{Reason: "Dust Storm"}
		}
	}
	return s.Rover.Move(d)
}

// weakCharger never charges past cap.
type weakCharger struct {
	*rover.Rover
	cap float64
}

func (w *weakCharger) Battery() float64 { return min(w.Rover.Battery(), w.cap) }

// peekingRover answers probes from the surface without moving.
type peekingRover struct {
	*rover.Rover
	surface *planet.Surface
	peeks   int
}

func (p *peekingRover) Peek(d terrain.Direction) (terrain.Symbol, explore.MoveResult) {
	p.peeks++
	sym, ok := p.surface.At(p.Position().Step(d))
	switch {
	case !ok:
		return 0, explore.MoveResult{Reason: rover.ReasonOutOfBounds}
	case sym == terrain.ObstructedMarker:
		return 0, explore.MoveResult{Reason: explore.ReasonObstructed}
	}
	return sym, explore.MoveResult{OK: true}
}

// oneWayRover refuses to move in back.
type oneWayRover struct {
	*rover.Rover
	back terrain.Direction
}

func (o *oneWayRover) Move(d terrain.Direction) explore.MoveResult {
	if d == o.back {
		return explore.MoveResult{Reason: "Jammed Wheel"}
	}
	return o.Rover.Move(d)
}

// lineRover is a stand-alone Rover on a one-row strip that starts at home
// (column 0). With dock set, Recharge returns it to home; otherwise it only
// refills the battery where it stands.
type lineRover struct {
	cells   []terrain.Symbol
	x       int
	battery float64
	max     float64
	dock    bool
}

func newLineRover(row string, max float64, dock bool) *lineRover {
	return &lineRover{cells: []terrain.Symbol(row), battery: max, max: max, dock: dock}
}

func (l *lineRover) Move(d terrain.Direction) explore.MoveResult {
	dx, dy := d.Offset()
	next := l.x + dx
	switch {
	case dy != 0 || next < 0 || next >= len(l.cells):
		return explore.MoveResult{Reason: "Edge of Strip"}
	case l.cells[next] == terrain.ObstructedMarker:
		return explore.MoveResult{Reason: explore.ReasonObstructed}
	case l.battery < 1:
		return explore.MoveResult{Reason: "Flat Battery"}
	}
	l.battery--
	l.x = next
	return explore.MoveResult{OK: true}
}

func (l *lineRover) Sense() terrain.Symbol { return l.cells[l.x] }
func (l *lineRover) Battery() float64      { return l.battery }

func (l *lineRover) Recharge() {
	l.battery = l.max
	if l.dock {
		l.x = 0
	}
}

func mustRun(t *testing.T, run func(explore.Rover) (*explore.Result, error), r explore.Rover) *explore.Result {
	t.Helper()
	res, err := run(r)
	require.NoError(t, err)
	require.NotNil(t, res)
	return res
}
