package pathplan

import (
	"github.com/zyedidia/generic/queue"

	"github.com/katalvlaran/surveyor/terrain"
)

// queueItem pairs a coordinate with its BFS depth.
type queueItem struct {
	at    terrain.Coord
	depth int
}

// walker encapsulates mutable search state.
type walker struct {
	m      *terrain.GridMap
	opts   Options
	end    terrain.Coord
	queue  *queue.Queue[queueItem]
	parent map[terrain.Coord]terrain.Direction
	seen   map[terrain.Coord]bool
}

// FindPath returns the shortest sequence of moves from start to end that
// steps only on recorded, non-obstructed coordinates of m.
// The boolean is false when no such route exists or an option is invalid.
func FindPath(m *terrain.GridMap, start, end terrain.Coord, opts ...Option) (Path, bool) {
	o, err := build(opts)
	if err != nil || m == nil {
		return nil, false
	}
	if start == end {
		return Path{}, true
	}
	if !m.Traversable(end) {
		return nil, false
	}

	w := &walker{
		m:      m,
		opts:   o,
		end:    end,
		queue:  queue.New[queueItem](),
		parent: make(map[terrain.Coord]terrain.Direction),
		seen:   map[terrain.Coord]bool{start: true},
	}
	w.queue.Enqueue(queueItem{at: start})
	if !w.loop() {
		return nil, false
	}
	return w.pathTo(start), true
}

// loop expands the queue until end is reached or the queue drains.
func (w *walker) loop() bool {
	for !w.queue.Empty() {
		item := w.queue.Dequeue()
		next := item.depth + 1
		if w.opts.MaxDepth > 0 && next > w.opts.MaxDepth {
			continue
		}
		for _, d := range terrain.Directions {
			nbr := item.at.Step(d)
			if w.seen[nbr] || !w.m.Traversable(nbr) || !w.opts.Filter(item.at, nbr) {
				continue
			}
			w.seen[nbr] = true
			w.parent[nbr] = d
			if nbr == w.end {
				return true
			}
			w.queue.Enqueue(queueItem{at: nbr, depth: next})
		}
	}
	return false
}

// pathTo rebuilds the route by following parent directions back to start.
func (w *walker) pathTo(start terrain.Coord) Path {
	var rev Path
	for cur := w.end; cur != start; {
		d := w.parent[cur]
		rev = append(rev, d)
		cur = cur.Step(d.Opposite())
	}
	out := make(Path, len(rev))
	for i, d := range rev {
		out[len(rev)-1-i] = d
	}
	return out
}
