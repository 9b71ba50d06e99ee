package terrain

import (
	"fmt"
	"sort"
)

// GridMap is the sparse record of sensed terrain built during one run.
// It is owned by a single explorer run and is not safe for concurrent mutation.
type GridMap struct {
	cells map[Coord]Symbol
}

// Rect is an inclusive bounding box.
type Rect struct {
	MinX, MinY, MaxX, MaxY int
}

// Width returns the number of columns spanned by r.
func (r Rect) Width() int { return r.MaxX - r.MinX + 1 }

// Height returns the number of rows spanned by r.
func (r Rect) Height() int { return r.MaxY - r.MinY + 1 }

// NewGridMap returns a map holding only the home marker at Home.
func NewGridMap() *GridMap {
	return &GridMap{cells: map[Coord]Symbol{Home: HomeMarker}}
}

// Record stores s at c. Re-recording the same symbol is a no-op; recording a
// different symbol returns ErrTerrainConflict. The home and unknown markers
// cannot be recorded anywhere but where they already are.
func (m *GridMap) Record(c Coord, s Symbol) error {
	if prev, ok := m.cells[c]; ok {
		if prev != s {
			return fmt.Errorf("%w: %v holds %q, got %q", ErrTerrainConflict, c, prev, s)
		}
		return nil
	}
	if s == HomeMarker || s == UnknownMarker || s == RoverMarker {
		return fmt.Errorf("%w: %q at %v", ErrReservedSymbol, s, c)
	}
	m.cells[c] = s
	return nil
}

// Get returns the symbol at c, or UnknownMarker when c was never recorded.
func (m *GridMap) Get(c Coord) Symbol {
	if s, ok := m.cells[c]; ok {
		return s
	}
	return UnknownMarker
}

// Contains reports whether c has been recorded, obstructed cells included.
func (m *GridMap) Contains(c Coord) bool {
	_, ok := m.cells[c]
	return ok
}

// Traversable reports whether c is recorded and not obstructed.
func (m *GridMap) Traversable(c Coord) bool {
	s, ok := m.cells[c]
	return ok && s.Traversable()
}

// Len returns the number of recorded coordinates.
func (m *GridMap) Len() int { return len(m.cells) }

// Bounds returns the bounding box of all recorded coordinates.
// A fresh map spans just Home.
func (m *GridMap) Bounds() Rect {
	r := Rect{MinX: Home.X, MinY: Home.Y, MaxX: Home.X, MaxY: Home.Y}
	first := true
	for c := range m.cells {
		if first {
			r = Rect{MinX: c.X, MinY: c.Y, MaxX: c.X, MaxY: c.Y}
			first = false
			continue
		}
		r.MinX = min(r.MinX, c.X)
		r.MaxX = max(r.MaxX, c.X)
		r.MinY = min(r.MinY, c.Y)
		r.MaxY = max(r.MaxY, c.Y)
	}
	return r
}

// Coords returns every recorded coordinate in row-major order.
func (m *GridMap) Coords() []Coord {
	out := make([]Coord, 0, len(m.cells))
	for c := range m.cells {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Y != out[j].Y {
			return out[i].Y < out[j].Y
		}
		return out[i].X < out[j].X
	})
	return out
}

// Count returns how many recorded cells hold s.
func (m *GridMap) Count(s Symbol) int {
	n := 0
	for _, v := range m.cells {
		if v == s {
			n++
		}
	}
	return n
}

// Clone returns an independent copy of m.
func (m *GridMap) Clone() *GridMap {
	cells := make(map[Coord]Symbol, len(m.cells))
	for c, s := range m.cells {
		cells[c] = s
	}
	return &GridMap{cells: cells}
}
