package pathplan

import (
	"strings"

	"github.com/katalvlaran/surveyor/terrain"
)

// Path is an ordered list of moves.
type Path []terrain.Direction

// Len returns the number of moves.
func (p Path) Len() int { return len(p) }

// Reverse returns the moves that retrace p back to its origin:
// opposite directions in reverse order.
func (p Path) Reverse() Path {
	out := make(Path, len(p))
	for i, d := range p {
		out[len(p)-1-i] = d.Opposite()
	}
	return out
}

// Extend returns a copy of p with d appended. p itself is never modified,
// so frontier entries sharing a prefix do not alias each other.
func (p Path) Extend(d terrain.Direction) Path {
	out := make(Path, len(p), len(p)+1)
	copy(out, p)
	return append(out, d)
}

// Walk returns the coordinate reached by following p from start.
func (p Path) Walk(start terrain.Coord) terrain.Coord {
	for _, d := range p {
		start = start.Step(d)
	}
	return start
}

// String renders the moves as a compact string such as "NNEW".
func (p Path) String() string {
	var sb strings.Builder
	for _, d := range p {
		sb.WriteString(d.String())
	}
	return sb.String()
}
