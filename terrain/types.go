package terrain

import (
	"errors"
	"fmt"
)

// Sentinel errors for terrain operations.
var (
	// ErrTerrainConflict indicates a coordinate already holds a different symbol.
	ErrTerrainConflict = errors.New("terrain: coordinate already recorded with a different symbol")
	// ErrReservedSymbol indicates a marker that may not be recorded at the given coordinate.
	ErrReservedSymbol = errors.New("terrain: reserved symbol")
	// ErrEmptyMap indicates densification of a map without recorded cells.
	ErrEmptyMap = errors.New("terrain: map has no recorded cells")
	// ErrBadDirection indicates an unparsable direction name.
	ErrBadDirection = errors.New("terrain: unknown direction")
)

// Symbol is a single sensed terrain glyph.
type Symbol rune

const (
	// HomeMarker marks the rover's base at (0,0).
	HomeMarker Symbol = 'H'
	// ObstructedMarker marks a cell the rover cannot enter.
	ObstructedMarker Symbol = 'X'
	// UnknownMarker fills cells that were never sensed.
	UnknownMarker Symbol = '?'
	// RoverMarker is used by renderers only; it is never recorded.
	RoverMarker Symbol = 'R'
)

// Traversable reports whether a cell holding s can be walked over.
func (s Symbol) Traversable() bool {
	return s != ObstructedMarker && s != UnknownMarker
}

// String returns the glyph as a one-rune string.
func (s Symbol) String() string { return string(rune(s)) }

// Coord is an integer grid position. X grows eastwards, Y southwards.
type Coord struct {
	X, Y int
}

// Home is the fixed base coordinate.
var Home = Coord{0, 0}

// Step returns the coordinate one cell away in direction d.
func (c Coord) Step(d Direction) Coord {
	dx, dy := d.Offset()
	return Coord{c.X + dx, c.Y + dy}
}

// Neighbors returns the four orthogonal neighbours in Directions order.
func (c Coord) Neighbors() [4]Coord {
	var out [4]Coord
	for i, d := range Directions {
		out[i] = c.Step(d)
	}
	return out
}

// String formats the coordinate as "(x, y)".
func (c Coord) String() string {
	return fmt.Sprintf("(%d, %d)", c.X, c.Y)
}

// Direction is one of the four compass moves.
type Direction uint8

const (
	North Direction = iota
	East
	South
	West
)

// Directions lists the compass moves in the fixed exploration order.
var Directions = [4]Direction{North, East, South, West}

// offsets follows Directions order: N, E, S, W.
var offsets = [4][2]int{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}

var directionNames = [4]string{"N", "E", "S", "W"}

// Offset returns the unit vector of d.
func (d Direction) Offset() (dx, dy int) {
	o := offsets[d%4]
	return o[0], o[1]
}

// Opposite returns the reverse direction. Opposite(Opposite(d)) == d.
func (d Direction) Opposite() Direction {
	return (d + 2) % 4
}

func (d Direction) String() string {
	if d > West {
		return fmt.Sprintf("Direction(%d)", uint8(d))
	}
	return directionNames[d]
}

// ParseDirection accepts "N", "E", "S" or "W".
func ParseDirection(s string) (Direction, error) {
	for i, name := range directionNames {
		if name == s {
			return Direction(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrBadDirection, s)
}
