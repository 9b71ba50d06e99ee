package terrain

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// Grid is a dense, rectangular view of a GridMap. Cells[row][col] maps to
// coordinate (Origin.X+col, Origin.Y+row).
type Grid struct {
	Origin Coord
	Cells  [][]Symbol
}

// Densify converts the sparse map into a Grid spanning the bounding box of all
// recorded coordinates. Cells inside the box that were never recorded hold
// UnknownMarker. Returns ErrEmptyMap for a nil or empty map.
// Complexity: O(N + W×H) time and memory.
func Densify(m *GridMap) (Grid, error) {
	if m == nil || m.Len() == 0 {
		return Grid{}, ErrEmptyMap
	}
	b := m.Bounds()
	cells := make([][]Symbol, b.Height())
	for row := range cells {
		cells[row] = make([]Symbol, b.Width())
		for col := range cells[row] {
			cells[row][col] = m.Get(Coord{b.MinX + col, b.MinY + row})
		}
	}
	return Grid{Origin: Coord{b.MinX, b.MinY}, Cells: cells}, nil
}

// Rows returns the number of rows.
func (g Grid) Rows() int { return len(g.Cells) }

// Cols returns the number of columns.
func (g Grid) Cols() int {
	if len(g.Cells) == 0 {
		return 0
	}
	return len(g.Cells[0])
}

// At returns the symbol at (row, col).
func (g Grid) At(row, col int) Symbol { return g.Cells[row][col] }

// Locate returns the (row, col) position of coordinate c inside g.
func (g Grid) Locate(c Coord) (row, col int, ok bool) {
	row, col = c.Y-g.Origin.Y, c.X-g.Origin.X
	ok = row >= 0 && row < g.Rows() && col >= 0 && col < g.Cols()
	return row, col, ok
}

// String renders the grid exactly as WriteTo does.
func (g Grid) String() string {
	var sb strings.Builder
	_, _ = g.WriteTo(&sb)
	return sb.String()
}

// WriteTo writes one newline-terminated line per row, top to bottom, each the
// concatenation of its symbols left to right.
func (g Grid) WriteTo(w io.Writer) (int64, error) {
	bw := bufio.NewWriter(w)
	var n int64
	for _, row := range g.Cells {
		for _, s := range row {
			k, err := bw.WriteRune(rune(s))
			n += int64(k)
			if err != nil {
				return n, err
			}
		}
		if err := bw.WriteByte('\n'); err != nil {
			return n, err
		}
		n++
	}
	return n, bw.Flush()
}

// SaveGrid writes g to the file at path, truncating any existing content.
func SaveGrid(path string, g Grid) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("terrain: create %s: %w", path, err)
	}
	if _, err := g.WriteTo(f); err != nil {
		_ = f.Close()
		return fmt.Errorf("terrain: write %s: %w", path, err)
	}
	return f.Close()
}
