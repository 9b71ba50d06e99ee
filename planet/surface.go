package planet

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/katalvlaran/surveyor/terrain"
)

// Sentinel errors for surface construction.
var (
	// ErrEmptyGrid indicates the input has no rows or no columns.
	ErrEmptyGrid = errors.New("planet: surface must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("planet: all rows must have the same length")
	// ErrNoHome indicates the surface has no home cell.
	ErrNoHome = errors.New("planet: surface has no home cell")
	// ErrMultipleHomes indicates more than one home cell.
	ErrMultipleHomes = errors.New("planet: surface has more than one home cell")
	// ErrReservedSymbol indicates a marker reserved for maps and renderers.
	ErrReservedSymbol = errors.New("planet: reserved symbol in surface")
	// ErrHomeOutside indicates a home position off the surface.
	ErrHomeOutside = errors.New("planet: home position outside the surface")
)

// Surface is an immutable rectangular terrain. Cells[y][x] is indexed in
// surface coordinates; Home is the home cell in the same coordinates.
type Surface struct {
	Width, Height int
	Cells         [][]terrain.Symbol
	Home          terrain.Coord
}

// NewSurface validates rows and returns a deep copy as a Surface.
func NewSurface(rows [][]terrain.Symbol) (*Surface, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(rows), len(rows[0])
	s := &Surface{Width: w, Height: h, Cells: make([][]terrain.Symbol, h)}
	homes := 0
	for y, row := range rows {
		if len(row) != w {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrNonRectangular, y, len(row), w)
		}
		s.Cells[y] = make([]terrain.Symbol, w)
		copy(s.Cells[y], row)
		for x, sym := range row {
			switch sym {
			case terrain.HomeMarker:
				homes++
				s.Home = terrain.Coord{X: x, Y: y}
			case terrain.UnknownMarker, terrain.RoverMarker:
				return nil, fmt.Errorf("%w: %q at row %d col %d", ErrReservedSymbol, sym, y, x)
			}
		}
	}
	switch {
	case homes == 0:
		return nil, ErrNoHome
	case homes > 1:
		return nil, fmt.Errorf("%w: found %d", ErrMultipleHomes, homes)
	}
	return s, nil
}

// Parse reads a surface from text. Trailing blank lines and carriage
// returns are ignored.
func Parse(r io.Reader) (*Surface, error) {
	var rows [][]terrain.Symbol
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := strings.TrimRight(sc.Text(), "\r")
		row := make([]terrain.Symbol, 0, len(line))
		for _, ch := range line {
			row = append(row, terrain.Symbol(ch))
		}
		rows = append(rows, row)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("planet: read surface: %w", err)
	}
	for len(rows) > 0 && len(rows[len(rows)-1]) == 0 {
		rows = rows[:len(rows)-1]
	}
	return NewSurface(rows)
}

// MustParse is Parse for literals known to be valid; it panics otherwise.
func MustParse(text string) *Surface {
	s, err := Parse(strings.NewReader(text))
	if err != nil {
		panic(err)
	}
	return s
}

// Load reads a surface from the file at path.
func Load(path string) (*Surface, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("planet: open %s: %w", path, err)
	}
	defer f.Close()
	s, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("planet: %s: %w", path, err)
	}
	return s, nil
}

// At returns the symbol at home-relative coordinate c and whether c lies on
// the surface.
func (s *Surface) At(c terrain.Coord) (terrain.Symbol, bool) {
	x, y := c.X+s.Home.X, c.Y+s.Home.Y
	if x < 0 || x >= s.Width || y < 0 || y >= s.Height {
		return 0, false
	}
	return s.Cells[y][x], true
}

// WriteTo writes the surface in the format Parse reads.
func (s *Surface) WriteTo(w io.Writer) (int64, error) {
	bw := bufio.NewWriter(w)
	var n int64
	for _, row := range s.Cells {
		for _, sym := range row {
			k, err := bw.WriteRune(rune(sym))
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

// String renders the surface as text.
func (s *Surface) String() string {
	var sb strings.Builder
	_, _ = s.WriteTo(&sb)
	return sb.String()
}
