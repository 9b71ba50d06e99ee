package terrain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/surveyor/terrain"
)

// TestDirection_Opposite checks the involution and the offsets of every direction.
func TestDirection_Opposite(t *testing.T) {
	for _, d := range terrain.Directions {
		assert.Equal(t, d, d.Opposite().Opposite(), "opposite(opposite(%v))", d)
		dx, dy := d.Offset()
		ox, oy := d.Opposite().Offset()
		assert.Equal(t, 0, dx+ox, "dx for %v", d)
		assert.Equal(t, 0, dy+oy, "dy for %v", d)
	}
	assert.Equal(t, terrain.Coord{0, -1}, terrain.Home.Step(terrain.North))
	assert.Equal(t, terrain.Coord{-1, 0}, terrain.Home.Step(terrain.West))
}

func TestParseDirection(t *testing.T) {
	for _, d := range terrain.Directions {
		got, err := terrain.ParseDirection(d.String())
		require.NoError(t, err)
		assert.Equal(t, d, got)
	}
	_, err := terrain.ParseDirection("NE")
	assert.ErrorIs(t, err, terrain.ErrBadDirection)
}

// TestGridMap_HomeSeeded verifies a fresh map holds exactly the home marker.
func TestGridMap_HomeSeeded(t *testing.T) {
	m := terrain.NewGridMap()
	assert.Equal(t, 1, m.Len())
	assert.Equal(t, terrain.HomeMarker, m.Get(terrain.Home))
	assert.True(t, m.Traversable(terrain.Home))
	assert.Equal(t, terrain.UnknownMarker, m.Get(terrain.Coord{5, 5}))
	assert.False(t, m.Contains(terrain.Coord{5, 5}))
}

// TestGridMap_Record covers idempotence, conflicts and reserved markers.
func TestGridMap_Record(t *testing.T) {
	m := terrain.NewGridMap()
	c := terrain.Coord{1, 0}

	require.NoError(t, m.Record(c, '.'))
	require.NoError(t, m.Record(c, '.'), "same value must be idempotent")
	assert.ErrorIs(t, m.Record(c, terrain.ObstructedMarker), terrain.ErrTerrainConflict)
	assert.Equal(t, terrain.Symbol('.'), m.Get(c))

	assert.ErrorIs(t, m.Record(terrain.Home, '.'), terrain.ErrTerrainConflict, "home is never overwritten")
	assert.NoError(t, m.Record(terrain.Home, terrain.HomeMarker))
	assert.ErrorIs(t, m.Record(terrain.Coord{2, 0}, terrain.HomeMarker), terrain.ErrReservedSymbol)
	assert.ErrorIs(t, m.Record(terrain.Coord{2, 0}, terrain.UnknownMarker), terrain.ErrReservedSymbol)
	assert.False(t, m.Contains(terrain.Coord{2, 0}))
}

// TestGridMap_ObstructedNeverFlips ensures an obstructed cell cannot become open.
func TestGridMap_ObstructedNeverFlips(t *testing.T) {
	m := terrain.NewGridMap()
	c := terrain.Coord{0, 1}
	require.NoError(t, m.Record(c, terrain.ObstructedMarker))
	assert.False(t, m.Traversable(c))
	assert.ErrorIs(t, m.Record(c, '.'), terrain.ErrTerrainConflict)
	assert.Equal(t, terrain.ObstructedMarker, m.Get(c))
}

func TestGridMap_BoundsAndCoords(t *testing.T) {
	m := terrain.NewGridMap()
	require.NoError(t, m.Record(terrain.Coord{-2, 1}, '.'))
	require.NoError(t, m.Record(terrain.Coord{3, -1}, '~'))
	require.NoError(t, m.Record(terrain.Coord{0, 1}, terrain.ObstructedMarker))

	b := m.Bounds()
	assert.Equal(t, terrain.Rect{MinX: -2, MinY: -1, MaxX: 3, MaxY: 1}, b)
	assert.Equal(t, 6, b.Width())
	assert.Equal(t, 3, b.Height())

	want := []terrain.Coord{{3, -1}, {0, 0}, {-2, 1}, {0, 1}}
	assert.Equal(t, want, m.Coords())
	assert.Equal(t, 1, m.Count(terrain.ObstructedMarker))
}

func TestGridMap_Clone(t *testing.T) {
	m := terrain.NewGridMap()
	cp := m.Clone()
	require.NoError(t, cp.Record(terrain.Coord{1, 0}, '.'))
	assert.False(t, m.Contains(terrain.Coord{1, 0}), "clone must not alias the original")
}

// TestGridMap_Unresolved lists open cells that still border unknown space.
//
//	X . X
//	X H ?
//	  X
func TestGridMap_Unresolved(t *testing.T) {
	m := terrain.NewGridMap()
	require.NoError(t, m.Record(terrain.Coord{-1, 0}, terrain.ObstructedMarker))
	require.NoError(t, m.Record(terrain.Coord{0, 1}, terrain.ObstructedMarker))
	require.NoError(t, m.Record(terrain.Coord{0, -1}, '.'))
	require.NoError(t, m.Record(terrain.Coord{-1, -1}, terrain.ObstructedMarker))
	require.NoError(t, m.Record(terrain.Coord{1, -1}, terrain.ObstructedMarker))

	assert.Equal(t, []terrain.Coord{{0, -1}, {0, 0}}, m.Unresolved())

	require.NoError(t, m.Record(terrain.Coord{0, -2}, terrain.ObstructedMarker))
	require.NoError(t, m.Record(terrain.Coord{1, 0}, terrain.ObstructedMarker))
	assert.Empty(t, m.Unresolved())
}
