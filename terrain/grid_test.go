package terrain_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/surveyor/terrain"
)

func TestDensify_EmptyMap(t *testing.T) {
	_, err := terrain.Densify(nil)
	assert.ErrorIs(t, err, terrain.ErrEmptyMap)
}

// TestDensify_Dimensions checks row/column counts and placement of every recorded cell.
func TestDensify_Dimensions(t *testing.T) {
	m := terrain.NewGridMap()
	recorded := map[terrain.Coord]terrain.Symbol{
		{-1, -2}: '.',
		{2, 0}:   '~',
		{0, 1}:   terrain.ObstructedMarker,
		{1, 1}:   '^',
	}
	for c, s := range recorded {
		require.NoError(t, m.Record(c, s))
	}
	recorded[terrain.Home] = terrain.HomeMarker

	g, err := terrain.Densify(m)
	require.NoError(t, err)
	assert.Equal(t, 1-(-2)+1, g.Rows())
	assert.Equal(t, 2-(-1)+1, g.Cols())
	for _, row := range g.Cells {
		assert.Len(t, row, g.Cols())
	}
	for c, s := range recorded {
		row, col, ok := g.Locate(c)
		require.True(t, ok, "coordinate %v outside grid", c)
		assert.Equal(t, s, g.At(row, col), "symbol at %v", c)
	}
	assert.Equal(t, terrain.UnknownMarker, g.At(0, 3))
}

func TestGrid_WriteTo(t *testing.T) {
	m := terrain.NewGridMap()
	require.NoError(t, m.Record(terrain.Coord{1, 0}, '.'))
	require.NoError(t, m.Record(terrain.Coord{0, 1}, terrain.ObstructedMarker))

	g, err := terrain.Densify(m)
	require.NoError(t, err)
	assert.Equal(t, "H.\nX?\n", g.String())

	path := filepath.Join(t.TempDir(), "map.txt")
	require.NoError(t, terrain.SaveGrid(path, g))
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "H.\nX?\n", string(data))
}

func TestSaveGrid_BadPath(t *testing.T) {
	g, _ := terrain.Densify(terrain.NewGridMap())
	err := terrain.SaveGrid(filepath.Join(t.TempDir(), "missing", "map.txt"), g)
	assert.Error(t, err)
}
