// Package terrain holds the shared vocabulary of a surveying run: integer
// coordinates, compass directions, terrain symbols and the sparse GridMap the
// explorers fill in as the rover senses its surroundings.
//
// What:
//
//   - Coord and Direction with N, E, S, W offsets (y grows southwards).
//   - Symbol markers for home ('H'), obstructed ('X') and unknown ('?') cells.
//   - GridMap: coordinate → symbol, home seeded at (0,0) and never overwritten.
//   - Densify: sparse map → dense rectangular Grid over the discovered extent.
//   - Grid.WriteTo / SaveGrid: flat text dump, one line per row, no delimiters.
//   - Unresolved: open cells that still border unrecorded coordinates.
//
// Complexity:
//
//   - Record, Get, Contains: O(1) expected.
//   - Bounds, Densify:       O(N + W×H), N = recorded cells.
//   - Unresolved:            O(N×4).
//
// Errors:
//
//   - ErrTerrainConflict: a coordinate already holds a different symbol.
//   - ErrReservedSymbol:  home or unknown marker recorded away from home.
//   - ErrEmptyMap:        densifying a map with no recorded cells.
package terrain
