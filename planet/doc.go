// Package planet provides the terrain a simulated rover drives over.
//
// A Surface is a rectangular grid of terrain symbols with exactly one home
// cell ('H'). Surfaces come from three places:
//
//   - Parse / Load: plain text, one line per row, one rune per cell.
//   - Samples: the built-in survey targets planet_1 … planet_3.
//   - Generate: a seeded random surface for experiments and benchmarks.
//
// Coordinates passed to Surface.At are home-relative, matching the
// coordinates explorers record: (0,0) is the home cell, y grows southwards.
//
// Errors:
//
//   - ErrEmptyGrid:      no rows or no columns.
//   - ErrNonRectangular: rows of differing lengths.
//   - ErrNoHome:         no 'H' cell.
//   - ErrMultipleHomes:  more than one 'H' cell.
//   - ErrReservedSymbol: '?' or 'R' in the input.
//   - ErrHomeOutside:    Generate asked to place home off the surface.
package planet
