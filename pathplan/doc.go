// Package pathplan finds shortest rover routes over the known part of a
// terrain.GridMap.
//
// What
//
//   - Breadth-first search from start to end, stepping only onto coordinates
//     that are recorded and not obstructed.
//   - Neighbours are expanded in the fixed order N, E, S, W, so the returned
//     route is reproducible for a given map.
//   - The result is a Path: the sequence of Directions to move.
//
// Outcomes
//
//   - start == end: an empty, non-nil Path and true.
//   - No route (target never recorded, obstructed, or walled in): nil, false.
//     This is an ordinary answer, not a failure.
//
// Options
//
//   - WithMaxDepth(d): give up on routes longer than d steps (d > 0).
//   - WithFilter(fn):  skip steps for which fn(from, to) == false.
//
// Complexity (N = recorded cells)
//
//   - Time:   O(N)
//   - Memory: O(N) for the queue and parent links.
package pathplan
