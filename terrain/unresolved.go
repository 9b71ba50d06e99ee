package terrain

// Unresolved returns the traversable coordinates that still border at least
// one unrecorded neighbour, in row-major order. An empty result after a run
// means every reachable cell had all four neighbours classified; a non-empty
// one points at an incomplete map (budget rejections, off-surface moves).
//
// Time:   O(N·4), N = recorded cells.
// Memory: O(N) for the output.
func (m *GridMap) Unresolved() []Coord {
	var out []Coord
	for _, c := range m.Coords() {
		if !m.Traversable(c) {
			continue
		}
		for _, n := range c.Neighbors() {
			if !m.Contains(n) {
				out = append(out, c)
				break
			}
		}
	}
	return out
}
