package maze

import "math/rand"

// RandomizeWalls clears the maze and then turns every cell other than the
// entrance and exit into a wall with probability ratio. A nil rng uses the
// DefaultSeed stream. A ratio outside [0,1] is clamped.
// Returns the number of walls placed.
//
// The result is not guaranteed to be solvable; use ShortestPathLen to check.
//
// Complexity: O(R×C).
func (m *Maze) RandomizeWalls(rng *rand.Rand, ratio float64) int {
	if rng == nil {
		rng = NewRand(0)
	}
	switch {
	case ratio < 0:
		ratio = 0
	case ratio > 1:
		ratio = 1
	}

	m.Clear()
	placed := 0
	for i := range m.nodes {
		n := &m.nodes[i]
		if n.entrance || n.exit {
			continue
		}
		if rng.Float64() < ratio {
			n.wall = true
			placed++
		}
	}

	return placed
}
