// Package maze - RNG utilities shared by wall generation and the solver's
// random neighbor selection.
//
// Goals:
//   - Determinism: same seed ⇒ identical mazes and identical DFS walks.
//   - No hidden time-based sources; callers inject a *rand.Rand or a seed.
//
// Concurrency:
//   - math/rand.Rand is NOT goroutine-safe. Do not share one across goroutines.
package maze

import "math/rand"

// DefaultSeed is the fixed seed used when callers pass seed==0.
const DefaultSeed int64 = 1

// NewRand returns a deterministic *rand.Rand.
// Policy: seed==0 ⇒ DefaultSeed; otherwise the seed is used verbatim.
//
// Complexity: O(1).
func NewRand(seed int64) *rand.Rand {
	s := seed
	if s == 0 {
		s = DefaultSeed
	}
	return rand.New(rand.NewSource(s))
}
