package maze_test

import (
	"testing"

	"github.com/katalvlaran/mazewalk/maze"
)

// BenchmarkNeighbors measures adjacency lookups over the largest menu size.
func BenchmarkNeighbors(b *testing.B) {
	l := maze.DefaultLayout()
	l.CellSize = 5
	m, _ := maze.NewFromLayout(l)
	m.RandomizeWalls(maze.NewRand(3), maze.DefaultWallRatio)
	n := m.Len()

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = m.Neighbors(i % n)
	}
}

// BenchmarkShortestPathLen runs the reference BFS on an open 150×120 grid.
func BenchmarkShortestPathLen(b *testing.B) {
	l := maze.DefaultLayout()
	l.CellSize = 5
	m, _ := maze.NewFromLayout(l)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = m.ShortestPathLen(m.EntranceID(), m.ExitID())
	}
}
