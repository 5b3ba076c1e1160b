package solver_test

import (
	"math/rand"
	"sync"
	"testing"
	"time"

	"github.com/katalvlaran/mazewalk/maze"
	"github.com/katalvlaran/mazewalk/solver"
)

// zeroSource makes rand.Rand.Intn always return 0, so DFS always draws the
// first remaining candidate (swap-remove order: a, last, ...).
type zeroSource struct{}

func (zeroSource) Int63() int64 { return 0 }
func (zeroSource) Seed(int64)   {}

func firstPick() *rand.Rand { return rand.New(zeroSource{}) }

// fakeClock is a manually advanced clock.
type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	c.now = c.now.Add(d)
	c.mu.Unlock()
}

// mustMaze builds a rows×columns maze with the given walls.
func mustMaze(t testing.TB, rows, columns int, walls ...int) *maze.Maze {
	t.Helper()
	m, err := maze.New(rows, columns)
	if err != nil {
		t.Fatalf("maze.New(%d,%d): %v", rows, columns, err)
	}
	for _, w := range walls {
		if err := m.SetWall(w); err != nil {
			t.Fatalf("SetWall(%d): %v", w, err)
		}
	}
	return m
}

// tickToEnd ticks e until a terminal state, failing after limit ticks.
func tickToEnd(t testing.TB, e *solver.Engine, limit int) solver.State {
	t.Helper()
	for i := 0; i < limit; i++ {
		if s := e.Tick(); s.Terminal() {
			return s
		}
	}
	t.Fatalf("run did not end within %d ticks", limit)
	return e.State()
}

// checkPath verifies that path runs exit→entrance over open, adjacent cells.
func checkPath(t testing.TB, m *maze.Maze, path []int) {
	t.Helper()
	if len(path) == 0 {
		t.Fatal("empty path")
	}
	if path[0] != m.ExitID() || path[len(path)-1] != m.EntranceID() {
		t.Fatalf("path %v does not run exit→entrance", path)
	}
	for i, id := range path {
		n, err := m.Node(id)
		if err != nil || n.IsWall() {
			t.Fatalf("path step %d (%d) is invalid or a wall", i, id)
		}
		if i == 0 {
			continue
		}
		r1, c1 := m.Coordinate(path[i-1])
		r2, c2 := m.Coordinate(id)
		if abs(r1-r2)+abs(c1-c2) != 1 {
			t.Fatalf("path steps %d→%d are not adjacent", path[i-1], id)
		}
	}
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
