package cli_test

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mazewalk/internal/cli"
	"github.com/katalvlaran/mazewalk/internal/config"
	"github.com/katalvlaran/mazewalk/internal/metrics"
	"github.com/katalvlaran/mazewalk/internal/render"
	"github.com/katalvlaran/mazewalk/solver"
)

// openConfig is the 20-cell (4×5) menu entry without walls and with 1ms ticks.
func openConfig(alg string) config.Config {
	cfg := config.Default()
	cfg.Algorithm = alg
	cfg.Cells = 20
	cfg.TickInterval = 1
	cfg.RandomWalls = false
	return cfg
}

func TestBuildMaze(t *testing.T) {
	cfg := config.Default()
	cfg.Cells = 500

	a, wa, err := cli.BuildMaze(cfg, 42)
	require.NoError(t, err)
	b, wb, err := cli.BuildMaze(cfg, 42)
	require.NoError(t, err)

	assert.Equal(t, 500, a.Len())
	assert.Equal(t, wa, wb, "same seed, same walls")
	assert.Equal(t, wa, a.Walls())
	assert.Equal(t, wb, b.Walls())
	assert.Positive(t, wa)

	cfg.RandomWalls = false
	m, w, err := cli.BuildMaze(cfg, 42)
	require.NoError(t, err)
	assert.Zero(t, w)
	assert.Zero(t, m.Walls())
}

func TestSolve_BFSOpenGrid(t *testing.T) {
	var out, frames bytes.Buffer
	rec := metrics.NewRecorder()
	s := cli.Session{
		Config:   openConfig("bfs"),
		Seed:     7,
		Out:      &out,
		Recorder: rec,
		Renderer: render.New(&frames, render.Plain),
	}

	rep, err := s.Solve(context.Background())
	require.NoError(t, err)
	require.True(t, rep.Result.Found())

	// 4 rows × 5 columns: a shortest route has rows+columns-1 nodes.
	require.Len(t, rep.Path, 8)
	assert.Equal(t, 0, rep.Path[0])
	assert.Equal(t, 19, rep.Path[len(rep.Path)-1])

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, 10)
	assert.Equal(t, "0", lines[0])
	assert.Equal(t, "19", lines[7])
	assert.Equal(t, "Length of the path: 8", lines[8])
	assert.True(t, strings.HasPrefix(lines[9], "Seconds elapsed: "))

	assert.Contains(t, frames.String(), "E\n")
	assert.Contains(t, frames.String(), "*")
}

func TestSolve_DFSFindsExit(t *testing.T) {
	var out bytes.Buffer
	s := cli.Session{Config: openConfig("dfs"), Seed: 3, Out: &out}

	rep, err := s.Solve(context.Background())
	require.NoError(t, err)
	require.True(t, rep.Result.Found())
	assert.Equal(t, solver.DFS, rep.Result.Algorithm)
	assert.GreaterOrEqual(t, len(rep.Path), 8)
	assert.Contains(t, out.String(), "Length of the path: ")
}

func TestSolve_CancelledContextInterrupts(t *testing.T) {
	var out bytes.Buffer
	cfg := openConfig("bfs")
	cfg.TickInterval = 50
	s := cli.Session{Config: cfg, Seed: 1, Out: &out}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	rep, err := s.Solve(ctx)
	require.NoError(t, err)
	assert.Equal(t, solver.OutcomeInterrupted, rep.Result.Outcome)
	assert.Empty(t, rep.Path)
	assert.Equal(t, "No path to the exit found\n", out.String())
}

func TestWriteReport_Format(t *testing.T) {
	var out bytes.Buffer
	err := cli.WriteReport(&out, cli.Report{
		Result: solver.Result{Outcome: solver.OutcomeFound, Elapsed: 1234 * time.Millisecond},
		Path:   []int{0, 1, 2},
	})
	require.NoError(t, err)
	assert.Equal(t, "0\n1\n2\nLength of the path: 3\nSeconds elapsed: 1.234\n", out.String())
}

func TestGenerate(t *testing.T) {
	var out bytes.Buffer
	cfg := openConfig("bfs")

	require.NoError(t, cli.Generate(&out, render.New(&out, render.Plain), cfg, 5))
	assert.Equal(t, "S....\n.....\n.....\n....E\n4x5, 0 walls, seed 5: shortest path 8\n", out.String())
}

func TestResolveSeed(t *testing.T) {
	assert.Equal(t, int64(9), cli.ResolveSeed(9))
	assert.NotZero(t, cli.ResolveSeed(0))
}
