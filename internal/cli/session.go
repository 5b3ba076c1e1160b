// Package cli wires configuration, the search engine, metrics and rendering
// into the flows behind the mazewalk commands.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/katalvlaran/mazewalk/internal/config"
	"github.com/katalvlaran/mazewalk/internal/logging"
	"github.com/katalvlaran/mazewalk/internal/metrics"
	"github.com/katalvlaran/mazewalk/internal/render"
	"github.com/katalvlaran/mazewalk/maze"
	"github.com/katalvlaran/mazewalk/solver"
)

// Session carries everything one command invocation needs.
// Logger, Recorder and Renderer are optional.
type Session struct {
	Config   config.Config
	Seed     int64
	Out      io.Writer
	Logger   *slog.Logger
	Recorder *metrics.Recorder
	Renderer *render.Renderer
}

// Report summarizes a solve.
type Report struct {
	Result solver.Result
	Path   []int // entrance→exit, empty unless the exit was found
	Walls  int
	Seed   int64
}

// ResolveSeed returns seed, or a time-based one when seed is 0.
func ResolveSeed(seed int64) int64 {
	if seed != 0 {
		return seed
	}
	return time.Now().UnixNano()
}

// BuildMaze lays out a maze for cfg and, when enabled, scatters random walls
// drawn from seed. Returns the maze and the number of walls placed.
func BuildMaze(cfg config.Config, seed int64) (*maze.Maze, int, error) {
	layout, err := cfg.Layout()
	if err != nil {
		return nil, 0, err
	}
	m, err := maze.NewFromLayout(layout)
	if err != nil {
		return nil, 0, err
	}
	walls := 0
	if cfg.RandomWalls {
		walls = m.RandomizeWalls(maze.NewRand(seed), cfg.WallRatio)
	}

	return m, walls, nil
}

func (s Session) logger() *slog.Logger {
	if s.Logger == nil {
		return logging.NewNop()
	}
	return s.Logger
}

// Solve builds the maze, runs the configured search until it ends or ctx is
// cancelled, and writes the report to Out. Cancellation ends the run as
// interrupted, which is reported like any other failed search.
func (s Session) Solve(ctx context.Context) (Report, error) {
	logger := s.logger()
	m, walls, err := BuildMaze(s.Config, s.Seed)
	if err != nil {
		return Report{}, err
	}
	alg := s.Config.AlgorithmValue()
	logger.Info("maze ready",
		"rows", m.Rows(),
		"columns", m.Columns(),
		"walls", walls,
		"seed", s.Seed,
	)

	eng, err := solver.NewEngine(m,
		solver.WithTickInterval(s.Config.Tick()),
		solver.WithSeed(s.Seed),
		solver.WithLogger(logger),
		solver.WithOnTick(func(_, frontier int) {
			if s.Recorder != nil {
				s.Recorder.ObserveTick(alg, frontier)
			}
			if s.Renderer != nil {
				if err := s.Renderer.Draw(m, nil); err != nil {
					logger.Warn("draw frame", "error", err)
				}
			}
		}),
		solver.WithOnFinish(func(r solver.Result) {
			if s.Recorder != nil {
				s.Recorder.ObserveResult(r)
			}
		}),
	)
	if err != nil {
		return Report{}, err
	}

	res, err := eng.Run(ctx, alg)
	if err != nil {
		return Report{}, err
	}
	rep := Report{Result: res, Walls: walls, Seed: s.Seed}
	if res.Found() {
		back, err := eng.Path()
		if err != nil {
			return rep, fmt.Errorf("trace path: %w", err)
		}
		rep.Path = maze.Reverse(back)
		if s.Recorder != nil {
			s.Recorder.ObservePath(len(rep.Path))
		}
	}
	if s.Renderer != nil {
		if err := s.Renderer.Draw(m, rep.Path); err != nil {
			logger.Warn("draw frame", "error", err)
		}
	}

	return rep, WriteReport(s.Out, rep)
}

// WriteReport prints the path one id per line followed by its length and the
// elapsed seconds, or a single line when no path was found.
func WriteReport(w io.Writer, rep Report) error {
	if !rep.Result.Found() {
		_, err := fmt.Fprintln(w, "No path to the exit found")
		return err
	}
	for _, id := range rep.Path {
		if _, err := fmt.Fprintln(w, id); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintf(w, "Length of the path: %d\nSeconds elapsed: %.3f\n",
		len(rep.Path), rep.Result.Elapsed.Seconds())
	return err
}

// Generate builds a maze for cfg, writes one frame of it rendered by r and a
// line saying whether the exit is reachable.
func Generate(w io.Writer, r *render.Renderer, cfg config.Config, seed int64) error {
	m, walls, err := BuildMaze(cfg, seed)
	if err != nil {
		return err
	}
	if _, err := io.WriteString(w, r.Frame(m, nil)); err != nil {
		return err
	}

	n, err := m.ShortestPathLen(m.EntranceID(), m.ExitID())
	switch {
	case errors.Is(err, maze.ErrNoPath):
		_, err = fmt.Fprintf(w, "%dx%d, %d walls, seed %d: unsolvable\n", m.Rows(), m.Columns(), walls, seed)
	case err != nil:
		return err
	default:
		_, err = fmt.Fprintf(w, "%dx%d, %d walls, seed %d: shortest path %d\n", m.Rows(), m.Columns(), walls, seed, n)
	}
	return err
}
