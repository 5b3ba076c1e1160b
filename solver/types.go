// Package solver defines algorithms, states, outcomes, options and sentinel
// errors for the step-wise maze search engine.
package solver

import (
	"errors"
	"fmt"
	"log/slog"
	"math/rand"
	"strings"
	"time"

	"github.com/katalvlaran/mazewalk/internal/logging"
	"github.com/katalvlaran/mazewalk/maze"
)

// Sentinel errors for engine control.
var (
	// ErrInvalidState is returned when an operation is not allowed in the current State.
	ErrInvalidState = errors.New("solver: invalid state")

	// ErrConfiguration is returned for an unusable maze, tick interval, algorithm or start node.
	ErrConfiguration = errors.New("solver: invalid configuration")
)

// NoNode is reported as ExitID when no exit was found.
const NoNode = -1

// DefaultTickInterval is the pause between two ticks when none is configured.
const DefaultTickInterval = 10 * time.Millisecond

// Algorithm selects the traversal.
type Algorithm int

const (
	// DFS walks a stack and picks neighbors at random.
	DFS Algorithm = iota
	// BFS walks a FIFO queue and takes neighbors in grid order.
	BFS
)

// String returns "DFS" or "BFS".
func (a Algorithm) String() string {
	switch a {
	case DFS:
		return "DFS"
	case BFS:
		return "BFS"
	default:
		return fmt.Sprintf("Algorithm(%d)", int(a))
	}
}

// ParseAlgorithm accepts "dfs" or "bfs" in any case.
func ParseAlgorithm(s string) (Algorithm, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "dfs":
		return DFS, nil
	case "bfs":
		return BFS, nil
	}
	return 0, fmt.Errorf("%w: unknown algorithm %q", ErrConfiguration, s)
}

func (a Algorithm) valid() bool { return a == DFS || a == BFS }

// State is the engine lifecycle state.
type State int32

const (
	// Idle means no run has started since the engine was created or configured.
	Idle State = iota
	// Running means ticks advance the search.
	Running
	// Succeeded means the exit was discovered.
	Succeeded
	// Failed means the frontier ran dry or a stop was observed.
	Failed
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case Idle:
		return "Idle"
	case Running:
		return "Running"
	case Succeeded:
		return "Succeeded"
	case Failed:
		return "Failed"
	default:
		return fmt.Sprintf("State(%d)", int32(s))
	}
}

// Terminal reports whether s ends a run.
func (s State) Terminal() bool { return s == Succeeded || s == Failed }

// Outcome tells how a run ended.
type Outcome int

const (
	// OutcomePending means the run has not ended.
	OutcomePending Outcome = iota
	// OutcomeFound means the exit was discovered.
	OutcomeFound
	// OutcomeExhausted means the frontier emptied without reaching the exit.
	OutcomeExhausted
	// OutcomeInterrupted means TriggerStop was observed before a natural end.
	OutcomeInterrupted
)

// String returns a lowercase outcome label, also used as a metrics label.
func (o Outcome) String() string {
	switch o {
	case OutcomePending:
		return "pending"
	case OutcomeFound:
		return "found"
	case OutcomeExhausted:
		return "exhausted"
	case OutcomeInterrupted:
		return "interrupted"
	default:
		return fmt.Sprintf("outcome(%d)", int(o))
	}
}

// Result is the terminal report of a run.
//   - ExitID is the discovered exit, or NoNode.
//   - Elapsed spans Start to the stop call or natural end, whichever came first.
//   - Ticks counts delivered ticks that found the engine Running.
//   - Visited counts nodes marked visited during the run.
type Result struct {
	Algorithm Algorithm
	Outcome   Outcome
	ExitID    int
	Elapsed   time.Duration
	Ticks     int
	Visited   int
}

// Found reports whether the run reached the exit.
func (r Result) Found() bool { return r.Outcome == OutcomeFound }

// Option configures an Engine via functional arguments.
// An invalid Option is recorded and surfaced as ErrConfiguration by NewEngine or Configure.
type Option func(*Options)

// Options holds the engine's parameters and hooks.
type Options struct {
	// TickInterval is the period Run delivers ticks at. Must be > 0.
	TickInterval time.Duration

	// Rand drives DFS neighbor selection.
	Rand *rand.Rand

	// Logger receives run lifecycle records.
	Logger *slog.Logger

	// Clock supplies wall-clock time to the stopwatch.
	Clock func() time.Time

	// OnActive is called when a node is taken off the frontier.
	OnActive func(id int)

	// OnDiscover is called when a node gets its predecessor.
	OnDiscover func(id, from int)

	// OnVisit is called when a node is marked visited.
	OnVisit func(id int)

	// OnTick is called at the end of every tick that found the engine Running,
	// with the tick index and the frontier size.
	OnTick func(tick, frontier int)

	// OnFinish is called once per run with the terminal Result.
	OnFinish func(Result)

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with:
//   - DefaultTickInterval
//   - maze.NewRand(0)
//   - a no-op logger, time.Now, and no-op hooks.
func DefaultOptions() Options {
	return Options{
		TickInterval: DefaultTickInterval,
		Rand:         maze.NewRand(0),
		Logger:       logging.NewNop(),
		Clock:        time.Now,
		OnActive:     func(int) {},
		OnDiscover:   func(int, int) {},
		OnVisit:      func(int) {},
		OnTick:       func(int, int) {},
		OnFinish:     func(Result) {},
	}
}

// WithTickInterval sets the tick period; d ≤ 0 is an ErrConfiguration.
func WithTickInterval(d time.Duration) Option {
	return func(o *Options) {
		if d <= 0 {
			o.err = fmt.Errorf("%w: tick interval must be positive (%s)", ErrConfiguration, d)
			return
		}
		o.TickInterval = d
	}
}

// WithRand injects the random source for DFS.
func WithRand(r *rand.Rand) Option {
	return func(o *Options) {
		if r != nil {
			o.Rand = r
		}
	}
}

// WithSeed is WithRand(maze.NewRand(seed)).
func WithSeed(seed int64) Option {
	return func(o *Options) {
		o.Rand = maze.NewRand(seed)
	}
}

// WithLogger sets the logger.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithClock replaces time.Now for the stopwatch.
func WithClock(fn func() time.Time) Option {
	return func(o *Options) {
		if fn != nil {
			o.Clock = fn
		}
	}
}

// WithOnActive registers a callback for nodes taken off the frontier.
func WithOnActive(fn func(id int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnActive = fn
		}
	}
}

// WithOnDiscover registers a callback for first discoveries.
func WithOnDiscover(fn func(id, from int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnDiscover = fn
		}
	}
}

// WithOnVisit registers a callback for nodes marked visited.
func WithOnVisit(fn func(id int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithOnTick registers a callback run at the end of each Running tick.
func WithOnTick(fn func(tick, frontier int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnTick = fn
		}
	}
}

// WithOnFinish registers the terminal callback.
func WithOnFinish(fn func(Result)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnFinish = fn
		}
	}
}
