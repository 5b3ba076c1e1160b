package solver

import (
	"fmt"
	"sync/atomic"
	"time"

	"github.com/katalvlaran/mazewalk/maze"
)

// Engine searches one maze at a time. Create it with NewEngine, start a run
// with Start and advance it with Tick, or let Run do both.
type Engine struct {
	maze *maze.Maze
	opts Options

	state     atomic.Int32
	interrupt atomic.Bool
	watch     stopwatch

	// owned by the tick goroutine while Running
	algorithm Algorithm
	front     frontier
	ticks     int
	visited   int
	result    Result
}

// NewEngine binds an engine to m. Returns ErrConfiguration for a nil maze or
// an invalid Option. The maze itself is validated on Start, after the caller
// has had a chance to edit it.
func NewEngine(m *maze.Maze, opts ...Option) (*Engine, error) {
	if m == nil {
		return nil, fmt.Errorf("%w: maze is nil", ErrConfiguration)
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	return &Engine{
		maze:   m,
		opts:   o,
		result: Result{ExitID: NoNode},
	}, nil
}

// Configure swaps the maze and applies opts on top of the current options.
// A nil maze keeps the current one. It is rejected with ErrInvalidState while
// Running and leaves the engine Idle otherwise.
func (e *Engine) Configure(m *maze.Maze, opts ...Option) error {
	if e.State() == Running {
		return fmt.Errorf("%w: configure while %s", ErrInvalidState, Running)
	}
	o := e.opts
	o.err = nil
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return o.err
	}
	if m != nil {
		e.maze = m
	}
	e.opts = o
	e.result = Result{ExitID: NoNode}
	e.state.Store(int32(Idle))

	return nil
}

// Maze returns the maze the engine walks.
func (e *Engine) Maze() *maze.Maze { return e.maze }

// TickInterval returns the configured tick period.
func (e *Engine) TickInterval() time.Duration { return e.opts.TickInterval }

// State returns the current lifecycle state. Safe from any goroutine.
func (e *Engine) State() State { return State(e.state.Load()) }

// Start begins a run from the entrance. See StartFrom.
func (e *Engine) Start(alg Algorithm) error {
	return e.StartFrom(alg, e.maze.EntranceID())
}

// StartFrom begins a run of alg from node id.
//
// Returns ErrInvalidState while Running, and ErrConfiguration when alg is
// unknown, the tick interval is not positive, the maze breaks the
// entrance/exit invariant, or id is out of range, a wall, or the exit.
// Search flags already on the maze are not cleared; call maze.Restart first
// when re-running over the same maze.
func (e *Engine) StartFrom(alg Algorithm, id int) error {
	if e.State() == Running {
		return fmt.Errorf("%w: start while %s", ErrInvalidState, Running)
	}
	if !alg.valid() {
		return fmt.Errorf("%w: unknown algorithm %s", ErrConfiguration, alg)
	}
	if e.opts.TickInterval <= 0 {
		return fmt.Errorf("%w: tick interval must be positive (%s)", ErrConfiguration, e.opts.TickInterval)
	}
	if err := e.maze.Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrConfiguration, err)
	}
	n, err := e.maze.Node(id)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrConfiguration, err)
	}
	if n.IsWall() || n.IsExit() {
		return fmt.Errorf("%w: start node %d is a wall or the exit", ErrConfiguration, id)
	}

	if alg == DFS {
		e.front = newStack()
	} else {
		e.front = newQueue()
	}
	e.front.Push(id)
	e.algorithm = alg
	e.ticks, e.visited = 0, 0
	e.result = Result{Algorithm: alg, ExitID: NoNode}
	e.interrupt.Store(false)
	e.watch.start(e.opts.Clock())
	e.state.Store(int32(Running))

	e.opts.Logger.Info("search started",
		"algorithm", alg.String(),
		"start", id,
		"rows", e.maze.Rows(),
		"columns", e.maze.Columns(),
		"tick_interval", e.opts.TickInterval,
	)
	return nil
}

// TriggerStop asks a Running search to stop. The stopwatch freezes now; the
// transition to Failed and the frontier teardown happen on the next Tick.
// Returns false, and does nothing, when the engine is not Running.
// Safe from any goroutine.
func (e *Engine) TriggerStop() bool {
	if e.State() != Running {
		return false
	}
	e.watch.stop(e.opts.Clock())
	e.interrupt.Store(true)
	e.opts.Logger.Debug("stop requested")
	return true
}

// StopRequested reports whether a stop is pending for the current run.
func (e *Engine) StopRequested() bool { return e.interrupt.Load() }

// Elapsed returns the time between Start and the stop call or natural end.
// While Running without a pending stop it returns the time so far.
func (e *Engine) Elapsed() time.Duration { return e.watch.read(e.opts.Clock()) }

// Result returns the terminal report. Before a run ends it holds
// OutcomePending and NoNode.
func (e *Engine) Result() Result { return e.result }

// Path returns the node ids from the reported exit back to the start, or nil
// when the last run did not find the exit.
func (e *Engine) Path() ([]int, error) {
	if !e.result.Found() {
		return nil, nil
	}
	return e.maze.Trace(e.result.ExitID)
}

// Frontier returns a copy of the pending node ids in storage order
// (bottom→top for DFS, front→back for BFS).
func (e *Engine) Frontier() []int {
	if e.front == nil {
		return nil
	}
	return e.front.Items()
}

// finish ends the run. The stopwatch keeps the value of an earlier stop call.
func (e *Engine) finish(outcome Outcome, exit int) {
	e.watch.stop(e.opts.Clock())
	e.front.Clear()
	e.interrupt.Store(false)

	e.result = Result{
		Algorithm: e.algorithm,
		Outcome:   outcome,
		ExitID:    exit,
		Elapsed:   e.watch.read(e.opts.Clock()),
		Ticks:     e.ticks,
		Visited:   e.visited,
	}
	next := Failed
	if outcome == OutcomeFound {
		next = Succeeded
	}
	e.state.Store(int32(next))

	e.opts.Logger.Info("search finished",
		"algorithm", e.algorithm.String(),
		"outcome", outcome.String(),
		"exit", exit,
		"ticks", e.ticks,
		"visited", e.visited,
		"elapsed", e.result.Elapsed,
	)
	e.opts.OnFinish(e.result)
}
