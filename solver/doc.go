// Package solver provides a step-wise, interruptible maze search engine that
// walks a maze.Maze with depth-first or breadth-first traversal, one tick at a
// time, so the walk can be animated by whoever delivers the ticks.
//
// What
//
//   - Engine is a small state machine: Idle → Running → {Succeeded, Failed}.
//   - Start seeds the frontier (a stack for DFS, a FIFO queue for BFS) with the
//     entrance and starts the stopwatch.
//   - Tick takes one node off the frontier, discovers its open neighbors and marks
//     it visited. Node flags (active/visited/predecessor) are written straight
//     into the maze, so a presentation layer can poll them after every tick.
//   - TriggerStop may be called from any goroutine. It freezes the stopwatch at
//     once; the Running → Failed transition happens on the next Tick.
//   - Run drives Tick from a single time.Ticker goroutine until the run ends.
//
// Tick rules
//
//   - Interrupt requested at tick entry → Failed (OutcomeInterrupted).
//   - Frontier empty at the start of a pass → Failed (OutcomeExhausted).
//   - DFS: pop the stack top, never skipping an already-visited node; draw
//     neighbors uniformly at random without replacement from the injected
//     *rand.Rand; push every open one; stop drawing at the exit.
//   - BFS: dequeue the front; an already-visited node makes the whole tick a
//     no-op; otherwise enqueue open neighbors in south, north, east, west order
//     and stop at the exit.
//   - A pass that discovers nothing is followed by another pass in the same tick.
//   - Discovering the exit ends the run at once → Succeeded (OutcomeFound).
//
// Duplicates
//
//	A node that was discovered but not yet visited can be pushed again by a
//	later neighbor, so the frontier may hold duplicates. This is kept on
//	purpose and covered by tests. The predecessor link, however, is written
//	only on first discovery, so predecessors always form a forest and BFS
//	reports a shortest path.
//
// Determinism
//
//	BFS is fully deterministic. DFS is deterministic for a given seed
//	(WithSeed / WithRand). The default source is maze.NewRand(0).
//
// Concurrency
//
//	Ticks never overlap. The interrupt flag, the stopwatch and the published
//	State are the only values touched from other goroutines. Result is valid
//	once State reports a terminal value.
//
// Options
//
//   - DefaultOptions(): 10ms ticks, seed-0 source, no-op logger and hooks.
//   - WithTickInterval(d), WithRand(r), WithSeed(s), WithLogger(l), WithClock(fn).
//   - WithOnActive, WithOnDiscover, WithOnVisit, WithOnTick, WithOnFinish.
//
// Errors
//
//   - ErrInvalidState   Start while Running, Drive while not Running.
//   - ErrConfiguration  nil maze, tick interval ≤ 0, broken entrance/exit,
//     unknown algorithm, bad start node.
//
// Exhaustion and interruption are normal outcomes reported in Result, never errors.
package solver
