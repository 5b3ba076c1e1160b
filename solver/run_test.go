package solver_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mazewalk/solver"
)

// TestRun_Found drives a corridor to completion on a real ticker.
func TestRun_Found(t *testing.T) {
	e, _ := solver.NewEngine(mustMaze(t, 1, 5), solver.WithTickInterval(time.Millisecond))
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	res, err := e.Run(ctx, solver.DFS)
	require.NoError(t, err)
	assert.True(t, res.Found())
	assert.Equal(t, 4, res.Ticks)
	assert.Equal(t, solver.Succeeded, e.State())
	assert.Greater(t, res.Elapsed, time.Duration(0))
}

// TestRun_Cancelled cancels the context before the first tick; the run ends
// as interrupted, not as an error.
func TestRun_Cancelled(t *testing.T) {
	e, _ := solver.NewEngine(mustMaze(t, 20, 25), solver.WithTickInterval(time.Millisecond))
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	res, err := e.Run(ctx, solver.BFS)
	require.NoError(t, err)
	assert.Equal(t, solver.OutcomeInterrupted, res.Outcome)
	assert.Equal(t, solver.Failed, e.State())
}

// TestRun_TriggerStopFromAnotherGoroutine stops a slow run from outside the
// tick goroutine.
func TestRun_TriggerStopFromAnotherGoroutine(t *testing.T) {
	e, _ := solver.NewEngine(mustMaze(t, 20, 25), solver.WithTickInterval(2*time.Millisecond))
	started := make(chan struct{})
	var ticks int
	require.NoError(t, e.Configure(nil, solver.WithOnTick(func(tick, _ int) {
		ticks = tick
		if tick == 3 {
			close(started)
		}
	})))

	go func() {
		<-started
		e.TriggerStop()
	}()

	res, err := e.Run(context.Background(), solver.BFS)
	require.NoError(t, err)
	assert.Equal(t, solver.OutcomeInterrupted, res.Outcome)
	assert.Equal(t, res.Ticks, ticks)
	assert.GreaterOrEqual(t, res.Ticks, 4)
}

// TestRun_StartError surfaces configuration errors from Start.
func TestRun_StartError(t *testing.T) {
	e, _ := solver.NewEngine(mustMaze(t, 1, 1))
	_, err := e.Run(context.Background(), solver.BFS)
	assert.True(t, errors.Is(err, solver.ErrConfiguration))
}

// TestDrive_NotRunning rejects driving an idle engine.
func TestDrive_NotRunning(t *testing.T) {
	e, _ := solver.NewEngine(mustMaze(t, 2, 2))
	_, err := e.Drive(context.Background())
	assert.ErrorIs(t, err, solver.ErrInvalidState)
}
