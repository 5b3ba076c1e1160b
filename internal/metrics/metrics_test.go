package metrics_test

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mazewalk/internal/metrics"
	"github.com/katalvlaran/mazewalk/solver"
)

func scrape(t *testing.T, h http.Handler, path string) (int, string) {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	body, err := io.ReadAll(rr.Body)
	require.NoError(t, err)
	return rr.Code, string(body)
}

func TestHealthz(t *testing.T) {
	code, body := scrape(t, metrics.NewHandler(metrics.NewRecorder()), "/healthz")
	assert.Equal(t, http.StatusOK, code)
	assert.JSONEq(t, `{"status":"ok"}`, body)
}

func TestMetrics_ExposesObservations(t *testing.T) {
	rec := metrics.NewRecorder()
	rec.ObserveTick(solver.BFS, 4)
	rec.ObserveTick(solver.BFS, 3)
	rec.ObserveResult(solver.Result{
		Algorithm: solver.BFS,
		Outcome:   solver.OutcomeFound,
		Elapsed:   120 * time.Millisecond,
		Ticks:     2,
		Visited:   7,
	})
	rec.ObserveResult(solver.Result{Algorithm: solver.DFS, Outcome: solver.OutcomeInterrupted})
	rec.ObservePath(9)

	code, body := scrape(t, metrics.NewHandler(rec), "/metrics")
	require.Equal(t, http.StatusOK, code)

	assert.Contains(t, body, `mazewalk_runs_total{algorithm="BFS",outcome="found"} 1`)
	assert.Contains(t, body, `mazewalk_runs_total{algorithm="DFS",outcome="interrupted"} 1`)
	assert.Contains(t, body, `mazewalk_ticks_total{algorithm="BFS"} 2`)
	assert.Contains(t, body, `mazewalk_nodes_visited_total{algorithm="BFS"} 7`)
	assert.Contains(t, body, `mazewalk_run_duration_seconds_count{algorithm="BFS"} 1`)
	assert.Contains(t, body, "mazewalk_frontier_size 0")
	assert.Contains(t, body, "mazewalk_path_length 9")
}

func TestRecorders_AreIsolated(t *testing.T) {
	a, b := metrics.NewRecorder(), metrics.NewRecorder()
	a.ObserveTick(solver.DFS, 1)

	_, body := scrape(t, metrics.NewHandler(b), "/metrics")
	assert.NotContains(t, body, `mazewalk_ticks_total{algorithm="DFS"}`)
}

func TestUnknownRoute(t *testing.T) {
	code, _ := scrape(t, metrics.NewHandler(metrics.NewRecorder()), "/nope")
	assert.Equal(t, http.StatusNotFound, code)
}
