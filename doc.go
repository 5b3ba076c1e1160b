// Package mazewalk animates depth-first and breadth-first search through
// rectangular grid mazes, one node per tick.
//
// What is mazewalk?
//
//	A small toolkit and CLI that brings together:
//		• maze:   the grid graph, walls, neighbors, predecessor tracing, random walls
//		• solver: a tick-driven DFS/BFS engine with a stop request and stopwatch
//		• a cobra CLI that renders each tick in the terminal and reports the path
//
// Under the hood, everything is organized under these packages:
//
//	maze/              — Node, Maze, Layout and the size menu
//	solver/            — Engine, Options/hooks, Tick, Run/Drive
//	internal/config/   — YAML settings
//	internal/logging/  — slog setup
//	internal/metrics/  — Prometheus recorder and /metrics endpoint
//	internal/render/   — termenv frames
//	internal/cli/      — command flows
//	cmd/mazewalk/      — entry point
//
// Quick ASCII example of a solved 4×5 maze (S entrance, E exit, # wall, * path):
//
//	S**#.
//	#.*#.
//	..***
//	###.E
//
//	go install github.com/katalvlaran/mazewalk/cmd/mazewalk@latest
package mazewalk
