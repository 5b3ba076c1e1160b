// Package maze models a rectangular grid maze as a graph of cells, ready to be
// walked by a step-wise search engine.
//
// What:
//
//   - Maze owns a dense, row-major table of Nodes addressed by id = row*Columns + col.
//   - Node 0 is the entrance and node Len()-1 is the exit; neither may ever be a wall.
//   - Neighbors reports the open (non-wall, unvisited) orthogonal cells of a node.
//   - Trace walks predecessor handles back from a node to reconstruct a path.
//   - Reset clears search state (optionally walls); RandomizeWalls fills a fresh grid.
//
// Why:
//
//   - Animated solvers: every mutation a search makes is a flag on a Node, so a
//     presentation layer can poll the table after each tick and repaint.
//   - Predecessors are plain int handles into the table, so the Maze stays the only
//     owner of its Nodes and a path trace can never form an ownership cycle.
//
// Layout:
//
//	The default scene is 750×600 pixels. A cell size from the fixed menu
//	(150, 75, 30, 15, 10, 5) yields 20, 80, 500, 2000, 4500 or 18000 cells:
//
//	    rows    = SceneHeight / CellSize
//	    columns = SceneWidth  / CellSize
//
// Neighbor order:
//
//	Neighbors always returns candidates in south, north, east, west order.
//	Boundary rules on id with n = rows*columns and c = columns:
//
//	    south: id < n-c      north: id >= c
//	    east:  (id+1)%c != 0 west:  id != 0 && id%c != 0
//
// Complexity:
//
//   - Neighbors:        O(1).
//   - Reset, Validate:  O(R×C).
//   - Trace:            O(path length).
//   - ShortestPathLen:  O(R×C) time and memory.
//
// Errors:
//
//   - ErrEmptyGrid:       rows or columns < 1.
//   - ErrNodeNotFound:    id outside [0, Len()).
//   - ErrUnsupportedSize: cell count or cell size not on the size menu.
//   - ErrConfiguration:   entrance/exit invariant broken.
//   - ErrNoPath:          no open route between two cells.
//   - ErrPredecessorLoop: predecessor handles do not terminate.
package maze
