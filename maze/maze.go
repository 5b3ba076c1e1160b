// Package maze provides the Maze graph: a dense node table over a rows×columns grid
// with a fixed entrance at id 0 and a fixed exit at id rows*columns-1.
package maze

import "fmt"

// Maze is a rectangular grid of Nodes. It is not safe for concurrent mutation;
// walls must only be edited while no search is running over it.
type Maze struct {
	rows, columns int
	layout        Layout
	nodes         []Node
}

// New builds a rows×columns maze with no walls and the entrance/exit in place.
// Returns ErrEmptyGrid if either dimension is below 1.
// Complexity: O(R×C) time and memory.
func New(rows, columns int) (*Maze, error) {
	if rows < 1 || columns < 1 {
		return nil, ErrEmptyGrid
	}
	m := &Maze{}
	m.build(rows, columns)

	return m, nil
}

// NewFromLayout derives the grid dimensions from a scene layout and builds the maze.
func NewFromLayout(l Layout) (*Maze, error) {
	rows, columns, err := l.Dimensions()
	if err != nil {
		return nil, err
	}
	m := &Maze{layout: l}
	m.build(rows, columns)

	return m, nil
}

// Resize rebuilds the whole node table for a new cell size on the same scene.
// All walls and search state are discarded. A maze built with New is resized
// on the default scene.
func (m *Maze) Resize(cellSize int) error {
	l := m.layout
	if l.SceneWidth == 0 && l.SceneHeight == 0 {
		l = DefaultLayout()
	}
	l.CellSize = cellSize
	rows, columns, err := l.Dimensions()
	if err != nil {
		return err
	}
	m.layout = l
	m.build(rows, columns)

	return nil
}

// build replaces the node table and re-establishes the entrance and exit.
func (m *Maze) build(rows, columns int) {
	m.rows, m.columns = rows, columns
	m.nodes = make([]Node, rows*columns)
	for i := range m.nodes {
		m.nodes[i] = Node{id: i, pred: noPredecessor}
	}
	m.placeEndpoints()
}

// placeEndpoints makes node 0 the only entrance and the last node the only exit,
// opening both if they were walls.
func (m *Maze) placeEndpoints() {
	for i := range m.nodes {
		m.nodes[i].entrance = false
		m.nodes[i].exit = false
	}
	first, last := &m.nodes[0], &m.nodes[len(m.nodes)-1]
	first.wall, first.entrance = false, true
	last.wall, last.exit = false, true
}

// Rows returns the number of grid rows.
func (m *Maze) Rows() int { return m.rows }

// Columns returns the number of grid columns.
func (m *Maze) Columns() int { return m.columns }

// Len returns rows*columns.
func (m *Maze) Len() int { return len(m.nodes) }

// Layout returns the scene layout the maze was derived from (zero for New).
func (m *Maze) Layout() Layout { return m.layout }

// EntranceID returns the id of the entrance node.
func (m *Maze) EntranceID() int { return 0 }

// ExitID returns the id of the exit node.
func (m *Maze) ExitID() int { return len(m.nodes) - 1 }

// InBounds reports whether id addresses a node of this maze.
func (m *Maze) InBounds(id int) bool {
	return id >= 0 && id < len(m.nodes)
}

// Node returns the node with the given id.
func (m *Maze) Node(id int) (*Node, error) {
	if !m.InBounds(id) {
		return nil, fmt.Errorf("%w: %d not in [0,%d)", ErrNodeNotFound, id, len(m.nodes))
	}
	return &m.nodes[id], nil
}

// Index maps (row, col) to a row-major id.
// Complexity: O(1).
func (m *Maze) Index(row, col int) int {
	return row*m.columns + col
}

// Coordinate converts a row-major id back to (row, col).
// Complexity: O(1).
func (m *Maze) Coordinate(id int) (row, col int) {
	return id / m.columns, id % m.columns
}

// SetWall turns id into a wall; the entrance and exit silently stay open.
func (m *Maze) SetWall(id int) error {
	n, err := m.Node(id)
	if err != nil {
		return err
	}
	n.SetWall()
	return nil
}

// UnsetWall opens id.
func (m *Maze) UnsetWall(id int) error {
	n, err := m.Node(id)
	if err != nil {
		return err
	}
	n.UnsetWall()
	return nil
}

// ToggleWall flips the wall flag of id and reports the new state.
// Toggling the entrance or exit leaves them open.
func (m *Maze) ToggleWall(id int) (bool, error) {
	n, err := m.Node(id)
	if err != nil {
		return false, err
	}
	if n.IsWall() {
		n.UnsetWall()
		return false, nil
	}
	return n.SetWall(), nil
}

// Walls counts the wall nodes.
func (m *Maze) Walls() int {
	count := 0
	for i := range m.nodes {
		if m.nodes[i].wall {
			count++
		}
	}
	return count
}

// Validate checks the entrance/exit invariant: exactly one entrance at id 0,
// exactly one exit at id Len()-1, distinct, and neither a wall.
// Complexity: O(R×C).
func (m *Maze) Validate() error {
	if m.rows < 1 || m.columns < 1 || len(m.nodes) != m.rows*m.columns {
		return ErrEmptyGrid
	}
	if len(m.nodes) < 2 {
		return fmt.Errorf("%w: entrance and exit coincide", ErrConfiguration)
	}
	entrances, exits := 0, 0
	for i := range m.nodes {
		n := &m.nodes[i]
		if n.entrance {
			entrances++
			if i != m.EntranceID() {
				return fmt.Errorf("%w: entrance at %d, want %d", ErrConfiguration, i, m.EntranceID())
			}
		}
		if n.exit {
			exits++
			if i != m.ExitID() {
				return fmt.Errorf("%w: exit at %d, want %d", ErrConfiguration, i, m.ExitID())
			}
		}
		if (n.entrance || n.exit) && n.wall {
			return fmt.Errorf("%w: endpoint %d is a wall", ErrConfiguration, i)
		}
	}
	if entrances != 1 || exits != 1 {
		return fmt.Errorf("%w: %d entrances, %d exits", ErrConfiguration, entrances, exits)
	}

	return nil
}

// Reset clears visited, active and predecessor state on every node. Walls are
// cleared as well unless preserveWalls is set. The entrance and exit are
// re-established afterwards, so Reset is idempotent.
// Complexity: O(R×C).
func (m *Maze) Reset(preserveWalls bool) {
	for i := range m.nodes {
		m.nodes[i].clearSearch()
		if !preserveWalls {
			m.nodes[i].wall = false
		}
	}
	m.placeEndpoints()
}

// Restart resets search state and keeps the walls.
func (m *Maze) Restart() { m.Reset(true) }

// Clear resets search state and removes every wall.
func (m *Maze) Clear() { m.Reset(false) }
