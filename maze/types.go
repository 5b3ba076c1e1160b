// Package maze defines the Node and Layout types and the fixed size menu.
package maze

// noPredecessor marks a Node that has not been discovered from another Node.
const noPredecessor = -1

// Default scene dimensions in pixels.
const (
	DefaultSceneWidth  = 750
	DefaultSceneHeight = 600
)

// DefaultWallRatio is the probability that RandomizeWalls turns an open cell into a wall.
const DefaultWallRatio = 1.0 / 3.0

// Node is a single maze cell. Nodes are owned by their Maze and addressed by id.
// A Node never holds a pointer to another Node; its predecessor is an id handle.
type Node struct {
	id       int
	wall     bool
	entrance bool
	exit     bool
	visited  bool
	active   bool
	pred     int
}

// ID returns the row-major identifier of the node.
func (n *Node) ID() int { return n.id }

// IsWall reports whether the node blocks movement.
func (n *Node) IsWall() bool { return n.wall }

// IsEntrance reports whether the node is the maze entrance.
func (n *Node) IsEntrance() bool { return n.entrance }

// IsExit reports whether the node is the maze exit.
func (n *Node) IsExit() bool { return n.exit }

// IsVisited reports whether a search has fully processed the node.
func (n *Node) IsVisited() bool { return n.visited }

// IsActive reports whether a search has taken the node off its frontier.
func (n *Node) IsActive() bool { return n.active }

// SetVisited marks or clears the visited flag.
func (n *Node) SetVisited(v bool) { n.visited = v }

// SetActive marks or clears the active flag.
func (n *Node) SetActive(v bool) { n.active = v }

// SetWall turns the node into a wall. It is a no-op on the entrance and the exit.
// Returns whether the node is a wall afterwards.
func (n *Node) SetWall() bool {
	if n.entrance || n.exit {
		return false
	}
	n.wall = true
	return true
}

// UnsetWall opens the node.
func (n *Node) UnsetWall() { n.wall = false }

// Predecessor returns the id of the node this one was first discovered from.
// ok is false when the node has not been discovered in the current run.
func (n *Node) Predecessor() (id int, ok bool) {
	if n.pred == noPredecessor {
		return noPredecessor, false
	}
	return n.pred, true
}

// Discover records from as the predecessor unless one is already set.
// Returns true when the link was written.
func (n *Node) Discover(from int) bool {
	if n.pred != noPredecessor {
		return false
	}
	n.pred = from
	return true
}

// clearSearch drops every flag a search run may have written.
func (n *Node) clearSearch() {
	n.visited = false
	n.active = false
	n.pred = noPredecessor
}

// Layout describes the pixel scene a maze is drawn into.
// Rows and columns are derived from it, never stored independently.
type Layout struct {
	SceneWidth  int
	SceneHeight int
	CellSize    int
}

// DefaultLayout returns the 750×600 scene with the 2000-cell size selected.
func DefaultLayout() Layout {
	return Layout{
		SceneWidth:  DefaultSceneWidth,
		SceneHeight: DefaultSceneHeight,
		CellSize:    15,
	}
}

// Dimensions returns rows = SceneHeight/CellSize and columns = SceneWidth/CellSize.
// Returns ErrUnsupportedSize for a non-positive cell size and ErrEmptyGrid when
// the scene is too small to hold a single cell.
func (l Layout) Dimensions() (rows, columns int, err error) {
	if l.CellSize <= 0 {
		return 0, 0, ErrUnsupportedSize
	}
	rows, columns = l.SceneHeight/l.CellSize, l.SceneWidth/l.CellSize
	if rows < 1 || columns < 1 {
		return 0, 0, ErrEmptyGrid
	}
	return rows, columns, nil
}

// SizeOption pairs a user-facing cell count with the cell size that produces it
// on the default scene.
type SizeOption struct {
	Cells    int
	CellSize int
}

// sizeMenu is the fixed set of supported maze sizes.
var sizeMenu = []SizeOption{
	{Cells: 20, CellSize: 150},
	{Cells: 80, CellSize: 75},
	{Cells: 500, CellSize: 30},
	{Cells: 2000, CellSize: 15},
	{Cells: 4500, CellSize: 10},
	{Cells: 18000, CellSize: 5},
}

// Sizes returns a copy of the size menu, smallest first.
func Sizes() []SizeOption {
	out := make([]SizeOption, len(sizeMenu))
	copy(out, sizeMenu)
	return out
}

// CellSizeFor maps a total cell count from the menu to its cell size.
func CellSizeFor(cells int) (int, error) {
	for _, s := range sizeMenu {
		if s.Cells == cells {
			return s.CellSize, nil
		}
	}
	return 0, ErrUnsupportedSize
}
