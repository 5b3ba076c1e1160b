package maze

import "errors"

var (
	// ErrEmptyGrid indicates a maze with no rows or no columns.
	ErrEmptyGrid = errors.New("maze: grid must have at least one row and one column")
	// ErrNodeNotFound indicates an id outside [0, rows*columns).
	ErrNodeNotFound = errors.New("maze: node id out of range")
	// ErrUnsupportedSize indicates a cell count or cell size that is not on the size menu.
	ErrUnsupportedSize = errors.New("maze: unsupported grid size")
	// ErrConfiguration indicates a broken entrance/exit invariant.
	ErrConfiguration = errors.New("maze: invalid configuration")
	// ErrNoPath indicates that no open route connects two cells.
	ErrNoPath = errors.New("maze: no path between cells")
	// ErrPredecessorLoop indicates a predecessor chain that revisits a node.
	ErrPredecessorLoop = errors.New("maze: predecessor chain does not terminate")
)
