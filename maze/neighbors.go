package maze

// Neighbors returns the open orthogonal neighbors of id: in bounds, not a wall
// and not yet visited, in south, north, east, west order. An out-of-range id
// has no neighbors.
// Complexity: O(1).
func (m *Maze) Neighbors(id int) []*Node {
	if !m.InBounds(id) {
		return nil
	}
	total, c := len(m.nodes), m.columns
	out := make([]*Node, 0, 4)
	try := func(nid int) {
		n := &m.nodes[nid]
		if !n.wall && !n.visited {
			out = append(out, n)
		}
	}

	// south
	if id < total-c {
		try(id + c)
	}
	// north
	if id >= c {
		try(id - c)
	}
	// east
	if (id+1)%c != 0 {
		try(id + 1)
	}
	// west
	if id != 0 && id%c != 0 {
		try(id - 1)
	}

	return out
}
