package maze

import "fmt"

// Trace reconstructs the path ending at id by following predecessor handles
// until a node with no predecessor (normally the entrance) is reached.
// The result is ordered from id back to the start; its length is the path
// length in nodes. A node that was never discovered yields a one-element path.
//
// Behavior:
//  1. Validate id.
//  2. Append the current id and step to its predecessor.
//  3. Stop at a node without predecessor; fail with ErrPredecessorLoop if the
//     walk grows longer than the node table.
//
// Complexity: O(path length) time and memory.
func (m *Maze) Trace(id int) ([]int, error) {
	if !m.InBounds(id) {
		return nil, fmt.Errorf("%w: %d", ErrNodeNotFound, id)
	}
	path := make([]int, 0, 16)
	for cur := id; ; {
		path = append(path, cur)
		if len(path) > len(m.nodes) {
			return nil, fmt.Errorf("%w: from %d", ErrPredecessorLoop, id)
		}
		prev, ok := m.nodes[cur].Predecessor()
		if !ok {
			break
		}
		cur = prev
	}

	return path, nil
}

// Reverse returns a copy of path in the opposite order, e.g. entrance→exit
// for the output of Trace.
func Reverse(path []int) []int {
	out := make([]int, len(path))
	for i, id := range path {
		out[len(path)-1-i] = id
	}
	return out
}
