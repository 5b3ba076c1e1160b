package maze

import "fmt"

// ShortestPathLen returns the number of nodes on a shortest open route from
// one cell to another, ignoring search flags (visited/active/predecessor) and
// treating walls as blocked. Both endpoints count, so from==to yields 1.
// Returns ErrNodeNotFound for invalid ids and ErrNoPath when to is unreachable
// or either endpoint is a wall.
//
// It runs its own breadth-first pass over a private distance table and never
// touches node state, so it can be used to check a solver's result after the fact.
//
// Time:   O(R×C).
// Memory: O(R×C) for the distance table and queue.
func (m *Maze) ShortestPathLen(from, to int) (int, error) {
	if !m.InBounds(from) || !m.InBounds(to) {
		return 0, fmt.Errorf("%w: %d→%d", ErrNodeNotFound, from, to)
	}
	if m.nodes[from].wall || m.nodes[to].wall {
		return 0, ErrNoPath
	}
	dist := make([]int, len(m.nodes))
	for i := range dist {
		dist[i] = -1
	}
	dist[from] = 1
	queue := []int{from}

	for qi := 0; qi < len(queue); qi++ {
		u := queue[qi]
		if u == to {
			return dist[u], nil
		}
		for _, v := range m.openAround(u) {
			if dist[v] < 0 {
				dist[v] = dist[u] + 1
				queue = append(queue, v)
			}
		}
	}

	return 0, ErrNoPath
}

// openAround lists the non-wall orthogonal neighbors of id regardless of
// search state, in the same order as Neighbors.
func (m *Maze) openAround(id int) []int {
	total, c := len(m.nodes), m.columns
	out := make([]int, 0, 4)
	add := func(nid int) {
		if !m.nodes[nid].wall {
			out = append(out, nid)
		}
	}
	if id < total-c {
		add(id + c)
	}
	if id >= c {
		add(id - c)
	}
	if (id+1)%c != 0 {
		add(id + 1)
	}
	if id != 0 && id%c != 0 {
		add(id - 1)
	}
	return out
}
