package solver

// frontier holds discovered node ids awaiting processing.
// Duplicates are allowed.
type frontier interface {
	Push(id int)
	Pop() int
	Len() int
	Clear()
	// Items returns a copy in storage order: bottom→top for a stack,
	// front→back for a queue.
	Items() []int
}

// stack is the LIFO frontier used by DFS.
type stack struct {
	items []int
}

func newStack() *stack { return &stack{items: make([]int, 0, 64)} }

func (s *stack) Push(id int) { s.items = append(s.items, id) }

// Pop removes the most recently pushed id. The caller checks Len first.
func (s *stack) Pop() int {
	last := len(s.items) - 1
	id := s.items[last]
	s.items = s.items[:last]
	return id
}

func (s *stack) Len() int { return len(s.items) }

func (s *stack) Clear() { s.items = s.items[:0] }

func (s *stack) Items() []int {
	out := make([]int, len(s.items))
	copy(out, s.items)
	return out
}

// queue is the FIFO frontier used by BFS. Consumed slots are reclaimed once
// they make up half of the backing slice.
type queue struct {
	items []int
	head  int
}

func newQueue() *queue { return &queue{items: make([]int, 0, 64)} }

func (q *queue) Push(id int) { q.items = append(q.items, id) }

// Pop removes the oldest id. The caller checks Len first.
func (q *queue) Pop() int {
	id := q.items[q.head]
	q.head++
	if q.head == len(q.items) {
		q.items, q.head = q.items[:0], 0
	} else if q.head > len(q.items)/2 {
		n := copy(q.items, q.items[q.head:])
		q.items, q.head = q.items[:n], 0
	}
	return id
}

func (q *queue) Len() int { return len(q.items) - q.head }

func (q *queue) Clear() { q.items, q.head = q.items[:0], 0 }

func (q *queue) Items() []int {
	out := make([]int, q.Len())
	copy(out, q.items[q.head:])
	return out
}
