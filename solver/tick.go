package solver

import "github.com/katalvlaran/mazewalk/maze"

// pass is the outcome of processing one frontier entry.
type pass struct {
	progress int  // neighbors pushed
	exit     int  // discovered exit, or NoNode
	skipped  bool // BFS popped a node that was already visited
}

// Tick advances a Running search by one unit and returns the resulting State.
// On any other state it does nothing and returns that state, so a scheduler
// may keep ticking after the run has ended.
//
// Behavior:
//  1. A pending stop ends the run as OutcomeInterrupted.
//  2. Run passes until one discovers something, the BFS visited-skip rule
//     consumes the tick, the exit is found, or the frontier is exhausted.
//  3. Call OnTick.
func (e *Engine) Tick() State {
	if e.State() != Running {
		return e.State()
	}
	e.ticks++
	e.advance()
	e.opts.OnTick(e.ticks, e.front.Len())

	return e.State()
}

func (e *Engine) advance() {
	if e.interrupt.Load() {
		e.finish(OutcomeInterrupted, NoNode)
		return
	}
	for {
		if e.front.Len() == 0 {
			e.finish(OutcomeExhausted, NoNode)
			return
		}
		var p pass
		if e.algorithm == DFS {
			p = e.dfsPass()
		} else {
			p = e.bfsPass()
		}
		if p.exit != NoNode {
			e.finish(OutcomeFound, p.exit)
			return
		}
		if p.skipped || p.progress > 0 {
			return
		}
		e.opts.Logger.Debug("idle pass, continuing", "tick", e.ticks, "frontier", e.front.Len())
	}
}

// dfsPass pops the stack top and pushes its open neighbors in random order.
// An already-visited node is processed again rather than skipped.
func (e *Engine) dfsPass() pass {
	cur := e.activate(e.front.Pop())
	p := pass{exit: NoNode}

	candidates := e.maze.Neighbors(cur.ID())
	for len(candidates) > 0 {
		i := e.opts.Rand.Intn(len(candidates))
		next := candidates[i]
		last := len(candidates) - 1
		candidates[i] = candidates[last]
		candidates = candidates[:last]

		if e.push(cur, next, &p) {
			break
		}
	}
	e.markVisited(cur)

	return p
}

// bfsPass dequeues the front node and enqueues its open neighbors in grid order.
// An already-visited node consumes the tick without further work.
func (e *Engine) bfsPass() pass {
	id := e.front.Pop()
	n, _ := e.maze.Node(id)
	if n.IsVisited() {
		return pass{exit: NoNode, skipped: true}
	}
	cur := e.activate(id)
	p := pass{exit: NoNode}

	for _, next := range e.maze.Neighbors(cur.ID()) {
		if e.push(cur, next, &p) {
			break
		}
	}
	e.markVisited(cur)

	return p
}

// activate marks id active and returns its node.
func (e *Engine) activate(id int) *maze.Node {
	n, _ := e.maze.Node(id)
	n.SetActive(true)
	e.opts.OnActive(id)
	return n
}

// push discovers next from cur and adds it to the frontier. Returns true when
// next is the exit and the caller must stop scanning neighbors.
func (e *Engine) push(cur, next *maze.Node, p *pass) bool {
	if next.IsWall() || next.IsVisited() {
		return false
	}
	p.progress++
	if next.Discover(cur.ID()) {
		e.opts.OnDiscover(next.ID(), cur.ID())
	}
	e.front.Push(next.ID())
	if next.IsExit() {
		p.exit = next.ID()
		return true
	}
	return false
}

// markVisited flags n visited and counts it once per run.
func (e *Engine) markVisited(n *maze.Node) {
	if !n.IsVisited() {
		e.visited++
	}
	n.SetVisited(true)
	e.opts.OnVisit(n.ID())
}
