package domain

// ActionQueue is an actor's plan. It is a stack: the most recently pushed
// action runs first, so a plan is pushed in reverse execution order.
type ActionQueue struct {
	items []Action
}

// Push adds an action on top of the stack.
func (q *ActionQueue) Push(a Action) {
	q.items = append(q.items, a)
}

// PushAll pushes actions in the given order; the last one runs first.
func (q *ActionQueue) PushAll(actions ...Action) {
	q.items = append(q.items, actions...)
}

// Pop removes and returns the most recently pushed action.
func (q *ActionQueue) Pop() (Action, bool) {
	n := len(q.items)
	if n == 0 {
		return Action{}, false
	}
	a := q.items[n-1]
	q.items = q.items[:n-1]
	return a, true
}

// Peek returns the action that Pop would return, without removing it.
func (q *ActionQueue) Len() int { return len(q.items) }

func (q *ActionQueue) IsEmpty() bool { return len(q.items) == 0 }

func (q *ActionQueue) Clear() { q.items = q.items[:0] }

// Snapshot returns the stack bottom-first, for debugging.
func (q *ActionQueue) Snapshot() []Action {
	out := make([]Action, len(q.items))
	copy(out, q.items)
	return out
}

// PathComponent is an active walk: tiles to visit plus a repeating step timer.
type PathComponent struct {
	Tiles    []Tile  `json:"tiles"`
	Cursor   int     `json:"cursor"`
	Interval float64 `json:"interval"`
	elapsed  float64
}

// NewPath creates a path whose timer fires every interval seconds.
func NewPath(tiles []Tile, interval float64) *PathComponent {
	return &PathComponent{Tiles: tiles, Interval: interval}
}

// Tick advances the step timer and reports whether it fired.
// The timer repeats; overshoot carries into the next period.
func (p *PathComponent) Tick(dt float64) bool {
	p.elapsed += dt
	if p.elapsed < p.Interval {
		return false
	}
	if p.Interval > 0 {
		for p.elapsed >= p.Interval {
			p.elapsed -= p.Interval
		}
	} else {
		p.elapsed = 0
	}
	return true
}

// Next consumes the next tile.
func (p *PathComponent) Next() (Tile, bool) {
	if p.Cursor >= len(p.Tiles) {
		return Tile{}, false
	}
	t := p.Tiles[p.Cursor]
	p.Cursor++
	return t, true
}

// Remaining returns the tiles not yet visited.
func (p *PathComponent) Remaining() []Tile {
	return p.Tiles[p.Cursor:]
}

// KickedComponent marks an entity in free flight.
type KickedComponent struct {
	Velocity Vec2 `json:"velocity"`
}
