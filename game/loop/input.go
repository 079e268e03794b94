package loop

import (
	"sync"

	"classic-snake/game/types"
)

// InputSource yields the most recent direction requested since the last call.
type InputSource interface {
	Latest() (types.Direction, bool)
}

// DirectionQueue is a single-slot, latest-wins queue. Producers (key readers)
// may run on other goroutines; the loop drains it once per tick.
type DirectionQueue struct {
	mu      sync.Mutex
	pending types.Direction
	ok      bool
}

func NewDirectionQueue() *DirectionQueue {
	return &DirectionQueue{}
}

// Push records dir, replacing anything not yet consumed. Invalid values are dropped.
func (q *DirectionQueue) Push(dir types.Direction) {
	if !dir.Valid() {
		return
	}
	q.mu.Lock()
	q.pending = dir
	q.ok = true
	q.mu.Unlock()
}

// Latest returns and clears the pending direction.
func (q *DirectionQueue) Latest() (types.Direction, bool) {
	q.mu.Lock()
	defer q.mu.Unlock()

	dir, ok := q.pending, q.ok
	q.pending, q.ok = types.None, false
	return dir, ok
}
