package engine

import "github.com/lixenwraith/plinko/core"

// BallRegistry is a weak index of live balls
// It never owns a ball: only BallSystem adds and removes entries
type BallRegistry struct {
	index map[core.Entity]int
	balls []core.Entity // Spawn order
}

func NewBallRegistry() *BallRegistry {
	return &BallRegistry{index: make(map[core.Entity]int)}
}

// Add registers a ball; duplicates are ignored
func (r *BallRegistry) Add(e core.Entity) {
	if _, ok := r.index[e]; ok {
		return
	}
	r.index[e] = len(r.balls)
	r.balls = append(r.balls, e)
}

// Remove drops a ball, keeping spawn order of the rest
func (r *BallRegistry) Remove(e core.Entity) bool {
	i, ok := r.index[e]
	if !ok {
		return false
	}
	delete(r.index, e)
	r.balls = append(r.balls[:i], r.balls[i+1:]...)
	for j := i; j < len(r.balls); j++ {
		r.index[r.balls[j]] = j
	}
	return true
}

func (r *BallRegistry) Contains(e core.Entity) bool {
	_, ok := r.index[e]
	return ok
}

// All returns a copy of live balls in spawn order
func (r *BallRegistry) All() []core.Entity {
	out := make([]core.Entity, len(r.balls))
	copy(out, r.balls)
	return out
}

func (r *BallRegistry) Len() int {
	return len(r.balls)
}
