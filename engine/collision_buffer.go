package engine

import "github.com/lixenwraith/plinko/physics"

// CollisionBuffer queues solver contact records between the physics step and scoring
// Records are immutable values; Drain hands them over exactly once
type CollisionBuffer struct {
	records []physics.Collision
}

func NewCollisionBuffer() *CollisionBuffer {
	return &CollisionBuffer{}
}

// Append queues records from one solver step
func (b *CollisionBuffer) Append(records ...physics.Collision) {
	b.records = append(b.records, records...)
}

// Drain returns all queued records and empties the buffer
func (b *CollisionBuffer) Drain() []physics.Collision {
	out := b.records
	b.records = nil
	return out
}

func (b *CollisionBuffer) Len() int {
	return len(b.records)
}
