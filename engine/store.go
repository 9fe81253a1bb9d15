package engine

import (
	"slices"
	"sync"

	"github.com/lixenwraith/plinko/core"
)

// Store holds one component kind in dense parallel slices
// index maps an entity to its row; single removal swaps the last row in, batch removal keeps order
type Store[T any] struct {
	mu    sync.RWMutex
	index map[core.Entity]int
	ents  []core.Entity
	vals  []T
}

func NewStore[T any]() *Store[T] {
	return &Store[T]{index: make(map[core.Entity]int)}
}

// SetComponent inserts or overwrites the component of e
func (s *Store[T]) SetComponent(e core.Entity, val T) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if row, ok := s.index[e]; ok {
		s.vals[row] = val
		return
	}
	s.index[e] = len(s.ents)
	s.ents = append(s.ents, e)
	s.vals = append(s.vals, val)
}

// GetComponent returns a copy of the component of e
func (s *Store[T]) GetComponent(e core.Entity) (T, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	row, ok := s.index[e]
	if !ok {
		var zero T
		return zero, false
	}
	return s.vals[row], true
}

func (s *Store[T]) RemoveEntity(e core.Entity) {
	s.mu.Lock()
	defer s.mu.Unlock()

	row, ok := s.index[e]
	if !ok {
		return
	}
	last := len(s.ents) - 1
	if row != last {
		s.ents[row], s.vals[row] = s.ents[last], s.vals[last]
		s.index[s.ents[row]] = row
	}
	s.ents = s.ents[:last]
	clear(s.vals[last:])
	s.vals = s.vals[:last]
	delete(s.index, e)
}

func (s *Store[T]) HasEntity(e core.Entity) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.index[e]
	return ok
}

// GetAllEntities returns a copy of the entity column
func (s *Store[T]) GetAllEntities() []core.Entity {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.ents)
}

func (s *Store[T]) CountEntities() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.ents)
}

func (s *Store[T]) ClearAllComponents() {
	s.mu.Lock()
	defer s.mu.Unlock()
	clear(s.index)
	s.ents = s.ents[:0]
	clear(s.vals)
	s.vals = s.vals[:0]
}

// RemoveBatch drops every listed entity in one compaction pass
func (s *Store[T]) RemoveBatch(entities []core.Entity) {
	s.mu.Lock()
	defer s.mu.Unlock()

	removed := 0
	for _, e := range entities {
		if _, ok := s.index[e]; ok {
			delete(s.index, e)
			removed++
		}
	}
	if removed == 0 {
		return
	}

	keep := 0
	for row, e := range s.ents {
		if _, ok := s.index[e]; !ok {
			continue
		}
		s.ents[keep], s.vals[keep] = e, s.vals[row]
		s.index[e] = keep
		keep++
	}
	clear(s.vals[keep:])
	s.ents = s.ents[:keep]
	s.vals = s.vals[:keep]
}
