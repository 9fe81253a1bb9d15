package status

import (
	"maps"
	"slices"
	"sync"
)

// Family maps metric names to stable value pointers of one kind
// Lookups lock; systems resolve pointers once in Init and write atomics after that
type Family[T any] struct {
	mu     sync.RWMutex
	byName map[string]*T
}

func newFamily[T any]() *Family[T] {
	return &Family[T]{byName: make(map[string]*T)}
}

// Get returns the value registered under name, allocating it on first use
func (f *Family[T]) Get(name string) *T {
	f.mu.RLock()
	v, ok := f.byName[name]
	f.mu.RUnlock()
	if ok {
		return v
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	if v, ok = f.byName[name]; !ok {
		v = new(T)
		f.byName[name] = v
	}
	return v
}

// Range visits every value in name order
func (f *Family[T]) Range(fn func(name string, v *T)) {
	f.mu.RLock()
	defer f.mu.RUnlock()
	for _, name := range slices.Sorted(maps.Keys(f.byName)) {
		fn(name, f.byName[name])
	}
}

func (f *Family[T]) Len() int {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return len(f.byName)
}
