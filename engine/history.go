package engine

import (
	"errors"
	"fmt"
)

// ErrInvalidCapacity is returned for history capacities below one
var ErrInvalidCapacity = errors.New("invalid history capacity")

// History is a fixed-capacity ring of recent multipliers, read newest first
type History struct {
	values []float64
	head   int // Index of the next write
	size   int
}

// NewHistory creates an empty history; capacity < 1 is a startup defect
func NewHistory(capacity int) (*History, error) {
	if capacity < 1 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidCapacity, capacity)
	}
	return &History{values: make([]float64, capacity)}, nil
}

// Push records v as the newest entry, evicting the oldest when full
func (h *History) Push(v float64) {
	h.values[h.head] = v
	h.head = (h.head + 1) % len(h.values)
	if h.size < len(h.values) {
		h.size++
	}
}

// Values returns a copy of the entries, newest first
func (h *History) Values() []float64 {
	out := make([]float64, h.size)
	for i := 0; i < h.size; i++ {
		idx := (h.head - 1 - i + len(h.values)) % len(h.values)
		out[i] = h.values[idx]
	}
	return out
}

// Newest returns the most recent entry
func (h *History) Newest() (float64, bool) {
	if h.size == 0 {
		return 0, false
	}
	return h.values[(h.head-1+len(h.values))%len(h.values)], true
}

func (h *History) Len() int {
	return h.size
}

func (h *History) Cap() int {
	return len(h.values)
}
