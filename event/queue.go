package event

import (
	"sync/atomic"

	"github.com/lixenwraith/plinko/parameter"
)

// slot holds one event; seq is pos+1 once the event for pos is fully published, 0 while a producer writes
type slot struct {
	seq atomic.Uint64
	ev  atomic.Pointer[GameEvent]
}

// EventQueue is a fixed ring of game events with many producers and one consumer
// Input and monitor goroutines push; only the tick dispatch phase consumes
// A full ring overwrites its oldest entries, so a burst of key presses loses the earliest ones
// Every pushed event is either consumed once or counted in Dropped
type EventQueue struct {
	ring    [parameter.EventQueueSize]slot
	read    atomic.Uint64
	write   atomic.Uint64
	dropped atomic.Uint64
}

func NewEventQueue() *EventQueue {
	return &EventQueue{}
}

// Push claims the next write position and publishes ev into it
func (q *EventQueue) Push(ev GameEvent) {
	pos := q.write.Add(1) - 1
	s := &q.ring[pos&parameter.EventBufferMask]
	s.seq.Store(0)
	s.ev.Store(&ev)
	s.seq.Store(pos + 1)

	// Overwrote an unread lap: move read past it
	for {
		r := q.read.Load()
		if pos+1 <= r+parameter.EventQueueSize {
			return
		}
		next := pos + 1 - parameter.EventQueueSize
		if q.read.CompareAndSwap(r, next) {
			q.dropped.Add(next - r)
			return
		}
	}
}

// Consume drains published events in push order
// Stops at the first slot whose producer has not finished writing
// Slots are never cleared, so a lost race with a producer just rereads from the new cursor
func (q *EventQueue) Consume() []GameEvent {
	for {
		cur := q.read.Load()
		w := q.write.Load()
		if w <= cur {
			return nil
		}
		r := cur
		if w-r > parameter.EventQueueSize {
			r = w - parameter.EventQueueSize
		}

		out := make([]GameEvent, 0, w-r)
		for pos := r; pos < w; pos++ {
			s := &q.ring[pos&parameter.EventBufferMask]
			if s.seq.Load() != pos+1 {
				break
			}
			ev := s.ev.Load()
			if s.seq.Load() != pos+1 {
				break
			}
			out = append(out, *ev)
		}

		if q.read.CompareAndSwap(cur, r+uint64(len(out))) {
			if r > cur {
				q.dropped.Add(r - cur)
			}
			if len(out) == 0 {
				return nil
			}
			return out
		}
	}
}

// Len is the approximate number of pending events
func (q *EventQueue) Len() int {
	r, w := q.read.Load(), q.write.Load()
	if w <= r {
		return 0
	}
	return int(min(w-r, parameter.EventQueueSize))
}

// Dropped counts events overwritten before they were consumed
func (q *EventQueue) Dropped() uint64 {
	return q.dropped.Load()
}
