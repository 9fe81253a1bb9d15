package event

import (
	"sync"
	"testing"

	"github.com/lixenwraith/plinko/parameter"
)

func TestQueueConsumeFIFO(t *testing.T) {
	q := NewEventQueue()
	for i := int64(0); i < 5; i++ {
		q.Push(GameEvent{Type: EventSpawnRequest, Frame: i})
	}
	if q.Len() != 5 {
		t.Fatalf("len = %d, want 5", q.Len())
	}

	got := q.Consume()
	if len(got) != 5 {
		t.Fatalf("consumed %d, want 5", len(got))
	}
	for i, ev := range got {
		if ev.Frame != int64(i) {
			t.Errorf("event %d has frame %d", i, ev.Frame)
		}
	}
	if q.Consume() != nil || q.Len() != 0 {
		t.Error("queue not empty after consume")
	}
}

func TestQueueOverflowDropsOldest(t *testing.T) {
	q := NewEventQueue()
	const extra = 5
	for i := 0; i < parameter.EventQueueSize+extra; i++ {
		q.Push(GameEvent{Type: EventSpawnRequest, Frame: int64(i)})
	}

	got := q.Consume()
	if len(got) != parameter.EventQueueSize {
		t.Fatalf("consumed %d, want %d", len(got), parameter.EventQueueSize)
	}
	if got[0].Frame != extra {
		t.Errorf("oldest surviving frame = %d, want %d", got[0].Frame, extra)
	}
	if q.Dropped() != extra {
		t.Errorf("dropped = %d, want %d", q.Dropped(), extra)
	}
}

func TestQueueConcurrentProducers(t *testing.T) {
	q := NewEventQueue()
	const producers, each = 4, 100

	var wg sync.WaitGroup
	for p := 0; p < producers; p++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < each; i++ {
				q.Push(GameEvent{Type: EventSpawnRequest})
			}
		}()
	}
	wg.Wait()

	if got := len(q.Consume()); got != producers*each {
		t.Errorf("consumed %d, want %d", got, producers*each)
	}
}

// Overflowing producers racing the consumer: every event is delivered once or counted as dropped
func TestQueueConsumeDuringOverflowLosesNothing(t *testing.T) {
	q := NewEventQueue()
	const producers, each = 4, 5000

	var wg sync.WaitGroup
	for p := 0; p < producers; p++ {
		wg.Add(1)
		go func(p int) {
			defer wg.Done()
			for i := 0; i < each; i++ {
				q.Push(GameEvent{Type: EventSpawnRequest, Payload: p, Frame: int64(i)})
			}
		}(p)
	}
	finished := make(chan struct{})
	go func() {
		wg.Wait()
		close(finished)
	}()

	last := make([]int64, producers)
	for i := range last {
		last[i] = -1
	}
	consumed := 0
	collect := func(evs []GameEvent) {
		for _, ev := range evs {
			p := ev.Payload.(int)
			if ev.Frame <= last[p] {
				t.Fatalf("producer %d: frame %d after %d", p, ev.Frame, last[p])
			}
			last[p] = ev.Frame
			consumed++
		}
	}

	for running := true; running; {
		select {
		case <-finished:
			running = false
		default:
			collect(q.Consume())
		}
	}
	for evs := q.Consume(); evs != nil; evs = q.Consume() {
		collect(evs)
	}

	if got := uint64(consumed) + q.Dropped(); got != producers*each {
		t.Errorf("consumed %d + dropped %d = %d, want %d", consumed, q.Dropped(), got, producers*each)
	}
}

func TestQueueDoesNotRedeliverOldLap(t *testing.T) {
	q := NewEventQueue()
	for i := 0; i < parameter.EventQueueSize; i++ {
		q.Push(GameEvent{Type: EventSpawnRequest})
	}
	if got := len(q.Consume()); got != parameter.EventQueueSize {
		t.Fatalf("first lap consumed %d", got)
	}

	q.Push(GameEvent{Type: EventMuteToggle})
	got := q.Consume()
	if len(got) != 1 || got[0].Type != EventMuteToggle {
		t.Errorf("second lap = %v, want the single new event", got)
	}
	if q.Dropped() != 0 {
		t.Errorf("dropped = %d, want 0", q.Dropped())
	}
}

type recorder struct {
	name string
	log  *[]string
}

func (r recorder) EventTypes() []EventType { return []EventType{EventSpawnRequest, EventMuteToggle} }

func (r recorder) HandleEvent(_ int, ev GameEvent) {
	*r.log = append(*r.log, r.name+":"+ev.Type.String())
}

func TestRouterDispatchOrder(t *testing.T) {
	q := NewEventQueue()
	rt := NewRouter[int](q)
	var log []string
	rt.Register(recorder{"a", &log})
	rt.Register(recorder{"b", &log})

	q.Push(GameEvent{Type: EventMuteToggle})
	q.Push(GameEvent{Type: EventGrantFunds})
	q.Push(GameEvent{Type: EventSpawnRequest})

	if n := rt.DispatchAll(0); n != 3 {
		t.Fatalf("dispatched %d, want 3", n)
	}
	want := []string{"a:mute_toggle", "b:mute_toggle", "a:spawn_request", "b:spawn_request"}
	if len(log) != len(want) {
		t.Fatalf("log = %v", log)
	}
	for i := range want {
		if log[i] != want[i] {
			t.Errorf("log[%d] = %s, want %s", i, log[i], want[i])
		}
	}
	if rt.HandlerCount(EventGrantFunds) != 0 || !rt.HasHandlers(EventSpawnRequest) {
		t.Error("unexpected handler registration")
	}
}

func TestEventTypeString(t *testing.T) {
	if EventBallScored.String() != "ball_scored" || EventType(99).String() != "unknown" {
		t.Error("unexpected event names")
	}
}
