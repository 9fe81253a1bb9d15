package engine

import (
	"context"
	"testing"
	"time"
)

func TestPausableClockFreezesWhilePaused(t *testing.T) {
	now := time.Unix(1000, 0)
	pc := newPausableClockWith(func() time.Time { return now })

	now = now.Add(time.Second)
	if got := pc.Elapsed(); got != time.Second {
		t.Fatalf("elapsed = %v, want 1s", got)
	}

	pc.Pause()
	now = now.Add(5 * time.Second)
	if got := pc.Elapsed(); got != time.Second {
		t.Errorf("elapsed while paused = %v, want 1s", got)
	}
	if got := pc.TotalPauseDuration(); got != 5*time.Second {
		t.Errorf("pause duration = %v, want 5s", got)
	}

	pc.Resume()
	now = now.Add(2 * time.Second)
	if got := pc.Elapsed(); got != 3*time.Second {
		t.Errorf("elapsed after resume = %v, want 3s", got)
	}
}

func TestClockSchedulerTicksAndStops(t *testing.T) {
	w := newTestWorld(t)
	cs, done := NewClockScheduler(w, NewPausableClock(), 2*time.Millisecond)

	ctx, cancel := context.WithCancel(context.Background())
	errc := make(chan error, 1)
	go func() { errc <- cs.Run(ctx) }()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("no tick within 2s")
	}

	cancel()
	if err := <-errc; err != nil {
		t.Fatalf("Run: %v", err)
	}
	if cs.TickCount() == 0 || w.FrameNumber() == 0 {
		t.Errorf("ticks = %d frame = %d", cs.TickCount(), w.FrameNumber())
	}

	reg := GetResourceStore(w).Status
	if reg.Counters.Get("engine.ticks").Load() != int64(cs.TickCount()) {
		t.Error("engine.ticks metric out of sync")
	}
}

func TestClockSchedulerSkipsTicksWhilePaused(t *testing.T) {
	w := newTestWorld(t)
	cs, _ := NewClockScheduler(w, NewPausableClock(), time.Millisecond)
	cs.SetPaused(true)
	cs.Start()
	time.Sleep(20 * time.Millisecond)
	cs.Stop()
	if cs.TickCount() != 0 {
		t.Errorf("ticked %d times while paused", cs.TickCount())
	}
}
