package engine

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/lixenwraith/plinko/core"
	"github.com/lixenwraith/plinko/event"
)

// ClockScheduler runs world ticks on a fixed interval
// Handles pause-aware scheduling without busy-wait
type ClockScheduler struct {
	world *World
	state *StateResource

	pausableClock *PausableClock

	tickInterval     time.Duration
	nextTickDeadline time.Time

	tickCount atomic.Uint64

	stopChan chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup
	running  atomic.Bool

	// Signals the render loop that a tick completed; dropped if unread
	updateDone chan struct{}

	queue       *event.EventQueue
	statTicks   *atomic.Int64
	statDropped *atomic.Int64
}

// NewClockScheduler creates a scheduler for world at the given interval
// Returns the scheduler and the tick-complete notification channel
func NewClockScheduler(world *World, pausableClock *PausableClock, tickInterval time.Duration) (*ClockScheduler, <-chan struct{}) {
	updateDone := make(chan struct{}, 1)
	res := GetResourceStore(world)

	cs := &ClockScheduler{
		world:         world,
		state:         res.State,
		pausableClock: pausableClock,
		tickInterval:  tickInterval,
		stopChan:      make(chan struct{}),
		updateDone:    updateDone,
		queue:         res.Event.Queue,
		statTicks:     res.Status.Counters.Get("engine.ticks"),
		statDropped:   res.Status.Counters.Get("events.dropped"),
	}
	return cs, updateDone
}

// Start begins the scheduler loop
func (cs *ClockScheduler) Start() {
	if cs.running.CompareAndSwap(false, true) {
		cs.wg.Add(1)
		// Use core.Go for safe execution with centralized crash handling
		core.Go(cs.schedulerLoop)
	}
}

// Stop halts the scheduler loop and waits for the current tick to finish
func (cs *ClockScheduler) Stop() {
	cs.stopOnce.Do(func() {
		if cs.running.CompareAndSwap(true, false) {
			close(cs.stopChan)
			cs.wg.Wait()
		}
	})
}

// Run starts the scheduler and stops it when ctx is done
func (cs *ClockScheduler) Run(ctx context.Context) error {
	cs.Start()
	<-ctx.Done()
	cs.Stop()
	return nil
}

// TickCount returns ticks processed since start
func (cs *ClockScheduler) TickCount() uint64 {
	return cs.tickCount.Load()
}

// SetPaused pauses or resumes both the clock and the tick loop
func (cs *ClockScheduler) SetPaused(paused bool) {
	cs.state.Paused.Store(paused)
	if paused {
		cs.pausableClock.Pause()
	} else {
		cs.pausableClock.Resume()
	}
}

func (cs *ClockScheduler) schedulerLoop() {
	defer cs.wg.Done()

	cs.nextTickDeadline = cs.pausableClock.Now().Add(cs.tickInterval)

	timer := time.NewTimer(cs.tickInterval)
	defer timer.Stop()

	for {
		var sleepDuration time.Duration

		if cs.state.Paused.Load() {
			// Poll slower while paused
			sleepDuration = cs.tickInterval * 2
		} else {
			gameNow := cs.pausableClock.Now()
			if !gameNow.Before(cs.nextTickDeadline) {
				cs.processTick()

				cs.nextTickDeadline = cs.nextTickDeadline.Add(cs.tickInterval)
				// Skip ahead instead of bursting after a stall
				if gameNow.Sub(cs.nextTickDeadline) > cs.tickInterval*2 {
					cs.nextTickDeadline = gameNow.Add(cs.tickInterval)
				}

				select {
				case cs.updateDone <- struct{}{}:
				default:
				}
			}
			sleepDuration = cs.nextTickDeadline.Sub(cs.pausableClock.Now())
		}

		if sleepDuration <= 0 {
			select {
			case <-cs.stopChan:
				return
			default:
				continue
			}
		}

		timer.Reset(sleepDuration)
		select {
		case <-timer.C:
		case <-cs.stopChan:
			return
		}
	}
}

// processTick executes one clock cycle
func (cs *ClockScheduler) processTick() {
	cs.world.Step(cs.tickInterval)
	ticks := cs.tickCount.Add(1)
	cs.statTicks.Store(int64(ticks))
	cs.statDropped.Store(int64(cs.queue.Dropped()))
}
