package engine

import (
	"sync"
	"sync/atomic"
	"time"
)

// PausableClock provides pausable game time with pause duration tracking
type PausableClock struct {
	mu sync.RWMutex

	now       func() time.Time
	startTime time.Time

	isPaused        atomic.Bool
	pauseStartTime  time.Time     // When current pause started (real time)
	totalPausedTime time.Duration // Cumulative pause duration
}

// NewPausableClock creates a running clock on wall time
func NewPausableClock() *PausableClock {
	return newPausableClockWith(time.Now)
}

func newPausableClockWith(now func() time.Time) *PausableClock {
	return &PausableClock{now: now, startTime: now()}
}

// Now returns current game time, frozen while paused
func (pc *PausableClock) Now() time.Time {
	pc.mu.RLock()
	defer pc.mu.RUnlock()

	real := pc.now()
	if pc.isPaused.Load() {
		real = pc.pauseStartTime
	}
	return real.Add(-pc.totalPausedTime)
}

// Elapsed returns game time since the clock started
func (pc *PausableClock) Elapsed() time.Duration {
	return pc.Now().Sub(pc.startTime)
}

// Pause stops game time advancement
func (pc *PausableClock) Pause() {
	if pc.isPaused.CompareAndSwap(false, true) {
		pc.mu.Lock()
		defer pc.mu.Unlock()
		pc.pauseStartTime = pc.now()
	}
}

// Resume continues game time advancement
func (pc *PausableClock) Resume() {
	if pc.isPaused.CompareAndSwap(true, false) {
		pc.mu.Lock()
		defer pc.mu.Unlock()
		if !pc.pauseStartTime.IsZero() {
			pc.totalPausedTime += pc.now().Sub(pc.pauseStartTime)
			pc.pauseStartTime = time.Time{}
		}
	}
}

// IsPaused returns current pause state
func (pc *PausableClock) IsPaused() bool {
	return pc.isPaused.Load()
}

// TotalPauseDuration returns cumulative pause time, including an ongoing pause
func (pc *PausableClock) TotalPauseDuration() time.Duration {
	pc.mu.RLock()
	defer pc.mu.RUnlock()

	total := pc.totalPausedTime
	if pc.isPaused.Load() && !pc.pauseStartTime.IsZero() {
		total += pc.now().Sub(pc.pauseStartTime)
	}
	return total
}
