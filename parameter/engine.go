package parameter

import "time"

// Game Loop & Engine Timing
const (
	// FrameUpdateInterval is the rendering frame rate interval (~60 FPS)
	FrameUpdateInterval = 16 * time.Millisecond

	// GameUpdateInterval is the simulation tick interval
	// The gravity override is a per-tick decrement, so fall speed is tied to this value
	GameUpdateInterval = 16 * time.Millisecond
)

// ECS & Resources Limits
const (
	// EventQueueSize is the fixed capacity of the event ring buffer
	EventQueueSize = 1024

	// EventBufferMask is the bitmask for fast modulo operations (1024 - 1)
	EventBufferMask = 1023
)

// Monitor surface
const (
	// MonitorStreamInterval is the period between websocket snapshot pushes
	MonitorStreamInterval = 100 * time.Millisecond

	// MonitorShutdownTimeout bounds graceful HTTP shutdown on exit
	MonitorShutdownTimeout = 2 * time.Second
)

// JournalCapacity is the number of recent gameplay events kept for the monitor
const JournalCapacity = 64
