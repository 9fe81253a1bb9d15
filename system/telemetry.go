package system

import (
	"github.com/lixenwraith/plinko/engine"
	"github.com/lixenwraith/plinko/event"
	"github.com/lixenwraith/plinko/parameter"
)

// TelemetrySystem records gameplay events into the journal read by the monitor
type TelemetrySystem struct {
	engine.SystemBase
}

// NewTelemetrySystem creates a new telemetry system
func NewTelemetrySystem(world *engine.World) engine.System {
	s := &TelemetrySystem{SystemBase: engine.NewSystemBase(world)}
	s.Init()
	return s
}

func (s *TelemetrySystem) Init() {}

// Name returns system's name
func (s *TelemetrySystem) Name() string {
	return "telemetry"
}

// Priority returns the system's priority
func (s *TelemetrySystem) Priority() int {
	return parameter.PriorityTelemetry
}

// EventTypes returns the event types TelemetrySystem records
func (s *TelemetrySystem) EventTypes() []event.EventType {
	return []event.EventType{
		event.EventBallSpawned,
		event.EventSpawnRefused,
		event.EventBallScored,
		event.EventBallPruned,
	}
}

// HandleEvent copies the event into the journal
// Payloads are never mutated after push, so sharing the pointer is safe
func (s *TelemetrySystem) HandleEvent(_ *engine.World, ev event.GameEvent) {
	s.Resource.Journal.Record(engine.JournalEntry{
		Frame: ev.Frame,
		Type:  ev.Type.String(),
		Data:  ev.Payload,
	})
}

// Update is a no-op; all work happens on events
func (s *TelemetrySystem) Update() {}
