package system

import (
	"go.uber.org/zap"

	"github.com/lixenwraith/plinko/engine"
	"github.com/lixenwraith/plinko/event"
	"github.com/lixenwraith/plinko/parameter"
	"github.com/lixenwraith/plinko/status"
)

// DebugSystem handles the grant-funds key
// It is the only path that sets the balance without the affordability guard,
// and it is registered only when the config allows it
type DebugSystem struct {
	engine.SystemBase
	amount      float64
	statBalance *status.Gauge
}

// NewDebugSystem creates a new debug funds system
func NewDebugSystem(world *engine.World) engine.System {
	s := &DebugSystem{SystemBase: engine.NewSystemBase(world)}
	s.statBalance = s.Resource.Status.Gauges.Get("economy.balance")
	s.Init()
	return s
}

// Init reads the grant amount from config
func (s *DebugSystem) Init() {
	s.amount = s.Resource.Config.Economy.GrantAmount
}

// Name returns system's name
func (s *DebugSystem) Name() string {
	return "debug"
}

// Priority returns the system's priority
func (s *DebugSystem) Priority() int {
	return parameter.PriorityDebug
}

// EventTypes returns the event types DebugSystem handles
func (s *DebugSystem) EventTypes() []event.EventType {
	return []event.EventType{event.EventGrantFunds}
}

// HandleEvent sets the balance to the grant amount
func (s *DebugSystem) HandleEvent(_ *engine.World, ev event.GameEvent) {
	if ev.Type != event.EventGrantFunds {
		return
	}
	s.Resource.Economy.Grant(s.amount)
	s.statBalance.Set(s.amount)
	s.Resource.Log.Warn("debug funds granted", zap.Float64("balance", s.amount))
}

// Update is a no-op; all work happens on events
func (s *DebugSystem) Update() {}
