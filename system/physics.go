package system

import (
	"sync/atomic"

	"github.com/lixenwraith/plinko/engine"
	"github.com/lixenwraith/plinko/parameter"
	"github.com/lixenwraith/plinko/physics"
)

// PhysicsSystem steps the solver and queues its contact records for scoring
type PhysicsSystem struct {
	engine.SystemBase

	statBodies   *atomic.Int64
	statContacts *atomic.Int64
}

// NewPhysicsSystem creates a new physics step system
func NewPhysicsSystem(world *engine.World) engine.System {
	s := &PhysicsSystem{SystemBase: engine.NewSystemBase(world)}
	s.statBodies = s.Resource.Status.Counters.Get("physics.bodies")
	s.statContacts = s.Resource.Status.Counters.Get("physics.contacts")
	s.Init()
	return s
}

// Init drops contact records left from a previous session
func (s *PhysicsSystem) Init() {
	s.Resource.Contacts.Drain()
}

// Name returns system's name
func (s *PhysicsSystem) Name() string {
	return "physics"
}

// Priority returns the system's priority
func (s *PhysicsSystem) Priority() int {
	return parameter.PriorityPhysics
}

// Update advances the solver by one tick
func (s *PhysicsSystem) Update() {
	solver := s.Resource.Physics.Solver
	records := solver.Step(s.Resource.Time.DeltaTime)
	s.Resource.Contacts.Append(records...)

	started := 0
	for _, c := range records {
		if c.Kind == physics.CollisionStarted {
			started++
		}
	}
	s.statBodies.Store(int64(solver.BodyCount()))
	s.statContacts.Add(int64(started))
}
