package system

import (
	"github.com/lixenwraith/plinko/engine"
	"github.com/lixenwraith/plinko/parameter"
)

// GravitySystem applies the per-tick fall override before the solver step
// vy is decremented by a fixed amount each tick and spin is cancelled,
// so fall speed depends on the tick rate by construction
type GravitySystem struct {
	engine.SystemBase
	fallRate float64
}

// NewGravitySystem creates a new gravity override system
func NewGravitySystem(world *engine.World) engine.System {
	s := &GravitySystem{SystemBase: engine.NewSystemBase(world)}
	s.Init()
	return s
}

// Init reads the fall rate from config
func (s *GravitySystem) Init() {
	s.fallRate = s.Resource.Config.Ball.FallRate
}

// Name returns system's name
func (s *GravitySystem) Name() string {
	return "gravity"
}

// Priority returns the system's priority
func (s *GravitySystem) Priority() int {
	return parameter.PriorityGravity
}

// Update adjusts every dynamic body
func (s *GravitySystem) Update() {
	solver := s.Resource.Physics.Solver
	for _, e := range solver.DynamicBodies() {
		v, _, ok := solver.Velocity(e)
		if !ok {
			continue
		}
		v.Y -= s.fallRate
		solver.SetVelocity(e, v, 0)
	}
}
