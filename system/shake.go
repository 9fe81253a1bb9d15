package system

import (
	"github.com/lixenwraith/plinko/engine"
	"github.com/lixenwraith/plinko/parameter"
)

// ShakeSystem decays the camera shake and writes the camera offset
type ShakeSystem struct {
	engine.SystemBase
}

// NewShakeSystem creates a new camera shake system
func NewShakeSystem(world *engine.World) engine.System {
	s := &ShakeSystem{SystemBase: engine.NewSystemBase(world)}
	s.Init()
	return s
}

// Init clears any leftover offset
func (s *ShakeSystem) Init() {
	s.Resource.Camera.OffsetX = 0
	s.Resource.Camera.OffsetY = 0
}

// Name returns system's name
func (s *ShakeSystem) Name() string {
	return "shake"
}

// Priority returns the system's priority
func (s *ShakeSystem) Priority() int {
	return parameter.PriorityShake
}

// Update advances the active shake; on expiry the offset is exactly zero and the component is gone
func (s *ShakeSystem) Update() {
	camera := s.Resource.Camera
	shake, ok := s.Component.Shake.GetComponent(camera.Entity)
	if !ok {
		return
	}

	shake.Elapsed += s.Resource.Time.DeltaTime
	if shake.Elapsed >= shake.Duration {
		camera.OffsetX = 0
		camera.OffsetY = 0
		s.Component.Shake.RemoveEntity(camera.Entity)
		return
	}

	amount := shake.Amount()
	camera.OffsetX = s.Resource.Rand.Symmetric(amount)
	camera.OffsetY = s.Resource.Rand.Symmetric(amount)
	s.Component.Shake.SetComponent(camera.Entity, shake)
}
