package system

import (
	"sync/atomic"
	"time"

	"go.uber.org/zap"

	"github.com/lixenwraith/plinko/component"
	"github.com/lixenwraith/plinko/core"
	"github.com/lixenwraith/plinko/engine"
	"github.com/lixenwraith/plinko/event"
	"github.com/lixenwraith/plinko/parameter"
	"github.com/lixenwraith/plinko/physics"
	"github.com/lixenwraith/plinko/status"
	"github.com/lixenwraith/plinko/vmath"
)

// BallSystem owns the ball lifecycle: paid spawns, refusals, auto-drop and floor pruning
// It is the only system allowed to destroy a ball
type BallSystem struct {
	engine.SystemBase

	cost     float64
	jitter   int
	drop     vmath.Vec2
	radius   float64
	floorY   float64
	interval time.Duration

	autoElapsed time.Duration

	statLive    *atomic.Int64
	statSpawned *atomic.Int64
	statPruned  *atomic.Int64
	statRefused *atomic.Int64
	statBalance *status.Gauge
}

// NewBallSystem creates a new ball lifecycle system
func NewBallSystem(world *engine.World) *BallSystem {
	s := &BallSystem{SystemBase: engine.NewSystemBase(world)}

	reg := s.Resource.Status
	s.statLive = reg.Counters.Get("balls.live")
	s.statSpawned = reg.Counters.Get("balls.spawned")
	s.statPruned = reg.Counters.Get("balls.pruned")
	s.statRefused = reg.Counters.Get("spawn.refused")
	s.statBalance = reg.Gauges.Get("economy.balance")

	s.Init()
	return s
}

// Init reads tunables from config and resets auto-drop timing
func (s *BallSystem) Init() {
	cfg := s.Resource.Config
	s.cost = cfg.Economy.SpawnCost
	s.jitter = cfg.Ball.Jitter
	s.drop = vmath.V2(cfg.Ball.DropX, cfg.Ball.DropY)
	s.radius = cfg.Ball.Radius
	s.floorY = cfg.Ball.FloorY
	s.interval = cfg.Ball.AutoDropInterval.Duration
	s.autoElapsed = 0
	s.statBalance.Set(s.Resource.Economy.Balance())
}

// Name returns system's name
func (s *BallSystem) Name() string {
	return "ball"
}

// Priority returns the system's priority
func (s *BallSystem) Priority() int {
	return parameter.PriorityBall
}

// EventTypes returns the event types BallSystem handles
func (s *BallSystem) EventTypes() []event.EventType {
	return []event.EventType{
		event.EventSpawnRequest,
		event.EventAutoDropToggle,
	}
}

// HandleEvent processes spawn requests and auto-drop toggles
func (s *BallSystem) HandleEvent(_ *engine.World, ev event.GameEvent) {
	switch ev.Type {
	case event.EventSpawnRequest:
		s.TrySpawn()
	case event.EventAutoDropToggle:
		on := !s.Resource.State.AutoDrop.Load()
		s.Resource.State.AutoDrop.Store(on)
		s.autoElapsed = 0
		s.Resource.Log.Debug("auto-drop toggled", zap.Bool("enabled", on))
	}
}

// Update prunes fallen balls, then runs auto-drop
func (s *BallSystem) Update() {
	s.PruneFallen()

	if s.Resource.State.AutoDrop.Load() && s.interval > 0 {
		s.autoElapsed += s.Resource.Time.DeltaTime
		for s.autoElapsed >= s.interval {
			s.autoElapsed -= s.interval
			s.TrySpawn()
		}
	}
}

// TrySpawn debits the spawn cost and drops a ball, or refuses and shakes the camera
// Returns true if a ball was created; either outcome is applied in full
func (s *BallSystem) TrySpawn() bool {
	economy := s.Resource.Economy
	if !economy.Spend(s.cost) {
		s.refuse()
		return false
	}

	pos := s.drop
	if s.jitter > 0 {
		pos.X += float64(s.Resource.Rand.IntRange(-s.jitter, s.jitter))
	}

	e := s.World.CreateEntity()
	if err := s.Resource.Physics.Solver.AddBody(e, physics.Circle(physics.Dynamic, pos, s.radius)); err != nil {
		// Roll back the debit so a failed spawn is not half applied
		economy.Credit(s.cost)
		s.Resource.Log.Error("spawn body rejected", zap.Uint64("entity", uint64(e)), zap.Error(err))
		return false
	}
	s.Component.Ball.SetComponent(e, component.BallComponent{})
	s.Resource.Balls.Add(e)

	s.statSpawned.Add(1)
	s.statLive.Store(int64(s.Resource.Balls.Len()))
	s.statBalance.Set(economy.Balance())

	s.World.PushEvent(event.EventBallSpawned, &event.BallSpawnedPayload{
		Ball:    e,
		X:       pos.X,
		Y:       pos.Y,
		Cost:    s.cost,
		Balance: economy.Balance(),
	})
	s.World.PushEvent(event.EventSoundRequest, &event.SoundRequestPayload{SoundType: core.SoundDrop})
	return true
}

// refuse attaches a fresh shake to the camera, replacing any active one
func (s *BallSystem) refuse() {
	cfg := s.Resource.Config.Feedback
	s.Component.Shake.SetComponent(s.Resource.Camera.Entity,
		component.NewShake(cfg.ShakeDuration.Duration, cfg.ShakeIntensity))

	s.statRefused.Add(1)
	balance := s.Resource.Economy.Balance()
	s.Resource.Log.Debug("spawn refused", zap.Float64("balance", balance), zap.Float64("cost", s.cost))

	s.World.PushEvent(event.EventSpawnRefused, &event.SpawnRefusedPayload{Balance: balance, Cost: s.cost})
	s.World.PushEvent(event.EventSoundRequest, &event.SoundRequestPayload{SoundType: core.SoundBuzz})
}

// PruneFallen removes balls at or below the floor from the solver, the world and the registry
// Returns the number of balls removed
func (s *BallSystem) PruneFallen() int {
	solver := s.Resource.Physics.Solver
	registry := s.Resource.Balls

	var pruned []core.Entity
	for _, e := range registry.All() {
		pos, ok := solver.Position(e)
		if !ok {
			// Body vanished outside the lifecycle; drop the stale index entry
			registry.Remove(e)
			s.World.DestroyEntity(e)
			continue
		}
		if pos.Y > s.floorY {
			continue
		}
		solver.SetPosition(e, vmath.V2(pos.X, s.floorY))
		solver.RemoveBody(e)
		registry.Remove(e)
		pruned = append(pruned, e)
	}

	if len(pruned) == 0 {
		return 0
	}

	s.World.DestroyBatch(pruned)
	s.statPruned.Add(int64(len(pruned)))
	s.statLive.Store(int64(registry.Len()))
	s.Resource.Log.Debug("balls pruned", zap.Int("count", len(pruned)), zap.Int("live", registry.Len()))
	s.World.PushEvent(event.EventBallPruned, &event.BallPrunedPayload{Balls: pruned})
	return len(pruned)
}
