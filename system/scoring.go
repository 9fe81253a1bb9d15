package system

import (
	"sync/atomic"

	"go.uber.org/zap"

	"github.com/lixenwraith/plinko/component"
	"github.com/lixenwraith/plinko/core"
	"github.com/lixenwraith/plinko/engine"
	"github.com/lixenwraith/plinko/event"
	"github.com/lixenwraith/plinko/parameter"
	"github.com/lixenwraith/plinko/physics"
	"github.com/lixenwraith/plinko/status"
)

// ScoringSystem turns ball/zone contact starts into payouts
// Each ball pays at most once: HasScored is checked and set in the same step
type ScoringSystem struct {
	engine.SystemBase

	payoutBase float64

	statScored  *atomic.Int64
	statBalance *status.Gauge
}

// NewScoringSystem creates a new scoring system
func NewScoringSystem(world *engine.World) *ScoringSystem {
	s := &ScoringSystem{SystemBase: engine.NewSystemBase(world)}
	s.statScored = s.Resource.Status.Counters.Get("balls.scored")
	s.statBalance = s.Resource.Status.Gauges.Get("economy.balance")
	s.Init()
	return s
}

// Init reads the payout base from config
func (s *ScoringSystem) Init() {
	s.payoutBase = s.Resource.Config.Economy.PayoutBase
}

// Name returns system's name
func (s *ScoringSystem) Name() string {
	return "scoring"
}

// Priority returns the system's priority
func (s *ScoringSystem) Priority() int {
	return parameter.PriorityScoring
}

// Update drains this tick's contact records
func (s *ScoringSystem) Update() {
	for _, c := range s.Resource.Contacts.Drain() {
		s.Apply(c)
	}
}

// Apply scores a single record and reports whether it produced a payout
// Ended records, non ball/zone pairs, unknown entities and scored balls are ignored
func (s *ScoringSystem) Apply(c physics.Collision) bool {
	if c.Kind != physics.CollisionStarted {
		return false
	}

	ball, ballEntity, zone, zoneEntity, ok := s.resolvePair(c.A, c.B)
	if !ok {
		ball, ballEntity, zone, zoneEntity, ok = s.resolvePair(c.B, c.A)
	}
	if !ok || ball.HasScored {
		return false
	}

	payout := s.payoutBase * zone.Power
	economy := s.Resource.Economy
	economy.Credit(payout)
	ball.HasScored = true
	s.Component.Ball.SetComponent(ballEntity, ball)
	s.Resource.History.Push(zone.Power)

	s.statScored.Add(1)
	s.statBalance.Set(economy.Balance())
	s.Resource.Log.Debug("payout",
		zap.Uint64("ball", uint64(ballEntity)),
		zap.Float64("power", zone.Power),
		zap.Float64("payout", payout),
		zap.Float64("balance", economy.Balance()),
	)

	s.World.PushEvent(event.EventBallScored, &event.BallScoredPayload{
		Ball:    ballEntity,
		Zone:    zoneEntity,
		Power:   zone.Power,
		Payout:  payout,
		Balance: economy.Balance(),
	})
	s.World.PushEvent(event.EventSoundRequest, &event.SoundRequestPayload{
		SoundType: core.SoundCoin,
		Power:     zone.Power,
	})
	return true
}

// resolvePair treats a as the ball side and b as the zone side
func (s *ScoringSystem) resolvePair(a, b core.Entity) (component.BallComponent, core.Entity, component.ZoneComponent, core.Entity, bool) {
	ball, ok := s.Component.Ball.GetComponent(a)
	if !ok {
		return component.BallComponent{}, 0, component.ZoneComponent{}, 0, false
	}
	zone, ok := s.Component.Zone.GetComponent(b)
	if !ok {
		return component.BallComponent{}, 0, component.ZoneComponent{}, 0, false
	}
	return ball, a, zone, b, true
}
