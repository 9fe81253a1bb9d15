package system

import (
	"fmt"

	"github.com/lixenwraith/plinko/component"
	"github.com/lixenwraith/plinko/core"
	"github.com/lixenwraith/plinko/engine"
	"github.com/lixenwraith/plinko/parameter"
	"github.com/lixenwraith/plinko/physics"
	"go.uber.org/zap"
)

// BoardSystem instantiates the generated board into the world and the solver
// Runs once at construction; the board never changes afterwards
type BoardSystem struct {
	engine.SystemBase
}

// NewBoardSystem creates pegs and zones for the board resource
// Fails if the solver rejects a body, which means the board cannot be played
func NewBoardSystem(world *engine.World) (*BoardSystem, error) {
	s := &BoardSystem{SystemBase: engine.NewSystemBase(world)}
	if err := s.instantiate(); err != nil {
		return nil, err
	}
	s.Init()
	return s, nil
}

func (s *BoardSystem) instantiate() error {
	res := s.Resource.Board
	if res == nil || res.Board == nil {
		return fmt.Errorf("board resource missing")
	}
	b := res.Board
	solver := s.Resource.Physics.Solver

	res.Pegs = make([]core.Entity, 0, len(b.Pegs))
	for _, peg := range b.Pegs {
		e := s.World.CreateEntity()
		if err := solver.AddBody(e, physics.Circle(physics.Fixed, peg.Position, peg.Radius)); err != nil {
			return fmt.Errorf("peg %d/%d: %w", peg.Row, peg.Index, err)
		}
		s.Component.Peg.SetComponent(e, component.PegComponent{Row: peg.Row, Index: peg.Index})
		res.Pegs = append(res.Pegs, e)
	}

	res.Zones = make([]core.Entity, 0, len(b.Zones))
	for _, zone := range b.Zones {
		e := s.World.CreateEntity()
		def := physics.Box(physics.Fixed, zone.Position, zone.HalfExtent, zone.HalfExtent)
		def.Sensor = true
		if err := solver.AddBody(e, def); err != nil {
			return fmt.Errorf("zone %d: %w", zone.Index, err)
		}
		s.Component.Zone.SetComponent(e, component.ZoneComponent{Power: zone.Power, Slot: zone.Slot})
		res.Zones = append(res.Zones, e)
	}

	s.Resource.Log.Debug("board instantiated",
		zap.Int("pegs", len(res.Pegs)),
		zap.Int("zones", len(res.Zones)),
		zap.Float64s("powers", b.Powers()),
	)
	return nil
}

// Init is a no-op; the board never changes during a session
func (s *BoardSystem) Init() {}

// Name returns system's name
func (s *BoardSystem) Name() string {
	return "board"
}

// Priority returns the system's priority
func (s *BoardSystem) Priority() int {
	return parameter.PriorityBoard
}

// Update is a no-op; pegs and zones are immutable
func (s *BoardSystem) Update() {}
