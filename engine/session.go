package engine

import (
	"fmt"
	"time"

	"github.com/lixenwraith/plinko/board"
	"github.com/lixenwraith/plinko/component"
	"github.com/lixenwraith/plinko/config"
	"github.com/lixenwraith/plinko/parameter"
	"github.com/lixenwraith/plinko/physics"
	"github.com/lixenwraith/plinko/status"
	"github.com/lixenwraith/plinko/vmath"
	"go.uber.org/zap"
)

// NewGameWorld builds a world with every session resource installed
// Board and history preconditions are checked here so a bad config fails before the first tick
// A zero cfg.Engine.Seed picks a time based seed
func NewGameWorld(cfg *config.Config, solver physics.Solver) (*World, error) {
	b, err := board.Generate(cfg.Layout())
	if err != nil {
		return nil, fmt.Errorf("generate board: %w", err)
	}

	history, err := NewHistory(cfg.History.Capacity)
	if err != nil {
		return nil, fmt.Errorf("create history: %w", err)
	}

	seed := cfg.Engine.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}

	w := NewWorld()
	rs := w.Resources

	camera := w.CreateEntity()
	w.Components.Camera.SetComponent(camera, component.CameraComponent{})

	AddResource(rs, &TimeResource{})
	AddResource(rs, &ConfigResource{Config: cfg})
	AddResource(rs, &StateResource{})
	AddResource(rs, &CameraResource{Entity: camera})
	AddResource(rs, &BoardResource{Board: b})
	AddResource(rs, &PhysicsResource{Solver: solver})
	AddResource(rs, &RandResource{FastRand: vmath.NewFastRand(seed), Seed: seed})
	AddResource(rs, NewEconomy(cfg.Economy.StartingBalance))
	AddResource(rs, history)
	AddResource(rs, NewBallRegistry())
	AddResource(rs, NewCollisionBuffer())
	AddResource(rs, NewJournal(parameter.JournalCapacity))
	AddResource(rs, status.NewRegistry())

	return w, nil
}

// SetLogger installs the session logger; call before constructing systems
func SetLogger(w *World, log *zap.Logger) {
	AddResource(w.Resources, &LoggerResource{Logger: log})
}

// SetAudio installs or replaces the audio backend
func SetAudio(w *World, player AudioPlayer) {
	AddResource(w.Resources, &AudioResource{Player: player})
}

// SolverConfig maps the physics config section onto solver tuning
func SolverConfig(cfg *config.Config) physics.Config {
	sc := physics.DefaultConfig()
	sc.Substeps = cfg.Physics.Substeps
	sc.Gravity = vmath.V2(0, cfg.Physics.Gravity)
	sc.Restitution = cfg.Physics.Restitution
	sc.MaxSpeed = cfg.Physics.MaxSpeed
	sc.CellSize = cfg.Physics.CellSize
	return sc
}
