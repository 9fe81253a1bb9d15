package system

import (
	"testing"
	"time"

	"github.com/lixenwraith/plinko/component"
	"github.com/lixenwraith/plinko/config"
	"github.com/lixenwraith/plinko/core"
	"github.com/lixenwraith/plinko/engine"
	"github.com/lixenwraith/plinko/physics"
)

const testTick = 20 * time.Millisecond

// newTestWorld builds a headless world with the real solver and every system installed
func newTestWorld(t testing.TB, mutate func(*config.Config)) *engine.World {
	t.Helper()
	cfg := config.Default()
	cfg.Engine.Seed = 42
	if mutate != nil {
		mutate(cfg)
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("config: %v", err)
	}
	w, err := engine.NewGameWorld(cfg, physics.NewWorld(physics.DefaultConfig()))
	if err != nil {
		t.Fatalf("NewGameWorld: %v", err)
	}
	if err := Install(w); err != nil {
		t.Fatalf("Install: %v", err)
	}
	return w
}

// newBareWorld builds a world with resources and the board entities but no systems
func newBareWorld(t testing.TB, mutate func(*config.Config)) *engine.World {
	t.Helper()
	cfg := config.Default()
	cfg.Engine.Seed = 42
	if mutate != nil {
		mutate(cfg)
	}
	w, err := engine.NewGameWorld(cfg, physics.NewWorld(physics.DefaultConfig()))
	if err != nil {
		t.Fatalf("NewGameWorld: %v", err)
	}
	if _, err := NewBoardSystem(w); err != nil {
		t.Fatalf("NewBoardSystem: %v", err)
	}
	return w
}

func res(w *engine.World) engine.Resource {
	return engine.GetResourceStore(w)
}

// addZone creates a standalone zone entity with the given power
func addZone(w *engine.World, power float64) core.Entity {
	e := w.CreateEntity()
	w.Components.Zone.SetComponent(e, component.ZoneComponent{Power: power})
	return e
}

func started(a, b core.Entity) physics.Collision {
	return physics.Collision{Kind: physics.CollisionStarted, A: min(a, b), B: max(a, b)}
}
