package system

import (
	"fmt"

	"github.com/lixenwraith/plinko/engine"
)

// Install constructs every gameplay system and adds it to the world
// The debug funds system is added only when the config allows grants
// Audio and logger resources must be installed beforehand
func Install(world *engine.World) error {
	boardSys, err := NewBoardSystem(world)
	if err != nil {
		return fmt.Errorf("board system: %w", err)
	}

	world.AddSystem(boardSys)
	world.AddSystem(NewGravitySystem(world))
	world.AddSystem(NewPhysicsSystem(world))
	world.AddSystem(NewBallSystem(world))
	world.AddSystem(NewScoringSystem(world))
	world.AddSystem(NewShakeSystem(world))
	world.AddSystem(NewAudioSystem(world))
	world.AddSystem(NewTelemetrySystem(world))

	if engine.MustGetResource[*engine.ConfigResource](world.Resources).Economy.AllowGrant {
		world.AddSystem(NewDebugSystem(world))
	}
	return nil
}
