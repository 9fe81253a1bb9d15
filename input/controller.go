// Package input maps terminal keys to game events.
// Input never touches world state directly; it only pushes events and
// flips the pause flag, both safe from the main goroutine.
package input

import (
	"go.uber.org/zap"

	"github.com/lixenwraith/plinko/engine"
	"github.com/lixenwraith/plinko/event"
)

// Pauser is implemented by the clock scheduler
type Pauser interface {
	SetPaused(paused bool)
}

// Controller applies intents to a running world
type Controller struct {
	world  *engine.World
	pauser Pauser
	state  *engine.StateResource
	log    *zap.Logger
}

// NewController creates a controller; pauser may be nil for headless use
func NewController(world *engine.World, pauser Pauser) *Controller {
	r := engine.GetResourceStore(world)
	return &Controller{
		world:  world,
		pauser: pauser,
		state:  r.State,
		log:    r.Log,
	}
}

// Apply acts on an intent and reports whether the session should end
// Resize is left to the caller, which owns the renderer
func (c *Controller) Apply(intent IntentType) (quit bool) {
	switch intent {
	case IntentQuit:
		return true
	case IntentSpawn:
		c.world.PushEvent(event.EventSpawnRequest, nil)
	case IntentAutoDrop:
		c.world.PushEvent(event.EventAutoDropToggle, nil)
	case IntentGrant:
		c.world.PushEvent(event.EventGrantFunds, nil)
	case IntentMute:
		c.world.PushEvent(event.EventMuteToggle, nil)
	case IntentPause:
		paused := !c.state.Paused.Load()
		if c.pauser != nil {
			c.pauser.SetPaused(paused)
		} else {
			c.state.Paused.Store(paused)
		}
		c.log.Debug("pause toggled", zap.Bool("paused", paused))
	}
	return false
}
