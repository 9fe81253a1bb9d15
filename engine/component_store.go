package engine

import (
	"github.com/lixenwraith/plinko/component"
	"github.com/lixenwraith/plinko/core"
)

// ComponentStore holds the typed store of every component kind
// Pointers are stable for the world lifetime; systems cache the struct once
type ComponentStore struct {
	Ball   *Store[component.BallComponent]
	Zone   *Store[component.ZoneComponent]
	Peg    *Store[component.PegComponent]
	Shake  *Store[component.ShakeComponent]
	Camera *Store[component.CameraComponent]
}

func newComponentStore() ComponentStore {
	return ComponentStore{
		Ball:   NewStore[component.BallComponent](),
		Zone:   NewStore[component.ZoneComponent](),
		Peg:    NewStore[component.PegComponent](),
		Shake:  NewStore[component.ShakeComponent](),
		Camera: NewStore[component.CameraComponent](),
	}
}

func (cs ComponentStore) removeEntity(e core.Entity) {
	cs.Ball.RemoveEntity(e)
	cs.Zone.RemoveEntity(e)
	cs.Peg.RemoveEntity(e)
	cs.Shake.RemoveEntity(e)
	cs.Camera.RemoveEntity(e)
}

func (cs ComponentStore) removeBatch(entities []core.Entity) {
	cs.Ball.RemoveBatch(entities)
	cs.Zone.RemoveBatch(entities)
	cs.Peg.RemoveBatch(entities)
	cs.Shake.RemoveBatch(entities)
	cs.Camera.RemoveBatch(entities)
}

func (cs ComponentStore) clear() {
	cs.Ball.ClearAllComponents()
	cs.Zone.ClearAllComponents()
	cs.Peg.ClearAllComponents()
	cs.Shake.ClearAllComponents()
	cs.Camera.ClearAllComponents()
}
