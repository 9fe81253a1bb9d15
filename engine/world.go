package engine

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/lixenwraith/plinko/core"
	"github.com/lixenwraith/plinko/event"
)

// World contains all entities and their components using typed stores
type World struct {
	mu           sync.RWMutex
	nextEntityID core.Entity

	// Global ResourceStore
	Resources *ResourceStore

	Components ComponentStore

	eventQueue *event.EventQueue
	router     *event.Router[*World]
	frame      atomic.Int64

	systems     []System
	updateMutex sync.Mutex
}

// NewWorld creates a world with empty component stores and its own event queue
func NewWorld() *World {
	w := &World{
		nextEntityID: 1,
		Resources:    NewResourceStore(),
		systems:      make([]System, 0),
		eventQueue:   event.NewEventQueue(),
	}
	w.router = event.NewRouter[*World](w.eventQueue)
	w.Components = newComponentStore()

	AddResource(w.Resources, &EventQueueResource{Queue: w.eventQueue})
	return w
}

// CreateEntity reserves a new entity ID
func (w *World) CreateEntity() core.Entity {
	w.mu.Lock()
	defer w.mu.Unlock()

	id := w.nextEntityID
	w.nextEntityID++
	return id
}

// DestroyEntity removes all components associated with an entity
func (w *World) DestroyEntity(e core.Entity) {
	w.Components.removeEntity(e)
}

// Clear removes all entities and components from the world
func (w *World) Clear() {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.nextEntityID = 1
	w.Components.clear()
}

// AddSystem adds a system sorted by priority and registers its event handler side
// Systems with equal priority keep registration order
func (w *World) AddSystem(system System) {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.systems = append(w.systems, system)

	// Insertion sort, stable for equal priorities
	for i := len(w.systems) - 1; i > 0 && w.systems[i-1].Priority() > w.systems[i].Priority(); i-- {
		w.systems[i-1], w.systems[i] = w.systems[i], w.systems[i-1]
	}

	if h, ok := system.(event.Handler[*World]); ok {
		w.router.Register(h)
	}
}

// Systems returns a copy of all registered systems
func (w *World) Systems() []System {
	w.mu.RLock()
	defer w.mu.RUnlock()
	result := make([]System, len(w.systems))
	copy(result, w.systems)
	return result
}

// RunSafe executes a function while holding the world's update lock
func (w *World) RunSafe(fn func()) {
	w.updateMutex.Lock()
	defer w.updateMutex.Unlock()
	fn()
}

// Step runs one full tick under the update lock
func (w *World) Step(dt time.Duration) {
	w.RunSafe(func() {
		w.StepLocked(dt)
	})
}

// StepLocked runs one tick assuming the caller holds the update lock
// Order: time update, event dispatch, systems by priority
func (w *World) StepLocked(dt time.Duration) {
	frame := w.frame.Add(1)

	if tr, ok := GetResource[*TimeResource](w.Resources); ok {
		tr.Update(dt, frame)
	}

	w.router.DispatchAll(w)
	w.UpdateLocked()
}

// UpdateLocked runs all systems assuming the caller already holds updateMutex
func (w *World) UpdateLocked() {
	w.mu.RLock()
	systems := make([]System, len(w.systems))
	copy(systems, w.systems)
	w.mu.RUnlock()

	for _, system := range systems {
		system.Update()
	}
}

// FrameNumber returns the index of the current or last completed tick
func (w *World) FrameNumber() int64 {
	return w.frame.Load()
}

// PushEvent emits a game event stamped with the current frame
// Safe from any goroutine
func (w *World) PushEvent(eventType event.EventType, payload any) {
	w.eventQueue.Push(event.GameEvent{
		Type:    eventType,
		Payload: payload,
		Frame:   w.frame.Load(),
	})
}

// DispatchEvents routes pending events without running systems
// Used to flush requests pushed before the first tick
func (w *World) DispatchEvents() int {
	var n int
	w.RunSafe(func() {
		n = w.router.DispatchAll(w)
	})
	return n
}

// DestroyBatch removes all components of the given entities in one pass per store
func (w *World) DestroyBatch(entities []core.Entity) {
	w.Components.removeBatch(entities)
}
