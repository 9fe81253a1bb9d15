package engine

import (
	"reflect"
	"sync"
	"sync/atomic"
	"time"

	"github.com/lixenwraith/plinko/board"
	"github.com/lixenwraith/plinko/config"
	"github.com/lixenwraith/plinko/core"
	"github.com/lixenwraith/plinko/event"
	"github.com/lixenwraith/plinko/physics"
	"github.com/lixenwraith/plinko/status"
	"github.com/lixenwraith/plinko/vmath"
	"go.uber.org/zap"
)

//go:generate go tool mockgen -destination=./mocks/audio_mock.go -package=mocks . AudioPlayer

// ResourceStore is a thread-safe container for global game resources
// Systems reach shared data through it without coupling to main
type ResourceStore struct {
	mu        sync.RWMutex
	resources map[reflect.Type]any
}

// NewResourceStore creates a new empty resource store
func NewResourceStore() *ResourceStore {
	return &ResourceStore{
		resources: make(map[reflect.Type]any),
	}
}

// AddResource registers or replaces a resource keyed by its dynamic type
// Pointer types are expected so systems can mutate in place
func AddResource[T any](rs *ResourceStore, resource T) {
	rs.mu.Lock()
	defer rs.mu.Unlock()
	rs.resources[reflect.TypeOf(resource)] = resource
}

// GetResource retrieves a resource of type T
// Returns the zero value of T and false if not found
func GetResource[T any](rs *ResourceStore) (T, bool) {
	rs.mu.RLock()
	defer rs.mu.RUnlock()

	var target T
	val, ok := rs.resources[reflect.TypeOf(target)]
	if !ok {
		return target, false
	}
	return val.(T), true
}

// MustGetResource retrieves a resource or panics if missing
// Used for resources main installs before any system is constructed
func MustGetResource[T any](rs *ResourceStore) T {
	res, ok := GetResource[T](rs)
	if !ok {
		var target T
		panic("Required resource not found: " + reflect.TypeOf(target).String())
	}
	return res
}

// --- Core Resources ---

// TimeResource wraps time data for systems, updated at the start of each tick
type TimeResource struct {
	// DeltaTime is the fixed tick interval
	DeltaTime time.Duration

	// GameTime is simulated time since session start, excluding pauses
	GameTime time.Duration

	// FrameNumber is the current tick index
	FrameNumber int64
}

// Update advances the resource in place
// Must be called under world lock to prevent races with systems reads
func (tr *TimeResource) Update(dt time.Duration, frame int64) {
	tr.DeltaTime = dt
	tr.GameTime += dt
	tr.FrameNumber = frame
}

// EventQueueResource wraps the event queue for systems access
type EventQueueResource struct {
	Queue *event.EventQueue
}

// ConfigResource exposes the validated session configuration
type ConfigResource struct {
	*config.Config
}

// StateResource holds session mode flags toggled by input
// Atomics so the renderer can read without the world lock
type StateResource struct {
	AutoDrop atomic.Bool
	Paused   atomic.Bool
	Muted    atomic.Bool
}

// CameraResource is the view anchor; Offset is the current shake displacement
type CameraResource struct {
	Entity  core.Entity
	OffsetX float64
	OffsetY float64
}

// Offset returns the displacement as a vector
func (c *CameraResource) Offset() vmath.Vec2 {
	return vmath.V2(c.OffsetX, c.OffsetY)
}

// BoardResource publishes the generated board and the entity of each peg and zone
type BoardResource struct {
	Board *board.Board
	Pegs  []core.Entity // Parallel to Board.Pegs
	Zones []core.Entity // Parallel to Board.Zones
}

// PhysicsResource holds the solver collaborator
type PhysicsResource struct {
	Solver physics.Solver
}

// RandResource is the seeded generator for jitter and shake
// Only touched from the tick goroutine
type RandResource struct {
	*vmath.FastRand
	Seed uint64
}

// LoggerResource carries the session logger; absent means a no-op logger
type LoggerResource struct {
	*zap.Logger
}

// --- Audio ---

// AudioPlayer defines the minimal audio interface used by game systems
type AudioPlayer interface {
	Play(sound core.SoundType, power float64) bool
	ToggleMute() bool
	IsMuted() bool
}

// AudioResource wraps the optional audio backend
type AudioResource struct {
	Player AudioPlayer
}

// Resource holds cached pointers to every singleton, resolved once per system
type Resource struct {
	Time     *TimeResource
	Event    *EventQueueResource
	Config   *ConfigResource
	State    *StateResource
	Camera   *CameraResource
	Board    *BoardResource
	Physics  *PhysicsResource
	Rand     *RandResource
	Economy  *Economy
	History  *History
	Balls    *BallRegistry
	Contacts *CollisionBuffer
	Journal  *Journal

	// Telemetry
	Status *status.Registry
	Log    *zap.Logger

	// Optional; nil when audio is disabled
	Audio *AudioResource
}

// GetResourceStore resolves the Resource view of a world
// Panics if a required resource is missing; Audio, Board and the logger may be absent
func GetResourceStore(w *World) Resource {
	rs := w.Resources
	r := Resource{
		Time:     MustGetResource[*TimeResource](rs),
		Event:    MustGetResource[*EventQueueResource](rs),
		Config:   MustGetResource[*ConfigResource](rs),
		State:    MustGetResource[*StateResource](rs),
		Camera:   MustGetResource[*CameraResource](rs),
		Physics:  MustGetResource[*PhysicsResource](rs),
		Rand:     MustGetResource[*RandResource](rs),
		Economy:  MustGetResource[*Economy](rs),
		History:  MustGetResource[*History](rs),
		Balls:    MustGetResource[*BallRegistry](rs),
		Contacts: MustGetResource[*CollisionBuffer](rs),
		Journal:  MustGetResource[*Journal](rs),
		Status:   MustGetResource[*status.Registry](rs),
	}
	r.Board, _ = GetResource[*BoardResource](rs)
	r.Audio, _ = GetResource[*AudioResource](rs)
	if lr, ok := GetResource[*LoggerResource](rs); ok && lr.Logger != nil {
		r.Log = lr.Logger
	} else {
		r.Log = zap.NewNop()
	}
	return r
}
