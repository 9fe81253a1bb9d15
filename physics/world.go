package physics

import (
	"fmt"
	"slices"
	"time"

	"github.com/lixenwraith/plinko/core"
	"github.com/lixenwraith/plinko/parameter"
	"github.com/lixenwraith/plinko/vmath"
)

// Config tunes the solver
type Config struct {
	Substeps           int
	Gravity            vmath.Vec2 // Constant acceleration in units/s^2, applied to dynamic bodies
	Restitution        float64
	MaxSpeed           float64 // Dynamic body speed clamp; zero disables
	CellSize           float64
	PositionCorrection float64
	PenetrationSlop    float64
}

// DefaultConfig returns the reference tuning
func DefaultConfig() Config {
	return Config{
		Substeps:           parameter.PhysicsSubsteps,
		Gravity:            vmath.V2(0, parameter.SolverGravity),
		Restitution:        parameter.Restitution,
		MaxSpeed:           parameter.MaxBallSpeed,
		CellSize:           parameter.BroadphaseCellSize,
		PositionCorrection: parameter.PositionCorrection,
		PenetrationSlop:    parameter.PenetrationSlop,
	}
}

// World is an in-process impulse solver implementing Solver
// Not safe for concurrent use; the scheduler owns it through the world lock
type World struct {
	cfg    Config
	bodies map[core.Entity]*body
	order  []*body // Insertion order for deterministic integration

	grid     *spatialGrid
	contacts map[pairKey]struct{} // Pairs overlapping at the end of the previous substep
	current  map[pairKey]struct{}
	pending  []Collision // Ended records for removed bodies, flushed on next Step
	scratch  []pairKey
}

var _ Solver = (*World)(nil)

// NewWorld creates an empty solver
func NewWorld(cfg Config) *World {
	if cfg.Substeps < 1 {
		cfg.Substeps = 1
	}
	if cfg.CellSize <= 0 {
		cfg.CellSize = parameter.BroadphaseCellSize
	}
	return &World{
		cfg:      cfg,
		bodies:   make(map[core.Entity]*body),
		grid:     newSpatialGrid(cfg.CellSize),
		contacts: make(map[pairKey]struct{}),
		current:  make(map[pairKey]struct{}),
	}
}

// AddBody registers a body for entity e
func (w *World) AddBody(e core.Entity, def BodyDef) error {
	if _, exists := w.bodies[e]; exists {
		return fmt.Errorf("%w: entity %d", ErrDuplicateBody, e)
	}
	if err := def.validate(); err != nil {
		return err
	}
	b := newBody(e, def, w.cfg.Restitution)
	w.bodies[e] = b
	w.order = append(w.order, b)
	return nil
}

// RemoveBody unregisters e and queues Ended records for its live contacts
func (w *World) RemoveBody(e core.Entity) {
	b, ok := w.bodies[e]
	if !ok {
		return
	}
	delete(w.bodies, e)
	if i := slices.Index(w.order, b); i >= 0 {
		w.order = slices.Delete(w.order, i, i+1)
	}

	w.scratch = w.scratch[:0]
	for k := range w.contacts {
		if k.a == e || k.b == e {
			w.scratch = append(w.scratch, k)
		}
	}
	slices.SortFunc(w.scratch, comparePairs)
	for _, k := range w.scratch {
		delete(w.contacts, k)
		w.pending = append(w.pending, Collision{Kind: CollisionEnded, A: k.a, B: k.b})
	}
}

func (w *World) Position(e core.Entity) (vmath.Vec2, bool) {
	if b, ok := w.bodies[e]; ok {
		return b.pos, true
	}
	return vmath.Vec2{}, false
}

func (w *World) SetPosition(e core.Entity, p vmath.Vec2) bool {
	b, ok := w.bodies[e]
	if !ok {
		return false
	}
	b.pos = p
	return true
}

func (w *World) Velocity(e core.Entity) (vmath.Vec2, float64, bool) {
	if b, ok := w.bodies[e]; ok {
		return b.vel, b.angVel, true
	}
	return vmath.Vec2{}, 0, false
}

// SetVelocity is ignored for fixed bodies
func (w *World) SetVelocity(e core.Entity, linear vmath.Vec2, angular float64) bool {
	b, ok := w.bodies[e]
	if !ok || b.kind == Fixed {
		return false
	}
	b.vel = linear
	b.angVel = angular
	return true
}

func (w *World) DynamicBodies() []core.Entity {
	out := make([]core.Entity, 0, len(w.order))
	for _, b := range w.order {
		if b.kind == Dynamic {
			out = append(out, b.entity)
		}
	}
	return out
}

func (w *World) BodyCount() int {
	return len(w.bodies)
}

// ContactCount returns the number of overlapping pairs after the last step
func (w *World) ContactCount() int {
	return len(w.contacts)
}

// Step advances by dt split into substeps
// Each substep integrates, detects, resolves, then diffs the contact set
func (w *World) Step(dt time.Duration) []Collision {
	out := w.pending
	w.pending = nil

	if dt <= 0 {
		return out
	}

	h := dt.Seconds() / float64(w.cfg.Substeps)
	for i := 0; i < w.cfg.Substeps; i++ {
		w.integrate(h)
		w.collide()
		out = w.diffContacts(out)
	}
	return out
}

func (w *World) integrate(h float64) {
	for _, b := range w.order {
		if b.kind != Dynamic {
			continue
		}
		b.vel = b.vel.Add(w.cfg.Gravity.Scale(h))
		if w.cfg.MaxSpeed > 0 {
			b.vel = b.vel.ClampLen(w.cfg.MaxSpeed)
		}
		b.pos = b.pos.Add(b.vel.Scale(h))
		b.angle += b.angVel * h
	}
}

func (w *World) collide() {
	w.grid.clear()
	for _, b := range w.order {
		w.grid.insert(b)
	}

	clear(w.current)
	for _, p := range w.grid.candidates() {
		m, ok := detect(p[0], p[1])
		if !ok {
			continue
		}
		w.current[makePair(p[0].entity, p[1].entity)] = struct{}{}
		if p[0].sensor || p[1].sensor {
			continue
		}
		resolve(m, w.cfg.PositionCorrection, w.cfg.PenetrationSlop)
	}
}

// diffContacts appends Ended then Started transitions, each sorted by pair
func (w *World) diffContacts(out []Collision) []Collision {
	w.scratch = w.scratch[:0]
	for k := range w.contacts {
		if _, still := w.current[k]; !still {
			w.scratch = append(w.scratch, k)
		}
	}
	slices.SortFunc(w.scratch, comparePairs)
	for _, k := range w.scratch {
		delete(w.contacts, k)
		out = append(out, Collision{Kind: CollisionEnded, A: k.a, B: k.b})
	}

	w.scratch = w.scratch[:0]
	for k := range w.current {
		if _, known := w.contacts[k]; !known {
			w.scratch = append(w.scratch, k)
		}
	}
	slices.SortFunc(w.scratch, comparePairs)
	for _, k := range w.scratch {
		w.contacts[k] = struct{}{}
		out = append(out, Collision{Kind: CollisionStarted, A: k.a, B: k.b})
	}
	return out
}
