// Package physics is the rigid-body collaborator: bodies keyed by entity,
// a fixed-step impulse solver, and contact start/end reporting.
package physics

import (
	"errors"
	"time"

	"github.com/lixenwraith/plinko/core"
	"github.com/lixenwraith/plinko/vmath"
)

//go:generate go tool mockgen -destination=./mocks/solver_mock.go -package=mocks . Solver

// ErrDuplicateBody is returned when an entity already owns a body
var ErrDuplicateBody = errors.New("entity already has a body")

// ErrInvalidBody is returned for body definitions the solver cannot simulate
var ErrInvalidBody = errors.New("invalid body definition")

// Solver is the narrow surface the simulation core needs from a physics engine
// All methods are called from the tick goroutine only
type Solver interface {
	// AddBody registers a body for entity e
	AddBody(e core.Entity, def BodyDef) error

	// RemoveBody unregisters e; contacts it was part of end on the next Step
	RemoveBody(e core.Entity)

	// Position returns the body center
	Position(e core.Entity) (vmath.Vec2, bool)

	// SetPosition teleports a body without touching its velocity
	SetPosition(e core.Entity, p vmath.Vec2) bool

	// Velocity returns linear and angular velocity
	Velocity(e core.Entity) (vmath.Vec2, float64, bool)

	// SetVelocity overwrites linear and angular velocity
	SetVelocity(e core.Entity, linear vmath.Vec2, angular float64) bool

	// DynamicBodies returns entities of all dynamic bodies in insertion order
	DynamicBodies() []core.Entity

	// BodyCount returns the number of registered bodies
	BodyCount() int

	// Step advances the simulation and returns contact transitions in occurrence order
	Step(dt time.Duration) []Collision
}

// CollisionKind tells whether a contact began or ended
type CollisionKind uint8

const (
	CollisionStarted CollisionKind = iota
	CollisionEnded
)

func (k CollisionKind) String() string {
	if k == CollisionStarted {
		return "started"
	}
	return "ended"
}

// Collision is an immutable contact transition between two bodies
// A < B always; consumers must not assume which side is the ball
type Collision struct {
	Kind CollisionKind
	A    core.Entity
	B    core.Entity
}

// Other returns the opposite side of the pair, or 0 if e is not part of it
func (c Collision) Other(e core.Entity) core.Entity {
	switch e {
	case c.A:
		return c.B
	case c.B:
		return c.A
	default:
		return 0
	}
}
