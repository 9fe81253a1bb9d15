package physics

import (
	"fmt"

	"github.com/lixenwraith/plinko/core"
	"github.com/lixenwraith/plinko/vmath"
)

// BodyKind selects how the solver moves a body
type BodyKind uint8

const (
	// Dynamic bodies integrate velocity and respond to contacts
	Dynamic BodyKind = iota
	// Fixed bodies never move and have infinite mass
	Fixed
)

// ShapeKind selects the collider geometry
type ShapeKind uint8

const (
	ShapeCircle ShapeKind = iota
	ShapeBox
)

// BodyDef describes a body at registration time
type BodyDef struct {
	Kind     BodyKind
	Shape    ShapeKind
	Position vmath.Vec2
	Velocity vmath.Vec2

	Radius float64 // ShapeCircle
	HalfW  float64 // ShapeBox
	HalfH  float64 // ShapeBox

	// Sensor bodies report contacts but never push back
	Sensor bool

	// Restitution overrides the solver default when positive
	Restitution float64
}

// Circle returns a circle body definition
func Circle(kind BodyKind, pos vmath.Vec2, radius float64) BodyDef {
	return BodyDef{Kind: kind, Shape: ShapeCircle, Position: pos, Radius: radius}
}

// Box returns an axis-aligned box body definition
func Box(kind BodyKind, pos vmath.Vec2, halfW, halfH float64) BodyDef {
	return BodyDef{Kind: kind, Shape: ShapeBox, Position: pos, HalfW: halfW, HalfH: halfH}
}

func (d BodyDef) validate() error {
	switch d.Shape {
	case ShapeCircle:
		if d.Radius <= 0 {
			return fmt.Errorf("%w: circle radius %g", ErrInvalidBody, d.Radius)
		}
	case ShapeBox:
		if d.HalfW <= 0 || d.HalfH <= 0 {
			return fmt.Errorf("%w: box extents %g x %g", ErrInvalidBody, d.HalfW, d.HalfH)
		}
	default:
		return fmt.Errorf("%w: unknown shape %d", ErrInvalidBody, d.Shape)
	}
	if d.Kind == Dynamic && d.Shape != ShapeCircle {
		return fmt.Errorf("%w: dynamic bodies must be circles", ErrInvalidBody)
	}
	return nil
}

// body is the solver's internal state for one entity
type body struct {
	entity      core.Entity
	kind        BodyKind
	shape       ShapeKind
	pos         vmath.Vec2
	vel         vmath.Vec2
	angVel      float64
	angle       float64
	radius      float64
	halfW       float64
	halfH       float64
	sensor      bool
	restitution float64
	invMass     float64
}

func newBody(e core.Entity, d BodyDef, defaultRestitution float64) *body {
	b := &body{
		entity:      e,
		kind:        d.Kind,
		shape:       d.Shape,
		pos:         d.Position,
		vel:         d.Velocity,
		radius:      d.Radius,
		halfW:       d.HalfW,
		halfH:       d.HalfH,
		sensor:      d.Sensor,
		restitution: defaultRestitution,
	}
	if d.Restitution > 0 {
		b.restitution = d.Restitution
	}
	if d.Kind == Dynamic {
		b.invMass = 1
	} else {
		b.vel = vmath.Vec2{}
	}
	return b
}

// bounds returns the axis-aligned box of the collider
func (b *body) bounds() (minP, maxP vmath.Vec2) {
	if b.shape == ShapeCircle {
		r := vmath.V2(b.radius, b.radius)
		return b.pos.Sub(r), b.pos.Add(r)
	}
	h := vmath.V2(b.halfW, b.halfH)
	return b.pos.Sub(h), b.pos.Add(h)
}
