package physics

import (
	"math"

	"github.com/lixenwraith/plinko/vmath"
)

// manifold describes one overlapping pair; Normal points from A to B
type manifold struct {
	a, b        *body
	normal      vmath.Vec2
	penetration float64
}

// detect runs the shape-pair test; box-box pairs never involve a dynamic body
func detect(a, b *body) (manifold, bool) {
	switch {
	case a.shape == ShapeCircle && b.shape == ShapeCircle:
		return circleCircle(a, b)
	case a.shape == ShapeCircle && b.shape == ShapeBox:
		return circleBox(a, b)
	case a.shape == ShapeBox && b.shape == ShapeCircle:
		m, ok := circleBox(b, a)
		if !ok {
			return m, false
		}
		return manifold{a: a, b: b, normal: m.normal.Scale(-1), penetration: m.penetration}, true
	default:
		return manifold{}, false
	}
}

func circleCircle(a, b *body) (manifold, bool) {
	delta := b.pos.Sub(a.pos)
	rs := a.radius + b.radius
	distSq := delta.LenSq()
	if distSq >= rs*rs {
		return manifold{}, false
	}

	dist := math.Sqrt(distSq)
	normal := vmath.V2(0, 1)
	if dist > 0 {
		normal = delta.Scale(1 / dist)
	}
	return manifold{a: a, b: b, normal: normal, penetration: rs - dist}, true
}

// circleBox tests circle c against box x; the normal points from the circle toward the box
func circleBox(c, x *body) (manifold, bool) {
	closest := vmath.V2(
		vmath.Clamp(c.pos.X, x.pos.X-x.halfW, x.pos.X+x.halfW),
		vmath.Clamp(c.pos.Y, x.pos.Y-x.halfH, x.pos.Y+x.halfH),
	)

	delta := c.pos.Sub(closest)
	distSq := delta.LenSq()
	if distSq >= c.radius*c.radius {
		return manifold{}, false
	}

	dist := math.Sqrt(distSq)
	if dist > 0 {
		return manifold{a: c, b: x, normal: delta.Scale(-1 / dist), penetration: c.radius - dist}, true
	}

	// Center inside the box: push out along the shallowest axis
	dx := math.Min(c.pos.X-(x.pos.X-x.halfW), (x.pos.X+x.halfW)-c.pos.X)
	dy := math.Min(c.pos.Y-(x.pos.Y-x.halfH), (x.pos.Y+x.halfH)-c.pos.Y)

	var out vmath.Vec2
	var pen float64
	if dx < dy {
		out = vmath.V2(1, 0)
		if c.pos.X < x.pos.X {
			out = vmath.V2(-1, 0)
		}
		pen = dx + c.radius
	} else {
		out = vmath.V2(0, 1)
		if c.pos.Y < x.pos.Y {
			out = vmath.V2(0, -1)
		}
		pen = dy + c.radius
	}
	return manifold{a: c, b: x, normal: out.Scale(-1), penetration: pen}, true
}

// resolve applies a restitution impulse and positional correction
// Sensor pairs are reported by the caller but never resolved
func resolve(m manifold, correction, slop float64) {
	a, b := m.a, m.b
	invSum := a.invMass + b.invMass
	if invSum == 0 {
		return
	}

	rel := b.vel.Sub(a.vel)
	along := rel.Dot(m.normal)
	if along < 0 {
		e := math.Min(a.restitution, b.restitution)
		j := -(1 + e) * along / invSum
		impulse := m.normal.Scale(j)
		a.vel = a.vel.Sub(impulse.Scale(a.invMass))
		b.vel = b.vel.Add(impulse.Scale(b.invMass))
	}

	if m.penetration > slop {
		fix := m.normal.Scale((m.penetration - slop) / invSum * correction)
		a.pos = a.pos.Sub(fix.Scale(a.invMass))
		b.pos = b.pos.Add(fix.Scale(b.invMass))
	}
}
