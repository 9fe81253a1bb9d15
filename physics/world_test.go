package physics

import (
	"errors"
	"testing"
	"time"

	"github.com/lixenwraith/plinko/core"
	"github.com/lixenwraith/plinko/vmath"
)

const tick = 16 * time.Millisecond

func testConfig() Config {
	cfg := DefaultConfig()
	cfg.Gravity = vmath.Vec2{}
	return cfg
}

// bouncyConfig makes contacts elastic enough to separate bodies after impact
func bouncyConfig() Config {
	cfg := testConfig()
	cfg.Restitution = 0.5
	return cfg
}

func countKind(cs []Collision, kind CollisionKind, a, b core.Entity) int {
	n := 0
	for _, c := range cs {
		if c.Kind == kind && c.A == a && c.B == b {
			n++
		}
	}
	return n
}

func stepN(w *World, n int) []Collision {
	var all []Collision
	for i := 0; i < n; i++ {
		all = append(all, w.Step(tick)...)
	}
	return all
}

func TestAddBodyRejectsDuplicate(t *testing.T) {
	w := NewWorld(testConfig())
	if err := w.AddBody(1, Circle(Fixed, vmath.V2(0, 0), 7)); err != nil {
		t.Fatalf("first add: %v", err)
	}
	err := w.AddBody(1, Circle(Fixed, vmath.V2(10, 0), 7))
	if !errors.Is(err, ErrDuplicateBody) {
		t.Fatalf("expected ErrDuplicateBody, got %v", err)
	}
	if w.BodyCount() != 1 {
		t.Errorf("body count = %d, want 1", w.BodyCount())
	}
}

func TestAddBodyRejectsInvalidShapes(t *testing.T) {
	tests := []struct {
		name string
		def  BodyDef
	}{
		{"zero radius", Circle(Dynamic, vmath.V2(0, 0), 0)},
		{"negative box", Box(Fixed, vmath.V2(0, 0), -1, 5)},
		{"dynamic box", Box(Dynamic, vmath.V2(0, 0), 5, 5)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := NewWorld(testConfig())
			if err := w.AddBody(1, tt.def); !errors.Is(err, ErrInvalidBody) {
				t.Errorf("expected ErrInvalidBody, got %v", err)
			}
		})
	}
}

func TestFreeBodyIntegratesVelocity(t *testing.T) {
	w := NewWorld(testConfig())
	_ = w.AddBody(1, Circle(Dynamic, vmath.V2(0, 0), 7))
	w.SetVelocity(1, vmath.V2(0, -100), 3)

	w.Step(time.Second)

	p, ok := w.Position(1)
	if !ok {
		t.Fatal("body missing")
	}
	if diff := p.Y + 100; diff > 1e-9 || diff < -1e-9 {
		t.Errorf("y = %v, want -100", p.Y)
	}
	_, ang, _ := w.Velocity(1)
	if ang != 3 {
		t.Errorf("angular velocity = %v, want 3", ang)
	}
}

func TestFixedBodyIgnoresVelocity(t *testing.T) {
	w := NewWorld(testConfig())
	_ = w.AddBody(1, Circle(Fixed, vmath.V2(5, 5), 7))
	if w.SetVelocity(1, vmath.V2(10, 10), 0) {
		t.Error("SetVelocity on fixed body should report false")
	}
	w.Step(tick)
	if p, _ := w.Position(1); p != vmath.V2(5, 5) {
		t.Errorf("fixed body moved to %v", p)
	}
	if got := w.DynamicBodies(); len(got) != 0 {
		t.Errorf("DynamicBodies = %v, want none", got)
	}
}

func TestBallBouncesOffPegWithSingleStart(t *testing.T) {
	w := NewWorld(bouncyConfig())
	peg, ball := core.Entity(1), core.Entity(2)
	_ = w.AddBody(peg, Circle(Fixed, vmath.V2(0, 0), 7))
	_ = w.AddBody(ball, Circle(Dynamic, vmath.V2(0, 20), 7))
	w.SetVelocity(ball, vmath.V2(0, -300), 0)

	all := stepN(w, 30)

	if n := countKind(all, CollisionStarted, peg, ball); n != 1 {
		t.Errorf("started = %d, want 1", n)
	}
	if n := countKind(all, CollisionEnded, peg, ball); n != 1 {
		t.Errorf("ended = %d, want 1", n)
	}
	v, _, _ := w.Velocity(ball)
	if v.Y <= 0 {
		t.Errorf("ball should rebound upward, vy = %v", v.Y)
	}
	if w.ContactCount() != 0 {
		t.Errorf("contacts = %d, want 0 after separation", w.ContactCount())
	}
}

func TestDefaultRestitutionAbsorbsImpact(t *testing.T) {
	w := NewWorld(testConfig())
	peg, ball := core.Entity(1), core.Entity(2)
	_ = w.AddBody(peg, Circle(Fixed, vmath.V2(0, 0), 7))
	_ = w.AddBody(ball, Circle(Dynamic, vmath.V2(0, 20), 7))
	w.SetVelocity(ball, vmath.V2(0, -300), 0)

	touched := false
	for i := 0; i < 30; i++ {
		if countKind(w.Step(tick), CollisionStarted, peg, ball) > 0 {
			touched = true
		}
		v, _, _ := w.Velocity(ball)
		if v.Y > 0 {
			t.Fatalf("step %d: ball bounced upward, vy = %v", i, v.Y)
		}
		if v.X != 0 {
			t.Fatalf("step %d: head-on hit gained sideways speed %v", i, v.X)
		}
	}
	if !touched {
		t.Fatal("ball never reached the peg")
	}
	if p, _ := w.Position(ball); p.Y <= 0 {
		t.Errorf("ball passed through the peg, y = %v", p.Y)
	}
}

func TestSensorReportsWithoutResolution(t *testing.T) {
	w := NewWorld(testConfig())
	zone, ball := core.Entity(1), core.Entity(2)
	def := Box(Fixed, vmath.V2(0, 0), 10, 10)
	def.Sensor = true
	_ = w.AddBody(zone, def)
	_ = w.AddBody(ball, Circle(Dynamic, vmath.V2(0, 30), 7))
	w.SetVelocity(ball, vmath.V2(0, -600), 0)

	all := stepN(w, 10)

	if n := countKind(all, CollisionStarted, zone, ball); n != 1 {
		t.Errorf("started = %d, want 1", n)
	}
	if n := countKind(all, CollisionEnded, zone, ball); n != 1 {
		t.Errorf("ended = %d, want 1", n)
	}
	if v, _, _ := w.Velocity(ball); v != vmath.V2(0, -600) {
		t.Errorf("sensor changed velocity to %v", v)
	}
}

func TestRemoveBodyEndsContactsNextStep(t *testing.T) {
	w := NewWorld(testConfig())
	zone, ball := core.Entity(1), core.Entity(2)
	def := Box(Fixed, vmath.V2(0, 0), 10, 10)
	def.Sensor = true
	_ = w.AddBody(zone, def)
	_ = w.AddBody(ball, Circle(Dynamic, vmath.V2(0, 0), 7))

	first := w.Step(tick)
	if countKind(first, CollisionStarted, zone, ball) != 1 {
		t.Fatalf("expected overlap start, got %v", first)
	}

	w.RemoveBody(ball)
	if _, ok := w.Position(ball); ok {
		t.Fatal("removed body still reachable")
	}

	next := w.Step(tick)
	if len(next) != 1 || next[0] != (Collision{Kind: CollisionEnded, A: zone, B: ball}) {
		t.Errorf("next step = %v, want single ended record", next)
	}
	if again := w.Step(tick); len(again) != 0 {
		t.Errorf("unexpected records %v", again)
	}
}

func TestDynamicPairExchangesMomentum(t *testing.T) {
	w := NewWorld(bouncyConfig())
	_ = w.AddBody(1, Circle(Dynamic, vmath.V2(-20, 0), 7))
	_ = w.AddBody(2, Circle(Dynamic, vmath.V2(20, 0), 7))
	w.SetVelocity(1, vmath.V2(100, 0), 0)
	w.SetVelocity(2, vmath.V2(-100, 0), 0)

	all := stepN(w, 20)

	if countKind(all, CollisionStarted, 1, 2) != 1 {
		t.Errorf("expected one start, got %v", all)
	}
	va, _, _ := w.Velocity(1)
	vb, _, _ := w.Velocity(2)
	if va.X >= 0 || vb.X <= 0 {
		t.Errorf("expected separation, got va=%v vb=%v", va, vb)
	}
}

func TestSpeedClamp(t *testing.T) {
	cfg := testConfig()
	cfg.MaxSpeed = 50
	w := NewWorld(cfg)
	_ = w.AddBody(1, Circle(Dynamic, vmath.V2(0, 0), 7))
	w.SetVelocity(1, vmath.V2(0, -1000), 0)
	w.Step(tick)
	v, _, _ := w.Velocity(1)
	if v.Len() > 50+1e-9 {
		t.Errorf("speed %v exceeds clamp", v.Len())
	}
}

func TestStepIsDeterministic(t *testing.T) {
	build := func() *World {
		w := NewWorld(DefaultConfig())
		for i := 0; i < 5; i++ {
			_ = w.AddBody(core.Entity(i+1), Circle(Fixed, vmath.V2(float64(i*20-40), 0), 7))
		}
		_ = w.AddBody(10, Circle(Dynamic, vmath.V2(3, 40), 7))
		_ = w.AddBody(11, Circle(Dynamic, vmath.V2(-9, 60), 7))
		w.SetVelocity(10, vmath.V2(0, -200), 0)
		w.SetVelocity(11, vmath.V2(0, -250), 0)
		return w
	}

	a, b := build(), build()
	for i := 0; i < 60; i++ {
		ca, cb := a.Step(tick), b.Step(tick)
		if len(ca) != len(cb) {
			t.Fatalf("step %d: %d vs %d records", i, len(ca), len(cb))
		}
		for j := range ca {
			if ca[j] != cb[j] {
				t.Fatalf("step %d record %d: %v vs %v", i, j, ca[j], cb[j])
			}
		}
	}
	pa, _ := a.Position(10)
	pb, _ := b.Position(10)
	if pa != pb {
		t.Errorf("positions diverged: %v vs %v", pa, pb)
	}
}

func TestCollisionOther(t *testing.T) {
	c := Collision{Kind: CollisionStarted, A: 3, B: 9}
	if c.Other(3) != 9 || c.Other(9) != 3 || c.Other(4) != 0 {
		t.Errorf("Other mismatch for %v", c)
	}
}
