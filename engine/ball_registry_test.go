package engine

import (
	"slices"
	"testing"

	"github.com/lixenwraith/plinko/core"
	"github.com/lixenwraith/plinko/physics"
)

func TestBallRegistryKeepsSpawnOrder(t *testing.T) {
	r := NewBallRegistry()
	for _, e := range []core.Entity{5, 7, 9, 7} {
		r.Add(e)
	}
	if r.Len() != 3 {
		t.Fatalf("len = %d, want 3", r.Len())
	}
	if !r.Remove(7) || r.Remove(7) {
		t.Fatal("remove should succeed once")
	}
	if got := r.All(); !slices.Equal(got, []core.Entity{5, 9}) {
		t.Errorf("all = %v", got)
	}
	if r.Contains(7) || !r.Contains(9) {
		t.Error("contains mismatch")
	}
	r.Remove(5)
	r.Add(11)
	if got := r.All(); !slices.Equal(got, []core.Entity{9, 11}) {
		t.Errorf("all = %v", got)
	}
}

func TestCollisionBufferDrainsOnce(t *testing.T) {
	b := NewCollisionBuffer()
	b.Append(physics.Collision{Kind: physics.CollisionStarted, A: 1, B: 2})
	b.Append(physics.Collision{Kind: physics.CollisionEnded, A: 1, B: 2})
	if b.Len() != 2 {
		t.Fatalf("len = %d", b.Len())
	}
	if got := b.Drain(); len(got) != 2 {
		t.Errorf("drained %d records", len(got))
	}
	if got := b.Drain(); len(got) != 0 {
		t.Errorf("second drain returned %v", got)
	}
}
