package input

import (
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/plinko/config"
	"github.com/lixenwraith/plinko/engine"
	"github.com/lixenwraith/plinko/event"
	"github.com/lixenwraith/plinko/physics"
)

func runeKey(r rune) *tcell.EventKey {
	return tcell.NewEventKey(tcell.KeyRune, r, tcell.ModNone)
}

func TestDefaultBindings(t *testing.T) {
	m := NewMachine(nil)
	cases := []struct {
		ev   tcell.Event
		want IntentType
	}{
		{runeKey(' '), IntentSpawn},
		{runeKey('w'), IntentSpawn},
		{runeKey('W'), IntentSpawn},
		{runeKey('a'), IntentAutoDrop},
		{runeKey('R'), IntentGrant},
		{runeKey('p'), IntentPause},
		{runeKey('m'), IntentMute},
		{runeKey('q'), IntentQuit},
		{runeKey('z'), IntentNone},
		{tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone), IntentQuit},
		{tcell.NewEventKey(tcell.KeyCtrlC, 0, tcell.ModCtrl), IntentQuit},
		{tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone), IntentNone},
		{tcell.NewEventResize(80, 24), IntentResize},
	}
	for _, c := range cases {
		if got := m.Process(c.ev); got != c.want {
			t.Errorf("Process(%v) = %v, want %v", c.ev, got, c.want)
		}
	}
}

func TestApplyBindings(t *testing.T) {
	base := DefaultKeyTable()
	kt, err := ApplyBindings(base, map[string][]string{
		"spawn": {"enter", "S"},
		"quit":  {"ctrl-q"},
	})
	if err != nil {
		t.Fatalf("ApplyBindings: %v", err)
	}
	m := NewMachine(kt)

	if m.Process(runeKey(' ')) != IntentNone || m.Process(runeKey('w')) != IntentNone {
		t.Error("default spawn keys survived rebinding")
	}
	if m.Process(tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone)) != IntentSpawn {
		t.Error("enter not bound to spawn")
	}
	if m.Process(runeKey('s')) != IntentSpawn {
		t.Error("s not bound to spawn")
	}
	if m.Process(runeKey('q')) != IntentNone || m.Process(tcell.NewEventKey(tcell.KeyCtrlQ, 0, tcell.ModCtrl)) != IntentQuit {
		t.Error("quit not rebound")
	}
	if m.Process(runeKey('a')) != IntentAutoDrop {
		t.Error("unlisted action lost its binding")
	}
	// Base is untouched
	if base.Runes[' '] != IntentSpawn {
		t.Error("ApplyBindings mutated the base table")
	}
}

func TestApplyBindingsErrors(t *testing.T) {
	cases := map[string]map[string][]string{
		"unknown action": {"fly": {"f"}},
		"resize":         {"resize": {"x"}},
		"bad key":        {"spawn": {"ctrl-shift-banana"}},
	}
	for name, b := range cases {
		if _, err := ApplyBindings(DefaultKeyTable(), b); err == nil {
			t.Errorf("%s: expected error", name)
		}
	}
}

type fakePauser struct {
	calls []bool
}

func (f *fakePauser) SetPaused(p bool) { f.calls = append(f.calls, p) }

func newWorld(t *testing.T) *engine.World {
	t.Helper()
	w, err := engine.NewGameWorld(config.Default(), physics.NewWorld(physics.DefaultConfig()))
	if err != nil {
		t.Fatalf("NewGameWorld: %v", err)
	}
	return w
}

func TestControllerPushesEvents(t *testing.T) {
	w := newWorld(t)
	c := NewController(w, nil)

	for _, in := range []IntentType{IntentSpawn, IntentAutoDrop, IntentGrant, IntentMute, IntentNone, IntentResize} {
		if c.Apply(in) {
			t.Errorf("%v reported quit", in)
		}
	}
	if !c.Apply(IntentQuit) {
		t.Error("quit not reported")
	}

	events := engine.GetResourceStore(w).Event.Queue.Consume()
	want := []event.EventType{event.EventSpawnRequest, event.EventAutoDropToggle, event.EventGrantFunds, event.EventMuteToggle}
	if len(events) != len(want) {
		t.Fatalf("queued %d events, want %d", len(events), len(want))
	}
	for i, ev := range events {
		if ev.Type != want[i] {
			t.Errorf("event %d = %v, want %v", i, ev.Type, want[i])
		}
	}
}

func TestControllerPause(t *testing.T) {
	w := newWorld(t)
	p := &fakePauser{}
	c := NewController(w, p)
	state := engine.GetResourceStore(w).State

	c.Apply(IntentPause)
	if len(p.calls) != 1 || !p.calls[0] {
		t.Fatalf("pauser calls = %v, want [true]", p.calls)
	}

	// Scheduler owns the flag; mimic it
	state.Paused.Store(true)
	c.Apply(IntentPause)
	if len(p.calls) != 2 || p.calls[1] {
		t.Errorf("pauser calls = %v, want [true false]", p.calls)
	}

	headless := NewController(w, nil)
	headless.Apply(IntentPause)
	if state.Paused.Load() {
		t.Error("headless pause did not flip the flag")
	}
}
