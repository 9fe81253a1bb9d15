package system

import (
	"github.com/lixenwraith/plinko/engine"
	"github.com/lixenwraith/plinko/event"
	"github.com/lixenwraith/plinko/parameter"
)

// AudioSystem forwards sound requests to the audio backend and owns the mute toggle
// Without a backend, requests are dropped and mute only flips the state flag
type AudioSystem struct {
	engine.SystemBase
	player engine.AudioPlayer
}

// NewAudioSystem creates a new audio system
func NewAudioSystem(world *engine.World) engine.System {
	s := &AudioSystem{SystemBase: engine.NewSystemBase(world)}
	s.Init()
	return s
}

// Init resolves the backend, which may have been installed after world creation
func (s *AudioSystem) Init() {
	s.player = nil
	if res, ok := engine.GetResource[*engine.AudioResource](s.World.Resources); ok && res != nil {
		s.player = res.Player
	}
	if s.player != nil {
		s.Resource.State.Muted.Store(s.player.IsMuted())
	}
}

// Name returns system's name
func (s *AudioSystem) Name() string {
	return "audio"
}

// Priority returns the system's priority
func (s *AudioSystem) Priority() int {
	return parameter.PriorityAudio
}

// EventTypes returns the event types AudioSystem handles
func (s *AudioSystem) EventTypes() []event.EventType {
	return []event.EventType{
		event.EventSoundRequest,
		event.EventMuteToggle,
	}
}

// HandleEvent plays or mutes
func (s *AudioSystem) HandleEvent(_ *engine.World, ev event.GameEvent) {
	switch ev.Type {
	case event.EventSoundRequest:
		if s.player == nil || s.Resource.State.Muted.Load() {
			return
		}
		if p, ok := ev.Payload.(*event.SoundRequestPayload); ok {
			s.player.Play(p.SoundType, p.Power)
		}
	case event.EventMuteToggle:
		if s.player != nil {
			s.Resource.State.Muted.Store(s.player.ToggleMute())
			return
		}
		s.Resource.State.Muted.Store(!s.Resource.State.Muted.Load())
	}
}

// Update is a no-op; all work happens on events
func (s *AudioSystem) Update() {}
