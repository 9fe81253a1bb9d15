// Package audio plays the drop, coin and buzz clips through the beep speaker.
// The player degrades to silent mode when no output device is available.
package audio

import (
	"sync"
	"sync/atomic"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
	"go.uber.org/zap"

	"github.com/lixenwraith/plinko/config"
	"github.com/lixenwraith/plinko/core"
	"github.com/lixenwraith/plinko/parameter"
)

// Player mixes game sound effects into the speaker
type Player struct {
	mu     sync.Mutex
	rate   beep.SampleRate
	volume float64
	mixer  *beep.Mixer
	log    *zap.Logger

	running atomic.Bool
	silent  atomic.Bool
	muted   atomic.Bool

	played  atomic.Uint64
	dropped atomic.Uint64
}

// NewPlayer creates a stopped player; a disabled config starts muted
func NewPlayer(cfg config.AudioConfig, log *zap.Logger) *Player {
	if log == nil {
		log = zap.NewNop()
	}
	rate := cfg.SampleRate
	if rate <= 0 {
		rate = parameter.AudioSampleRate
	}
	p := &Player{
		rate:   beep.SampleRate(rate),
		volume: cfg.Volume,
		mixer:  &beep.Mixer{},
		log:    log,
	}
	p.muted.Store(!cfg.Enabled)
	return p
}

// Start opens the speaker and attaches the mixer
// A missing device is not an error: the player runs silent and Play reports false
func (p *Player) Start() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.running.Load() {
		return
	}

	if err := speaker.Init(p.rate, p.rate.N(parameter.AudioBufferDuration)); err != nil {
		p.log.Warn("audio device unavailable, running silent", zap.Error(err))
		p.silent.Store(true)
		p.running.Store(true)
		return
	}

	speaker.Play(p.mixer)
	p.running.Store(true)
	p.log.Info("audio started", zap.Int("sample_rate", int(p.rate)))
}

// Stop drops every queued clip; the speaker itself stays open
func (p *Player) Stop() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.running.CompareAndSwap(true, false) {
		return
	}
	if !p.silent.Load() {
		speaker.Lock()
		p.mixer.Clear()
		speaker.Unlock()
	}
}

// Play queues a clip; returns false if it was not queued
func (p *Player) Play(st core.SoundType, power float64) bool {
	if !p.IsEnabled() {
		return false
	}

	clip := Sound(st, power, p.rate)
	if clip == nil {
		return false
	}

	speaker.Lock()
	if p.mixer.Len() >= parameter.AudioMaxVoices {
		speaker.Unlock()
		p.dropped.Add(1)
		return false
	}
	p.mixer.Add(withVolume(clip, p.volume, false))
	speaker.Unlock()

	p.played.Add(1)
	return true
}

// ToggleMute flips mute and returns the new muted state
func (p *Player) ToggleMute() bool {
	for {
		old := p.muted.Load()
		if p.muted.CompareAndSwap(old, !old) {
			return !old
		}
	}
}

// IsMuted returns the current mute state
func (p *Player) IsMuted() bool {
	return p.muted.Load()
}

// IsEnabled returns true if running on a device and unmuted
func (p *Player) IsEnabled() bool {
	return p.running.Load() && !p.silent.Load() && !p.muted.Load()
}

// IsRunning returns true once started, even in silent mode
func (p *Player) IsRunning() bool {
	return p.running.Load()
}

// Stats returns played and dropped clip counts
func (p *Player) Stats() (played, dropped uint64) {
	return p.played.Load(), p.dropped.Load()
}
