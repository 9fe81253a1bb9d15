package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"

	"github.com/lixenwraith/plinko/core"
	"github.com/lixenwraith/plinko/parameter"
)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
)

// oscillator produces a fixed-length mono wave on both channels
type oscillator struct {
	freq     float64
	phase    float64
	length   int
	position int
	wave     WaveType
	rate     beep.SampleRate
}

// NewOscillator creates a streamer that ends after duration
func NewOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		freq:   freq,
		length: rate.N(duration),
		wave:   wave,
		rate:   rate,
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.length {
			return i, i > 0
		}

		var val float64
		switch o.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case WaveSquare:
			if o.phase < 0.5 {
				val = 1
			} else {
				val = -1
			}
		case WaveSaw:
			val = 2 * (o.phase - 0.5)
		}

		samples[i][0] = val
		samples[i][1] = val

		o.phase += o.freq / float64(o.rate)
		o.phase -= math.Floor(o.phase)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope applies a linear attack and release to a stream
type envelope struct {
	streamer beep.Streamer
	position int
	attack   int
	release  int
	total    int
}

// NewEnvelope shapes s over duration with attack and release ramps
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	return &envelope{
		streamer: s,
		attack:   rate.N(attack),
		release:  rate.N(release),
		total:    rate.N(duration),
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)

	releaseStart := e.total - e.release
	for i := 0; i < n; i++ {
		vol := 1.0
		switch {
		case e.position < e.attack:
			vol = float64(e.position) / float64(e.attack)
		case e.release > 0 && e.position >= releaseStart:
			vol = math.Max(0, float64(e.total-e.position)/float64(e.release))
		}
		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// withVolume wraps s in a base-2 gain stage
func withVolume(s beep.Streamer, volume float64, silent bool) beep.Streamer {
	return &effects.Volume{Streamer: s, Base: 2, Volume: volume, Silent: silent}
}

// CoinFreq returns the chime pitch for a zone power
func CoinFreq(power float64) float64 {
	if power < 0 {
		power = 0
	}
	return parameter.CoinBaseFreq + power*parameter.CoinFreqPerPower
}

// Sound builds the unity-gain clip for a sound type, or nil for unknown types
// power only affects SoundCoin
func Sound(st core.SoundType, power float64, rate beep.SampleRate) beep.Streamer {
	switch st {
	case core.SoundDrop:
		d := parameter.DropDuration
		tone, err := generators.SineTone(rate, parameter.DropFreq)
		if err != nil {
			return nil
		}
		return NewEnvelope(beep.Take(rate.N(d), tone), d, 0, d/2, rate)

	case core.SoundCoin:
		// Two rising notes, a fifth apart
		half := parameter.CoinDuration / 2
		f := CoinFreq(power)
		n1 := NewEnvelope(NewOscillator(f, half, WaveSquare, rate), half, 2*time.Millisecond, half/2, rate)
		n2 := NewEnvelope(NewOscillator(f*1.5, half, WaveSquare, rate), half, 2*time.Millisecond, half/2, rate)
		return beep.Seq(n1, n2)

	case core.SoundBuzz:
		d := parameter.BuzzDuration
		return NewEnvelope(NewOscillator(parameter.BuzzFreq, d, WaveSaw, rate), d, 5*time.Millisecond, d/3, rate)

	default:
		return nil
	}
}
