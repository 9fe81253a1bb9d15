package parameter

import "time"

// Audio
const (
	// AudioSampleRate is the speaker sample rate in Hz
	AudioSampleRate = 44100

	// AudioBufferDuration is the speaker buffer length
	AudioBufferDuration = 100 * time.Millisecond

	// AudioVolume is the master gain in beep/effects Volume units (base 2 exponent)
	AudioVolume = -1.0

	// CoinBaseFreq is the coin chime pitch for a zero-power zone; power raises it
	CoinBaseFreq = 660.0

	// CoinFreqPerPower is the pitch increase per unit of zone power
	CoinFreqPerPower = 20.0

	// CoinDuration, BuzzDuration, DropDuration are the clip lengths
	CoinDuration = 120 * time.Millisecond
	BuzzDuration = 150 * time.Millisecond
	DropDuration = 30 * time.Millisecond

	// BuzzFreq is the refused-spawn buzz pitch
	BuzzFreq = 120.0

	// DropFreq is the drop tick pitch
	DropFreq = 1760.0
)

// AudioMaxVoices caps concurrently mixed clips; extra requests are dropped
const AudioMaxVoices = 16
