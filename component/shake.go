package component

import "time"

// ShakeComponent is a transient camera perturbation
// Attached to the camera entity; removed once Elapsed reaches Duration
type ShakeComponent struct {
	Duration  time.Duration
	Elapsed   time.Duration
	Intensity float64 // Peak offset in world units
}

// NewShake creates a shake at the start of its timer
func NewShake(duration time.Duration, intensity float64) ShakeComponent {
	return ShakeComponent{Duration: duration, Intensity: intensity}
}

// Remaining returns time left, never negative
func (s ShakeComponent) Remaining() time.Duration {
	if s.Elapsed >= s.Duration {
		return 0
	}
	return s.Duration - s.Elapsed
}

// Progress returns elapsed/duration in [0, 1]
func (s ShakeComponent) Progress() float64 {
	if s.Duration <= 0 {
		return 1
	}
	p := float64(s.Elapsed) / float64(s.Duration)
	if p > 1 {
		return 1
	}
	return p
}

// Amount returns the current offset bound: intensity decaying linearly to zero
func (s ShakeComponent) Amount() float64 {
	return s.Intensity * (1 - s.Progress())
}
