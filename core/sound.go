package core

// SoundType represents different sound effects
type SoundType int

const (
	SoundDrop SoundType = iota // Ball released from the spout
	SoundCoin                  // Ball scored on a multiplier zone
	SoundBuzz                  // Spawn refused, not enough balance
	SoundTypeCount
)

// String returns the sound name used in logs and metrics
func (s SoundType) String() string {
	switch s {
	case SoundDrop:
		return "drop"
	case SoundCoin:
		return "coin"
	case SoundBuzz:
		return "buzz"
	default:
		return "unknown"
	}
}
