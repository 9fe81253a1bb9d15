package event

import (
	"github.com/lixenwraith/plinko/core"
)

// BallSpawnedPayload carries the new ball and where it entered
type BallSpawnedPayload struct {
	Ball    core.Entity
	X, Y    float64
	Cost    float64
	Balance float64 // Balance after the debit
}

// SpawnRefusedPayload carries the balance that failed the guard
type SpawnRefusedPayload struct {
	Balance float64
	Cost    float64
}

// BallScoredPayload carries a single payout
type BallScoredPayload struct {
	Ball    core.Entity
	Zone    core.Entity
	Power   float64
	Payout  float64
	Balance float64 // Balance after the credit
}

// BallPrunedPayload carries balls removed at the floor in one tick
type BallPrunedPayload struct {
	Balls []core.Entity
}

// SoundRequestPayload selects a sound; Power pitches the coin chime
type SoundRequestPayload struct {
	SoundType core.SoundType
	Power     float64
}
