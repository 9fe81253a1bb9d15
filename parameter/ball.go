package parameter

import "time"

// Ball lifecycle
const (
	// BallDropX, BallDropY is the spout position before jitter
	BallDropX = 0.0
	BallDropY = 250.0

	// BallRadius is the collision radius of a ball
	BallRadius = BallDiameter * ColliderScale

	// SpawnJitter is the max horizontal offset, sampled as an integer in [-SpawnJitter, SpawnJitter]
	SpawnJitter = 10

	// FloorY is the despawn threshold; balls at or below are pruned
	FloorY = -500.0

	// FallRate is subtracted from every dynamic body's vertical velocity each tick
	FallRate = 25.0

	// AutoDropInterval is the spawn period while auto-drop is enabled
	AutoDropInterval = 100 * time.Millisecond
)
