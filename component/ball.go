package component

// BallComponent marks a falling projectile
// HasScored is a one-shot guard: once true the ball never pays out again
type BallComponent struct {
	HasScored bool
}
