package parameter

import "time"

// Screen shake feedback on refused spawn
const (
	// ShakeDuration is the lifetime of one shake effect
	ShakeDuration = 200 * time.Millisecond

	// ShakeIntensity is the peak offset in world units, decaying linearly to zero
	ShakeIntensity = 5.0
)
