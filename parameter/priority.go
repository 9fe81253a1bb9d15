package parameter

// System Execution Priorities (lower runs first)
// Order mirrors one logical frame: gravity, physics step, prune, scoring, effect decay
const (
	PriorityBoard     = 0
	PriorityGravity   = 100
	PriorityPhysics   = 200
	PriorityBall      = 300 // After physics: prune fallen, then auto-drop
	PriorityScoring   = 400 // After prune: events for pruned balls resolve to nothing
	PriorityShake     = 500
	PriorityAudio     = 600
	PriorityDebug     = 700
	PriorityTelemetry = 800 // Last: sees the final state of the tick
)
