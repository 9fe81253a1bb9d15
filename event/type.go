package event

// EventType represents the type of game event
type EventType int

const (
	// === Ball Lifecycle ===

	// EventSpawnRequest asks for one ball drop
	// Trigger: Space / W key | Consumer: BallSystem | Payload: nil
	EventSpawnRequest EventType = iota

	// EventBallSpawned reports a paid spawn
	// Trigger: BallSystem | Consumer: monitor, logs | Payload: *BallSpawnedPayload
	EventBallSpawned

	// EventSpawnRefused reports a spawn denied by the affordability guard
	// Trigger: BallSystem | Consumer: logs | Payload: *SpawnRefusedPayload
	EventSpawnRefused

	// EventBallScored reports a payout
	// Trigger: ScoringSystem | Consumer: logs | Payload: *BallScoredPayload
	EventBallScored

	// EventBallPruned reports balls removed at the floor
	// Trigger: BallSystem | Consumer: logs | Payload: *BallPrunedPayload
	EventBallPruned

	// EventAutoDropToggle flips auto-drop mode
	// Trigger: A key | Consumer: BallSystem | Payload: nil
	EventAutoDropToggle

	// === Economy ===

	// EventGrantFunds is the debug balance override
	// Trigger: R key | Consumer: DebugSystem (registered only when allowed) | Payload: nil
	EventGrantFunds

	// === Audio ===

	// EventSoundRequest requests audio playback
	// Trigger: Systems requiring audio feedback | Consumer: AudioSystem | Payload: *SoundRequestPayload
	EventSoundRequest

	// EventMuteToggle flips audio mute
	// Trigger: M key | Consumer: AudioSystem | Payload: nil
	EventMuteToggle

	// EventTypeCount is the number of event types
	EventTypeCount
)

var eventNames = [...]string{
	EventSpawnRequest:   "spawn_request",
	EventBallSpawned:    "ball_spawned",
	EventSpawnRefused:   "spawn_refused",
	EventBallScored:     "ball_scored",
	EventBallPruned:     "ball_pruned",
	EventAutoDropToggle: "auto_drop_toggle",
	EventGrantFunds:     "grant_funds",
	EventSoundRequest:   "sound_request",
	EventMuteToggle:     "mute_toggle",
}

// String returns the event name used in logs
func (t EventType) String() string {
	if t >= 0 && int(t) < len(eventNames) {
		return eventNames[t]
	}
	return "unknown"
}

// GameEvent represents a single game event with metadata
type GameEvent struct {
	Type    EventType
	Payload any
	Frame   int64 // Tick the event was pushed on
}
