package input

// IntentType is the semantic action a key maps to
type IntentType uint8

const (
	IntentNone IntentType = iota
	IntentQuit
	IntentSpawn
	IntentAutoDrop
	IntentGrant
	IntentPause
	IntentMute
	IntentResize
	intentCount
)

// actionNames are the names used in key binding config
var actionNames = [intentCount]string{
	IntentNone:     "none",
	IntentQuit:     "quit",
	IntentSpawn:    "spawn",
	IntentAutoDrop: "auto_drop",
	IntentGrant:    "grant_funds",
	IntentPause:    "pause",
	IntentMute:     "mute",
	IntentResize:   "resize",
}

func (i IntentType) String() string {
	if i < intentCount {
		return actionNames[i]
	}
	return "unknown"
}

// ActionIntent resolves a binding action name; resize is not bindable
func ActionIntent(name string) (IntentType, bool) {
	for i, n := range actionNames {
		if n == name && IntentType(i) != IntentResize {
			return IntentType(i), true
		}
	}
	return IntentNone, false
}
