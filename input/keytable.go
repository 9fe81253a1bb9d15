package input

import (
	"unicode"

	"github.com/gdamore/tcell/v2"
)

// KeyTable maps keys to intents
type KeyTable struct {
	// Printable keys; letters are stored lower case and match either case
	Runes map[rune]IntentType

	// Special keys (Esc, Ctrl+*)
	Keys map[tcell.Key]IntentType
}

// DefaultKeyTable returns the default bindings
func DefaultKeyTable() *KeyTable {
	return &KeyTable{
		Runes: map[rune]IntentType{
			' ': IntentSpawn,
			'w': IntentSpawn,
			'a': IntentAutoDrop,
			'r': IntentGrant,
			'p': IntentPause,
			'm': IntentMute,
			'q': IntentQuit,
		},
		Keys: map[tcell.Key]IntentType{
			tcell.KeyEscape: IntentQuit,
			tcell.KeyCtrlC:  IntentQuit,
		},
	}
}

// Lookup returns the intent for a key event
func (kt *KeyTable) Lookup(ev *tcell.EventKey) IntentType {
	if ev.Key() == tcell.KeyRune {
		return kt.Runes[unicode.ToLower(ev.Rune())]
	}
	return kt.Keys[ev.Key()]
}

// Clone returns a deep copy
func (kt *KeyTable) Clone() *KeyTable {
	c := &KeyTable{
		Runes: make(map[rune]IntentType, len(kt.Runes)),
		Keys:  make(map[tcell.Key]IntentType, len(kt.Keys)),
	}
	for k, v := range kt.Runes {
		c.Runes[k] = v
	}
	for k, v := range kt.Keys {
		c.Keys[k] = v
	}
	return c
}

// unbind removes every key bound to intent
func (kt *KeyTable) unbind(intent IntentType) {
	for k, v := range kt.Runes {
		if v == intent {
			delete(kt.Runes, k)
		}
	}
	for k, v := range kt.Keys {
		if v == intent {
			delete(kt.Keys, k)
		}
	}
}
