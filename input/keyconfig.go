package input

import (
	"fmt"
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/gdamore/tcell/v2"
)

// Names for keys that are not a single printable character
var specialKeyNames = map[string]tcell.Key{
	"esc":    tcell.KeyEscape,
	"escape": tcell.KeyEscape,
	"enter":  tcell.KeyEnter,
	"tab":    tcell.KeyTab,
	"ctrl-c": tcell.KeyCtrlC,
	"ctrl-q": tcell.KeyCtrlQ,
	"ctrl-r": tcell.KeyCtrlR,
}

var runeAliases = map[string]rune{
	"space": ' ',
}

// ApplyBindings returns a copy of base with the listed actions rebound
// Each listed action loses its default keys; unlisted actions keep theirs
// Returns error on unknown action or key names
func ApplyBindings(base *KeyTable, bindings map[string][]string) (*KeyTable, error) {
	kt := base.Clone()
	if len(bindings) == 0 {
		return kt, nil
	}

	// Sorted so a key listed under two actions resolves the same way every run
	actions := make([]string, 0, len(bindings))
	for name := range bindings {
		actions = append(actions, name)
	}
	sort.Strings(actions)

	for _, name := range actions {
		intent, ok := ActionIntent(name)
		if !ok {
			return nil, fmt.Errorf("keys: unknown action %q", name)
		}
		kt.unbind(intent)
		for _, keyName := range bindings[name] {
			if err := bind(kt, keyName, intent); err != nil {
				return nil, fmt.Errorf("keys.%s: %w", name, err)
			}
		}
	}
	return kt, nil
}

func bind(kt *KeyTable, name string, intent IntentType) error {
	lower := strings.ToLower(strings.TrimSpace(name))
	if k, ok := specialKeyNames[lower]; ok {
		kt.Keys[k] = intent
		return nil
	}
	if r, ok := runeAliases[lower]; ok {
		kt.Runes[r] = intent
		return nil
	}
	if utf8.RuneCountInString(name) == 1 {
		r, _ := utf8.DecodeRuneInString(name)
		if unicode.IsPrint(r) {
			kt.Runes[unicode.ToLower(r)] = intent
			return nil
		}
	}
	return fmt.Errorf("invalid key name %q", name)
}
