package input

import "github.com/gdamore/tcell/v2"

// Machine turns terminal events into intents
type Machine struct {
	table *KeyTable
}

// NewMachine creates a machine over a key table; nil uses the defaults
func NewMachine(kt *KeyTable) *Machine {
	if kt == nil {
		kt = DefaultKeyTable()
	}
	return &Machine{table: kt}
}

// Process returns the intent for an event, IntentNone if unbound
func (m *Machine) Process(ev tcell.Event) IntentType {
	switch e := ev.(type) {
	case *tcell.EventKey:
		return m.table.Lookup(e)
	case *tcell.EventResize:
		return IntentResize
	default:
		return IntentNone
	}
}
