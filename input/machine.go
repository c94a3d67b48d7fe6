package input

import (
	"unicode"

	"github.com/gdamore/tcell/v2"
)

// HoleLocator resolves a screen cell to a hole, -1 when the cell is not on a hole
type HoleLocator interface {
	HoleAt(x, y int) int
}

// Machine parses tcell events into semantic Intents
type Machine struct {
	keyTable *KeyTable

	// Mouse button state from the previous event, a strike fires on press only
	buttonDown bool
}

// NewMachine creates a new input machine with the default bindings
func NewMachine() *Machine {
	return NewMachineWithTable(DefaultKeyTable())
}

// NewMachineWithTable creates an input machine with custom bindings
func NewMachineWithTable(kt *KeyTable) *Machine {
	return &Machine{keyTable: kt}
}

// Process parses an event and returns an Intent
// Returns nil for events with no binding
func (m *Machine) Process(ev tcell.Event, holes HoleLocator) *Intent {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		return &Intent{Type: IntentResize, Hole: -1}
	case *tcell.EventKey:
		return m.processKey(ev)
	case *tcell.EventMouse:
		return m.processMouse(ev, holes)
	}
	return nil
}

func (m *Machine) processKey(ev *tcell.EventKey) *Intent {
	if ev.Key() == tcell.KeyRune {
		r := unicode.ToLower(ev.Rune())
		if entry, ok := m.keyTable.Runes[r]; ok {
			return entry.intent()
		}
		return nil
	}

	if entry, ok := m.keyTable.SpecialKeys[ev.Key()]; ok {
		return entry.intent()
	}
	return nil
}

func (m *Machine) processMouse(ev *tcell.EventMouse, holes HoleLocator) *Intent {
	down := ev.Buttons()&tcell.Button1 != 0
	pressed := down && !m.buttonDown
	m.buttonDown = down

	if !pressed || holes == nil {
		return nil
	}

	x, y := ev.Position()
	id := holes.HoleAt(x, y)
	if id < 0 {
		return nil
	}
	return &Intent{Type: IntentWhack, Hole: id}
}

// intent converts a table entry to an Intent
func (e KeyEntry) intent() *Intent {
	if e.IntentType == IntentWhack {
		return &Intent{Type: IntentWhack, Hole: e.Hole}
	}
	return &Intent{Type: e.IntentType, Hole: -1}
}
