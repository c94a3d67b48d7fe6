package input

import (
	"github.com/gdamore/tcell/v2"
)

// KeyEntry describes what a key does
type KeyEntry struct {
	IntentType IntentType
	Hole       int // Target hole for IntentWhack
}

// KeyTable maps keys to intents
type KeyTable struct {
	// Special keys (Ctrl+*, Escape, Enter)
	SpecialKeys map[tcell.Key]KeyEntry

	// Printable runes, matched case-insensitively
	Runes map[rune]KeyEntry
}

// whack returns the entry striking hole id
func whack(id int) KeyEntry {
	return KeyEntry{IntentType: IntentWhack, Hole: id}
}

// DefaultKeyTable returns the default key bindings
// Holes are laid out like a numeric keypad and like the left hand block of a QWERTY keyboard
//
//	7 8 9   q w e      0 1 2
//	4 5 6   a s d  ->  3 4 5
//	1 2 3   z x c      6 7 8
func DefaultKeyTable() *KeyTable {
	return &KeyTable{
		SpecialKeys: map[tcell.Key]KeyEntry{
			tcell.KeyEscape: {IntentType: IntentQuit},
			tcell.KeyCtrlC:  {IntentType: IntentQuit},
			tcell.KeyCtrlQ:  {IntentType: IntentQuit},
			tcell.KeyEnter:  {IntentType: IntentStart},
		},

		Runes: map[rune]KeyEntry{
			// Keypad
			'7': whack(0), '8': whack(1), '9': whack(2),
			'4': whack(3), '5': whack(4), '6': whack(5),
			'1': whack(6), '2': whack(7), '3': whack(8),

			// Letters
			'q': whack(0), 'w': whack(1), 'e': whack(2),
			'a': whack(3), 's': whack(4), 'd': whack(5),
			'z': whack(6), 'x': whack(7), 'c': whack(8),

			' ': {IntentType: IntentStart},
			'p': {IntentType: IntentPause},
			'm': {IntentType: IntentMute},
		},
	}
}

// Clone returns a deep copy of the table
func (kt *KeyTable) Clone() *KeyTable {
	c := &KeyTable{
		SpecialKeys: make(map[tcell.Key]KeyEntry, len(kt.SpecialKeys)),
		Runes:       make(map[rune]KeyEntry, len(kt.Runes)),
	}
	for k, v := range kt.SpecialKeys {
		c.SpecialKeys[k] = v
	}
	for k, v := range kt.Runes {
		c.Runes[k] = v
	}
	return c
}
