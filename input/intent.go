package input

// IntentType discriminates semantic actions
type IntentType uint8

const (
	IntentNone IntentType = iota

	// System-level intents
	IntentQuit   // Esc, Ctrl+C, Ctrl+Q
	IntentResize // Terminal resize event
	IntentMute   // m

	// Round control
	IntentStart // Space, Enter
	IntentPause // p

	// Strike the hole in Intent.Hole
	IntentWhack
)

var intentNames = map[IntentType]string{
	IntentNone:   "none",
	IntentQuit:   "quit",
	IntentResize: "resize",
	IntentMute:   "mute",
	IntentStart:  "start",
	IntentPause:  "pause",
	IntentWhack:  "whack",
}

// String returns the intent name
func (t IntentType) String() string {
	if name, ok := intentNames[t]; ok {
		return name
	}
	return "unknown"
}

// Intent is a parsed player action
type Intent struct {
	Type IntentType
	Hole int // Target hole for IntentWhack, -1 otherwise
}
