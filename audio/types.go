package audio

import (
	"errors"
)

// SoundType represents different sound effects
type SoundType int

const (
	SoundHit        SoundType = iota // Mole struck
	SoundCombo                       // Combo indicator lit
	SoundExpire                      // Mole escaped, combo broken
	SoundRoundStart                  // Round began
	SoundRoundEnd                    // Round clock hit zero
	SoundRecord                      // New high score
	soundTypeCount
)

// String returns the config key of the sound
func (s SoundType) String() string {
	switch s {
	case SoundHit:
		return "hit"
	case SoundCombo:
		return "combo"
	case SoundExpire:
		return "expire"
	case SoundRoundStart:
		return "start"
	case SoundRoundEnd:
		return "end"
	case SoundRecord:
		return "record"
	default:
		return "unknown"
	}
}

// Sentinel errors
var (
	ErrAudioDisabled     = errors.New("audio disabled by configuration")
	ErrUnknownSound      = errors.New("unknown sound type")
	ErrInvalidSampleRate = errors.New("sample rate must be positive")
)
