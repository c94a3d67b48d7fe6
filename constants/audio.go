package constants

import "time"

// Hit Sound Timing
const (
	HitSoundDuration = 120 * time.Millisecond
	HitSoundAttack   = 3 * time.Millisecond
	HitSoundRelease  = 90 * time.Millisecond
)

// Combo Sound Timing
const (
	ComboSoundNote1Duration = 80 * time.Millisecond
	ComboSoundNote2Duration = 220 * time.Millisecond
	ComboSoundAttack        = 5 * time.Millisecond
	ComboSoundNote1Release  = 40 * time.Millisecond
	ComboSoundNote2Release  = 180 * time.Millisecond
)

// Expire Sound Timing
const (
	ExpireSoundDuration = 90 * time.Millisecond
	ExpireSoundAttack   = 5 * time.Millisecond
	ExpireSoundRelease  = 30 * time.Millisecond
)

// Round Sound Timing
const (
	RoundSoundNoteDuration = 110 * time.Millisecond
	RoundSoundAttack       = 5 * time.Millisecond
	RoundSoundRelease      = 60 * time.Millisecond
)

// AudioBufferDuration is the speaker buffer size
const AudioBufferDuration = 100 * time.Millisecond
