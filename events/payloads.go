package events

import "time"

// RoundStartedPayload identifies the round that started
type RoundStartedPayload struct {
	Round     int
	Restarted bool // Round was started while another one was playing
}

// RoundEndedPayload carries the end-of-round summary
type RoundEndedPayload struct {
	Round     int
	Score     int
	HighScore int
	NewRecord bool
	Hits      int
	Misses    int
	BestCombo int
}

// MolePayload identifies a hole
type MolePayload struct {
	Hole int
}

// MoleSpawnedPayload describes an activated hole
type MoleSpawnedPayload struct {
	Hole     int
	Duration time.Duration
}

// MoleStruckPayload describes a valid whack
type MoleStruckPayload struct {
	Hole   int
	Points int
	Combo  int
	Score  int
}

// ComboPayload carries the combo that lit the indicator
type ComboPayload struct {
	Combo int
}

// HighScorePayload carries the replaced and the new best score
type HighScorePayload struct {
	Previous int
	Score    int
}

// PausePayload carries the new pause state
type PausePayload struct {
	Paused bool
}
