package events

import (
	"time"
)

// EventType represents the type of game event
type EventType int

const (
	// EventRoundStarted signals a fresh round entering Playing
	// Trigger: RoundSystem.StartRound
	// Consumer: AudioSystem | Payload: *RoundStartedPayload
	EventRoundStarted EventType = iota

	// EventRoundEnded signals the round clock reaching zero
	// Trigger: RoundSystem.EndRound
	// Consumer: AudioSystem | Payload: *RoundEndedPayload
	EventRoundEnded

	// EventMoleSpawned signals a hole turning active
	// Trigger: SpawnSystem interval
	// Payload: *MoleSpawnedPayload
	EventMoleSpawned

	// EventMoleExpired signals an unstruck mole timing out, breaking the combo
	// Trigger: Mole expiry timer | Consumer: AudioSystem | Payload: *MolePayload
	EventMoleExpired

	// EventMoleStruck signals a valid whack
	// Trigger: WhackSystem | Consumer: AudioSystem | Payload: *MoleStruckPayload
	EventMoleStruck

	// EventComboFlash signals the combo indicator lighting up
	// Trigger: WhackSystem at combo >= threshold | Consumer: AudioSystem | Payload: *ComboPayload
	EventComboFlash

	// EventNewHighScore signals the stored best being beaten
	// Trigger: RoundSystem.EndRound | Consumer: AudioSystem | Payload: *HighScorePayload
	EventNewHighScore

	// EventPauseChanged signals the round clock freezing or resuming
	// Trigger: RoundSystem.TogglePause | Payload: *PausePayload
	EventPauseChanged
)

// GameEvent represents a single game event with metadata
type GameEvent struct {
	Type      EventType
	Payload   any
	Timestamp time.Time // Game time the event was emitted at
}
