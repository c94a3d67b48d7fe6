package constants

import "time"

// Grid Layout
const (
	// GridColumns and GridRows define the fixed 3x3 hole layout
	GridColumns = 3
	GridRows    = 3

	// HoleCount is the total number of spawn points, ids are 0..HoleCount-1
	HoleCount = GridColumns * GridRows
)

// Round Timing
const (
	// RoundDurationSeconds is the length of one round in whole seconds
	RoundDurationSeconds = 30

	// RoundDuration is RoundDurationSeconds as a time.Duration
	RoundDuration = RoundDurationSeconds * time.Second

	// RoundTickInterval is the countdown step of the round clock
	RoundTickInterval = 1 * time.Second
)

// Mole Spawning
const (
	// SpawnInterval is the cadence of the mole scheduler
	SpawnInterval = 800 * time.Millisecond

	// InitialMoleDuration is how long a mole stays up at the start of a round
	InitialMoleDuration = 1200 * time.Millisecond

	// MinMoleDuration is the floor of the difficulty ramp
	MinMoleDuration = 600 * time.Millisecond

	// MoleDurationRamp is how much visibility is lost over a full round
	MoleDurationRamp = 400 * time.Millisecond
)

// Strike Feedback
const (
	// HitClearDelay is how long a struck mole stays displayed before the hole clears
	HitClearDelay = 200 * time.Millisecond

	// ComboFlashDuration is how long the combo indicator stays lit
	ComboFlashDuration = 500 * time.Millisecond
)

// Scoring
const (
	// BaseStrikePoints is awarded for every valid strike
	BaseStrikePoints = 10

	// ComboStep is the number of consecutive strikes per bonus level
	ComboStep = 3

	// ComboBonusPoints is added per bonus level
	ComboBonusPoints = 5

	// ComboFlashThreshold is the combo at which the combo indicator lights up
	ComboFlashThreshold = 3
)

// Persistence
const (
	// HighScoreKey is the single key holding the best score
	HighScoreKey = "high_score"
)
