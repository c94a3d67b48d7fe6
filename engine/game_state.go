package engine

import (
	"time"

	"github.com/lixenwraith/whack/constants"
	"github.com/lixenwraith/whack/grid"
)

// Phase is the round lifecycle state
type Phase uint8

const (
	PhaseIdle Phase = iota
	PhasePlaying
	PhaseEnded
)

// String returns the phase name
func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhasePlaying:
		return "playing"
	case PhaseEnded:
		return "ended"
	default:
		return "unknown"
	}
}

// RoundStats counts per-round activity for the end-of-round summary
type RoundStats struct {
	Spawned   int // Moles raised
	Hits      int // Valid whacks
	Misses    int // Moles that expired unstruck
	BestCombo int // Highest combo reached
}

// Accuracy returns hits over resolved moles, 0 when nothing resolved
func (s RoundStats) Accuracy() float64 {
	resolved := s.Hits + s.Misses
	if resolved == 0 {
		return 0
	}
	return float64(s.Hits) / float64(resolved)
}

// GameState is the single round state instance
// Owned by the game loop: RoundSystem writes phase and time, WhackSystem and
// SpawnSystem write score and combo. No synchronization, all access is on one goroutine
type GameState struct {
	Phase         Phase
	Score         int
	TimeRemaining int // Whole seconds, 0..RoundDurationSeconds
	Combo         int
	ComboFlash    bool
	Paused        bool

	// Persisted best, loaded at startup
	HighScore int
	NewRecord bool // Last ended round beat the previous best

	Round      int       // Rounds started since launch
	RoundStart time.Time // Game time of the last StartRound
	Stats      RoundStats
}

// NewGameState creates an idle state with the given stored high score
func NewGameState(highScore int) *GameState {
	if highScore < 0 {
		highScore = 0
	}
	return &GameState{
		Phase:         PhaseIdle,
		TimeRemaining: constants.RoundDurationSeconds,
		HighScore:     highScore,
	}
}

// ResetRound clears per-round values for a fresh round
func (gs *GameState) ResetRound(now time.Time) {
	gs.Score = 0
	gs.Combo = 0
	gs.ComboFlash = false
	gs.Paused = false
	gs.NewRecord = false
	gs.TimeRemaining = constants.RoundDurationSeconds
	gs.Stats = RoundStats{}
	gs.RoundStart = now
	gs.Round++
}

// Elapsed returns whole seconds played in the current round
func (gs *GameState) Elapsed() int {
	return constants.RoundDurationSeconds - gs.TimeRemaining
}

// IsPlaying reports whether whacks and spawns are live
func (gs *GameState) IsPlaying() bool {
	return gs.Phase == PhasePlaying && !gs.Paused
}

// Snapshot is the read-only view handed to presentation
type Snapshot struct {
	Phase         Phase
	Score         int
	TimeRemaining int
	HighScore     int
	NewRecord     bool
	Combo         int
	ComboFlash    bool
	Paused        bool
	Round         int
	Stats         RoundStats
	Holes         [constants.HoleCount]grid.HoleState
}

// Snapshot captures the state together with the hole states
func (gs *GameState) Snapshot(g *grid.Grid) Snapshot {
	return Snapshot{
		Phase:         gs.Phase,
		Score:         gs.Score,
		TimeRemaining: gs.TimeRemaining,
		HighScore:     gs.HighScore,
		NewRecord:     gs.NewRecord,
		Combo:         gs.Combo,
		ComboFlash:    gs.ComboFlash,
		Paused:        gs.Paused,
		Round:         gs.Round,
		Stats:         gs.Stats,
		Holes:         g.Snapshot(),
	}
}
