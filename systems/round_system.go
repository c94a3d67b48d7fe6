package systems

import (
	"context"
	"log"
	"time"

	"github.com/lixenwraith/whack/constants"
	"github.com/lixenwraith/whack/engine"
	"github.com/lixenwraith/whack/events"
)

// RoundSystem owns the round lifecycle: Idle -> Playing -> Ended -> Playing
// It drives the countdown, starts the spawn interval and cancels every pending
// timer whenever a round starts or ends
type RoundSystem struct {
	ctx   *engine.GameContext
	spawn *SpawnSystem
	whack *WhackSystem
}

// NewRoundSystem creates the lifecycle controller together with its spawn and whack systems
func NewRoundSystem(ctx *engine.GameContext) *RoundSystem {
	spawn := NewSpawnSystem(ctx)
	return &RoundSystem{
		ctx:   ctx,
		spawn: spawn,
		whack: NewWhackSystem(ctx, spawn),
	}
}

// Spawner returns the spawn system
func (r *RoundSystem) Spawner() *SpawnSystem {
	return r.spawn
}

// LoadHighScore reads the persisted best into the state
// A missing or unreadable value counts as 0
func (r *RoundSystem) LoadHighScore() int {
	storeCtx, cancel := context.WithTimeout(context.Background(), constants.StoreTimeout)
	defer cancel()

	score, err := r.ctx.HighScores.Load(storeCtx)
	if err != nil {
		log.Printf("high score load failed, using 0: %v", err)
		score = 0
	}
	r.ctx.State.HighScore = score
	return score
}

// StartRound begins a fresh round at the current game time
// Starting while a round is playing discards it and restarts
func (r *RoundSystem) StartRound() {
	state := r.ctx.State
	restarted := state.Phase == engine.PhasePlaying

	if r.ctx.Clock.IsPaused() {
		r.ctx.Clock.Resume()
	}
	now := r.ctx.Clock.Now()

	r.cancelTimers()
	state.ResetRound(now)
	r.ctx.Grid.Reset()
	state.Phase = engine.PhasePlaying

	r.ctx.Timers.Every(now, constants.RoundTickInterval, engine.TimerRoundTick, r.tick)
	r.spawn.Start(now)

	log.Printf("round %d started (restart=%t)", state.Round, restarted)
	r.ctx.PushEvent(events.EventRoundStarted, &events.RoundStartedPayload{
		Round:     state.Round,
		Restarted: restarted,
	}, now)
}

// EndRound finishes a playing round at the current game time, no-op otherwise
func (r *RoundSystem) EndRound() {
	r.endRound(r.ctx.Clock.Now())
}

// Whack strikes hole id at the current game time
func (r *RoundSystem) Whack(id int) bool {
	return r.whack.Whack(id, r.ctx.Clock.Now())
}

// TogglePause freezes or resumes a playing round
// Returns false when no round is playing
func (r *RoundSystem) TogglePause() bool {
	state := r.ctx.State
	if state.Phase != engine.PhasePlaying {
		return false
	}

	if state.Paused {
		r.ctx.Clock.Resume()
		state.Paused = false
	} else {
		r.ctx.Clock.Pause()
		state.Paused = true
	}

	r.ctx.PushEvent(events.EventPauseChanged, &events.PausePayload{Paused: state.Paused}, r.ctx.Clock.Now())
	return true
}

// tick counts the round clock down and ends the round at zero
func (r *RoundSystem) tick(at time.Time) {
	state := r.ctx.State
	if state.Phase != engine.PhasePlaying {
		return
	}

	if state.TimeRemaining > 0 {
		state.TimeRemaining--
	}
	if state.TimeRemaining == 0 {
		r.endRound(at)
	}
}

func (r *RoundSystem) endRound(at time.Time) {
	state := r.ctx.State
	if state.Phase != engine.PhasePlaying {
		return
	}

	state.Phase = engine.PhaseEnded
	state.ComboFlash = false
	if state.Paused {
		r.ctx.Clock.Resume()
		state.Paused = false
	}
	r.cancelTimers()

	if state.Score > state.HighScore {
		previous := state.HighScore
		state.HighScore = state.Score
		state.NewRecord = true
		r.saveHighScore(state.Score)
		r.ctx.PushEvent(events.EventNewHighScore, &events.HighScorePayload{
			Previous: previous,
			Score:    state.Score,
		}, at)
	}

	log.Printf("round %d ended score=%d high=%d hits=%d misses=%d best_combo=%d",
		state.Round, state.Score, state.HighScore, state.Stats.Hits, state.Stats.Misses, state.Stats.BestCombo)

	r.ctx.PushEvent(events.EventRoundEnded, &events.RoundEndedPayload{
		Round:     state.Round,
		Score:     state.Score,
		HighScore: state.HighScore,
		NewRecord: state.NewRecord,
		Hits:      state.Stats.Hits,
		Misses:    state.Stats.Misses,
		BestCombo: state.Stats.BestCombo,
	}, at)
}

// saveHighScore persists a new best; failures keep the in-memory value
func (r *RoundSystem) saveHighScore(score int) {
	storeCtx, cancel := context.WithTimeout(context.Background(), constants.StoreTimeout)
	defer cancel()

	if err := r.ctx.HighScores.Save(storeCtx, score); err != nil {
		log.Printf("high score save failed: %v", err)
	}
}

// cancelTimers drops every pending timer of the round
func (r *RoundSystem) cancelTimers() {
	if n := r.ctx.Timers.CancelAll(); n > 0 {
		log.Printf("cancelled %d pending timers", n)
	}
	r.spawn.Reset()
	r.whack.Reset()
}
