package systems

import (
	"time"

	"github.com/lixenwraith/whack/constants"
	"github.com/lixenwraith/whack/engine"
	"github.com/lixenwraith/whack/events"
)

// WhackSystem resolves player strikes against holes
type WhackSystem struct {
	ctx   *engine.GameContext
	spawn *SpawnSystem

	flashTimer engine.TimerID // Pending combo indicator clear, 0 if none
}

// NewWhackSystem creates a new whack system
func NewWhackSystem(ctx *engine.GameContext, spawn *SpawnSystem) *WhackSystem {
	return &WhackSystem{
		ctx:   ctx,
		spawn: spawn,
	}
}

// Reset forgets timer handles; the registry itself is cleared by RoundSystem
func (w *WhackSystem) Reset() {
	w.flashTimer = 0
}

// Whack strikes hole id at game time now
// Returns false without side effects unless a round is playing and the hole has a mole up
func (w *WhackSystem) Whack(id int, now time.Time) bool {
	state := w.ctx.State
	if !state.IsPlaying() {
		return false
	}
	if !w.ctx.Grid.Strike(id) {
		return false
	}
	w.spawn.CancelExpiry(id)

	state.Combo++
	points := StrikePoints(state.Combo)
	state.Score += points
	state.Stats.Hits++
	if state.Combo > state.Stats.BestCombo {
		state.Stats.BestCombo = state.Combo
	}

	if IsComboFlash(state.Combo) {
		w.flashCombo(now)
	}

	round := state.Round
	w.ctx.Timers.After(now, constants.HitClearDelay, engine.TimerHitClear, func(time.Time) {
		if w.ctx.State.Round != round {
			return
		}
		w.ctx.Grid.Clear(id)
	})

	w.ctx.PushEvent(events.EventMoleStruck, &events.MoleStruckPayload{
		Hole:   id,
		Points: points,
		Combo:  state.Combo,
		Score:  state.Score,
	}, now)
	return true
}

// flashCombo lights the combo indicator, replacing any pending clear
func (w *WhackSystem) flashCombo(now time.Time) {
	state := w.ctx.State
	state.ComboFlash = true

	if w.flashTimer != 0 {
		w.ctx.Timers.Cancel(w.flashTimer)
	}
	w.flashTimer = w.ctx.Timers.After(now, constants.ComboFlashDuration, engine.TimerComboFlash, func(time.Time) {
		w.flashTimer = 0
		w.ctx.State.ComboFlash = false
	})

	w.ctx.PushEvent(events.EventComboFlash, &events.ComboPayload{Combo: state.Combo}, now)
}
