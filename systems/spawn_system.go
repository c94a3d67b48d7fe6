package systems

import (
	"time"

	"github.com/lixenwraith/whack/constants"
	"github.com/lixenwraith/whack/engine"
	"github.com/lixenwraith/whack/events"
)

// SpawnSystem raises moles on a fixed cadence and owns their expiry timers
type SpawnSystem struct {
	ctx *engine.GameContext

	spawnTimer engine.TimerID
	expiries   [constants.HoleCount]engine.TimerID // Pending expiry per hole, 0 if none
}

// NewSpawnSystem creates a new spawn system
func NewSpawnSystem(ctx *engine.GameContext) *SpawnSystem {
	return &SpawnSystem{ctx: ctx}
}

// Start registers the spawn interval, first spawn one interval after now
func (s *SpawnSystem) Start(now time.Time) {
	s.spawnTimer = s.ctx.Timers.Every(now, constants.SpawnInterval, engine.TimerSpawn, s.spawn)
}

// Reset forgets timer handles; the registry itself is cleared by RoundSystem
func (s *SpawnSystem) Reset() {
	s.spawnTimer = 0
	s.expiries = [constants.HoleCount]engine.TimerID{}
}

// PendingExpiry returns the expiry timer of a hole, 0 if none
func (s *SpawnSystem) PendingExpiry(id int) engine.TimerID {
	if !s.ctx.Grid.Valid(id) {
		return 0
	}
	return s.expiries[id]
}

// CancelExpiry drops the pending expiry of a hole after a strike
func (s *SpawnSystem) CancelExpiry(id int) {
	if !s.ctx.Grid.Valid(id) {
		return
	}
	if s.expiries[id] != 0 {
		s.ctx.Timers.Cancel(s.expiries[id])
		s.expiries[id] = 0
	}
}

// spawn picks a uniformly random hidden hole and raises a mole in it
func (s *SpawnSystem) spawn(at time.Time) {
	state := s.ctx.State
	if !state.IsPlaying() {
		return
	}

	hidden := s.ctx.Grid.ListHidden()
	if len(hidden) == 0 {
		return
	}

	id := hidden[s.ctx.Rand.Intn(len(hidden))]
	if err := s.ctx.Grid.Activate(id); err != nil {
		return
	}

	duration := MoleDuration(state.TimeRemaining)
	round := state.Round
	s.expiries[id] = s.ctx.Timers.After(at, duration, engine.TimerMoleExpiry, func(firedAt time.Time) {
		s.expire(round, id, firedAt)
	})

	state.Stats.Spawned++
	s.ctx.PushEvent(events.EventMoleSpawned, &events.MoleSpawnedPayload{Hole: id, Duration: duration}, at)
}

// expire hides a mole that was not struck in time and breaks the combo
// Timers from an earlier round and moles already struck or expired are ignored
func (s *SpawnSystem) expire(round, id int, at time.Time) {
	state := s.ctx.State
	if state.Round != round || state.Phase != engine.PhasePlaying {
		return
	}
	s.expiries[id] = 0

	if !s.ctx.Grid.Expire(id) {
		return
	}

	state.Combo = 0
	state.Stats.Misses++
	s.ctx.PushEvent(events.EventMoleExpired, &events.MolePayload{Hole: id}, at)
}
