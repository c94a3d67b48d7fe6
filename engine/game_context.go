package engine

import (
	"sync/atomic"
	"time"

	"github.com/lixenwraith/whack/events"
	"github.com/lixenwraith/whack/grid"
	"github.com/lixenwraith/whack/highscore"
)

// GameContext holds the round state and every collaborator the systems share
type GameContext struct {
	// ===== Immutable After Init =====

	State      *GameState
	Grid       *grid.Grid
	Timers     *TimerRegistry
	Clock      *PausableClock // Game time; every timer is scheduled against it
	Rand       Rand
	HighScores highscore.Store
	eventQueue *events.EventQueue

	// ===== Atomic (Self-Synchronized) =====

	FrameNumber atomic.Int64 // Render frame counter; incremented by main loop
	IsMuted     atomic.Bool  // Read by the audio system
}

// NewGameContext wires a fresh idle game
// A nil clock runs on the system clock, a nil rng is seeded from time, a nil store keeps scores in memory
func NewGameContext(clock *PausableClock, rng Rand, scores highscore.Store) *GameContext {
	if clock == nil {
		clock = NewPausableClock(nil)
	}
	if rng == nil {
		rng = NewRand(0)
	}
	if scores == nil {
		scores = highscore.NewMemoryStore()
	}

	return &GameContext{
		State:      NewGameState(0),
		Grid:       grid.New(),
		Timers:     NewTimerRegistry(),
		Clock:      clock,
		Rand:       rng,
		HighScores: scores,
		eventQueue: events.NewEventQueue(),
	}
}

// EventQueue returns the queue systems push to
func (ctx *GameContext) EventQueue() *events.EventQueue {
	return ctx.eventQueue
}

// PushEvent queues an event stamped with game time at
func (ctx *GameContext) PushEvent(eventType events.EventType, payload any, at time.Time) {
	ctx.eventQueue.Push(events.GameEvent{
		Type:      eventType,
		Payload:   payload,
		Timestamp: at,
	})
}

// Snapshot returns the presentation view of the current state
func (ctx *GameContext) Snapshot() Snapshot {
	return ctx.State.Snapshot(ctx.Grid)
}

// IncrementFrameNumber advances the render frame counter
func (ctx *GameContext) IncrementFrameNumber() int64 {
	return ctx.FrameNumber.Add(1)
}
