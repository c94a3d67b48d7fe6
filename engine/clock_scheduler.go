package engine

import (
	"time"

	"github.com/lixenwraith/whack/events"
)

// ClockScheduler advances game timers and dispatches the events they produce
// Update is called by the main loop every GameUpdateInterval; all timer callbacks
// and event handlers therefore run on the main goroutine
type ClockScheduler struct {
	ctx         *GameContext
	eventRouter *events.Router

	tickCount  uint64
	firedCount uint64
	lastUpdate time.Time // Game time of the last Update
}

// NewClockScheduler creates a scheduler for the given context
func NewClockScheduler(ctx *GameContext) *ClockScheduler {
	return &ClockScheduler{
		ctx:         ctx,
		eventRouter: events.NewRouter(ctx.EventQueue()),
		lastUpdate:  ctx.Clock.Now(),
	}
}

// RegisterEventHandler adds an event handler to the router
func (cs *ClockScheduler) RegisterEventHandler(handler events.Handler) {
	cs.eventRouter.Register(handler)
}

// Update fires every timer due at the current game time, then dispatches pending events
// Returns the number of timers fired
func (cs *ClockScheduler) Update() int {
	now := cs.ctx.Clock.Now()
	fired := cs.ctx.Timers.Advance(now)

	cs.lastUpdate = now
	cs.tickCount++
	cs.firedCount += uint64(fired)

	cs.eventRouter.DispatchAll()
	return fired
}

// DispatchEventsImmediately processes pending events without advancing timers
// Called after input so feedback does not wait for the next update
func (cs *ClockScheduler) DispatchEventsImmediately() int {
	return cs.eventRouter.DispatchAll()
}

// TickCount returns the number of Update calls
func (cs *ClockScheduler) TickCount() uint64 {
	return cs.tickCount
}

// FiredCount returns the number of timers fired across all updates
func (cs *ClockScheduler) FiredCount() uint64 {
	return cs.firedCount
}

// LastUpdate returns the game time of the last Update
func (cs *ClockScheduler) LastUpdate() time.Time {
	return cs.lastUpdate
}
