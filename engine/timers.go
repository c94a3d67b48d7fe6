package engine

import (
	"time"
)

// TimerID identifies a registered timer, zero is never issued
type TimerID uint64

// TimerKind tags a timer with the stream it belongs to
type TimerKind uint8

const (
	TimerRoundTick   TimerKind = iota // 1s countdown of the round clock
	TimerSpawn                        // Mole scheduler cadence
	TimerMoleExpiry                   // Per-mole visibility timeout
	TimerHitClear                     // Struck mole display delay
	TimerComboFlash                   // Combo indicator timeout
)

// String returns the kind name for logs
func (k TimerKind) String() string {
	switch k {
	case TimerRoundTick:
		return "round_tick"
	case TimerSpawn:
		return "spawn"
	case TimerMoleExpiry:
		return "mole_expiry"
	case TimerHitClear:
		return "hit_clear"
	case TimerComboFlash:
		return "combo_flash"
	default:
		return "unknown"
	}
}

// TimerFunc is invoked when a timer fires
// at is the scheduled deadline, not the time Advance observed
type TimerFunc func(at time.Time)

type timer struct {
	id       TimerID
	kind     TimerKind
	deadline time.Time
	interval time.Duration // Zero for one-shot timers
	fn       TimerFunc
}

// TimerRegistry owns every pending game timer
// Timers fire only from Advance, in deadline order with ties broken by registration order
// Callbacks may register or cancel timers, including themselves
// Not safe for concurrent use; owned by the game loop
type TimerRegistry struct {
	timers map[TimerID]*timer
	nextID TimerID
}

// NewTimerRegistry creates an empty registry
func NewTimerRegistry() *TimerRegistry {
	return &TimerRegistry{
		timers: make(map[TimerID]*timer),
	}
}

// After registers a one-shot timer firing delay after now
func (r *TimerRegistry) After(now time.Time, delay time.Duration, kind TimerKind, fn TimerFunc) TimerID {
	return r.add(now.Add(delay), 0, kind, fn)
}

// Every registers a repeating timer first firing interval after now
// Non-positive intervals are rejected with a zero id
func (r *TimerRegistry) Every(now time.Time, interval time.Duration, kind TimerKind, fn TimerFunc) TimerID {
	if interval <= 0 {
		return 0
	}
	return r.add(now.Add(interval), interval, kind, fn)
}

func (r *TimerRegistry) add(deadline time.Time, interval time.Duration, kind TimerKind, fn TimerFunc) TimerID {
	r.nextID++
	id := r.nextID
	r.timers[id] = &timer{
		id:       id,
		kind:     kind,
		deadline: deadline,
		interval: interval,
		fn:       fn,
	}
	return id
}

// Cancel removes a pending timer, returns false if it already fired or was cancelled
func (r *TimerRegistry) Cancel(id TimerID) bool {
	if _, ok := r.timers[id]; !ok {
		return false
	}
	delete(r.timers, id)
	return true
}

// CancelKind removes every pending timer of the given kind and returns the count
func (r *TimerRegistry) CancelKind(kind TimerKind) int {
	n := 0
	for id, t := range r.timers {
		if t.kind == kind {
			delete(r.timers, id)
			n++
		}
	}
	return n
}

// CancelAll removes every pending timer and returns the count
func (r *TimerRegistry) CancelAll() int {
	n := len(r.timers)
	clear(r.timers)
	return n
}

// Pending returns the number of registered timers
func (r *TimerRegistry) Pending() int {
	return len(r.timers)
}

// PendingKind returns the number of registered timers of the given kind
func (r *TimerRegistry) PendingKind(kind TimerKind) int {
	n := 0
	for _, t := range r.timers {
		if t.kind == kind {
			n++
		}
	}
	return n
}

// IsPending reports whether the timer is still registered
func (r *TimerRegistry) IsPending(id TimerID) bool {
	_, ok := r.timers[id]
	return ok
}

// NextDeadline returns the earliest pending deadline
func (r *TimerRegistry) NextDeadline() (time.Time, bool) {
	if t := r.earliest(time.Time{}, false); t != nil {
		return t.deadline, true
	}
	return time.Time{}, false
}

// Advance fires every timer due at or before now and returns how many fired
// Repeating timers are rescheduled from their own deadline so the cadence does not drift
func (r *TimerRegistry) Advance(now time.Time) int {
	fired := 0
	for {
		t := r.earliest(now, true)
		if t == nil {
			return fired
		}

		at := t.deadline
		if t.interval > 0 {
			t.deadline = t.deadline.Add(t.interval)
		} else {
			delete(r.timers, t.id)
		}

		t.fn(at)
		fired++
	}
}

// earliest returns the timer with the smallest (deadline, id), optionally limited to due timers
func (r *TimerRegistry) earliest(now time.Time, dueOnly bool) *timer {
	var best *timer
	for _, t := range r.timers {
		if dueOnly && t.deadline.After(now) {
			continue
		}
		if best == nil || t.deadline.Before(best.deadline) ||
			(t.deadline.Equal(best.deadline) && t.id < best.id) {
			best = t
		}
	}
	return best
}
