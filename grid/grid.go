// Package grid holds the fixed 3x3 set of spawn points and their guarded state transitions
package grid

import (
	"errors"

	"github.com/lixenwraith/whack/constants"
)

// HoleState is the lifecycle state of a single spawn point
type HoleState uint8

const (
	HoleHidden HoleState = iota // Empty, eligible for spawning
	HoleActive                  // Mole is up and can be struck
	HoleStruck                  // Mole was hit, waiting for the display delay to clear
)

// String returns the state name
func (s HoleState) String() string {
	switch s {
	case HoleHidden:
		return "hidden"
	case HoleActive:
		return "active"
	case HoleStruck:
		return "struck"
	default:
		return "unknown"
	}
}

// Sentinel errors
var (
	ErrInvalidHole = errors.New("hole id out of range")
	ErrNotHidden   = errors.New("hole is not hidden")
)

// Grid is the fixed collection of spawn points
// Every transition checks the current state first so stale or out-of-order timer
// callbacks degrade to no-ops instead of corrupting a hole
// Not safe for concurrent use; owned by the game loop
type Grid struct {
	holes [constants.HoleCount]HoleState
}

// New creates a grid with every hole hidden
func New() *Grid {
	return &Grid{}
}

// Size returns the number of spawn points
func (g *Grid) Size() int {
	return len(g.holes)
}

// Valid reports whether id addresses a spawn point
func (g *Grid) Valid(id int) bool {
	return id >= 0 && id < len(g.holes)
}

// Reset hides every hole
func (g *Grid) Reset() {
	for i := range g.holes {
		g.holes[i] = HoleHidden
	}
}

// State returns the state of a hole, HoleHidden for invalid ids
func (g *Grid) State(id int) HoleState {
	if !g.Valid(id) {
		return HoleHidden
	}
	return g.holes[id]
}

// ListHidden returns the ids of all hidden holes in ascending order
func (g *Grid) ListHidden() []int {
	hidden := make([]int, 0, len(g.holes))
	for i, s := range g.holes {
		if s == HoleHidden {
			hidden = append(hidden, i)
		}
	}
	return hidden
}

// CountActive returns the number of holes with a mole up
func (g *Grid) CountActive() int {
	n := 0
	for _, s := range g.holes {
		if s == HoleActive {
			n++
		}
	}
	return n
}

// Activate raises a mole in a hidden hole
func (g *Grid) Activate(id int) error {
	if !g.Valid(id) {
		return ErrInvalidHole
	}
	if g.holes[id] != HoleHidden {
		return ErrNotHidden
	}
	g.holes[id] = HoleActive
	return nil
}

// Expire hides a mole that timed out, only if it is still active
// Returns false when the mole was already struck or expired
func (g *Grid) Expire(id int) bool {
	if !g.Valid(id) || g.holes[id] != HoleActive {
		return false
	}
	g.holes[id] = HoleHidden
	return true
}

// Strike marks an active mole as hit
// Returns false when there is no mole up in the hole
func (g *Grid) Strike(id int) bool {
	if !g.Valid(id) || g.holes[id] != HoleActive {
		return false
	}
	g.holes[id] = HoleStruck
	return true
}

// Clear hides a struck mole after its display delay
func (g *Grid) Clear(id int) bool {
	if !g.Valid(id) || g.holes[id] != HoleStruck {
		return false
	}
	g.holes[id] = HoleHidden
	return true
}

// Snapshot copies all hole states for rendering
func (g *Grid) Snapshot() [constants.HoleCount]HoleState {
	return g.holes
}
