package constants

import "time"

// Game Loop & Engine Timing
const (
	// FrameUpdateInterval is the rendering frame rate interval (~60 FPS)
	FrameUpdateInterval = 16 * time.Millisecond

	// GameUpdateInterval is how often the main loop advances the timer registry
	// Must stay well below the shortest game timer (HitClearDelay)
	GameUpdateInterval = 10 * time.Millisecond
)

// Event Queue Limits
const (
	// EventQueueSize is the fixed capacity of the event ring buffer
	EventQueueSize = 256

	// EventBufferMask is the bitmask for fast modulo operations (256 - 1)
	EventBufferMask = 255
)

// Input
const (
	// InputChannelSize buffers terminal events between the poller and the main loop
	InputChannelSize = 256
)

// Persistence
const (
	// StoreTimeout bounds a single high score load or save
	StoreTimeout = 2 * time.Second
)
