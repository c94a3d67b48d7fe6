package audio

import (
	"errors"
	"testing"
)

// TestSoundManagerGracefulDegradation verifies audio operations don't panic when not initialized
func TestSoundManagerGracefulDegradation(t *testing.T) {
	sm := NewSoundManager(nil)

	defer func() {
		if r := recover(); r != nil {
			t.Errorf("Sound operations panicked without initialization: %v", r)
		}
	}()

	for st := SoundType(0); st < soundTypeCount; st++ {
		sm.Play(st)
	}
	if sm.Played() != 0 {
		t.Errorf("Expected nothing played without initialization, got %d", sm.Played())
	}
	sm.Cleanup()
}

// TestSoundManagerInitialization verifies sound manager can be initialized and cleaned up
func TestSoundManagerInitialization(t *testing.T) {
	sm := NewSoundManager(nil)

	// Speaker initialization may fail in CI/test environments without audio devices
	if err := sm.Initialize(); err != nil {
		t.Logf("Sound initialization failed (expected in test environment): %v", err)
		return
	}

	if !sm.IsInitialized() {
		t.Error("Expected initialized after successful Initialize")
	}

	// Second initialization is a no-op
	if err := sm.Initialize(); err != nil {
		t.Errorf("Second initialization should succeed as no-op, got error: %v", err)
	}

	sm.Play(SoundHit)
	if sm.Played() != 1 {
		t.Errorf("Expected 1 effect played, got %d", sm.Played())
	}

	sm.Cleanup()
	if sm.IsInitialized() {
		t.Error("Expected not initialized after cleanup")
	}
}

func TestSoundManagerDisabled(t *testing.T) {
	cfg := DefaultAudioConfig()
	cfg.Enabled = false
	sm := NewSoundManager(cfg)

	if err := sm.Initialize(); !errors.Is(err, ErrAudioDisabled) {
		t.Errorf("Expected ErrAudioDisabled, got %v", err)
	}
	if sm.IsInitialized() {
		t.Error("Disabled manager must not initialize")
	}
}

func TestSoundManagerInvalidSampleRate(t *testing.T) {
	cfg := DefaultAudioConfig()
	cfg.SampleRate = 0
	sm := NewSoundManager(cfg)

	if err := sm.Initialize(); !errors.Is(err, ErrInvalidSampleRate) {
		t.Errorf("Expected ErrInvalidSampleRate, got %v", err)
	}
}

// TestSoundManagerCleanupWithoutInit verifies cleanup without initialization is safe
func TestSoundManagerCleanupWithoutInit(t *testing.T) {
	sm := NewSoundManager(nil)

	defer func() {
		if r := recover(); r != nil {
			t.Errorf("Cleanup panicked without initialization: %v", r)
		}
	}()

	sm.Cleanup()
	sm.Cleanup()
}
