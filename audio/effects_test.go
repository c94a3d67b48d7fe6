package audio

import (
	"errors"
	"math"
	"testing"
	"time"

	"github.com/gopxl/beep"
)

// drain streams s to completion and returns the sample count and peak amplitude
func drain(t *testing.T, s beep.Streamer) (int, float64) {
	t.Helper()
	buf := make([][2]float64, 512)
	total := 0
	peak := 0.0
	for i := 0; i < 10000; i++ {
		n, ok := s.Stream(buf)
		for j := 0; j < n; j++ {
			peak = math.Max(peak, math.Abs(buf[j][0]))
		}
		total += n
		if !ok || n == 0 {
			return total, peak
		}
	}
	t.Fatal("Streamer did not terminate")
	return 0, 0
}

func TestOscillatorDuration(t *testing.T) {
	rate := beep.SampleRate(44100)
	for _, wave := range []WaveType{WaveSine, WaveSquare, WaveSaw, WaveNoise} {
		osc := NewOscillator(440, 100*time.Millisecond, wave, rate)
		n, peak := drain(t, osc)
		if n != rate.N(100*time.Millisecond) {
			t.Errorf("Wave %d: expected %d samples, got %d", wave, rate.N(100*time.Millisecond), n)
		}
		if peak > 1.0 {
			t.Errorf("Wave %d: peak %f exceeds 1.0", wave, peak)
		}
	}
}

func TestEnvelopeShapesAttackAndRelease(t *testing.T) {
	rate := beep.SampleRate(1000)
	osc := NewOscillator(0, 100*time.Millisecond, WaveSquare, rate) // Constant +1
	env := NewEnvelope(osc, 100*time.Millisecond, 10*time.Millisecond, 10*time.Millisecond, rate)

	buf := make([][2]float64, 100)
	n, _ := env.Stream(buf)
	if n != 100 {
		t.Fatalf("Expected 100 samples, got %d", n)
	}
	if buf[0][0] != 0 {
		t.Errorf("Expected silent first sample, got %f", buf[0][0])
	}
	if buf[50][0] != 1 {
		t.Errorf("Expected full volume in sustain, got %f", buf[50][0])
	}
	if buf[99][0] >= buf[90][0] {
		t.Errorf("Expected release to fade, got %f then %f", buf[90][0], buf[99][0])
	}
}

func TestGetSoundEffectAllTypes(t *testing.T) {
	cfg := DefaultAudioConfig()

	for st := SoundType(0); st < soundTypeCount; st++ {
		s, err := GetSoundEffect(st, cfg)
		if err != nil {
			t.Fatalf("%s: unexpected error %v", st, err)
		}
		n, peak := drain(t, s)
		if n == 0 {
			t.Errorf("%s: produced no samples", st)
		}
		if peak == 0 {
			t.Errorf("%s: produced silence", st)
		}
	}

	if _, err := GetSoundEffect(SoundType(99), cfg); !errors.Is(err, ErrUnknownSound) {
		t.Errorf("Expected ErrUnknownSound, got %v", err)
	}

	bad := DefaultAudioConfig()
	bad.SampleRate = -1
	if _, err := GetSoundEffect(SoundHit, bad); !errors.Is(err, ErrInvalidSampleRate) {
		t.Errorf("Expected ErrInvalidSampleRate, got %v", err)
	}
}

func TestMutedEffectIsSilent(t *testing.T) {
	cfg := DefaultAudioConfig()
	cfg.MasterVolume = 0

	s, _ := GetSoundEffect(SoundCombo, cfg)
	if _, peak := drain(t, s); peak != 0 {
		t.Errorf("Expected silence at zero volume, got peak %f", peak)
	}
}
