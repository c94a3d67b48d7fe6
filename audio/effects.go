package audio

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"

	"github.com/lixenwraith/whack/constants"
)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

// oscillator generates raw audio waves for a fixed duration
type oscillator struct {
	freq     float64
	phase    float64
	duration int
	position int
	wave     WaveType
	rate     beep.SampleRate
}

// NewOscillator creates a new oscillator for wave generation
func NewOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		freq:     freq,
		duration: rate.N(duration),
		wave:     wave,
		rate:     rate,
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, i > 0
		}

		var val float64
		switch o.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case WaveSquare:
			if o.phase < 0.5 {
				val = 1.0
			} else {
				val = -1.0
			}
		case WaveSaw:
			val = 2.0 * (o.phase - 0.5)
		case WaveNoise:
			val = rand.Float64()*2 - 1
		}

		samples[i][0] = val
		samples[i][1] = val

		o.phase += o.freq / float64(o.rate)
		o.phase -= math.Floor(o.phase) // Keep in [0, 1)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope applies attack/release shaping to a stream
type envelope struct {
	streamer       beep.Streamer
	position       int
	attackSamples  int
	releaseSamples int
	sustainSamples int
	totalSamples   int
}

// NewEnvelope wraps s with a linear attack and release over duration
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	total := rate.N(duration)
	att := rate.N(attack)
	rel := rate.N(release)
	sus := total - att - rel
	if sus < 0 {
		sus = 0
	}

	return &envelope{
		streamer:       s,
		attackSamples:  att,
		releaseSamples: rel,
		sustainSamples: sus,
		totalSamples:   total,
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)

	for i := 0; i < n; i++ {
		if e.position >= e.totalSamples {
			return i, i > 0
		}

		vol := 1.0
		if e.position < e.attackSamples && e.attackSamples > 0 {
			vol = float64(e.position) / float64(e.attackSamples)
		}
		releaseStart := e.attackSamples + e.sustainSamples
		if e.position >= releaseStart && e.releaseSamples > 0 {
			vol = float64(e.totalSamples-e.position) / float64(e.releaseSamples)
			if vol < 0 {
				vol = 0
			}
		}

		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}

	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume wraps s in a volume effect
// math.Log2(0) is -Inf, so 0 volume is made silent instead
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

// tone returns a shaped sine note
func tone(freq float64, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	osc := NewOscillator(freq, duration, WaveSine, rate)
	return NewEnvelope(osc, duration, attack, release, rate)
}

func effectVolume(cfg *AudioConfig, st SoundType) float64 {
	return cfg.EffectVolumes[st] * cfg.MasterVolume
}

// Sound effect generators

// CreateHitSound generates a short bright knock for a strike
func CreateHitSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	var body beep.Streamer
	if sine, err := generators.SineTone(rate, 660); err == nil {
		body = beep.Take(rate.N(constants.HitSoundDuration), sine)
	} else {
		body = NewOscillator(660, constants.HitSoundDuration, WaveSine, rate)
	}
	shaped := NewEnvelope(body, constants.HitSoundDuration, constants.HitSoundAttack, constants.HitSoundRelease, rate)

	// Noise transient for the mallet
	click := NewOscillator(0, constants.HitSoundAttack*4, WaveNoise, rate)
	clickShaped := NewEnvelope(click, constants.HitSoundAttack*4, 0, constants.HitSoundAttack*3, rate)

	mixed := beep.Mix(newVolume(shaped, 0.8), newVolume(clickShaped, 0.3))
	return newVolume(mixed, effectVolume(cfg, SoundHit))
}

// CreateComboSound generates a two-note chime for the combo indicator
func CreateComboSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	// B5 then E6
	n1 := NewOscillator(987.77, constants.ComboSoundNote1Duration, WaveSquare, rate)
	n1Shaped := NewEnvelope(n1, constants.ComboSoundNote1Duration, constants.ComboSoundAttack, constants.ComboSoundNote1Release, rate)

	n2 := NewOscillator(1318.51, constants.ComboSoundNote2Duration, WaveSquare, rate)
	n2Shaped := NewEnvelope(n2, constants.ComboSoundNote2Duration, constants.ComboSoundAttack, constants.ComboSoundNote2Release, rate)

	return newVolume(beep.Seq(n1Shaped, n2Shaped), effectVolume(cfg, SoundCombo))
}

// CreateExpireSound generates a low buzz for an escaped mole
func CreateExpireSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	osc := NewOscillator(110.0, constants.ExpireSoundDuration, WaveSaw, rate)
	shaped := NewEnvelope(osc, constants.ExpireSoundDuration, constants.ExpireSoundAttack, constants.ExpireSoundRelease, rate)

	return newVolume(shaped, effectVolume(cfg, SoundExpire))
}

// arpeggio plays the frequencies in sequence as shaped sine notes
func arpeggio(freqs []float64, rate beep.SampleRate) beep.Streamer {
	notes := make([]beep.Streamer, 0, len(freqs))
	for _, f := range freqs {
		notes = append(notes, tone(f, constants.RoundSoundNoteDuration, constants.RoundSoundAttack, constants.RoundSoundRelease, rate))
	}
	return beep.Seq(notes...)
}

// CreateRoundStartSound generates a rising C major arpeggio
func CreateRoundStartSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)
	return newVolume(arpeggio([]float64{523.25, 659.25, 783.99}, rate), effectVolume(cfg, SoundRoundStart))
}

// CreateRoundEndSound generates a falling arpeggio
func CreateRoundEndSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)
	return newVolume(arpeggio([]float64{783.99, 659.25, 523.25, 392.00}, rate), effectVolume(cfg, SoundRoundEnd))
}

// CreateRecordSound generates a fanfare with an octave doubling
func CreateRecordSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	lead := arpeggio([]float64{523.25, 659.25, 783.99, 1046.50}, rate)
	octave := arpeggio([]float64{1046.50, 1318.51, 1567.98, 2093.00}, rate)

	return newVolume(beep.Mix(newVolume(lead, 0.7), newVolume(octave, 0.3)), effectVolume(cfg, SoundRecord))
}

// GetSoundEffect returns the streamer for the given sound type
func GetSoundEffect(soundType SoundType, cfg *AudioConfig) (beep.Streamer, error) {
	if cfg.SampleRate <= 0 {
		return nil, ErrInvalidSampleRate
	}
	switch soundType {
	case SoundHit:
		return CreateHitSound(cfg), nil
	case SoundCombo:
		return CreateComboSound(cfg), nil
	case SoundExpire:
		return CreateExpireSound(cfg), nil
	case SoundRoundStart:
		return CreateRoundStartSound(cfg), nil
	case SoundRoundEnd:
		return CreateRoundEndSound(cfg), nil
	case SoundRecord:
		return CreateRecordSound(cfg), nil
	default:
		return nil, ErrUnknownSound
	}
}
