package audio

import (
	"encoding/json"
	"os"
	"strconv"
)

// AudioConfig holds playback settings
type AudioConfig struct {
	Enabled       bool
	MasterVolume  float64               // 0.0-1.0
	EffectVolumes map[SoundType]float64 // Per-effect multiplier, 0.0-1.0
	SampleRate    int
}

// DefaultAudioConfig returns the built-in settings
func DefaultAudioConfig() *AudioConfig {
	return &AudioConfig{
		Enabled:      true,
		MasterVolume: 0.5,
		EffectVolumes: map[SoundType]float64{
			SoundHit:        0.8,
			SoundCombo:      0.7,
			SoundExpire:     0.5,
			SoundRoundStart: 0.6,
			SoundRoundEnd:   0.6,
			SoundRecord:     0.8,
		},
		SampleRate: 44100,
	}
}

// LoadAudioConfig loads audio configuration from environment variables
func LoadAudioConfig() *AudioConfig {
	return loadAudioConfig(os.Getenv)
}

func loadAudioConfig(getenv func(string) string) *AudioConfig {
	cfg := DefaultAudioConfig()

	if enabled := getenv("WHACK_AUDIO_ENABLED"); enabled != "" {
		if val, err := strconv.ParseBool(enabled); err == nil {
			cfg.Enabled = val
		}
	}

	// Master volume (0-100 converted to 0.0-1.0)
	if volume := getenv("WHACK_MASTER_VOLUME"); volume != "" {
		if val, err := strconv.Atoi(volume); err == nil {
			cfg.MasterVolume = clampVolume(float64(val) / 100.0)
		}
	}

	// Effect volumes from JSON, keyed by SoundType.String()
	if effectVols := getenv("WHACK_SFX_VOLUMES"); effectVols != "" {
		var volumes map[string]float64
		if err := json.Unmarshal([]byte(effectVols), &volumes); err == nil {
			for st := SoundType(0); st < soundTypeCount; st++ {
				if v, ok := volumes[st.String()]; ok {
					cfg.EffectVolumes[st] = clampVolume(v)
				}
			}
		}
	}

	if sampleRate := getenv("WHACK_SAMPLE_RATE"); sampleRate != "" {
		if val, err := strconv.Atoi(sampleRate); err == nil && val > 0 {
			cfg.SampleRate = val
		}
	}

	return cfg
}

func clampVolume(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
