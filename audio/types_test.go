package audio

import "testing"

// TestSoundTypeString verifies the config keys used for effect volumes
func TestSoundTypeString(t *testing.T) {
	tests := []struct {
		st   SoundType
		want string
	}{
		{SoundHit, "hit"},
		{SoundCombo, "combo"},
		{SoundExpire, "expire"},
		{SoundRoundStart, "start"},
		{SoundRoundEnd, "end"},
		{SoundRecord, "record"},
		{soundTypeCount, "unknown"},
		{SoundType(-1), "unknown"},
	}

	for _, tt := range tests {
		if got := tt.st.String(); got != tt.want {
			t.Errorf("SoundType(%d).String() = %q, want %q", tt.st, got, tt.want)
		}
	}
}

// TestSoundTypeKeysUnique guards the volume map against key collisions
func TestSoundTypeKeysUnique(t *testing.T) {
	seen := make(map[string]SoundType)
	for st := SoundType(0); st < soundTypeCount; st++ {
		key := st.String()
		if prev, ok := seen[key]; ok {
			t.Errorf("%v and %v share key %q", prev, st, key)
		}
		seen[key] = st
	}
}
