package systems

import (
	"github.com/lixenwraith/whack/audio"
	"github.com/lixenwraith/whack/engine"
	"github.com/lixenwraith/whack/events"
)

// SoundPlayer plays a sound effect; implemented by *audio.SoundManager
type SoundPlayer interface {
	Play(soundType audio.SoundType)
}

// AudioSystem turns game events into sound effects
type AudioSystem struct {
	ctx    *engine.GameContext
	player SoundPlayer
}

// NewAudioSystem creates an audio system, a nil player makes it silent
func NewAudioSystem(ctx *engine.GameContext, player SoundPlayer) *AudioSystem {
	return &AudioSystem{
		ctx:    ctx,
		player: player,
	}
}

// EventTypes returns the event types AudioSystem handles
func (s *AudioSystem) EventTypes() []events.EventType {
	return []events.EventType{
		events.EventRoundStarted,
		events.EventRoundEnded,
		events.EventMoleStruck,
		events.EventMoleExpired,
		events.EventComboFlash,
		events.EventNewHighScore,
	}
}

// HandleEvent plays the sound mapped to the event
func (s *AudioSystem) HandleEvent(event events.GameEvent) {
	if s.player == nil || s.ctx.IsMuted.Load() {
		return
	}

	switch event.Type {
	case events.EventRoundStarted:
		s.player.Play(audio.SoundRoundStart)
	case events.EventRoundEnded:
		// The record fanfare replaces the end jingle
		if p, ok := event.Payload.(*events.RoundEndedPayload); ok && p.NewRecord {
			return
		}
		s.player.Play(audio.SoundRoundEnd)
	case events.EventMoleStruck:
		s.player.Play(audio.SoundHit)
	case events.EventMoleExpired:
		s.player.Play(audio.SoundExpire)
	case events.EventComboFlash:
		s.player.Play(audio.SoundCombo)
	case events.EventNewHighScore:
		s.player.Play(audio.SoundRecord)
	}
}
