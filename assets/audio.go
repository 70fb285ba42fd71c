package assets

import (
	"bytes"
	"fmt"

	cfg "github.com/automoto/downhill/config"
	"github.com/automoto/downhill/shared/synth"
	"github.com/hajimehoshi/ebiten/v2/audio"
)

// AudioLoader handles synthesizing and caching of audio assets
type AudioLoader struct {
	sfxCache map[cfg.SoundID][]byte // PCM ready for a player
	music    []byte
	context  *audio.Context
}

// NewAudioLoader creates a new audio loader with the given context
func NewAudioLoader(ctx *audio.Context) *AudioLoader {
	return &AudioLoader{
		sfxCache: make(map[cfg.SoundID][]byte),
		context:  ctx,
	}
}

// PreloadSFX synthesizes and caches a sound effect without creating a player.
func (l *AudioLoader) PreloadSFX(id cfg.SoundID) error {
	// Already cached
	if _, ok := l.sfxCache[id]; ok {
		return nil
	}

	tone, ok := cfg.Sound.Tones[id]
	if !ok {
		return fmt.Errorf("no tone for sound %d", id)
	}
	l.sfxCache[id] = synth.TonePCM(tone, l.context.SampleRate(), uint64(id))
	return nil
}

// LoadSFX returns a new player for a preloaded sound effect.
func (l *AudioLoader) LoadSFX(id cfg.SoundID) (*audio.Player, error) {
	cached, ok := l.sfxCache[id]
	if !ok {
		return nil, fmt.Errorf("sound %d not loaded", id)
	}
	return l.context.NewPlayer(bytes.NewReader(cached))
}

// PreloadMusic synthesizes the race music loop.
func (l *AudioLoader) PreloadMusic() error {
	if l.music != nil {
		return nil
	}
	samples := synth.Melody(cfg.Audio.MusicNotes, cfg.Audio.MusicTempo, 0.3, l.context.SampleRate())
	if len(samples) == 0 {
		return fmt.Errorf("music: no notes configured")
	}
	l.music = synth.PCM(samples)
	return nil
}

// LoadMusic returns a looping player for the race music.
func (l *AudioLoader) LoadMusic() (*audio.Player, error) {
	if l.music == nil {
		return nil, fmt.Errorf("music not loaded")
	}
	loop := audio.NewInfiniteLoop(bytes.NewReader(l.music), int64(len(l.music)))
	return l.context.NewPlayer(loop)
}
