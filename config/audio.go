package config

import "time"

// SoundID represents a logical sound effect
type SoundID int

const (
	SoundNone SoundID = iota
	SoundJump
	SoundLand
	SoundFall
	SoundFinish
	SoundCountdown
	SoundGo
	SoundMenuSelect
	SoundType
)

// Tone describes a synthesized sound: a frequency sweep with a decaying envelope.
type Tone struct {
	StartHz  float64
	EndHz    float64
	Duration time.Duration
	Noise    float64 // 0..1 mix of white noise
	Volume   float64
}

// AudioConfig contains audio-related configuration values
type AudioConfig struct {
	SampleRate        int
	DefaultMusicVol   float64
	DefaultSFXVol     float64
	MusicFadeDuration int // frames for music fade out (60 = 1 second at 60fps)
	MusicTempo        time.Duration
	MusicNotes        []float64
}

// SoundConfig maps sound IDs to synthesized tones
type SoundConfig struct {
	Tones             map[SoundID]Tone
	VolumeMultipliers map[SoundID]float64
}

var Audio AudioConfig
var Sound SoundConfig

func init() {
	Audio = AudioConfig{
		SampleRate:        44100,
		DefaultMusicVol:   0.35,
		DefaultSFXVol:     0.8,
		MusicFadeDuration: 45,
		MusicTempo:        180 * time.Millisecond,
		MusicNotes:        []float64{392, 440, 523.25, 440, 587.33, 523.25, 440, 392},
	}

	Sound = SoundConfig{
		Tones: map[SoundID]Tone{
			SoundJump:       {StartHz: 300, EndHz: 700, Duration: 180 * time.Millisecond, Volume: 0.5},
			SoundLand:       {StartHz: 180, EndHz: 90, Duration: 90 * time.Millisecond, Noise: 0.6, Volume: 0.5},
			SoundFall:       {StartHz: 220, EndHz: 60, Duration: 600 * time.Millisecond, Noise: 0.8, Volume: 0.7},
			SoundFinish:     {StartHz: 523.25, EndHz: 1046.5, Duration: 500 * time.Millisecond, Volume: 0.6},
			SoundCountdown:  {StartHz: 440, EndHz: 440, Duration: 150 * time.Millisecond, Volume: 0.5},
			SoundGo:         {StartHz: 880, EndHz: 880, Duration: 350 * time.Millisecond, Volume: 0.6},
			SoundMenuSelect: {StartHz: 660, EndHz: 990, Duration: 90 * time.Millisecond, Volume: 0.4},
			SoundType:       {StartHz: 1200, EndHz: 1100, Duration: 30 * time.Millisecond, Volume: 0.25},
		},
		VolumeMultipliers: map[SoundID]float64{
			SoundFall: 1.3,
		},
	}
}
