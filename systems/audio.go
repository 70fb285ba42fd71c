package systems

import (
	"log"
	"sync"

	"github.com/automoto/downhill/assets"
	"github.com/automoto/downhill/components"
	"github.com/automoto/downhill/core"
	cfg "github.com/automoto/downhill/config"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/yohamta/donburi/ecs"
)

// Global audio state - created once and shared across all scenes
var (
	globalAudioContext *audio.Context
	globalAudioLoader  *assets.AudioLoader
	globalMusicPlayer  *audio.Player
	globalMusicVolume  float64 = cfg.Audio.DefaultMusicVol
	globalSFXVolume    float64 = cfg.Audio.DefaultSFXVol
	globalFadeTimer    int
	globalFadeDuration int
	globalFadeStart    float64
	audioInitOnce      sync.Once
)

// initGlobalAudio initializes the global audio context (called once)
func initGlobalAudio() {
	audioInitOnce.Do(func() {
		globalAudioContext = audio.NewContext(cfg.Audio.SampleRate)
		globalAudioLoader = assets.NewAudioLoader(globalAudioContext)
	})
}

// AudioLoader returns the shared loader so the loading phase can fill it.
func AudioLoader() *assets.AudioLoader {
	initGlobalAudio()
	return globalAudioLoader
}

// UpdateAudio drains sounds and music commands queued by the simulation.
// Runs after the simulation systems so this tick's requests play this frame.
func UpdateAudio(e *ecs.ECS) {
	initGlobalAudio()

	// Handle music fade out
	if globalFadeTimer > 0 {
		globalFadeTimer--
		if globalFadeDuration > 0 && globalMusicPlayer != nil {
			progress := float64(globalFadeTimer) / float64(globalFadeDuration)
			globalMusicPlayer.SetVolume(globalFadeStart * progress)
		}
		if globalFadeTimer == 0 {
			StopMusic()
		}
	}

	a := core.GetAudio(e.World)
	for _, id := range a.PendingSFX {
		playSFX(id)
	}
	a.PendingSFX = a.PendingSFX[:0]

	switch a.Music {
	case components.MusicPlay:
		PlayMusic()
	case components.MusicStop:
		StopMusic()
	case components.MusicFadeOut:
		FadeOutMusic()
	}
	a.Music = components.MusicKeep
}

func playSFX(id cfg.SoundID) {
	if globalSFXVolume <= 0 {
		return
	}

	player, err := globalAudioLoader.LoadSFX(id)
	if err != nil {
		return
	}

	volume := globalSFXVolume
	if mult, ok := cfg.Sound.VolumeMultipliers[id]; ok {
		volume *= mult
	}

	player.SetVolume(volume)
	player.Play()
}

// PlayMusic restarts the race loop from the top.
func PlayMusic() {
	initGlobalAudio()
	if cfg.Debug.NoMusic {
		return
	}

	StopMusic()
	player, err := globalAudioLoader.LoadMusic()
	if err != nil {
		log.Printf("Warning: %v", err)
		return
	}

	player.SetVolume(globalMusicVolume)
	player.Play()
	globalMusicPlayer = player
}

// FadeOutMusic starts a music fade out transition
func FadeOutMusic() {
	if globalMusicPlayer == nil {
		return
	}
	globalFadeTimer = cfg.Audio.MusicFadeDuration
	globalFadeDuration = cfg.Audio.MusicFadeDuration
	globalFadeStart = globalMusicVolume
}

// StopMusic immediately stops the current music
func StopMusic() {
	if globalMusicPlayer != nil {
		_ = globalMusicPlayer.Close()
		globalMusicPlayer = nil
	}
	globalFadeTimer = 0
}

// SetMusicVolume changes the music volume (0.0 - 1.0)
func SetMusicVolume(volume float64) {
	globalMusicVolume = volume
	if globalMusicPlayer != nil && globalFadeTimer == 0 {
		globalMusicPlayer.SetVolume(volume)
	}
}

// SetSFXVolume changes the SFX volume (0.0 - 1.0)
func SetSFXVolume(volume float64) {
	globalSFXVolume = volume
}
