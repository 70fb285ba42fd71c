package components

import (
	cfg "github.com/automoto/downhill/config"
	"github.com/yohamta/donburi"
)

// MusicCommand is a request for the audio system to change the music state.
type MusicCommand int

const (
	MusicKeep MusicCommand = iota
	MusicPlay
	MusicStop
	MusicFadeOut
)

// AudioData queues sound requests raised by the simulation (singleton component).
// The audio system drains it once per frame.
type AudioData struct {
	PendingSFX []cfg.SoundID
	Music      MusicCommand
}

var Audio = donburi.NewComponentType[AudioData]()

// Play queues a sound effect.
func (a *AudioData) Play(id cfg.SoundID) {
	a.PendingSFX = append(a.PendingSFX, id)
}
