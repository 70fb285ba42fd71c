package systems

import (
	"encoding/json"
	"log"

	cfg "github.com/automoto/downhill/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/quasilyte/gdata"
)

// SavedSettings represents the window and sound preferences stored on disk.
type SavedSettings struct {
	Fullscreen bool `json:"fullscreen"`
	Muted      bool `json:"muted"`
}

var gdataManager *gdata.Manager
var settings SavedSettings

// InitPersistence opens the settings store and applies what it holds.
// Without it the game still runs; preferences just aren't kept.
func InitPersistence() error {
	m, err := gdata.Open(gdata.Config{
		AppName: cfg.Scores.AppName,
	})
	if err != nil {
		return err
	}
	gdataManager = m

	data, err := gdataManager.LoadItem("settings")
	if err != nil {
		log.Printf("Warning: Could not load settings: %v", err)
		return nil
	}
	if len(data) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, &settings); err != nil {
		log.Printf("Warning: Could not parse saved settings: %v", err)
		return nil
	}
	applySettings()
	return nil
}

func applySettings() {
	ebiten.SetFullscreen(settings.Fullscreen)
	if settings.Muted {
		SetMusicVolume(0)
		SetSFXVolume(0)
	} else {
		SetMusicVolume(cfg.Audio.DefaultMusicVol)
		SetSFXVolume(cfg.Audio.DefaultSFXVol)
	}
}

func saveSettings() {
	if gdataManager == nil {
		return
	}
	data, err := json.Marshal(settings)
	if err != nil {
		log.Printf("Warning: Could not serialize settings: %v", err)
		return
	}
	if err := gdataManager.SaveItem("settings", data); err != nil {
		log.Printf("Warning: Could not save settings: %v", err)
	}
}

// ToggleFullscreen flips fullscreen and remembers the choice.
func ToggleFullscreen() {
	settings.Fullscreen = !settings.Fullscreen
	applySettings()
	saveSettings()
}

// ToggleMute silences or restores all sound and remembers the choice.
func ToggleMute() {
	settings.Muted = !settings.Muted
	applySettings()
	saveSettings()
}
