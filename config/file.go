package config

import (
	"fmt"
	"math"
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"
)

// FileConfig represents the TOML configuration file. Every field is a
// pointer so an absent key leaves the built-in default alone.
type FileConfig struct {
	Skier  SkierFile  `toml:"skier"`
	World  WorldFile  `toml:"world"`
	Race   RaceFile   `toml:"race"`
	Scores ScoresFile `toml:"scores"`
	Audio  AudioFile  `toml:"audio"`
}

// SkierFile maps skier tuning.
type SkierFile struct {
	MaxSpeedStraight *float64 `toml:"max-speed-straight"`
	MaxSpeedTurning  *float64 `toml:"max-speed-turning"`
	TurnRate         *float64 `toml:"turn-rate"`
	TurnSpeedPenalty *float64 `toml:"turn-speed-penalty"`
	JumpMillis       *int     `toml:"jump-ms"`
}

// WorldFile maps race length and spawn spacing.
type WorldFile struct {
	RaceDistance  *float64 `toml:"race-distance"`
	SpawnDistance *float64 `toml:"spawn-distance"`
	SpawnCutoff   *float64 `toml:"spawn-cutoff"`
}

// RaceFile maps phase timings.
type RaceFile struct {
	ResultsDelayMillis *int `toml:"results-delay-ms"`
	FadeMillis         *int `toml:"fade-ms"`
}

// ScoresFile maps the leaderboard client.
type ScoresFile struct {
	URL           *string `toml:"url"`
	Limit         *int    `toml:"limit"`
	TimeoutMillis *int    `toml:"timeout-ms"`
}

// AudioFile maps volumes.
type AudioFile struct {
	Music *float64 `toml:"music"`
	SFX   *float64 `toml:"sfx"`
}

// LoadFile reads a TOML config from the given path. Missing file is not an error.
func LoadFile(path string) (FileConfig, error) {
	if path == "" {
		return FileConfig{}, fmt.Errorf("config path is empty")
	}
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return FileConfig{}, nil
		}
		return FileConfig{}, fmt.Errorf("failed to stat config: %w", err)
	}
	var fc FileConfig
	if _, err := toml.DecodeFile(path, &fc); err != nil {
		return FileConfig{}, fmt.Errorf("failed to decode config: %w", err)
	}
	return fc, nil
}

// Apply copies every set field onto the global configuration. Values out
// of range for their field are ignored.
func (fc FileConfig) Apply() {
	setPositive(&Skier.MaxSpeedStraight, fc.Skier.MaxSpeedStraight)
	setPositive(&Skier.MaxSpeedTurning, fc.Skier.MaxSpeedTurning)
	setPositive(&Skier.TurnRate, fc.Skier.TurnRate)
	setNonNegative(&Skier.TurnSpeedPenalty, fc.Skier.TurnSpeedPenalty)
	setMillis(&Skier.JumpDuration, fc.Skier.JumpMillis)

	setPositive(&World.RaceDistance, fc.World.RaceDistance)
	setPositive(&World.SpawnDistance, fc.World.SpawnDistance)
	setNonNegative(&World.SpawnCutoff, fc.World.SpawnCutoff)

	setMillis(&Race.ResultsDelay, fc.Race.ResultsDelayMillis)
	setMillis(&Fade.Duration, fc.Race.FadeMillis)

	if fc.Scores.URL != nil {
		Scores.URL = *fc.Scores.URL
	}
	if fc.Scores.Limit != nil && *fc.Scores.Limit > 0 {
		Scores.Limit = *fc.Scores.Limit
	}
	setMillis(&Scores.Timeout, fc.Scores.TimeoutMillis)

	setNonNegative(&Audio.DefaultMusicVol, fc.Audio.Music)
	setNonNegative(&Audio.DefaultSFXVol, fc.Audio.SFX)
}

// setPositive is for divisors and lengths; zero would stall or NaN the
// simulation.
func setPositive(dst *float64, v *float64) {
	if v != nil && *v > 0 && !math.IsInf(*v, 0) {
		*dst = *v
	}
}

func setNonNegative(dst *float64, v *float64) {
	if v != nil && *v >= 0 && !math.IsInf(*v, 0) {
		*dst = *v
	}
}

func setMillis(dst *time.Duration, v *int) {
	if v != nil && *v >= 0 {
		*dst = time.Duration(*v) * time.Millisecond
	}
}

// XDGConfigHome returns the XDG config home or a default fallback.
func XDGConfigHome() string {
	if v := os.Getenv("XDG_CONFIG_HOME"); v != "" {
		return v
	}
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return "."
	}
	return filepath.Join(home, ".config")
}

// DefaultConfigPath returns the default TOML config path.
func DefaultConfigPath() string {
	return filepath.Join(XDGConfigHome(), "downhill", "config.toml")
}
