package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadFileMissingIsNotAnError(t *testing.T) {
	fc, err := LoadFile(filepath.Join(t.TempDir(), "nope.toml"))
	if err != nil {
		t.Fatalf("LoadFile() error = %v, want nil", err)
	}
	if fc.Scores.URL != nil {
		t.Fatalf("Scores.URL = %v, want nil", *fc.Scores.URL)
	}
}

func TestLoadFileEmptyPath(t *testing.T) {
	if _, err := LoadFile(""); err == nil {
		t.Fatalf("LoadFile(\"\") error = nil, want error")
	}
}

func TestLoadFileApply(t *testing.T) {
	savedWorld, savedScores, savedFade := World, Scores, Fade
	t.Cleanup(func() {
		World, Scores, Fade = savedWorld, savedScores, savedFade
	})

	path := filepath.Join(t.TempDir(), "config.toml")
	data := `
[world]
race-distance = 5000

[race]
fade-ms = 250

[scores]
url = "http://localhost:8080/scores"
limit = 20
`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	fc, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile() error = %v", err)
	}
	fc.Apply()

	if World.RaceDistance != 5000 {
		t.Fatalf("RaceDistance = %v, want 5000", World.RaceDistance)
	}
	if World.SpawnDistance != savedWorld.SpawnDistance {
		t.Fatalf("SpawnDistance = %v, want untouched %v", World.SpawnDistance, savedWorld.SpawnDistance)
	}
	if Fade.Duration != 250*time.Millisecond {
		t.Fatalf("Fade.Duration = %v, want 250ms", Fade.Duration)
	}
	if Scores.URL != "http://localhost:8080/scores" || Scores.Limit != 20 {
		t.Fatalf("Scores = %+v", Scores)
	}
}

func TestApplyIgnoresOutOfRange(t *testing.T) {
	savedSkier, savedWorld, savedAudio := Skier, World, Audio
	t.Cleanup(func() {
		Skier, World, Audio = savedSkier, savedWorld, savedAudio
	})

	path := filepath.Join(t.TempDir(), "config.toml")
	data := `
[skier]
max-speed-straight = 0
max-speed-turning = -4
turn-rate = 0.05

[world]
spawn-distance = 0
race-distance = -1

[audio]
music = -0.5
`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	fc, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile() error = %v", err)
	}
	fc.Apply()

	if Skier.MaxSpeedStraight != savedSkier.MaxSpeedStraight || Skier.MaxSpeedTurning != savedSkier.MaxSpeedTurning {
		t.Fatalf("max speeds = %v/%v, want defaults kept", Skier.MaxSpeedStraight, Skier.MaxSpeedTurning)
	}
	if Skier.TurnRate != 0.05 {
		t.Fatalf("TurnRate = %v, want 0.05", Skier.TurnRate)
	}
	if World != savedWorld {
		t.Fatalf("World = %+v, want defaults kept", World)
	}
	if Audio.DefaultMusicVol != savedAudio.DefaultMusicVol {
		t.Fatalf("music volume = %v, want default kept", Audio.DefaultMusicVol)
	}
}

func TestLoadFileBadSyntax(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("[world\nrace-distance = "), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	if _, err := LoadFile(path); err == nil {
		t.Fatalf("LoadFile() error = nil, want decode error")
	}
}

func TestPhaseString(t *testing.T) {
	if got := PhaseStartAnimation.String(); got != "start-animation" {
		t.Fatalf("PhaseStartAnimation.String() = %q", got)
	}
	if got := Phase(99).String(); got != "unknown" {
		t.Fatalf("Phase(99).String() = %q, want unknown", got)
	}
	if !PhaseCrashed.Simulates() || PhaseMenu.Simulates() {
		t.Fatalf("Simulates() wrong for crashed/menu")
	}
}

func TestObstacleTable(t *testing.T) {
	if ObstacleBarrel.Type().Weight != 0 {
		t.Fatalf("barrel weight = %v, want 0", ObstacleBarrel.Type().Weight)
	}
	if got := ObstacleKind(-1).Type().Name; got != Obstacles.Types[Obstacles.Default].Name {
		t.Fatalf("invalid kind falls back to %q", got)
	}
	for k := ObstacleKind(0); k < ObstacleKindCount; k++ {
		if k.Type().Height <= 0 || k.Type().Width <= 0 {
			t.Fatalf("%v has no size", k)
		}
	}
}
