package core

import (
	"time"

	"github.com/automoto/downhill/components"
	cfg "github.com/automoto/downhill/config"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
)

// StartFade begins a fade to target. midpoint, if set, runs once the screen
// is fully covered, just before the phase switches. It returns false if a
// fade is already running.
func StartFade(w donburi.World, target cfg.Phase, midpoint func(donburi.World)) bool {
	t := GetTransition(w)
	if t.Active() {
		return false
	}
	seconds := float32(cfg.Fade.Duration.Seconds())

	t.Stage = components.FadeOut
	t.StageStart = Now(w)
	t.Target = target
	t.Midpoint = midpoint
	t.Alpha = 0
	t.Out = gween.New(0, 1, seconds, ease.Linear)
	t.In = gween.New(1, 0, seconds, ease.Linear)
	return true
}

// UpdateTransition advances the fade from wall-clock time. It runs in every
// phase, including while the race itself is paused.
func UpdateTransition(w donburi.World) {
	t := GetTransition(w)
	now := Now(w)

	switch t.Stage {
	case components.FadeOut:
		alpha, done := t.Out.Set(stageSeconds(t, now))
		t.Alpha = float64(alpha)
		if !done {
			return
		}
		t.Alpha = 1
		if t.Midpoint != nil {
			t.Midpoint(w)
			t.Midpoint = nil
		}
		enterPhase(w, t.Target)
		t.Stage = components.FadeIn
		t.StageStart = t.StageStart.Add(cfg.Fade.Duration)
	case components.FadeIn:
		alpha, done := t.In.Set(stageSeconds(t, now))
		t.Alpha = float64(alpha)
		if done {
			t.Stage = components.FadeIdle
			t.Alpha = 0
			t.Out, t.In = nil, nil
		}
	default:
		t.Alpha = 0
	}
}

func stageSeconds(t *components.TransitionData, now time.Time) float32 {
	elapsed := now.Sub(t.StageStart)
	if elapsed < 0 {
		return 0
	}
	return float32(elapsed.Seconds())
}
