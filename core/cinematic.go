package core

import (
	"time"

	cfg "github.com/automoto/downhill/config"
	"github.com/yohamta/donburi"
)

// startCountdown enters the start animation and starts the 3-2-1 countdown.
func startCountdown(w donburi.World) {
	enterPhase(w, cfg.PhaseStartAnimation)

	c := GetCinematic(w)
	c.Start = Now(w)
	c.Running = true
	c.Done = false
	c.LastBeat = 0
}

// CountdownBeat returns the number shown at elapsed time into the countdown,
// or 0 once it has run out.
func CountdownBeat(elapsed time.Duration) int {
	steps := cfg.Race.CountdownSteps
	if elapsed < 0 {
		return steps
	}
	if cfg.Race.CountdownStep <= 0 {
		return 0
	}
	beat := steps - int(elapsed/cfg.Race.CountdownStep)
	if beat < 0 {
		return 0
	}
	return beat
}

// UpdateCinematic runs the countdown and raises Done when it finishes. The
// race state machine picks Done up on the same tick.
func UpdateCinematic(w donburi.World) {
	c := GetCinematic(w)
	if !c.Running {
		return
	}

	beat := CountdownBeat(Now(w).Sub(c.Start))
	if beat == c.LastBeat {
		return
	}
	c.LastBeat = beat

	audio := GetAudio(w)
	if beat > 0 {
		audio.Play(cfg.SoundCountdown)
		return
	}
	audio.Play(cfg.SoundGo)
	c.Running = false
	c.Done = true
}
