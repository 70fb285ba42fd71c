package core

import (
	"time"

	"github.com/automoto/downhill/components"
	cfg "github.com/automoto/downhill/config"
	"github.com/automoto/downhill/shared/gamemath"
	"github.com/yohamta/donburi"
)

// ResetSkier puts the skier back at the start position.
func ResetSkier(s *components.SkierData) {
	*s = components.SkierData{
		X:     float64(cfg.C.Width) / 2,
		Y:     cfg.SkierStartY(),
		Speed: cfg.Skier.StartSpeed,
	}
}

// MaxSpeed is the speed cap for the skier's current angle.
func MaxSpeed(angle float64) float64 {
	c := cfg.Skier
	return gamemath.MaxSpeedForAngle(angle, c.MaxAngle, c.MaxSpeedStraight, c.MaxSpeedTurning)
}

// StepSkier integrates one racing tick and returns the downhill speed.
func StepSkier(s *components.SkierData, in *components.InputData, now time.Time) float64 {
	c := cfg.Skier

	switch {
	case in.Pressed(cfg.ActionFaster):
		s.Speed += c.FasterAccel
	case in.Pressed(cfg.ActionSlower):
		s.Speed -= c.SlowerDecel
	default:
		s.Speed -= c.IdleDecay
	}
	s.Speed = gamemath.Clamp(s.Speed, c.MinSpeed, MaxSpeed(s.Angle))

	if s.Airborne && !now.Before(s.Landing(c.JumpDuration)) {
		s.Airborne = false
	}

	if !s.Airborne {
		if in.Pressed(cfg.ActionTurnLeft) {
			s.Angle = max(s.Angle-c.TurnRate, -c.MaxAngle)
		}
		if in.Pressed(cfg.ActionTurnRight) {
			s.Angle = min(s.Angle+c.TurnRate, c.MaxAngle)
		}
		// A sharper angle lowers the cap.
		s.Speed = min(s.Speed, MaxSpeed(s.Angle))
	}

	if in.JustPressed(cfg.ActionJump) && !s.Airborne {
		s.Airborne = true
		s.JumpStart = now
		s.FrozenDrift = skierDrift(s)
	}

	if s.Airborne {
		s.Drift = s.FrozenDrift
	} else {
		s.Drift = skierDrift(s)
	}
	s.X = clampSkierX(s.X + s.Drift)

	s.Downhill = gamemath.DownhillSpeed(s.Speed, s.Angle, c.TurnSpeedPenalty)
	return s.Downhill
}

// SlideSkier runs one tick of the post-crash slide: speed decays to a stop
// while drift keeps following the angle held at the moment of the crash.
func SlideSkier(s *components.SkierData) float64 {
	c := cfg.Skier
	s.Speed = gamemath.DecaySpeed(s.Speed, c.CrashSlideFactor, c.CrashStopSpeed)
	s.Drift = skierDrift(s)
	s.X = clampSkierX(s.X + s.Drift)
	s.Downhill = s.Speed
	return s.Downhill
}

func skierDrift(s *components.SkierData) float64 {
	c := cfg.Skier
	return gamemath.Drift(s.Angle, s.Speed, c.MaxSpeedStraight, c.TurnFactorScale, c.DriftScale)
}

func clampSkierX(x float64) float64 {
	half := cfg.HalfBody()
	return gamemath.Clamp(x, half, float64(cfg.C.Width)-half)
}

// UpdateSkier advances the skier for the current phase and the race
// counters while racing.
func UpdateSkier(w donburi.World) {
	race := GetRace(w)
	s := GetSkier(w)

	switch race.Phase {
	case cfg.PhaseRacing:
		wasAirborne := s.Airborne
		now := Now(w)
		downhill := StepSkier(s, GetInput(w), now)

		race.Distance += downhill
		race.Elapsed = now.Sub(race.RaceStart)

		audio := GetAudio(w)
		if !wasAirborne && s.Airborne {
			audio.Play(cfg.SoundJump)
		} else if wasAirborne && !s.Airborne {
			audio.Play(cfg.SoundLand)
		}
	case cfg.PhaseCrashed:
		SlideSkier(s)
	default:
		s.Downhill = 0
		s.Drift = 0
	}
}
