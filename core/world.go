// Package core is the headless race simulation. It runs on a donburi world
// and has no dependency on ebiten, so the whole race can be stepped in tests
// and tools without a window.
package core

import (
	"math/rand/v2"
	"time"

	"github.com/automoto/downhill/archetypes"
	"github.com/automoto/downhill/components"
	cfg "github.com/automoto/downhill/config"
	"github.com/automoto/downhill/scores"
	"github.com/yohamta/donburi"
)

// Options configures a new race world.
type Options struct {
	Board     *scores.Board
	Seed      uint64
	Now       time.Time
	Debug     bool
	Collision bool
	SkipMenu  bool // Start in the countdown instead of loading/menu
	Assets    int  // Asset steps the loading phase waits for
}

// NewWorld creates a world with every singleton the simulation needs.
func NewWorld(opts Options) donburi.World {
	w := donburi.NewWorld()

	archetypes.Session.Spawn(w)
	archetypes.Skier.Spawn(w)
	archetypes.Slope.Spawn(w)
	archetypes.Controls.Spawn(w)
	archetypes.Backend.Spawn(w)

	GetClock(w).Now = opts.Now
	GetScores(w).Board = opts.Board
	GetLoading(w).Total = opts.Assets
	GetDebug(w).Enabled = opts.Debug

	field := GetObstacleField(w)
	field.Rand = rand.New(rand.NewPCG(opts.Seed, opts.Seed^0x9e3779b97f4a7c15))

	race := GetRace(w)
	race.CollisionEnabled = opts.Collision
	race.PhaseStart = opts.Now

	ResetSkier(GetSkier(w))
	ResetSlope(GetSlope(w))
	ResetObstacleField(field)

	if opts.SkipMenu {
		GetLoading(w).Done = opts.Assets
		startCountdown(w)
	}
	return w
}

func singleton[T any](w donburi.World, c *donburi.ComponentType[T]) *T {
	entry, ok := c.First(w)
	if !ok {
		entry = w.Entry(w.Create(c))
	}
	return c.Get(entry)
}

// GetClock returns the frame clock, creating it if needed.
func GetClock(w donburi.World) *components.ClockData {
	return singleton(w, components.Clock)
}

func GetRace(w donburi.World) *components.RaceData {
	return singleton(w, components.Race)
}

func GetSkier(w donburi.World) *components.SkierData {
	return singleton(w, components.Skier)
}

func GetSlope(w donburi.World) *components.SlopeData {
	return singleton(w, components.Slope)
}

func GetObstacleField(w donburi.World) *components.ObstacleFieldData {
	return singleton(w, components.ObstacleField)
}

func GetTransition(w donburi.World) *components.TransitionData {
	return singleton(w, components.Transition)
}

func GetCinematic(w donburi.World) *components.CinematicData {
	return singleton(w, components.Cinematic)
}

func GetInput(w donburi.World) *components.InputData {
	return singleton(w, components.Input)
}

func GetAudio(w donburi.World) *components.AudioData {
	return singleton(w, components.Audio)
}

func GetScores(w donburi.World) *components.ScoresData {
	return singleton(w, components.Scores)
}

func GetLoading(w donburi.World) *components.LoadingData {
	return singleton(w, components.Loading)
}

func GetDebug(w donburi.World) *components.DebugData {
	return singleton(w, components.Debug)
}

// Now returns the current frame time.
func Now(w donburi.World) time.Time {
	return GetClock(w).Now
}

// SetNow advances the frame clock.
func SetNow(w donburi.World, t time.Time) {
	c := GetClock(w)
	c.Now = t
	c.Tick++
}

// Phase returns the current race phase.
func Phase(w donburi.World) cfg.Phase {
	return GetRace(w).Phase
}
