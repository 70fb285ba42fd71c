package core

import (
	"time"

	"github.com/automoto/downhill/components"
	cfg "github.com/automoto/downhill/config"
	"github.com/automoto/downhill/shared/leaderboard"
	"github.com/yohamta/donburi"
)

// Snapshot is a read-only copy of everything the renderers draw. Slices are
// copies, so drawing can never reach back into the simulation.
type Snapshot struct {
	Phase cfg.Phase
	Tick  uint64
	Now   time.Time

	Skier components.SkierData

	Tile1Y, Tile2Y, TileHeight float64
	Trail                      []components.TrailPoint

	Obstacles []components.Obstacle
	HasFinish bool
	FinishY   float64
	Homing    bool

	Distance  float64 // Metres
	Remaining float64 // Metres to the finish
	Progress  float64 // 0..1
	Elapsed   time.Duration

	Countdown int  // Beat shown during the start animation
	ShowGo    bool // "GO" banner at the start of the race

	Result    leaderboard.Entry
	HasResult bool
	Name      string
	Submitted bool
	Rank      int

	Entries         []leaderboard.Entry
	LeaderboardBusy bool
	LoadingProgress float64
	LoadingCurrent  string
	LoadingFailed   []string

	Alpha float64

	Debug            bool
	Collision        bool
	Spawned, Evicted int
}

var frameSnapshot = donburi.NewComponentType[Snapshot]()

// UpdateSnapshot stores a fresh snapshot in w. It runs last in a tick so
// every renderer of the frame draws the same state.
func UpdateSnapshot(w donburi.World) {
	*CurrentSnapshot(w) = TakeSnapshot(w)
}

// CurrentSnapshot returns the snapshot stored by the last tick, taking one
// if no tick has run yet.
func CurrentSnapshot(w donburi.World) *Snapshot {
	entry, ok := frameSnapshot.First(w)
	if !ok {
		snap := TakeSnapshot(w)
		entry = w.Entry(w.Create(frameSnapshot))
		frameSnapshot.SetValue(entry, snap)
	}
	return frameSnapshot.Get(entry)
}

// TakeSnapshot copies the render state out of w.
func TakeSnapshot(w donburi.World) Snapshot {
	clock := GetClock(w)
	race := GetRace(w)
	slope := GetSlope(w)
	field := GetObstacleField(w)
	loading := GetLoading(w)
	debug := GetDebug(w)

	s := Snapshot{
		Phase: race.Phase,
		Tick:  clock.Tick,
		Now:   clock.Now,

		Skier: *GetSkier(w),

		Tile1Y:     slope.Tile1Y,
		Tile2Y:     slope.Tile2Y,
		TileHeight: slope.TileHeight,
		Trail:      append([]components.TrailPoint(nil), slope.Trail...),

		Obstacles: append([]components.Obstacle(nil), field.Obstacles...),
		HasFinish: field.HasFinish,
		FinishY:   field.FinishY,
		Homing:    field.Homing,

		Distance: race.Meters(),
		Elapsed:  race.Elapsed,

		Result:    race.Result,
		HasResult: race.HasResult,
		Name:      race.Name,
		Submitted: race.Submitted,
		Rank:      race.Rank,

		LoadingProgress: loading.Progress(),
		LoadingCurrent:  loading.Current,
		LoadingFailed:   append([]string(nil), loading.Failed...),

		Alpha: GetTransition(w).Alpha,

		Debug:     debug.Enabled,
		Collision: race.CollisionEnabled,
		Spawned:   debug.Spawned,
		Evicted:   debug.Evicted,
	}

	total := cfg.World.RaceDistance
	if total > 0 {
		s.Progress = min(max(race.Distance/total, 0), 1)
	}
	s.Remaining = max(total-race.Distance, 0)
	if cfg.World.PixelsPerMeter > 0 {
		s.Remaining /= cfg.World.PixelsPerMeter
	}

	switch race.Phase {
	case cfg.PhaseStartAnimation:
		s.Countdown = CountdownBeat(clock.Now.Sub(GetCinematic(w).Start))
	case cfg.PhaseRacing:
		s.ShowGo = clock.Now.Sub(race.RaceStart) < cfg.Race.GoDuration
	}

	if b := board(w); b != nil {
		s.Entries = append([]leaderboard.Entry(nil), b.Entries()...)
		s.LeaderboardBusy = b.Loading()
	}
	return s
}
