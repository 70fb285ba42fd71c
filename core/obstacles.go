package core

import (
	"math/rand/v2"

	"github.com/automoto/downhill/components"
	cfg "github.com/automoto/downhill/config"
	"github.com/automoto/downhill/shared/gamemath"
	"github.com/yohamta/donburi"
)

// ResetObstacleField clears obstacles and the finish marker and re-rolls the
// first spawn distance. The random source is kept.
func ResetObstacleField(f *components.ObstacleFieldData) {
	f.Obstacles = f.Obstacles[:0]
	f.SinceSpawn = 0
	f.HasFinish = false
	f.FinishY = 0
	f.FinishPassed = false
	f.Homing = false
	if f.Rand == nil {
		f.Rand = rand.New(rand.NewPCG(1, 2))
	}
	f.NextSpawn = nextSpawnDistance(f.Rand)
}

func nextSpawnDistance(r *rand.Rand) float64 {
	c := cfg.World
	return c.SpawnDistance * (c.SpawnFactorMin + r.Float64()*c.SpawnFactorRange)
}

// PickObstacleKind draws a kind by cumulative weight over the kinds in
// declaration order. Kinds with weight 0 are never chosen.
func PickObstacleKind(r *rand.Rand) cfg.ObstacleKind {
	total := 0.0
	for _, t := range cfg.Obstacles.Types {
		total += t.Weight
	}
	if total <= 0 {
		return cfg.Obstacles.Default
	}

	remaining := r.Float64() * total
	for k, t := range cfg.Obstacles.Types {
		if t.Weight <= 0 {
			continue
		}
		remaining -= t.Weight
		if remaining <= 0 {
			return cfg.ObstacleKind(k)
		}
	}
	return cfg.Obstacles.Default
}

// SpawnX places a new obstacle of kind k according to its spawn policy.
func SpawnX(k cfg.ObstacleKind, r *rand.Rand) float64 {
	t := k.Type()
	width := float64(cfg.C.Width)
	switch t.Policy {
	case cfg.SpawnLeft:
		return t.Width
	case cfg.SpawnRight:
		return width - t.Width
	default:
		return t.Width/2 + r.Float64()*(width-t.Width)
	}
}

// StepObstacles advects, evicts and spawns obstacles and moves the finish
// marker. Spawning and the finish approach only run while racing.
func StepObstacles(f *components.ObstacleFieldData, s *components.SkierData, distance float64, racing bool) (spawned, evicted int) {
	downhill := s.Downhill

	for i := range f.Obstacles {
		f.Obstacles[i].Y -= downhill
	}
	for len(f.Obstacles) > 0 && f.Obstacles[0].Y < -f.Obstacles[0].Kind.Type().Height {
		f.Obstacles = f.Obstacles[1:]
		evicted++
	}

	if f.HasFinish {
		f.FinishY -= downhill
	}

	if !racing {
		return spawned, evicted
	}

	raceDistance := cfg.World.RaceDistance
	f.SinceSpawn += downhill
	if distance < raceDistance*cfg.World.SpawnCutoff && f.SinceSpawn > f.NextSpawn {
		f.SinceSpawn = 0
		f.NextSpawn = nextSpawnDistance(f.Rand)

		kind := PickObstacleKind(f.Rand)
		f.Obstacles = append(f.Obstacles, components.Obstacle{
			Kind: kind,
			X:    SpawnX(kind, f.Rand),
			Y:    float64(cfg.C.Height) + kind.Type().Height,
		})
		spawned++
	}

	height := float64(cfg.C.Height)
	if remaining := raceDistance - distance; !f.HasFinish && remaining < height {
		f.HasFinish = true
		f.FinishY = height + remaining
	}

	if f.HasFinish {
		approachFinish(f, s)
	}
	return spawned, evicted
}

// approachFinish steers the skier toward the finish gap once the marker is
// close and flags completion when it is well behind.
func approachFinish(f *components.ObstacleFieldData, s *components.SkierData) {
	c := cfg.Finish
	if f.FinishY-s.Y < c.HomingRange {
		f.Homing = true
		s.X = clampSkierX(s.X + (c.GapX-s.X)*c.HomingPull)
		s.Angle = gamemath.ApproachZero(s.Angle, c.AngleDecay)
	}
	if f.FinishY < s.Y-c.PassMargin {
		f.FinishPassed = true
	}
}

// UpdateObstacles runs the obstacle field for the current phase.
func UpdateObstacles(w donburi.World) {
	phase := Phase(w)
	if !phase.Simulates() {
		return
	}
	spawned, evicted := StepObstacles(GetObstacleField(w), GetSkier(w), GetRace(w).Distance, phase == cfg.PhaseRacing)

	debug := GetDebug(w)
	debug.Spawned += spawned
	debug.Evicted += evicted
}
