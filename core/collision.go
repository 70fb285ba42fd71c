package core

import (
	"github.com/automoto/downhill/components"
	cfg "github.com/automoto/downhill/config"
	"github.com/automoto/downhill/shared/gamemath"
	"github.com/yohamta/donburi"
)

// CheckCollision returns the first obstacle the skier's hit circle overlaps.
// Jumpable obstacles are ignored while the skier is airborne.
func CheckCollision(s *components.SkierData, obstacles []components.Obstacle, enabled bool) (*components.Obstacle, bool) {
	if !enabled {
		return nil, false
	}
	c := cfg.Skier
	hx, hy := s.X, s.Y+c.HitOffsetY

	for i := range obstacles {
		o := &obstacles[i]
		t := o.Kind.Type()
		if t.Jumpable && s.Airborne {
			continue
		}
		if gamemath.CirclesOverlap(hx, hy, c.HitRadius, o.X, o.Y+t.HitOffset, t.HitRadius) {
			return o, true
		}
	}
	return nil, false
}

// UpdateCollisions flags a hit on the race state while racing. In debug
// mode the toggle key switches collisions on and off.
func UpdateCollisions(w donburi.World) {
	race := GetRace(w)
	if GetDebug(w).Enabled && GetInput(w).JustPressed(cfg.ActionToggleCollision) {
		race.CollisionEnabled = !race.CollisionEnabled
	}
	if race.Phase != cfg.PhaseRacing {
		return
	}

	hit, ok := CheckCollision(GetSkier(w), GetObstacleField(w).Obstacles, race.CollisionEnabled)
	if !ok {
		return
	}
	blamed := *hit
	race.Hit = &blamed
}
