package core

import (
	"testing"

	"github.com/automoto/downhill/components"
	cfg "github.com/automoto/downhill/config"
)

// skierOver places a skier whose hit point sits on the obstacle's hit point.
func skierOver(o components.Obstacle) *components.SkierData {
	return &components.SkierData{
		X: o.X,
		Y: o.Y + o.Kind.Type().HitOffset - cfg.Skier.HitOffsetY,
	}
}

func TestCheckCollisionHit(t *testing.T) {
	tree := components.Obstacle{Kind: cfg.ObstacleTree, X: 300, Y: 400}
	s := skierOver(tree)

	hit, ok := CheckCollision(s, []components.Obstacle{tree}, true)
	if !ok || hit.X != 300 {
		t.Fatalf("CheckCollision() = %v, %v; want the tree", hit, ok)
	}

	if _, ok := CheckCollision(s, []components.Obstacle{tree}, false); ok {
		t.Fatalf("collision reported with collisions disabled")
	}
}

func TestCheckCollisionRadiusIsStrict(t *testing.T) {
	tree := components.Obstacle{Kind: cfg.ObstacleTree, X: 300, Y: 400}
	reach := cfg.ObstacleTree.Type().HitRadius + cfg.Skier.HitRadius

	s := skierOver(tree)
	s.X += reach
	if _, ok := CheckCollision(s, []components.Obstacle{tree}, true); ok {
		t.Fatalf("touching circles reported as a hit")
	}
	s.X -= 0.5
	if _, ok := CheckCollision(s, []components.Obstacle{tree}, true); !ok {
		t.Fatalf("overlapping circles not reported")
	}
}

func TestCheckCollisionJump(t *testing.T) {
	rock := components.Obstacle{Kind: cfg.ObstacleRock, X: 200, Y: 300}
	tree := components.Obstacle{Kind: cfg.ObstacleTree, X: 200, Y: 300}

	s := skierOver(rock)
	s.Airborne = true
	if _, ok := CheckCollision(s, []components.Obstacle{rock}, true); ok {
		t.Fatalf("airborne skier hit a jumpable rock")
	}
	s.Airborne = false
	if _, ok := CheckCollision(s, []components.Obstacle{rock}, true); !ok {
		t.Fatalf("grounded skier passed through a rock")
	}

	s = skierOver(tree)
	s.Airborne = true
	if _, ok := CheckCollision(s, []components.Obstacle{tree}, true); !ok {
		t.Fatalf("airborne skier passed through a tree")
	}
}

func TestCheckCollisionFirstHitWins(t *testing.T) {
	a := components.Obstacle{Kind: cfg.ObstacleTree, X: 300, Y: 400}
	b := components.Obstacle{Kind: cfg.ObstacleSnowman, X: 302, Y: 412}
	s := skierOver(a)

	hit, ok := CheckCollision(s, []components.Obstacle{a, b}, true)
	if !ok || hit.Kind != cfg.ObstacleTree {
		t.Fatalf("blamed %v, want the tree", hit)
	}
}

func TestUpdateCollisionsToggle(t *testing.T) {
	d := newDriver(t, Options{Debug: true, Collision: true})
	d.step(frame, cfg.ActionToggleCollision)
	if GetRace(d.w).CollisionEnabled {
		t.Fatalf("toggle key did not disable collisions")
	}

	d = newDriver(t, Options{Collision: true})
	d.step(frame, cfg.ActionToggleCollision)
	if !GetRace(d.w).CollisionEnabled {
		t.Fatalf("toggle key honoured without debug")
	}
}
