package core

import (
	"github.com/automoto/downhill/components"
	cfg "github.com/automoto/downhill/config"
	"github.com/automoto/downhill/shared/gamemath"
	"github.com/yohamta/donburi"
)

// ResetSlope restores the tiles and clears the trail.
func ResetSlope(sl *components.SlopeData) {
	h := float64(cfg.C.Height)
	sl.TileHeight = h
	sl.Tile1Y = 0
	sl.Tile2Y = h
	sl.Trail = sl.Trail[:0]
}

// StepSlope scrolls the background and the trail by downhill and records
// one new trail sample at the skier's ski tails.
func StepSlope(sl *components.SlopeData, s *components.SkierData, downhill float64) {
	sl.Tile1Y, sl.Tile2Y = gamemath.WrapTiles(sl.Tile1Y-downhill, sl.Tile2Y-downhill, sl.TileHeight)

	for i := range sl.Trail {
		sl.Trail[i].LeftY -= downhill
		sl.Trail[i].RightY -= downhill
	}
	for len(sl.Trail) > 0 && sl.Trail[0].LeftY < cfg.World.TrailEvictY {
		sl.Trail = sl.Trail[1:]
	}

	c := cfg.Skier
	left, right := gamemath.SkiBacks(s.X, s.Y, s.Angle, c.BodyHeight, c.SkiHeight, c.SkiSpacing)
	sl.Trail = append(sl.Trail, components.TrailPoint{
		LeftX: left.X, LeftY: left.Y,
		RightX: right.X, RightY: right.Y,
	})
}

// UpdateSlope runs the world scroller while the skier is moving.
func UpdateSlope(w donburi.World) {
	if !Phase(w).Simulates() {
		return
	}
	s := GetSkier(w)
	StepSlope(GetSlope(w), s, s.Downhill)
}
