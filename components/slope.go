package components

import "github.com/yohamta/donburi"

// TrailPoint is one sample of the two ski tails.
type TrailPoint struct {
	LeftX, LeftY   float64
	RightX, RightY float64
}

// SlopeData holds the two looping background tiles and the ski trail.
// Trail is oldest first; samples are evicted from the front.
type SlopeData struct {
	Tile1Y     float64
	Tile2Y     float64
	TileHeight float64
	Trail      []TrailPoint
}

var Slope = donburi.NewComponentType[SlopeData]()
