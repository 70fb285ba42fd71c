package components

import (
	"time"

	"github.com/yohamta/donburi"
)

// SkierData is the skier's kinematic state.
type SkierData struct {
	X, Y  float64 // Y is a fixed screen row
	Angle float64 // Radians, positive turns right
	Speed float64

	// Forward progress produced by the last step; drives scroll, distance
	// and obstacle advection for the rest of the tick.
	Downhill float64
	Drift    float64 // Lateral displacement applied by the last step

	Airborne    bool
	JumpStart   time.Time
	FrozenDrift float64
}

var Skier = donburi.NewComponentType[SkierData]()

// Landing returns when the current jump ends.
func (s *SkierData) Landing(duration time.Duration) time.Time {
	return s.JumpStart.Add(duration)
}
