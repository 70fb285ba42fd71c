package components

import (
	"time"

	cfg "github.com/automoto/downhill/config"
	"github.com/automoto/downhill/shared/leaderboard"
	"github.com/yohamta/donburi"
)

// RaceData is the top-level phase state and the race counters.
type RaceData struct {
	Phase      cfg.Phase
	PhaseStart time.Time

	Distance  float64 // Pixels travelled downhill
	RaceStart time.Time
	Elapsed   time.Duration

	// Captured when the results fade starts.
	Result    leaderboard.Entry
	HasResult bool

	Name      string
	Submitted bool
	Rank      int

	CollisionEnabled bool
	Hit              *Obstacle // Obstacle blamed for the crash
	Leaving          bool      // Results fade already started
}

var Race = donburi.NewComponentType[RaceData]()

// Meters converts the travelled distance to display units.
func (r *RaceData) Meters() float64 {
	if cfg.World.PixelsPerMeter <= 0 {
		return r.Distance
	}
	return r.Distance / cfg.World.PixelsPerMeter
}
