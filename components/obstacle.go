package components

import (
	"math/rand/v2"

	cfg "github.com/automoto/downhill/config"
	"github.com/yohamta/donburi"
)

// Obstacle is a single hazard on the slope, positioned at its sprite centre.
type Obstacle struct {
	Kind cfg.ObstacleKind
	X, Y float64
}

// ObstacleFieldData owns the live obstacles and the finish marker.
// Obstacles are appended in increasing y and evicted from the front, so the
// slice order must never be changed.
type ObstacleFieldData struct {
	Obstacles  []Obstacle
	SinceSpawn float64 // Distance travelled since the last spawn
	NextSpawn  float64 // Randomized distance to the next spawn

	HasFinish    bool
	FinishY      float64
	FinishPassed bool
	Homing       bool

	Rand *rand.Rand
}

var ObstacleField = donburi.NewComponentType[ObstacleFieldData]()
