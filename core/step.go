package core

import (
	"time"

	"github.com/yohamta/donburi"
)

// Systems is the per-tick update order. Input must already be in the world.
var Systems = []func(w donburi.World){
	UpdateScores,
	UpdateSkier,
	UpdateSlope,
	UpdateObstacles,
	UpdateCollisions,
	UpdateCinematic,
	UpdateRace,
	UpdateTransition,
	UpdateSnapshot,
}

// Step sets the frame clock to now and runs one tick.
func Step(w donburi.World, now time.Time) {
	SetNow(w, now)
	for _, system := range Systems {
		system(w)
	}
}
