package systems

import (
	"time"

	"github.com/automoto/downhill/core"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// Default is the only render layer; renderers draw in the order they are added.
const Default ecs.LayerID = 0

// UpdateClock stamps the frame with wall-clock time. Must run first.
func UpdateClock(e *ecs.ECS) {
	core.SetNow(e.World, time.Now())
}

// Sim adapts a headless simulation system to the ecs scheduler.
func Sim(fn func(w donburi.World)) ecs.System {
	return func(e *ecs.ECS) {
		fn(e.World)
	}
}

// snapshotOf returns the render snapshot stored by the last update.
func snapshotOf(e *ecs.ECS) *core.Snapshot {
	return core.CurrentSnapshot(e.World)
}
