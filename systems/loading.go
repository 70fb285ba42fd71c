package systems

import (
	"log"

	"github.com/automoto/downhill/assets"
	"github.com/automoto/downhill/core"
	"github.com/yohamta/donburi/ecs"
)

// NewUpdateLoading runs one asset step per frame so the loading screen
// keeps drawing. Failures are recorded and the loader moves on.
func NewUpdateLoading(loader *assets.Loader) ecs.System {
	return func(e *ecs.ECS) {
		l := core.GetLoading(e.World)
		l.Total = loader.Total()

		name, ok, err := loader.Next()
		if !ok {
			l.Current = ""
			return
		}
		l.Current = name
		l.Done++
		if err != nil {
			log.Printf("Warning: could not load %s: %v", name, err)
			l.Failed = append(l.Failed, name)
		}
	}
}
