package scenes

import (
	"image/color"
	"log"
	"sync"
	"time"

	"github.com/automoto/downhill/assets"
	cfg "github.com/automoto/downhill/config"
	"github.com/automoto/downhill/core"
	"github.com/automoto/downhill/systems"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
)

// SlopeScene runs the whole game: loading, menu, race and scoreboard are
// phases of one world rather than separate scenes.
type SlopeScene struct {
	ecs  *ecs.ECS
	opts core.Options
	once sync.Once
}

// NewSlopeScene creates the scene. The world is built on the first Update.
func NewSlopeScene(opts core.Options) *SlopeScene {
	return &SlopeScene{opts: opts}
}

func (s *SlopeScene) Update() {
	s.once.Do(s.configure)
	s.ecs.Update()
}

func (s *SlopeScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if s.ecs == nil {
		return
	}
	s.ecs.Draw(screen)
}

func (s *SlopeScene) configure() {
	loader := assets.NewLoader(assets.GameSteps(systems.AudioLoader(), !cfg.Debug.NoMusic)...)

	opts := s.opts
	opts.Assets = loader.Total()
	opts.Now = time.Now()

	// Skipping the menu skips the loading screen too, so load up front.
	if opts.SkipMenu {
		for {
			name, ok, err := loader.Next()
			if !ok {
				break
			}
			if err != nil {
				log.Printf("Warning: could not load %s: %v", name, err)
			}
		}
	}

	e := ecs.NewECS(core.NewWorld(opts))

	// Clock and input feed every simulation system
	e.AddSystem(systems.UpdateClock)
	e.AddSystem(systems.NewUpdateLoading(loader))
	e.AddSystem(systems.UpdateInput)
	for _, fn := range core.Systems {
		e.AddSystem(systems.Sim(fn))
	}

	// Audio drains what the simulation queued this tick
	e.AddSystem(systems.UpdateAudio)

	e.AddRenderer(systems.Default, systems.DrawSlope)
	e.AddRenderer(systems.Default, systems.DrawObstacles)
	e.AddRenderer(systems.Default, systems.DrawSkier)
	e.AddRenderer(systems.Default, systems.DrawHUD)
	e.AddRenderer(systems.Default, systems.DrawCountdown)
	e.AddRenderer(systems.Default, systems.DrawMenu)
	e.AddRenderer(systems.Default, systems.DrawScoreboard)
	e.AddRenderer(systems.Default, systems.DrawLoading)
	e.AddRenderer(systems.Default, systems.DrawDebug)
	e.AddRenderer(systems.Default, systems.DrawFade)

	s.ecs = e
}
