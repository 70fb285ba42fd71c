package systems

import (
	"fmt"
	"image/color"

	cfg "github.com/automoto/downhill/config"
	"github.com/automoto/downhill/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

var (
	hitColor      = color.RGBA{R: 255, A: 255}
	disabledColor = color.RGBA{R: 120, G: 120, B: 120, A: 255}
)

// DrawDebug draws hit circles and simulation counters when debug is on.
func DrawDebug(e *ecs.ECS, screen *ebiten.Image) {
	s := snapshotOf(e)
	if !s.Debug {
		return
	}

	c := hitColor
	if !s.Collision {
		c = disabledColor
	}

	if onSlope(s.Phase) {
		sk := s.Skier
		vector.StrokeCircle(screen, float32(sk.X), float32(sk.Y+cfg.Skier.HitOffsetY), float32(cfg.Skier.HitRadius), 1, c, true)
		for _, o := range s.Obstacles {
			t := o.Kind.Type()
			oc := c
			if t.Jumpable && sk.Airborne {
				oc = disabledColor
			}
			vector.StrokeCircle(screen, float32(o.X), float32(o.Y+t.HitOffset), float32(t.HitRadius), 1, oc, true)
		}
		if s.HasFinish {
			vector.StrokeLine(screen, 0, float32(s.FinishY), float32(cfg.C.Width), float32(s.FinishY), 1, cfg.Blue, false)
		}
	}

	lines := []string{
		fmt.Sprintf("phase %s  tick %d  tps %.0f", s.Phase, s.Tick, ebiten.ActualTPS()),
		fmt.Sprintf("obstacles %d  spawned %d  evicted %d", len(s.Obstacles), s.Spawned, s.Evicted),
		fmt.Sprintf("trail %d  homing %t", len(s.Trail), s.Homing),
		fmt.Sprintf("collision %t (F2)", s.Collision),
	}
	y := screen.Bounds().Dy() - 8 - (len(lines)-1)*14
	for i, l := range lines {
		drawText(screen, l, fonts.Small, 8, y+i*14, cfg.Ink)
	}
}
