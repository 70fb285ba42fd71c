package systems

import (
	"image/color"

	"github.com/automoto/downhill/assets"
	cfg "github.com/automoto/downhill/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

// onSlope reports whether the slope is visible behind the current phase.
func onSlope(p cfg.Phase) bool {
	return p != cfg.PhaseLoading
}

// DrawSlope draws the two background tiles and the ski trail.
func DrawSlope(e *ecs.ECS, screen *ebiten.Image) {
	s := snapshotOf(e)
	if !onSlope(s.Phase) {
		return
	}

	tile := assets.GetSprite(assets.SpriteSnowTile)
	if tile == nil {
		screen.Fill(cfg.Snow)
	} else {
		for _, y := range []float64{s.Tile1Y, s.Tile2Y} {
			op := &ebiten.DrawImageOptions{}
			op.GeoM.Translate(0, y)
			screen.DrawImage(tile, op)
		}
	}

	for i := 1; i < len(s.Trail); i++ {
		a, b := s.Trail[i-1], s.Trail[i]
		vector.StrokeLine(screen, float32(a.LeftX), float32(a.LeftY), float32(b.LeftX), float32(b.LeftY), 2, cfg.TrailGrey, true)
		vector.StrokeLine(screen, float32(a.RightX), float32(a.RightY), float32(b.RightX), float32(b.RightY), 2, cfg.TrailGrey, true)
	}
}

// DrawObstacles draws every live obstacle and the finish banner.
func DrawObstacles(e *ecs.ECS, screen *ebiten.Image) {
	s := snapshotOf(e)
	if !onSlope(s.Phase) {
		return
	}

	if s.HasFinish {
		drawFinish(screen, s.FinishY)
	}

	for _, o := range s.Obstacles {
		t := o.Kind.Type()
		img := assets.GetObstacleImage(o.Kind)
		if img == nil {
			vector.DrawFilledCircle(screen, float32(o.X), float32(o.Y), float32(t.Width/2), cfg.Grey, true)
			continue
		}
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Translate(o.X-t.Width/2, o.Y-t.Height/2)
		screen.DrawImage(img, op)
	}
}

// drawFinish draws two poles around the finish gap with a striped banner.
func drawFinish(screen *ebiten.Image, y float64) {
	f := cfg.Finish
	left := float32(f.GapX - f.PoleSpacing/2)
	right := float32(f.GapX + f.PoleSpacing/2)
	top := float32(y - f.BannerHeight)
	h := float32(f.BannerHeight)

	vector.StrokeLine(screen, left, top, left, float32(y)+h, 4, cfg.Ink, true)
	vector.StrokeLine(screen, right, top, right, float32(y)+h, 4, cfg.Ink, true)

	stripes := max(f.BannerStripes, 1)
	w := (right - left) / float32(stripes)
	for i := 0; i < stripes; i++ {
		c := cfg.Red
		if i%2 == 1 {
			c = cfg.White
		}
		vector.FillRect(screen, left+float32(i)*w, top, w, h, c, false)
	}
	vector.StrokeRect(screen, left, top, right-left, h, 2, cfg.Ink, true)
}

// DrawSkier draws the skis and body, lifted while airborne and lying down
// after a crash.
func DrawSkier(e *ecs.ECS, screen *ebiten.Image) {
	s := snapshotOf(e)
	if !onSlope(s.Phase) {
		return
	}
	sk := s.Skier
	c := cfg.Skier

	if s.Phase == cfg.PhaseCrashed {
		fallen := assets.GetSprite(assets.SpriteFallen)
		if fallen == nil {
			vector.DrawFilledCircle(screen, float32(sk.X), float32(sk.Y), float32(c.BodyWidth/2), cfg.Red, true)
			return
		}
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Translate(sk.X-c.BodyHeight/2, sk.Y)
		screen.DrawImage(fallen, op)
		return
	}

	scale := 1.0
	if sk.Airborne {
		scale = 1.15
		vector.DrawFilledCircle(screen, float32(sk.X+6), float32(sk.Y+c.BodyHeight/2+6), float32(c.BodyWidth/2), color.RGBA{A: 50}, true)
	}

	if ski := assets.GetSprite(assets.SpriteSki); ski != nil {
		for _, dx := range []float64{-c.SkiSpacing / 2, c.SkiSpacing / 2} {
			op := &ebiten.DrawImageOptions{}
			op.GeoM.Translate(-c.SkiWidth/2, -c.SkiHeight/2)
			op.GeoM.Rotate(-sk.Angle)
			op.GeoM.Scale(scale, scale)
			op.GeoM.Translate(sk.X+dx*scale, sk.Y+c.BodyHeight/2)
			screen.DrawImage(ski, op)
		}
	}

	body := assets.GetSprite(assets.SpriteSkier)
	if body == nil {
		vector.DrawFilledRect(screen, float32(sk.X-c.BodyWidth/2), float32(sk.Y-c.BodyHeight/2), float32(c.BodyWidth), float32(c.BodyHeight), cfg.Red, false)
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(-c.BodyWidth/2, -c.BodyHeight/2)
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(sk.X, sk.Y)
	screen.DrawImage(body, op)
}

// DrawFade covers the screen with the transition's opacity.
func DrawFade(e *ecs.ECS, screen *ebiten.Image) {
	s := snapshotOf(e)
	if s.Alpha <= 0 {
		return
	}
	a := uint8(min(s.Alpha, 1) * 255)
	b := screen.Bounds()
	vector.FillRect(screen, 0, 0, float32(b.Dx()), float32(b.Dy()), color.RGBA{A: a}, false)
}
