package assets

import (
	"fmt"
	"image/color"
	"math/rand/v2"

	cfg "github.com/automoto/downhill/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Sprite names
const (
	SpriteSkier    = "skier"
	SpriteSki      = "ski"
	SpriteFallen   = "skier-fallen"
	SpriteSnowTile = "snow-tile"
)

// SpriteLoader paints and caches the procedural sprites.
type SpriteLoader struct {
	cache map[string]*ebiten.Image
}

func NewSpriteLoader() *SpriteLoader {
	return &SpriteLoader{cache: make(map[string]*ebiten.Image)}
}

var spriteLoader = NewSpriteLoader()

// GetSprite returns a painted sprite, or nil if it has not been loaded.
func GetSprite(name string) *ebiten.Image {
	return spriteLoader.cache[name]
}

// GetObstacleImage returns the sprite for an obstacle kind, or nil.
func GetObstacleImage(kind cfg.ObstacleKind) *ebiten.Image {
	return spriteLoader.cache[obstacleSprite(kind)]
}

func obstacleSprite(kind cfg.ObstacleKind) string {
	return "obstacle/" + kind.String()
}

// Load paints the named sprite and caches it.
func (l *SpriteLoader) Load(name string) error {
	if _, ok := l.cache[name]; ok {
		return nil
	}

	var img *ebiten.Image
	switch name {
	case SpriteSkier:
		img = paintSkier()
	case SpriteSki:
		img = paintSki()
	case SpriteFallen:
		img = paintFallen()
	case SpriteSnowTile:
		img = paintSnowTile(cfg.C.Width, cfg.C.Height, cfg.World.BackgroundDots)
	default:
		for k := cfg.ObstacleKind(0); k < cfg.ObstacleKindCount; k++ {
			if name == obstacleSprite(k) {
				img = paintObstacle(k)
			}
		}
	}
	if img == nil {
		return fmt.Errorf("unknown sprite %q", name)
	}

	l.cache[name] = img
	return nil
}

func paintSkier() *ebiten.Image {
	c := cfg.Skier
	w, h := int(c.BodyWidth), int(c.BodyHeight)
	img := ebiten.NewImage(w, h)
	fw, fh := float32(w), float32(h)

	skin := color.RGBA{R: 250, G: 215, B: 180, A: 255}
	vector.FillRect(img, fw*0.2, fh*0.3, fw*0.6, fh*0.45, cfg.Red, true)
	vector.FillRect(img, fw*0.25, fh*0.72, fw*0.5, fh*0.28, cfg.Blue, true)
	vector.DrawFilledCircle(img, fw/2, fh*0.18, fw*0.18, cfg.Ink, true)
	vector.DrawFilledCircle(img, fw/2, fh*0.22, fw*0.14, skin, true)

	// Poles
	vector.StrokeLine(img, fw*0.05, fh*0.35, fw*0.05, fh, 2, cfg.Grey, true)
	vector.StrokeLine(img, fw*0.95, fh*0.35, fw*0.95, fh, 2, cfg.Grey, true)
	return img
}

func paintSki() *ebiten.Image {
	c := cfg.Skier
	img := ebiten.NewImage(int(c.SkiWidth), int(c.SkiHeight))
	img.Fill(cfg.Orange)
	return img
}

func paintFallen() *ebiten.Image {
	c := cfg.Skier
	w, h := int(c.BodyHeight), int(c.BodyWidth)
	img := ebiten.NewImage(w, h)
	fw, fh := float32(w), float32(h)

	vector.FillRect(img, fw*0.2, fh*0.25, fw*0.5, fh*0.5, cfg.Red, true)
	vector.DrawFilledCircle(img, fw*0.82, fh/2, fh*0.2, cfg.Ink, true)
	vector.StrokeLine(img, 0, fh*0.1, fw, fh*0.9, 3, cfg.Orange, true)
	vector.StrokeLine(img, 0, fh*0.9, fw, fh*0.1, 3, cfg.Orange, true)
	return img
}

// paintSnowTile draws one screen-sized background tile with a fixed dot
// pattern; the same seed keeps the two stacked tiles identical.
func paintSnowTile(w, h, dots int) *ebiten.Image {
	img := ebiten.NewImage(w, h)
	img.Fill(cfg.Snow)

	r := rand.New(rand.NewPCG(75, 75))
	for i := 0; i < dots; i++ {
		x := float32(r.Float64() * float64(w))
		y := float32(r.Float64() * float64(h))
		vector.DrawFilledCircle(img, x, y, float32(1+r.IntN(3)), cfg.SnowShadow, true)
	}
	return img
}

func paintObstacle(kind cfg.ObstacleKind) *ebiten.Image {
	t := kind.Type()
	img := ebiten.NewImage(int(t.Width), int(t.Height))
	w, h := float32(t.Width), float32(t.Height)

	switch kind {
	case cfg.ObstacleTree:
		vector.FillRect(img, w*0.42, h*0.75, w*0.16, h*0.25, cfg.Brown, true)
		vector.DrawFilledCircle(img, w/2, h*0.62, w*0.42, cfg.DarkGreen, true)
		vector.DrawFilledCircle(img, w/2, h*0.4, w*0.34, cfg.Green, true)
		vector.DrawFilledCircle(img, w/2, h*0.2, w*0.22, cfg.Green, true)
		vector.DrawFilledCircle(img, w*0.4, h*0.15, w*0.06, cfg.White, true)
	case cfg.ObstacleSnowman:
		vector.DrawFilledCircle(img, w/2, h*0.72, w*0.38, cfg.White, true)
		vector.StrokeCircle(img, w/2, h*0.72, w*0.38, 1, cfg.SnowShadow, true)
		vector.DrawFilledCircle(img, w/2, h*0.32, w*0.26, cfg.White, true)
		vector.StrokeCircle(img, w/2, h*0.32, w*0.26, 1, cfg.SnowShadow, true)
		vector.FillRect(img, w*0.5, h*0.3, w*0.2, h*0.05, cfg.Orange, true)
		vector.FillRect(img, w*0.32, h*0.04, w*0.36, h*0.12, cfg.Ink, true)
	case cfg.ObstacleRock:
		vector.DrawFilledCircle(img, w*0.4, h*0.6, h*0.4, cfg.Grey, true)
		vector.DrawFilledCircle(img, w*0.62, h*0.55, h*0.45, cfg.Grey, true)
		vector.DrawFilledCircle(img, w*0.55, h*0.35, h*0.2, cfg.White, true)
	case cfg.ObstacleArrowLeft, cfg.ObstacleArrowRight:
		vector.FillRect(img, w*0.45, h*0.4, w*0.1, h*0.6, cfg.Brown, true)
		vector.FillRect(img, 0, 0, w, h*0.45, cfg.Yellow, true)
		tip, tail := w*0.15, w*0.85
		if kind == cfg.ObstacleArrowRight {
			tip, tail = tail, tip
		}
		vector.StrokeLine(img, tail, h*0.22, tip, h*0.22, 3, cfg.Ink, true)
		vector.StrokeLine(img, tip, h*0.22, (tip+w/2)/2, h*0.08, 3, cfg.Ink, true)
		vector.StrokeLine(img, tip, h*0.22, (tip+w/2)/2, h*0.36, 3, cfg.Ink, true)
	case cfg.ObstacleHeap:
		vector.DrawFilledCircle(img, w*0.3, h*0.7, h*0.45, cfg.SnowShadow, true)
		vector.DrawFilledCircle(img, w*0.7, h*0.7, h*0.45, cfg.SnowShadow, true)
		vector.DrawFilledCircle(img, w/2, h*0.55, h*0.5, cfg.White, true)
	case cfg.ObstacleBarrel:
		vector.FillRect(img, w*0.1, 0, w*0.8, h, cfg.Brown, true)
		vector.FillRect(img, w*0.1, h*0.2, w*0.8, h*0.08, cfg.Ink, true)
		vector.FillRect(img, w*0.1, h*0.72, w*0.8, h*0.08, cfg.Ink, true)
	}
	return img
}
