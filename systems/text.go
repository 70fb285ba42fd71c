package systems

import (
	"image/color"
	"time"

	cfg "github.com/automoto/downhill/config"
	"github.com/automoto/downhill/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
)

// drawText draws s with its baseline at y. Nothing is drawn until the
// font has loaded.
func drawText(screen *ebiten.Image, s string, name fonts.FontName, x, y int, clr color.Color) {
	face, ok := fonts.Lookup(name)
	if !ok {
		return
	}
	text.Draw(screen, s, face, x, y, clr)
}

// drawCentered draws s horizontally centred on the screen.
func drawCentered(screen *ebiten.Image, s string, name fonts.FontName, y int, clr color.Color) {
	face, ok := fonts.Lookup(name)
	if !ok {
		return
	}
	b := text.BoundString(face, s)
	x := (screen.Bounds().Dx() - b.Dx()) / 2
	text.Draw(screen, s, face, x, y, clr)
}

// drawRight draws s so that it ends at x.
func drawRight(screen *ebiten.Image, s string, name fonts.FontName, x, y int, clr color.Color) {
	face, ok := fonts.Lookup(name)
	if !ok {
		return
	}
	b := text.BoundString(face, s)
	text.Draw(screen, s, face, x-b.Dx(), y, clr)
}

// blinkOn alternates every CaretBlink.
func blinkOn(now time.Time) bool {
	period := cfg.UI.CaretBlink.Milliseconds()
	if period <= 0 {
		return true
	}
	return (now.UnixMilli()/period)%2 == 0
}
