package systems

import (
	"fmt"

	cfg "github.com/automoto/downhill/config"
	"github.com/automoto/downhill/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

// menuEntries is how many leaderboard rows the title screen shows.
const menuEntries = 5

// DrawMenu renders the title screen over the idle slope.
func DrawMenu(e *ecs.ECS, screen *ebiten.Image) {
	s := snapshotOf(e)
	if s.Phase != cfg.PhaseMenu {
		return
	}

	width := float32(screen.Bounds().Dx())
	title := int(cfg.UI.TitleY)
	vector.FillRect(screen, 0, float32(title-70), width, 100, cfg.BlackOverlay, false)
	drawCentered(screen, "DOWNHILL", fonts.Title, title, cfg.White)

	y := title + 80
	drawCentered(screen, "BEST RUNS", fonts.Bold, y, cfg.Ink)
	switch {
	case len(s.Entries) == 0 && s.LeaderboardBusy:
		drawCentered(screen, "loading...", fonts.Regular, y+28, cfg.Grey)
	case len(s.Entries) == 0:
		drawCentered(screen, "no runs yet", fonts.Regular, y+28, cfg.Grey)
	}
	for i, entry := range s.Entries {
		if i >= menuEntries {
			break
		}
		row := fmt.Sprintf("%d. %-10s %8s", i+1, entry.Name, entry.Score())
		drawCentered(screen, row, fonts.Regular, y+28+i*22, cfg.Ink)
	}

	// Blink the start hint
	if blinkOn(s.Now) {
		drawCentered(screen, "Press SPACE or ENTER to start", fonts.Bold, int(cfg.UI.MenuHintY), cfg.Red)
	}
	drawCentered(screen, "Arrows/WASD: steer and speed   Space: jump", fonts.Small, int(cfg.UI.MenuHintY)+30, cfg.Ink)
	drawCentered(screen, "F10: mute   F11: fullscreen", fonts.Small, int(cfg.UI.MenuHintY)+46, cfg.Ink)
}

// DrawLoading draws asset progress and any step that failed.
func DrawLoading(e *ecs.ECS, screen *ebiten.Image) {
	s := snapshotOf(e)
	if s.Phase != cfg.PhaseLoading {
		return
	}

	w := float32(screen.Bounds().Dx())
	h := float32(screen.Bounds().Dy())
	vector.FillRect(screen, 0, 0, w, h, cfg.Ink, false)

	barW, barH := w*0.6, float32(16)
	x, y := (w-barW)/2, h/2
	vector.StrokeRect(screen, x, y, barW, barH, 2, cfg.White, false)
	vector.FillRect(screen, x+2, y+2, (barW-4)*float32(s.LoadingProgress), barH-4, cfg.LightBlue, false)

	drawCentered(screen, "Loading...", fonts.Bold, int(y)-20, cfg.White)
	if s.LoadingCurrent != "" {
		drawCentered(screen, s.LoadingCurrent, fonts.Small, int(y+barH)+20, cfg.SnowShadow)
	}
	for i, name := range s.LoadingFailed {
		drawCentered(screen, "failed: "+name, fonts.Small, int(y+barH)+44+i*16, cfg.Red)
	}
}
