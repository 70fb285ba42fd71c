package systems

import (
	"fmt"
	"math"
	"time"

	cfg "github.com/automoto/downhill/config"
	"github.com/automoto/downhill/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

func inRace(p cfg.Phase) bool {
	return p == cfg.PhaseRacing || p == cfg.PhaseFinished || p == cfg.PhaseCrashed
}

// DrawHUD draws the race readouts and the remaining distance bar.
func DrawHUD(e *ecs.ECS, screen *ebiten.Image) {
	s := snapshotOf(e)
	if !inRace(s.Phase) {
		return
	}
	pad := cfg.UI.HUDPadding

	// Background panel
	vector.DrawFilledRect(screen, float32(pad/2), float32(pad/2), 170, 92, cfg.BlackOverlay, false)

	x, y := int(pad), int(pad)+16
	lines := []string{
		fmt.Sprintf("Speed  %5.1f", s.Skier.Speed),
		fmt.Sprintf("Angle  %5.0f°", s.Skier.Angle*180/math.Pi),
		fmt.Sprintf("Dist   %5.0fm", s.Distance),
		"Time   " + formatElapsed(s.Elapsed),
	}
	for i, l := range lines {
		drawText(screen, l, fonts.Regular, x, y+i*20, cfg.White)
	}

	drawProgress(screen, s.Progress, s.Remaining)

	switch {
	case s.ShowGo:
		drawCentered(screen, "GO!", fonts.Huge, int(cfg.UI.TitleY), cfg.Green)
	case s.Phase == cfg.PhaseFinished:
		drawCentered(screen, "FINISH!", fonts.Title, int(cfg.UI.TitleY), cfg.Green)
		drawCentered(screen, formatElapsed(s.Elapsed), fonts.Bold, int(cfg.UI.TitleY)+40, cfg.Ink)
	case s.Phase == cfg.PhaseCrashed:
		drawCentered(screen, "WIPEOUT", fonts.Title, int(cfg.UI.TitleY), cfg.Red)
		drawCentered(screen, fmt.Sprintf("%.0fm", s.Distance), fonts.Bold, int(cfg.UI.TitleY)+40, cfg.Ink)
	}
}

// drawProgress draws a vertical bar on the right edge that fills as the
// finish approaches.
func drawProgress(screen *ebiten.Image, progress, remaining float64) {
	w := float32(cfg.UI.ProgressBarWidth)
	h := float32(cfg.UI.ProgressBarH)
	pad := float32(cfg.UI.HUDPadding)
	x := float32(screen.Bounds().Dx()) - pad - w
	y := pad

	vector.DrawFilledRect(screen, x, y, w, h, cfg.BlackOverlay, false)
	filled := h * float32(progress)
	vector.DrawFilledRect(screen, x, y, w, filled, cfg.LightBlue, false)
	vector.StrokeRect(screen, x, y, w, h, 1, cfg.Ink, false)

	drawRight(screen, fmt.Sprintf("%.0fm", remaining), fonts.Small, int(x)-4, int(y+h), cfg.Ink)
}

// DrawCountdown draws the 3-2-1 beats of the start animation.
func DrawCountdown(e *ecs.ECS, screen *ebiten.Image) {
	s := snapshotOf(e)
	if s.Phase != cfg.PhaseStartAnimation || s.Countdown <= 0 {
		return
	}
	drawCentered(screen, fmt.Sprint(s.Countdown), fonts.Huge, int(cfg.UI.TitleY), cfg.Ink)
}

func formatElapsed(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	m := int(d / time.Minute)
	sec := (d % time.Minute).Seconds()
	return fmt.Sprintf("%d:%05.2f", m, sec)
}
