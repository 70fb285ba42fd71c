package systems

import (
	"fmt"
	"image/color"

	cfg "github.com/automoto/downhill/config"
	"github.com/automoto/downhill/fonts"
	"github.com/automoto/downhill/shared/leaderboard"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

var highlight = color.RGBA{R: 255, G: 210, B: 40, A: 90}

// DrawScoreboard renders the result, the name field and the top entries,
// highlighting the row the player just submitted.
func DrawScoreboard(e *ecs.ECS, screen *ebiten.Image) {
	s := snapshotOf(e)
	if s.Phase != cfg.PhaseScoreboard {
		return
	}

	w := float32(screen.Bounds().Dx())
	h := float32(screen.Bounds().Dy())
	vector.FillRect(screen, 0, 0, w, h, cfg.BlackOverlay, false)

	drawCentered(screen, "LEADERBOARD", fonts.Title, 70, cfg.White)
	if s.HasResult {
		label := "Time"
		if s.Result.Kind == leaderboard.KindDistance {
			label = "Distance"
		}
		drawCentered(screen, fmt.Sprintf("%s: %s", label, s.Result.Score()), fonts.Bold, 110, cfg.Yellow)
	}

	drawNameField(screen, s.Name, s.Submitted, s.Rank, s.LeaderboardBusy, blinkOn(s.Now))

	top := int(cfg.UI.ScoreTopY)
	row := int(cfg.UI.ScoreRowHeight)
	left, right := int(w*0.15), int(w*0.85)
	drawText(screen, "#", fonts.Small, left, top-8, cfg.SnowShadow)
	drawText(screen, "NAME", fonts.Small, left+40, top-8, cfg.SnowShadow)
	drawRight(screen, "SCORE", fonts.Small, right, top-8, cfg.SnowShadow)

	for i, entry := range s.Entries {
		if i >= cfg.Scores.ShowCount {
			break
		}
		y := top + (i+1)*row
		if s.Submitted && s.Rank == i+1 {
			vector.FillRect(screen, float32(left-8), float32(y-row+8), float32(right-left+16), float32(row), highlight, false)
		}
		drawText(screen, fmt.Sprint(i+1), fonts.Regular, left, y, cfg.White)
		drawText(screen, entry.Name, fonts.Regular, left+40, y, cfg.White)
		drawRight(screen, entry.Score(), fonts.Regular, right, y, cfg.White)
	}

	// Submitted entry outside the visible rows
	if s.Submitted && s.Rank > cfg.Scores.ShowCount {
		y := top + (cfg.Scores.ShowCount+1)*row + 8
		drawText(screen, fmt.Sprint(s.Rank), fonts.Regular, left, y, cfg.Yellow)
		drawText(screen, s.Name, fonts.Regular, left+40, y, cfg.Yellow)
		drawRight(screen, s.Result.Score(), fonts.Regular, right, y, cfg.Yellow)
	}
}

func drawNameField(screen *ebiten.Image, name string, submitted bool, rank int, busy, caret bool) {
	y := 150
	switch {
	case busy:
		drawCentered(screen, "loading...", fonts.Regular, y, cfg.SnowShadow)
	case !submitted:
		field := name
		if caret {
			field += "_"
		} else {
			field += " "
		}
		drawCentered(screen, "Enter name: "+field, fonts.Bold, y, cfg.White)
		hint := fmt.Sprintf("%d-%d letters or digits, ENTER to submit", cfg.Race.NameMinLength, cfg.Race.NameMaxLength)
		drawCentered(screen, hint, fonts.Small, y+18, cfg.SnowShadow)
	default:
		msg := "Saved"
		if rank > 0 {
			msg = fmt.Sprintf("You placed #%d", rank)
		}
		drawCentered(screen, msg+"   ENTER to continue", fonts.Bold, y, cfg.White)
	}
}
