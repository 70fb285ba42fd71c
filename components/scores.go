package components

import (
	"github.com/automoto/downhill/scores"
	"github.com/yohamta/donburi"
)

// ScoresData holds the leaderboard client shared by the scoreboard phase
// and the menu.
type ScoresData struct {
	Board *scores.Board
}

var Scores = donburi.NewComponentType[ScoresData]()
