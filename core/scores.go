package core

import (
	"github.com/automoto/downhill/scores"
	"github.com/yohamta/donburi"
)

// UpdateScores applies a finished leaderboard request. A submission outcome
// records the rank the player's entry landed at.
func UpdateScores(w donburi.World) {
	b := board(w)
	if b == nil {
		return
	}
	o, ok := b.Poll()
	if !ok {
		return
	}
	if o.Op == scores.OpSubmit {
		GetRace(w).Rank = o.Rank
	}
}
