package core

import (
	"unicode"

	cfg "github.com/automoto/downhill/config"
	"github.com/automoto/downhill/shared/leaderboard"
	"github.com/yohamta/donburi"
)

// AppendNameChar uppercases r and appends it to name if it is a letter or
// digit and name is not full.
func AppendNameChar(name string, r rune) (string, bool) {
	r = unicode.ToUpper(r)
	if !leaderboard.IsNameRune(r) {
		return name, false
	}
	if len(name) >= cfg.Race.NameMaxLength {
		return name, false
	}
	return name + string(r), true
}

// UpdateNameEntry edits and submits the player name on the scoreboard.
// Input is dropped while the leaderboard is busy.
func UpdateNameEntry(w donburi.World) {
	race := GetRace(w)
	if race.Submitted || !race.HasResult || leaderboardLoading(w) {
		return
	}
	in := GetInput(w)
	audio := GetAudio(w)

	for _, r := range in.Chars {
		var ok bool
		if race.Name, ok = AppendNameChar(race.Name, r); ok {
			audio.Play(cfg.SoundType)
		}
	}
	if in.JustPressed(cfg.ActionBackspace) && len(race.Name) > 0 {
		race.Name = race.Name[:len(race.Name)-1]
	}

	if !in.JustPressed(cfg.ActionConfirm) || len(race.Name) < cfg.Race.NameMinLength {
		return
	}

	entry := race.Result
	entry.Name = race.Name
	race.Submitted = true
	audio.Play(cfg.SoundMenuSelect)

	if b := board(w); b != nil {
		b.Submit(entry)
	}
}
