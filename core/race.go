package core

import (
	"log"

	"github.com/automoto/downhill/components"
	cfg "github.com/automoto/downhill/config"
	"github.com/automoto/downhill/scores"
	"github.com/automoto/downhill/shared/leaderboard"
	"github.com/yohamta/donburi"
)

func enterPhase(w donburi.World, p cfg.Phase) {
	race := GetRace(w)
	if GetDebug(w).Enabled && race.Phase != p {
		log.Printf("[race] %s -> %s", race.Phase, p)
	}
	race.Phase = p
	race.PhaseStart = Now(w)
}

// UpdateRace is the phase state machine. It consumes the signals raised
// earlier in the tick (cinematic done, hit, finish passed) and decides the
// next phase.
func UpdateRace(w donburi.World) {
	race := GetRace(w)
	in := GetInput(w)
	fading := GetTransition(w).Active()

	switch race.Phase {
	case cfg.PhaseLoading:
		if GetLoading(w).Ready() {
			enterPhase(w, cfg.PhaseMenu)
			refreshBoard(w)
		}

	case cfg.PhaseMenu:
		if !fading && in.JustPressed(cfg.ActionStart) {
			GetAudio(w).Play(cfg.SoundMenuSelect)
			startCountdown(w)
		}

	case cfg.PhaseStartAnimation:
		if GetCinematic(w).Done {
			beginRace(w)
		}

	case cfg.PhaseRacing:
		switch {
		case race.Hit != nil:
			enterPhase(w, cfg.PhaseCrashed)
			audio := GetAudio(w)
			audio.Music = components.MusicStop
			audio.Play(cfg.SoundFall)
		case GetObstacleField(w).FinishPassed:
			enterPhase(w, cfg.PhaseFinished)
			audio := GetAudio(w)
			audio.Music = components.MusicFadeOut
			audio.Play(cfg.SoundFinish)
		}

	case cfg.PhaseFinished, cfg.PhaseCrashed:
		if race.Leaving || Now(w).Sub(race.PhaseStart) < cfg.Race.ResultsDelay {
			return
		}
		race.Leaving = StartFade(w, cfg.PhaseScoreboard, showResults)

	case cfg.PhaseScoreboard:
		if fading {
			return
		}
		if !race.Submitted {
			UpdateNameEntry(w)
			return
		}
		if leaderboardLoading(w) {
			return
		}
		if in.JustPressed(cfg.ActionStart) || in.JustPressed(cfg.ActionConfirm) {
			GetAudio(w).Play(cfg.SoundMenuSelect)
			StartFade(w, cfg.PhaseMenu, backToMenu)
		}
	}
}

// beginRace resets everything a run touches and starts the clock.
func beginRace(w donburi.World) {
	ResetSkier(GetSkier(w))
	ResetSlope(GetSlope(w))
	ResetObstacleField(GetObstacleField(w))

	race := GetRace(w)
	race.Distance = 0
	race.RaceStart = Now(w)
	race.Elapsed = 0
	race.Hit = nil
	race.Leaving = false
	race.HasResult = false

	GetCinematic(w).Done = false
	GetAudio(w).Music = components.MusicPlay
	enterPhase(w, cfg.PhaseRacing)
}

// Result is the score of the run that just ended: the time for a finished
// race, the distance for a crash.
func Result(race *components.RaceData) leaderboard.Entry {
	if race.Phase == cfg.PhaseFinished {
		return leaderboard.Entry{Kind: leaderboard.KindTime, Value: race.Elapsed.Seconds()}
	}
	return leaderboard.Entry{Kind: leaderboard.KindDistance, Value: race.Meters()}
}

// showResults runs behind the fade to the scoreboard.
func showResults(w donburi.World) {
	race := GetRace(w)
	race.Result = Result(race)
	race.HasResult = true
	race.Name = ""
	race.Submitted = false
	race.Rank = 0

	ResetObstacleField(GetObstacleField(w))
	ResetSlope(GetSlope(w))
	refreshBoard(w)
}

// backToMenu runs behind the fade from the scoreboard.
func backToMenu(w donburi.World) {
	ResetSkier(GetSkier(w))
	ResetSlope(GetSlope(w))
	ResetObstacleField(GetObstacleField(w))

	race := GetRace(w)
	race.Distance = 0
	race.Elapsed = 0
	race.Hit = nil
	race.Leaving = false
	race.Name = ""
}

func board(w donburi.World) *scores.Board {
	return GetScores(w).Board
}

func refreshBoard(w donburi.World) {
	if b := board(w); b != nil {
		b.Refresh()
	}
}

func leaderboardLoading(w donburi.World) bool {
	b := board(w)
	return b != nil && b.Loading()
}
