package config

// Phase is one state of the top-level race state machine.
type Phase int

const (
	PhaseLoading Phase = iota
	PhaseMenu
	PhaseStartAnimation
	PhaseRacing
	PhaseFinished
	PhaseCrashed
	PhaseScoreboard
)

var phaseNames = [...]string{
	PhaseLoading:        "loading",
	PhaseMenu:           "menu",
	PhaseStartAnimation: "start-animation",
	PhaseRacing:         "racing",
	PhaseFinished:       "finished",
	PhaseCrashed:        "crashed",
	PhaseScoreboard:     "scoreboard",
}

func (p Phase) String() string {
	if p < 0 || int(p) >= len(phaseNames) {
		return "unknown"
	}
	return phaseNames[p]
}

// Simulates reports whether skier physics runs in this phase.
func (p Phase) Simulates() bool {
	return p == PhaseRacing || p == PhaseCrashed
}
