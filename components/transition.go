package components

import (
	"time"

	cfg "github.com/automoto/downhill/config"
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// FadeStage is the current half of a fade transition.
type FadeStage int

const (
	FadeIdle FadeStage = iota
	FadeOut
	FadeIn
)

// TransitionData is a two-stage wall-clock fade (singleton component).
type TransitionData struct {
	Stage      FadeStage
	StageStart time.Time
	Target     cfg.Phase
	Alpha      float64
	Midpoint   func(w donburi.World)

	Out *gween.Tween
	In  *gween.Tween
}

var Transition = donburi.NewComponentType[TransitionData]()

// Active reports whether a fade is in progress.
func (t *TransitionData) Active() bool {
	return t.Stage != FadeIdle
}
