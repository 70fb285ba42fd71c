package components

import (
	"time"

	"github.com/yohamta/donburi"
)

// CinematicData drives the pre-race countdown.
type CinematicData struct {
	Start    time.Time
	Running  bool
	Done     bool
	LastBeat int // Last countdown number announced
}

var Cinematic = donburi.NewComponentType[CinematicData]()
