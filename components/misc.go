package components

import (
	"time"

	"github.com/yohamta/donburi"
)

// ClockData is the frame clock. All phase and fade timing reads Now.
type ClockData struct {
	Now  time.Time
	Tick uint64
}

var Clock = donburi.NewComponentType[ClockData]()

// LoadingData tracks asset preparation for the loading phase.
type LoadingData struct {
	Total   int
	Done    int
	Current string
	Failed  []string
}

var Loading = donburi.NewComponentType[LoadingData]()

// Ready reports whether every asset step has run, failed or not.
func (l *LoadingData) Ready() bool {
	return l.Done >= l.Total
}

// Progress returns completion in [0, 1].
func (l *LoadingData) Progress() float64 {
	if l.Total <= 0 {
		return 1
	}
	return float64(l.Done) / float64(l.Total)
}

// DebugData holds debug counters shown on the overlay.
type DebugData struct {
	Enabled bool
	Spawned int
	Evicted int
}

var Debug = donburi.NewComponentType[DebugData]()
