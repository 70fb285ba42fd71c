package tags

import "github.com/yohamta/donburi"

var (
	Session  = donburi.NewTag().SetName("Session")
	Skier    = donburi.NewTag().SetName("Skier")
	Slope    = donburi.NewTag().SetName("Slope")
	Controls = donburi.NewTag().SetName("Controls")
	Backend  = donburi.NewTag().SetName("Backend")
)
