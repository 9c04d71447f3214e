package tags

import "github.com/yohamta/donburi"

var (
	Turret  = donburi.NewTag().SetName("Turret")
	Target  = donburi.NewTag().SetName("Target")
	Spinner = donburi.NewTag().SetName("Spinner")
)

// Resolv tags for the collision space
const (
	ResolvTurret  = "turret"
	ResolvTarget  = "target"
	ResolvSpinner = "spinner"
)
