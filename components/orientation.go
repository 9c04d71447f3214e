package components

import (
	"github.com/automoto/spriterotate/rotation"
	"github.com/yohamta/donburi"
)

// OrientationData is a singleton holding the scene's rotation registry.
type OrientationData struct {
	Registry *rotation.Registry
}

var Orientation = donburi.NewComponentType[OrientationData]()

// FacingData makes an entity turn toward Target every tick.
type FacingData struct {
	Target donburi.Entity
}

var Facing = donburi.NewComponentType[FacingData]()

// SpinData drives an entity's angle directly. Speed is in degrees per tick.
type SpinData struct {
	Angle float64
	Speed float64
	Base  float64 // speed restored by the reset action
}

var Spin = donburi.NewComponentType[SpinData]()
