package components

import "github.com/yohamta/donburi"

// SettingsData holds the demo preferences that survive restarts.
type SettingsData struct {
	ShowOverlay  bool
	SpinMaxSpeed float64
	Dirty        bool // changed since last save
}

var Settings = donburi.NewComponentType[SettingsData]()
