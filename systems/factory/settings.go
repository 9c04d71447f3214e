package factory

import (
	"github.com/automoto/spriterotate/archetypes"
	"github.com/automoto/spriterotate/components"
	cfg "github.com/automoto/spriterotate/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateSettings creates the settings singleton from the current config.
func CreateSettings(ecs *ecs.ECS) *donburi.Entry {
	entry := archetypes.Settings.Spawn(ecs)
	components.Settings.SetValue(entry, components.SettingsData{
		ShowOverlay:  cfg.Debug.ShowOverlay,
		SpinMaxSpeed: cfg.Arena.SpinMaxSpeed,
	})
	return entry
}
