package factory

import (
	"github.com/automoto/spriterotate/archetypes"
	"github.com/automoto/spriterotate/components"
	"github.com/automoto/spriterotate/rotation"
	"github.com/automoto/spriterotate/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateTurret spawns a w×h sprite centred on (x, y) that keeps facing
// target.
func CreateTurret(ecs *ecs.ECS, x, y, w, h float64, img rotation.Image, target *donburi.Entry) *donburi.Entry {
	turret := archetypes.Turret.Spawn(ecs)
	newObject(ecs, turret, x, y, w, h, tags.ResolvTurret)
	components.Sprite.SetValue(turret, components.SpriteData{Image: img})
	components.Facing.SetValue(turret, components.FacingData{Target: target.Entity()})

	register(ecs, turret)
	return turret
}

// CreateSpinner spawns a sprite that starts at angle and turns by speed
// degrees per tick.
func CreateSpinner(ecs *ecs.ECS, x, y, w, h float64, img rotation.Image, angle, speed float64) *donburi.Entry {
	spinner := archetypes.Spinner.Spawn(ecs)
	newObject(ecs, spinner, x, y, w, h, tags.ResolvSpinner)
	components.Sprite.SetValue(spinner, components.SpriteData{Image: img})
	components.Spin.SetValue(spinner, components.SpinData{
		Angle: angle,
		Speed: speed,
		Base:  speed,
	})

	register(ecs, spinner)
	return spinner
}
