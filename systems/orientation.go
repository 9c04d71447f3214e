package systems

import (
	"github.com/automoto/spriterotate/components"
	cfg "github.com/automoto/spriterotate/config"
	"github.com/automoto/spriterotate/shared/gamemath"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateFacing turns every entity with a Facing component toward its target.
// Entities whose target no longer exists keep their last orientation.
func UpdateFacing(ecs *ecs.ECS) {
	registry, ok := components.Registry(ecs.World)
	if !ok {
		return
	}

	components.Facing.Each(ecs.World, func(e *donburi.Entry) {
		facing := components.Facing.Get(e)
		if !ecs.World.Valid(facing.Target) {
			return
		}
		target := ecs.World.Entry(facing.Target)
		if !target.HasComponent(components.Object) {
			return
		}
		registry.PointTowards(components.AsSprite(e), components.AsSprite(target))
	})
}

// UpdateSpin advances every spinner by its speed and rotates it to the new
// angle. Turn input speeds spinners up or down; without input the speed
// settles back to its base value.
func UpdateSpin(ecs *ecs.ECS) {
	registry, ok := components.Registry(ecs.World)
	if !ok {
		return
	}

	var accel float64
	var reset bool
	if input := currentInput(ecs); input != nil {
		accel = gamemath.SpinInput(
			input.Pressed(cfg.ActionSpinLeft),
			input.Pressed(cfg.ActionSpinRight),
			cfg.Arena.SpinAccel,
		)
		reset = input.JustPressed(cfg.ActionResetSpin)
	}

	maxSpeed := cfg.Arena.SpinMaxSpeed
	if entry, ok := components.Settings.First(ecs.World); ok {
		maxSpeed = components.Settings.Get(entry).SpinMaxSpeed
	}

	components.Spin.Each(ecs.World, func(e *donburi.Entry) {
		spin := components.Spin.Get(e)

		if reset {
			spin.Angle = 0
			spin.Speed = spin.Base
		} else if accel != 0 {
			spin.Speed = gamemath.ClampSpeed(spin.Speed+accel, maxSpeed)
		} else {
			spin.Speed = spin.Base + gamemath.ApplyFriction(spin.Speed-spin.Base, cfg.Arena.SpinFriction)
		}

		spin.Angle += spin.Speed
		registry.RotateTo(components.AsSprite(e), spin.Angle)
	})
}
