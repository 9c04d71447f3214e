package archetypes

import (
	"github.com/automoto/spriterotate/components"
	cfg "github.com/automoto/spriterotate/config"
	"github.com/automoto/spriterotate/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	Turret = newArchetype(
		tags.Turret,
		components.Object,
		components.Sprite,
		components.Facing,
	)
	Target = newArchetype(
		tags.Target,
		components.Object,
		components.Sprite,
		components.Tween,
	)
	Spinner = newArchetype(
		tags.Spinner,
		components.Object,
		components.Sprite,
		components.Spin,
	)
	Space = newArchetype(
		components.Space,
	)
	Orientation = newArchetype(
		components.Orientation,
	)
	Input = newArchetype(
		components.Input,
	)
	Settings = newArchetype(
		components.Settings,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	e := ecs.World.Entry(ecs.Create(
		cfg.Default,
		append(a.components, cs...)...,
	))
	return e
}
