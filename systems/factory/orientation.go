package factory

import (
	"github.com/automoto/spriterotate/archetypes"
	"github.com/automoto/spriterotate/components"
	"github.com/automoto/spriterotate/rotation"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateOrientation stores the registry every rotating entity in the world
// shares.
func CreateOrientation(ecs *ecs.ECS, registry *rotation.Registry) *donburi.Entry {
	entry := archetypes.Orientation.Spawn(ecs)
	components.Orientation.SetValue(entry, components.OrientationData{Registry: registry})
	return entry
}

// CreateInput creates the input singleton.
func CreateInput(ecs *ecs.ECS) *donburi.Entry {
	return archetypes.Input.Spawn(ecs)
}

// register captures the entity's pristine image before anything else can
// touch it.
func register(ecs *ecs.ECS, entry *donburi.Entry) {
	if registry, ok := components.Registry(ecs.World); ok {
		registry.Initialize(components.AsSprite(entry))
	}
}
