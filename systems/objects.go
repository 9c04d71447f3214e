package systems

import (
	"github.com/automoto/spriterotate/components"
	"github.com/yohamta/donburi/ecs"
)

// UpdateObjects re-indexes moved objects in the collision space.
func UpdateObjects(ecs *ecs.ECS) {
	for e := range components.Object.Iter(ecs.World) {
		obj := components.Object.Get(e)
		obj.Update()
	}
}
