package factory

import (
	"github.com/automoto/spriterotate/archetypes"
	"github.com/automoto/spriterotate/components"
	"github.com/automoto/spriterotate/rotation"
	"github.com/automoto/spriterotate/tags"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateTarget spawns a size×size sprite centred on (x, y). When travel is
// non-zero it moves back and forth along (travelX, travelY), taking duration
// seconds each way.
func CreateTarget(ecs *ecs.ECS, x, y, size float64, img rotation.Image, travelX, travelY, duration float64) *donburi.Entry {
	target := archetypes.Target.Spawn(ecs)
	obj := newObject(ecs, target, x, y, size, size, tags.ResolvTarget)
	components.Sprite.SetValue(target, components.SpriteData{Image: img})

	// Progress runs 0 -> 1 -> 0 so the path eases at both ends.
	components.Tween.SetValue(target, components.TweenData{
		OriginX: obj.X,
		OriginY: obj.Y,
		TravelX: travelX,
		TravelY: travelY,
		Out:     gween.New(0, 1, float32(duration), ease.InOutSine),
		Back:    gween.New(1, 0, float32(duration), ease.InOutSine),
	})

	return target
}
