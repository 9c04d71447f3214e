package systems

import (
	"github.com/automoto/spriterotate/components"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateTweens moves tweened entities along their paths by one tick.
func UpdateTweens(ecs *ecs.ECS) {
	stepTweens(ecs.World, float32(1/float64(ebiten.TPS())))
}

func stepTweens(w donburi.World, dt float32) {
	components.Tween.Each(w, func(e *donburi.Entry) {
		tw := components.Tween.Get(e)
		if tw.TravelX == 0 && tw.TravelY == 0 {
			return
		}

		active := tw.Out
		if tw.Returning {
			active = tw.Back
		}
		progress, finished := active.Update(dt)
		if finished {
			active.Reset()
			tw.Returning = !tw.Returning
		}

		obj := components.Object.Get(e)
		obj.X = tw.OriginX + tw.TravelX*float64(progress)
		obj.Y = tw.OriginY + tw.TravelY*float64(progress)
	})
}
