package systems

import (
	"github.com/automoto/spriterotate/components"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	drawOp = &ebiten.DrawImageOptions{}
)

// drawable is implemented by images backed by the GPU.
type drawable interface {
	Ebiten() *ebiten.Image
}

// DrawSprites draws each sprite centred on its object. Rotated images grow
// to fit their content, so centring keeps the pivot fixed.
func DrawSprites(ecs *ecs.ECS, screen *ebiten.Image) {
	components.Sprite.Each(ecs.World, func(e *donburi.Entry) {
		sprite := components.Sprite.Get(e)
		d, ok := sprite.Image.(drawable)
		if !ok {
			return
		}
		img := d.Ebiten()
		o := components.Object.Get(e)
		cx, cy := o.Center()

		drawOp.GeoM.Reset()
		drawOp.GeoM.Translate(-float64(img.Bounds().Dx())/2, -float64(img.Bounds().Dy())/2)
		drawOp.GeoM.Translate(cx, cy)
		drawOp.Filter = ebiten.FilterLinear

		screen.DrawImage(img, drawOp)
	})
}
