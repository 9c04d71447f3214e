package systems

import (
	"fmt"
	"image/color"

	"github.com/automoto/spriterotate/components"
	cfg "github.com/automoto/spriterotate/config"
	"github.com/automoto/spriterotate/fonts"
	"github.com/automoto/spriterotate/shared/gamemath"
	"github.com/automoto/spriterotate/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// DrawDebug outlines collision objects, draws a line from each turret to its
// target and labels it with the angle the registry would apply.
func DrawDebug(ecs *ecs.ECS, screen *ebiten.Image) {
	settingsEntry, ok := components.Settings.First(ecs.World)
	if !ok || !components.Settings.Get(settingsEntry).ShowOverlay {
		return
	}

	spaceEntry, ok := components.Space.First(ecs.World)
	if ok {
		space := components.Space.Get(spaceEntry)
		for _, obj := range space.Objects() {
			// Determine color based on tags
			c := color.RGBA{0, 255, 255, 255} // Cyan default
			if obj.HasTags(tags.ResolvTarget) {
				c = color.RGBA{255, 0, 0, 255}
			} else if obj.HasTags(tags.ResolvSpinner) {
				c = color.RGBA{0, 255, 0, 255}
			}
			vector.StrokeRect(screen, float32(obj.X), float32(obj.Y), float32(obj.W), float32(obj.H), 1, c, false)
		}
	}

	registry, hasRegistry := components.Registry(ecs.World)
	face := fonts.HUDSmall.Get()

	components.Facing.Each(ecs.World, func(e *donburi.Entry) {
		facing := components.Facing.Get(e)
		if !ecs.World.Valid(facing.Target) {
			return
		}
		target := ecs.World.Entry(facing.Target)
		x0, y0 := components.Object.Get(e).Center()
		x1, y1 := components.Object.Get(target).Center()
		vector.StrokeLine(screen, float32(x0), float32(y0), float32(x1), float32(y1), 1, cfg.UI.DebugColor, true)

		if hasRegistry {
			angle := registry.AngleTowards(components.AsSprite(e), components.AsSprite(target))
			label := fmt.Sprintf("%.0f°", gamemath.WrapDegrees(angle))
			text.Draw(screen, label, face, int(x0)+12, int(y0)+16, cfg.UI.DebugColor)
		}
	})
}
