package systems

import (
	"fmt"

	"github.com/automoto/spriterotate/components"
	cfg "github.com/automoto/spriterotate/config"
	"github.com/automoto/spriterotate/fonts"
	"github.com/automoto/spriterotate/rotation"
	"github.com/automoto/spriterotate/shared/gamemath"
	"github.com/automoto/spriterotate/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// DrawHUD lists the registry size and the angle of every tracked sprite.
func DrawHUD(ecs *ecs.ECS, screen *ebiten.Image) {
	registry, ok := components.Registry(ecs.World)
	if !ok {
		return
	}

	lines := hudLines(ecs.World, registry)
	face := fonts.HUD.Get()
	x := int(cfg.UI.HUDMargin)
	y := cfg.UI.HUDMargin + cfg.UI.HUDLineHeight
	for _, line := range lines {
		text.Draw(screen, line, face, x, int(y), cfg.UI.TextColor)
		y += cfg.UI.HUDLineHeight
	}
}

func hudLines(w donburi.World, registry *rotation.Registry) []string {
	axis := "down"
	if registry.YAxis() == rotation.YUp {
		axis = "up"
	}
	lines := []string{
		fmt.Sprintf("tracked: %d  y-axis: %s", registry.Len(), axis),
	}

	tags.Turret.Each(w, func(e *donburi.Entry) {
		id := components.AsSprite(e).ID()
		if st, ok := registry.Lookup(id); ok {
			lines = append(lines, fmt.Sprintf("turret %d: %6.1f°", id, gamemath.WrapDegrees(st.Angle)))
		}
	})
	tags.Spinner.Each(w, func(e *donburi.Entry) {
		spin := components.Spin.Get(e)
		lines = append(lines, fmt.Sprintf("spinner %d: %6.1f° (%+.1f/tick)", components.AsSprite(e).ID(), gamemath.WrapDegrees(spin.Angle), spin.Speed))
	})
	return lines
}
