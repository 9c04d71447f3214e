package scenes

import (
	"fmt"
	"image"
	"sync"

	"github.com/automoto/spriterotate/assets"
	cfg "github.com/automoto/spriterotate/config"
	"github.com/automoto/spriterotate/rotation"
	"github.com/automoto/spriterotate/shared/leveldata"
	"github.com/automoto/spriterotate/systems"
	"github.com/automoto/spriterotate/systems/factory"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// ImageFunc turns generated art into a rotatable image.
type ImageFunc func(src image.Image) rotation.Image

// ArenaScene shows turrets tracking moving targets and spinners driven by
// input, all rotated through one registry.
type ArenaScene struct {
	ecs      *ecs.ECS
	arena    *leveldata.Arena
	registry *rotation.Registry
	once     sync.Once
}

func NewArenaScene(arena *leveldata.Arena, registry *rotation.Registry) *ArenaScene {
	return &ArenaScene{arena: arena, registry: registry}
}

func (as *ArenaScene) Update() {
	as.once.Do(as.configure)
	as.ecs.Update()
}

func (as *ArenaScene) Draw(screen *ebiten.Image) {
	screen.Fill(cfg.Arena.Background)

	if as.ecs == nil {
		return
	}
	as.ecs.Draw(screen)
}

func (as *ArenaScene) configure() {
	ecs := ecs.NewECS(donburi.NewWorld())

	ecs.AddSystem(systems.UpdateInput)
	ecs.AddSystem(systems.UpdateSettings)
	ecs.AddSystem(systems.UpdateTweens)
	ecs.AddSystem(systems.UpdateObjects)
	ecs.AddSystem(systems.UpdateFacing)
	ecs.AddSystem(systems.UpdateSpin)

	ecs.AddRenderer(cfg.Default, systems.DrawSprites)
	ecs.AddRenderer(cfg.Default, systems.DrawDebug)
	ecs.AddRenderer(cfg.Default, systems.DrawHUD)

	if err := Populate(ecs, as.arena, as.registry, func(src image.Image) rotation.Image {
		return assets.NewImage(src)
	}); err != nil {
		panic("failed to populate arena: " + err.Error())
	}

	as.ecs = ecs
}

// Populate creates the singletons and every entity described by arena.
// Targets are created first so turrets can reference them.
func Populate(ecs *ecs.ECS, arena *leveldata.Arena, registry *rotation.Registry, newImage ImageFunc) error {
	factory.CreateSpace(ecs, arena.Width, arena.Height, cfg.Arena.CellSize, cfg.Arena.CellSize)
	factory.CreateOrientation(ecs, registry)
	factory.CreateSettings(ecs)
	factory.CreateInput(ecs)

	orbSize := float64(2 * cfg.Arena.OrbRadius)
	arrowW, arrowH := float64(cfg.Arena.ArrowWidth), float64(cfg.Arena.ArrowHeight)

	targets := make(map[string]*donburi.Entry, len(arena.Targets))
	for _, t := range arena.Targets {
		img := newImage(assets.Orb(cfg.Arena.OrbRadius, cfg.Arena.TargetColor))
		targets[t.Name] = factory.CreateTarget(ecs, t.X, t.Y, orbSize, img, t.TravelX, t.TravelY, t.Duration)
	}

	for _, tu := range arena.Turrets {
		target, ok := targets[tu.Target]
		if !ok {
			return fmt.Errorf("turret at (%.0f, %.0f): unknown target %q", tu.X, tu.Y, tu.Target)
		}
		img := newImage(assets.Arrow(cfg.Arena.ArrowWidth, cfg.Arena.ArrowHeight, cfg.Arena.TurretColor))
		factory.CreateTurret(ecs, tu.X, tu.Y, arrowW, arrowH, img, target)
	}

	for _, sp := range arena.Spinners {
		img := newImage(assets.Arrow(cfg.Arena.ArrowWidth, cfg.Arena.ArrowHeight, cfg.Arena.SpinnerColor))
		factory.CreateSpinner(ecs, sp.X, sp.Y, arrowW, arrowH, img, sp.Angle, sp.Speed)
	}

	return nil
}
