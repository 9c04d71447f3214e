package main

import (
	"flag"
	"io/fs"
	"log"
	"os"
	"path/filepath"

	"github.com/automoto/spriterotate/assets"
	"github.com/automoto/spriterotate/config"
	"github.com/automoto/spriterotate/fonts"
	"github.com/automoto/spriterotate/rotation"
	"github.com/automoto/spriterotate/scenes"
	"github.com/automoto/spriterotate/shared/leveldata"
	"github.com/automoto/spriterotate/systems"
	"github.com/hajimehoshi/ebiten/v2"
)

type Game struct {
	scene scenes.Scene
}

func (g *Game) Update() error {
	g.scene.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	return config.C.Width, config.C.Height
}

func main() {
	arenaPath := flag.String("arena", "", "TMX arena file (default: built-in arena)")
	yUp := flag.Bool("yup", false, "Negate dy when pointing sprites (for counter-clockwise rotation primitives)")
	debug := flag.Bool("debug", false, "Show the debug overlay")
	flag.Parse()

	// Initialize persistence and load saved settings
	if err := systems.InitPersistence(); err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
	}
	if saved, err := systems.LoadSettings(); err == nil && saved != nil {
		systems.ApplySavedSettingsGlobal(saved)
	}
	if *debug {
		config.Debug.ShowOverlay = true
	}

	if err := fonts.LoadDefaultFonts(); err != nil {
		log.Fatalf("Failed to load fonts: %v", err)
	}

	var fsys fs.FS = assets.ArenaFS
	path := assets.DefaultArena
	if *arenaPath != "" {
		fsys = os.DirFS(filepath.Dir(*arenaPath))
		path = filepath.Base(*arenaPath)
	}
	arena, err := leveldata.LoadArena(fsys, path)
	if err != nil {
		log.Fatalf("Failed to load arena: %v", err)
	}

	axis := rotation.YDown
	if *yUp {
		axis = rotation.YUp
	}
	registry := rotation.NewRegistry(rotation.WithYAxis(axis))

	ebiten.SetWindowSize(config.C.Width*2, config.C.Height*2)
	ebiten.SetWindowTitle("spriterotate")

	if err := ebiten.RunGame(&Game{scene: scenes.NewArenaScene(arena, registry)}); err != nil {
		log.Fatal(err)
	}
}
