package config

import (
	"image/color"

	"github.com/yohamta/donburi/ecs"
)

// Config contains the window configuration
type Config struct {
	Width  int
	Height int
}

// ArenaConfig contains sizes, colors and speeds used by the demo arena
type ArenaConfig struct {
	// Sprite art
	ArrowWidth  int
	ArrowHeight int
	OrbRadius   int

	// Spinner input (degrees per tick)
	SpinAccel    float64
	SpinFriction float64
	SpinMaxSpeed float64

	// Colors
	Background   color.RGBA
	TurretColor  color.NRGBA
	SpinnerColor color.NRGBA
	TargetColor  color.NRGBA

	// Resolv grid cell size
	CellSize int
}

// UIConfig contains HUD layout values
type UIConfig struct {
	HUDMargin     float64
	HUDLineHeight float64
	TextColor     color.RGBA
	DebugColor    color.RGBA
}

// DebugConfig contains debug/testing command-line options
type DebugConfig struct {
	ShowOverlay bool // Draw pivots and facing lines
}

// Global configuration instances
var C *Config
var Arena ArenaConfig
var UI UIConfig
var Debug DebugConfig

// Default is the only render layer
const Default ecs.LayerID = 0

// Shared RGBA color constants
var (
	White     = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Yellow    = color.RGBA{R: 255, G: 255, B: 0, A: 255}
	LightBlue = color.RGBA{R: 100, G: 180, B: 255, A: 255}
	Magenta   = color.RGBA{R: 255, G: 0, B: 255, A: 255}
	DarkSlate = color.RGBA{R: 24, G: 28, B: 36, A: 255}
)

func init() {
	C = &Config{
		Width:  640,
		Height: 368,
	}

	Arena = ArenaConfig{
		ArrowWidth:  36,
		ArrowHeight: 14,
		OrbRadius:   8,

		SpinAccel:    0.4,
		SpinFriction: 0.1,
		SpinMaxSpeed: 12.0,

		Background:   DarkSlate,
		TurretColor:  color.NRGBA{R: 255, G: 200, B: 60, A: 255},
		SpinnerColor: color.NRGBA{R: 120, G: 220, B: 140, A: 255},
		TargetColor:  color.NRGBA{R: 240, G: 80, B: 80, A: 255},

		CellSize: 16,
	}

	UI = UIConfig{
		HUDMargin:     8,
		HUDLineHeight: 14,
		TextColor:     White,
		DebugColor:    Magenta,
	}

	Debug = DebugConfig{
		ShowOverlay: false,
	}
}
