// Package leveldata parses arena layouts from TMX files into plain data
// that does not depend on the ECS or the renderer.
package leveldata

// Arena holds everything the demo scene spawns from a TMX file.
type Arena struct {
	Width    int
	Height   int
	Targets  []Target
	Turrets  []Turret
	Spinners []Spinner
}

// Target is a named object that turrets can face. It travels back and forth
// by (TravelX, TravelY) over Duration seconds.
type Target struct {
	Name     string
	X, Y     float64
	TravelX  float64
	TravelY  float64
	Duration float64
}

// Turret keeps facing the target with the given name.
type Turret struct {
	X, Y   float64
	Target string
}

// Spinner starts at Angle degrees and turns by Speed degrees per tick.
type Spinner struct {
	X, Y  float64
	Angle float64
	Speed float64
}
