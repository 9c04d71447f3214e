package leveldata

import (
	"fmt"
	"io/fs"
	"sort"

	"github.com/lafriks/go-tiled"
)

const defaultTravelDuration = 2.0

// LoadArena parses a TMX file into an Arena. It takes an fs.FS so callers
// can pass embed.FS or os.DirFS.
func LoadArena(fsys fs.FS, tmxPath string) (*Arena, error) {
	arenaMap, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}

	arena := &Arena{
		Width:  arenaMap.Width * arenaMap.TileWidth,
		Height: arenaMap.Height * arenaMap.TileHeight,
	}

	for _, og := range arenaMap.ObjectGroups {
		switch og.Name {
		case "Targets":
			for _, o := range og.Objects {
				duration := o.Properties.GetFloat("duration")
				if duration <= 0 {
					duration = defaultTravelDuration
				}
				arena.Targets = append(arena.Targets, Target{
					Name:     o.Name,
					X:        o.X,
					Y:        o.Y,
					TravelX:  o.Properties.GetFloat("travelX"),
					TravelY:  o.Properties.GetFloat("travelY"),
					Duration: duration,
				})
			}
		case "Turrets":
			for _, o := range og.Objects {
				arena.Turrets = append(arena.Turrets, Turret{
					X:      o.X,
					Y:      o.Y,
					Target: o.Properties.GetString("target"),
				})
			}
		case "Spinners":
			for _, o := range og.Objects {
				arena.Spinners = append(arena.Spinners, Spinner{
					X:     o.X,
					Y:     o.Y,
					Angle: o.Properties.GetFloat("angle"),
					Speed: o.Properties.GetFloat("speed"),
				})
			}
		}
	}

	if err := arena.validate(); err != nil {
		return nil, fmt.Errorf("arena %s: %w", tmxPath, err)
	}

	// Sort left-to-right for a stable spawn order
	sort.SliceStable(arena.Turrets, func(i, j int) bool {
		return arena.Turrets[i].X < arena.Turrets[j].X
	})

	return arena, nil
}

// FindTarget returns the target with the given name.
func (a *Arena) FindTarget(name string) (Target, bool) {
	for _, t := range a.Targets {
		if t.Name == name {
			return t, true
		}
	}
	return Target{}, false
}

func (a *Arena) validate() error {
	seen := make(map[string]bool, len(a.Targets))
	for _, t := range a.Targets {
		if t.Name == "" {
			return fmt.Errorf("target at (%.0f, %.0f) has no name", t.X, t.Y)
		}
		if seen[t.Name] {
			return fmt.Errorf("duplicate target %q", t.Name)
		}
		seen[t.Name] = true
	}
	for _, tu := range a.Turrets {
		if !seen[tu.Target] {
			return fmt.Errorf("turret at (%.0f, %.0f) faces unknown target %q", tu.X, tu.Y, tu.Target)
		}
	}
	return nil
}
