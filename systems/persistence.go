package systems

import (
	"encoding/json"
	"log"

	"github.com/automoto/spriterotate/components"
	cfg "github.com/automoto/spriterotate/config"
	"github.com/quasilyte/gdata"
	"github.com/yohamta/donburi/ecs"
)

// SavedSettings represents the settings data stored on disk. Orientation
// state is never saved.
type SavedSettings struct {
	ShowOverlay  bool    `json:"showOverlay"`
	SpinMaxSpeed float64 `json:"spinMaxSpeed"`
}

var gdataManager *gdata.Manager

// InitPersistence initializes the gdata manager for settings storage
func InitPersistence() error {
	m, err := gdata.Open(gdata.Config{
		AppName: "spriterotate",
	})
	if err != nil {
		return err
	}
	gdataManager = m
	return nil
}

// LoadSettings loads settings from disk. It returns nil when persistence is
// unavailable or nothing was saved yet.
func LoadSettings() (*SavedSettings, error) {
	if gdataManager == nil {
		return nil, nil
	}

	data, err := gdataManager.LoadItem("settings")
	if err != nil {
		log.Printf("Warning: Could not load settings: %v", err)
		return nil, nil
	}
	if len(data) == 0 {
		// No saved settings yet, use defaults
		return nil, nil
	}

	return decodeSettings(data)
}

// SaveSettings saves settings to disk
func SaveSettings(s *SavedSettings) error {
	if gdataManager == nil {
		return nil
	}

	data, err := json.Marshal(s)
	if err != nil {
		log.Printf("Warning: Could not serialize settings: %v", err)
		return err
	}

	if err := gdataManager.SaveItem("settings", data); err != nil {
		log.Printf("Warning: Could not save settings: %v", err)
		return err
	}
	return nil
}

func decodeSettings(data []byte) (*SavedSettings, error) {
	var settings SavedSettings
	if err := json.Unmarshal(data, &settings); err != nil {
		log.Printf("Warning: Could not parse saved settings: %v", err)
		return nil, err
	}
	if settings.SpinMaxSpeed <= 0 {
		settings.SpinMaxSpeed = cfg.Arena.SpinMaxSpeed
	}
	return &settings, nil
}

// ApplySavedSettingsGlobal applies settings to the global config.
// Used during startup before scenes are created.
func ApplySavedSettingsGlobal(saved *SavedSettings) {
	if saved == nil {
		return
	}
	cfg.Debug.ShowOverlay = saved.ShowOverlay
	cfg.Arena.SpinMaxSpeed = saved.SpinMaxSpeed
}

// UpdateSettings toggles the debug overlay and saves changed settings.
func UpdateSettings(ecs *ecs.ECS) {
	entry, ok := components.Settings.First(ecs.World)
	if !ok {
		return
	}
	settings := components.Settings.Get(entry)

	if input := currentInput(ecs); input != nil && input.JustPressed(cfg.ActionToggleDebug) {
		settings.ShowOverlay = !settings.ShowOverlay
		settings.Dirty = true
	}

	if settings.Dirty {
		settings.Dirty = false
		_ = SaveSettings(&SavedSettings{
			ShowOverlay:  settings.ShowOverlay,
			SpinMaxSpeed: settings.SpinMaxSpeed,
		})
	}
}
