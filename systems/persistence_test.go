package systems

import (
	"testing"

	"github.com/automoto/spriterotate/components"
	cfg "github.com/automoto/spriterotate/config"
	"github.com/automoto/spriterotate/systems/factory"
)

func TestDecodeSettings(t *testing.T) {
	saved, err := decodeSettings([]byte(`{"showOverlay":true,"spinMaxSpeed":4}`))
	if err != nil {
		t.Fatalf("decodeSettings: %v", err)
	}
	if !saved.ShowOverlay || saved.SpinMaxSpeed != 4 {
		t.Errorf("saved = %+v", saved)
	}
}

func TestDecodeSettingsDefaultsSpinSpeed(t *testing.T) {
	saved, err := decodeSettings([]byte(`{"showOverlay":false}`))
	if err != nil {
		t.Fatalf("decodeSettings: %v", err)
	}
	if saved.SpinMaxSpeed != cfg.Arena.SpinMaxSpeed {
		t.Errorf("SpinMaxSpeed = %v, want config default %v", saved.SpinMaxSpeed, cfg.Arena.SpinMaxSpeed)
	}
}

func TestDecodeSettingsRejectsGarbage(t *testing.T) {
	if _, err := decodeSettings([]byte(`{not json`)); err == nil {
		t.Error("garbage accepted")
	}
}

func TestUpdateSettingsTogglesOverlay(t *testing.T) {
	e, _ := newTestECS(t)
	settings := components.Settings.Get(factory.CreateSettings(e))
	input := components.Input.Get(factory.CreateInput(e))
	initial := settings.ShowOverlay

	input.Current[cfg.ActionToggleDebug] = true
	UpdateSettings(e)
	if settings.ShowOverlay == initial {
		t.Fatal("overlay not toggled")
	}
	if settings.Dirty {
		t.Error("settings still dirty after the update saved them")
	}

	// Holding the key does not toggle again.
	input.Previous = input.Current
	UpdateSettings(e)
	if settings.ShowOverlay == initial {
		t.Error("held key toggled the overlay back")
	}
}
