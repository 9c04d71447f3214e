package components

import (
	"testing"

	cfg "github.com/automoto/spriterotate/config"
)

func TestInputJustPressed(t *testing.T) {
	var in InputData

	in.Current[cfg.ActionResetSpin] = true
	if !in.Pressed(cfg.ActionResetSpin) || !in.JustPressed(cfg.ActionResetSpin) {
		t.Fatal("first frame should be pressed and just pressed")
	}

	in.Previous = in.Current
	if !in.Pressed(cfg.ActionResetSpin) || in.JustPressed(cfg.ActionResetSpin) {
		t.Error("held key should be pressed but not just pressed")
	}

	in.Current = [cfg.ActionCount]bool{}
	if in.Pressed(cfg.ActionResetSpin) || in.JustPressed(cfg.ActionResetSpin) {
		t.Error("released key reported pressed")
	}
}
