package systems

import (
	"strings"
	"testing"

	"github.com/automoto/spriterotate/systems/factory"
)

func TestHUDLines(t *testing.T) {
	e, registry := newTestECS(t)
	target := factory.CreateTarget(e, 0, 100, 16, testArrow(), 0, 0, 1)
	factory.CreateTurret(e, 0, 0, 8, 4, testArrow(), target)
	factory.CreateSpinner(e, 50, 50, 8, 4, testArrow(), 370, 2)
	UpdateFacing(e)

	lines := hudLines(e.World, registry)

	if len(lines) != 3 {
		t.Fatalf("got %d lines, want 3: %q", len(lines), lines)
	}
	if !strings.Contains(lines[0], "tracked: 2") || !strings.Contains(lines[0], "y-axis: down") {
		t.Errorf("header = %q", lines[0])
	}
	if !strings.Contains(lines[1], "turret") || !strings.Contains(lines[1], "90.0°") {
		t.Errorf("turret line = %q", lines[1])
	}
	if !strings.Contains(lines[2], "spinner") || !strings.Contains(lines[2], "10.0°") {
		t.Errorf("spinner line = %q", lines[2])
	}
}
