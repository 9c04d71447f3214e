package gamemath

import (
	"math"
	"testing"
)

func TestAngleDegrees(t *testing.T) {
	tests := []struct {
		name   string
		dx, dy float64
		want   float64
	}{
		{"east", 10, 0, 0},
		{"south in screen space", 0, 10, 90},
		{"west", -10, 0, 180},
		{"north in screen space", 0, -10, -90},
		{"diagonal", 5, 5, 45},
		{"zero vector", 0, 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := AngleDegrees(tt.dx, tt.dy)
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("AngleDegrees(%v, %v) = %v, want %v", tt.dx, tt.dy, got, tt.want)
			}
		})
	}
}

func TestDegRadRoundTrip(t *testing.T) {
	for _, deg := range []float64{-720, -90, 0, 33.5, 180, 1080} {
		if got := RadToDeg(DegToRad(deg)); math.Abs(got-deg) > 1e-9 {
			t.Errorf("round trip of %v gave %v", deg, got)
		}
	}
	if got := DegToRad(180); math.Abs(got-math.Pi) > 1e-12 {
		t.Errorf("DegToRad(180) = %v, want pi", got)
	}
}

func TestWrapDegrees(t *testing.T) {
	tests := map[float64]float64{
		0:    0,
		180:  180,
		-180: 180,
		270:  -90,
		-270: 90,
		720:  0,
		725:  5,
	}
	for in, want := range tests {
		if got := WrapDegrees(in); math.Abs(got-want) > 1e-9 {
			t.Errorf("WrapDegrees(%v) = %v, want %v", in, got, want)
		}
	}
}

func TestSpinPhysics(t *testing.T) {
	if got := SpinInput(true, false, 0.5); got != -0.5 {
		t.Errorf("left only: got %v", got)
	}
	if got := SpinInput(false, true, 0.5); got != 0.5 {
		t.Errorf("right only: got %v", got)
	}
	if got := SpinInput(true, true, 0.5); got != 0 {
		t.Errorf("both: got %v", got)
	}
	if got := ApplyFriction(0.1, 0.25); got != 0 {
		t.Errorf("friction should stop slow spin, got %v", got)
	}
	if got := ApplyFriction(-2, 0.5); got != -1.5 {
		t.Errorf("ApplyFriction(-2, 0.5) = %v", got)
	}
	if got := ClampSpeed(12, 8); got != 8 {
		t.Errorf("ClampSpeed(12, 8) = %v", got)
	}
}
