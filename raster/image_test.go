package raster

import (
	"image"
	"image/color"
	"testing"
)

// marker is a 4x2 image with a red pixel at (3,0) and everything else opaque white.
func marker() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, 4, 2))
	for y := 0; y < 2; y++ {
		for x := 0; x < 4; x++ {
			img.SetNRGBA(x, y, color.NRGBA{R: 255, G: 255, B: 255, A: 255})
		}
	}
	img.SetNRGBA(3, 0, color.NRGBA{R: 255, A: 255})
	return img
}

func TestNewCopiesSource(t *testing.T) {
	src := marker()
	img := New(src)
	src.SetNRGBA(0, 0, color.NRGBA{B: 255, A: 255})

	if got := img.NRGBA().NRGBAAt(0, 0); got.B != 255 || got.R != 255 {
		t.Errorf("image followed a change to its source: %v", got)
	}
}

func TestCloneIsIndependent(t *testing.T) {
	img := New(marker())
	clone := img.Clone().(*Image)
	clone.Rotated(90)

	if img.Bounds().Dx() != 4 || img.Bounds().Dy() != 2 {
		t.Errorf("original changed size to %v", img.Bounds())
	}
	if clone.Bounds().Dx() != 2 || clone.Bounds().Dy() != 4 {
		t.Errorf("rotated clone has bounds %v, want 2x4", clone.Bounds())
	}
}

func TestRotatedQuarterTurnIsCounterClockwise(t *testing.T) {
	img := New(marker())
	img.Rotated(90)

	// Top-right corner moves to top-left on a counter-clockwise quarter turn.
	if got := img.NRGBA().NRGBAAt(0, 0); got != (color.NRGBA{R: 255, A: 255}) {
		t.Errorf("pixel at (0,0) = %v, want the red marker", got)
	}
}

func TestRotatedFullTurnRestoresPixels(t *testing.T) {
	img := New(marker())
	want := New(marker())
	img.Rotated(360)

	if !img.Equal(want) {
		t.Error("rotating by 360 degrees changed the image")
	}
}

func TestEqual(t *testing.T) {
	a := New(marker())
	b := New(marker())
	if !a.Equal(b) {
		t.Fatal("identical images reported unequal")
	}
	b.Rotated(180)
	if a.Equal(b) {
		t.Error("half turn of an asymmetric image reported equal")
	}
	b.Rotated(90)
	if a.Equal(b) {
		t.Error("images of different size reported equal")
	}
}
