// Package assets provides the demo's sprite art and the ebiten image adapter.
// Art is generated at startup so the demo ships without image files.
package assets

import (
	"image"
	"image/color"
)

// Arrow draws a w×h arrow pointing along +x: a shaft across the middle third
// of the height ending in a triangular head over the last third of the width.
func Arrow(w, h int, c color.NRGBA) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	headStart := w - w/3
	midY := float64(h-1) / 2
	shaftHalf := float64(h) / 6

	for x := 0; x < w; x++ {
		for y := 0; y < h; y++ {
			dy := abs(float64(y) - midY)
			if x < headStart {
				if dy <= shaftHalf {
					img.SetNRGBA(x, y, c)
				}
				continue
			}
			// Head half-height shrinks linearly to zero at the tip.
			progress := float64(x-headStart) / float64(w-headStart)
			if dy <= (1-progress)*float64(h)/2 {
				img.SetNRGBA(x, y, c)
			}
		}
	}
	return img
}

// Orb draws a filled circle of radius r.
func Orb(r int, c color.NRGBA) *image.NRGBA {
	size := 2 * r
	img := image.NewNRGBA(image.Rect(0, 0, size, size))
	center := float64(r) - 0.5
	for x := 0; x < size; x++ {
		for y := 0; y < size; y++ {
			dx, dy := float64(x)-center, float64(y)-center
			if dx*dx+dy*dy <= float64(r*r) {
				img.SetNRGBA(x, y, c)
			}
		}
	}
	return img
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
