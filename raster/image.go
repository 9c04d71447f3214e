// Package raster implements rotation.Image on the CPU with
// github.com/disintegration/imaging.
//
// Rotated turns the image counter-clockwise. When sprite positions use a
// y-down space, build the registry with rotation.WithYAxis(rotation.YUp) so
// PointTowards faces the right way.
package raster

import (
	"bytes"
	"image"
	"image/color"

	"github.com/automoto/spriterotate/rotation"
	"github.com/disintegration/imaging"
)

type Image struct {
	img *image.NRGBA
}

var _ rotation.Image = (*Image)(nil)

// New copies src into a new Image.
func New(src image.Image) *Image {
	return &Image{img: imaging.Clone(src)}
}

func (i *Image) Clone() rotation.Image {
	return &Image{img: imaging.Clone(i.img)}
}

// Rotated rotates in place. The bounds grow to fit the rotated content and
// uncovered pixels are transparent.
func (i *Image) Rotated(degrees float64) {
	i.img = imaging.Rotate(i.img, degrees, color.Transparent)
}

// NRGBA returns the underlying pixels. Callers must not modify them.
func (i *Image) NRGBA() *image.NRGBA {
	return i.img
}

func (i *Image) Bounds() image.Rectangle {
	return i.img.Bounds()
}

// Equal reports whether both images have the same size and pixels.
func (i *Image) Equal(other *Image) bool {
	if i.img.Bounds().Size() != other.img.Bounds().Size() {
		return false
	}
	return bytes.Equal(i.img.Pix, other.img.Pix)
}
