package assets

import (
	"image"
	"math"

	"github.com/automoto/spriterotate/rotation"
	"github.com/automoto/spriterotate/shared/gamemath"
	"github.com/hajimehoshi/ebiten/v2"
)

// Image adapts an *ebiten.Image to rotation.Image. Rotation turns clockwise
// on screen, which matches rotation.YDown.
type Image struct {
	img   *ebiten.Image
	owned bool
}

var _ rotation.Image = (*Image)(nil)

// NewImage uploads src to the GPU.
func NewImage(src image.Image) *Image {
	return &Image{img: ebiten.NewImageFromImage(src), owned: true}
}

// WrapImage adapts an existing ebiten image without taking ownership of it.
func WrapImage(img *ebiten.Image) *Image {
	return &Image{img: img}
}

// Ebiten returns the image to draw.
func (i *Image) Ebiten() *ebiten.Image {
	return i.img
}

func (i *Image) Clone() rotation.Image {
	b := i.img.Bounds()
	dst := ebiten.NewImage(b.Dx(), b.Dy())

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(-float64(b.Min.X), -float64(b.Min.Y))
	op.Blend = ebiten.BlendCopy
	dst.DrawImage(i.img, op)

	return &Image{img: dst, owned: true}
}

// Rotated redraws the image turned by degrees around its centre. The new
// image is sized to the rotated bounding box.
func (i *Image) Rotated(degrees float64) {
	b := i.img.Bounds()
	w, h := float64(b.Dx()), float64(b.Dy())
	rad := gamemath.DegToRad(degrees)
	sin, cos := math.Abs(math.Sin(rad)), math.Abs(math.Cos(rad))
	nw := max(int(math.Ceil(w*cos+h*sin)), 1)
	nh := max(int(math.Ceil(w*sin+h*cos)), 1)

	dst := ebiten.NewImage(nw, nh)
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(-float64(b.Min.X)-w/2, -float64(b.Min.Y)-h/2)
	op.GeoM.Rotate(rad)
	op.GeoM.Translate(float64(nw)/2, float64(nh)/2)
	op.Filter = ebiten.FilterLinear
	dst.DrawImage(i.img, op)

	i.Dispose()
	i.img = dst
	i.owned = true
}

// Dispose frees the GPU memory of images this adapter created. Wrapped
// images are left alone.
func (i *Image) Dispose() {
	if i.owned {
		i.img.Deallocate()
	}
}
