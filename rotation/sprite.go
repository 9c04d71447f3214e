package rotation

// ID is the stable identity the host runtime assigns to a sprite.
type ID uint64

// Image is a rotatable visual representation owned by the host runtime.
type Image interface {
	// Clone returns an independent deep copy.
	Clone() Image
	// Rotated rotates the image in place by the given angle in degrees.
	Rotated(degrees float64)
}

// Sprite is a positioned game entity with a replaceable image.
type Sprite interface {
	ID() ID
	X() float64
	Y() float64
	Image() Image
	SetImage(img Image)
}
