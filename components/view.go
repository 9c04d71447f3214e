package components

import (
	"github.com/automoto/spriterotate/rotation"
	"github.com/yohamta/donburi"
)

// entrySprite presents an entity with Object and Sprite components as a
// rotation.Sprite. Its position is the centre of the object.
type entrySprite struct {
	entry *donburi.Entry
}

// AsSprite adapts e for use with a rotation.Registry.
func AsSprite(e *donburi.Entry) rotation.Sprite {
	return entrySprite{entry: e}
}

func (s entrySprite) ID() rotation.ID {
	return rotation.ID(s.entry.Entity())
}

func (s entrySprite) X() float64 {
	x, _ := Object.Get(s.entry).Center()
	return x
}

func (s entrySprite) Y() float64 {
	_, y := Object.Get(s.entry).Center()
	return y
}

func (s entrySprite) Image() rotation.Image {
	return Sprite.Get(s.entry).Image
}

// SetImage swaps the sprite image and frees the replaced one when it holds
// GPU memory.
func (s entrySprite) SetImage(img rotation.Image) {
	sprite := Sprite.Get(s.entry)
	if old, ok := sprite.Image.(interface{ Dispose() }); ok && sprite.Image != img {
		old.Dispose()
	}
	sprite.Image = img
}

// Registry returns the world's orientation registry.
func Registry(w donburi.World) (*rotation.Registry, bool) {
	entry, ok := Orientation.First(w)
	if !ok {
		return nil, false
	}
	return Orientation.Get(entry).Registry, true
}
