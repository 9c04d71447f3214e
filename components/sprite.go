package components

import (
	"github.com/automoto/spriterotate/rotation"
	"github.com/yohamta/donburi"
)

// SpriteData holds the image currently shown for an entity. Rotated sprites
// have this image replaced by the orientation registry every tick.
type SpriteData struct {
	Image rotation.Image
}

var Sprite = donburi.NewComponentType[SpriteData]()
