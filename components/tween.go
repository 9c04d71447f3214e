package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// TweenData moves an entity back and forth between Origin and
// Origin+Travel. Out and Back both run progress between 0 and 1.
type TweenData struct {
	OriginX, OriginY float64
	TravelX, TravelY float64
	Out              *gween.Tween
	Back             *gween.Tween
	Returning        bool
}

var Tween = donburi.NewComponentType[TweenData]()
