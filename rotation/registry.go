// Package rotation keeps sprites facing a chosen angle without compounding
// rotation error: every rotation starts from a pristine copy of the image the
// sprite had when it was first seen.
package rotation

import "github.com/automoto/spriterotate/shared/gamemath"

// YAxis tells the registry how the host's y coordinate relates to the
// direction its image primitive rotates.
type YAxis int

const (
	// YDown passes atan2(dy, dx) through unchanged. This matches screen space
	// where positive angles turn clockwise, as ebiten's GeoM.Rotate does.
	YDown YAxis = iota
	// YUp negates dy before atan2, for primitives that turn counter-clockwise
	// in a y-down space.
	YUp
)

// State is the orientation record kept for one sprite.
type State struct {
	BaseImage Image
	Angle     float64
}

// Registry maps sprite identities to their orientation state. Entries are
// created on first use and never removed.
//
// A Registry is not safe for concurrent use; confine it to the game's update
// goroutine.
type Registry struct {
	states map[ID]*State
	yAxis  YAxis
}

type Option func(*Registry)

// WithYAxis sets the coordinate convention used by PointTowards.
func WithYAxis(axis YAxis) Option {
	return func(r *Registry) {
		r.yAxis = axis
	}
}

func NewRegistry(opts ...Option) *Registry {
	r := &Registry{
		states: make(map[ID]*State),
		yAxis:  YDown,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// YAxis returns the convention the registry was built with.
func (r *Registry) YAxis() YAxis {
	return r.yAxis
}

// Ensure returns the state for s, capturing a copy of its current image the
// first time s is seen.
func (r *Registry) Ensure(s Sprite) *State {
	if st, ok := r.states[s.ID()]; ok {
		return st
	}
	st := &State{
		BaseImage: s.Image().Clone(),
	}
	r.states[s.ID()] = st
	return st
}

// Initialize registers s without rotating it.
func (r *Registry) Initialize(s Sprite) {
	r.Ensure(s)
}

// RotateTo replaces the sprite's image with its base image rotated by
// degrees. Any value is accepted; wrapping is left to the image primitive.
func (r *Registry) RotateTo(s Sprite, degrees float64) {
	st := r.Ensure(s)
	st.Angle = degrees

	img := st.BaseImage.Clone()
	img.Rotated(degrees)
	s.SetImage(img)
}

// AngleTowards returns the angle in degrees PointTowards would apply.
func (r *Registry) AngleTowards(s, target Sprite) float64 {
	dx := target.X() - s.X()
	dy := target.Y() - s.Y()
	if r.yAxis == YUp {
		dy = -dy
	}
	return gamemath.AngleDegrees(dx, dy)
}

// PointTowards rotates s to face target.
func (r *Registry) PointTowards(s, target Sprite) {
	r.RotateTo(s, r.AngleTowards(s, target))
}

// Lookup returns the state for id without creating one.
func (r *Registry) Lookup(id ID) (*State, bool) {
	st, ok := r.states[id]
	return st, ok
}

// Len returns the number of tracked sprites.
func (r *Registry) Len() int {
	return len(r.states)
}
