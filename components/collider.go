package components

import (
	"github.com/automoto/bugspy/shared/probe"
	"github.com/yohamta/donburi"
)

// ColliderData is an axis-aligned box given as offsets from a transform.
// MapHits, Overlapping and Rays hold the latest probe only.
type ColliderData struct {
	Top, Bottom, Left, Right float64

	MapHits     []probe.Hit
	Overlapping []*donburi.Entry
	Rays        []probe.Ray
}

// Reset clears the previous query result.
func (c *ColliderData) Reset() {
	c.MapHits = c.MapHits[:0]
	c.Overlapping = c.Overlapping[:0]
	c.Rays = c.Rays[:0]
}

// Rect returns the box in world space for a transform.
func (c *ColliderData) Rect(t *TransformData) (x, y, w, h float64) {
	return t.X + c.Left, t.Y + c.Top, c.Right - c.Left, c.Bottom - c.Top
}

var Collider = donburi.NewComponentType[ColliderData]()
