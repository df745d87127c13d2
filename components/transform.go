package components

import "github.com/yohamta/donburi"

// TransformData is an entity's world position. PendingX/PendingY accumulate
// every translation applied this frame.
type TransformData struct {
	X, Y               float64
	PendingX, PendingY float64
}

// Translate moves the transform and records the movement for this frame.
func (t *TransformData) Translate(dx, dy float64) {
	t.X += dx
	t.Y += dy
	t.PendingX += dx
	t.PendingY += dy
}

// BeginFrame clears the pending translation.
func (t *TransformData) BeginFrame() {
	t.PendingX, t.PendingY = 0, 0
}

var Transform = donburi.NewComponentType[TransformData]()
