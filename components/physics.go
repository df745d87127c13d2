package components

import (
	"github.com/yohamta/donburi"
)

// Blocked flag indices.
const (
	SideLeft  = 0
	SideRight = 1
)

type PhysicsData struct {
	VX, VY     float64
	Grounded   bool
	Slope      float64 // Surface height under the actor, recomputed each frame
	SlopeAccel float64 // Horizontal multiplier of that surface
	Blocked    [2]bool // Indexed by SideLeft / SideRight
}

// BlockedAhead reports whether the side the actor is moving toward is blocked.
func (p *PhysicsData) BlockedAhead() bool {
	return (p.VX > 0 && p.Blocked[SideRight]) || (p.VX < 0 && p.Blocked[SideLeft])
}

var Physics = donburi.NewComponentType[PhysicsData]()
