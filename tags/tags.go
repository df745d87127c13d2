package tags

import "github.com/yohamta/donburi"

var (
	Player = donburi.NewTag().SetName("Player")
	Target = donburi.NewTag().SetName("Target")
)

// Resolv tags for broad-phase queries
const (
	ResolvPlayer     = "player"
	ResolvTarget     = "target"
	ResolvProjectile = "projectile"
)
