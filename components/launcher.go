package components

import (
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// ProjectileData is one shot owned by a launcher.
type ProjectileData struct {
	Transform        TransformData
	Direction        math.Vec2
	Speed            float64
	DistanceTraveled float64
	MaxDistance      float64
	Expired          bool
	SpriteSlot       int
	Object           *resolv.Object
}

// LauncherData is the ranged weapon. Projectiles never holds more than
// MaxProjectiles entries after a fire attempt.
type LauncherData struct {
	Cooldown       int
	Ammo           int
	MaxProjectiles int
	Speed          float64
	Projectiles    []*ProjectileData
	SpriteSlots    []int // Sprite slots reserved for projectiles
}

// Live counts projectiles that have not expired.
func (l *LauncherData) Live() int {
	n := 0
	for _, p := range l.Projectiles {
		if !p.Expired {
			n++
		}
	}
	return n
}

var Launcher = donburi.NewComponentType[LauncherData]()
