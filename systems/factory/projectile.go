package factory

import (
	"github.com/automoto/bugspy/components"
	cfg "github.com/automoto/bugspy/config"
	"github.com/automoto/bugspy/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

// NewProjectile builds a projectile at (x, y) flying along dir, adds its sweep
// object to the space and shows it in the given sprite slot.
func NewProjectile(ecs *ecs.ECS, x, y float64, dir math.Vec2, speed float64, slot int) *components.ProjectileData {
	obj := resolv.NewObject(x, y, cfg.Projectile.Width, cfg.Projectile.Height, tags.ResolvProjectile)
	obj.SetShape(resolv.NewRectangle(0, 0, cfg.Projectile.Width, cfg.Projectile.Height))
	SpaceOf(ecs).Add(obj)

	p := &components.ProjectileData{
		Transform:   components.TransformData{X: x, Y: y},
		Direction:   dir,
		Speed:       speed,
		MaxDistance: cfg.Projectile.MaxDistance,
		SpriteSlot:  slot,
		Object:      obj,
	}
	obj.Data = p

	render := components.RenderState.Get(MustGame(ecs))
	if s := render.Sprite(slot); s != nil {
		s.X, s.Y = x, y
		s.Hidden = false
		s.FlipX = dir.X < 0
	}
	return p
}
