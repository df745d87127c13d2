package factory

import (
	"github.com/automoto/bugspy/archetypes"
	"github.com/automoto/bugspy/components"
	cfg "github.com/automoto/bugspy/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreatePlayer spawns the player airborne at (x, y) with a full launcher.
// Sprite slot 0 is the player; the launcher reserves the next slots.
func CreatePlayer(ecs *ecs.ECS, x, y float64) *donburi.Entry {
	player := archetypes.Player.Spawn(ecs)
	render := components.RenderState.Get(MustGame(ecs))

	components.Transform.SetValue(player, components.TransformData{X: x, Y: y})
	components.Collider.SetValue(player, components.ColliderData{
		Top:    cfg.Player.ColliderTop,
		Bottom: cfg.Player.ColliderBottom,
		Left:   cfg.Player.ColliderLeft,
		Right:  cfg.Player.ColliderRight,
	})
	components.Physics.SetValue(player, components.PhysicsData{
		SlopeAccel: 1,
	})

	slot := render.AddSprite(components.SpriteBinding{
		Tile: cfg.Player.SpriteTile,
		X:    x,
		Y:    y,
		W:    cfg.Player.ColliderRight - cfg.Player.ColliderLeft,
		H:    cfg.Player.ColliderBottom - cfg.Player.ColliderTop,
	})

	components.Player.SetValue(player, components.PlayerData{
		State:      cfg.Jumping,
		Facing:     cfg.DirectionRight,
		SpriteSlot: slot,
	})

	slots := make([]int, cfg.Launcher.MaxProjectiles)
	for i := range slots {
		slots[i] = render.AddSprite(components.SpriteBinding{
			Tile:   cfg.Projectile.SpriteTile,
			W:      cfg.Projectile.Width,
			H:      cfg.Projectile.Height,
			Hidden: true,
		})
	}
	components.Launcher.SetValue(player, components.LauncherData{
		Cooldown:       0,
		Ammo:           cfg.Launcher.Ammo,
		MaxProjectiles: cfg.Launcher.MaxProjectiles,
		Speed:          cfg.Launcher.Speed,
		SpriteSlots:    slots,
	})

	return player
}
