package factory

import (
	"github.com/automoto/bugspy/archetypes"
	"github.com/automoto/bugspy/components"
	cfg "github.com/automoto/bugspy/config"
	"github.com/automoto/bugspy/shared/leveldata"
	"github.com/automoto/bugspy/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateTarget spawns a hittable target and registers its collider in the
// broad-phase space.
func CreateTarget(ecs *ecs.ECS, x, y float64) *donburi.Entry {
	target := archetypes.Target.Spawn(ecs)
	render := components.RenderState.Get(MustGame(ecs))

	transform := components.TransformData{X: x, Y: y}
	collider := components.ColliderData{
		Top:    cfg.Target.ColliderTop,
		Bottom: cfg.Target.ColliderBottom,
		Left:   cfg.Target.ColliderLeft,
		Right:  cfg.Target.ColliderRight,
	}
	components.Transform.SetValue(target, transform)
	components.Collider.SetValue(target, collider)

	ox, oy, w, h := collider.Rect(&transform)
	obj := resolv.NewObject(ox, oy, w, h, tags.ResolvTarget)
	obj.SetShape(resolv.NewRectangle(0, 0, w, h))
	obj.Data = target
	components.Object.Set(target, &components.ObjectData{Object: obj})
	SpaceOf(ecs).Add(obj)

	slot := render.AddSprite(components.SpriteBinding{
		Tile: cfg.Target.SpriteTile,
		X:    ox,
		Y:    oy,
		W:    w,
		H:    h,
	})
	components.Target.SetValue(target, components.TargetData{SpriteSlot: slot})

	return target
}

// CreateTargets spawns one target per matching placement record and returns
// how many were created.
func CreateTargets(ecs *ecs.ECS, level *leveldata.Level) int {
	n := 0
	for _, p := range level.PlacementsOf(cfg.Target.PlacementType) {
		CreateTarget(ecs, p.Float("scene_x", 0), p.Float("scene_y", 0))
		n++
	}
	return n
}
