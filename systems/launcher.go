package systems

import (
	"math"

	"github.com/automoto/bugspy/components"
	cfg "github.com/automoto/bugspy/config"
	"github.com/automoto/bugspy/shared/probe"
	"github.com/automoto/bugspy/systems/factory"
	"github.com/automoto/bugspy/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	dmath "github.com/yohamta/donburi/features/math"
)

// FireLauncher spawns a projectile from the player when the cooldown, the pool
// size and the ammo allow it. It reports whether a shot was fired.
func FireLauncher(e *ecs.ECS, entry *donburi.Entry) bool {
	launcher := components.Launcher.Get(entry)
	pruneProjectiles(launcher)

	if launcher.Ammo < 1 {
		return false
	}
	for len(launcher.Projectiles) > launcher.MaxProjectiles {
		expireProjectile(e, launcher.Projectiles[0])
		launcher.Projectiles = launcher.Projectiles[1:]
	}
	if launcher.Cooldown <= cfg.Launcher.FireThreshold || len(launcher.Projectiles) >= launcher.MaxProjectiles {
		return false
	}

	slot := freeSpriteSlot(launcher)
	if slot < 0 {
		return false
	}

	player := components.Player.Get(entry)
	t := components.Transform.Get(entry)
	x, y := t.X+cfg.Launcher.MuzzleX, t.Y+cfg.Launcher.MuzzleY
	p := factory.NewProjectile(e, x, y, dmath.NewVec2(player.Facing, 0), launcher.Speed, slot)
	launcher.Projectiles = append(launcher.Projectiles, p)
	launcher.Cooldown = 0
	launcher.Ammo--

	PlaySound(e, cfg.SoundFire)
	return true
}

// ResetLauncher expires every projectile in flight.
func ResetLauncher(e *ecs.ECS, entry *donburi.Entry) {
	launcher := components.Launcher.Get(entry)
	for _, p := range launcher.Projectiles {
		expireProjectile(e, p)
	}
	launcher.Projectiles = launcher.Projectiles[:0]
}

// UpdateProjectiles moves every live projectile of every launcher.
func UpdateProjectiles(ecs *ecs.ECS) {
	levelEntry, ok := components.Level.First(ecs.World)
	if !ok {
		return
	}
	level := components.Level.Get(levelEntry)

	components.Launcher.Each(ecs.World, func(entry *donburi.Entry) {
		for _, p := range components.Launcher.Get(entry).Projectiles {
			if !p.Expired {
				UpdateProjectile(ecs, level, p)
			}
		}
	})
}

// UpdateProjectile advances one projectile. It expires when the next step
// would reach its range, when it reaches a registered tile, or when it hits a
// target. Every target it overlaps this frame is marked and hidden, even when
// a tile stops it too.
func UpdateProjectile(e *ecs.ECS, level *components.LevelData, p *components.ProjectileData) {
	if p.DistanceTraveled+p.Speed >= p.MaxDistance {
		expireProjectile(e, p)
		return
	}

	x0, y0 := p.Transform.X, p.Transform.Y
	p.Transform.Translate(p.Direction.X*p.Speed, p.Direction.Y*p.Speed)
	p.DistanceTraveled += math.Abs(p.Direction.X) * p.Speed

	ray := probe.Ray{
		Origin:   probe.Vec{X: p.Transform.X, Y: p.Transform.Y},
		Dir:      probe.Vec{X: p.Direction.X, Y: p.Direction.Y},
		Distance: p.Speed,
		Steps:    int(math.Ceil(p.Speed)),
	}
	_, hit := probe.CastNearest(ray, level.Grid, level.Attrs)

	for _, target := range sweepTargets(p.Object, x0, y0, p.Transform.X, p.Transform.Y) {
		hitTarget(e, target)
		hit = true
	}

	if hit {
		expireProjectile(e, p)
		return
	}

	if s := components.RenderState.Get(factory.MustGame(e)).Sprite(p.SpriteSlot); s != nil {
		s.X, s.Y = p.Transform.X, p.Transform.Y
	}
}

// sweepTargets stretches the projectile's object over the distance moved this
// frame and returns every unhit target it overlaps. The space only narrows
// candidates by cell; the overlap test is exact.
func sweepTargets(obj *resolv.Object, x0, y0, x1, y1 float64) []*donburi.Entry {
	if obj == nil {
		return nil
	}
	obj.X = math.Min(x0, x1)
	obj.Y = math.Min(y0, y1)
	obj.W = math.Abs(x1-x0) + cfg.Projectile.Width
	obj.H = math.Abs(y1-y0) + cfg.Projectile.Height
	obj.Update()

	check := obj.Check(0, 0, tags.ResolvTarget)
	if check == nil {
		return nil
	}
	var hits []*donburi.Entry
	for _, o := range check.ObjectsByTags(tags.ResolvTarget) {
		if !overlaps(obj, o) {
			continue
		}
		entry, ok := o.Data.(*donburi.Entry)
		if !ok || !entry.Valid() || components.Target.Get(entry).Hit {
			continue
		}
		hits = append(hits, entry)
	}
	return hits
}

func overlaps(a, b *resolv.Object) bool {
	return a.X < b.X+b.W && b.X < a.X+a.W && a.Y < b.Y+b.H && b.Y < a.Y+a.H
}

func hitTarget(e *ecs.ECS, entry *donburi.Entry) {
	target := components.Target.Get(entry)
	target.Hit = true
	if s := components.RenderState.Get(factory.MustGame(e)).Sprite(target.SpriteSlot); s != nil {
		s.Hidden = true
	}
	if obj := components.Object.Get(entry).Object; obj != nil {
		factory.SpaceOf(e).Remove(obj)
	}
}

func expireProjectile(e *ecs.ECS, p *components.ProjectileData) {
	if p.Expired {
		return
	}
	p.Expired = true
	if s := components.RenderState.Get(factory.MustGame(e)).Sprite(p.SpriteSlot); s != nil {
		s.Hidden = true
	}
	if p.Object != nil {
		factory.SpaceOf(e).Remove(p.Object)
	}
}

// pruneProjectiles drops expired projectiles from the pool, keeping order.
func pruneProjectiles(launcher *components.LauncherData) {
	live := launcher.Projectiles[:0]
	for _, p := range launcher.Projectiles {
		if !p.Expired {
			live = append(live, p)
		}
	}
	launcher.Projectiles = live
}

func freeSpriteSlot(launcher *components.LauncherData) int {
	for _, slot := range launcher.SpriteSlots {
		used := false
		for _, p := range launcher.Projectiles {
			if !p.Expired && p.SpriteSlot == slot {
				used = true
				break
			}
		}
		if !used {
			return slot
		}
	}
	return -1
}
