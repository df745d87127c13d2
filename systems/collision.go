package systems

import (
	"github.com/automoto/bugspy/components"
	cfg "github.com/automoto/bugspy/config"
	"github.com/automoto/bugspy/shared/gamemath"
	"github.com/automoto/bugspy/shared/probe"
)

// ResolveGround probes down from the bottom-centre of the collider and, on a
// hit, snaps the actor onto the surface and records the slope under it.
// Rising actors are never snapped.
func ResolveGround(level *components.LevelData, t *components.TransformData, c *components.ColliderData, p *components.PhysicsData) bool {
	if p.VY < 0 {
		return false
	}

	ray := probe.Ray{
		Origin:   probe.Vec{X: t.X + (c.Left+c.Right)/2, Y: t.Y + c.Bottom},
		Dir:      probe.Vec{X: 0, Y: 1},
		Distance: cfg.Probe.GroundLength,
		Steps:    cfg.Probe.GroundSteps,
	}
	hits := probe.Cast(ray, level.Grid, level.Attrs)
	c.Rays = append(c.Rays, ray)
	c.MapHits = append(c.MapHits, hits...)

	hit, ok := probe.Nearest(ray, hits)
	if !ok {
		return false
	}

	angle := hit.Attr.Angle
	height := gamemath.SurfaceHeight(hit.Point.X, angle)
	if height == gamemath.SolidHeight {
		// A full tile may have more ground stacked on top of it.
		if above, ok := level.Attrs.Get(level.Grid.TileAtIndex(hit.MapIndex - level.Grid.Columns)); ok {
			height += gamemath.SurfaceHeight(hit.Point.X, above.Angle)
			// Accel follows the tile actually stood on, the upper one.
			angle = above.Angle
		}
	}

	p.Grounded = true
	p.Slope = height
	p.SlopeAccel = gamemath.SurfaceAccel(p.VX, angle)

	surface := hit.Point.Y + level.Grid.TileHeight - height
	t.Translate(0, surface-ray.Origin.Y)
	return true
}

// ResolveSide probes ahead of the leading edge. A full-height tile blocks that
// side, stops horizontal motion and pushes the actor back flush with it; any
// other outcome unblocks the side.
func ResolveSide(level *components.LevelData, t *components.TransformData, c *components.ColliderData, p *components.PhysicsData) bool {
	side, edge, dir := components.SideRight, c.Right, 1.0
	if p.VX < 0 {
		side, edge, dir = components.SideLeft, c.Left, -1.0
	}

	ray := probe.Ray{
		Origin:   probe.Vec{X: t.X + edge, Y: t.Y + cfg.Probe.SideHeight},
		Dir:      probe.Vec{X: dir, Y: 0},
		Distance: cfg.Probe.SideLength,
		Steps:    cfg.Probe.SideSteps,
	}
	hits := probe.Cast(ray, level.Grid, level.Attrs)
	c.Rays = append(c.Rays, ray)
	c.MapHits = append(c.MapHits, hits...)

	hit, ok := probe.Nearest(ray, hits)
	if !ok || gamemath.SurfaceHeight(hit.Point.X, hit.Attr.Angle) != gamemath.SolidHeight {
		p.Blocked[side] = false
		return false
	}

	p.Blocked[side] = true
	p.VX = 0
	t.Translate(hit.Point.X-ray.Origin.X, 0)
	return true
}
