package systems

import (
	"image/color"

	"github.com/automoto/bugspy/components"
	cfg "github.com/automoto/bugspy/config"
	"github.com/automoto/bugspy/systems/factory"
	"github.com/automoto/bugspy/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// DrawDebug outlines colliders and broad-phase objects and draws the probe
// rays cast this frame, with a mark on every hit point.
func DrawDebug(ecs *ecs.ECS, screen *ebiten.Image) {
	if !cfg.Debug.ShowProbes {
		return
	}
	render := components.RenderState.Get(factory.MustGame(ecs))
	camX := -render.TileMaps[factory.TileMapTerrain].ScrollX
	camY := -render.TileMaps[factory.TileMapTerrain].ScrollY

	if spaceEntry, ok := components.Space.First(ecs.World); ok {
		for _, obj := range components.Space.Get(spaceEntry).Objects() {
			c := color.RGBA{0, 255, 255, 255} // Cyan default
			if obj.HasTags(tags.ResolvTarget) {
				c = color.RGBA{255, 0, 0, 255}
			}
			outline(screen, obj.X+camX, obj.Y+camY, obj.W, obj.H, c)
		}
	}

	components.Collider.Each(ecs.World, func(e *donburi.Entry) {
		if !e.HasComponent(components.Transform) {
			return
		}
		collider := components.Collider.Get(e)
		x, y, w, h := collider.Rect(components.Transform.Get(e))
		outline(screen, x+camX, y+camY, w, h, color.RGBA{0, 0, 255, 255})

		for _, ray := range collider.Rays {
			end := ray.End()
			x0, x1 := min(ray.Origin.X, end.X), max(ray.Origin.X, end.X)
			y0, y1 := min(ray.Origin.Y, end.Y), max(ray.Origin.Y, end.Y)
			vector.FillRect(screen, float32(x0+camX), float32(y0+camY), float32(x1-x0+1), float32(y1-y0+1), cfg.Green, false)
		}
		for _, hit := range collider.MapHits {
			vector.FillRect(screen, float32(hit.Point.X+camX-1), float32(hit.Point.Y+camY-1), 3, 3, cfg.Magenta, false)
		}
	})
}

func outline(screen *ebiten.Image, x, y, w, h float64, c color.Color) {
	vector.FillRect(screen, float32(x), float32(y), float32(w), 1, c, false)     // Top
	vector.FillRect(screen, float32(x), float32(y+h-1), float32(w), 1, c, false) // Bottom
	vector.FillRect(screen, float32(x), float32(y), 1, float32(h), c, false)     // Left
	vector.FillRect(screen, float32(x+w-1), float32(y), 1, float32(h), c, false) // Right
}
