package systems

import (
	"image/color"
	"math"

	"github.com/automoto/bugspy/components"
	cfg "github.com/automoto/bugspy/config"
	"github.com/automoto/bugspy/shared/gamemath"
	"github.com/automoto/bugspy/shared/tilemap"
	"github.com/automoto/bugspy/systems/factory"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

// slopeColumns is how many strips a sloped tile is drawn with.
const slopeColumns = 4

// DrawLevel paints the sky layer and the visible terrain cells using the ids
// bound in the render state.
func DrawLevel(ecs *ecs.ECS, screen *ebiten.Image) {
	levelEntry, ok := components.Level.First(ecs.World)
	if !ok {
		return
	}
	level := components.Level.Get(levelEntry)
	render := components.RenderState.Get(factory.MustGame(ecs))

	sky := render.TileMaps[factory.TileMapSky]
	screen.Fill(cfg.PaletteFor(sky.Palette).Sky)

	terrain := render.TileMaps[factory.TileMapTerrain]
	pal := cfg.PaletteFor(terrain.Palette)
	outlined := terrain.TileSet%2 == 1

	grid := level.Grid
	width, height := screen.Bounds().Dx(), screen.Bounds().Dy()

	// Viewport culling
	r0, c0 := grid.CellAt(terrain.ScrollX, terrain.ScrollY)
	r1, c1 := grid.CellAt(terrain.ScrollX+float64(width), terrain.ScrollY+float64(height))

	for row := max(r0, 0); row <= min(r1, grid.Rows-1); row++ {
		for col := max(c0, 0); col <= min(c1, grid.Columns-1); col++ {
			id := grid.At(row, col)
			if id == tilemap.Empty {
				continue
			}
			x := float64(col)*grid.TileWidth - terrain.ScrollX
			y := float64(row)*grid.TileHeight - terrain.ScrollY
			drawTile(screen, level, id, x, y, pal, outlined)
		}
	}
}

func drawTile(screen *ebiten.Image, level *components.LevelData, id int, x, y float64, pal cfg.Palette, outlined bool) {
	w, h := level.Grid.TileWidth, level.Grid.TileHeight

	if id == cfg.Overlay.HazardTile {
		vector.FillRect(screen, float32(x), float32(y), float32(w), float32(h), pal.Hazard, false)
		return
	}

	angle, ok := cfg.TileAttrs.Angles[id]
	if !ok {
		// Decoration
		vector.FillRect(screen, float32(x+w/4), float32(y+h/2), float32(w/2), float32(h/2), pal.Accent, false)
		return
	}

	colW := w / slopeColumns
	for i := 0; i < slopeColumns; i++ {
		sx := x + float64(i)*colW
		surface := gamemath.SurfaceHeight(float64(i)*colW+colW/2, angle) * h / gamemath.SolidHeight
		if surface <= 0 {
			continue
		}
		top := y + h - surface
		if outlined {
			vector.FillRect(screen, float32(sx), float32(top), float32(colW), 1, pal.Surface, false)
			vector.FillRect(screen, float32(sx), float32(y+h-1), float32(colW), 1, pal.Ground, false)
			continue
		}
		vector.FillRect(screen, float32(sx), float32(top), float32(colW), float32(surface), pal.Ground, false)
		vector.FillRect(screen, float32(sx), float32(top), float32(colW), float32(math.Min(2, surface)), pal.Surface, false)
	}
}

// DrawSprites paints every visible sprite slot.
func DrawSprites(ecs *ecs.ECS, screen *ebiten.Image) {
	render := components.RenderState.Get(factory.MustGame(ecs))
	scrollX := render.TileMaps[factory.TileMapTerrain].ScrollX
	scrollY := render.TileMaps[factory.TileMapTerrain].ScrollY

	for _, s := range render.Sprites {
		if s.Hidden {
			continue
		}
		pal := cfg.PaletteFor(s.Palette)
		x := float32(s.X - scrollX)
		y := float32(s.Y - scrollY)

		var body color.RGBA
		switch s.Tile {
		case cfg.Target.SpriteTile:
			body = pal.Accent
		case cfg.Projectile.SpriteTile:
			body = pal.Surface
		default:
			body = pal.Sprite
		}
		vector.FillRect(screen, x, y, float32(s.W), float32(s.H), body, false)

		if s.Tile < cfg.Projectile.SpriteTile {
			drawFacing(screen, s, x, y, pal)
		}
	}
}

// drawFacing marks which way a character sprite looks, and its frame.
func drawFacing(screen *ebiten.Image, s components.SpriteBinding, x, y float32, pal cfg.Palette) {
	eyeX := x + float32(s.W) - 8
	if s.FlipX {
		eyeX = x + 4
	}
	vector.FillRect(screen, eyeX, y+6, 4, 4, pal.Ground, false)

	frame := s.Tile - cfg.Player.SpriteTile
	if frame > 0 {
		legs := float32(frame%2) * 4
		vector.FillRect(screen, x+4+legs, y+float32(s.H)-4, float32(s.W)/2-4, 4, pal.Ground, false)
	}
}

// DrawSwapFlash covers the screen while a swap flash is running.
func DrawSwapFlash(ecs *ecs.ECS, screen *ebiten.Image) {
	entry, ok := components.SwapFlash.First(ecs.World)
	if !ok {
		return
	}
	flash := components.SwapFlash.Get(entry)
	if !flash.Active || flash.Alpha <= 0 {
		return
	}
	// Colours are premultiplied, so every channel scales
	base := cfg.Overlay.FlashColor
	c := color.RGBA{
		R: uint8(float32(base.R) * flash.Alpha),
		G: uint8(float32(base.G) * flash.Alpha),
		B: uint8(float32(base.B) * flash.Alpha),
		A: uint8(float32(base.A) * flash.Alpha),
	}
	w, h := screen.Bounds().Dx(), screen.Bounds().Dy()
	vector.FillRect(screen, 0, 0, float32(w), float32(h), c, false)
}
