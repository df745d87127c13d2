package components

import "github.com/yohamta/donburi"

// TileMapBinding is one background layer as the renderer sees it.
type TileMapBinding struct {
	TileSet          int
	Palette          int
	ScrollX, ScrollY float64
}

// SpriteBinding is one sprite slot.
type SpriteBinding struct {
	TileSet int
	Palette int
	Tile    int
	X, Y    float64
	W, H    float64
	Hidden  bool
	FlipX   bool
}

// RenderStateData is everything the renderer consumes. Systems write ids,
// positions and visibility; they never touch pixels.
type RenderStateData struct {
	TileMaps []TileMapBinding
	Sprites  []SpriteBinding
}

// AddSprite appends a sprite slot and returns its index.
func (r *RenderStateData) AddSprite(s SpriteBinding) int {
	r.Sprites = append(r.Sprites, s)
	return len(r.Sprites) - 1
}

// Sprite returns a slot, or nil when out of range.
func (r *RenderStateData) Sprite(slot int) *SpriteBinding {
	if slot < 0 || slot >= len(r.Sprites) {
		return nil
	}
	return &r.Sprites[slot]
}

var RenderState = donburi.NewComponentType[RenderStateData]()
