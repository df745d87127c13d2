package config

import "image/color"

// Palette is the colour set a tile map or sprite is drawn with.
type Palette struct {
	Sky     color.RGBA
	Ground  color.RGBA
	Surface color.RGBA
	Hazard  color.RGBA
	Sprite  color.RGBA
	Accent  color.RGBA
}

// Palettes is indexed by the palette ids scene maps bind.
var Palettes []Palette

func init() {
	Palettes = []Palette{
		// 0: race terrain, daylight snow
		{
			Sky:     color.RGBA{R: 150, G: 200, B: 255, A: 255},
			Ground:  color.RGBA{R: 200, G: 210, B: 230, A: 255},
			Surface: color.RGBA{R: 250, G: 250, B: 255, A: 255},
			Hazard:  color.RGBA{R: 40, G: 44, B: 50, A: 80},
			Sprite:  color.RGBA{R: 220, G: 60, B: 40, A: 255},
			Accent:  Yellow,
		},
		// 1: race sky layer
		{
			Sky:     color.RGBA{R: 110, G: 170, B: 240, A: 255},
			Ground:  color.RGBA{R: 90, G: 140, B: 90, A: 255},
			Surface: White,
			Hazard:  color.RGBA{R: 0, G: 0, B: 0, A: 0},
			Sprite:  White,
			Accent:  Yellow,
		},
		// 2: race sprites
		{
			Sky:     color.RGBA{A: 0},
			Ground:  color.RGBA{R: 60, G: 60, B: 60, A: 255},
			Surface: White,
			Hazard:  color.RGBA{A: 0},
			Sprite:  color.RGBA{R: 230, G: 80, B: 30, A: 255},
			Accent:  Yellow,
		},
		// 3: infiltration terrain, night
		{
			Sky:     color.RGBA{R: 20, G: 20, B: 50, A: 255},
			Ground:  color.RGBA{R: 50, G: 60, B: 80, A: 255},
			Surface: color.RGBA{R: 110, G: 120, B: 160, A: 255},
			Hazard:  color.RGBA{R: 200, G: 40, B: 60, A: 255},
			Sprite:  color.RGBA{R: 40, G: 220, B: 120, A: 255},
			Accent:  Magenta,
		},
		// 4: infiltration sprites
		{
			Sky:     color.RGBA{A: 0},
			Ground:  color.RGBA{R: 30, G: 30, B: 30, A: 255},
			Surface: LightBlue,
			Hazard:  color.RGBA{A: 0},
			Sprite:  color.RGBA{R: 60, G: 230, B: 140, A: 255},
			Accent:  Magenta,
		},
	}
}

// PaletteFor returns a palette, falling back to the first one.
func PaletteFor(id int) Palette {
	if id < 0 || id >= len(Palettes) {
		return Palettes[0]
	}
	return Palettes[id]
}
