package components

import (
	"github.com/automoto/bugspy/shared/leveldata"
	"github.com/automoto/bugspy/shared/tilemap"
	"github.com/yohamta/donburi"
)

// LevelData is the collision world of the running scene.
type LevelData struct {
	Level *leveldata.Level
	Grid  *tilemap.Grid
	Attrs *tilemap.AttrSet
}

// Bounds returns the level size in pixels.
func (l *LevelData) Bounds() (w, h float64) {
	return l.Grid.PixelWidth(), l.Grid.PixelHeight()
}

var Level = donburi.NewComponentType[LevelData]()
