package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// SwapFlashData is the screen flash played on a mode swap
type SwapFlashData struct {
	Tween  *gween.Tween
	Alpha  float32 // 0 = invisible, 1 = full flash colour
	Active bool
}

var SwapFlash = donburi.NewComponentType[SwapFlashData]()
