package systems

import (
	"github.com/automoto/bugspy/components"
	cfg "github.com/automoto/bugspy/config"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi/ecs"
)

// StartSwapFlash restarts the full-screen flash shown on a mode swap.
func StartSwapFlash(e *ecs.ECS) {
	entry, ok := components.SwapFlash.First(e.World)
	if !ok {
		return
	}
	flash := components.SwapFlash.Get(entry)
	flash.Tween = gween.New(1, 0, float32(cfg.Overlay.FlashFrames), ease.OutQuad)
	flash.Alpha = 1
	flash.Active = true
}

// UpdateEffects advances the swap flash by one frame.
func UpdateEffects(ecs *ecs.ECS) {
	entry, ok := components.SwapFlash.First(ecs.World)
	if !ok {
		return
	}
	flash := components.SwapFlash.Get(entry)
	if !flash.Active || flash.Tween == nil {
		return
	}

	alpha, done := flash.Tween.Update(1)
	flash.Alpha = alpha
	if done {
		flash.Alpha = 0
		flash.Active = false
	}
}
