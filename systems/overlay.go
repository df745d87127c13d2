package systems

import (
	"github.com/automoto/bugspy/components"
	cfg "github.com/automoto/bugspy/config"
	"github.com/automoto/bugspy/systems/factory"
	"github.com/automoto/bugspy/tags"
	"github.com/yohamta/donburi/ecs"
)

// UpdateModeSwap counts the swap cooldown and swaps rulesets while Swap is
// held and the cooldown has run out.
func UpdateModeSwap(ecs *ecs.ECS) {
	game := factory.MustGame(ecs)
	session := components.Session.Get(game)
	session.SwapCooldown++

	if !GetAction(components.Input.Get(game), cfg.InputSwap).Pressed {
		return
	}
	SwapMode(ecs)
}

// SwapMode switches to the other ruleset if the cooldown allows it.
func SwapMode(e *ecs.ECS) bool {
	session := components.Session.Get(factory.MustGame(e))
	if session.SwapCooldown <= cfg.Overlay.SwapCooldown {
		return false
	}
	session.SwapCooldown = 0

	ApplyMode(e, session.Mode.Other())
	PlaySound(e, cfg.SoundSwitch)
	StartSwapFlash(e)
	return true
}

// ApplyMode makes m the active ruleset: the scene's render bindings are
// rewritten from the event's scene map, the hazard tile is registered or
// removed, and projectiles in flight are discarded.
func ApplyMode(e *ecs.ECS, m cfg.Mode) {
	game := factory.MustGame(e)
	session := components.Session.Get(game)
	session.Mode = m

	ApplyBindings(components.RenderState.Get(game), session.SceneMap().For(m))

	if levelEntry, ok := components.Level.First(e.World); ok {
		factory.ApplyHazard(components.Level.Get(levelEntry).Attrs, m)
	}
	if player, ok := tags.Player.First(e.World); ok {
		ResetLauncher(e, player)
	}
}

// ApplyBindings writes tile-set and palette ids into the render state. Slots
// the bindings do not name keep their ids.
func ApplyBindings(render *components.RenderStateData, b cfg.Bindings) {
	for slot, id := range b.TileMapTileSet {
		if slot >= 0 && slot < len(render.TileMaps) {
			render.TileMaps[slot].TileSet = id
		}
	}
	for slot, id := range b.TileMapPalette {
		if slot >= 0 && slot < len(render.TileMaps) {
			render.TileMaps[slot].Palette = id
		}
	}
	for slot, id := range b.SpriteTileSet {
		if s := render.Sprite(slot); s != nil {
			s.TileSet = id
		}
	}
	for slot, id := range b.SpritePalette {
		if s := render.Sprite(slot); s != nil {
			s.Palette = id
		}
	}
}
