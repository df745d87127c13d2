package systems

import (
	"testing"

	"github.com/automoto/bugspy/components"
	cfg "github.com/automoto/bugspy/config"
	"github.com/automoto/bugspy/shared/tilemap"
	"github.com/automoto/bugspy/systems/factory"
)

func TestApplyModeRebindsScene(t *testing.T) {
	w := newTestWorld(t, cfg.ModeRace, nil)
	render := w.render()
	terrain := render.TileMaps[factory.TileMapTerrain]
	if terrain.TileSet != 0 || terrain.Palette != 0 {
		t.Fatalf("race terrain = %+v, want tile set 0 palette 0", terrain)
	}
	if w.level().Attrs.Has(cfg.Overlay.HazardTile) {
		t.Fatal("hazard tile registered in race")
	}

	ApplyMode(w.ecs, cfg.ModeInfiltration)

	terrain = render.TileMaps[factory.TileMapTerrain]
	if terrain.TileSet != 1 || terrain.Palette != 3 {
		t.Errorf("infiltration terrain = %+v, want tile set 1 palette 3", terrain)
	}
	if render.TileMaps[factory.TileMapSky].Palette != 3 {
		t.Errorf("sky palette = %d, want 3", render.TileMaps[factory.TileMapSky].Palette)
	}
	player := render.Sprite(components.Player.Get(w.player()).SpriteSlot)
	if player.TileSet != 4 || player.Palette != 4 {
		t.Errorf("player sprite = %d/%d, want 4/4", player.TileSet, player.Palette)
	}
	if !w.level().Attrs.Has(cfg.Overlay.HazardTile) {
		t.Error("hazard tile should be registered in infiltration")
	}
	if w.state.Mode != cfg.ModeInfiltration {
		t.Errorf("Mode = %v", w.state.Mode)
	}

	ApplyMode(w.ecs, cfg.ModeRace)
	if render.TileMaps[factory.TileMapTerrain].TileSet != 0 {
		t.Error("tile set not restored")
	}
	if w.level().Attrs.Has(cfg.Overlay.HazardTile) {
		t.Error("hazard tile should be removed again")
	}
}

func TestHazardTileIsSolidOnlyInInfiltration(t *testing.T) {
	grid := newTestGrid()
	grid.Fill(floorRow, 0, floorRow, testColumns-1, tilemap.Empty)
	grid.Fill(floorRow, 4, floorRow, 10, cfg.Overlay.HazardTile)

	race := newTestWorld(t, cfg.ModeRace, grid)
	race.step(20)
	if y := components.Transform.Get(race.player()).Y; y <= 112 {
		t.Errorf("race y = %v, want to fall through the hazard row", y)
	}

	spy := newTestWorld(t, cfg.ModeInfiltration, grid)
	spy.step(20)
	if y := components.Transform.Get(spy.player()).Y; y != 112 {
		t.Errorf("infiltration y = %v, want 112 on the hazard row", y)
	}
}

func TestSwapModeCooldown(t *testing.T) {
	w := newTestWorld(t, cfg.ModeRace, nil)

	w.state.SwapCooldown = cfg.Overlay.SwapCooldown
	if SwapMode(w.ecs) {
		t.Fatal("swapped before the cooldown ran out")
	}

	w.state.SwapCooldown = cfg.Overlay.SwapCooldown + 1
	if !SwapMode(w.ecs) {
		t.Fatal("swap refused after the cooldown")
	}
	if w.state.Mode != cfg.ModeInfiltration {
		t.Errorf("Mode = %v, want infiltration", w.state.Mode)
	}
	if w.state.SwapCooldown != 0 {
		t.Errorf("SwapCooldown = %d, want 0", w.state.SwapCooldown)
	}
	if !containsSound(w.pending(), cfg.SoundSwitch) {
		t.Error("expected a switch cue")
	}
	flash := components.SwapFlash.Get(w.game())
	if !flash.Active || flash.Alpha != 1 {
		t.Errorf("flash = %+v, want active at full alpha", flash)
	}
}

func TestHeldSwapAlternatesAfterCooldown(t *testing.T) {
	w := newTestWorld(t, cfg.ModeRace, nil)

	// The counter passes the cooldown on frame 11
	w.step(cfg.Overlay.SwapCooldown, cfg.InputSwap)
	if w.state.Mode != cfg.ModeRace {
		t.Fatalf("swapped after %d frames", cfg.Overlay.SwapCooldown)
	}
	w.step(1, cfg.InputSwap)
	if w.state.Mode != cfg.ModeInfiltration {
		t.Fatal("expected a swap on the next frame")
	}
	w.step(cfg.Overlay.SwapCooldown+1, cfg.InputSwap)
	if w.state.Mode != cfg.ModeRace {
		t.Error("expected a second swap once the cooldown ran out again")
	}
}

func TestSwapFlashFades(t *testing.T) {
	w := newTestWorld(t, cfg.ModeRace, nil)
	StartSwapFlash(w.ecs)
	flash := components.SwapFlash.Get(w.game())

	UpdateEffects(w.ecs)
	if flash.Alpha >= 1 || flash.Alpha <= 0 {
		t.Errorf("alpha after one frame = %v", flash.Alpha)
	}
	for range cfg.Overlay.FlashFrames {
		UpdateEffects(w.ecs)
	}
	if flash.Active || flash.Alpha != 0 {
		t.Errorf("flash = %+v, want finished", flash)
	}
}
