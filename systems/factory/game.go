package factory

import (
	"github.com/automoto/bugspy/archetypes"
	"github.com/automoto/bugspy/components"
	cfg "github.com/automoto/bugspy/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// Tile-map slots.
const (
	TileMapTerrain = 0
	TileMapSky     = 1
	tileMapSlots   = 2
)

// CreateGame spawns the per-scene context entity: session, event progress,
// render state, cue queue, input and the swap flash.
func CreateGame(ecs *ecs.ECS, state *components.GameState, ev cfg.EventConfig) *donburi.Entry {
	game := archetypes.Game.Spawn(ecs)

	components.Session.Set(game, &components.SessionData{GameState: state})

	event := components.EventData{Config: ev, MedalPlace: -1}
	event.Progress[cfg.ModeInfiltration].Clock = ev.TimeLimit
	components.Event.Set(game, &event)

	components.SceneStatus.Set(game, &components.SceneStatusData{
		State: components.SceneInitial,
		Next:  cfg.SceneResults,
	})
	components.RenderState.Set(game, &components.RenderStateData{
		TileMaps: make([]components.TileMapBinding, tileMapSlots),
	})
	components.Audio.Set(game, &components.AudioData{})
	components.Input.Set(game, &components.InputData{})
	components.SwapFlash.Set(game, &components.SwapFlashData{})

	return game
}

// MustGame returns the context entry of the scene.
func MustGame(ecs *ecs.ECS) *donburi.Entry {
	return components.Session.MustFirst(ecs.World)
}
