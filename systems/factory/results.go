package factory

import (
	"github.com/automoto/bugspy/archetypes"
	"github.com/automoto/bugspy/components"
	cfg "github.com/automoto/bugspy/config"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateResults spawns the results screen context. The title banner slides
// down from above the screen.
func CreateResults(ecs *ecs.ECS, state *components.GameState, victory bool) *donburi.Entry {
	entry := archetypes.Results.Spawn(ecs)
	components.Session.Set(entry, &components.SessionData{GameState: state})
	components.Input.Set(entry, &components.InputData{})
	components.Audio.Set(entry, &components.AudioData{})
	components.Results.Set(entry, &components.ResultsData{
		Victory: victory,
		Banner:  gween.New(-40, 40, float32(cfg.Results.BannerFrames), ease.OutBack),
		BannerY: -40,
	})
	return entry
}
