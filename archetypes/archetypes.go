package archetypes

import (
	"github.com/automoto/bugspy/components"
	cfg "github.com/automoto/bugspy/config"
	"github.com/automoto/bugspy/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	Player = newArchetype(
		tags.Player,
		components.Player,
		components.Transform,
		components.Collider,
		components.Physics,
		components.Launcher,
	)
	Target = newArchetype(
		tags.Target,
		components.Target,
		components.Transform,
		components.Collider,
		components.Object,
	)
	Space = newArchetype(
		components.Space,
	)
	Level = newArchetype(
		components.Level,
	)
	Camera = newArchetype(
		components.Camera,
	)
	Game = newArchetype(
		components.Session,
		components.Event,
		components.SceneStatus,
		components.RenderState,
		components.Audio,
		components.Input,
		components.SwapFlash,
	)
	Results = newArchetype(
		components.Session,
		components.Results,
		components.Input,
		components.Audio,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	e := ecs.World.Entry(ecs.Create(
		cfg.Default,
		append(a.components, cs...)...,
	))
	return e
}
