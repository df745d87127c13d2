package scenes

import (
	"sync"

	cfg "github.com/automoto/bugspy/config"
	"github.com/automoto/bugspy/systems"
	"github.com/automoto/bugspy/systems/factory"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// ResultsScene shows the outcome of the last event until Confirm is pressed.
type ResultsScene struct {
	director *Director
	kind     cfg.SceneKind
	ecs      *ecs.ECS
	once     sync.Once
	done     bool
}

func NewResultsScene(d *Director) *ResultsScene {
	return &ResultsScene{director: d, kind: cfg.SceneResults}
}

func (s *ResultsScene) Update() {
	s.once.Do(s.configure)
	s.ecs.Update()
}

func (s *ResultsScene) Draw(screen *ebiten.Image) {
	if s.ecs == nil {
		return
	}
	s.ecs.Draw(screen)
}

// ECS exposes the scene's world, building it on first use.
func (s *ResultsScene) ECS() *ecs.ECS {
	s.once.Do(s.configure)
	return s.ecs
}

func (s *ResultsScene) configure() {
	e := ecs.NewECS(donburi.NewWorld())

	e.AddSystem(systems.InputSystem(s.director.Input))
	e.AddSystem(systems.NewUpdateResults(s.finish))
	e.AddSystem(systems.UpdateAudio)

	e.AddRenderer(cfg.Default, systems.DrawResults)

	s.ecs = e
	factory.CreateResults(e, s.director.State, s.kind == cfg.SceneVictory)
}

func (s *ResultsScene) finish() {
	if s.done {
		return
	}
	s.done = true
	s.director.Complete(s.kind, s.director.State.LastSuccess)
}
