package scenes

import (
	"image/color"
	"sync"

	"github.com/automoto/bugspy/assets"
	"github.com/automoto/bugspy/components"
	cfg "github.com/automoto/bugspy/config"
	"github.com/automoto/bugspy/systems"
	"github.com/automoto/bugspy/systems/factory"
	"github.com/automoto/bugspy/tags"
	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// EventScene runs one event in the session's current mode. Each instance
// builds a fresh world, so entering it again resets the clocks, player,
// targets, tile attributes and projectiles.
type EventScene struct {
	director *Director
	ecs      *ecs.ECS
	once     sync.Once
	reported bool
}

func NewEventScene(d *Director) *EventScene {
	return &EventScene{director: d}
}

func (s *EventScene) Update() {
	s.once.Do(s.configure)
	s.ecs.Update()

	status := components.SceneStatus.Get(factory.MustGame(s.ecs))
	if status.State == components.SceneComplete && !s.reported {
		s.reported = true
		s.director.Complete(cfg.SceneEvent, status.Success)
	}
}

func (s *EventScene) Draw(screen *ebiten.Image) {
	screen.Fill(color.Black)
	if s.ecs == nil {
		return
	}
	s.ecs.Draw(screen)
}

// ECS exposes the scene's world, building it on first use.
func (s *EventScene) ECS() *ecs.ECS {
	s.once.Do(s.configure)
	return s.ecs
}

// Snapshot is a summary of the event for headless runs.
type Snapshot struct {
	Event      string
	Mode       cfg.Mode
	X, Y       float64
	State      cfg.StateID
	Progress   [cfg.ModeCount]components.ProgressData
	TargetsHit int
	Targets    int
	MedalPlace int
	Complete   bool
	Success    bool
}

func (s *EventScene) Snapshot() Snapshot {
	e := s.ECS()
	game := factory.MustGame(e)
	event := components.Event.Get(game)
	status := components.SceneStatus.Get(game)

	snap := Snapshot{
		Event:      event.Config.Name,
		Mode:       components.Session.Get(game).Mode,
		Progress:   event.Progress,
		TargetsHit: event.TargetsHit,
		Targets:    event.TargetsTotal,
		MedalPlace: event.MedalPlace,
		Complete:   status.State == components.SceneComplete,
		Success:    status.Success,
	}
	if player, ok := tags.Player.First(e.World); ok {
		t := components.Transform.Get(player)
		snap.X, snap.Y = t.X, t.Y
		snap.State = components.Player.Get(player).State
	}
	return snap
}

func (s *EventScene) configure() {
	state := s.director.State
	ev, err := cfg.EventByName(state.Event)
	if err != nil {
		panic(err)
	}
	level := assets.MustLoadLevel(ev.Level)

	e := ecs.NewECS(donburi.NewWorld())

	e.AddSystem(systems.InputSystem(s.director.Input))
	e.AddSystem(systems.UpdatePlayer)
	e.AddSystem(systems.UpdateProjectiles)
	e.AddSystem(systems.UpdateTargets)
	e.AddSystem(systems.UpdateModeSwap)
	e.AddSystem(systems.UpdateEvent)
	e.AddSystem(systems.UpdateCamera)
	e.AddSystem(systems.UpdateEffects)
	e.AddSystem(systems.UpdateAudio)

	e.AddRenderer(cfg.Default, systems.DrawLevel)
	e.AddRenderer(cfg.Default, systems.DrawSprites)
	e.AddRenderer(cfg.Default, systems.DrawHUD)
	e.AddRenderer(cfg.Default, systems.DrawDebug)
	e.AddRenderer(cfg.Default, systems.DrawSwapFlash)

	s.ecs = e

	game := factory.CreateGame(e, state, ev)
	factory.CreateSpace(e, level.Width, level.Height, int(level.Grid.TileWidth), int(level.Grid.TileHeight))
	factory.CreateLevel(e, level, state.Mode)
	factory.CreateCamera(e, ev.StartX-cfg.Camera.OffsetX, ev.StartY-cfg.Camera.OffsetY)
	factory.CreatePlayer(e, ev.StartX, ev.StartY)
	components.Event.Get(game).TargetsTotal = factory.CreateTargets(e, level)

	systems.ApplyMode(e, state.Mode)

	log.Debug("event scene ready", "event", ev.Name, "mode", state.Mode, "targets", components.Event.Get(game).TargetsTotal)
}
