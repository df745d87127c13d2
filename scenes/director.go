package scenes

import (
	"github.com/automoto/bugspy/components"
	cfg "github.com/automoto/bugspy/config"
	"github.com/automoto/bugspy/shared/records"
	"github.com/automoto/bugspy/systems"
	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
)

// Director owns the state shared across scenes and decides which scene runs
// next.
type Director struct {
	State *components.GameState
	Input systems.InputSource
	Store records.Store

	current Scene
	kind    cfg.SceneKind
}

// NewDirector starts on the event scene of state.Event.
func NewDirector(state *components.GameState, input systems.InputSource, store records.Store) *Director {
	d := &Director{State: state, Input: input, Store: store}
	d.show(cfg.SceneEvent)
	return d
}

// NewGameState returns a session starting at event. Scene maps are copied so
// runtime flags never leak into the configured defaults.
func NewGameState(event, nation string, mode cfg.Mode, board *records.Board) *components.GameState {
	if board == nil {
		board = records.NewBoard()
	}
	return &components.GameState{
		Mode:      mode,
		Event:     event,
		Nation:    nation,
		SceneMaps: cloneSceneMaps(),
		Board:     board,
		LastPlace: -1,
	}
}

func cloneSceneMaps() map[string]*cfg.SceneMap {
	out := make(map[string]*cfg.SceneMap, len(cfg.SceneMaps))
	for name, sm := range cfg.SceneMaps {
		out[name] = sm.Clone()
	}
	return out
}

func (d *Director) Update() {
	d.current.Update()
}

func (d *Director) Draw(screen *ebiten.Image) {
	d.current.Draw(screen)
}

// Kind is the kind of the running scene.
func (d *Director) Kind() cfg.SceneKind {
	return d.kind
}

// Scene is the running scene.
func (d *Director) Scene() Scene {
	return d.current
}

// Complete is called by a scene when it is done.
func (d *Director) Complete(kind cfg.SceneKind, success bool) {
	switch kind {
	case cfg.SceneEvent:
		systems.SaveBoard(d.Store, d.State.Board)
		d.show(cfg.SceneResults)
	case cfg.SceneResults:
		if d.State.AllComplete() {
			d.show(cfg.SceneVictory)
			return
		}
		d.State.Event = d.NextEvent()
		d.show(cfg.SceneEvent)
	case cfg.SceneVictory:
		d.State.SceneMaps = cloneSceneMaps()
		if len(cfg.Events) > 0 {
			d.State.Event = cfg.Events[0].Name
		}
		d.show(cfg.SceneEvent)
	}
	log.Debug("scene complete", "scene", kind, "success", success, "next", d.kind)
}

// NextEvent is the first event, starting at the current one and wrapping,
// that still has a ruleset to win. A failed event is therefore retried.
func (d *Director) NextEvent() string {
	start := 0
	for i, ev := range cfg.Events {
		if ev.Name == d.State.Event {
			start = i
			break
		}
	}
	for i := range cfg.Events {
		ev := cfg.Events[(start+i)%len(cfg.Events)]
		if sm, ok := d.State.SceneMaps[ev.Name]; ok && !sm.BothComplete {
			return ev.Name
		}
	}
	return d.State.Event
}

func (d *Director) show(kind cfg.SceneKind) {
	d.kind = kind
	switch kind {
	case cfg.SceneEvent:
		d.current = NewEventScene(d)
	case cfg.SceneResults:
		d.current = NewResultsScene(d)
	case cfg.SceneVictory:
		d.current = NewVictoryScene(d)
	}
}
