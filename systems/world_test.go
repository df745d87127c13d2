package systems

import (
	"testing"

	"github.com/automoto/bugspy/components"
	cfg "github.com/automoto/bugspy/config"
	"github.com/automoto/bugspy/shared/leveldata"
	"github.com/automoto/bugspy/shared/tilemap"
	"github.com/automoto/bugspy/systems/factory"
	"github.com/automoto/bugspy/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

const (
	testRows    = 20
	testColumns = 60
	floorRow    = 10 // Floor top at y=160
	floorTile   = 2
)

// testWorld is a headless event: a flat floor, the player standing on it at
// x=100 and a held input set the test can change between frames.
type testWorld struct {
	ecs   *ecs.ECS
	held  *HeldInput
	state *components.GameState
	grid  *tilemap.Grid
}

func newTestGrid() *tilemap.Grid {
	g := tilemap.NewGrid(testRows, testColumns, 16, 16)
	g.Fill(floorRow, 0, testRows-1, testColumns-1, floorTile)
	return g
}

func newTestWorld(t *testing.T, mode cfg.Mode, grid *tilemap.Grid) *testWorld {
	t.Helper()
	if grid == nil {
		grid = newTestGrid()
	}

	ev := cfg.Events[0]
	ev.FinishX, ev.FinishY = 2000, 2000
	ev.TimeLimit = 30

	sceneMaps := make(map[string]*cfg.SceneMap, len(cfg.SceneMaps))
	for name, sm := range cfg.SceneMaps {
		sceneMaps[name] = sm.Clone()
	}
	state := &components.GameState{
		Mode:      mode,
		Event:     ev.Name,
		Nation:    "Antland",
		SceneMaps: sceneMaps,
		Board:     SeedBoard(),
		LastPlace: -1,
	}

	held := &HeldInput{}
	e := ecs.NewECS(donburi.NewWorld())
	e.AddSystem(InputSystem(held))
	e.AddSystem(UpdatePlayer)
	e.AddSystem(UpdateProjectiles)
	e.AddSystem(UpdateTargets)
	e.AddSystem(UpdateModeSwap)
	e.AddSystem(UpdateEvent)
	e.AddSystem(UpdateCamera)
	e.AddSystem(UpdateEffects)

	level := &leveldata.Level{
		Name:   "test",
		Grid:   grid,
		Width:  int(grid.PixelWidth()),
		Height: int(grid.PixelHeight()),
	}
	factory.CreateGame(e, state, ev)
	factory.CreateSpace(e, level.Width, level.Height, 16, 16)
	factory.CreateLevel(e, level, mode)
	factory.CreateCamera(e, 0, 0)
	factory.CreatePlayer(e, 100, 112)
	ApplyMode(e, mode)

	return &testWorld{ecs: e, held: held, state: state, grid: grid}
}

// step runs n frames holding codes.
func (w *testWorld) step(n int, codes ...cfg.InputCode) {
	w.held.Codes = codes
	for range n {
		w.ecs.Update()
	}
}

func (w *testWorld) player() *donburi.Entry {
	return tags.Player.MustFirst(w.ecs.World)
}

func (w *testWorld) game() *donburi.Entry {
	return factory.MustGame(w.ecs)
}

func (w *testWorld) event() *components.EventData {
	return components.Event.Get(w.game())
}

func (w *testWorld) status() *components.SceneStatusData {
	return components.SceneStatus.Get(w.game())
}

func (w *testWorld) level() *components.LevelData {
	return components.Level.Get(components.Level.MustFirst(w.ecs.World))
}

func (w *testWorld) render() *components.RenderStateData {
	return components.RenderState.Get(w.game())
}

// pending lists the queued cue sounds.
func (w *testWorld) pending() []cfg.SoundID {
	var out []cfg.SoundID
	for _, c := range components.Audio.Get(w.game()).Pending {
		out = append(out, c.Sound)
	}
	return out
}

func containsSound(sounds []cfg.SoundID, s cfg.SoundID) bool {
	for _, got := range sounds {
		if got == s {
			return true
		}
	}
	return false
}
