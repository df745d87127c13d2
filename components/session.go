package components

import (
	cfg "github.com/automoto/bugspy/config"
	"github.com/automoto/bugspy/shared/records"
	"github.com/yohamta/donburi"
)

// GameState outlives individual scenes: the director hands the same pointer to
// every scene it creates.
type GameState struct {
	Mode         cfg.Mode
	SwapCooldown int
	Event        string
	Nation       string
	SceneMaps    map[string]*cfg.SceneMap
	Board        *records.Board

	// Outcome of the most recent event scene
	LastSuccess bool
	LastEvent   string
	LastPlace   int // Medal place of the last race finish, -1 when none
}

// SceneMap returns the binding table of the current event. A missing entry is
// a caller bug: events are validated before a scene starts.
func (g *GameState) SceneMap() *cfg.SceneMap {
	sm, ok := g.SceneMaps[g.Event]
	if !ok {
		panic("components: no scene map for event " + g.Event)
	}
	return sm
}

// AllComplete reports whether every configured event has both rulesets won.
func (g *GameState) AllComplete() bool {
	if len(cfg.Events) == 0 {
		return false
	}
	for _, ev := range cfg.Events {
		sm, ok := g.SceneMaps[ev.Name]
		if !ok || !sm.BothComplete {
			return false
		}
	}
	return true
}

type SessionData struct {
	*GameState
}

var Session = donburi.NewComponentType[SessionData]()
