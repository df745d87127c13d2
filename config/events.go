package config

import (
	"errors"
	"fmt"
	"maps"
)

var ErrUnknownEvent = errors.New("config: unknown event")

// EventConfig describes one biathlon event
type EventConfig struct {
	Name      string    `yaml:"name"`
	Level     string    `yaml:"level"` // TMX stem under assets/levels
	StartX    float64   `yaml:"start_x"`
	StartY    float64   `yaml:"start_y"`
	FinishX   float64   `yaml:"finish_x"`
	FinishY   float64   `yaml:"finish_y"`
	TimeLimit float64   `yaml:"time_limit"`   // Seconds on the mission clock
	MedalTime []float64 `yaml:"medal_times"`  // Seeded standing, ascending
	MedalBy   string    `yaml:"medal_nation"` // Nation credited for seeded times
}

// Bindings maps tile-map and sprite slots to tile-set and palette ids.
type Bindings struct {
	TileMapTileSet map[int]int `yaml:"tile_map_tile_set"`
	TileMapPalette map[int]int `yaml:"tile_map_palette"`
	SpriteTileSet  map[int]int `yaml:"sprite_tile_set"`
	SpritePalette  map[int]int `yaml:"sprite_palette"`
}

// Clone returns an independent copy.
func (b Bindings) Clone() Bindings {
	return Bindings{
		TileMapTileSet: maps.Clone(b.TileMapTileSet),
		TileMapPalette: maps.Clone(b.TileMapPalette),
		SpriteTileSet:  maps.Clone(b.SpriteTileSet),
		SpritePalette:  maps.Clone(b.SpritePalette),
	}
}

// SceneMap is the per-event binding table for both rulesets.
type SceneMap struct {
	Race         Bindings `yaml:"race"`
	Infiltration Bindings `yaml:"infiltration"`
	BothComplete bool     `yaml:"-"` // Set at runtime once both rulesets are won
}

// For returns the bindings of one ruleset.
func (s *SceneMap) For(m Mode) Bindings {
	if m == ModeInfiltration {
		return s.Infiltration
	}
	return s.Race
}

// Clone returns an independent copy.
func (s *SceneMap) Clone() *SceneMap {
	return &SceneMap{
		Race:         s.Race.Clone(),
		Infiltration: s.Infiltration.Clone(),
		BothComplete: s.BothComplete,
	}
}

// TileAttrConfig registers collidable tiles at scene init.
type TileAttrConfig struct {
	TileSetID int          `yaml:"tile_set"`
	Angles    map[int]int8 `yaml:"angles"` // Tile id -> slope angle
}

// Events is the ordered event list.
var Events []EventConfig

// SceneMaps holds the default binding table per event name.
var SceneMaps map[string]*SceneMap

// TileAttrs is the default collidable tile registry.
var TileAttrs TileAttrConfig

// EventByName finds an event.
func EventByName(name string) (EventConfig, error) {
	for _, ev := range Events {
		if ev.Name == name {
			return ev, nil
		}
	}
	return EventConfig{}, fmt.Errorf("%w: %q", ErrUnknownEvent, name)
}

// ValidateEvent checks that an event and its scene map exist.
func ValidateEvent(name string) error {
	if _, err := EventByName(name); err != nil {
		return err
	}
	if _, ok := SceneMaps[name]; !ok {
		return fmt.Errorf("%w: no scene map for %q", ErrUnknownEvent, name)
	}
	return nil
}

func defaultBindings() SceneMap {
	return SceneMap{
		Race: Bindings{
			TileMapTileSet: map[int]int{0: 0},
			TileMapPalette: map[int]int{0: 0, 1: 1},
			SpriteTileSet:  map[int]int{0: 2},
			SpritePalette:  map[int]int{0: 2},
		},
		Infiltration: Bindings{
			TileMapTileSet: map[int]int{0: 1},
			TileMapPalette: map[int]int{0: 3, 1: 3},
			SpriteTileSet:  map[int]int{0: 4},
			SpritePalette:  map[int]int{0: 4},
		},
	}
}

func init() {
	Events = []EventConfig{
		{
			Name:      "CROSS-COUNTRY BIATHLON",
			Level:     "crosscountry",
			StartX:    100,
			StartY:    100,
			FinishX:   189 * 16,
			FinishY:   26 * 16,
			TimeLimit: 30,
			MedalTime: []float64{6, 10, 16},
			MedalBy:   "Beehama",
		},
		{
			Name:      "DOWNHILL BIATHLON",
			Level:     "downhill",
			StartX:    100,
			StartY:    100,
			FinishX:   90 * 16,
			FinishY:   200 * 16,
			TimeLimit: 30,
			MedalTime: []float64{10, 14, 24},
			MedalBy:   "Beehama",
		},
		{
			Name:      "CRAGGY BIATHLON",
			Level:     "craggy",
			StartX:    100,
			StartY:    100,
			FinishX:   141 * 16,
			FinishY:   24 * 16,
			TimeLimit: 30,
			MedalTime: []float64{12, 16, 25},
			MedalBy:   "Beehama",
		},
	}

	SceneMaps = make(map[string]*SceneMap, len(Events))
	for _, ev := range Events {
		sm := defaultBindings()
		SceneMaps[ev.Name] = &sm
	}

	TileAttrs = TileAttrConfig{
		TileSetID: 0,
		Angles: map[int]int8{
			// Flat solid ground and walls
			2: 0, 3: 0, 4: 0, 5: 0, 6: 0,
			65: 0, 66: 0, 78: 0, 79: 0, 80: 0, 81: 0, 82: 0, 83: 0,
			// Slopes, negative descends to the right
			67: -1, 68: 1,
			69: -2, 70: 2,
			71: -3, 72: 3,
			73: -4, 74: 4,
		},
	}
}
