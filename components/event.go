package components

import (
	cfg "github.com/automoto/bugspy/config"
	"github.com/yohamta/donburi"
)

// ProgressData is one ruleset's clock and result within an event.
type ProgressData struct {
	Clock    float64
	Finished bool
}

// EventData is the running event (singleton component)
type EventData struct {
	Config       cfg.EventConfig
	Progress     [cfg.ModeCount]ProgressData
	TargetsTotal int
	TargetsHit   int
	MedalPlace   int // Place of this run's race time, -1 when none
}

var Event = donburi.NewComponentType[EventData]()
