package components

import (
	cfg "github.com/automoto/bugspy/config"
	"github.com/yohamta/donburi"
)

// Cue is one "play effect" request for the synthesizer.
type Cue struct {
	Sound      cfg.SoundID
	Pitch      float64
	Instrument int
	Samples    int
}

// AudioData stores the outgoing cue queue (singleton component)
type AudioData struct {
	Pending []Cue
}

var Audio = donburi.NewComponentType[AudioData]()
