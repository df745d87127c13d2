package config

// SoundID represents a logical sound effect
type SoundID int

const (
	SoundNone SoundID = iota
	SoundJumpRace
	SoundJumpSpy
	SoundSki
	SoundFire
	SoundSelect
	SoundSwitch
)

func (s SoundID) String() string {
	switch s {
	case SoundJumpRace:
		return "jump_a"
	case SoundJumpSpy:
		return "jump_b"
	case SoundSki:
		return "ski"
	case SoundFire:
		return "fire"
	case SoundSelect:
		return "select"
	case SoundSwitch:
		return "switch"
	}
	return "none"
}

// EffectConfig is how a cue is voiced by the synthesizer.
type EffectConfig struct {
	Pitch      float64
	Instrument int
	Samples    int // Default sample count
}

// SoundConfig maps sound IDs to their voicing
type SoundConfig struct {
	SampleRate int                      `yaml:"-"`
	Volume     float64                  `yaml:"volume"` // 0.0 - 1.0
	Muted      bool                     `yaml:"muted"`
	Effects    map[SoundID]EffectConfig `yaml:"-"`
}

var Sound SoundConfig

func init() {
	Sound = SoundConfig{
		SampleRate: 44100,
		Volume:     0.3,
		Effects: map[SoundID]EffectConfig{
			SoundJumpRace: {Pitch: 200, Instrument: 2, Samples: 800},
			SoundJumpSpy:  {Pitch: 110, Instrument: 1, Samples: 800},
			SoundSki:      {Pitch: 20, Instrument: 0, Samples: 400},
			SoundFire:     {Pitch: 10, Instrument: 1, Samples: 8000},
			SoundSelect:   {Pitch: 300, Instrument: 2, Samples: 1000},
			SoundSwitch:   {Pitch: 500, Instrument: 2, Samples: 2000},
		},
	}
}
