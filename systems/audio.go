package systems

import (
	"encoding/binary"
	"math"
	"sync"

	"github.com/automoto/bugspy/components"
	cfg "github.com/automoto/bugspy/config"
	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/yohamta/donburi/ecs"
)

// CueSink voices drained cues.
type CueSink interface {
	Play(c components.Cue)
}

// Global sink - shared across all scenes
var (
	sinkMu sync.Mutex
	sink   CueSink
)

// SetCueSink installs the sink UpdateAudio drains into. nil discards cues.
func SetCueSink(s CueSink) {
	sinkMu.Lock()
	defer sinkMu.Unlock()
	sink = s
}

// PlaySound queues the cue for a sound effect.
func PlaySound(e *ecs.ECS, sound cfg.SoundID) {
	fx, ok := cfg.Sound.Effects[sound]
	if !ok {
		return
	}
	QueueCue(e, components.Cue{
		Sound:      sound,
		Pitch:      fx.Pitch,
		Instrument: fx.Instrument,
		Samples:    fx.Samples,
	})
}

// QueueCue appends a cue to the scene's queue.
func QueueCue(e *ecs.ECS, c components.Cue) {
	entry, ok := components.Audio.First(e.World)
	if !ok {
		return
	}
	a := components.Audio.Get(entry)
	a.Pending = append(a.Pending, c)
}

// UpdateAudio drains the cue queue into the installed sink, in order.
func UpdateAudio(e *ecs.ECS) {
	entry, ok := components.Audio.First(e.World)
	if !ok {
		return
	}
	a := components.Audio.Get(entry)

	sinkMu.Lock()
	s := sink
	sinkMu.Unlock()

	if s != nil && !cfg.Sound.Muted {
		for _, c := range a.Pending {
			s.Play(c)
		}
	}
	a.Pending = a.Pending[:0]
}

// LogSink writes cues to the logger. Headless runs use it.
type LogSink struct {
	Logger *log.Logger
}

func (l LogSink) Play(c components.Cue) {
	logger := l.Logger
	if logger == nil {
		logger = log.Default()
	}
	logger.Debug("cue", "sound", c.Sound, "pitch", c.Pitch, "instrument", c.Instrument, "samples", c.Samples)
}

// RecordingSink keeps every cue it is given.
type RecordingSink struct {
	mu   sync.Mutex
	Cues []components.Cue
}

func (r *RecordingSink) Play(c components.Cue) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.Cues = append(r.Cues, c)
}

// Sounds returns the recorded sound ids in order.
func (r *RecordingSink) Sounds() []cfg.SoundID {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]cfg.SoundID, len(r.Cues))
	for i, c := range r.Cues {
		out[i] = c.Sound
	}
	return out
}

var (
	audioContext *audio.Context
	audioOnce    sync.Once
)

// SynthSink renders each cue as a short waveform and plays it on the ebiten
// audio context.
type SynthSink struct{}

// NewSynthSink creates the process-wide audio context on first use.
func NewSynthSink() SynthSink {
	audioOnce.Do(func() {
		audioContext = audio.NewContext(cfg.Sound.SampleRate)
	})
	return SynthSink{}
}

func (SynthSink) Play(c components.Cue) {
	if audioContext == nil || c.Samples <= 0 {
		return
	}
	player := audioContext.NewPlayerFromBytes(Synthesize(c, cfg.Sound.SampleRate))
	player.SetVolume(cfg.Sound.Volume)
	player.Play()
}

// Synthesize renders a cue as 16-bit little-endian stereo PCM. Instrument 0 is
// noise, 1 a square wave and anything else a triangle wave; the amplitude
// decays linearly over the cue.
func Synthesize(c components.Cue, sampleRate int) []byte {
	freq := 110 + c.Pitch*2
	buf := make([]byte, c.Samples*4)
	seed := uint32(2463534242)

	for i := 0; i < c.Samples; i++ {
		phase := math.Mod(float64(i)*freq/float64(sampleRate), 1)
		var v float64
		switch c.Instrument {
		case 0:
			seed ^= seed << 13
			seed ^= seed >> 17
			seed ^= seed << 5
			v = float64(seed)/float64(math.MaxUint32)*2 - 1
		case 1:
			v = 1
			if phase >= 0.5 {
				v = -1
			}
		default:
			v = 4*math.Abs(phase-0.5) - 1
		}
		v *= 1 - float64(i)/float64(c.Samples)

		s := int16(v * math.MaxInt16 * 0.8)
		binary.LittleEndian.PutUint16(buf[i*4:], uint16(s))
		binary.LittleEndian.PutUint16(buf[i*4+2:], uint16(s))
	}
	return buf
}
