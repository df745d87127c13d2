package systems

import (
	"encoding/binary"
	"slices"
	"testing"

	"github.com/automoto/bugspy/components"
	cfg "github.com/automoto/bugspy/config"
)

func TestUpdateAudioDrainsInOrder(t *testing.T) {
	w := newTestWorld(t, cfg.ModeRace, nil)
	rec := &RecordingSink{}
	SetCueSink(rec)
	t.Cleanup(func() { SetCueSink(nil) })

	PlaySound(w.ecs, cfg.SoundJumpRace)
	PlaySound(w.ecs, cfg.SoundFire)
	PlaySound(w.ecs, cfg.SoundSwitch)
	UpdateAudio(w.ecs)

	want := []cfg.SoundID{cfg.SoundJumpRace, cfg.SoundFire, cfg.SoundSwitch}
	if got := rec.Sounds(); !slices.Equal(got, want) {
		t.Errorf("Sounds() = %v, want %v", got, want)
	}
	if len(w.pending()) != 0 {
		t.Error("queue not drained")
	}

	fire := rec.Cues[1]
	if fire.Pitch != 10 || fire.Instrument != 1 || fire.Samples != 8000 {
		t.Errorf("fire cue = %+v", fire)
	}
}

func TestUpdateAudioMuted(t *testing.T) {
	w := newTestWorld(t, cfg.ModeRace, nil)
	rec := &RecordingSink{}
	SetCueSink(rec)
	cfg.Sound.Muted = true
	t.Cleanup(func() {
		SetCueSink(nil)
		cfg.Sound.Muted = false
	})

	PlaySound(w.ecs, cfg.SoundSelect)
	UpdateAudio(w.ecs)

	if len(rec.Cues) != 0 {
		t.Errorf("muted sink got %v", rec.Sounds())
	}
	if len(w.pending()) != 0 {
		t.Error("muted queue should still drain")
	}
}

func TestPlaySoundUnknownIsIgnored(t *testing.T) {
	w := newTestWorld(t, cfg.ModeRace, nil)
	PlaySound(w.ecs, cfg.SoundNone)
	if len(w.pending()) != 0 {
		t.Errorf("pending = %v, want none", w.pending())
	}
}

func TestSynthesize(t *testing.T) {
	tests := []struct {
		name       string
		instrument int
	}{
		{"noise", 0},
		{"square", 1},
		{"triangle", 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := components.Cue{Pitch: 200, Instrument: tt.instrument, Samples: 800}
			buf := Synthesize(c, 44100)
			if len(buf) != 800*4 {
				t.Fatalf("len = %d, want %d", len(buf), 800*4)
			}

			// Stereo channels carry the same sample
			for i := 0; i < 800; i += 97 {
				l := binary.LittleEndian.Uint16(buf[i*4:])
				r := binary.LittleEndian.Uint16(buf[i*4+2:])
				if l != r {
					t.Fatalf("sample %d: left %d right %d", i, l, r)
				}
			}

			// Decays to silence
			last := int16(binary.LittleEndian.Uint16(buf[len(buf)-4:]))
			if last > 200 || last < -200 {
				t.Errorf("last sample = %d, want near zero", last)
			}
		})
	}
}

func TestSynthesizeEmpty(t *testing.T) {
	if got := Synthesize(components.Cue{}, 44100); len(got) != 0 {
		t.Errorf("len = %d, want 0", len(got))
	}
}
