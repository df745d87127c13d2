package systems

import (
	"slices"
	"testing"

	"github.com/automoto/bugspy/components"
	cfg "github.com/automoto/bugspy/config"
	"github.com/automoto/bugspy/systems/factory"
)

func TestHUDLines(t *testing.T) {
	t.Run("race", func(t *testing.T) {
		w := newTestWorld(t, cfg.ModeRace, nil)
		w.event().Progress[cfg.ModeRace].Clock = 65.25

		got := HUDLines(w.ecs)
		want := []string{w.event().Config.Name, "RACE  1:05.250"}
		if !slices.Equal(got, want) {
			t.Errorf("HUDLines() = %q, want %q", got, want)
		}
	})

	t.Run("infiltration", func(t *testing.T) {
		w := newTestWorld(t, cfg.ModeInfiltration, nil)
		factory.CreateTarget(w.ecs, 400, 136)
		factory.CreateTarget(w.ecs, 500, 136)
		event := w.event()
		event.TargetsTotal = 2
		event.TargetsHit = 1
		event.Progress[cfg.ModeInfiltration].Clock = 12.5
		event.Progress[cfg.ModeRace].Finished = true
		components.Launcher.Get(w.player()).Ammo = 40

		got := HUDLines(w.ecs)
		want := []string{
			event.Config.Name,
			"SPY  0:12.500",
			"HIT 1/2",
			"AMMO 40",
			"race done",
		}
		if !slices.Equal(got, want) {
			t.Errorf("HUDLines() = %q, want %q", got, want)
		}
	})
}
