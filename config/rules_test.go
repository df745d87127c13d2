package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestApplyRulesKeepsUnspecifiedFields(t *testing.T) {
	savedPlayer, savedLauncher := Player, Launcher
	t.Cleanup(func() { Player, Launcher = savedPlayer, savedLauncher })

	err := ApplyRules([]byte(`
player:
  run_speed: 9
launcher:
  max_projectiles: 5
`))
	if err != nil {
		t.Fatalf("ApplyRules() failed: %v", err)
	}
	if Player.RunSpeed != 9 {
		t.Errorf("RunSpeed = %v, want 9", Player.RunSpeed)
	}
	if Player.WalkSpeed != savedPlayer.WalkSpeed {
		t.Errorf("WalkSpeed changed to %v", Player.WalkSpeed)
	}
	if Launcher.MaxProjectiles != 5 || Launcher.Ammo != savedLauncher.Ammo {
		t.Errorf("launcher = %+v", Launcher)
	}
}

func TestApplyRulesEvents(t *testing.T) {
	savedEvents := Events
	savedMaps := SceneMaps
	SceneMaps = make(map[string]*SceneMap)
	for k, v := range savedMaps {
		SceneMaps[k] = v
	}
	t.Cleanup(func() { Events, SceneMaps = savedEvents, savedMaps })

	err := ApplyRules([]byte(`
events:
  - name: PRACTICE
    level: practice
    start_x: 32
    start_y: 32
    finish_x: 400
    finish_y: 64
    time_limit: 20
`))
	if err != nil {
		t.Fatalf("ApplyRules() failed: %v", err)
	}
	ev, err := EventByName("PRACTICE")
	if err != nil {
		t.Fatalf("EventByName() failed: %v", err)
	}
	if ev.TimeLimit != 20 || ev.Level != "practice" {
		t.Errorf("event = %+v", ev)
	}
	if err := ValidateEvent("PRACTICE"); err != nil {
		t.Errorf("ValidateEvent() = %v, want default scene map", err)
	}
}

func TestLoadRulesMissingCustomPath(t *testing.T) {
	if _, err := LoadRules(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("expected an error for a missing rules file")
	}
}

func TestLoadRulesCustomPath(t *testing.T) {
	saved := *C
	t.Cleanup(func() { *C = saved })

	path := filepath.Join(t.TempDir(), "rules.yaml")
	if err := os.WriteFile(path, []byte("game:\n  nation: Mothova\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	applied, err := LoadRules(path)
	if err != nil {
		t.Fatalf("LoadRules() failed: %v", err)
	}
	if applied != path {
		t.Errorf("applied = %q, want %q", applied, path)
	}
	if C.Nation != "Mothova" || C.Width != saved.Width {
		t.Errorf("config = %+v", *C)
	}
}

func TestValidateEventUnknown(t *testing.T) {
	if err := ValidateEvent("NOT AN EVENT"); !errors.Is(err, ErrUnknownEvent) {
		t.Errorf("err = %v, want ErrUnknownEvent", err)
	}
}

func TestModeOther(t *testing.T) {
	if ModeRace.Other() != ModeInfiltration || ModeInfiltration.Other() != ModeRace {
		t.Error("Other() should flip the ruleset")
	}
	m, err := ParseMode("Infiltration")
	if err != nil || m != ModeInfiltration {
		t.Errorf("ParseMode = %v, %v", m, err)
	}
	if _, err := ParseMode("golf"); err == nil {
		t.Error("expected error for unknown mode")
	}
}

func TestApplyRulesSound(t *testing.T) {
	saved := Sound
	t.Cleanup(func() { Sound = saved })

	if err := ApplyRules([]byte("sound:\n  muted: true\n")); err != nil {
		t.Fatalf("ApplyRules() failed: %v", err)
	}
	if !Sound.Muted {
		t.Error("expected sound to be muted")
	}
	if Sound.Volume != saved.Volume || len(Sound.Effects) != len(saved.Effects) {
		t.Errorf("sound = %+v, want other fields kept", Sound)
	}
}
