package systems

import (
	"testing"

	"github.com/automoto/bugspy/components"
	cfg "github.com/automoto/bugspy/config"
)

func TestRulesFor(t *testing.T) {
	tests := []struct {
		mode      cfg.Mode
		want      cfg.Mode
		clock     float64
		jump      cfg.SoundID
		runOnFire bool
	}{
		{cfg.ModeRace, cfg.ModeRace, 1, cfg.SoundJumpRace, true},
		{cfg.ModeInfiltration, cfg.ModeInfiltration, -1, cfg.SoundJumpSpy, false},
		{cfg.Mode(99), cfg.ModeRace, 1, cfg.SoundJumpRace, true},
	}
	for _, tt := range tests {
		r := RulesFor(tt.mode)
		if r.Mode() != tt.want {
			t.Errorf("RulesFor(%d).Mode() = %v, want %v", tt.mode, r.Mode(), tt.want)
		}
		if r.ClockRate() != tt.clock {
			t.Errorf("%v ClockRate = %v, want %v", tt.want, r.ClockRate(), tt.clock)
		}
		if r.JumpSound() != tt.jump {
			t.Errorf("%v JumpSound = %v, want %v", tt.want, r.JumpSound(), tt.jump)
		}
		if got := r.MoveSpeed(true) == cfg.Player.RunSpeed; got != tt.runOnFire {
			t.Errorf("%v MoveSpeed(true) = %v", tt.want, r.MoveSpeed(true))
		}
		if r.MoveSpeed(false) != cfg.Player.WalkSpeed {
			t.Errorf("%v MoveSpeed(false) = %v", tt.want, r.MoveSpeed(false))
		}
	}
}

func TestAtFinishLine(t *testing.T) {
	ev := cfg.EventConfig{FinishX: 1000, FinishY: 400}
	tests := []struct {
		x, y float64
		want bool
	}{
		{1000, 400, true},
		{1015, 447, true},
		{1016, 400, false},
		{984, 400, false},
		{1000, 352, false},
		{1000, 448, false},
	}
	for _, tt := range tests {
		tr := &components.TransformData{X: tt.x, Y: tt.y}
		if got := AtFinishLine(tr, ev); got != tt.want {
			t.Errorf("AtFinishLine(%v, %v) = %v, want %v", tt.x, tt.y, got, tt.want)
		}
	}
}

func TestTimedOut(t *testing.T) {
	spy := InfiltrationRules{}
	if !spy.TimedOut(&components.ProgressData{Clock: 0}) {
		t.Error("zero clock should time out")
	}
	if spy.TimedOut(&components.ProgressData{Clock: 0.5}) {
		t.Error("running clock should not time out")
	}
	if (RaceRules{}).TimedOut(&components.ProgressData{Clock: -5}) {
		t.Error("the race never times out")
	}
}
