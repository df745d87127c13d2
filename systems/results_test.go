package systems

import (
	"strings"
	"testing"

	"github.com/automoto/bugspy/components"
	cfg "github.com/automoto/bugspy/config"
	"github.com/automoto/bugspy/shared/records"
	"github.com/automoto/bugspy/systems/factory"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func resultsState() *components.GameState {
	ev := cfg.Events[0].Name
	board := SeedBoard()
	place := board.RecordRace(records.RaceRecord{Nation: "Antland", Event: ev, Time: 7})
	return &components.GameState{
		Event:       ev,
		Board:       board,
		LastSuccess: true,
		LastEvent:   ev,
		LastPlace:   place,
	}
}

func TestResultsTitle(t *testing.T) {
	state := resultsState()
	if got := ResultsTitle(state, false); got != cfg.Results.SuccessTitle {
		t.Errorf("success title = %q", got)
	}
	if got := ResultsTitle(state, true); got != cfg.Results.VictoryTitle {
		t.Errorf("victory title = %q", got)
	}
	state.LastSuccess = false
	if got := ResultsTitle(state, false); got != cfg.Results.FailTitle {
		t.Errorf("fail title = %q", got)
	}
}

func TestResultsLinesMarksPlace(t *testing.T) {
	state := resultsState()
	lines := ResultsLines(state, false)

	if lines[0] != state.LastEvent {
		t.Errorf("first line = %q, want the event name", lines[0])
	}
	// 6 (seed), 7 (us), 10 (seed)
	if !strings.HasPrefix(lines[2], "> 2. Antland") {
		t.Errorf("place line = %q", lines[2])
	}
	if strings.HasPrefix(lines[1], ">") || strings.HasPrefix(lines[3], ">") {
		t.Errorf("only one line should be marked: %q", lines)
	}
	if last := lines[len(lines)-1]; last != "  mission: incomplete" {
		t.Errorf("mission line = %q", last)
	}
}

func TestResultsLinesVictoryListsEveryEvent(t *testing.T) {
	state := resultsState()
	lines := ResultsLines(state, true)
	for _, ev := range cfg.Events {
		found := false
		for _, l := range lines {
			if l == ev.Name {
				found = true
			}
		}
		if !found {
			t.Errorf("event %q missing from %q", ev.Name, lines)
		}
	}
}

func TestUpdateResultsWaitsForConfirm(t *testing.T) {
	state := resultsState()
	e := ecs.NewECS(donburi.NewWorld())
	entry := factory.CreateResults(e, state, false)

	done := 0
	update := NewUpdateResults(func() { done++ })
	input := components.Input.Get(entry)

	// Confirm during the input delay is ignored
	SetInput(input, cfg.InputConfirm)
	update(e)
	if done != 0 {
		t.Fatal("confirmed during the input delay")
	}

	for range cfg.Results.InputDelay {
		SetInput(input)
		update(e)
	}
	SetInput(input, cfg.InputConfirm)
	update(e)
	if done != 1 {
		t.Fatalf("done = %d, want 1", done)
	}

	results := components.Results.Get(entry)
	if results.BannerY <= -40 {
		t.Errorf("BannerY = %v, want the banner moving in", results.BannerY)
	}
	if !containsSound(pendingOf(entry), cfg.SoundSelect) {
		t.Error("expected a select cue")
	}
}

func TestUpdateResultsSwapReskins(t *testing.T) {
	state := resultsState()
	state.SwapCooldown = cfg.Overlay.SwapCooldown
	e := ecs.NewECS(donburi.NewWorld())
	entry := factory.CreateResults(e, state, false)
	update := NewUpdateResults(func() {})

	SetInput(components.Input.Get(entry), cfg.InputSwap)
	update(e)

	if state.Mode != cfg.ModeInfiltration {
		t.Errorf("Mode = %v, want infiltration", state.Mode)
	}
}

func pendingOf(entry *donburi.Entry) []cfg.SoundID {
	var out []cfg.SoundID
	for _, c := range components.Audio.Get(entry).Pending {
		out = append(out, c.Sound)
	}
	return out
}
