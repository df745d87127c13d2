package systems

import (
	"fmt"

	"github.com/automoto/bugspy/components"
	cfg "github.com/automoto/bugspy/config"
	"github.com/automoto/bugspy/fonts"
	"github.com/automoto/bugspy/shared/gamemath"
	"github.com/automoto/bugspy/systems/factory"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/yohamta/donburi/ecs"
	"golang.org/x/image/font"
)

// NewUpdateResults returns the results screen system. done runs once Confirm
// is pressed after the input delay.
func NewUpdateResults(done func()) ecs.System {
	return func(e *ecs.ECS) {
		entry := components.Results.MustFirst(e.World)
		results := components.Results.Get(entry)
		session := components.Session.Get(entry)
		input := components.Input.Get(entry)

		results.Frame++
		if results.Banner != nil {
			y, finished := results.Banner.Update(1)
			results.BannerY = y
			if finished {
				results.Banner = nil
			}
		}

		// Swap re-skins the screen the same way it does in an event
		session.SwapCooldown++
		if GetAction(input, cfg.InputSwap).Pressed && session.SwapCooldown > cfg.Overlay.SwapCooldown {
			session.SwapCooldown = 0
			session.Mode = session.Mode.Other()
			PlaySound(e, cfg.SoundSwitch)
		}

		if results.Frame > cfg.Results.InputDelay && GetAction(input, cfg.InputConfirm).JustPressed {
			PlaySound(e, cfg.SoundSelect)
			done()
		}
	}
}

// ResultsTitle is the banner text of a results screen.
func ResultsTitle(state *components.GameState, victory bool) string {
	switch {
	case victory:
		return cfg.Results.VictoryTitle
	case state.LastSuccess:
		return cfg.Results.SuccessTitle
	}
	return cfg.Results.FailTitle
}

// ResultsLines lists the standings shown under the banner: every event on the
// victory screen, the last event otherwise.
func ResultsLines(state *components.GameState, victory bool) []string {
	if victory {
		var lines []string
		for _, ev := range cfg.Events {
			lines = append(lines, eventLines(state, ev.Name, -1)...)
		}
		return lines
	}
	return eventLines(state, state.LastEvent, state.LastPlace)
}

func eventLines(state *components.GameState, event string, place int) []string {
	lines := []string{event}
	if state.Board == nil {
		return lines
	}

	if standing, err := state.Board.Standing(event); err == nil {
		for i, r := range standing.Records {
			marker := "  "
			if i == place {
				marker = "> "
			}
			lines = append(lines, fmt.Sprintf("%s%d. %-10s %s", marker, i+1, r.Nation, gamemath.FormatClock(r.Time)))
		}
	}
	if place < 0 && event == state.LastEvent && !state.LastSuccess {
		lines = append(lines, "  no medal")
	}

	if m, ok := state.Board.Missions[event]; ok {
		lines = append(lines, "  mission: "+gamemath.FormatClock(m.TimeRemaining)+" left")
	} else {
		lines = append(lines, "  mission: incomplete")
	}
	return lines
}

// DrawResults renders the banner, the standings and a prompt.
func DrawResults(e *ecs.ECS, screen *ebiten.Image) {
	entry := components.Results.MustFirst(e.World)
	results := components.Results.Get(entry)
	state := components.Session.Get(entry).GameState

	// The screen takes the colours of the event it follows
	pal := cfg.PaletteFor(state.SceneMap().For(state.Mode).TileMapPalette[factory.TileMapTerrain])
	screen.Fill(cfg.Results.Background)
	if state.Mode == cfg.ModeInfiltration {
		screen.Fill(pal.Sky)
	}

	title := ResultsTitle(state, results.Victory)
	titleColor := cfg.Results.TitleColor
	if !results.Victory && !state.LastSuccess {
		titleColor = cfg.Results.FailColor
	}
	titleFace := fonts.Title.Get()
	x := (cfg.C.Width - font.MeasureString(titleFace, title).Ceil()) / 2
	text.Draw(screen, title, titleFace, x, int(results.BannerY), titleColor)

	body := fonts.Body.Get()
	y := int(results.BannerY) + 24
	for _, line := range ResultsLines(state, results.Victory) {
		text.Draw(screen, line, body, 24, y, cfg.Results.TextColor)
		y += 14
	}

	if results.Frame > cfg.Results.InputDelay {
		prompt := "ENTER to continue"
		text.Draw(screen, prompt, fonts.HUD.Get(), 24, cfg.C.Height-12, pal.Accent)
	}
}
