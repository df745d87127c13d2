package systems

import (
	"fmt"

	"github.com/automoto/bugspy/components"
	cfg "github.com/automoto/bugspy/config"
	"github.com/automoto/bugspy/fonts"
	"github.com/automoto/bugspy/shared/gamemath"
	"github.com/automoto/bugspy/systems/factory"
	"github.com/automoto/bugspy/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

// HUDLines returns the overlay text for the running event.
func HUDLines(ecs *ecs.ECS) []string {
	game := factory.MustGame(ecs)
	session := components.Session.Get(game)
	event := components.Event.Get(game)
	progress := event.Progress[session.Mode]

	lines := []string{event.Config.Name}

	switch session.Mode {
	case cfg.ModeRace:
		line := "RACE  " + gamemath.FormatClock(progress.Clock)
		if progress.Finished {
			line += "  FINISHED"
		}
		lines = append(lines, line)
	case cfg.ModeInfiltration:
		line := "SPY  " + gamemath.FormatClock(progress.Clock)
		if progress.Finished {
			line += "  CLEARED"
		}
		lines = append(lines, line, fmt.Sprintf("HIT %d/%d", event.TargetsHit, event.TargetsTotal))
		if player, ok := tags.Player.First(ecs.World); ok {
			lines = append(lines, fmt.Sprintf("AMMO %d", components.Launcher.Get(player).Ammo))
		}
	}

	other := session.Mode.Other()
	if event.Progress[other].Finished {
		lines = append(lines, other.String()+" done")
	}
	return lines
}

// DrawHUD renders the clock, targets and ammo in the top-left corner.
func DrawHUD(ecs *ecs.ECS, screen *ebiten.Image) {
	lines := HUDLines(ecs)
	face := fonts.HUD.Get()
	m := cfg.HUD.Margin
	lh := cfg.HUD.LineHeight

	// Backing shade
	vector.FillRect(screen, float32(m/2), float32(m/2), 150, float32(lh*float64(len(lines))+m), cfg.HUD.ShadeColor, false)

	for i, line := range lines {
		y := m + lh*float64(i+1) - 3
		text.Draw(screen, line, face, int(m), int(y), cfg.HUD.TextColor)
	}
}
