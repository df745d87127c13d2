package main

import (
	cfg "github.com/automoto/bugspy/config"
	"github.com/automoto/bugspy/fonts"
	"github.com/automoto/bugspy/scenes"
	"github.com/automoto/bugspy/systems"
	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/spf13/cobra"
)

// Game adapts the scene director to ebiten.
type Game struct {
	director *scenes.Director
}

func (g *Game) Update() error {
	g.director.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.director.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	return cfg.C.Width, cfg.C.Height
}

func runPlay(cmd *cobra.Command, args []string) error {
	if err := fonts.LoadDefaults(); err != nil {
		return err
	}

	store := openStore()
	defer closeStore(store)

	params, err := newSession(store)
	if err != nil {
		return err
	}

	if cfg.Sound.Muted {
		systems.SetCueSink(systems.LogSink{})
	} else {
		systems.SetCueSink(systems.NewSynthSink())
	}

	state := scenes.NewGameState(params.event, cfg.C.Nation, params.mode, params.board)
	game := &Game{director: scenes.NewDirector(state, systems.DeviceInput{}, store)}

	ebiten.SetWindowSize(cfg.C.Width*2, cfg.C.Height*2)
	ebiten.SetWindowTitle(cfg.C.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeOnlyFullscreenEnabled)

	log.Info("Starting", "event", params.event, "mode", params.mode, "nation", cfg.C.Nation)
	return ebiten.RunGame(game)
}
