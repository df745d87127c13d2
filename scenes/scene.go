package scenes

import "github.com/hajimehoshi/ebiten/v2"

// Scene is one screen the director can run.
type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
}
