package systems

import (
	"testing"

	"github.com/automoto/bugspy/components"
	cfg "github.com/automoto/bugspy/config"
)

func TestCameraFollowsAndClamps(t *testing.T) {
	w := newTestWorld(t, cfg.ModeRace, nil)
	camera := components.Camera.Get(components.Camera.MustFirst(w.ecs.World))
	tr := components.Transform.Get(w.player())

	// Player near the left edge: the view stays pinned at x=0
	UpdateCamera(w.ecs)
	if camera.Position.X != 0 {
		t.Errorf("camera x = %v, want 0", camera.Position.X)
	}
	if camera.Position.Y < 0 {
		t.Errorf("camera y = %v, want inside the level", camera.Position.Y)
	}

	// Far right: eases toward player - offset, never past the level edge
	tr.X = 800
	UpdateCamera(w.ecs)
	first := camera.Position.X
	if first <= 0 || first >= 800-cfg.Camera.OffsetX {
		t.Errorf("camera x after one frame = %v, want part way", first)
	}
	for range 300 {
		UpdateCamera(w.ecs)
	}
	maxX := float64(testColumns*16 - cfg.C.Width)
	if camera.Position.X != maxX {
		t.Errorf("camera x = %v, want clamped to %v", camera.Position.X, maxX)
	}

	render := w.render()
	for i, tm := range render.TileMaps {
		if tm.ScrollX != camera.Position.X || tm.ScrollY != camera.Position.Y {
			t.Errorf("tile map %d scroll = %v,%v", i, tm.ScrollX, tm.ScrollY)
		}
	}
}
