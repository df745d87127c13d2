package systems

import (
	"github.com/automoto/bugspy/components"
	cfg "github.com/automoto/bugspy/config"
	"github.com/automoto/bugspy/shared/gamemath"
	"github.com/automoto/bugspy/systems/factory"
	"github.com/automoto/bugspy/tags"
	"github.com/yohamta/donburi/ecs"
)

// UpdateCamera eases the view toward the player, keeps it inside the level
// and scrolls every tile map with it.
func UpdateCamera(e *ecs.ECS) {
	cameraEntry, ok := components.Camera.First(e.World)
	if !ok {
		return
	}
	camera := components.Camera.Get(cameraEntry)

	playerEntry, ok := tags.Player.First(e.World)
	if !ok {
		return
	}
	player := components.Transform.Get(playerEntry)

	levelEntry, ok := components.Level.First(e.World)
	if !ok {
		return
	}
	levelWidth, levelHeight := components.Level.Get(levelEntry).Bounds()

	targetX := player.X - cfg.Camera.OffsetX
	targetY := player.Y - cfg.Camera.OffsetY

	t := gamemath.Clamp(cfg.World.FrameTime*cfg.Camera.FollowRate, 0, 1)
	camera.Position.X = gamemath.Lerp(camera.Position.X, targetX, t)
	camera.Position.Y = gamemath.Lerp(camera.Position.Y, targetY, t)

	// Keep the level filling the screen
	camera.Position.X = gamemath.Clamp(camera.Position.X, 0, levelWidth-float64(cfg.C.Width))
	camera.Position.Y = gamemath.Clamp(camera.Position.Y, 0, levelHeight-float64(cfg.C.Height))

	render := components.RenderState.Get(factory.MustGame(e))
	for i := range render.TileMaps {
		render.TileMaps[i].ScrollX = camera.Position.X
		render.TileMaps[i].ScrollY = camera.Position.Y
	}
}
