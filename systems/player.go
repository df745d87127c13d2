package systems

import (
	"github.com/automoto/bugspy/components"
	cfg "github.com/automoto/bugspy/config"
	"github.com/automoto/bugspy/shared/gamemath"
	"github.com/automoto/bugspy/systems/factory"
	"github.com/automoto/bugspy/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// Animation frames relative to the player's first sprite tile. The walk cycle
// occupies 1..WalkFrames.
func skiFrame() int  { return cfg.Player.WalkFrames + 1 }
func jumpFrame() int { return cfg.Player.WalkFrames + 2 }

func UpdatePlayer(ecs *ecs.ECS) {
	levelEntry, ok := components.Level.First(ecs.World)
	if !ok {
		return
	}
	level := components.Level.Get(levelEntry)
	game := factory.MustGame(ecs)
	session := components.Session.Get(game)
	input := components.Input.Get(game)
	rules := RulesFor(session.Mode)

	tags.Player.Each(ecs.World, func(entry *donburi.Entry) {
		updatePlayer(ecs, entry, level, input, rules)
	})
}

func updatePlayer(e *ecs.ECS, entry *donburi.Entry, level *components.LevelData, input *components.InputData, rules Ruleset) {
	player := components.Player.Get(entry)
	physics := components.Physics.Get(entry)
	transform := components.Transform.Get(entry)
	collider := components.Collider.Get(entry)
	launcher := components.Launcher.Get(entry)

	transform.BeginFrame()
	collider.Reset()

	physics.VX *= gamemath.SlopeDamping(cfg.Player.DecelRate, physics.SlopeAccel)
	if launcher.Cooldown < cfg.Launcher.CooldownMax {
		launcher.Cooldown++
	}

	fire := GetAction(input, cfg.InputFire).Pressed
	moveSpeed := rules.MoveSpeed(fire)
	if fire {
		rules.Fire(e, entry)
	}

	handleMovement(e, input, player, physics, moveSpeed, rules)

	physics.VX = gamemath.ClampSpeed(physics.VX, cfg.Player.RunSpeed)
	if physics.BlockedAhead() {
		player.State = cfg.Standing
		transform.Translate(0, physics.VY)
	} else {
		transform.Translate(physics.VX, physics.VY)
	}

	physics.Grounded = ResolveGround(level, transform, collider, physics)
	ResolveSide(level, transform, collider, physics)

	if !physics.Grounded {
		physics.Slope = 0
		player.State = cfg.Jumping
	}

	animatePlayer(e, player, physics)
	syncPlayerSprite(e, player, transform)
}

func handleMovement(e *ecs.ECS, input *components.InputData, player *components.PlayerData, physics *components.PhysicsData, moveSpeed float64, rules Ruleset) {
	left := GetAction(input, cfg.InputLeft).Pressed
	right := GetAction(input, cfg.InputRight).Pressed
	accel := moveSpeed * cfg.Player.AccelRate

	switch player.State {
	case cfg.Jumping:
		air := accel * cfg.Player.AirControl
		if left {
			physics.VX -= air
			player.Facing = cfg.DirectionLeft
		}
		if right {
			physics.VX += air
			player.Facing = cfg.DirectionRight
		}
		physics.VY = gamemath.ApplyGravity(physics.VY, cfg.World.Gravity, cfg.World.TerminalVelocity)
	case cfg.Standing:
		physics.VY = 0
		if left {
			physics.VX -= accel * physics.SlopeAccel
			player.Facing = cfg.DirectionLeft
			player.State = cfg.Walking
		}
		if right {
			physics.VX += accel * physics.SlopeAccel
			player.Facing = cfg.DirectionRight
			player.State = cfg.Walking
		}
		if GetAction(input, cfg.InputJump).Pressed {
			player.State = cfg.Jumping
			physics.VY = -cfg.Player.JumpForce
			PlaySound(e, rules.JumpSound())
		}
	default:
		player.State = cfg.Standing
	}
}

// animatePlayer advances the frame cursor. Walking always falls back to
// Standing at the end of the frame; input re-enters Walking next frame.
func animatePlayer(e *ecs.ECS, player *components.PlayerData, physics *components.PhysicsData) {
	switch player.State {
	case cfg.Walking:
		if physics.SlopeAccel > 1 {
			if player.Frame != skiFrame() {
				PlaySound(e, cfg.SoundSki)
			}
			player.Frame = skiFrame()
		} else {
			player.FrameTick++
			if player.Frame < 1 || player.Frame > cfg.Player.WalkFrames {
				player.Frame = 1
				player.FrameTick = 0
			} else if player.FrameTick >= cfg.Player.FrameDelay {
				player.FrameTick = 0
				player.Frame = player.Frame%cfg.Player.WalkFrames + 1
			}
		}
		player.State = cfg.Standing
	case cfg.Jumping:
		if physics.Grounded {
			player.State = cfg.Standing
			player.Frame = 0
			return
		}
		player.Frame = jumpFrame()
	default:
		player.Frame = 0
		player.FrameTick = 0
	}
}

func syncPlayerSprite(e *ecs.ECS, player *components.PlayerData, t *components.TransformData) {
	render := components.RenderState.Get(factory.MustGame(e))
	s := render.Sprite(player.SpriteSlot)
	if s == nil {
		return
	}
	s.X, s.Y = t.X, t.Y
	s.Tile = cfg.Player.SpriteTile + player.Frame
	s.FlipX = player.Facing < 0
}
