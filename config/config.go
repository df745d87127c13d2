package config

import (
	"image/color"

	"github.com/yohamta/donburi/ecs"
)

// Default is the layer every simulation entity is created on.
const Default ecs.LayerID = 0

// PlayerConfig contains all player-related configuration values
type PlayerConfig struct {
	// Movement
	AccelRate  float64 `yaml:"accel_rate"`  // Fraction of move speed added per frame of input
	DecelRate  float64 `yaml:"decel_rate"`  // Base per-frame horizontal damping
	WalkSpeed  float64 `yaml:"walk_speed"`  // Move speed without Fire held (race)
	RunSpeed   float64 `yaml:"run_speed"`   // Move speed with Fire held (race), also the |vx| ceiling
	JumpForce  float64 `yaml:"jump_force"`  // Initial upward speed of a jump
	AirControl float64 `yaml:"air_control"` // Fraction of ground acceleration while airborne

	// Collider offsets relative to the transform
	ColliderTop    float64 `yaml:"collider_top"`
	ColliderBottom float64 `yaml:"collider_bottom"`
	ColliderLeft   float64 `yaml:"collider_left"`
	ColliderRight  float64 `yaml:"collider_right"`

	// Sprite
	SpriteTile int `yaml:"sprite_tile"`
	WalkFrames int `yaml:"walk_frames"` // Frames in the walk cycle
	FrameDelay int `yaml:"frame_delay"` // Ticks per walk frame
}

// WorldConfig contains global simulation values
type WorldConfig struct {
	Gravity          float64 `yaml:"gravity"`
	TerminalVelocity float64 `yaml:"terminal_velocity"` // Max fall speed
	FallMargin       float64 `yaml:"fall_margin"`       // y + margin past the map bottom fails the event
	FrameTime        float64 `yaml:"frame_time"`        // Seconds per simulation step
}

// ProbeConfig contains collision ray lengths
type ProbeConfig struct {
	GroundLength float64 `yaml:"ground_length"`
	GroundSteps  int     `yaml:"ground_steps"`
	SideLength   float64 `yaml:"side_length"`
	SideSteps    int     `yaml:"side_steps"`
	SideHeight   float64 `yaml:"side_height"` // Side probe y offset from the transform
}

// LauncherConfig contains ranged weapon values (infiltration only)
type LauncherConfig struct {
	CooldownMax    int     `yaml:"cooldown_max"`   // Cooldown counter stops here
	FireThreshold  int     `yaml:"fire_threshold"` // Cooldown must exceed this to fire
	MaxProjectiles int     `yaml:"max_projectiles"`
	Ammo           int     `yaml:"ammo"`
	Speed          float64 `yaml:"speed"`
	MuzzleX        float64 `yaml:"muzzle_x"` // Spawn offset from the player transform
	MuzzleY        float64 `yaml:"muzzle_y"`
}

// ProjectileConfig contains projectile flight values
type ProjectileConfig struct {
	MaxDistance float64 `yaml:"max_distance"`
	Width       float64 `yaml:"width"`
	Height      float64 `yaml:"height"`
	SpriteTile  int     `yaml:"sprite_tile"`
}

// TargetConfig contains target collider values
type TargetConfig struct {
	ColliderTop    float64 `yaml:"collider_top"`
	ColliderBottom float64 `yaml:"collider_bottom"`
	ColliderLeft   float64 `yaml:"collider_left"`
	ColliderRight  float64 `yaml:"collider_right"`
	SpriteTile     int     `yaml:"sprite_tile"`
	PlacementType  string  `yaml:"placement_type"` // Level placement records of this type become targets
}

// OverlayConfig contains mode swap values
type OverlayConfig struct {
	SwapCooldown int  `yaml:"swap_cooldown"` // Swap counter must exceed this
	HazardTile   int  `yaml:"hazard_tile"`   // Tile id that is only solid in HazardMode
	HazardMode   Mode `yaml:"-"`
	FlashFrames  int  `yaml:"flash_frames"`
	FlashColor   color.RGBA
}

// FinishConfig is the tolerance box around a finish line
type FinishConfig struct {
	ToleranceX float64 `yaml:"tolerance_x"`
	ToleranceY float64 `yaml:"tolerance_y"`
}

// CameraConfig contains camera behavior configuration
type CameraConfig struct {
	OffsetX    float64 `yaml:"offset_x"`    // Player is kept this far from the view's left edge
	OffsetY    float64 `yaml:"offset_y"`    // Player is kept this far from the view's top edge
	FollowRate float64 `yaml:"follow_rate"` // Lerp factor per second
}

// ResultsConfig contains results screen configuration
type ResultsConfig struct {
	InputDelay   int // Frames before Confirm is accepted
	BannerFrames int // Frames for the banner slide-in
	SuccessTitle string
	FailTitle    string
	VictoryTitle string
	TitleColor   color.RGBA
	TextColor    color.RGBA
	FailColor    color.RGBA
	Background   color.RGBA
}

// HUDConfig contains in-event overlay layout
type HUDConfig struct {
	Margin     float64
	LineHeight float64
	TextColor  color.RGBA
	ShadeColor color.RGBA
}

// Config holds general game configuration
type Config struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Nation string `yaml:"nation"` // Nation credited for race finishes
	Title  string `yaml:"-"`
}

// DebugConfig contains debug/testing command-line options
type DebugConfig struct {
	ShowProbes bool // Draw colliders and probe rays
}

// Global configuration instances
var C *Config
var Player PlayerConfig
var World WorldConfig
var Probe ProbeConfig
var Launcher LauncherConfig
var Projectile ProjectileConfig
var Target TargetConfig
var Overlay OverlayConfig
var Finish FinishConfig
var Camera CameraConfig
var Results ResultsConfig
var HUD HUDConfig
var Debug DebugConfig

// Shared RGBA color constants
var (
	White        = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Yellow       = color.RGBA{R: 255, G: 255, B: 0, A: 255}
	Red          = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	Green        = color.RGBA{R: 0, G: 255, B: 0, A: 255}
	Magenta      = color.RGBA{R: 255, G: 0, B: 255, A: 255}
	LightRed     = color.RGBA{R: 255, G: 60, B: 60, A: 255}
	LightBlue    = color.RGBA{R: 100, G: 180, B: 255, A: 255}
	BlackOverlay = color.RGBA{R: 0, G: 0, B: 0, A: 180}
)

// Direction constants for player facing
const (
	DirectionLeft  = -1.0
	DirectionRight = 1.0
)

func init() {
	C = &Config{
		Width:  320,
		Height: 240,
		Nation: "Antland",
		Title:  "Bugspy",
	}

	World = WorldConfig{
		Gravity:          0.5,
		TerminalVelocity: 10.0,
		FallMargin:       96.0,
		FrameTime:        1.0 / 60.0,
	}

	Player = PlayerConfig{
		// Movement
		AccelRate:  0.1,
		DecelRate:  0.9,
		WalkSpeed:  3.0,
		RunSpeed:   7.0,
		JumpForce:  10.0,
		AirControl: 0.75,

		// Collider: 32x48 box hanging from the transform
		ColliderTop:    0,
		ColliderBottom: 48,
		ColliderLeft:   0,
		ColliderRight:  32,

		SpriteTile: 0,
		WalkFrames: 4,
		FrameDelay: 6,
	}

	Probe = ProbeConfig{
		GroundLength: 8,
		GroundSteps:  8,
		SideLength:   4,
		SideSteps:    4,
		SideHeight:   16,
	}

	Launcher = LauncherConfig{
		CooldownMax:    10,
		FireThreshold:  8,
		MaxProjectiles: 3,
		Ammo:           255,
		Speed:          8,
		MuzzleX:        16,
		MuzzleY:        24,
	}

	Projectile = ProjectileConfig{
		MaxDistance: 300,
		Width:       8,
		Height:      4,
		SpriteTile:  86,
	}

	Target = TargetConfig{
		ColliderTop:    -8,
		ColliderBottom: 24,
		ColliderLeft:   -8,
		ColliderRight:  24,
		SpriteTile:     87,
		PlacementType:  "target",
	}

	Overlay = OverlayConfig{
		SwapCooldown: 10,
		HazardTile:   89,
		HazardMode:   ModeInfiltration,
		FlashFrames:  12,
		FlashColor:   color.RGBA{R: 160, G: 160, B: 160, A: 160},
	}

	Finish = FinishConfig{
		ToleranceX: 16,
		ToleranceY: 48,
	}

	Camera = CameraConfig{
		OffsetX:    100,
		OffsetY:    100,
		FollowRate: 10,
	}

	Results = ResultsConfig{
		InputDelay:   15,
		BannerFrames: 30,
		SuccessTitle: "RESULTS",
		FailTitle:    "FAILED",
		VictoryTitle: "VICTORY",
		TitleColor:   Yellow,
		TextColor:    White,
		FailColor:    LightRed,
		Background:   color.RGBA{R: 16, G: 16, B: 40, A: 255},
	}

	HUD = HUDConfig{
		Margin:     6,
		LineHeight: 14,
		TextColor:  White,
		ShadeColor: color.RGBA{R: 0, G: 0, B: 0, A: 120},
	}
}
