package config

import "image/color"

// PlayerConfig contains all player-related configuration values.
//
// Velocity convention: horizontal speeds are px/s and are integrated
// once with dt. Vertical motion keeps the original tuning quirk where
// gravity and jump force are converted to a per-frame velocity term
// (value * dt) before integration, so falling speed is a constant, not
// an accelerating curve. The vertical constants are therefore much
// larger than the horizontal ones.
type PlayerConfig struct {
	// Movement
	MoveSpeed     float64 // px/s
	Gravity       float64 // per-frame velocity source, see above
	JumpForce     float64 // per-frame velocity source, see above
	JumpDuration  float64 // seconds of variable-height hold
	JumpFalloff   float64 // force multiplier in the second half of the hold
	FastFallForce float64 // extra downward contribution while airborne

	// Dash
	DashSpeed    float64 // px/s
	DashDuration float64 // seconds
	DashCooldown float64 // seconds

	// Slow zones
	SlowMultiplier float64 // applied to speed and reduced-phase jump force

	// Dimensions
	FrameWidth   int
	FrameHeight  int
	RenderWidth  float64
	RenderHeight float64

	// Per-state collision insets, as fractions of the render rect.
	// Front/Back are relative to facing and mirrored when facing left.
	Insets map[StateID]HitboxInsets
}

// HitboxInsets shrinks a render rect into the collision box used by the
// resolver. All values are fractions of the corresponding dimension.
type HitboxInsets struct {
	Front  float64
	Back   float64
	Top    float64
	Bottom float64
}

// WorldConfig contains level/world constants.
type WorldConfig struct {
	TileSize int
	// Broad-phase cell size for the resolv space.
	CellWidth  int
	CellHeight int
	// Probe height for the ground-retention check below the player.
	GroundProbeHeight float64
}

// TrapConfig contains trap platform configuration.
type TrapConfig struct {
	// HitboxReduction is the per-side inset fraction of the tile rect.
	// The reduced box, not the render rect, is what kills the player.
	HitboxReduction float64
}

// DisappearingConfig contains disappearing platform timings.
type DisappearingConfig struct {
	DisappearDelay float64 // seconds from trigger to non-collidable
	ReappearDelay  float64 // seconds spent fully gone
}

// CoinConfig contains coin projectile configuration.
type CoinConfig struct {
	Width        float64
	Height       float64
	BobAmplitude float64 // px
	BobFrequency float64 // cycles per second
	// Bounce switches coins from pure visual bobbing to damped
	// velocity reversal off static obstacles. Off by default.
	Bounce        bool
	BounceDamping float64
}

// ArrowConfig contains arrow projectile configuration.
type ArrowConfig struct {
	Width   float64
	Height  float64
	Speed   float64 // px/s launch speed
	Gravity float64 // px/s^2, integrated normally (arrows do compound)
	// DiveSpeed is the vertical launch component for arrows spawned in
	// the top or bottom band of the map.
	DiveSpeed float64
	// StickOnImpact keeps an arrow embedded in the obstacle it hits
	// instead of respawning it to its origin.
	StickOnImpact bool
}

// CameraConfig contains camera behavior configuration.
type CameraConfig struct {
	FollowSmoothing         float64 // how fast the camera follows (0.0-1.0)
	LookAheadDistanceX      float64 // max horizontal look-ahead in pixels
	LookAheadSmoothing      float64
	LookAheadSpeedThreshold float64 // minimum speed to update look-ahead
}

// PauseConfig contains pause menu configuration values.
type PauseConfig struct {
	OverlayColor      color.RGBA
	TextColorNormal   color.RGBA
	TextColorSelected color.RGBA
	MenuItemHeight    float64
	MenuItemGap       float64
	MenuOptions       []string
}

// MenuConfig contains main menu configuration values.
type MenuConfig struct {
	BackgroundColor   color.RGBA
	TitleColor        color.RGBA
	TextColorNormal   color.RGBA
	TextColorSelected color.RGBA
	Title             string
	TitleY            float64
	MenuStartY        float64
	MenuItemHeight    float64
	MenuItemGap       float64
}

// WinConfig contains the level-cleared screen configuration.
type WinConfig struct {
	BackgroundColor color.RGBA
	TitleColor      color.RGBA
	TextColor       color.RGBA
	HintColor       color.RGBA
	Title           string
	TitleY          float64
	StatsY          float64
	HintY           float64
	ContinueHint    string
	FadeInSeconds   float64
}

// HUDConfig contains in-game overlay configuration.
type HUDConfig struct {
	Margin    float64
	TextColor color.RGBA
}

// Config holds general game configuration.
type Config struct {
	Width  int
	Height int
	// Dt is the simulation step in seconds, 1/60 by default to match
	// ebiten's tick rate. The override file may change it for tuning;
	// values above MaxDt are clamped to keep the physics stable.
	Dt    float64
	MaxDt float64
}

// DebugConfig contains debug/testing options.
type DebugConfig struct {
	SkipMenu     bool
	DrawHitboxes bool
}

// Global configuration instances
var C *Config
var Player PlayerConfig
var World WorldConfig
var Trap TrapConfig
var Disappearing DisappearingConfig
var Coin CoinConfig
var Arrow ArrowConfig
var Camera CameraConfig
var Pause PauseConfig
var Menu MenuConfig
var Win WinConfig
var HUD HUDConfig
var Debug DebugConfig

// Shared RGBA color constants
var (
	White        = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Yellow       = color.RGBA{R: 255, G: 255, B: 0, A: 255}
	Orange       = color.RGBA{R: 255, G: 140, B: 0, A: 255}
	BrightOrange = color.RGBA{R: 255, G: 180, B: 50, A: 255}
	Red          = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	Green        = color.RGBA{R: 0, G: 255, B: 0, A: 255}
	Blue         = color.RGBA{R: 0, G: 100, B: 255, A: 255}
	Purple       = color.RGBA{R: 128, G: 0, B: 255, A: 255}
	LightRed     = color.RGBA{R: 255, G: 60, B: 60, A: 255}
	BlackOverlay = color.RGBA{R: 0, G: 0, B: 0, A: 180}
)

// Direction constants for player facing
const (
	DirectionLeft  = -1
	DirectionRight = 1
)

func init() {
	C = &Config{
		Width:  640,
		Height: 360,
		Dt:     1.0 / 60.0,
		MaxDt:  0.05,
	}

	Player = PlayerConfig{
		MoveSpeed:     220.0,
		Gravity:       28000.0,
		JumpForce:     58000.0,
		JumpDuration:  0.40,
		JumpFalloff:   0.45,
		FastFallForce: 16000.0,

		DashSpeed:    620.0,
		DashDuration: 0.18,
		DashCooldown: 0.9,

		SlowMultiplier: 0.5,

		FrameWidth:   32,
		FrameHeight:  48,
		RenderWidth:  32.0,
		RenderHeight: 48.0,

		Insets: map[StateID]HitboxInsets{
			Idle:      {Front: 0.15, Back: 0.15, Top: 0.08, Bottom: 0},
			Moving:    {Front: 0.10, Back: 0.20, Top: 0.08, Bottom: 0},
			Jumping:   {Front: 0.12, Back: 0.12, Top: 0.15, Bottom: 0.05},
			Crouching: {Front: 0.10, Back: 0.10, Top: 0.45, Bottom: 0},
		},
	}

	World = WorldConfig{
		TileSize:          32,
		CellWidth:         16,
		CellHeight:        16,
		GroundProbeHeight: 2.0,
	}

	Trap = TrapConfig{
		HitboxReduction: 0.125,
	}

	Disappearing = DisappearingConfig{
		DisappearDelay: 0.5,
		ReappearDelay:  2.0,
	}

	Coin = CoinConfig{
		Width:         16.0,
		Height:        16.0,
		BobAmplitude:  16.0,
		BobFrequency:  2.0,
		Bounce:        false,
		BounceDamping: 0.6,
	}

	Arrow = ArrowConfig{
		Width:         24.0,
		Height:        8.0,
		Speed:         180.0,
		Gravity:       240.0,
		DiveSpeed:     90.0,
		StickOnImpact: false,
	}

	Camera = CameraConfig{
		FollowSmoothing:         0.08,
		LookAheadDistanceX:      48.0,
		LookAheadSmoothing:      0.06,
		LookAheadSpeedThreshold: 10.0,
	}

	Pause = PauseConfig{
		OverlayColor:      BlackOverlay,
		TextColorNormal:   White,
		TextColorSelected: BrightOrange,
		MenuItemHeight:    30,
		MenuItemGap:       15,
		MenuOptions:       []string{"Resume", "Settings", "Exit"},
	}

	Menu = MenuConfig{
		BackgroundColor:   color.RGBA{R: 15, G: 25, B: 50, A: 255},
		TitleColor:        Orange,
		TextColorNormal:   White,
		TextColorSelected: BrightOrange,
		Title:             "TRAPLAND",
		TitleY:            70,
		MenuStartY:        130,
		MenuItemHeight:    30,
		MenuItemGap:       12,
	}

	Win = WinConfig{
		BackgroundColor: color.RGBA{R: 10, G: 35, B: 20, A: 255},
		TitleColor:      Yellow,
		TextColor:       White,
		HintColor:       BrightOrange,
		Title:           "LEVEL CLEAR!",
		TitleY:          80,
		StatsY:          150,
		HintY:           320,
		ContinueHint:    "Press Enter to return to menu",
		FadeInSeconds:   0.75,
	}

	HUD = HUDConfig{
		Margin:    10,
		TextColor: White,
	}

	Debug = DebugConfig{}
}
