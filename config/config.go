package config

import "image/color"

// FighterConfig contains the values shared by every combatant
type FighterConfig struct {
	// Dimensions of the sprite bounding box (origin is centre-x, feet-y)
	Width  float64
	Height float64

	// Combat
	Health int

	// Movement
	MoveSpeed float64
	JumpSpeed float64
}

// PlayerConfig contains player-only tuning
type PlayerConfig struct {
	Name           string
	AttackCooldown int // ticks before the next swing may start
	Color          color.RGBA
}

// EnemyConfig contains the scripted opponent's AI tuning
type EnemyConfig struct {
	Name           string
	PursuitRange   float64 // horizontal distance above which the enemy walks toward the player
	ChaseSpeed     float64
	AttackChance   float64 // per-tick probability of starting a swing while in range
	CooldownMin    int     // ticks
	CooldownSpread int     // random extra ticks added to CooldownMin
	Color          color.RGBA
}

// PhysicsConfig contains physics-related configuration values
type PhysicsConfig struct {
	Gravity float64
	Damping float64 // scales gravity before it is added to vertical speed
}

// CombatConfig contains combat-related configuration values
type CombatConfig struct {
	Damage int

	// Body hitbox inset from the sprite bounding box
	BodyInsetX   float64
	BodyInsetTop float64

	// Attack hitbox
	Reach        float64 // horizontal extent beyond the body box
	AttackHeight float64
	AttackOffset float64 // distance from the feet to the attack box centre
}

// ArenaConfig is the fallback arena layout used when the Tiled map cannot be read
type ArenaConfig struct {
	Width        float64
	Height       float64
	GroundY      float64
	MarginLeft   float64 // minimum X
	MarginRight  float64 // X never exceeds Width - MarginRight
	PlayerSpawnX float64
	EnemySpawnX  float64
	SpaceCell    int // resolv cell size
}

// LoopConfig contains the fixed-tick settings
type LoopConfig struct {
	TicksPerSecond   int
	MaxStepsPerFrame int // clamp for large wall-clock deltas
}

// UIConfig contains HUD and overlay values
type UIConfig struct {
	HealthBarWidth    float64
	HealthBarHeight   float64
	HealthBarMargin   float64
	HealthBarSeconds  float32 // duration of the eased health-bar catch-up
	HealthBarBgColor  color.RGBA
	HealthBarFgColor  color.RGBA
	HealthBarLagColor color.RGBA
	GroundColor       color.RGBA
	SkyColor          color.RGBA
	HitboxBodyColor   color.RGBA
	HitboxAttackColor color.RGBA
	TextColor         color.RGBA
	OverlayColor      color.RGBA
}

// Config holds general game configuration
type Config struct {
	Width  int
	Height int
	Title  string
}

// DebugConfig contains debug/testing command-line options
type DebugConfig struct {
	ShowHitboxes bool
	Seed         int64 // 0 means seed from the clock
}

// Global configuration instances
var C *Config
var Fighter FighterConfig
var Player PlayerConfig
var Enemy EnemyConfig
var Physics PhysicsConfig
var Combat CombatConfig
var Arena ArenaConfig
var Loop LoopConfig
var UI UIConfig
var Debug DebugConfig

// Shared RGBA color constants
var (
	White        = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Orange       = color.RGBA{R: 255, G: 140, B: 0, A: 255}
	Red          = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	LightRed     = color.RGBA{R: 255, G: 60, B: 60, A: 255}
	BrightGreen  = color.RGBA{R: 0, G: 255, B: 60, A: 255}
	LightBlue    = color.RGBA{R: 100, G: 180, B: 255, A: 255}
	DarkGrey     = color.RGBA{R: 40, G: 40, B: 40, A: 255}
	BlackOverlay = color.RGBA{R: 0, G: 0, B: 0, A: 180}
)

// Direction constants for fighter facing
const (
	DirectionLeft  = -1.0
	DirectionRight = 1.0
)

func init() {
	Reset()
}

// Reset restores every configuration value to its built-in default.
func Reset() {
	C = &Config{
		Width:  800,
		Height: 450,
		Title:  "Duel",
	}

	Fighter = FighterConfig{
		Width:     80,
		Height:    120,
		Health:    100,
		MoveSpeed: 4.0,
		JumpSpeed: 14.0,
	}

	Player = PlayerConfig{
		Name:           "Player",
		AttackCooldown: 30, // longer than a full swing (2 frames x 9 ticks)
		Color:          LightBlue,
	}

	Enemy = EnemyConfig{
		Name:           "Enemy",
		PursuitRange:   120,
		ChaseSpeed:     2.5,
		AttackChance:   0.04,
		CooldownMin:    40,
		CooldownSpread: 40,
		Color:          LightRed,
	}

	Physics = PhysicsConfig{
		Gravity: 0.9,
		Damping: 0.85,
	}

	Combat = CombatConfig{
		Damage:       8,
		BodyInsetX:   10,
		BodyInsetTop: 10,
		Reach:        70,
		AttackHeight: 24,
		AttackOffset: 80,
	}

	Arena = ArenaConfig{
		Width:        800,
		Height:       450,
		GroundY:      400,
		MarginLeft:   30,
		MarginRight:  60,
		PlayerSpawnX: 200,
		EnemySpawnX:  600,
		SpaceCell:    16,
	}

	Loop = LoopConfig{
		TicksPerSecond:   60,
		MaxStepsPerFrame: 3,
	}

	UI = UIConfig{
		HealthBarWidth:    300,
		HealthBarHeight:   14,
		HealthBarMargin:   16,
		HealthBarSeconds:  0.35,
		HealthBarBgColor:  DarkGrey,
		HealthBarFgColor:  BrightGreen,
		HealthBarLagColor: Orange,
		GroundColor:       color.RGBA{R: 60, G: 45, B: 30, A: 255},
		SkyColor:          color.RGBA{R: 15, G: 25, B: 50, A: 255},
		HitboxBodyColor:   color.RGBA{R: 0, G: 255, B: 255, A: 255},
		HitboxAttackColor: Red,
		TextColor:         White,
		OverlayColor:      BlackOverlay,
	}

	Debug = DebugConfig{
		ShowHitboxes: false,
		Seed:         0,
	}

	Input = defaultInput()
}
