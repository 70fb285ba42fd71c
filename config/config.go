package config

import (
	"image/color"
	"math"
	"time"
)

// SkierConfig contains all skier-related configuration values
type SkierConfig struct {
	// Speed
	MinSpeed         float64
	MaxSpeedStraight float64 // Max speed when going straight
	MaxSpeedTurning  float64 // Max speed at full turn angle
	StartSpeed       float64
	FasterAccel      float64 // Added per tick while the down key is held
	SlowerDecel      float64 // Removed per tick while the up key is held
	IdleDecay        float64 // Removed per tick with no speed input

	// Turning
	MaxAngle         float64 // Radians
	TurnRate         float64 // Radians per tick
	TurnSpeedPenalty float64 // 0 = none, 1 = full stop at max angle
	TurnFactorScale  float64 // How much speed widens the turn radius
	DriftScale       float64

	// Jump
	JumpDuration time.Duration

	// Crash slide
	CrashSlideFactor float64 // Speed multiplier per tick after a crash
	CrashStopSpeed   float64 // Below this the skier stops dead

	// Dimensions
	BodyWidth   float64
	BodyHeight  float64
	SkiWidth    float64
	SkiHeight   float64
	SkiSpacing  float64
	HitOffsetY  float64 // Hit-point offset below the skier position
	HitRadius   float64
	StartYRatio float64 // Fixed screen row as a fraction of canvas height
}

// WorldConfig contains scroll, trail and race-length values
type WorldConfig struct {
	TrailEvictY      float64 // Trail samples above this y are dropped
	RaceDistance     float64
	PixelsPerMeter   float64
	SpawnCutoff      float64 // Fraction of RaceDistance after which nothing spawns
	SpawnDistance    float64 // Base distance between spawns
	SpawnFactorMin   float64
	SpawnFactorRange float64
	BackgroundDots   int
}

// FinishConfig contains the finish-line approach values
type FinishConfig struct {
	GapX          float64 // X the skier is steered toward near the line
	HomingRange   float64 // Homing starts when the marker is this close to the skier row
	HomingPull    float64 // Fraction of the x error closed per tick
	AngleDecay    float64 // Angle multiplier per tick while homing
	PassMargin    float64 // Race completes once the marker is this far above the skier
	BannerHeight  float64
	PoleSpacing   float64
	BannerStripes int
}

// RaceConfig contains phase timing and name entry values
type RaceConfig struct {
	CountdownSteps int
	CountdownStep  time.Duration
	GoDuration     time.Duration // How long "GO" stays on screen after racing starts
	ResultsDelay   time.Duration // Wall-clock time before finished/crashed fades out
	NameMinLength  int
	NameMaxLength  int
}

// FadeConfig contains transition timing
type FadeConfig struct {
	Duration time.Duration // Per stage; a transition is two stages
}

// ScoresConfig contains leaderboard client values
type ScoresConfig struct {
	URL       string
	AppName   string // gdata application name
	CacheKey  string
	Limit     int
	Timeout   time.Duration
	ShowCount int // Rows drawn on the scoreboard screen
}

// UIConfig contains HUD and menu layout values
type UIConfig struct {
	HUDPadding       float64
	ProgressBarWidth float64
	ProgressBarH     float64
	TitleY           float64
	MenuHintY        float64
	ScoreRowHeight   float64
	ScoreTopY        float64
	CaretBlink       time.Duration
}

// DebugConfig contains debug/testing command-line options
type DebugConfig struct {
	Enabled   bool // Enables the overlay and the collision toggle key
	SkipMenu  bool // Skip menu and go directly to the countdown
	NoMusic   bool
	Seed      uint64 // 0 picks a time-based seed
	Collision bool   // Initial collision state
}

// Config holds general game configuration
type Config struct {
	Width  int
	Height int
	Title  string
	TPS    int
}

// Global configuration instances
var C *Config
var Skier SkierConfig
var World WorldConfig
var Finish FinishConfig
var Race RaceConfig
var Fade FadeConfig
var Scores ScoresConfig
var UI UIConfig
var Debug DebugConfig

// Shared RGBA color constants
var (
	White        = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Snow         = color.RGBA{R: 244, G: 248, B: 255, A: 255}
	SnowShadow   = color.RGBA{R: 214, G: 226, B: 242, A: 255}
	TrailGrey    = color.RGBA{R: 190, G: 204, B: 222, A: 255}
	Ink          = color.RGBA{R: 30, G: 36, B: 52, A: 255}
	Red          = color.RGBA{R: 220, G: 40, B: 40, A: 255}
	Yellow       = color.RGBA{R: 255, G: 210, B: 40, A: 255}
	Green        = color.RGBA{R: 40, G: 170, B: 80, A: 255}
	DarkGreen    = color.RGBA{R: 22, G: 110, B: 54, A: 255}
	Brown        = color.RGBA{R: 110, G: 72, B: 40, A: 255}
	Grey         = color.RGBA{R: 128, G: 132, B: 140, A: 255}
	Orange       = color.RGBA{R: 255, G: 140, B: 0, A: 255}
	Blue         = color.RGBA{R: 40, G: 90, B: 200, A: 255}
	LightBlue    = color.RGBA{R: 100, G: 180, B: 255, A: 255}
	BlackOverlay = color.RGBA{R: 0, G: 0, B: 0, A: 180}
)

func init() {
	C = &Config{
		Width:  600,
		Height: 800,
		Title:  "Downhill",
		TPS:    60,
	}

	Skier = SkierConfig{
		MinSpeed:         1,
		MaxSpeedStraight: 20,
		MaxSpeedTurning:  16,
		StartSpeed:       3,
		FasterAccel:      0.15,
		SlowerDecel:      0.25,
		IdleDecay:        0.05,

		MaxAngle:         math.Pi / 3,
		TurnRate:         0.04,
		TurnSpeedPenalty: 0.3,
		TurnFactorScale:  0.6,
		DriftScale:       0.8,

		JumpDuration: 650 * time.Millisecond,

		CrashSlideFactor: 0.95,
		CrashStopSpeed:   0.05,

		BodyWidth:   32,
		BodyHeight:  48,
		SkiWidth:    4,
		SkiHeight:   30,
		SkiSpacing:  20,
		HitOffsetY:  15,
		HitRadius:   12,
		StartYRatio: 1.0 / 3.0,
	}

	World = WorldConfig{
		TrailEvictY:      -10,
		RaceDistance:     20000,
		PixelsPerMeter:   10,
		SpawnCutoff:      0.85,
		SpawnDistance:    350,
		SpawnFactorMin:   0.3,
		SpawnFactorRange: 2,
		BackgroundDots:   75,
	}

	Finish = FinishConfig{
		GapX:          300,
		HomingRange:   250,
		HomingPull:    0.05,
		AngleDecay:    0.9,
		PassMargin:    150,
		BannerHeight:  28,
		PoleSpacing:   220,
		BannerStripes: 8,
	}

	Race = RaceConfig{
		CountdownSteps: 3,
		CountdownStep:  time.Second,
		GoDuration:     800 * time.Millisecond,
		ResultsDelay:   1500 * time.Millisecond,
		NameMinLength:  3,
		NameMaxLength:  10,
	}

	Fade = FadeConfig{
		Duration: 400 * time.Millisecond,
	}

	Scores = ScoresConfig{
		URL:       "",
		AppName:   "downhill",
		CacheKey:  "leaderboard",
		Limit:     50,
		Timeout:   5 * time.Second,
		ShowCount: 10,
	}

	UI = UIConfig{
		HUDPadding:       12,
		ProgressBarWidth: 8,
		ProgressBarH:     240,
		TitleY:           220,
		MenuHintY:        520,
		ScoreRowHeight:   30,
		ScoreTopY:        190,
		CaretBlink:       500 * time.Millisecond,
	}

	Debug = DebugConfig{
		Collision: true,
	}
}

// SkierStartY returns the fixed screen row of the skier.
func SkierStartY() float64 {
	return float64(C.Height) * Skier.StartYRatio
}

// HalfBody is the horizontal margin keeping body and skis on screen.
func HalfBody() float64 {
	return Skier.BodyWidth/2 + Skier.SkiSpacing
}
