package config

import (
	"image/color"

	"github.com/automoto/popcards/shared/gamemath"
)

// Config contains window configuration
type Config struct {
	Width  int
	Height int
	Title  string
}

// CardSpec describes one card of the deck
type CardSpec struct {
	Label    string
	Subtitle string
	Vars     VarMap // per-card presentation variables, checked before the theme
}

// DeckConfig contains card layout configuration
type DeckConfig struct {
	CardWidth  float64
	CardHeight float64
	Gap        float64
	OffsetY    float64 // vertical offset of the row from the screen center
	Cards      []CardSpec
}

// EasingConfig contains the per-frame easing constants
type EasingConfig struct {
	HoverFactor  float64 // fraction of the remaining distance covered per frame while hovered
	SettleFactor float64 // same, while settling back after leave
	Tolerance    gamemath.Tolerance
}

// RenderConfig contains card rendering configuration
type RenderConfig struct {
	Perspective   float64 // viewer distance in pixels
	LabelOffsetY  float64
	SubtitleGapY  float64
	ShadowSpread  float64 // extra pixels the shadow quad extends past the card
	EdgeWidth     float64 // rim highlight width in pixels
	GlowRadius    float64 // glow radius as a fraction of the larger card side
	HoverRaiseOut bool    // draw hovered cards last
}

// GlowConfig contains the renderer-side glow transition
type GlowConfig struct {
	FadeInSeconds float32
}

// HUDConfig contains the hint bar configuration
type HUDConfig struct {
	Margin    float64
	TextColor color.RGBA
	DimColor  color.RGBA
}

// DebugConfig contains debug/testing command-line options
type DebugConfig struct {
	Enabled   bool // draw hit areas and per-card pose readouts
	ShowPanel bool // open the control panel on start
	Theme     string
}

// Global configuration instances
var C *Config
var Deck DeckConfig
var TiltDefaults gamemath.TiltBounds
var Easing EasingConfig
var Render RenderConfig
var Glow GlowConfig
var HUD HUDConfig
var Debug DebugConfig

// Shared RGBA color constants
var (
	White        = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Black        = color.RGBA{R: 0, G: 0, B: 0, A: 255}
	BlackOverlay = color.RGBA{R: 0, G: 0, B: 0, A: 180}
	Grey         = color.RGBA{R: 150, G: 150, B: 150, A: 255}
	Cyan         = color.RGBA{R: 0, G: 255, B: 255, A: 255}
	BrightOrange = color.RGBA{R: 255, G: 180, B: 50, A: 255}
)

func init() {
	C = &Config{
		Width:  960,
		Height: 540,
		Title:  "popcards",
	}

	Deck = DeckConfig{
		CardWidth:  200,
		CardHeight: 280,
		Gap:        48,
		OffsetY:    -12,
		Cards: []CardSpec{
			{Label: "Aurora", Subtitle: "soft interior"},
			{Label: "Nebula", Subtitle: "sharp corners"},
			{Label: "Quasar", Subtitle: "heavy tilt", Vars: VarMap{VarTiltBound: "32", VarPeakScale: "1.06"}},
		},
	}

	// Used whenever no variable source yields a valid number
	TiltDefaults = gamemath.TiltBounds{
		Tilt:      24,
		Translate: 14,
		Scale:     1.035,
	}

	Easing = EasingConfig{
		HoverFactor:  0.12,
		SettleFactor: 0.10,
		Tolerance: gamemath.Tolerance{
			Rotation:  0.01,
			Translate: 0.05,
			Scale:     0.001,
		},
	}

	Render = RenderConfig{
		Perspective:   900,
		LabelOffsetY:  -8,
		SubtitleGapY:  22,
		ShadowSpread:  6,
		EdgeWidth:     3,
		GlowRadius:    0.6,
		HoverRaiseOut: true,
	}

	Glow = GlowConfig{
		FadeInSeconds: 0.25,
	}

	HUD = HUDConfig{
		Margin:    12,
		TextColor: color.RGBA{R: 220, G: 220, B: 230, A: 255},
		DimColor:  color.RGBA{R: 140, G: 140, B: 160, A: 255},
	}

	// Debug Config (defaults, can be overridden by CLI flags)
	Debug = DebugConfig{
		Enabled:   false,
		ShowPanel: false,
	}
}
