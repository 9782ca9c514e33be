package systems

import "github.com/automoto/popcards/components"

// SuppressLight forces the card's glow and edge highlight off, clears the
// shadow offset and centers the pointer position. Idempotent. The
// transform channel is left untouched.
func SuppressLight(s *components.SurfaceData) {
	s.Light = components.LightOverride{
		Active:      true,
		EdgeAlpha:   0,
		GlowAlpha:   0,
		GlowOpacity: 0,
	}
	s.ShadowX, s.ShadowY = 0, 0
	s.PointerX, s.PointerY = 50, 50
}

// RestoreLight lifts the override so the active theme's glow applies again.
// Idempotent. The transform channel is left untouched.
func RestoreLight(s *components.SurfaceData) {
	s.Light = components.LightOverride{}
}
