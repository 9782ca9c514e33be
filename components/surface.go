package components

import (
	"fmt"

	"github.com/automoto/popcards/shared/gamemath"
	"github.com/yohamta/donburi"
)

// Transform is the composed 3D transform written every easing step.
type Transform struct {
	TranslateX float64 // px
	TranslateY float64 // px
	RotateX    float64 // deg
	RotateY    float64 // deg
	Scale      float64
}

// TransformFromPose converts an eased pose into output units.
func TransformFromPose(p gamemath.Pose) Transform {
	return Transform{
		TranslateX: p.TranslateX,
		TranslateY: p.TranslateY,
		RotateX:    p.RotationX,
		RotateY:    p.RotationY,
		Scale:      p.Scale,
	}
}

// Pose converts the transform back into a pose for projection.
func (t Transform) Pose() gamemath.Pose {
	return gamemath.Pose{
		RotationX:  t.RotateX,
		RotationY:  t.RotateY,
		Scale:      t.Scale,
		TranslateX: t.TranslateX,
		TranslateY: t.TranslateY,
	}
}

// CSS formats the transform as a CSS transform value.
func (t Transform) CSS() string {
	return fmt.Sprintf("translate3d(%.2fpx, %.2fpx, 0) rotateX(%.3fdeg) rotateY(%.3fdeg) scale(%.3f)",
		t.TranslateX, t.TranslateY, t.RotateX, t.RotateY, t.Scale)
}

// LightOverride forces the glow and edge highlight to fixed values. When
// Active is false the renderer uses the active theme's values instead.
type LightOverride struct {
	Active      bool
	EdgeAlpha   float64
	GlowAlpha   float64
	GlowOpacity float64
}

// SurfaceData is the visual output channel of one card: every value the
// renderer needs, written by the tilt behavior and the light controller.
type SurfaceData struct {
	PointerX  float64 // pointer position, percent of width
	PointerY  float64 // pointer position, percent of height
	ShadowX   float64 // px
	ShadowY   float64 // px
	Light     LightOverride
	Transform Transform
	Hovering  bool
}

// NewSurface returns a surface at rest with the light not yet overridden.
func NewSurface() SurfaceData {
	return SurfaceData{
		PointerX:  50,
		PointerY:  50,
		Transform: TransformFromPose(gamemath.NeutralPose()),
	}
}

// ShadowCSS formats the shadow offsets the way the transform is written.
func (s *SurfaceData) ShadowCSS() (x, y string) {
	return fmt.Sprintf("%.2fpx", s.ShadowX), fmt.Sprintf("%.2fpx", s.ShadowY)
}

var Surface = donburi.NewComponentType[SurfaceData]()
