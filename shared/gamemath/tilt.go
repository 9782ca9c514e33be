package gamemath

import "math"

// Rect is an axis-aligned bounding box in screen pixels.
type Rect struct {
	X, Y, W, H float64
}

// Contains reports whether (x, y) lies inside the rectangle, edges included.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.W && y >= r.Y && y <= r.Y+r.H
}

// Center returns the rectangle's center point.
func (r Rect) Center() (float64, float64) {
	return r.X + r.W/2, r.Y + r.H/2
}

// TiltBounds are the magnitude limits the target pose is scaled by.
type TiltBounds struct {
	Tilt      float64 // max rotation, degrees
	Translate float64 // max translation, pixels
	Scale     float64 // scale while hovered
}

// Shadow is the drop shadow offset in pixels.
type Shadow struct {
	X, Y float64
}

// Shadow offsets sit this far past the translation bound so the shadow
// never fully coincides with the card.
const (
	ShadowExtraX = 6.0
	ShadowExtraY = 10.0
)

// PointerPercent converts a pointer position into percentages of the
// box's width and height, clamped to [0, 100]. Degenerate boxes report
// the center (50, 50).
func PointerPercent(x, y float64, bounds Rect) (px, py float64) {
	return axisPercent(x-bounds.X, bounds.W), axisPercent(y-bounds.Y, bounds.H)
}

func axisPercent(offset, size float64) float64 {
	if !(size > 0) || math.IsInf(size, 0) || !isFinite(offset) {
		return 50
	}
	return Clamp(offset/size*100, 0, 100)
}

// Normalize maps a percentage to [-1, 1] with 0 at the center.
func Normalize(percent float64) float64 {
	return Clamp((percent-50)/50, -1, 1)
}

// EdgeAmplify applies the corner response curve
// sign(t) * (0.55|t| + 0.45|t|^3): gentle near the center, sharp toward the edges.
func EdgeAmplify(t float64) float64 {
	if !isFinite(t) || t == 0 {
		return 0
	}
	a := math.Abs(t)
	if a >= 1 {
		return math.Copysign(1, t)
	}
	return math.Copysign(0.55*a+0.45*a*a*a, t)
}

// ComposeTarget maps amplified axes to the target pose and the shadow offset.
// Horizontal deviation turns the card about its vertical axis with the sign
// inverted, so the edge under the pointer comes toward the viewer.
func ComposeTarget(ax, ay float64, b TiltBounds) (Pose, Shadow) {
	target := Pose{
		RotationX:  ay * b.Tilt,
		RotationY:  -ax * b.Tilt,
		Scale:      b.Scale,
		TranslateX: ax * b.Translate,
		TranslateY: ay * b.Translate,
	}
	shadow := Shadow{
		X: -ax * (b.Translate + ShadowExtraX),
		Y: -ay * (b.Translate + ShadowExtraY),
	}
	return target, shadow
}

// Clamp limits v to [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
