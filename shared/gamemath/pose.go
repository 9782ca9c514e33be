package gamemath

import "math"

// Pose is the set of eased transform parameters of one card.
type Pose struct {
	RotationX  float64 // degrees
	RotationY  float64 // degrees
	Scale      float64
	TranslateX float64 // pixels
	TranslateY float64 // pixels
}

// Tolerance is the per-axis distance under which a pose counts as settled.
type Tolerance struct {
	Rotation  float64
	Translate float64
	Scale     float64
}

// NeutralPose is the rest pose: no rotation, no translation, unit scale.
func NeutralPose() Pose {
	return Pose{Scale: 1}
}

// Step moves p toward target by factor of the remaining distance on every
// axis. Non-finite target axes are treated as their rest value and a
// non-finite current axis snaps to the target.
func (p Pose) Step(target Pose, factor float64) Pose {
	target = target.Sanitized()
	if !(factor > 0) {
		return p
	}
	if factor > 1 {
		factor = 1
	}
	return Pose{
		RotationX:  lerpAxis(p.RotationX, target.RotationX, factor),
		RotationY:  lerpAxis(p.RotationY, target.RotationY, factor),
		Scale:      lerpAxis(p.Scale, target.Scale, factor),
		TranslateX: lerpAxis(p.TranslateX, target.TranslateX, factor),
		TranslateY: lerpAxis(p.TranslateY, target.TranslateY, factor),
	}
}

func lerpAxis(cur, target, factor float64) float64 {
	if !isFinite(cur) {
		return target
	}
	return cur + (target-cur)*factor
}

// Sanitized replaces any non-finite axis with its rest value.
func (p Pose) Sanitized() Pose {
	rest := NeutralPose()
	if !isFinite(p.RotationX) {
		p.RotationX = rest.RotationX
	}
	if !isFinite(p.RotationY) {
		p.RotationY = rest.RotationY
	}
	if !isFinite(p.Scale) {
		p.Scale = rest.Scale
	}
	if !isFinite(p.TranslateX) {
		p.TranslateX = rest.TranslateX
	}
	if !isFinite(p.TranslateY) {
		p.TranslateY = rest.TranslateY
	}
	return p
}

// Within reports whether every axis of p is within tol of target.
func (p Pose) Within(target Pose, tol Tolerance) bool {
	return math.Abs(target.RotationX-p.RotationX) <= tol.Rotation &&
		math.Abs(target.RotationY-p.RotationY) <= tol.Rotation &&
		math.Abs(target.TranslateX-p.TranslateX) <= tol.Translate &&
		math.Abs(target.TranslateY-p.TranslateY) <= tol.Translate &&
		math.Abs(target.Scale-p.Scale) <= tol.Scale
}

// Distance is the euclidean distance between two poses over all five axes.
func (p Pose) Distance(o Pose) float64 {
	dRX := p.RotationX - o.RotationX
	dRY := p.RotationY - o.RotationY
	dS := p.Scale - o.Scale
	dTX := p.TranslateX - o.TranslateX
	dTY := p.TranslateY - o.TranslateY
	return math.Sqrt(dRX*dRX + dRY*dRY + dS*dS + dTX*dTX + dTY*dTY)
}
