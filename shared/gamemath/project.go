package gamemath

import "math"

// Point is a projected 2D position.
type Point struct {
	X, Y float64
}

// ProjectCard transforms the four corners of a w x h card centered on the
// origin by pose (scale, then rotateY, then rotateX, then translate) and
// projects them with a viewer at distance perspective along +z.
// Corners are returned top-left, top-right, bottom-right, bottom-left.
// A non-positive perspective yields an orthographic projection.
func ProjectCard(w, h float64, pose Pose, perspective float64) [4]Point {
	pose = pose.Sanitized()
	hw, hh := w/2, h/2
	local := [4][2]float64{{-hw, -hh}, {hw, -hh}, {hw, hh}, {-hw, hh}}

	sinX, cosX := math.Sincos(pose.RotationX * math.Pi / 180)
	sinY, cosY := math.Sincos(pose.RotationY * math.Pi / 180)

	var out [4]Point
	for i, c := range local {
		x := c[0] * pose.Scale
		y := c[1] * pose.Scale

		// rotateY
		x1 := x * cosY
		z1 := -x * sinY

		// rotateX
		y2 := y*cosX - z1*sinX
		z2 := y*sinX + z1*cosX

		x3 := x1 + pose.TranslateX
		y3 := y2 + pose.TranslateY

		f := 1.0
		if perspective > 0 {
			depth := perspective - z2
			if depth < perspective*0.05 {
				depth = perspective * 0.05
			}
			f = perspective / depth
		}
		out[i] = Point{X: x3 * f, Y: y3 * f}
	}
	return out
}
