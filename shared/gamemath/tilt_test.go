package gamemath

import (
	"math"
	"testing"
)

func TestEdgeAmplify_Endpoints(t *testing.T) {
	if got := EdgeAmplify(1); got != 1.0 {
		t.Errorf("EdgeAmplify(1) = %v, want exactly 1", got)
	}
	if got := EdgeAmplify(-1); got != -1.0 {
		t.Errorf("EdgeAmplify(-1) = %v, want exactly -1", got)
	}
	if got := EdgeAmplify(0); got != 0 {
		t.Errorf("EdgeAmplify(0) = %v, want 0", got)
	}
}

func TestEdgeAmplify_SignAndMagnitude(t *testing.T) {
	for i := -100; i <= 100; i++ {
		in := float64(i) / 100
		out := EdgeAmplify(in)
		if math.Abs(out) > 1 {
			t.Fatalf("EdgeAmplify(%v) = %v, magnitude above 1", in, out)
		}
		if in > 0 && out <= 0 || in < 0 && out >= 0 {
			t.Fatalf("EdgeAmplify(%v) = %v, sign differs", in, out)
		}
	}
}

func TestEdgeAmplify_SoftCenterSharpEdge(t *testing.T) {
	// The curve stays below identity in the interior and meets it at the edge.
	if got := EdgeAmplify(0.2); got >= 0.2 {
		t.Errorf("EdgeAmplify(0.2) = %v, want below 0.2", got)
	}
	slopeCenter := (EdgeAmplify(0.1) - EdgeAmplify(0)) / 0.1
	slopeEdge := (EdgeAmplify(1) - EdgeAmplify(0.9)) / 0.1
	if slopeEdge <= slopeCenter {
		t.Errorf("edge slope %v should exceed center slope %v", slopeEdge, slopeCenter)
	}
}

func TestEdgeAmplify_NonFinite(t *testing.T) {
	for _, in := range []float64{math.NaN(), math.Inf(1), math.Inf(-1)} {
		if got := EdgeAmplify(in); got != 0 {
			t.Errorf("EdgeAmplify(%v) = %v, want 0", in, got)
		}
	}
}

func TestPointerPercent_InsideBoxStaysInRange(t *testing.T) {
	boxes := []Rect{
		{X: 0, Y: 0, W: 200, H: 300},
		{X: 120, Y: 40, W: 1, H: 1},
		{X: -50, Y: 10, W: 37.5, H: 980},
	}
	for _, b := range boxes {
		for i := 0; i <= 10; i++ {
			for j := 0; j <= 10; j++ {
				x := b.X + b.W*float64(i)/10
				y := b.Y + b.H*float64(j)/10
				px, py := PointerPercent(x, y, b)
				if px < 0 || px > 100 || py < 0 || py > 100 {
					t.Fatalf("PointerPercent(%v, %v, %+v) = (%v, %v), out of range", x, y, b, px, py)
				}
			}
		}
	}
}

func TestPointerPercent_Corners(t *testing.T) {
	b := Rect{X: 100, Y: 50, W: 200, H: 100}
	tests := []struct {
		name   string
		x, y   float64
		px, py float64
	}{
		{"top-left", 100, 50, 0, 0},
		{"center", 200, 100, 50, 50},
		{"bottom-right", 300, 150, 100, 100},
		{"outside clamps", 400, 0, 100, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			px, py := PointerPercent(tt.x, tt.y, b)
			if px != tt.px || py != tt.py {
				t.Errorf("got (%v, %v), want (%v, %v)", px, py, tt.px, tt.py)
			}
		})
	}
}

func TestPointerPercent_ZeroAreaFallsBackToCenter(t *testing.T) {
	for _, b := range []Rect{
		{X: 10, Y: 10, W: 0, H: 0},
		{X: 10, Y: 10, W: -5, H: 20},
		{X: 10, Y: 10, W: math.NaN(), H: math.Inf(1)},
	} {
		px, py := PointerPercent(12, 14, b)
		if math.IsNaN(px) || math.IsNaN(py) || math.IsInf(px, 0) || math.IsInf(py, 0) {
			t.Fatalf("non-finite percent for %+v: (%v, %v)", b, px, py)
		}
		if b.W <= 0 || math.IsNaN(b.W) {
			if px != 50 {
				t.Errorf("px = %v for %+v, want 50", px, b)
			}
		}
		if b.H <= 0 || math.IsInf(b.H, 0) {
			if py != 50 {
				t.Errorf("py = %v for %+v, want 50", py, b)
			}
		}
	}
}

func TestNormalize(t *testing.T) {
	tests := []struct{ in, want float64 }{
		{0, -1}, {50, 0}, {100, 1}, {75, 0.5}, {-20, -1}, {130, 1},
	}
	for _, tt := range tests {
		if got := Normalize(tt.in); got != tt.want {
			t.Errorf("Normalize(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestComposeTarget_TopLeftCorner(t *testing.T) {
	b := TiltBounds{Tilt: 24, Translate: 14, Scale: 1.035}
	ax, ay := EdgeAmplify(Normalize(0)), EdgeAmplify(Normalize(0))
	target, shadow := ComposeTarget(ax, ay, b)

	if target.RotationY != 24 {
		t.Errorf("RotationY = %v, want 24", target.RotationY)
	}
	if target.RotationX != -24 {
		t.Errorf("RotationX = %v, want -24", target.RotationX)
	}
	if target.TranslateX != -14 || target.TranslateY != -14 {
		t.Errorf("translate = (%v, %v), want (-14, -14)", target.TranslateX, target.TranslateY)
	}
	if target.Scale != 1.035 {
		t.Errorf("Scale = %v, want 1.035", target.Scale)
	}
	if shadow.X != 20 || shadow.Y != 24 {
		t.Errorf("shadow = %+v, want {20 24}", shadow)
	}
}

func TestComposeTarget_CenterHasNoTilt(t *testing.T) {
	b := TiltBounds{Tilt: 24, Translate: 14, Scale: 1.035}
	target, shadow := ComposeTarget(0, 0, b)
	if target.RotationX != 0 || target.RotationY != 0 || target.TranslateX != 0 || target.TranslateY != 0 {
		t.Errorf("center target = %+v, want no rotation or translation", target)
	}
	if shadow.X != 0 || shadow.Y != 0 {
		t.Errorf("center shadow = %+v, want zero", shadow)
	}
}

func TestComposeTarget_ShadowOpposesTranslation(t *testing.T) {
	b := TiltBounds{Tilt: 10, Translate: 8, Scale: 1.02}
	target, shadow := ComposeTarget(0.4, -0.7, b)
	if target.TranslateX*shadow.X >= 0 {
		t.Errorf("shadow X %v should oppose translate X %v", shadow.X, target.TranslateX)
	}
	if target.TranslateY*shadow.Y >= 0 {
		t.Errorf("shadow Y %v should oppose translate Y %v", shadow.Y, target.TranslateY)
	}
}
