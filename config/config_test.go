package config

import (
	"image/color"
	"math"
	"testing"
)

func TestNumber_FallsBack(t *testing.T) {
	vars := VarMap{
		"valid":    "18",
		"unit":     "14px",
		"degrees":  " 24deg ",
		"garbage":  "not-a-number",
		"empty":    "",
		"nan":      "NaN",
		"infinity": "Infinity",
		"huge":     "1e400",
		"dot":      ".",
		"exp":      "2e",
		"neg":      "-0.5em",
	}
	tests := []struct {
		key  string
		want float64
	}{
		{"valid", 18},
		{"unit", 14},
		{"degrees", 24},
		{"garbage", 99},
		{"empty", 99},
		{"nan", 99},
		{"infinity", 99},
		{"huge", 99},
		{"dot", 99},
		{"exp", 2},
		{"neg", -0.5},
		{"missing", 99},
	}
	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			got := Number(vars, tt.key, 99)
			if got != tt.want {
				t.Errorf("Number(%q) = %v, want %v", tt.key, got, tt.want)
			}
		})
	}
}

func TestNumber_NilSource(t *testing.T) {
	if got := Number(nil, VarTiltBound, 7); got != 7 {
		t.Errorf("Number(nil) = %v, want 7", got)
	}
}

func TestReadTiltBounds_Defaults(t *testing.T) {
	b := ReadTiltBounds(VarMap{})
	if b.Tilt != 24 || b.Translate != 14 || b.Scale != 1.035 {
		t.Errorf("defaults = %+v, want {24 14 1.035}", b)
	}
}

func TestReadTiltBounds_InvalidTiltUsesFallback(t *testing.T) {
	b := ReadTiltBounds(VarMap{VarTiltBound: "wobbly", VarTranslateBound: "10"})
	if b.Tilt != 24 {
		t.Errorf("Tilt = %v, want fallback 24", b.Tilt)
	}
	if b.Translate != 10 {
		t.Errorf("Translate = %v, want 10", b.Translate)
	}
	if math.IsNaN(b.Scale) || math.IsInf(b.Scale, 0) {
		t.Errorf("Scale = %v, want finite", b.Scale)
	}
}

func TestVarChain_FirstSourceWins(t *testing.T) {
	card := VarMap{VarTiltBound: "30"}
	user := VarMap{VarTiltBound: "10", VarTranslateBound: "5"}
	theme := VarMap{VarTiltBound: "1", VarTranslateBound: "1", VarPeakScale: "1.1"}

	chain := VarChain{card, nil, user, theme}
	b := ReadTiltBounds(chain)
	if b.Tilt != 30 || b.Translate != 5 || b.Scale != 1.1 {
		t.Errorf("bounds = %+v, want {30 5 1.1}", b)
	}
}

func TestVarMap_CloneIsIndependent(t *testing.T) {
	m := VarMap{"a": "1"}
	c := m.Clone()
	c["a"] = "2"
	if m["a"] != "1" {
		t.Errorf("source map mutated: %v", m)
	}
}

func TestEmbeddedThemeSheet(t *testing.T) {
	sheet, err := LoadThemeSheet(themesYAML)
	if err != nil {
		t.Fatalf("LoadThemeSheet: %v", err)
	}
	if sheet.Themes[sheet.DefaultIndex()].Name != sheet.Default {
		t.Errorf("default %q not at DefaultIndex", sheet.Default)
	}
	for _, th := range sheet.Themes {
		if _, ok := th.Vars.LookupVar(VarGlowColor); !ok {
			t.Errorf("theme %q has no %s", th.Name, VarGlowColor)
		}
	}
	red := sheet.Themes[sheet.Index("red")]
	if got := ReadTiltBounds(red.Vars).Tilt; got != 20 {
		t.Errorf("red tilt = %v, want 20", got)
	}
}

func TestLoadThemeSheet_Rejects(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"empty", "themes: []"},
		{"unnamed", "themes:\n  - vars: {}"},
		{"duplicate", "themes:\n  - name: a\n  - name: a"},
		{"unknown default", "default: b\nthemes:\n  - name: a"},
		{"malformed", "themes: [::"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := LoadThemeSheet([]byte(tt.yaml)); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestThemeSheet_AtWraps(t *testing.T) {
	sheet := &ThemeSheet{Themes: []Theme{{Name: "a"}, {Name: "b"}, {Name: "c"}}}
	if got := sheet.At(-1).Name; got != "c" {
		t.Errorf("At(-1) = %q, want c", got)
	}
	if got := sheet.At(4).Name; got != "b" {
		t.Errorf("At(4) = %q, want b", got)
	}
}

func TestColor(t *testing.T) {
	vars := VarMap{"ok": "#ff8000", "bad": "orange"}
	fallback := color.RGBA{1, 2, 3, 255}
	if got := Color(vars, "ok", fallback); got != (color.RGBA{255, 128, 0, 255}) {
		t.Errorf("Color(ok) = %v", got)
	}
	if got := Color(vars, "bad", fallback); got != fallback {
		t.Errorf("Color(bad) = %v, want fallback", got)
	}
	if got := Color(vars, "missing", fallback); got != fallback {
		t.Errorf("Color(missing) = %v, want fallback", got)
	}
}

func TestBlendEndpoints(t *testing.T) {
	a := color.RGBA{200, 40, 40, 255}
	b := color.RGBA{20, 20, 60, 255}

	near := func(x, y color.RGBA) bool {
		d := func(p, q uint8) int {
			if p > q {
				return int(p - q)
			}
			return int(q - p)
		}
		return d(x.R, y.R) <= 1 && d(x.G, y.G) <= 1 && d(x.B, y.B) <= 1 && x.A == y.A
	}
	if got := Blend(a, b, 0); !near(got, a) {
		t.Errorf("Blend(t=0) = %v, want %v", got, a)
	}
	if got := Blend(a, b, 1); !near(got, b) {
		t.Errorf("Blend(t=1) = %v, want %v", got, b)
	}
}
