package config

import (
	"math"
	"strconv"
	"strings"

	"github.com/automoto/popcards/shared/gamemath"
)

// Presentation variable keys read by the tilt behavior.
const (
	VarTiltBound      = "tilt-bound"
	VarTranslateBound = "translate-bound"
	VarPeakScale      = "peak-scale"
)

// Presentation variable keys read by the renderer.
const (
	VarEdgeAlpha   = "edge-alpha"
	VarGlowAlpha   = "glow-alpha"
	VarGlowOpacity = "glow-opacity"
	VarGlowColor   = "glow-color"
	VarCardColor   = "card-color"
	VarTextColor   = "text-color"
	VarBackdrop    = "backdrop"
	VarShadowAlpha = "shadow-alpha"
)

// Vars is a read-only source of presentation variables.
type Vars interface {
	LookupVar(key string) (string, bool)
}

// VarMap is a plain key-value variable store.
type VarMap map[string]string

func (m VarMap) LookupVar(key string) (string, bool) {
	v, ok := m[key]
	return v, ok
}

// Clone returns a copy that can be mutated independently.
func (m VarMap) Clone() VarMap {
	out := make(VarMap, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

// VarChain looks a key up in each source in order; the first hit wins.
// Nil sources are skipped.
type VarChain []Vars

func (c VarChain) LookupVar(key string) (string, bool) {
	for _, src := range c {
		if src == nil {
			continue
		}
		if v, ok := src.LookupVar(key); ok {
			return v, true
		}
	}
	return "", false
}

// Number reads key from src as a number. Like CSS values it accepts a
// trailing unit ("14px", "24deg"). Missing, unparsable and non-finite
// values return fallback.
func Number(src Vars, key string, fallback float64) float64 {
	if src == nil {
		return fallback
	}
	raw, ok := src.LookupVar(key)
	if !ok {
		return fallback
	}
	n, ok := ParseLeadingFloat(raw)
	if !ok || math.IsNaN(n) || math.IsInf(n, 0) {
		return fallback
	}
	return n
}

// ParseLeadingFloat parses the longest decimal number at the start of s,
// ignoring surrounding whitespace and any trailing unit.
func ParseLeadingFloat(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	end := 0
	n := len(s)
	if end < n && (s[end] == '+' || s[end] == '-') {
		end++
	}
	digits := 0
	for end < n && isDigit(s[end]) {
		end++
		digits++
	}
	if end < n && s[end] == '.' {
		end++
		for end < n && isDigit(s[end]) {
			end++
			digits++
		}
	}
	if digits == 0 {
		return 0, false
	}
	// Exponent only counts when followed by at least one digit.
	if end < n && (s[end] == 'e' || s[end] == 'E') {
		exp := end + 1
		if exp < n && (s[exp] == '+' || s[exp] == '-') {
			exp++
		}
		if exp < n && isDigit(s[exp]) {
			for exp < n && isDigit(s[exp]) {
				exp++
			}
			end = exp
		}
	}
	v, err := strconv.ParseFloat(s[:end], 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

func isDigit(b byte) bool {
	return b >= '0' && b <= '9'
}

// ReadTiltBounds reads the three tilt magnitude bounds from src, falling
// back to TiltDefaults for anything missing or invalid.
func ReadTiltBounds(src Vars) gamemath.TiltBounds {
	return gamemath.TiltBounds{
		Tilt:      Number(src, VarTiltBound, TiltDefaults.Tilt),
		Translate: Number(src, VarTranslateBound, TiltDefaults.Translate),
		Scale:     Number(src, VarPeakScale, TiltDefaults.Scale),
	}
}
