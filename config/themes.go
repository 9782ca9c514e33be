package config

import (
	_ "embed"
	"errors"
	"fmt"
	"image/color"
	"log"

	"github.com/lucasb-eyer/go-colorful"
	"gopkg.in/yaml.v3"
)

//go:embed themes.yaml
var themesYAML []byte

// Theme is a named set of presentation variables.
type Theme struct {
	Name string `yaml:"name"`
	Vars VarMap `yaml:"vars"`
}

// ThemeSheet is the list of themes the user can switch between.
type ThemeSheet struct {
	Default string  `yaml:"default"`
	Themes  []Theme `yaml:"themes"`
}

// Themes is the loaded theme sheet.
var Themes *ThemeSheet

// LoadThemeSheet parses and validates a YAML theme sheet.
func LoadThemeSheet(data []byte) (*ThemeSheet, error) {
	var sheet ThemeSheet
	if err := yaml.Unmarshal(data, &sheet); err != nil {
		return nil, fmt.Errorf("failed to parse theme sheet: %w", err)
	}
	if err := sheet.Validate(); err != nil {
		return nil, fmt.Errorf("invalid theme sheet: %w", err)
	}
	return &sheet, nil
}

// Validate checks that themes exist, names are unique and the default is one of them.
func (s *ThemeSheet) Validate() error {
	if len(s.Themes) == 0 {
		return errors.New("no themes defined")
	}
	seen := make(map[string]bool, len(s.Themes))
	for i, th := range s.Themes {
		if th.Name == "" {
			return fmt.Errorf("theme %d has no name", i)
		}
		if seen[th.Name] {
			return fmt.Errorf("duplicate theme %q", th.Name)
		}
		seen[th.Name] = true
	}
	if s.Default != "" && !seen[s.Default] {
		return fmt.Errorf("default theme %q not defined", s.Default)
	}
	return nil
}

// Index returns the position of the named theme, or -1.
func (s *ThemeSheet) Index(name string) int {
	for i, th := range s.Themes {
		if th.Name == name {
			return i
		}
	}
	return -1
}

// DefaultIndex returns the index of the default theme, or 0.
func (s *ThemeSheet) DefaultIndex() int {
	if i := s.Index(s.Default); i >= 0 {
		return i
	}
	return 0
}

// At returns the theme at i, wrapping around in both directions.
func (s *ThemeSheet) At(i int) Theme {
	n := len(s.Themes)
	if n == 0 {
		return Theme{}
	}
	return s.Themes[((i%n)+n)%n]
}

// Color reads a hex color variable, returning fallback when it is missing
// or malformed.
func Color(src Vars, key string, fallback color.RGBA) color.RGBA {
	if src == nil {
		return fallback
	}
	raw, ok := src.LookupVar(key)
	if !ok {
		return fallback
	}
	c, err := colorful.Hex(raw)
	if err != nil {
		return fallback
	}
	r, g, b := c.Clamped().RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 255}
}

// Blend mixes a toward b by t in Lab space, so dimmed text keeps its hue.
func Blend(a, b color.RGBA, t float64) color.RGBA {
	ca, _ := colorful.MakeColor(a)
	cb, _ := colorful.MakeColor(b)
	r, g, bl := ca.BlendLab(cb, t).Clamped().RGB255()
	return color.RGBA{R: r, G: g, B: bl, A: 255}
}

// fallbackThemes is used when the embedded sheet cannot be loaded.
func fallbackThemes() *ThemeSheet {
	return &ThemeSheet{
		Default: "violet",
		Themes: []Theme{{
			Name: "violet",
			Vars: VarMap{
				VarGlowColor: "#8b5cf6",
				VarCardColor: "#1e1b2e",
				VarTextColor: "#ede9fe",
				VarBackdrop:  "#0f0d17",
			},
		}},
	}
}

func init() {
	sheet, err := LoadThemeSheet(themesYAML)
	if err != nil {
		log.Printf("Warning: Could not load themes: %v", err)
		sheet = fallbackThemes()
	}
	Themes = sheet
}
