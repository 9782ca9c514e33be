package systems

import (
	"log"
	"strconv"

	"github.com/automoto/popcards/components"
	cfg "github.com/automoto/popcards/config"
	"github.com/automoto/popcards/shared/gamemath"
	"github.com/yohamta/donburi/ecs"
)

// UpdateSettings applies the settings actions (theme cycling, panel and
// debug toggles, bound reset) and saves once something changed.
func UpdateSettings(e *ecs.ECS) {
	input := getOrCreateInput(e)
	settings := GetOrCreateSettings(e)

	if GetAction(input, cfg.ActionNextTheme).JustPressed {
		CycleTheme(e, 1)
	}
	if GetAction(input, cfg.ActionPrevTheme).JustPressed {
		CycleTheme(e, -1)
	}
	if GetAction(input, cfg.ActionTogglePanel).JustPressed {
		settings.PanelOpen = !settings.PanelOpen
		settings.Dirty = true
	}
	if GetAction(input, cfg.ActionToggleDebug).JustPressed {
		settings.Debug = !settings.Debug
		settings.Dirty = true
	}
	if GetAction(input, cfg.ActionResetBounds).JustPressed {
		ResetOverrides(e)
	}

	if settings.Dirty {
		SaveCurrentSettings(settings)
		settings.Dirty = false
	}
}

// GetOrCreateSettings returns the Settings singleton. A new one starts on
// the theme named by the -theme flag, or the sheet's default.
func GetOrCreateSettings(e *ecs.ECS) *components.SettingsData {
	entry, ok := components.Settings.First(e.World)
	if ok {
		return components.Settings.Get(entry)
	}

	entry = e.World.Entry(e.World.Create(components.Settings))
	settings := components.Settings.Get(entry)
	settings.ThemeIndex = cfg.Themes.DefaultIndex()
	settings.Overrides = cfg.VarMap{}
	settings.Debug = cfg.Debug.Enabled
	settings.PanelOpen = cfg.Debug.ShowPanel

	if cfg.Debug.Theme != "" {
		if i := cfg.Themes.Index(cfg.Debug.Theme); i >= 0 {
			settings.ThemeIndex = i
		} else {
			log.Printf("Warning: Unknown theme %q, using %q", cfg.Debug.Theme, cfg.Themes.Default)
		}
	}
	return settings
}

// CycleTheme moves the active theme by delta, wrapping around the sheet.
// Cards pick the new bounds up on their next pointer sample.
func CycleTheme(e *ecs.ECS, delta int) {
	settings := GetOrCreateSettings(e)
	n := len(cfg.Themes.Themes)
	if n == 0 {
		return
	}
	settings.ThemeIndex = ((settings.ThemeIndex+delta)%n + n) % n
	settings.Dirty = true
}

// SetTheme selects a theme by name. It reports false for unknown names.
func SetTheme(e *ecs.ECS, name string) bool {
	i := cfg.Themes.Index(name)
	if i < 0 {
		return false
	}
	settings := GetOrCreateSettings(e)
	settings.ThemeIndex = i
	settings.Dirty = true
	return true
}

// SetOverride stores a user override for a presentation variable.
func SetOverride(e *ecs.ECS, key string, value float64, decimals int) {
	settings := GetOrCreateSettings(e)
	if settings.Overrides == nil {
		settings.Overrides = cfg.VarMap{}
	}
	settings.Overrides[key] = strconv.FormatFloat(value, 'f', decimals, 64)
	settings.Dirty = true
}

// ResetOverrides drops every user override so the theme applies again.
func ResetOverrides(e *ecs.ECS) {
	settings := GetOrCreateSettings(e)
	if len(settings.Overrides) == 0 {
		return
	}
	settings.Overrides = cfg.VarMap{}
	settings.Dirty = true
}

// BoundValue returns the deck-wide value of an adjustable bound: the
// user's override, else the theme's, else the built-in default.
func BoundValue(e *ecs.ECS, step cfg.BoundStep) float64 {
	settings := GetOrCreateSettings(e)
	chain := cfg.VarChain{settings.Overrides, settings.Theme().Vars}
	bounds := cfg.ReadTiltBounds(chain)

	switch step.Key {
	case cfg.VarTiltBound:
		return bounds.Tilt
	case cfg.VarTranslateBound:
		return bounds.Translate
	case cfg.VarPeakScale:
		return bounds.Scale
	}
	return cfg.Number(chain, step.Key, step.Min)
}

// AdjustBound nudges an adjustable bound by dir steps, clamped to the
// step's range, and stores the result as an override.
func AdjustBound(e *ecs.ECS, step cfg.BoundStep, dir int) float64 {
	v := gamemath.Clamp(BoundValue(e, step)+float64(dir)*step.Step, step.Min, step.Max)
	SetOverride(e, step.Key, v, step.Decimals)
	return v
}
