package components

import (
	"github.com/automoto/popcards/config"
	"github.com/yohamta/donburi"
)

// SettingsData stores the user-facing settings (singleton component)
type SettingsData struct {
	ThemeIndex int
	Overrides  config.VarMap // user overrides from the control panel, checked before the theme
	Debug      bool
	PanelOpen  bool
	Dirty      bool // changed since last save
}

// Theme returns the active theme.
func (s *SettingsData) Theme() config.Theme {
	return config.Themes.At(s.ThemeIndex)
}

var Settings = donburi.NewComponentType[SettingsData]()
