package systems

import (
	"encoding/json"
	"fmt"
	"log"

	"github.com/automoto/popcards/components"
	cfg "github.com/automoto/popcards/config"
	"github.com/quasilyte/gdata"
	"github.com/yohamta/donburi/ecs"
)

// SavedSettings represents the settings data stored on disk
type SavedSettings struct {
	Theme     string            `json:"theme"`
	Overrides map[string]string `json:"overrides,omitempty"`
	Debug     bool              `json:"debug"`
	PanelOpen bool              `json:"panelOpen"`
}

const settingsItem = "settings"

var gdataManager *gdata.Manager
var gdataInitialized bool

// InitPersistence initializes the gdata manager for settings storage
func InitPersistence() error {
	m, err := gdata.Open(gdata.Config{
		AppName: "popcards",
	})
	if err != nil {
		return fmt.Errorf("open settings store: %w", err)
	}
	gdataManager = m
	gdataInitialized = true
	return nil
}

// LoadSettings loads settings from disk. It returns nil, nil when nothing
// was saved yet or persistence is unavailable.
func LoadSettings() (*SavedSettings, error) {
	if !gdataInitialized || gdataManager == nil {
		return nil, nil
	}

	data, err := gdataManager.LoadItem(settingsItem)
	if err != nil {
		log.Printf("Warning: Could not load settings: %v", err)
		return nil, nil
	}
	if len(data) == 0 {
		// No saved settings yet, use defaults
		return nil, nil
	}

	return decodeSettings(data)
}

func decodeSettings(data []byte) (*SavedSettings, error) {
	var settings SavedSettings
	if err := json.Unmarshal(data, &settings); err != nil {
		log.Printf("Warning: Could not parse saved settings: %v", err)
		return nil, fmt.Errorf("decode settings: %w", err)
	}
	return &settings, nil
}

// SaveSettings saves settings to disk
func SaveSettings(s *SavedSettings) error {
	if !gdataInitialized || gdataManager == nil {
		return nil
	}

	data, err := json.Marshal(s)
	if err != nil {
		log.Printf("Warning: Could not serialize settings: %v", err)
		return err
	}

	if err := gdataManager.SaveItem(settingsItem, data); err != nil {
		log.Printf("Warning: Could not save settings: %v", err)
		return err
	}
	return nil
}

// SnapshotSettings converts the Settings singleton into its saved form.
func SnapshotSettings(s *components.SettingsData) *SavedSettings {
	saved := &SavedSettings{
		Theme:     s.Theme().Name,
		Debug:     s.Debug,
		PanelOpen: s.PanelOpen,
	}
	if len(s.Overrides) > 0 {
		saved.Overrides = map[string]string(s.Overrides.Clone())
	}
	return saved
}

// SaveCurrentSettings saves the current settings from the Settings component
func SaveCurrentSettings(s *components.SettingsData) {
	_ = SaveSettings(SnapshotSettings(s))
}

// ApplySavedSettings restores saved settings into the Settings singleton.
// A theme given on the command line wins over the saved one.
func ApplySavedSettings(e *ecs.ECS, saved *SavedSettings) {
	if saved == nil {
		return
	}
	settings := GetOrCreateSettings(e)

	if cfg.Debug.Theme == "" && saved.Theme != "" {
		if i := cfg.Themes.Index(saved.Theme); i >= 0 {
			settings.ThemeIndex = i
		} else {
			log.Printf("Warning: Saved theme %q no longer exists", saved.Theme)
		}
	}

	settings.Overrides = cfg.VarMap{}
	for k, v := range saved.Overrides {
		settings.Overrides[k] = v
	}
	settings.Debug = saved.Debug || cfg.Debug.Enabled
	settings.PanelOpen = saved.PanelOpen || cfg.Debug.ShowPanel
	settings.Dirty = false
}
