// Package settings persists player preferences between sessions.
// Storage goes through gdata; without a manager the settings live in memory
// only.
package settings

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/quasilyte/gdata/v2"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/egg-launch/internal/config"
)

// AppName is the gdata application name.
const AppName = "egglaunch"

const (
	settingsObject   = "settings"
	settingsProperty = "player"
)

// Preferences are the persisted player choices. They act as defaults for
// flags the user did not pass.
type Preferences struct {
	SoundEnabled bool    `yaml:"sound_enabled"`
	SoundVolume  float64 `yaml:"sound_volume"` // 0.0 to 1.0
	Difficulty   string  `yaml:"difficulty"`   // Preset name, empty for none
	Game         string  `yaml:"game"`         // Default game ID
	Seed         int64   `yaml:"seed"`         // 0 uses the config seed
}

// DefaultPreferences returns the built-in preferences.
func DefaultPreferences() Preferences {
	return Preferences{
		SoundEnabled: true,
		SoundVolume:  0.8,
		Game:         "egg",
	}
}

// Manager loads and saves preferences.
type Manager struct {
	store  *gdata.Manager // nil means in-memory only
	prefs  Preferences
	logger *log.Logger
}

// Open creates a gdata-backed manager. If gdata cannot be opened the
// manager still works in memory and the error is returned for logging.
func Open(logger *log.Logger) (*Manager, error) {
	store, err := gdata.Open(gdata.Config{AppName: AppName})
	if err != nil {
		m := New(nil, logger)
		return m, fmt.Errorf("settings: cannot open data store: %w", err)
	}
	m := New(store, logger)
	if err := m.Load(); err != nil {
		return m, err
	}
	return m, nil
}

// New wraps an existing gdata manager, which may be nil.
func New(store *gdata.Manager, logger *log.Logger) *Manager {
	if logger == nil {
		logger = log.Default()
	}
	return &Manager{
		store:  store,
		prefs:  DefaultPreferences(),
		logger: logger,
	}
}

// Persistent reports whether preferences survive the process.
func (m *Manager) Persistent() bool {
	return m.store != nil
}

// Load reads saved preferences. A missing entry keeps the defaults.
func (m *Manager) Load() error {
	m.prefs = DefaultPreferences()
	if m.store == nil || !m.store.ObjectPropExists(settingsObject, settingsProperty) {
		return nil
	}

	data, err := m.store.LoadObjectProp(settingsObject, settingsProperty)
	if err != nil {
		return fmt.Errorf("settings: cannot load preferences: %w", err)
	}

	prefs := DefaultPreferences()
	if err := yaml.Unmarshal(data, &prefs); err != nil {
		return fmt.Errorf("settings: cannot parse preferences: %w", err)
	}
	m.prefs = prefs
	m.logger.Debug("preferences loaded")
	return nil
}

// Save writes the preferences. In memory mode this is a no-op.
func (m *Manager) Save() error {
	if m.store == nil {
		return nil
	}

	data, err := yaml.Marshal(m.prefs)
	if err != nil {
		return fmt.Errorf("settings: cannot encode preferences: %w", err)
	}
	if err := m.store.SaveObjectProp(settingsObject, settingsProperty, data); err != nil {
		return fmt.Errorf("settings: cannot save preferences: %w", err)
	}
	m.logger.Debug("preferences saved")
	return nil
}

// Get returns the current preferences.
func (m *Manager) Get() Preferences {
	return m.prefs
}

// Keys lists the names accepted by Set.
func Keys() []string {
	return []string{"difficulty", "game", "seed", "sound", "volume"}
}

// Set changes one preference from its text form. Call Save to persist.
func (m *Manager) Set(key, value string) error {
	p := m.prefs
	switch strings.ToLower(key) {
	case "sound":
		on, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("settings: sound expects true or false, got %q", value)
		}
		p.SoundEnabled = on
	case "volume":
		v, err := strconv.ParseFloat(value, 64)
		if err != nil || v < 0 || v > 1 {
			return fmt.Errorf("settings: volume expects a number in [0, 1], got %q", value)
		}
		p.SoundVolume = v
	case "difficulty":
		if value != "" && config.ParsePreset(value) == "" {
			return fmt.Errorf("settings: unknown difficulty %q", value)
		}
		p.Difficulty = value
	case "game":
		if value != "egg" && value != "egg_random" {
			return fmt.Errorf("settings: unknown game %q", value)
		}
		p.Game = value
	case "seed":
		v, err := strconv.ParseInt(value, 10, 64)
		if err != nil {
			return fmt.Errorf("settings: seed expects an integer, got %q", value)
		}
		p.Seed = v
	default:
		return fmt.Errorf("settings: unknown key %q (valid: %s)", key, strings.Join(Keys(), ", "))
	}
	m.prefs = p
	return nil
}
