package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// configFile is the file name looked up in the user and local config directories.
const configFile = "egg.yaml"

// LoadEgg loads the egg launch configuration and validates it.
// Search order: customPath -> ~/.egglaunch/configs/egg.yaml -> ./configs/egg.yaml -> embedded default
func LoadEgg(customPath string) (EggConfig, error) {
	cfg, err := loadEgg(customPath)
	if err != nil {
		return cfg, err
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func loadEgg(customPath string) (EggConfig, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return EggConfig{}, fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		cfg, err := Parse(data)
		if err != nil {
			return cfg, fmt.Errorf("config: failed to parse %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath(configFile); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := Parse(data); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", configFile)); err == nil {
		if cfg, err := Parse(data); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg, err := Parse(defaultEggYAML)
	if err != nil {
		return DefaultEggConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// Parse decodes YAML on top of the hardcoded defaults, so a partial file
// only overrides the keys it names.
func Parse(data []byte) (EggConfig, error) {
	cfg := DefaultEggConfig()
	// Lists replace rather than merge.
	cfg.Catalog = nil
	cfg.Perch.Sprites = nil
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	defaults := DefaultEggConfig()
	if len(cfg.Catalog) == 0 {
		cfg.Catalog = defaults.Catalog
	}
	if len(cfg.Perch.Sprites) == 0 {
		cfg.Perch.Sprites = defaults.Perch.Sprites
	}
	return cfg, nil
}

// Marshal encodes a configuration as YAML.
func Marshal(cfg EggConfig) ([]byte, error) {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("config: failed to encode: %w", err)
	}
	return data, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".egglaunch", "configs", filename)
}
