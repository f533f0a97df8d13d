package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadBreakout loads Breakout configuration.
// Search order: customPath -> ~/.arcade/configs/breakout.yaml -> ./configs/breakout.yaml -> embedded default.
// Files are decoded on top of the defaults, so a partial file only overrides
// the keys it sets. The result is validated.
func LoadBreakout(customPath string) (BreakoutConfig, error) {
	cfg := DefaultBreakoutConfig()

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, cfg.Validate()
	}

	// Try user config directory
	if userCfgPath := userConfigPath("breakout.yaml"); userCfgPath != "" {
		if loaded, ok := tryLoad(userCfgPath); ok {
			return loaded, loaded.Validate()
		}
	}

	// Try local configs directory
	if loaded, ok := tryLoad(filepath.Join("configs", "breakout.yaml")); ok {
		return loaded, loaded.Validate()
	}

	// Use embedded default YAML
	if err := yaml.Unmarshal(defaultBreakoutYAML, &cfg); err != nil {
		return DefaultBreakoutConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, cfg.Validate()
}

// tryLoad decodes the file at path over the defaults. Missing or unparsable
// files are skipped.
func tryLoad(path string) (BreakoutConfig, bool) {
	data, err := os.ReadFile(path)
	if err != nil {
		return BreakoutConfig{}, false
	}
	cfg := DefaultBreakoutConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return BreakoutConfig{}, false
	}
	return cfg, true
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".arcade", "configs", filename)
}
