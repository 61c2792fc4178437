package config

import (
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Load loads the board configuration.
// Search order: customPath -> ~/.life/configs/life.yaml -> ./configs/life.yaml -> embedded default
//
// Files are decoded over DefaultLifeConfig, so a file may set only the keys it
// wants to change. An explicit customPath must exist and parse; the other
// locations are skipped when missing or malformed.
func Load(customPath string) (LifeConfig, error) {
	if customPath != "" {
		cfg, err := loadFile(customPath)
		if err != nil {
			return cfg, err
		}
		if err := cfg.Validate(); err != nil {
			return cfg, errors.Wrapf(err, "invalid config %s", customPath)
		}
		return cfg, nil
	}

	candidates := []string{
		userConfigPath("life.yaml"),
		filepath.Join("configs", "life.yaml"),
	}
	for _, path := range candidates {
		if path == "" {
			continue
		}
		if cfg, err := loadFile(path); err == nil && cfg.Validate() == nil {
			return cfg, nil
		}
	}

	cfg := DefaultLifeConfig()
	if err := yaml.Unmarshal(defaultLifeYAML, &cfg); err != nil || cfg.Validate() != nil {
		return DefaultLifeConfig(), nil // Fallback to hardcoded if embed is broken
	}
	return cfg, nil
}

func loadFile(path string) (LifeConfig, error) {
	cfg := DefaultLifeConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, errors.Wrapf(err, "failed to read config %s", path)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, errors.Wrapf(err, "failed to parse config %s", path)
	}
	return cfg, nil
}

// userConfigPath returns the path to a user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".life", "configs", filename)
}

// Marshal renders a configuration as YAML.
func Marshal(cfg LifeConfig) ([]byte, error) {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, errors.Wrap(err, "failed to encode config")
	}
	return data, nil
}
