// Package config loads and saves the workspace tool configuration.
package config

import (
	"fmt"
	"os"

	"github.com/felixgeelhaar/prdlens/pkg/storage"
	"gopkg.in/yaml.v3"
)

// Config stores tool settings kept outside the analyzer itself.
type Config struct {
	// HistoryLimit caps the retained quality-score history.
	HistoryLimit int `yaml:"history_limit"`

	// DebounceMs is the watch-mode debounce window in milliseconds.
	DebounceMs int `yaml:"debounce_ms"`

	// QualityGate is the minimum score required to approve a requirement.
	QualityGate int `yaml:"quality_gate"`
}

// Load reads config.yaml from the workspace. A missing file yields nil
// (callers apply defaults), not an error.
func Load(root string) (*Config, error) {
	repo := storage.NewFilesystemRepository(root)
	path, err := repo.ResolvePath(storage.ConfigFile)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &cfg, nil
}

// Save writes config.yaml to the workspace.
func Save(root string, cfg *Config) error {
	if cfg == nil {
		return fmt.Errorf("config is nil")
	}

	repo := storage.NewFilesystemRepository(root)
	path, err := repo.ResolvePath(storage.ConfigFile)
	if err != nil {
		return err
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	return os.WriteFile(path, data, 0600)
}
