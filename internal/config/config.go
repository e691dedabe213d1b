// Package config loads the CLI's settings from ~/.secretbind/config.yaml.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/mcrich23/secretbind"
)

// Config holds persistent CLI configuration.
type Config struct {
	// Service scopes stored items; empty means secretbind.ServiceName.
	Service string `yaml:"service"`
	// Access is the default policy name applied to writes (see
	// secretbind.ParseAccessibility); empty defers to the backend.
	Access string `yaml:"access"`
	// Synchronizable marks items for iCloud Keychain sync on macOS.
	Synchronizable bool `yaml:"synchronizable"`
}

// DefaultPath returns the default config file path: ~/.secretbind/config.yaml.
func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".secretbind", "config.yaml")
}

// Load reads a YAML config file from path. If the file does not exist,
// it returns an empty Config and no error. An empty or all-comment file
// also returns an empty Config with no error. A config naming an
// unknown access policy is rejected here rather than at first write.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return &Config{}, nil
		}
		return nil, err
	}

	cfg := &Config{}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	if cfg.Access != "" {
		if _, err := secretbind.ParseAccessibility(cfg.Access); err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
	}
	return cfg, nil
}

// Accessibility returns the configured default policy, or
// AccessibilityDefault when unset.
func (c *Config) Accessibility() secretbind.Accessibility {
	if c.Access == "" {
		return secretbind.AccessibilityDefault
	}
	a, err := secretbind.ParseAccessibility(c.Access)
	if err != nil {
		return secretbind.AccessibilityDefault
	}
	return a
}
