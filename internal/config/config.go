// Package config loads optional user settings for fb2rename.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ErrConfigNotFound is returned when the config file does not exist.
// Callers can check for this with errors.Is(err, config.ErrConfigNotFound).
var ErrConfigNotFound = errors.New("config file not found")

// ConfigFileName is looked up in the user config directory when no
// explicit path is given.
const ConfigFileName = "fb2rename.yaml"

// Config holds settings that flags may override.
type Config struct {
	// Template is the name of the preset used when neither --format nor
	// --template is given.
	Template string `yaml:"template,omitempty"`

	// Templates adds named presets or replaces built-in ones.
	Templates map[string]string `yaml:"templates,omitempty"`

	// Extensions replaces the default extension filter.
	Extensions []string `yaml:"extensions,omitempty"`

	Recursive bool     `yaml:"recursive,omitempty"`
	Exclude   []string `yaml:"exclude,omitempty"`
}

// Load reads the config file at path.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrConfigNotFound
		}
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	for name, tmpl := range cfg.Templates {
		if name == "" || tmpl == "" {
			return nil, fmt.Errorf("%s: template %q must have a name and a value", path, name)
		}
	}
	return &cfg, nil
}

// DefaultPath returns the location of the config file in the user config
// directory, e.g. ~/.config/fb2rename.yaml.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, ConfigFileName), nil
}

// LoadDefault loads the config from DefaultPath. A missing file yields an
// empty Config.
func LoadDefault() (*Config, error) {
	path, err := DefaultPath()
	if err != nil {
		return &Config{}, nil
	}
	cfg, err := Load(path)
	if errors.Is(err, ErrConfigNotFound) {
		return &Config{}, nil
	}
	return cfg, err
}
