package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/menta2k/icon-forge/pkg/pipeline"
)

// Config holds the application configuration: the list of icon profiles to
// generate. The defaults reproduce the three shipped asset variants.
type Config struct {
	Profiles []pipeline.Profile `yaml:"profiles"`
}

// Built-in canvas geometry. 432 is 108dp at xxxhdpi (4x) density; 512 is the
// Play Store listing size.
const (
	AdaptiveCanvasSize  = 432
	PlayStoreCanvasSize = 512
)

// PlayStoreBackground is the launcher background blue.
var PlayStoreBackground = pipeline.HexColor{R: 0x1E, G: 0x3A, B: 0x8A}

// Default returns a configuration with the three built-in profiles.
func Default() *Config {
	bg := PlayStoreBackground
	return &Config{
		Profiles: []pipeline.Profile{
			{
				Name:             "adaptive",
				Input:            "app/src/main/res/drawable/applogo.png",
				Output:           "app/src/main/res/drawable/ic_launcher_foreground_resized.png",
				CanvasSize:       AdaptiveCanvasSize,
				SafeAreaFraction: 0.66,
				// Nudge up and left to compensate for the logo text
				// being visually heavier at the bottom.
				OffsetX: -2,
				OffsetY: -5,
			},
			{
				Name:             "centered",
				Input:            "app/src/main/res/drawable/applogo.png",
				Output:           "app/src/main/res/drawable/ic_launcher_foreground_centered.png",
				CanvasSize:       AdaptiveCanvasSize,
				SafeAreaFraction: 0.55,
				TrimToContent:    true,
				CropPadding:      5,
			},
			{
				Name:             "playstore",
				Input:            "app/src/main/res/drawable/applogo.png",
				Output:           "app/src/main/ic_launcher-playstore.png",
				CanvasSize:       PlayStoreCanvasSize,
				SafeAreaFraction: 0.80,
				Background:       &bg,
			},
		},
	}
}

// LoadFromFile loads configuration from a YAML file.
func LoadFromFile(filename string) (*Config, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return &config, nil
}

// SaveToFile saves configuration to a YAML file.
func (c *Config) SaveToFile(filename string) error {
	dir := filepath.Dir(filename)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(filename, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if len(c.Profiles) == 0 {
		return fmt.Errorf("profiles cannot be empty")
	}

	seen := map[string]struct{}{}
	for i := range c.Profiles {
		p := &c.Profiles[i]
		if err := p.Validate(); err != nil {
			return err
		}
		if _, dup := seen[p.Name]; dup {
			return fmt.Errorf("duplicate profile name %q", p.Name)
		}
		seen[p.Name] = struct{}{}
	}

	return nil
}

// Profile returns the named profile.
func (c *Config) Profile(name string) (*pipeline.Profile, error) {
	for i := range c.Profiles {
		if c.Profiles[i].Name == name {
			return &c.Profiles[i], nil
		}
	}
	return nil, fmt.Errorf("unknown profile %q", name)
}

// GetConfigPath returns the default configuration file path. The
// ICON_FORGE_CONFIG environment variable overrides it.
func GetConfigPath() string {
	if path := os.Getenv("ICON_FORGE_CONFIG"); path != "" {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "./config.yaml"
	}
	return filepath.Join(home, ".config", "icon-forge", "config.yaml")
}
