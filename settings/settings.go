// Package settings loads cpdgen tool settings using Viper.
//
// Settings govern the tool's own behavior (output location, generator
// backend, replace policy, seed), not dataset content; dataset content comes
// from the YAML generation config handled by package config. Sources, in
// precedence order: CLI flags (bound by the commands), environment variables
// with the CPDGEN prefix, an optional cpdgen.toml in the working directory,
// and built-in defaults.
package settings

import (
	"strings"

	"github.com/spf13/viper"

	"github.com/teranos/cpdgen/errors"
)

// Settings is the tool configuration.
type Settings struct {
	Output   OutputSettings   `mapstructure:"output"`
	Generate GenerateSettings `mapstructure:"generate"`
}

// OutputSettings controls where and how samples are persisted.
type OutputSettings struct {
	// Dir is the root directory for the filesystem sink
	Dir string `mapstructure:"dir"`
	// Database is the SQLite sink path; empty selects the filesystem sink
	Database string `mapstructure:"database"`
	// Replace overwrites existing datasets instead of skipping them
	Replace bool `mapstructure:"replace"`
}

// GenerateSettings controls sample synthesis.
type GenerateSettings struct {
	// Backend is the generator backend identifier
	Backend string `mapstructure:"backend"`
	// Seed makes generation reproducible when non-zero
	Seed int64 `mapstructure:"seed"`
}

var globalSettings *Settings

// Load reads settings once and caches them for the process.
func Load() (*Settings, error) {
	if globalSettings != nil {
		return globalSettings, nil
	}

	v := viper.New()
	v.SetEnvPrefix("CPDGEN")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	SetDefaults(v)

	v.SetConfigName("cpdgen")
	v.SetConfigType("toml")
	v.AddConfigPath(".")
	if err := v.ReadInConfig(); err != nil {
		// Settings file is optional; anything but not-found is a real error
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, errors.Wrap(err, "read settings file")
		}
	}

	s, err := LoadWithViper(v)
	if err != nil {
		return nil, err
	}
	globalSettings = s
	return globalSettings, nil
}

// LoadWithViper unmarshals settings from a prepared Viper instance.
func LoadWithViper(v *viper.Viper) (*Settings, error) {
	var s Settings
	if err := v.Unmarshal(&s); err != nil {
		return nil, errors.Wrap(err, "unmarshal settings")
	}
	return &s, nil
}

// Reset clears the cached settings (useful for testing).
func Reset() {
	globalSettings = nil
}
