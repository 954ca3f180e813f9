// Package config provides configuration structures for the monument search
// service: server, database and logging settings with defaults, validation
// and YAML file loading.
package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// ServerSettings holds HTTP server settings.
type ServerSettings struct {
	Port string `yaml:"port"` // Port to listen on (default: 8080)
}

// DatabaseSettings holds the SQLite dataset location.
type DatabaseSettings struct {
	Path string `yaml:"path"` // Path to the monument SQLite database file
}

// LoggingSettings holds logging settings.
type LoggingSettings struct {
	Level string `yaml:"level"` // debug, info, warn, error (default: info)
}

// Settings contains all configuration options for the service.
type Settings struct {
	Server   ServerSettings   `yaml:"server"`
	Database DatabaseSettings `yaml:"database"`
	Logging  LoggingSettings  `yaml:"logging"`
}

// Load reads settings from a YAML file and applies defaults. An empty path
// yields pure defaults.
func Load(path string) (*Settings, error) {
	settings := &Settings{}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, settings); err != nil {
			return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
		}
	}

	settings.ApplyDefaults()
	if conflicts := settings.Validate(); len(conflicts) > 0 {
		return nil, fmt.Errorf("invalid configuration: %s", strings.Join(conflicts, "; "))
	}
	return settings, nil
}

// ApplyDefaults applies default values to unset settings.
func (settings *Settings) ApplyDefaults() {
	if settings.Server.Port == "" {
		settings.Server.Port = "8080"
	}
	if settings.Database.Path == "" {
		settings.Database.Path = "./monuments.db"
	}
	if settings.Logging.Level == "" {
		settings.Logging.Level = "info"
	}
}

// Validate checks the settings for basic requirements and returns a list of
// conflicts, empty when the settings are valid.
func (settings *Settings) Validate() []string {
	var conflicts []string

	if strings.TrimSpace(settings.Server.Port) == "" {
		conflicts = append(conflicts, "server port cannot be empty or whitespace-only")
	}
	if strings.TrimSpace(settings.Database.Path) == "" {
		conflicts = append(conflicts, "database path cannot be empty or whitespace-only")
	}

	switch settings.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		conflicts = append(conflicts, "invalid logging level '"+settings.Logging.Level+"' (must be 'debug', 'info', 'warn' or 'error')")
	}

	return conflicts
}
