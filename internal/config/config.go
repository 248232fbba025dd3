// Package config provides application configuration management,
// including reading the menukit configuration file.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Config represents the menukit configuration
type Config struct {
	AccentColor *string `json:"accentColor,omitempty"`
	DimColor    *string `json:"dimColor,omitempty"`
	ShowHelp    *bool   `json:"showHelp,omitempty"`
	LogFile     *string `json:"logFile,omitempty"`
}

// DefaultPath returns the path of the configuration file,
// ~/.menukit/config.json. MENUKIT_CONFIG overrides it.
func DefaultPath() string {
	if customPath := os.Getenv("MENUKIT_CONFIG"); customPath != "" {
		return customPath
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "config.json"
	}
	return filepath.Join(homeDir, ".menukit", "config.json")
}

// Load reads the configuration file at the given path
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		// Config doesn't exist - return default
		return &Config{}, nil
	}

	var config Config
	if err := json.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	return &config, nil
}

// GetAccentColor returns the configured accent color, or "205" as default
func (c *Config) GetAccentColor() string {
	if c.AccentColor != nil && *c.AccentColor != "" {
		return *c.AccentColor
	}
	return "205"
}

// GetDimColor returns the configured dim color, or "240" as default
func (c *Config) GetDimColor() string {
	if c.DimColor != nil && *c.DimColor != "" {
		return *c.DimColor
	}
	return "240"
}

// GetShowHelp returns whether the help line is shown, defaulting to true
func (c *Config) GetShowHelp() bool {
	if c.ShowHelp != nil {
		return *c.ShowHelp
	}
	return true
}

// GetLogFile returns the configured log file path, or empty when unset
func (c *Config) GetLogFile() string {
	if c.LogFile != nil {
		return *c.LogFile
	}
	return ""
}
