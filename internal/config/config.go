// Package config provides configuration management for the estate
// enrichment pipeline. One config object describes one run; no
// process-wide state survives between runs.
package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Configuration validation errors.
var (
	ErrMissingInputFolder   = errors.New("input.folder is required")
	ErrMissingSettingsPath  = errors.New("lookups.settings_path is required")
	ErrMissingSchedulesPath = errors.New("lookups.schedules_path is required")
	ErrMissingBaselinePath  = errors.New("lookups.nar_baseline_path is required")
	ErrMissingOutputPath    = errors.New("output.path is required")
	ErrInvalidLogLevel      = errors.New("logging.level must be one of: debug, info, warn, error")
)

// Config represents the complete pipeline configuration.
type Config struct {
	Input   InputConfig   `yaml:"input"`
	Lookups LookupsConfig `yaml:"lookups"`
	Output  OutputConfig  `yaml:"output"`
	Logging LoggingConfig `yaml:"logging"`
}

// InputConfig locates the newest inventory extract.
type InputConfig struct {
	Folder string `yaml:"folder"`
	Prefix string `yaml:"prefix"`
	Sheet  string `yaml:"sheet"`
}

// LookupsConfig locates the reference workbooks.
type LookupsConfig struct {
	SettingsPath  string `yaml:"settings_path"`
	SchedulesPath string `yaml:"schedules_path"`
	BaselinePath  string `yaml:"nar_baseline_path"`
	BaselineSheet string `yaml:"nar_baseline_sheet"`
}

// OutputConfig defines where the decorated dataset is written.
type OutputConfig struct {
	Path  string `yaml:"path"`
	Sheet string `yaml:"sheet"`
}

// LoggingConfig defines logging behavior.
type LoggingConfig struct {
	Level string `yaml:"level"`
}

// LoadConfig loads and validates configuration from a YAML file.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return &cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Input.Prefix == "" {
		c.Input.Prefix = "VW_ONEMI_ESTATE_MANAGEMENT_"
	}
	if c.Input.Sheet == "" {
		c.Input.Sheet = "Sheet1"
	}
	if c.Lookups.BaselineSheet == "" {
		c.Lookups.BaselineSheet = "NAR_ReportBaseLine"
	}
	if c.Output.Sheet == "" {
		c.Output.Sheet = "Estate"
	}
	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if c.Input.Folder == "" {
		return ErrMissingInputFolder
	}

	if c.Lookups.SettingsPath == "" {
		return ErrMissingSettingsPath
	}

	if c.Lookups.SchedulesPath == "" {
		return ErrMissingSchedulesPath
	}

	if c.Lookups.BaselinePath == "" {
		return ErrMissingBaselinePath
	}

	if c.Output.Path == "" {
		return ErrMissingOutputPath
	}

	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[c.Logging.Level] {
		return ErrInvalidLogLevel
	}

	return nil
}

// String returns a short description of the config for startup logging.
func (c *Config) String() string {
	return fmt.Sprintf("Config{Input: %s/%s*, Output: %s}", c.Input.Folder, c.Input.Prefix, c.Output.Path)
}
