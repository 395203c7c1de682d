// Package config provides configuration management for the listing tools.
package config

import (
	"errors"
	"fmt"
	"os"
	"regexp"

	"gopkg.in/yaml.v3"
)

// Configuration validation errors.
var (
	ErrNoRecordKeys       = errors.New("enrich.record_keys must contain at least one key")
	ErrEmptyRecordKey     = errors.New("enrich.record_keys must not contain empty keys")
	ErrInvalidNamePattern = errors.New("enrich.extra_name_patterns contains an invalid regex")
	ErrInvalidPreview     = errors.New("enrich.skipped_preview must be non-negative")
	ErrInvalidIndent      = errors.New("output.indent must contain only spaces or tabs")
	ErrInvalidLogLevel    = errors.New("logging.level must be one of: debug, info, warn, error")
)

var (
	defaultRecordKeys = []string{"consultants", "reps", "data"}
	indentPattern     = regexp.MustCompile(`^[ \t]*$`)
)

// Default values used when a setting is absent.
const (
	DefaultSkippedPreview = 10
	DefaultIndent         = "  "
	DefaultLogLevel       = "info"
)

// Config represents the complete tool configuration.
type Config struct {
	Enrich  EnrichConfig  `yaml:"enrich"`
	Output  OutputConfig  `yaml:"output"`
	Logging LoggingConfig `yaml:"logging"`
}

// EnrichConfig contains enrichment settings.
type EnrichConfig struct {
	// RecordKeys lists, in priority order, the keys searched for the record
	// list when the input document is an object.
	RecordKeys        []string `yaml:"record_keys"`
	ExtraNamePatterns []string `yaml:"extra_name_patterns"`
	SkippedPreview    *int     `yaml:"skipped_preview"`
}

// OutputConfig defines output behavior.
type OutputConfig struct {
	Indent string `yaml:"indent"`
}

// LoggingConfig defines logging behavior.
type LoggingConfig struct {
	Level string `yaml:"level"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()

	return cfg
}

// LoadConfig loads configuration from YAML file.
func LoadConfig(filepath string) (*Config, error) {
	data, err := os.ReadFile(filepath)
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
	if c.Enrich.RecordKeys == nil {
		c.Enrich.RecordKeys = append([]string(nil), defaultRecordKeys...)
	}

	if c.Enrich.SkippedPreview == nil {
		preview := DefaultSkippedPreview
		c.Enrich.SkippedPreview = &preview
	}

	if c.Output.Indent == "" {
		c.Output.Indent = DefaultIndent
	}

	if c.Logging.Level == "" {
		c.Logging.Level = DefaultLogLevel
	}
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if len(c.Enrich.RecordKeys) == 0 {
		return ErrNoRecordKeys
	}

	for i, key := range c.Enrich.RecordKeys {
		if key == "" {
			return fmt.Errorf("%w: record_keys[%d]", ErrEmptyRecordKey, i)
		}
	}

	for i, pattern := range c.Enrich.ExtraNamePatterns {
		if _, err := regexp.Compile(pattern); err != nil {
			return fmt.Errorf("%w: extra_name_patterns[%d]: %w", ErrInvalidNamePattern, i, err)
		}
	}

	if c.Enrich.SkippedPreview != nil && *c.Enrich.SkippedPreview < 0 {
		return ErrInvalidPreview
	}

	if !indentPattern.MatchString(c.Output.Indent) {
		return ErrInvalidIndent
	}

	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[c.Logging.Level] {
		return ErrInvalidLogLevel
	}

	return nil
}

// Preview returns how many skipped records are listed in the run summary.
func (c *Config) Preview() int {
	if c.Enrich.SkippedPreview == nil {
		return DefaultSkippedPreview
	}

	return *c.Enrich.SkippedPreview
}

// String returns a string representation of the config.
func (c *Config) String() string {
	return fmt.Sprintf(
		"Config{RecordKeys: %v, ExtraPatterns: %d, LogLevel: %s}",
		c.Enrich.RecordKeys,
		len(c.Enrich.ExtraNamePatterns),
		c.Logging.Level,
	)
}
