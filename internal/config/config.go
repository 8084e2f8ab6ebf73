// Package config loads bideval configuration from an optional YAML file
// with environment-variable overrides. The Gemini API key is always taken
// from the environment when present; a missing key is a startup error, not
// something the wizard recovers from later.
package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// ErrMissingAPIKey is returned by Validate when no Gemini API key was
// resolved from the config file or the environment.
var ErrMissingAPIKey = errors.New("GEMINI_API_KEY is not set: export a Gemini API key before starting")

// Config holds all bideval configuration.
type Config struct {
	// Core settings
	Name    string `yaml:"name"`
	Version string `yaml:"version"`

	// Generative service configuration
	LLM LLMConfig `yaml:"llm"`

	// Document catalog source
	Catalog CatalogConfig `yaml:"catalog"`

	// Logging
	Logging LoggingConfig `yaml:"logging"`
}

// LLMConfig configures the report requester. There is deliberately no
// timeout knob: the analysis call runs until the transport or the service
// settles it.
type LLMConfig struct {
	APIKey string `yaml:"api_key"`
	Model  string `yaml:"model"`
}

// CatalogConfig configures document ingestion. An empty File selects the
// built-in example catalog.
type CatalogConfig struct {
	File string `yaml:"file"`
}

// LoggingConfig configures the category file logger. An empty Dir disables
// file logging entirely.
type LoggingConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error
	Dir   string `yaml:"dir"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Name:    "bideval",
		Version: "0.1.0",

		LLM: LLMConfig{
			Model: "gemini-2.5-flash",
		},

		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// Load loads configuration from a YAML file. A missing file yields the
// defaults. Environment overrides are applied on every path so the API key
// can come from the environment alone.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			cfg.applyEnvOverrides()
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	cfg.applyEnvOverrides()
	return cfg, nil
}

// applyEnvOverrides applies environment variable overrides.
func (c *Config) applyEnvOverrides() {
	if key := os.Getenv("GEMINI_API_KEY"); key != "" {
		c.LLM.APIKey = key
	}
	if model := os.Getenv("BIDEVAL_MODEL"); model != "" {
		c.LLM.Model = model
	}
	if file := os.Getenv("BIDEVAL_CATALOG"); file != "" {
		c.Catalog.File = file
	}
	if level := os.Getenv("BIDEVAL_LOG_LEVEL"); level != "" {
		c.Logging.Level = level
	}
	if dir := os.Getenv("BIDEVAL_LOG_DIR"); dir != "" {
		c.Logging.Dir = dir
	}
}

// Validate enforces the startup requirements. The API key must be present
// before any UI starts; the caller should treat a failure as fatal.
func (c *Config) Validate() error {
	if c.LLM.APIKey == "" {
		return ErrMissingAPIKey
	}
	if c.LLM.Model == "" {
		return errors.New("llm model must not be empty")
	}
	return nil
}
