// Package config provides configuration loading and validation for the CLI.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Config represents the CLI configuration that can be loaded from a JSON file.
// All fields are optional; missing values use defaults or must be provided via CLI flags.
type Config struct {
	// Paths
	Input  string `json:"input,omitempty"`  // Path to the resume file or LinkedIn export directory
	Output string `json:"output,omitempty"` // Path to write the imported JSON record
	Schema string `json:"schema,omitempty"` // Path to the resume JSON schema

	// Behavior
	Format      string `json:"format,omitempty"`       // Force the input format instead of auto-detection
	APIKey      string `json:"api_key,omitempty"`      // Gemini API key for the model-assisted classifier
	UseOracle   bool   `json:"use_oracle,omitempty"`   // Enable the model-assisted classifier
	OracleModel string `json:"oracle_model,omitempty"` // Override model name for classification
	Verbose     bool   `json:"verbose,omitempty"`      // Print detailed import information
	Concurrency int    `json:"concurrency,omitempty"`  // Parallel imports in batch mode
}

// knownFormats are the accepted values for the Format field.
var knownFormats = map[string]bool{
	"":         true,
	"text":     true,
	"pdf":      true,
	"docx":     true,
	"html":     true,
	"json":     true,
	"linkedin": true,
}

// LoadConfig loads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return &cfg, nil
}

// Validate checks that the configuration has valid values.
// Required fields are not checked here; CLI flag validation handles those
// after merging.
func (c *Config) Validate() error {
	if !knownFormats[c.Format] {
		return fmt.Errorf("config error: unknown format %q", c.Format)
	}

	if c.Concurrency < 0 {
		return fmt.Errorf("config error: 'concurrency' must be non-negative")
	}

	if c.UseOracle && c.APIKey == "" && os.Getenv("GEMINI_API_KEY") == "" {
		return fmt.Errorf("config error: 'use_oracle' requires 'api_key' or GEMINI_API_KEY")
	}

	if c.Input != "" {
		if _, err := os.Stat(c.Input); os.IsNotExist(err) {
			return fmt.Errorf("config error: input not found: %s", c.Input)
		}
	}

	return nil
}

// MergeWithDefaults returns a new Config with empty fields filled from defaults.
// This is used to apply config file values as defaults for CLI flags.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	if result.Input == "" {
		result.Input = defaults.Input
	}
	if result.Output == "" {
		result.Output = defaults.Output
	}
	if result.Schema == "" {
		result.Schema = defaults.Schema
	}
	if result.Format == "" {
		result.Format = defaults.Format
	}
	if result.APIKey == "" {
		result.APIKey = defaults.APIKey
	}
	if result.OracleModel == "" {
		result.OracleModel = defaults.OracleModel
	}
	if result.Concurrency == 0 {
		result.Concurrency = defaults.Concurrency
	}

	// Bool fields: cannot distinguish unset from false, so we don't merge
	// (CLI flags should always win for bools)

	return result
}
