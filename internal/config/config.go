// Package config handles layered YAML configuration with environment overrides.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/afk552/people/internal/table"
)

// Config holds all people configuration.
type Config struct {
	Data    Data    `yaml:"data"`
	Display Display `yaml:"display"`
}

// Data holds data file settings.
type Data struct {
	File string `yaml:"file"` // used when a command omits <file>
}

// Display holds output settings.
type Display struct {
	Color string `yaml:"color"` // "auto" | "always" | "never"
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		Data: Data{
			File: "people.json",
		},
		Display: Display{
			Color: string(table.ColorAuto),
		},
	}
}

// Load reads a single YAML config file at path and returns a Config.
// If the file does not exist, defaults are returned without error.
// If the file contains invalid YAML or unknown fields, an error is returned.
func Load(path string) (*Config, error) {
	return LoadLayered(path)
}

// LoadLayered loads config from multiple paths with increasing priority.
// Later paths override earlier ones. Missing files are skipped.
func LoadLayered(paths ...string) (*Config, error) {
	cfg := DefaultConfig()

	for _, path := range paths {
		layer, err := loadLayer(path)
		if err != nil {
			return nil, err
		}
		if layer == nil {
			continue
		}
		cfg.merge(layer)
	}

	return &cfg, nil
}

// Validate checks that config values are usable.
func (c *Config) Validate() error {
	if c.Data.File == "" {
		return errors.New("config: data.file cannot be empty")
	}
	if _, err := table.ParseColorMode(c.Display.Color); err != nil {
		return fmt.Errorf("config: display.color: %w", err)
	}
	return nil
}

// ApplyEnv applies environment variable overrides to the config.
// Variables are read from the process environment, then from envFile if it
// exists; the process environment wins.
// Supported variables: PEOPLE_FILE, PEOPLE_COLOR.
func (c *Config) ApplyEnv(envFile string) error {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("config: reading %s: %w", envFile, err)
		}
	}
	if v := os.Getenv("PEOPLE_FILE"); v != "" {
		c.Data.File = v
	}
	if v := os.Getenv("PEOPLE_COLOR"); v != "" {
		c.Display.Color = v
	}
	return nil
}

// rawConfig mirrors Config but uses pointers to distinguish set vs unset fields.
type rawConfig struct {
	Data    *rawData    `yaml:"data"`
	Display *rawDisplay `yaml:"display"`
}

type rawData struct {
	File *string `yaml:"file"`
}

type rawDisplay struct {
	Color *string `yaml:"color"`
}

// loadLayer reads a single config file into a rawConfig for selective merging.
// Returns nil if the file does not exist or is empty. Rejects unknown fields.
func loadLayer(path string) (*rawConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("config: reading %s: %w", path, err)
	}

	if len(data) == 0 {
		return nil, nil
	}

	var raw rawConfig
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&raw); err != nil {
		// Comment-only YAML files produce EOF with no decoded content.
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, fmt.Errorf("config: parsing %s: %w", path, err)
	}

	return &raw, nil
}

// merge applies non-nil fields from a rawConfig layer onto this Config.
func (c *Config) merge(layer *rawConfig) {
	if layer.Data != nil && layer.Data.File != nil {
		c.Data.File = *layer.Data.File
	}
	if layer.Display != nil && layer.Display.Color != nil {
		c.Display.Color = *layer.Display.Color
	}
}
