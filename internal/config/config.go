package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config represents the top-level grapmap.yaml configuration.
type Config struct {
	Entity    EntityConfig    `yaml:"entity"`
	Reporting ReportingConfig `yaml:"reporting"`
	Rules     RulesConfig     `yaml:"rules"`
}

// EntityConfig identifies the reporting entity.
type EntityConfig struct {
	Name string `yaml:"name"`
	Type string `yaml:"entity_type"`
}

// ReportingConfig controls statement generation.
type ReportingConfig struct {
	YearEnd   string `yaml:"year_end"`  // "MM-DD" format, e.g. "03-31"
	Tolerance string `yaml:"tolerance"` // identity check tolerance, e.g. "0.01"
}

// RulesConfig points at the classification rule table.
type RulesConfig struct {
	Path string `yaml:"path,omitempty"` // empty = built-in defaults
}

// Load reads a grapmap.yaml file from disk.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return &cfg, nil
}

// Save writes a Config to a YAML file.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

// Default returns a Config with sensible defaults for a new project.
// South African public entities close on 31 March.
func Default(entityName, entityType string) *Config {
	return &Config{
		Entity: EntityConfig{
			Name: entityName,
			Type: entityType,
		},
		Reporting: ReportingConfig{
			YearEnd:   "03-31",
			Tolerance: "0.01",
		},
		Rules: RulesConfig{
			Path: "rules.yaml",
		},
	}
}
