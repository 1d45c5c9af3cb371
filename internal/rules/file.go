package rules

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Load reads a rule table from a YAML file and validates it. Any
// failure here is a configuration error; callers should treat it as
// fatal at startup rather than a per-request condition.
func Load(path string) (*Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading rule table: %w", err)
	}
	var t Table
	if err := yaml.Unmarshal(data, &t); err != nil {
		return nil, fmt.Errorf("parsing rule table: %w", err)
	}
	if err := t.Validate(); err != nil {
		return nil, fmt.Errorf("invalid rule table %s: %w", path, err)
	}
	return &t, nil
}

// Save writes a rule table to a YAML file.
func Save(path string, t *Table) error {
	data, err := yaml.Marshal(t)
	if err != nil {
		return fmt.Errorf("marshaling rule table: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing rule table: %w", err)
	}
	return nil
}
