package registry

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// Tables is the data-driven part of a registry: tier b descriptors and tier c aliases.
type Tables struct {
	Descriptors []Descriptor `yaml:"descriptors"`
	Aliases     []Alias      `yaml:"aliases"`
}

// LoadTables parses a YAML document with "descriptors" and "aliases" lists.
func LoadTables(data []byte) (Tables, error) {
	var tables Tables
	if err := yaml.Unmarshal(data, &tables); err != nil {
		return Tables{}, fmt.Errorf("failed to parse registry tables: %w", err)
	}
	return tables, nil
}
