// Package country resolves ISO 3166-1 alpha-2 codes to display names.
package country

import (
	_ "embed"
	"fmt"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed countries.yaml
var countriesYAML []byte

// Directory is an immutable code to display-name lookup.
type Directory struct {
	names map[string]string
}

// Load parses the embedded country table.
func Load() (*Directory, error) {
	return Parse(countriesYAML)
}

// Parse builds a Directory from a YAML mapping of code to name.
func Parse(data []byte) (*Directory, error) {
	raw := map[string]string{}
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse country table: %w", err)
	}

	names := make(map[string]string, len(raw))
	for code, name := range raw {
		normalized := Normalize(code)
		if len(normalized) != 2 {
			return nil, fmt.Errorf("invalid country code %q", code)
		}
		names[normalized] = name
	}
	return &Directory{names: names}, nil
}

// Name returns the display name for code, case-insensitively.
func (d *Directory) Name(code string) (string, bool) {
	name, ok := d.names[Normalize(code)]
	return name, ok
}

// Codes returns every known code in ascending order.
func (d *Directory) Codes() []string {
	codes := make([]string, 0, len(d.names))
	for code := range d.names {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}

// Normalize trims and uppercases a country code.
func Normalize(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}
