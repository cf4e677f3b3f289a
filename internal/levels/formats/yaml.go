// Package formats provides pluggable level file format parsers.
package formats

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// YAMLLevel represents the YAML structure for a level file.
//
//	id: vault
//	name: The Vault
//	layout: |
//	  #####
//	  #@.>#
//	  #####
type YAMLLevel struct {
	ID       string            `yaml:"id"`
	Name     string            `yaml:"name"`
	Layout   string            `yaml:"layout"`
	Metadata map[string]string `yaml:"metadata,omitempty"`
}

// Level represents a parsed level file before validation.
type Level struct {
	ID       string
	Name     string
	Layout   []string
	Metadata map[string]string
}

// ParseYAML parses a YAML level file.
func ParseYAML(data []byte) (Level, error) {
	var yl YAMLLevel
	if err := yaml.Unmarshal(data, &yl); err != nil {
		return Level{}, fmt.Errorf("yaml unmarshal: %w", err)
	}

	return Level{
		ID:       strings.TrimSpace(yl.ID),
		Name:     strings.TrimSpace(yl.Name),
		Layout:   SplitLayout(yl.Layout),
		Metadata: yl.Metadata,
	}, nil
}

// SplitLayout splits a layout block into rows, dropping trailing blank lines
// and carriage returns.
func SplitLayout(block string) []string {
	rows := strings.Split(strings.ReplaceAll(block, "\r", ""), "\n")
	for len(rows) > 0 && strings.TrimSpace(rows[len(rows)-1]) == "" {
		rows = rows[:len(rows)-1]
	}
	return rows
}

// FormatExtensions returns supported file extensions.
func FormatExtensions() []string {
	return []string{".yaml", ".yml"}
}
