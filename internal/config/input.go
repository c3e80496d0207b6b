package config

import (
	"fmt"
	"os"

	"github.com/iwvelando/calckit/pkg/calculator"
	"gopkg.in/yaml.v3"
)

// LoadInput reads a calculator input document: a YAML (or JSON) mapping of
// field names to values.
func LoadInput(path string) (calculator.Input, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read input: %w", err)
	}
	return ParseInput(data)
}

// ParseInput decodes a calculator input document.
func ParseInput(data []byte) (calculator.Input, error) {
	var in calculator.Input
	if err := yaml.Unmarshal(data, &in); err != nil {
		return nil, fmt.Errorf("failed to parse input: %w", err)
	}
	if in == nil {
		in = calculator.Input{}
	}
	return in, nil
}
