package catalog

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// fileFormat is the on-disk layout of a user catalog file.
type fileFormat struct {
	Categories []Category `yaml:"categories"`
}

// LoadFile reads extra categories from a YAML file. A category id that
// matches a built-in one extends it when merged.
func LoadFile(path string) ([]Category, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog: %w", err)
	}
	return Parse(data)
}

// Parse decodes and validates catalog YAML.
func Parse(data []byte) ([]Category, error) {
	var f fileFormat
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse catalog: %w", err)
	}
	if err := Validate(f.Categories); err != nil {
		return nil, err
	}
	return f.Categories, nil
}

// Marshal encodes categories in the same layout LoadFile reads.
func Marshal(categories []Category) ([]byte, error) {
	return yaml.Marshal(fileFormat{Categories: categories})
}
