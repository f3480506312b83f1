package caption

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Load reads a case caption from a YAML file.
func Load(path string) (*CaseCaption, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading caption file: %w", err)
	}

	var c CaseCaption
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("parsing caption file %s: %w", path, err)
	}
	return &c, nil
}
