package advice

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Read loads previously written advice from path.
func Read(path string) (*Advice, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("advice: read %s: %w", path, err)
	}
	var a Advice
	if err := yaml.Unmarshal(data, &a); err != nil {
		return nil, fmt.Errorf("advice: parse %s: %w", path, err)
	}
	return &a, nil
}
