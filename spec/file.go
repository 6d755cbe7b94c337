package spec

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// LoadFile reads a YAML-encoded node description into a Specification.
// Translating a real modeling language into this shape is out of scope for
// this module (see the package doc); this is the stand-in front door that
// lets cmd/director exercise the Director against a concrete node.
func LoadFile(path string) (Specification, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Specification{}, fmt.Errorf("spec: read %s: %w", path, err)
	}
	var node Node
	if err := yaml.Unmarshal(data, &node); err != nil {
		return Specification{}, fmt.Errorf("spec: parse %s: %w", path, err)
	}
	return Specification{Node: node}, nil
}
