package config

import (
	"fmt"

	"gopkg.in/yaml.v2"
)

// FromYAML unmarshals a preseed answers file. Values left out fall back to
// defaults or to interactive collection; secrets can not be preseeded.
func FromYAML(data []byte) (*Config, error) {
	c := &Config{}
	if err := yaml.UnmarshalStrict(data, c); err != nil {
		return nil, fmt.Errorf("failed to parse preseed config: %w", err)
	}
	return c, nil
}
