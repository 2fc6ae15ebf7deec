package suite

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed default.yaml
var defaultSuite []byte

// Default returns the built-in regression suite.
func Default() (*Suite, error) {
	return Parse(defaultSuite)
}

func LoadFromFile(path string) (*Suite, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read suite file: %w", err)
	}
	return Parse(data)
}

func Parse(data []byte) (*Suite, error) {
	var s Suite
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parse suite YAML: %w", err)
	}
	if len(s.Cases) == 0 {
		return nil, fmt.Errorf("suite has no cases")
	}

	seen := make(map[string]struct{}, len(s.Cases))
	for i, c := range s.Cases {
		if c.ID == "" {
			return nil, fmt.Errorf("case at index %d has no id", i)
		}
		if _, dup := seen[c.ID]; dup {
			return nil, fmt.Errorf("duplicate case id %q", c.ID)
		}
		seen[c.ID] = struct{}{}

		if c.WantValid() && c.Expect == nil {
			return nil, fmt.Errorf("case %q: valid case has no expect value", c.ID)
		}
		if !c.WantValid() && c.Expect != nil {
			return nil, fmt.Errorf("case %q: invalid case must not have an expect value", c.ID)
		}
	}
	return &s, nil
}
